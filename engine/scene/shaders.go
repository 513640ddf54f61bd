package scene

// GLSL 330 core sources. Both programs share vertexSource; the trailing NUL
// is required by gl.Strs.

const vertexSource = `
#version 330 core
layout(location=0) in vec3 aPos;
layout(location=1) in vec2 aTexCoord;
out vec2 TexCoord;
void main() {
    TexCoord = aTexCoord;
    gl_Position = vec4(aPos, 1.0);
}
` + "\x00"

const flatFragmentSource = `
#version 330 core
in vec2 TexCoord;
out vec4 FragColor;
void main() {
    FragColor = vec4(0.8, 0.4, 0.2, 1.0);
}
` + "\x00"

const waveFragmentSource = `
#version 330 core
in vec2 TexCoord;
out vec4 FragColor;
uniform float time;
void main() {
    float wave = sin(TexCoord.x * 10.0 + time * 5.0) * 0.1;
    FragColor = vec4(0.2 + wave, 0.5, 1.0, 1.0);
}
` + "\x00"
