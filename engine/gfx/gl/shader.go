package glbackend

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

func compileStage(src string, stage uint32) (uint32, error) {
	sh := gl.CreateShader(stage)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		msg := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(msg))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", strings.TrimRight(msg, "\x00"))
	}
	return sh, nil
}

// linkProgram builds a program from the two stage sources. Compile and link
// failures come back through err, never fatally: the returned program id is
// valid either way, so the caller keeps a handle to report-and-continue with.
// Stage objects are deleted once linking is done; the program owns the
// compiled code from then on.
func linkProgram(vsSrc, fsSrc string) (prog uint32, linked bool, err error) {
	prog = gl.CreateProgram()

	vs, vsErr := compileStage(vsSrc, gl.VERTEX_SHADER)
	fs, fsErr := compileStage(fsSrc, gl.FRAGMENT_SHADER)
	defer func() {
		if vs != 0 {
			gl.DeleteShader(vs)
		}
		if fs != 0 {
			gl.DeleteShader(fs)
		}
	}()
	if vsErr != nil {
		return prog, false, vsErr
	}
	if fsErr != nil {
		return prog, false, fsErr
	}

	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		msg := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(msg))
		return prog, false, fmt.Errorf("program link error: %s", strings.TrimRight(msg, "\x00"))
	}
	return prog, true, nil
}
