package glbackend

import (
	"embed"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

//go:embed shaders
var shaderFS embed.FS

// shaderSource reads an embedded GLSL file into a NUL-terminated string.
func shaderSource(name string) (string, error) {
	b, err := shaderFS.ReadFile("shaders/" + name)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	if len(b) == 0 || b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b), nil
}

// infoLog reads a shader or program log through the matching GL getters.
func infoLog(obj uint32, getiv func(uint32, uint32, *int32), getLog func(uint32, int32, *int32, *uint8)) string {
	var n int32
	getiv(obj, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	getLog(obj, n, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00\n")
}

func compile(kind uint32, src string) (uint32, error) {
	sh := gl.CreateShader(kind)
	cs, free := gl.Strs(src)
	gl.ShaderSource(sh, 1, cs, nil)
	free()
	gl.CompileShader(sh)

	var ok int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &ok)
	if ok != gl.FALSE {
		return sh, nil
	}
	msg := infoLog(sh, gl.GetShaderiv, gl.GetShaderInfoLog)
	gl.DeleteShader(sh)
	return 0, fmt.Errorf("compile shader: %s", msg)
}

// makeProgram links a vertex and fragment stage. The stages are deleted
// whether or not linking succeeds.
func makeProgram(vertSrc, fragSrc string) (uint32, error) {
	var stages [2]uint32
	for i, st := range []struct {
		kind uint32
		src  string
	}{{gl.VERTEX_SHADER, vertSrc}, {gl.FRAGMENT_SHADER, fragSrc}} {
		sh, err := compile(st.kind, st.src)
		if err != nil {
			for _, prev := range stages[:i] {
				gl.DeleteShader(prev)
			}
			return 0, err
		}
		stages[i] = sh
	}

	prog := gl.CreateProgram()
	for _, sh := range stages {
		gl.AttachShader(prog, sh)
	}
	gl.LinkProgram(prog)
	for _, sh := range stages {
		gl.DeleteShader(sh)
	}

	var ok int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &ok)
	if ok != gl.FALSE {
		return prog, nil
	}
	msg := infoLog(prog, gl.GetProgramiv, gl.GetProgramInfoLog)
	gl.DeleteProgram(prog)
	return 0, fmt.Errorf("link program: %s", msg)
}
