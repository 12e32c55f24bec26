package renderer

import (
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/gldemos/shader"
)

// Program is a linked vertex + fragment shader program.
type Program struct {
	id        uint32
	locations map[string]int32
	// rename maps a source uniform name to its name in the linked program.
	rename func(string) string
}

// NewProgram compiles both stages and links them.
func NewProgram(vertexShaderSource, fragmentShaderSource string) (*Program, error) {
	id, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, err
	}
	return &Program{id: id, locations: make(map[string]int32)}, nil
}

// NewProgramFromPair links a prepared shader pair, resolving uniform names
// through any translation the pair went through.
func NewProgramFromPair(p shader.Pair) (*Program, error) {
	prog, err := NewProgram(p.Vertex.Code, p.Fragment.Code)
	if err != nil {
		return nil, err
	}
	prog.rename = p.UniformName
	return prog, nil
}

func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// location returns the cached uniform location for name, -1 if the program
// has no active uniform by that name.
func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	mapped := name
	if p.rename != nil {
		mapped = p.rename(name)
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(mapped+"\x00"))
	p.locations[name] = loc
	return loc
}

// UniformMatrix4 uses the program and sets a mat4 uniform.
func (p *Program) UniformMatrix4(name string, m mgl32.Mat4) {
	p.Use()
	if loc := p.location(name); loc != -1 {
		gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
}

func (p *Program) Uniform1f(name string, v float32) {
	p.Use()
	if loc := p.location(name); loc != -1 {
		gl.Uniform1f(loc, v)
	}
}

func (p *Program) Uniform2f(name string, x, y float32) {
	p.Use()
	if loc := p.location(name); loc != -1 {
		gl.Uniform2f(loc, x, y)
	}
}

func (p *Program) Delete() {
	gl.DeleteProgram(p.id)
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, fmt.Errorf("fragment: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %v", strings.TrimRight(log, "\x00"))
	}

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	id := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csources, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(id, logLength, nil, gl.Str(logText))
		gl.DeleteShader(id)
		return 0, fmt.Errorf("failed to compile shader: %v", strings.TrimRight(logText, "\x00"))
	}
	return id, nil
}
