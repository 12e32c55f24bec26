package shader

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/richinsley/gldemos/translator"
)

// Dialect is the GLSL flavor a source is written in.
type Dialect int

const (
	// Desktop is core-profile GLSL the driver compiles as is.
	Desktop Dialect = iota
	// ES is GLSL ES 3.00, translated before compiling.
	ES
)

func (d Dialect) String() string {
	if d == ES {
		return "es"
	}
	return "desktop"
}

// DetectDialect reads the #version directive, skipping blank lines and
// both comment styles before it.
func DetectDialect(source string) Dialect {
	sc := bufio.NewScanner(strings.NewReader(source))
	inBlock := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		for {
			if inBlock {
				end := strings.Index(line, "*/")
				if end < 0 {
					line = ""
					break
				}
				line = strings.TrimSpace(line[end+2:])
				inBlock = false
			}
			if !strings.HasPrefix(line, "/*") {
				break
			}
			line = line[2:]
			inBlock = true
		}
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) >= 3 && fields[0] == "#version" && fields[2] == "es" {
			return ES
		}
		return Desktop
	}
	return Desktop
}

// Source is a shader stage ready to hand to the driver.
type Source struct {
	Code string
	// Uniforms renames uniforms when the code was translated. Empty for
	// desktop sources.
	Uniforms map[string]string
}

// UniformName returns the name under which name is declared in Code.
func (s Source) UniformName(name string) string {
	if mapped, ok := s.Uniforms[name]; ok {
		return mapped
	}
	return name
}

// Translate converts an ES source to desktop GLSL. Replaced in tests.
var Translate = func(stage, code string) (Source, error) {
	res, err := translator.ToDesktop(stage, code)
	if err != nil {
		return Source{}, err
	}
	return Source{Code: res.Code, Uniforms: res.Uniforms}, nil
}

// Prepare returns code unchanged for desktop GLSL and translated for GLSL ES.
func Prepare(stage, code string) (Source, error) {
	if DetectDialect(code) == ES {
		return Translate(stage, code)
	}
	return Source{Code: code}, nil
}

// Pair is a prepared vertex and fragment stage.
type Pair struct {
	Vertex   Source
	Fragment Source
}

// UniformName resolves a uniform in either stage.
func (p Pair) UniformName(name string) string {
	if mapped, ok := p.Fragment.Uniforms[name]; ok {
		return mapped
	}
	return p.Vertex.UniformName(name)
}

// LoadPair reads and prepares the vertex and fragment shader files.
func LoadPair(vertPath, fragPath string) (Pair, error) {
	var p Pair
	vs, err := os.ReadFile(vertPath)
	if err != nil {
		return p, fmt.Errorf("failed to read vertex shader: %w", err)
	}
	fs, err := os.ReadFile(fragPath)
	if err != nil {
		return p, fmt.Errorf("failed to read fragment shader: %w", err)
	}
	if p.Vertex, err = Prepare("vertex", string(vs)); err != nil {
		return p, err
	}
	if p.Fragment, err = Prepare("fragment", string(fs)); err != nil {
		return p, err
	}
	return p, nil
}
