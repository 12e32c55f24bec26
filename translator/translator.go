package translator

import (
	"context"
	"fmt"
	"sync"

	gst "github.com/richinsley/goshadertranslator"
)

var (
	translator *gst.ShaderTranslator
	initErr    error
	once       sync.Once
)

// GetTranslator returns the process-wide shader translator, creating it on
// first use.
func GetTranslator() (*gst.ShaderTranslator, error) {
	once.Do(func() {
		translator, initErr = gst.NewShaderTranslator(context.Background())
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to create shader translator: %w", initErr)
	}
	return translator, nil
}

// Result is a translated shader and the names its uniforms were mapped to.
type Result struct {
	Code string
	// Uniforms maps a uniform's source name to its name in Code.
	Uniforms map[string]string
}

// ToDesktop translates a GLSL ES 3.00 (WebGL2) shader stage into GLSL 4.10
// for the desktop core profile. stage is "vertex" or "fragment".
func ToDesktop(stage, source string) (*Result, error) {
	t, err := GetTranslator()
	if err != nil {
		return nil, err
	}
	out, err := t.TranslateShader(source, stage, gst.ShaderSpecWebGL2, gst.OutputFormatGLSL410)
	if err != nil {
		return nil, fmt.Errorf("%s shader translation failed: %w", stage, err)
	}
	res := &Result{Code: out.Code, Uniforms: make(map[string]string, len(out.Variables))}
	for name, v := range out.Variables {
		res.Uniforms[name] = v.MappedName
	}
	return res, nil
}
