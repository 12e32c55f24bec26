package renderer

import (
	"github.com/richinsley/gldemos/graphics"
	"github.com/richinsley/gldemos/loop"
	"github.com/richinsley/gldemos/mesh"
	"github.com/richinsley/gldemos/motion"
	"github.com/richinsley/gldemos/shader"
)

// Triangle is the rotating, per-vertex colored triangle.
type Triangle struct {
	program *Program
	vao     *VAO
	rotator *motion.Rotator
}

var _ loop.Scene = (*Triangle)(nil)

// NewTriangle uploads the triangle and its shaders to the current context and
// binds Left/Right to the rotation direction.
func NewTriangle(ctx graphics.Context) (*Triangle, error) {
	if err := Init(); err != nil {
		return nil, err
	}

	program, err := NewProgram(shader.TriangleVertexSource, shader.TriangleFragmentSource)
	if err != nil {
		return nil, err
	}

	vertices := mesh.Triangle()
	vao := NewVAO()
	vao.Buffer(0, NewVBO().Data(mesh.Positions(vertices)), 3)
	vao.Buffer(1, NewVBO().Data(mesh.Colors(vertices)), 3)

	t := &Triangle{
		program: program,
		vao:     vao,
		rotator: motion.NewRotator(),
	}
	program.UniformMatrix4(shader.UniformProjection, t.rotator.Matrix())

	ctx.RegisterKeyCallback(graphics.KeyLeft, t.rotator.Left)
	ctx.RegisterKeyCallback(graphics.KeyRight, t.rotator.Right)
	return t, nil
}

func (t *Triangle) Frame(_, _ float64, width, height int) {
	Viewport(width, height)
	Clear(0.1, 0.1, 0.1, 0.0)
	t.program.Use()
	t.vao.Bind()
	Draw(Triangles, 0, 3)
	t.program.UniformMatrix4(shader.UniformProjection, t.rotator.Step())
}

func (t *Triangle) Destroy() {
	t.program.Delete()
	t.vao.Delete()
}
