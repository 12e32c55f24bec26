package renderer

import (
	"log"

	"github.com/richinsley/gldemos/graphics"
	"github.com/richinsley/gldemos/loop"
	"github.com/richinsley/gldemos/mesh"
	"github.com/richinsley/gldemos/motion"
	"github.com/richinsley/gldemos/options"
	"github.com/richinsley/gldemos/shader"
)

// Quad is a full-screen quad shaded by a fragment program fed iTime and
// iResolution.
type Quad struct {
	program  *Program
	vao      *VAO
	clock    *motion.Clock
	watcher  *shader.Watcher
	vertPath string
	fragPath string
}

var _ loop.Scene = (*Quad)(nil)

// NewQuad loads the shader files named by opts, or the built-in pair when no
// shader directory is configured. Left slows the clock down, Right speeds it
// up.
func NewQuad(ctx graphics.Context, opts *options.DemoOptions) (*Quad, error) {
	if err := Init(); err != nil {
		return nil, err
	}

	q := &Quad{
		clock: motion.NewClock(float32(opts.SpeedStep), float32(opts.MinSpeed), float32(opts.MaxSpeed)),
	}

	var pair shader.Pair
	if opts.ShaderDir == "" {
		pair = shader.Pair{
			Vertex:   shader.Source{Code: shader.QuadVertexSource},
			Fragment: shader.Source{Code: shader.QuadFragmentSource},
		}
	} else {
		q.vertPath, q.fragPath = opts.VertexPath(), opts.FragmentPath()
		var err error
		if pair, err = shader.LoadPair(q.vertPath, q.fragPath); err != nil {
			return nil, err
		}
	}

	program, err := NewProgramFromPair(pair)
	if err != nil {
		return nil, err
	}
	q.program = program

	if opts.Watch && opts.ShaderDir != "" {
		if q.watcher, err = shader.NewWatcher(q.vertPath, q.fragPath); err != nil {
			program.Delete()
			return nil, err
		}
		log.Printf("Watching %s and %s", q.vertPath, q.fragPath)
	}

	q.vao = NewVAO()
	q.vao.Buffer(0, NewVBO().Data(mesh.QuadVertices), 2)

	ctx.RegisterKeyCallback(graphics.KeyLeft, q.clock.Slower)
	ctx.RegisterKeyCallback(graphics.KeyRight, q.clock.Faster)
	return q, nil
}

// reload rebuilds the program from disk. The running program stays in use
// when the new sources fail to load or link.
func (q *Quad) reload() {
	pair, err := shader.LoadPair(q.vertPath, q.fragPath)
	if err != nil {
		log.Printf("Shader reload failed: %v", err)
		return
	}
	program, err := NewProgramFromPair(pair)
	if err != nil {
		log.Printf("Shader reload failed: %v", err)
		return
	}
	q.program.Delete()
	q.program = program
	log.Printf("Reloaded %s", q.fragPath)
}

func (q *Quad) Frame(_, dt float64, width, height int) {
	if q.watcher != nil && q.watcher.Changed() {
		q.reload()
	}

	Viewport(width, height)
	Clear(0, 0, 0, 1)
	q.program.Use()
	q.program.Uniform1f(shader.UniformTime, q.clock.Advance(dt))
	q.program.Uniform2f(shader.UniformResolution, float32(width), float32(height))
	q.vao.Bind()
	Draw(Triangles, 0, mesh.QuadVertexCount)
}

func (q *Quad) Destroy() {
	if q.watcher != nil {
		q.watcher.Close()
	}
	q.program.Delete()
	q.vao.Delete()
}
