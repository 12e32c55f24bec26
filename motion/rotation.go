// Package motion holds the per-frame scalar state the demos mutate from
// keyboard input.
package motion

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// StepDegrees is the magnitude of the rotation step selected by Left/Right.
const StepDegrees = 45

// stepDivisor scales the step so one frame turns by StepDegrees/100 degrees.
const stepDivisor = 100

// Rotator accumulates a Z rotation into a projection matrix, one step per frame.
type Rotator struct {
	deg    int
	matrix mgl32.Mat4
}

func NewRotator() *Rotator {
	return &Rotator{deg: StepDegrees, matrix: mgl32.Ident4()}
}

// Left turns counter-clockwise from the next frame on.
func (r *Rotator) Left() { r.deg = StepDegrees }

// Right turns clockwise from the next frame on.
func (r *Rotator) Right() { r.deg = -StepDegrees }

func (r *Rotator) Degrees() int { return r.deg }

func (r *Rotator) Matrix() mgl32.Mat4 { return r.matrix }

// StepAngle is the angle in radians applied by one Step.
func (r *Rotator) StepAngle() float32 {
	return float32(r.deg) * math32.Pi / 180 / stepDivisor
}

// Step applies one frame of rotation and returns the new matrix.
func (r *Rotator) Step() mgl32.Mat4 {
	r.matrix = r.matrix.Mul4(mgl32.HomogRotate3DZ(r.StepAngle()))
	return r.matrix
}
