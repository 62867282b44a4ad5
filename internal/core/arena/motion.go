package arena

import "github.com/zeusync/rpsarena/internal/core/systems/physics"

// ReflectBounds inverts each velocity component whose axis has the agent's box
// outside the canvas. Position is not clamped, so an agent may overshoot the edge
// by up to one tick of travel before the reflection brings it back.
func ReflectBounds(a *Agent, canvas, box physics.Size) {
	r := a.Box(box)
	if !r.InsideX(canvas.Width) {
		a.Velocity.X = -a.Velocity.X
	}
	if !r.InsideY(canvas.Height) {
		a.Velocity.Y = -a.Velocity.Y
	}
}

// Integrate advances the agent by one tick of its velocity.
func Integrate(a *Agent) {
	a.Position = a.Position.Add(a.Velocity)
}
