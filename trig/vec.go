package trig

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Direction returns the look vector for a yaw and pitch given in degrees. Yaw 0
// looks along +Z and positive pitch looks down, matching Minecraft rotations.
func (t Table32) Direction(yaw, pitch float32) mgl32.Vec3 {
	yawRad, pitchRad := mgl32.DegToRad(yaw), mgl32.DegToRad(pitch)
	m := t.Cos(pitchRad)

	return mgl32.Vec3{
		-m * t.Sin(yawRad),
		-t.Sin(pitchRad),
		m * t.Cos(yawRad),
	}
}

// Rotate rotates v counter-clockwise by radians.
func (t Table32) Rotate(v mgl32.Vec2, radians float32) mgl32.Vec2 {
	sin, cos := t.Sincos(radians)
	return mgl32.Vec2{v.X()*cos - v.Y()*sin, v.X()*sin + v.Y()*cos}
}

// Direction returns the look vector for a yaw and pitch given in degrees. Yaw 0
// looks along +Z and positive pitch looks down, matching Minecraft rotations.
func (t Table64) Direction(yaw, pitch float64) mgl64.Vec3 {
	yawRad, pitchRad := mgl64.DegToRad(yaw), mgl64.DegToRad(pitch)
	m := t.Cos(pitchRad)

	return mgl64.Vec3{
		-m * t.Sin(yawRad),
		-t.Sin(pitchRad),
		m * t.Cos(yawRad),
	}
}

// Rotate rotates v counter-clockwise by radians.
func (t Table64) Rotate(v mgl64.Vec2, radians float64) mgl64.Vec2 {
	sin, cos := t.Sincos(radians)
	return mgl64.Vec2{v.X()*cos - v.Y()*sin, v.X()*sin + v.Y()*cos}
}
