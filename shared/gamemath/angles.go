package gamemath

import "math"

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// NormalizeDegrees wraps an angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// SpreadAngles returns count angles at equal spacing starting from base.
func SpreadAngles(base float64, count int) []float64 {
	if count <= 0 {
		return nil
	}
	step := 360.0 / float64(count)
	angles := make([]float64, count)
	for i := range angles {
		angles[i] = NormalizeDegrees(base + step*float64(i))
	}
	return angles
}

// RingRadius returns the radius of a ring holding n nodes of radius r with
// roughly touching footprints: the ring circumference equals n node diameters.
func RingRadius(n int, r float64) float64 {
	if n <= 0 {
		return 0
	}
	return (2 * r * float64(n)) / (2 * math.Pi)
}

// PointOnCircle returns the point at angleDeg on a circle around (cx, cy).
func PointOnCircle(cx, cy, radius, angleDeg float64) (float64, float64) {
	rad := Radians(angleDeg)
	return cx + radius*math.Cos(rad), cy + radius*math.Sin(rad)
}
