package gamemath

// FollowAxis returns the camera coordinate for one axis using a three-zone clamp.
// The camera is pinned to 0 while focal is within the first half viewport, tracks
// focal-viewport/2 in the middle band and is pinned to extent-viewport near the far
// edge. Worlds smaller than the viewport keep the camera at 0.
func FollowAxis(focal, viewport, extent float64) float64 {
	if extent <= viewport {
		return 0
	}
	half := viewport / 2
	switch {
	case focal <= half:
		return 0
	case focal >= extent-half:
		return extent - viewport
	default:
		return focal - half
	}
}
