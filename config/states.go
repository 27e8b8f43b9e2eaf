package config

// SpawnStateID identifies the boss spawn choreography state.
type SpawnStateID int

const (
	SpawnIdle SpawnStateID = iota
	SpawnSearching
	SpawnCountdown
	SpawnMaterialize
	SpawnDone
)

func (s SpawnStateID) String() string {
	switch s {
	case SpawnIdle:
		return "idle"
	case SpawnSearching:
		return "searching"
	case SpawnCountdown:
		return "countdown"
	case SpawnMaterialize:
		return "materialize"
	case SpawnDone:
		return "done"
	}
	return "unknown"
}

// CameraModeID identifies the active camera mode. Exactly one is active.
type CameraModeID int

const (
	CameraStatic CameraModeID = iota
	CameraFollow
	CameraPan
)

func (m CameraModeID) String() string {
	switch m {
	case CameraStatic:
		return "static"
	case CameraFollow:
		return "follow"
	case CameraPan:
		return "pan"
	}
	return "unknown"
}

// PanPhaseID identifies the step of the scripted pan sequence.
type PanPhaseID int

const (
	PanToTarget PanPhaseID = iota
	LockOnTarget
	PanToOrigin
	LockOnOrigin
	PanHeld // return skipped after the player died on target
)

func (p PanPhaseID) String() string {
	switch p {
	case PanToTarget:
		return "pan-to-target"
	case LockOnTarget:
		return "lock-on-target"
	case PanToOrigin:
		return "pan-to-origin"
	case LockOnOrigin:
		return "lock-on-origin"
	case PanHeld:
		return "held"
	}
	return "unknown"
}

// Axis selects which camera axis Static mode pins to the origin.
type Axis int

const (
	AxisBoth Axis = iota
	AxisX
	AxisY
)

// ShakeKind selects the magnitude profile of a screen shake event.
type ShakeKind int

const (
	ShakeConstant ShakeKind = iota // random in [-m, m]
	ShakeVelocity                  // scaled by velocity and remaining/duration
	ShakeDecay                     // scaled by remaining/duration
)

func (k ShakeKind) String() string {
	switch k {
	case ShakeConstant:
		return "constant"
	case ShakeVelocity:
		return "velocity"
	case ShakeDecay:
		return "decay"
	}
	return "unknown"
}

// RingVariation selects how a radial ring picks its base angle per activation.
type RingVariation int

const (
	RingFixed    RingVariation = iota // always 0
	RingHalfStep                      // += half the angular spacing, wraps at 360
	RingRandom                        // uniform random each activation
)

func (v RingVariation) String() string {
	switch v {
	case RingFixed:
		return "fixed"
	case RingHalfStep:
		return "half-step"
	case RingRandom:
		return "random"
	}
	return "unknown"
}

// Valid reports whether v names a known variation.
func (v RingVariation) Valid() bool {
	return v >= RingFixed && v <= RingRandom
}

// ParseRingVariation maps a config name to a RingVariation.
func ParseRingVariation(name string) (RingVariation, bool) {
	switch name {
	case "fixed":
		return RingFixed, true
	case "half-step":
		return RingHalfStep, true
	case "random":
		return RingRandom, true
	}
	return -1, false
}
