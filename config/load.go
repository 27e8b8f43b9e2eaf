package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidAttackVariation = errors.New("invalid attack variation")
	ErrInvalidConfig          = errors.New("invalid encounter config")
)

// Overrides mirrors the tunable encounter values in YAML. Absent keys keep
// their current value.
type Overrides struct {
	Seed *uint64 `yaml:"seed"`

	Spawn *struct {
		MinRadius            *float64 `yaml:"minRadius"`
		MaxRadius            *float64 `yaml:"maxRadius"`
		Clearance            *int     `yaml:"clearance"`
		MaxDistanceAttempts  *int     `yaml:"maxDistanceAttempts"`
		MaxClearanceAttempts *int     `yaml:"maxClearanceAttempts"`
		MaxSearchTicks       *int     `yaml:"maxSearchTicks"`
		PulseBaseInterval    *float64 `yaml:"pulseBaseInterval"`
	} `yaml:"spawn"`

	Camera *struct {
		PanDuration       *float64 `yaml:"panDuration"`
		LockOnTargetDwell *float64 `yaml:"lockOnTargetDwell"`
		LockOnOriginDwell *float64 `yaml:"lockOnOriginDwell"`
	} `yaml:"camera"`

	Spiral *struct {
		Count          *int     `yaml:"count"`
		AnimationCycle *float64 `yaml:"animationCycle"`
		FireInterval   *float64 `yaml:"fireInterval"`
	} `yaml:"spiral"`

	Ring *struct {
		Count         *int     `yaml:"count"`
		NodeRadiusMin *float64 `yaml:"nodeRadiusMin"`
		NodeRadiusMax *float64 `yaml:"nodeRadiusMax"`
		RampDuration  *float64 `yaml:"rampDuration"`
		Variation     *string  `yaml:"variation"`
	} `yaml:"ring"`

	Telegraph *struct {
		TimeToImpact      *float64 `yaml:"timeToImpact"`
		ShockwaveLifetime *float64 `yaml:"shockwaveLifetime"`
	} `yaml:"telegraph"`
}

// LoadFile applies the overrides in a YAML file on top of the current config.
func LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes YAML overrides from r, applies them and validates the result.
// Nothing is applied when decoding or validation fails.
func Load(r io.Reader) error {
	var o Overrides
	if err := yaml.NewDecoder(r).Decode(&o); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config: %w", err)
	}

	spawn, camera, spiral, ring, telegraph, debug := Spawn, Camera, Spiral, Ring, Telegraph, Debug
	if err := apply(&o); err != nil {
		Spawn, Camera, Spiral, Ring, Telegraph, Debug = spawn, camera, spiral, ring, telegraph, debug
		return err
	}
	if err := Validate(); err != nil {
		Spawn, Camera, Spiral, Ring, Telegraph, Debug = spawn, camera, spiral, ring, telegraph, debug
		return err
	}
	return nil
}

func apply(o *Overrides) error {
	setF := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	setI := func(dst *int, v *int) {
		if v != nil {
			*dst = *v
		}
	}

	if o.Seed != nil {
		Debug.Seed = *o.Seed
	}
	if s := o.Spawn; s != nil {
		setF(&Spawn.MinRadius, s.MinRadius)
		setF(&Spawn.MaxRadius, s.MaxRadius)
		setI(&Spawn.Clearance, s.Clearance)
		setI(&Spawn.MaxDistanceAttempts, s.MaxDistanceAttempts)
		setI(&Spawn.MaxClearanceAttempts, s.MaxClearanceAttempts)
		setI(&Spawn.MaxSearchTicks, s.MaxSearchTicks)
		setF(&Spawn.PulseBaseInterval, s.PulseBaseInterval)
	}
	if c := o.Camera; c != nil {
		setF(&Camera.PanDuration, c.PanDuration)
		setF(&Camera.LockOnTargetDwell, c.LockOnTargetDwell)
		setF(&Camera.LockOnOriginDwell, c.LockOnOriginDwell)
	}
	if s := o.Spiral; s != nil {
		setI(&Spiral.Count, s.Count)
		setF(&Spiral.AnimationCycle, s.AnimationCycle)
		setF(&Spiral.FireInterval, s.FireInterval)
	}
	if r := o.Ring; r != nil {
		setI(&Ring.Count, r.Count)
		setF(&Ring.NodeRadiusMin, r.NodeRadiusMin)
		setF(&Ring.NodeRadiusMax, r.NodeRadiusMax)
		setF(&Ring.RampDuration, r.RampDuration)
		if r.Variation != nil {
			v, ok := ParseRingVariation(*r.Variation)
			if !ok {
				return fmt.Errorf("ring variation %q: %w", *r.Variation, ErrInvalidAttackVariation)
			}
			Ring.Variation = v
		}
	}
	if t := o.Telegraph; t != nil {
		setF(&Telegraph.TimeToImpact, t.TimeToImpact)
		setF(&Telegraph.ShockwaveLifetime, t.ShockwaveLifetime)
	}
	return nil
}

// Validate checks the current config for values no encounter can run with.
func Validate() error {
	if !Ring.Variation.Valid() {
		return fmt.Errorf("ring variation %d: %w", Ring.Variation, ErrInvalidAttackVariation)
	}
	switch {
	case Spawn.MinRadius > Spawn.MaxRadius:
		return fmt.Errorf("%w: spawn minRadius %v exceeds maxRadius %v", ErrInvalidConfig, Spawn.MinRadius, Spawn.MaxRadius)
	case Spawn.Clearance < 0:
		return fmt.Errorf("%w: negative spawn clearance", ErrInvalidConfig)
	case Spawn.MaxDistanceAttempts < 1 || Spawn.MaxClearanceAttempts < 1:
		return fmt.Errorf("%w: spawn attempts must be positive", ErrInvalidConfig)
	case Camera.PanDuration <= 0:
		return fmt.Errorf("%w: camera panDuration must be positive", ErrInvalidConfig)
	case Spiral.Count < 1 || Ring.Count < 1:
		return fmt.Errorf("%w: generator counts must be positive", ErrInvalidConfig)
	case Spiral.AnimationCycle <= 0 || Ring.RampDuration <= 0:
		return fmt.Errorf("%w: generator durations must be positive", ErrInvalidConfig)
	case Telegraph.TimeToImpact <= 0 || Telegraph.ShockwaveLifetime <= 0:
		return fmt.Errorf("%w: telegraph durations must be positive", ErrInvalidConfig)
	}
	return nil
}
