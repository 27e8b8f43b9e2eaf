package config

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadAppliesOverrides(t *testing.T) {
	defer Reset()

	src := `
seed: 42
spawn:
  clearance: 3
camera:
  panDuration: 500
ring:
  variation: random
`
	if err := Load(strings.NewReader(src)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if Debug.Seed != 42 {
		t.Errorf("seed = %d, want 42", Debug.Seed)
	}
	if Spawn.Clearance != 3 {
		t.Errorf("clearance = %d, want 3", Spawn.Clearance)
	}
	if Camera.PanDuration != 500 {
		t.Errorf("panDuration = %v, want 500", Camera.PanDuration)
	}
	if Ring.Variation != RingRandom {
		t.Errorf("variation = %v, want random", Ring.Variation)
	}
	// Untouched keys keep their defaults
	if Spawn.MaxDistanceAttempts != 200 {
		t.Errorf("maxDistanceAttempts = %d, want 200", Spawn.MaxDistanceAttempts)
	}
}

func TestLoadRejectsUnknownVariation(t *testing.T) {
	defer Reset()

	err := Load(strings.NewReader("ring:\n  variation: zigzag\n"))
	if !errors.Is(err, ErrInvalidAttackVariation) {
		t.Fatalf("expected ErrInvalidAttackVariation, got %v", err)
	}
	if Ring.Variation != RingHalfStep {
		t.Errorf("failed load must not change config, variation = %v", Ring.Variation)
	}
}

func TestLoadRollsBackInvalidConfig(t *testing.T) {
	defer Reset()

	err := Load(strings.NewReader("spawn:\n  minRadius: 900\n  maxRadius: 10\n"))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	if Spawn.MinRadius != 96 {
		t.Errorf("minRadius = %v, want rollback to 96", Spawn.MinRadius)
	}
}

func TestLoadEmptyDocument(t *testing.T) {
	defer Reset()
	if err := Load(strings.NewReader("")); err != nil {
		t.Errorf("empty document should be a no-op, got %v", err)
	}
}

func TestValidateRejectsOutOfRangeVariation(t *testing.T) {
	defer Reset()
	Ring.Variation = RingVariation(9)
	if err := Validate(); !errors.Is(err, ErrInvalidAttackVariation) {
		t.Errorf("expected ErrInvalidAttackVariation, got %v", err)
	}
}
