package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// PhysicsSpec is the tunable part of the simulation. Zero values fall back to
// the built-in defaults.
type PhysicsSpec struct {
	Gravity        float64            `yaml:"gravity"`
	MaxGravity     float64            `yaml:"max_gravity"`
	TPS            int                `yaml:"tps"`
	Swim           SwimSpec           `yaml:"swim"`
	MovingPlatform MovingPlatformSpec `yaml:"moving_platform"`
	ActivityZone   ActivityZoneSpec   `yaml:"activity_zone"`
	Boulder        BoulderSpec        `yaml:"boulder"`
	Knockback      KnockbackSpec      `yaml:"knockback"`
}

type SwimSpec struct {
	Buoyancy   float64 `yaml:"buoyancy"`
	FloatLimit float64 `yaml:"float_limit"`
}

type MovingPlatformSpec struct {
	Speed     float64 `yaml:"speed"`
	ZoneSize  float64 `yaml:"zone_size"`
	WaitTicks int     `yaml:"wait_ticks"`
}

type ActivityZoneSpec struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	RefreshTicks int     `yaml:"refresh_ticks"`
}

type BoulderSpec struct {
	Speed      float64 `yaml:"speed"`
	SpawnDelay int     `yaml:"spawn_delay"`
	Size       float64 `yaml:"size"`
}

type KnockbackSpec struct {
	Force             float64 `yaml:"force"`
	InvulnerableTicks int     `yaml:"invulnerable_ticks"`
}

const PhysicsFile = "physics.yaml"

func LoadPhysicsSpec() (*PhysicsSpec, error) {
	spec, err := LoadSpec[PhysicsSpec](PhysicsFile)
	if err != nil {
		return nil, err
	}
	if spec.MaxGravity < 0 || spec.Gravity < 0 {
		return nil, fmt.Errorf("prefabs: %s: %w", PhysicsFile, ErrNegativeGravity)
	}
	return &spec, nil
}
