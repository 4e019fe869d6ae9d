/*
Package game
File: models.go
Description:
    Defines the configuration structs for the voyager stage. This file is
    the "schema" of the application: it maps directly to stage.yaml and to
    the JSON schema emitted by cmd/voyagerschema for content authors.

    No logic is performed here; this file is strictly for type definitions.
*/

package game

// StageConfig fixes the playfield bounds in pixels.
type StageConfig struct {
	Width  float64 `yaml:"width" json:"width" jsonschema:"description=Playfield width in pixels"`
	Height float64 `yaml:"height" json:"height" jsonschema:"description=Playfield height in pixels"`
}

// LoopConfig tunes the fixed-timestep scheduler.
type LoopConfig struct {
	StepMS     float64 `yaml:"step_ms" json:"step_ms" jsonschema:"description=Fixed simulation step in milliseconds"`
	MaxFrameMS float64 `yaml:"max_frame_ms" json:"max_frame_ms" jsonschema:"description=Clamp applied to a single frame's elapsed time"`
}

// ShipConfig is the player vessel: spawn point, hitbox size, and tank.
type ShipConfig struct {
	SpriteKey string  `yaml:"sprite_key" json:"sprite_key"`
	X         float64 `yaml:"x" json:"x"`
	Y         float64 `yaml:"y" json:"y"`
	Width     float64 `yaml:"width" json:"width"`
	Height    float64 `yaml:"height" json:"height"`
	MaxFuel   float64 `yaml:"max_fuel" json:"max_fuel"`
	DrainRate float64 `yaml:"drain_rate" json:"drain_rate" jsonschema:"description=Fuel units burned per second while moving"`
}

// CollisionConfig groups the obstacle-collision tuning knobs.
type CollisionConfig struct {
	HitboxShrink      float64 `yaml:"hitbox_shrink" json:"hitbox_shrink" jsonschema:"description=Ratio shrinking a sprite's visual bounds to its logical hitbox"`
	KnockbackDistance float64 `yaml:"knockback_distance" json:"knockback_distance" jsonschema:"description=Instant positional shove in pixels on an obstacle hit"`
	FuelPenalty       float64 `yaml:"fuel_penalty" json:"fuel_penalty"`
	CooldownMS        float64 `yaml:"cooldown_ms" json:"cooldown_ms" jsonschema:"description=Per-ship window between processed hits"`
}

// AsteroidConfig places one drifting obstacle.
type AsteroidConfig struct {
	SpriteKey string  `yaml:"sprite_key" json:"sprite_key"`
	X         float64 `yaml:"x" json:"x"`
	Y         float64 `yaml:"y" json:"y"`
	Width     float64 `yaml:"width" json:"width"`
	Height    float64 `yaml:"height" json:"height"`
	VX        float64 `yaml:"vx" json:"vx"`
	VY        float64 `yaml:"vy" json:"vy"`
}

// StationConfig places a refuel station and its trigger zone.
type StationConfig struct {
	SpriteKey    string  `yaml:"sprite_key" json:"sprite_key"`
	X            float64 `yaml:"x" json:"x"`
	Y            float64 `yaml:"y" json:"y"`
	Width        float64 `yaml:"width" json:"width"`
	Height       float64 `yaml:"height" json:"height"`
	RefuelAmount float64 `yaml:"refuel_amount" json:"refuel_amount" jsonschema:"description=Fuel units applied per overlapping tick"`
}

// FactConfig is one authored fact carried by a capsule.
type FactConfig struct {
	ID         string `yaml:"id" json:"id"`
	Text       string `yaml:"text" json:"text"`
	QuestionID string `yaml:"question_id" json:"question_id,omitempty"`
}

// CapsuleConfig places one collectible data capsule.
type CapsuleConfig struct {
	ID        string       `yaml:"id" json:"id" jsonschema:"description=Stable capsule identifier unique within the stage"`
	SpriteKey string       `yaml:"sprite_key" json:"sprite_key"`
	X         float64      `yaml:"x" json:"x"`
	Y         float64      `yaml:"y" json:"y"`
	Width     float64      `yaml:"width" json:"width"`
	Height    float64      `yaml:"height" json:"height"`
	Facts     []FactConfig `yaml:"facts" json:"facts"`
}

// Config is the root struct mapping to the entire stage.yaml file.
type Config struct {
	Stage     StageConfig      `yaml:"stage" json:"stage"`
	Loop      LoopConfig       `yaml:"loop" json:"loop"`
	Ship      ShipConfig       `yaml:"ship" json:"ship"`
	Collision CollisionConfig  `yaml:"collision" json:"collision"`
	Asteroids []AsteroidConfig `yaml:"asteroids" json:"asteroids"`
	Stations  []StationConfig  `yaml:"stations" json:"stations"`
	Capsules  []CapsuleConfig  `yaml:"capsules" json:"capsules"`
}
