// Package config provides YAML-based tuning for the sandpit simulations.
// Every game has a typed config with an embedded default file and a
// hard-coded fallback.
package config

// SandboxConfig contains all configuration for the falling-sand sandbox.
type SandboxConfig struct {
	Grid      SandboxGrid      `yaml:"grid"`
	Brush     SandboxBrush     `yaml:"brush"`
	Fire      SandboxFire      `yaml:"fire"`
	Bomb      SandboxBomb      `yaml:"bomb"`
	Gunpowder SandboxGunpowder `yaml:"gunpowder"`
	Explosion SandboxExplosion `yaml:"explosion"`
	Water     SandboxWater     `yaml:"water"`
	Player    SandboxPlayer    `yaml:"player"`
	Render    RenderScale      `yaml:"render"`
}

// SandboxGrid defines the automaton dimensions in cells.
type SandboxGrid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SandboxBrush defines the paint brush.
type SandboxBrush struct {
	Radius    int    `yaml:"radius"`
	MinRadius int    `yaml:"min_radius"`
	MaxRadius int    `yaml:"max_radius"`
	Tool      string `yaml:"tool"` // initial tool: sand, water, wall, bomb, fire, oil, gunpowder
}

// SandboxFire defines fire lifetimes and spread odds.
type SandboxFire struct {
	PaintTTL     int     `yaml:"paint_ttl"`     // TTL of painted fire
	OilTTL       int     `yaml:"oil_ttl"`       // TTL of oil ignited in the ignition pass
	SpreadTTL    int     `yaml:"spread_ttl"`    // TTL of oil ignited by a burning neighbour
	DriftChance  float64 `yaml:"drift_chance"`  // chance per tick to rise one cell
	SpreadChance float64 `yaml:"spread_chance"` // chance per tick to probe neighbours
}

// SandboxBomb defines bomb fuses and blasts.
type SandboxBomb struct {
	Fuse        int     `yaml:"fuse"`         // ticks from arming to detonation
	Radius      int     `yaml:"radius"`       // blast radius in cells
	SparkBelow  int     `yaml:"spark_below"`  // sparks fly while the fuse is under this
	SparkChance float64 `yaml:"spark_chance"` // chance per tick to throw a spark
	SparkTTL    int     `yaml:"spark_ttl"`
}

// SandboxGunpowder defines gunpowder detonation.
type SandboxGunpowder struct {
	Radius int `yaml:"radius"`
}

// SandboxExplosion defines the residual fire ring and player knockback.
type SandboxExplosion struct {
	RingChance     float64 `yaml:"ring_chance"`
	RingWidth      float64 `yaml:"ring_width"` // ring covers d > radius-width
	RingTTLMin     int     `yaml:"ring_ttl_min"`
	RingTTLSpread  int     `yaml:"ring_ttl_spread"`
	KnockbackReach float64 `yaml:"knockback_reach"` // cells beyond the radius still pushed
	Push           float64 `yaml:"push"`            // horizontal impulse at the centre
	Lift           float64 `yaml:"lift"`            // upward impulse at the centre
}

// SandboxWater defines liquid flow.
type SandboxWater struct {
	Spread int `yaml:"spread"` // max cells water travels sideways per tick
}

// SandboxPlayer defines the player entity. Speeds are in cells per frame at
// 60 frames per second.
type SandboxPlayer struct {
	SpawnY        float64 `yaml:"spawn_y"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Accel         float64 `yaml:"accel"`
	WaterAccel    float64 `yaml:"water_accel"`
	MaxSpeed      float64 `yaml:"max_speed"`
	WaterMaxSpeed float64 `yaml:"water_max_speed"`
	Damping       float64 `yaml:"damping"`       // velocity kept per frame without input
	WaterDamping  float64 `yaml:"water_damping"` // same, in water
	Gravity       float64 `yaml:"gravity"`
	Jump          float64 `yaml:"jump"`
	WaterSink     float64 `yaml:"water_sink"`
	WaterDrag     float64 `yaml:"water_drag"` // vertical velocity kept per frame in water
	Swim          float64 `yaml:"swim"`
	StepHeight    float64 `yaml:"step_height"` // ledge climbed without jumping, in cells
}

// RenderScale defines pixels per cell for each surface.
type RenderScale struct {
	Window   int `yaml:"window"`
	Terminal int `yaml:"terminal"`
}

// TileWorldConfig contains all configuration for the tile world.
type TileWorldConfig struct {
	World   TileWorldTerrain `yaml:"world"`
	Trees   TileWorldTrees   `yaml:"trees"`
	Physics TileWorldPhysics `yaml:"physics"`
	Player  TileWorldPlayer  `yaml:"player"`
	Storage TileWorldStorage `yaml:"storage"`
	Render  TileWorldRender  `yaml:"render"`
	Cache   TileWorldCache   `yaml:"cache"`
}

// TileWorldTerrain defines world size and heightmap shape.
type TileWorldTerrain struct {
	Width      int      `yaml:"width"`
	Height     int      `yaml:"height"`
	TileSize   float64  `yaml:"tile_size"`
	SeaLevel   int      `yaml:"sea_level"`
	BaseHeight float64  `yaml:"base_height"`
	MinHeight  int      `yaml:"min_height"`
	MaxHeight  int      `yaml:"max_height"`
	DirtDepth  int      `yaml:"dirt_depth"`
	Octaves    []Octave `yaml:"octaves"`
}

// Octave is one layer of value noise.
type Octave struct {
	Period    float64 `yaml:"period"`
	Amplitude float64 `yaml:"amplitude"`
}

// TileWorldTrees defines tree placement.
type TileWorldTrees struct {
	Margin          int     `yaml:"margin"` // columns kept clear at each world edge
	Gap             int     `yaml:"gap"`    // minimum columns between trunks
	Chance          float64 `yaml:"chance"`
	TrunkMin        int     `yaml:"trunk_min"`
	TrunkVariance   int     `yaml:"trunk_variance"`
	CrownRadius     int     `yaml:"crown_radius"`
	CrownCoreChance float64 `yaml:"crown_core_chance"`
	CrownEdgeChance float64 `yaml:"crown_edge_chance"`
}

// TileWorldPhysics defines player motion in pixels and seconds.
type TileWorldPhysics struct {
	Accel          float64 `yaml:"accel"`
	WaterAccel     float64 `yaml:"water_accel"`
	MaxSpeed       float64 `yaml:"max_speed"`
	WaterMaxSpeed  float64 `yaml:"water_max_speed"`
	FrictionGround float64 `yaml:"friction_ground"`
	FrictionWater  float64 `yaml:"friction_water"`
	FrictionAir    float64 `yaml:"friction_air"`
	Gravity        float64 `yaml:"gravity"`
	Jump           float64 `yaml:"jump"`
	Buoyancy       float64 `yaml:"buoyancy"`
	WaterDrag      float64 `yaml:"water_drag"`
	Swim           float64 `yaml:"swim"`
	SwimDown       float64 `yaml:"swim_down"` // fraction of Swim applied when diving
	SurfaceBoost   float64 `yaml:"surface_boost"`
	BoostInterval  float64 `yaml:"boost_interval"` // seconds between surface boosts
	BoostGate      float64 `yaml:"boost_gate"`     // boost only while VY is above this
	StepHeight     float64 `yaml:"step_height"`    // in tiles
}

// TileWorldPlayer defines the player body in tiles.
type TileWorldPlayer struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	SpawnX float64 `yaml:"spawn_x"` // fraction of world width
	SpawnY float64 `yaml:"spawn_y"` // tiles from the top
	Reach  float64 `yaml:"reach"`   // tiles, centre to centre
}

// TileWorldStorage defines how edits are persisted.
type TileWorldStorage struct {
	Namespace string `yaml:"namespace"`
	SeedText  string `yaml:"seed_text"` // used when the seed text is blank
}

// TileWorldRender defines tile size on screen and camera smoothing.
type TileWorldRender struct {
	Scale           RenderScale `yaml:"scale"`
	CameraSmoothing float64     `yaml:"camera_smoothing"` // fraction of distance left after one second
}

// TileWorldCache bounds the generated terrain cache.
type TileWorldCache struct {
	Worlds int `yaml:"worlds"`
}
