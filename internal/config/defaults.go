package config

import (
	_ "embed"
)

//go:embed defaults/sandbox.yaml
var defaultSandboxYAML []byte

//go:embed defaults/tileworld.yaml
var defaultTileWorldYAML []byte

// DefaultSandboxConfig returns the default sandbox configuration.
func DefaultSandboxConfig() SandboxConfig {
	return SandboxConfig{
		Grid: SandboxGrid{
			Width:  160,
			Height: 96,
		},
		Brush: SandboxBrush{
			Radius:    3,
			MinRadius: 1,
			MaxRadius: 7,
			Tool:      "sand",
		},
		Fire: SandboxFire{
			PaintTTL:     16,
			OilTTL:       20,
			SpreadTTL:    18,
			DriftChance:  0.25,
			SpreadChance: 0.08,
		},
		Bomb: SandboxBomb{
			Fuse:        18,
			Radius:      7,
			SparkBelow:  6,
			SparkChance: 0.4,
			SparkTTL:    8,
		},
		Gunpowder: SandboxGunpowder{
			Radius: 4,
		},
		Explosion: SandboxExplosion{
			RingChance:     0.4,
			RingWidth:      1.5,
			RingTTLMin:     10,
			RingTTLSpread:  10,
			KnockbackReach: 6,
			Push:           10,
			Lift:           14,
		},
		Water: SandboxWater{
			Spread: 5,
		},
		Player: SandboxPlayer{
			SpawnY:        8,
			Width:         2,
			Height:        3,
			Accel:         0.28,
			WaterAccel:    0.22,
			MaxSpeed:      1.15,
			WaterMaxSpeed: 0.9,
			Damping:       0.78,
			WaterDamping:  0.70,
			Gravity:       0.28,
			Jump:          3.2,
			WaterSink:     0.14,
			WaterDrag:     0.86,
			Swim:          0.34,
			StepHeight:    1,
		},
		Render: RenderScale{
			Window:   6,
			Terminal: 1,
		},
	}
}

// DefaultTileWorldConfig returns the default tile world configuration.
func DefaultTileWorldConfig() TileWorldConfig {
	return TileWorldConfig{
		World: TileWorldTerrain{
			Width:      220,
			Height:     90,
			TileSize:   18,
			SeaLevel:   56,
			BaseHeight: 48,
			MinHeight:  26,
			MaxHeight:  66,
			DirtDepth:  4,
			Octaves: []Octave{
				{Period: 28, Amplitude: 9},
				{Period: 14, Amplitude: 4.5},
				{Period: 7, Amplitude: 2.2},
			},
		},
		Trees: TileWorldTrees{
			Margin:          4,
			Gap:             6,
			Chance:          0.11,
			TrunkMin:        4,
			TrunkVariance:   3,
			CrownRadius:     2,
			CrownCoreChance: 0.95,
			CrownEdgeChance: 0.55,
		},
		Physics: TileWorldPhysics{
			Accel:          1750,
			WaterAccel:     1450,
			MaxSpeed:       380,
			WaterMaxSpeed:  260,
			FrictionGround: 22,
			FrictionWater:  12,
			FrictionAir:    6,
			Gravity:        1900,
			Jump:           520,
			Buoyancy:       820,
			WaterDrag:      6,
			Swim:           1600,
			SwimDown:       0.85,
			SurfaceBoost:   620,
			BoostInterval:  0.24,
			BoostGate:      -220,
			StepHeight:     0.9,
		},
		Player: TileWorldPlayer{
			Width:  0.75,
			Height: 1.55,
			SpawnX: 0.5,
			SpawnY: 10,
			Reach:  5.2,
		},
		Storage: TileWorldStorage{
			Namespace: "mc-lite",
			SeedText:  "matthieu",
		},
		Render: TileWorldRender{
			Scale: RenderScale{
				Window:   18,
				Terminal: 2,
			},
			CameraSmoothing: 0.0015,
		},
		Cache: TileWorldCache{
			Worlds: 8,
		},
	}
}
