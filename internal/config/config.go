// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 960
	ScreenHeight = 540
	TPS          = 60
	MaxDeltaTime = 0.06

	PlayerSpeed  = 240.0
	PlayerRadius = 24.0
	PlayerHealth = 100

	BulletRadius = 6.0

	ContactDamage = 10 // урон игроку при касании врага
	KillScore     = 5

	InitialSpawnInterval = 1.4
	MinSpawnInterval     = 0.4
	SpawnIntervalRamp    = 0.01 // секунд интервала за секунду игры
	WaveGrowthPeriod     = 12.0 // +1 враг в волне каждые N секунд

	ParticlesPerBurst   = 12
	ParticleMaxSpeed    = 120.0
	ParticleMinLifetime = 0.2
	ParticleMaxLifetime = 0.6
	ParticleMinRadius   = 2.0
	ParticleMaxRadius   = 6.0
	ParticleShrinkRate  = 40.0

	GridSpacing = 48

	MusicVolume = 0.4
	SampleRate  = 22050
)

var (
	BackgroundColor = color.RGBA{20, 28, 22, 255}
	GridColor       = color.RGBA{35, 55, 38, 255}
	UIColor         = color.RGBA{238, 255, 220, 255}
	PlayerColor     = color.RGBA{120, 200, 120, 255}
	PlayerEyeColor  = color.RGBA{30, 50, 30, 255}
	EnemyEyeColor   = color.RGBA{20, 20, 20, 255}

	// Палитра частиц; к ней добавляется цвет источника вспышки.
	ParticleColors = []color.RGBA{
		{255, 180, 80, 255},
		{255, 255, 160, 255},
		{120, 255, 120, 255},
		{180, 160, 255, 255},
	}
)
