// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	MaxDeltaTime = 0.033 // ограничение шага, чтобы долгая пауза вкладки не ломала симуляцию

	MapWidth  = 2000.0
	MapHeight = 1200.0

	// Игрок
	PlayerRadius    = 14.0
	PlayerMaxHealth = 100
	PlayerSpeed     = 210.0 // единиц в секунду
	WalkMultiplier  = 0.6
	PlayerSpawnX    = 260.0
	PlayerSpawnY    = 420.0
	MaxArmor        = 50

	// Способности
	DashCooldown      = 6.0
	DashDistance      = 120.0
	SmokeCooldown     = 12.0
	SmokeThrowDist    = 180.0
	SmokeRadius       = 90.0
	SmokeLifetime     = 3.0
	ArmorAbsorbRatio  = 0.7
	DefaultPlayerGun  = "Classic"
	DefaultEnemyGun   = "Vandal"

	// Враги
	EnemyRadius        = 14.0
	EnemyMaxHealth     = 100
	EnemyDetectRadius  = 600.0
	EnemyChaseSpeed    = 160.0
	EnemyChaseFactor   = 0.6
	EnemyWiggleSpeed   = 40.0
	EnemyAimJitter     = 0.05
	LineOfSightSamples = 20
	EnemyBaseCount     = 4
	EnemySpawnX        = 1300.0
	EnemySpawnY        = 400.0
	EnemySpawnW        = 500.0
	EnemySpawnH        = 300.0

	// Снаряды
	ProjectileSpeed     = 1400.0
	ProjectileLife      = 1.0
	ProjectileDecayRate = 1.7
	ZoomFalloff         = 0.4
	ProjectileRadius    = 2.0

	// Отдача
	MaxRecoil        = 0.12
	RecoilDecay      = 0.08
	RecoilDecayDelay = 0.08

	// Спайк
	PlantDuration      = 4.0
	DefuseDuration     = 7.0
	DetonationCooldown = 45.0
	DefuseRadius       = 80.0

	// Раунды
	MaxRounds         = 12
	InitialCredits    = 800
	RoundCreditBonus  = 1800
	BuyPhaseDuration  = 15.0
	RoundEndDelay     = 1.4
	DefaultToastTime  = 1.5
	ShortToastTime    = 0.6
	ProgressToastTime = 0.2

	// Частицы
	ParticleSpeed   = 260.0
	ParticleMinLife = 0.2
	ParticleLifeVar = 0.4
	DashBurst       = 8
	HitBurst        = 6
	DeathBurst      = 18
	MuzzleBurst     = 3

	GridSize = 40
)

var (
	BackgroundColor  = color.RGBA{15, 20, 28, 255}
	GridColor        = color.RGBA{21, 32, 46, 255}
	WallColor        = color.RGBA{36, 48, 64, 255}
	SiteFillColor    = color.RGBA{6, 21, 14, 30} // полупрозрачные цвета заданы premultiplied
	SiteStrokeColor  = color.RGBA{25, 90, 60, 128}
	SiteTextColor    = color.RGBA{141, 180, 162, 180}
	PlayerColor      = color.RGBA{207, 232, 255, 255}
	PlayerFacing     = color.RGBA{127, 176, 255, 255}
	EnemyColor       = color.RGBA{246, 179, 179, 255}
	EnemyFacing      = color.RGBA{255, 139, 139, 255}
	SmokeColor       = color.RGBA{106, 160, 255, 255}
	BulletColor      = color.RGBA{255, 255, 255, 255}
	SpikeColor       = color.RGBA{204, 64, 64, 204}
	SpikeTextColor   = color.RGBA{255, 176, 176, 255}
	CrosshairColor   = color.RGBA{209, 227, 255, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	PanelColor       = color.RGBA{9, 12, 17, 220}
	ButtonColor      = color.RGBA{36, 48, 64, 255}
	ButtonHoverColor = color.RGBA{56, 76, 100, 255}
	ToastColor       = color.RGBA{18, 23, 32, 230}
	BuyPhaseColor    = color.RGBA{60, 112, 155, 220}
	LivePhaseColor   = color.RGBA{190, 52, 52, 220}
	PostPlantColor   = color.RGBA{220, 121, 0, 220}
	WinColor         = color.RGBA{43, 177, 43, 220}
	LoseColor        = color.RGBA{129, 60, 60, 220}

	DashBurstColor  = color.RGBA{136, 204, 255, 255}
	HeadshotColor   = color.RGBA{255, 239, 139, 255}
	BodyHitColor    = color.RGBA{255, 68, 85, 255}
	DeathBurstColor = color.RGBA{255, 136, 136, 255}
	MuzzleColor     = color.RGBA{255, 208, 119, 255}
)
