// internal/event/types.go
package event

const (
	WeaponFired    EventType = "WeaponFired"    // выстрел прошёл кулдаун, Data: WeaponFiredData
	DamageDealt    EventType = "DamageDealt"    // любое нанесение урона, Data: DamageData
	EnemyKilled    EventType = "EnemyKilled"    // враг убит пулей, Data: types.EntityID
	WaveSpawned    EventType = "WaveSpawned"    // Data: WaveData
	WeaponEquipped EventType = "WeaponEquipped" // Data: WeaponEquippedData
	PlayerDied     EventType = "PlayerDied"     // здоровье игрока достигло нуля
)

// WeaponFiredData describes one successful trigger pull.
type WeaponFiredData struct {
	Weapon  string
	Bullets int
}

// DamageTarget tells who received the damage.
type DamageTarget int

const (
	TargetEnemy DamageTarget = iota
	TargetPlayer
)

// DamageData describes one damage application.
type DamageData struct {
	Target DamageTarget
	Amount float64
}

// WaveData describes a spawned wave.
type WaveData struct {
	Number int
	Size   int
}

// WeaponEquippedData is sent when a weapon is put into the player's hands.
// Retained is true when the weapon carried over a restart.
type WeaponEquippedData struct {
	Weapon   string
	Retained bool
}
