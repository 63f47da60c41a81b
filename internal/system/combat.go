// internal/system/combat.go
package system

import (
	"garden-guardians/internal/component"
	"garden-guardians/internal/config"
	"garden-guardians/internal/entity"
	"garden-guardians/internal/event"
)

// CombatSystem resolves enemy contact with the player and bullet hits.
// It only marks entities; removal happens in the prune step afterwards.
type CombatSystem struct {
	store           *entity.Store
	particles       *ParticleSystem
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(store *entity.Store, particles *ParticleSystem, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		store:           store,
		particles:       particles,
		eventDispatcher: eventDispatcher,
	}
}

// Update checks every enemy in order: contact with the player first, then
// at most one bullet. An enemy killed by contact is not checked against bullets.
func (s *CombatSystem) Update() {
	player := s.store.Player
	playerBox := player.Box()

	for _, enemy := range s.store.Enemies {
		if enemy.Removed {
			continue
		}
		if enemy.Box().Intersects(playerBox) {
			s.resolveContact(player, enemy)
			continue
		}
		s.resolveBulletHit(enemy)
	}

	player.ClampHealth()
}

func (s *CombatSystem) resolveContact(player *component.Player, enemy *component.Enemy) {
	player.TakeDamage(config.ContactDamage)
	s.particles.SpawnBurst(enemy.Position, enemy.Color)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.DamageDealt,
		Data: event.DamageData{Target: event.TargetPlayer, Amount: config.ContactDamage},
	})

	// Касание смертельно для врага независимо от остатка здоровья
	enemy.TakeDamage(enemy.Health)
	enemy.Removed = true
}

func (s *CombatSystem) resolveBulletHit(enemy *component.Enemy) {
	box := enemy.Box()
	for _, bullet := range s.store.Bullets {
		if !bullet.Alive || !box.ContainsPoint(bullet.Position) {
			continue
		}

		enemy.TakeDamage(bullet.Damage)
		s.particles.SpawnBurst(bullet.Position, bullet.Color)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.DamageDealt,
			Data: event.DamageData{Target: event.TargetEnemy, Amount: bullet.Damage},
		})

		if enemy.IsDead() {
			s.store.Score += config.KillScore
			s.particles.SpawnBurst(enemy.Position, enemy.Color)
			enemy.Removed = true
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: enemy.ID})
		}

		bullet.RegisterHit()
		// одна пуля на врага за кадр
		return
	}
}
