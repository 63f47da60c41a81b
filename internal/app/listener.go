// internal/app/listener.go
package app

import (
	"garden-guardians/internal/event"
	"garden-guardians/internal/types"
)

// GameEventListener пишет в лог важные для забега события.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		l.game.kills++
		if id, ok := e.Data.(types.EntityID); ok {
			l.game.logger.Trace().Uint64("id", uint64(id)).Int("kills", l.game.kills).Msg("Enemy killed")
		}
	case event.WaveSpawned:
		if data, ok := e.Data.(event.WaveData); ok {
			l.game.logger.Debug().
				Int("wave", data.Number).
				Int("size", data.Size).
				Float64("elapsed", l.game.Store.GameTime).
				Float64("next_in", l.game.WaveSystem.SpawnTimer).
				Msg("Wave spawned")
		}
	case event.PlayerDied:
		l.game.logger.Info().
			Int("score", l.game.Store.Score).
			Int("kills", l.game.kills).
			Float64("elapsed", l.game.Store.GameTime).
			Int("waves", l.game.WaveSystem.Waves).
			Msg("Player defeated")
	case event.WeaponEquipped:
		if data, ok := e.Data.(event.WeaponEquippedData); ok {
			l.game.logger.Info().
				Str("weapon", data.Weapon).
				Bool("retained", data.Retained).
				Msg("Weapon equipped")
		}
	}
}
