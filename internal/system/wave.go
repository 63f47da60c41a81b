// internal/system/wave.go
package system

import (
	"math"

	"garden-guardians/internal/component"
	"garden-guardians/internal/config"
	"garden-guardians/internal/defs"
	"garden-guardians/internal/entity"
	"garden-guardians/internal/event"
	"garden-guardians/internal/utils"
	"garden-guardians/pkg/geom"
)

type spawnEdge int

const (
	edgeTop spawnEdge = iota
	edgeBottom
	edgeLeft
	edgeRight
)

// WaveSystem spawns waves on a timer that speeds up as the run goes on.
type WaveSystem struct {
	store           *entity.Store
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	archetypes      []defs.EnemyDefinition
	weights         []float64

	SpawnTimer    float64 // секунд до следующей волны; 0 = волна в первом же кадре
	SpawnInterval float64
	Waves         int // сколько волн уже вышло
}

func NewWaveSystem(store *entity.Store, lib *defs.Library, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		store:           store,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		archetypes:      lib.Enemies(),
		weights:         lib.SpawnWeights(),
		SpawnInterval:   config.InitialSpawnInterval,
	}
}

// NextInterval is the pause before the next wave at the given elapsed time.
func (s *WaveSystem) NextInterval(elapsed float64) float64 {
	return math.Max(config.MinSpawnInterval, s.SpawnInterval-elapsed*config.SpawnIntervalRamp)
}

// WaveSize is the number of enemies in a wave spawned at elapsed.
func WaveSize(elapsed float64) int {
	return 1 + int(math.Floor(elapsed/config.WaveGrowthPeriod))
}

// Update does nothing once the player is dead.
func (s *WaveSystem) Update(deltaTime float64) {
	if !s.store.Player.Alive() {
		return
	}
	s.SpawnTimer -= deltaTime
	if s.SpawnTimer > 0 {
		return
	}
	elapsed := s.store.GameTime
	s.SpawnTimer = s.NextInterval(elapsed)
	s.spawnWave(WaveSize(elapsed))
}

func (s *WaveSystem) spawnWave(size int) {
	for i := 0; i < size; i++ {
		def := s.archetypes[s.rng.ChooseWeighted(s.weights)]
		s.Spawn(def, s.edgePosition(def.Size))
	}
	s.Waves++
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveSpawned,
		Data: event.WaveData{Number: s.Waves, Size: size},
	})
}

// Spawn places one enemy of the archetype at pos.
func (s *WaveSystem) Spawn(def defs.EnemyDefinition, pos geom.Vec2) *component.Enemy {
	enemy := component.NewEnemy(s.store.NewEntity(), def, pos)
	s.store.AddEnemy(enemy)
	return enemy
}

// edgePosition picks a point just outside a random arena edge.
func (s *WaveSystem) edgePosition(size float64) geom.Vec2 {
	arena := s.store.Arena
	alongX := func() float64 { return arena.Left() + float64(s.rng.IntInclusive(0, int(arena.W))) }
	alongY := func() float64 { return arena.Top() + float64(s.rng.IntInclusive(0, int(arena.H))) }

	switch spawnEdge(s.rng.Intn(4)) {
	case edgeTop:
		return geom.V(alongX(), arena.Top()-size)
	case edgeBottom:
		return geom.V(alongX(), arena.Bottom()+size)
	case edgeLeft:
		return geom.V(arena.Left()-size, alongY())
	default:
		return geom.V(arena.Right()+size, alongY())
	}
}
