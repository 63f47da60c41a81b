// internal/app/game.go
package app

import (
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"garden-guardians/internal/component"
	"garden-guardians/internal/defs"
	"garden-guardians/internal/entity"
	"garden-guardians/internal/event"
	"garden-guardians/internal/interfaces"
	"garden-guardians/internal/system"
	"garden-guardians/internal/utils"
	"garden-guardians/pkg/geom"
)

// Game holds the state of one run and advances it frame by frame.
type Game struct {
	Store            *entity.Store
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService
	PlayerSystem     *system.PlayerSystem
	WeaponSystem     *system.WeaponSystem
	ProjectileSystem *system.ProjectileSystem
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ParticleSystem   *system.ParticleSystem
	WaveSystem       *system.WaveSystem
	StateSystem      *system.StateSystem
	RenderSystem     *system.RenderSystem
	AudioSystem      *system.AudioSystem

	lib        *defs.Library
	input      interfaces.InputProvider
	audio      interfaces.AudioSink
	logger     zerolog.Logger
	seed       int64
	weaponName string // оружие, которое переживает рестарт
	kills      int
}

// Option configures a Game.
type Option func(*Game)

// WithWeapon arms the player with the named weapon.
func WithWeapon(name string) Option {
	return func(g *Game) { g.weaponName = name }
}

// WithSeed fixes the random seed. Zero seeds from the clock.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.seed = seed }
}

func WithInput(input interfaces.InputProvider) Option {
	return func(g *Game) { g.input = input }
}

func WithAudio(sink interfaces.AudioSink) Option {
	return func(g *Game) { g.audio = sink }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// NewGame initializes a new game instance. An unknown weapon name is an error.
func NewGame(lib *defs.Library, opts ...Option) (*Game, error) {
	if lib == nil {
		return nil, eris.New("definitions library is required")
	}
	g := &Game{
		lib:    lib,
		logger: log.Logger,
	}
	for _, opt := range opts {
		opt(g)
	}

	var weapon defs.WeaponDefinition
	if g.weaponName != "" {
		var err error
		weapon, err = lib.Weapon(g.weaponName)
		if err != nil {
			return nil, eris.Wrap(err, "failed to create game")
		}
	}

	g.Rng = utils.NewPRNGService(g.seed)
	g.logger.Debug().Int64("seed", g.Rng.Seed()).Str("weapon", g.weaponName).Msg("Run created")
	g.build()
	if g.weaponName != "" {
		g.equip(weapon, false)
	}
	return g, nil
}

func (g *Game) build() {
	store := entity.NewStore(entity.DefaultArena())
	eventDispatcher := event.NewDispatcher()

	g.Store = store
	g.EventDispatcher = eventDispatcher
	g.kills = 0
	g.PlayerSystem = system.NewPlayerSystem(store, g.input)
	g.WeaponSystem = system.NewWeaponSystem(store, g.input, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(store)
	g.MovementSystem = system.NewMovementSystem(store)
	g.ParticleSystem = system.NewParticleSystem(store, g.Rng)
	g.CombatSystem = system.NewCombatSystem(store, g.ParticleSystem, eventDispatcher)
	g.WaveSystem = system.NewWaveSystem(store, g.lib, g.Rng, eventDispatcher)
	g.StateSystem = system.NewStateSystem(store, eventDispatcher)
	g.RenderSystem = system.NewRenderSystem(store)
	g.AudioSystem = system.NewAudioSystem(g.audio, eventDispatcher)

	listener := &GameEventListener{game: g}
	eventDispatcher.SubscribeAll(listener, event.EnemyKilled, event.WaveSpawned, event.PlayerDied, event.WeaponEquipped)
}

func (g *Game) equip(def defs.WeaponDefinition, retained bool) {
	g.weaponName = def.Name
	g.Store.Player.Weapon = component.NewWeapon(def)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.WeaponEquipped,
		Data: event.WeaponEquippedData{Weapon: def.Name, Retained: retained},
	})
}

// Update advances the simulation by one frame.
func (g *Game) Update(deltaTime float64) {
	g.Store.GameTime += deltaTime

	g.PlayerSystem.Update(deltaTime)
	g.WeaponSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.CombatSystem.Update()
	g.cleanupDestroyedEntities()
	g.ParticleSystem.Update(deltaTime)
	g.WaveSystem.Update(deltaTime)
	g.StateSystem.Update()
}

func (g *Game) cleanupDestroyedEntities() {
	g.Store.PruneBullets()
	g.Store.PruneEnemies()
}

// Reset starts a fresh run, keeping the current weapon if there is one.
func (g *Game) Reset() {
	g.logger.Info().
		Int("score", g.Store.Score).
		Int("kills", g.kills).
		Float64("elapsed", g.Store.GameTime).
		Msg("Restarting run")

	g.build()
	if g.weaponName == "" {
		return
	}
	def, err := g.lib.Weapon(g.weaponName)
	if err != nil {
		// имя уже проверено в NewGame
		g.logger.Error().Err(err).Msg("Weapon disappeared from the library")
		return
	}
	g.equip(def, true)
}

// SpawnEnemy drops an enemy of the named archetype at pos.
func (g *Game) SpawnEnemy(name string, pos geom.Vec2) (*component.Enemy, error) {
	def, err := g.lib.Enemy(name)
	if err != nil {
		return nil, err
	}
	return g.WaveSystem.Spawn(def, pos), nil
}

// Draw hands the current entities to the canvas.
func (g *Game) Draw(canvas interfaces.Canvas) {
	g.RenderSystem.Draw(canvas)
}

func (g *Game) Player() *component.Player { return g.Store.Player }

func (g *Game) Enemies() []*component.Enemy { return g.Store.Enemies }

func (g *Game) Bullets() []*component.Bullet { return g.Store.Bullets }

func (g *Game) Particles() []*component.Particle { return g.Store.Particles }

func (g *Game) Score() int { return g.Store.Score }

// Kills counts enemies shot down this run. Contact deaths do not count.
func (g *Game) Kills() int { return g.kills }

func (g *Game) Elapsed() float64 { return g.Store.GameTime }

func (g *Game) WeaponName() string { return g.weaponName }

// Seed is the seed the run's randomness was drawn from.
func (g *Game) Seed() int64 { return g.Rng.Seed() }

// WavesSurvived counts the waves spawned so far.
func (g *Game) WavesSurvived() int { return g.WaveSystem.Waves }

// IsOver reports whether the player has fallen.
func (g *Game) IsOver() bool { return !g.Store.Player.Alive() }
