package app

import (
	"testing"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garden-guardians/internal/defs"
	"garden-guardians/internal/interfaces"
	"garden-guardians/pkg/geom"
)

const frame = 1.0 / 60

type recordingSink struct {
	played []interfaces.SoundName
}

func (s *recordingSink) Play(name interfaces.SoundName) {
	s.played = append(s.played, name)
}

func (s *recordingSink) count(name interfaces.SoundName) int {
	n := 0
	for _, p := range s.played {
		if p == name {
			n++
		}
	}
	return n
}

func newTestGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	lib, err := defs.LoadDefault()
	require.NoError(t, err)
	opts = append([]Option{WithSeed(7), WithLogger(zerolog.Nop())}, opts...)
	g, err := NewGame(lib, opts...)
	require.NoError(t, err)
	return g
}

func TestNewGameRejectsUnknownWeapon(t *testing.T) {
	lib, err := defs.LoadDefault()
	require.NoError(t, err)

	_, err = NewGame(lib, WithWeapon("Banana Cannon"), WithLogger(zerolog.Nop()))
	require.Error(t, err)
	assert.True(t, eris.Is(err, defs.ErrUnknownWeapon))
}

func TestNewGameInitialState(t *testing.T) {
	g := newTestGame(t, WithWeapon("Thorn Fork"))

	assert.Equal(t, geom.V(480, 270), g.Player().Position)
	assert.Equal(t, 100, g.Player().Health)
	require.NotNil(t, g.Player().Weapon)
	assert.Equal(t, "Thorn Fork", g.WeaponName())
	assert.Zero(t, g.Score())
	assert.Zero(t, g.Elapsed())
	assert.Empty(t, g.Enemies())
}

func TestFirstFrameSpawnsWave(t *testing.T) {
	g := newTestGame(t)
	g.Update(frame)
	assert.Len(t, g.Enemies(), 1)
	assert.Equal(t, 1, g.WavesSurvived())
}

func TestEndToEndSeedBlasterKillsSproutling(t *testing.T) {
	in := &interfaces.InputSnapshot{Fire: true}
	sink := &recordingSink{}
	g := newTestGame(t, WithWeapon("Seed Blaster"), WithInput(in), WithAudio(sink))

	start := g.Player().Position
	in.Target = start.Add(geom.V(400, 0))
	target, err := g.SpawnEnemy("Sproutling", start.Add(geom.V(100, 0)))
	require.NoError(t, err)

	for i := 0; i < 30; i++ {
		g.Update(frame)
	}

	assert.True(t, target.IsDead())
	assert.NotContains(t, g.Enemies(), target)
	assert.Equal(t, 5, g.Score())
	assert.Equal(t, 1, g.Kills())
	assert.Equal(t, 100, g.Player().Health)
	assert.Equal(t, 2, sink.count(interfaces.SoundShoot))
	assert.Equal(t, 2, sink.count(interfaces.SoundHit))
}

func TestContactKillIsNotScored(t *testing.T) {
	g := newTestGame(t)
	_, err := g.SpawnEnemy("Root Beast", g.Player().Position)
	require.NoError(t, err)

	g.Update(frame)

	assert.Equal(t, 90, g.Player().Health)
	assert.Zero(t, g.Score())
	assert.Zero(t, g.Kills())
}

func TestSpawnUnknownEnemy(t *testing.T) {
	g := newTestGame(t)
	_, err := g.SpawnEnemy("Dandelion", geom.V(0, 0))
	assert.True(t, eris.Is(err, defs.ErrUnknownEnemy))
}

func TestPlayerStaysInBounds(t *testing.T) {
	in := &interfaces.InputSnapshot{}
	g := newTestGame(t, WithInput(in))
	r := g.Player().Radius
	moves := []interfaces.Movement{
		{Up: true, Left: true},
		{Down: true},
		{Right: true, Down: true},
		{Up: true, Right: true},
		{Left: true},
	}

	for i := 0; i < 1200; i++ {
		in.Move = moves[(i/90)%len(moves)]
		g.Update(frame)
		p := g.Player().Position
		require.GreaterOrEqual(t, p.X, r)
		require.LessOrEqual(t, p.X, 960-r)
		require.GreaterOrEqual(t, p.Y, r)
		require.LessOrEqual(t, p.Y, 540-r)
		require.GreaterOrEqual(t, g.Player().Health, 0)
	}
}

func TestDefeatStopsSpawning(t *testing.T) {
	g := newTestGame(t)
	g.Player().Health = 5
	_, err := g.SpawnEnemy("Sproutling", g.Player().Position)
	require.NoError(t, err)

	g.Update(frame)
	require.True(t, g.IsOver())
	assert.Equal(t, 0, g.Player().Health)
	assert.True(t, g.StateSystem.Defeated())

	waves := g.WavesSurvived()
	for i := 0; i < 300; i++ {
		g.Update(frame)
	}
	assert.Equal(t, waves, g.WavesSurvived())
}

func TestDeadPlayerDoesNotShoot(t *testing.T) {
	in := &interfaces.InputSnapshot{Fire: true, Target: geom.V(0, 0)}
	g := newTestGame(t, WithWeapon("Seed Blaster"), WithInput(in))
	g.Player().Health = 0

	g.Update(frame)
	assert.Empty(t, g.Bullets())
}

func TestResetKeepsWeapon(t *testing.T) {
	in := &interfaces.InputSnapshot{Fire: true, Target: geom.V(0, 0)}
	sink := &recordingSink{}
	g := newTestGame(t, WithWeapon("Solar Beam"), WithInput(in), WithAudio(sink))
	assert.Zero(t, sink.count(interfaces.SoundPower), "first equip is silent")

	for i := 0; i < 120; i++ {
		g.Update(frame)
	}
	g.Store.Score = 40

	g.Reset()

	assert.Equal(t, "Solar Beam", g.WeaponName())
	require.NotNil(t, g.Player().Weapon)
	assert.Zero(t, g.Player().Weapon.Timer)
	assert.Zero(t, g.Score())
	assert.Zero(t, g.Elapsed())
	assert.Empty(t, g.Enemies())
	assert.Empty(t, g.Bullets())
	assert.Equal(t, 100, g.Player().Health)
	assert.Equal(t, 1, sink.count(interfaces.SoundPower))

	// the rebuilt systems still use the same input and sink
	shots := sink.count(interfaces.SoundShoot)
	g.Update(frame)
	assert.Equal(t, shots+1, sink.count(interfaces.SoundShoot))
}

func TestResetWithoutWeapon(t *testing.T) {
	sink := &recordingSink{}
	g := newTestGame(t, WithAudio(sink))
	g.Update(frame)

	g.Reset()
	assert.Empty(t, g.WeaponName())
	assert.Nil(t, g.Player().Weapon)
	assert.Zero(t, sink.count(interfaces.SoundPower))
}

type enemySnapshot struct {
	Name     string
	Position geom.Vec2
}

func runFrames(g *Game, frames int) []enemySnapshot {
	for i := 0; i < frames; i++ {
		g.Update(frame)
	}
	out := make([]enemySnapshot, 0, len(g.Enemies()))
	for _, e := range g.Enemies() {
		out = append(out, enemySnapshot{Name: e.Name, Position: e.Position})
	}
	return out
}

func TestUnseededRunsDiffer(t *testing.T) {
	first := newTestGame(t, WithSeed(0))
	second := newTestGame(t, WithSeed(0))
	assert.NotEqual(t, first.Seed(), second.Seed())

	a := runFrames(first, 600)
	b := runFrames(second, 600)
	require.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestPinnedSeedReplaysRun(t *testing.T) {
	first := newTestGame(t, WithSeed(1234567))
	second := newTestGame(t, WithSeed(1234567))
	assert.Equal(t, int64(1234567), first.Seed())
	assert.Equal(t, runFrames(first, 600), runFrames(second, 600))
}
