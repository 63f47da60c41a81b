package system

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"garden-guardians/internal/defs"
	"garden-guardians/internal/entity"
	"garden-guardians/internal/event"
	"garden-guardians/internal/interfaces"
	"garden-guardians/internal/utils"
	"garden-guardians/pkg/geom"
)

type testWorld struct {
	store      *entity.Store
	lib        *defs.Library
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
	events     []event.Event
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	lib, err := defs.LoadDefault()
	require.NoError(t, err)

	w := &testWorld{
		store:      entity.NewStore(entity.DefaultArena()),
		lib:        lib,
		rng:        utils.NewPRNGService(42),
		dispatcher: event.NewDispatcher(),
	}
	w.dispatcher.SubscribeAll(event.ListenerFunc(func(e event.Event) {
		w.events = append(w.events, e)
	}), event.WeaponFired, event.DamageDealt, event.EnemyKilled, event.WaveSpawned, event.PlayerDied)
	return w
}

func (w *testWorld) count(t event.EventType) int {
	n := 0
	for _, e := range w.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type recordingSink struct {
	played []interfaces.SoundName
}

func (s *recordingSink) Play(name interfaces.SoundName) {
	s.played = append(s.played, name)
}

type recordingCanvas struct {
	calls map[string]int
}

func newRecordingCanvas() *recordingCanvas {
	return &recordingCanvas{calls: map[string]int{}}
}

func (c *recordingCanvas) Fill(color.Color)                             { c.calls["fill"]++ }
func (c *recordingCanvas) FillCircle(geom.Vec2, float64, color.Color)   { c.calls["circle"]++ }
func (c *recordingCanvas) FillEllipse(geom.Rect, color.Color)           { c.calls["ellipse"]++ }
func (c *recordingCanvas) Line(geom.Vec2, geom.Vec2, float64, color.Color) {
	c.calls["line"]++
}
func (c *recordingCanvas) StrokeRect(geom.Rect, float64, color.Color) { c.calls["rect"]++ }
func (c *recordingCanvas) Arc(geom.Rect, float64, float64, float64, color.Color) {
	c.calls["arc"]++
}
func (c *recordingCanvas) Text(string, int, float64, float64, color.Color) { c.calls["text"]++ }
func (c *recordingCanvas) MeasureText(s string, size int) (float64, float64) {
	return float64(len(s) * size / 2), float64(size)
}
