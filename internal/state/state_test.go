package state

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

type recordingState struct {
	name string
	log  *[]string
}

func (s *recordingState) Enter()                   { *s.log = append(*s.log, s.name+":enter") }
func (s *recordingState) Update(deltaTime float64) { *s.log = append(*s.log, s.name+":update") }
func (s *recordingState) Draw(*ebiten.Image)       { *s.log = append(*s.log, s.name+":draw") }
func (s *recordingState) Exit()                    { *s.log = append(*s.log, s.name+":exit") }

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	sm := NewStateMachine()

	sm.Update(0.1)
	sm.Draw(nil)
	assert.Empty(t, log, "no state, nothing happens")

	a := &recordingState{name: "a", log: &log}
	b := &recordingState{name: "b", log: &log}
	sm.SetState(a)
	sm.Update(0.1)
	sm.SetState(b)
	sm.Draw(nil)

	assert.Equal(t, []string{"a:enter", "a:update", "a:exit", "b:enter", "b:draw"}, log)
	assert.Same(t, b, sm.Current())
}

func TestStateMachineQuit(t *testing.T) {
	sm := NewStateMachine()
	assert.False(t, sm.Done())
	sm.Quit()
	assert.True(t, sm.Done())
}
