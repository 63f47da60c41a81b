// internal/audio/player.go
package audio

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"garden-guardians/internal/config"
	"garden-guardians/internal/interfaces"
)

// Player is the ebiten-backed sound sink. Playback failures are logged and
// never reach the caller.
type Player struct {
	ctx     *audio.Context
	cache   *Cache
	music   *audio.Player
	enabled bool
	logger  zerolog.Logger
}

var _ interfaces.AudioSink = (*Player)(nil)

// NewPlayer opens the process-wide audio context.
func NewPlayer(enabled bool, logger zerolog.Logger) *Player {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(config.SampleRate)
	}
	return &Player{
		ctx:     ctx,
		cache:   NewCache(),
		enabled: enabled,
		logger:  logger,
	}
}

func (p *Player) Play(name interfaces.SoundName) {
	if !p.enabled {
		return
	}
	pcm, err := p.cache.Get(name)
	if err != nil {
		p.logger.Debug().Err(err).Str("sound", string(name)).Msg("Sound skipped")
		return
	}
	p.ctx.NewPlayerFromBytes(pcm).Play()
}

// StartMusic loops the background melody at the configured volume.
func (p *Player) StartMusic() error {
	if p.music == nil {
		samples, err := MusicLoop()
		if err != nil {
			return eris.Wrap(err, "failed to synthesize music")
		}
		pcm := EncodePCM(samples)
		loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
		music, err := p.ctx.NewPlayer(loop)
		if err != nil {
			return eris.Wrap(err, "failed to create music player")
		}
		music.SetVolume(config.MusicVolume)
		p.music = music
	}
	if p.enabled {
		p.music.Play()
	}
	return nil
}

// SetEnabled switches all sound on or off. Turning it off drops the cache.
func (p *Player) SetEnabled(enabled bool) {
	p.enabled = enabled
	if !enabled {
		p.cache.Clear()
	}
	if p.music == nil {
		return
	}
	if enabled {
		p.music.Play()
	} else {
		p.music.Pause()
	}
}

func (p *Player) Enabled() bool {
	return p.enabled
}

// Toggle flips sound and returns the new state.
func (p *Player) Toggle() bool {
	p.SetEnabled(!p.enabled)
	p.logger.Info().Bool("enabled", p.enabled).Msg("Sound toggled")
	return p.enabled
}
