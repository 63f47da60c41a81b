// internal/audio/synth.go
package audio

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/rotisserie/eris"

	"garden-guardians/internal/config"
	"garden-guardians/internal/interfaces"
)

var (
	ErrUnknownSound = eris.New("unknown sound")
	ErrBadNote      = eris.New("bad note name")
)

const (
	toneAttack   = 0.08
	toneRelease  = 0.2
	chirpAttack  = 0.15
	chirpRelease = 0.2
	noiseSeed    = 0x2C3D

	musicBPM = 108
)

var (
	noteNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

	musicMelody = []string{
		"C5", "E5", "G5", "E5", "F5", "A5", "G5", "E5",
		"D5", "F5", "A5", "F5", "G5", "B5", "A5", "E5",
	}
	musicBass = []string{
		"C3", "C3", "C3", "C3", "F3", "F3", "F3", "F3",
		"G3", "G3", "G3", "G3", "F3", "F3", "F3", "F3",
	}
)

// Build synthesizes the named effect as mono samples in [-1, 1].
func Build(name interfaces.SoundName) ([]float64, error) {
	switch name {
	case interfaces.SoundShoot:
		return Tone(880, 0.12, 0.45, []float64{1.0, 0.4}), nil
	case interfaces.SoundHit:
		return Noise(0.18, 0.6), nil
	case interfaces.SoundPower:
		return Chirp(440, 880, 0.38, 0.55), nil
	}
	return nil, eris.Wrapf(ErrUnknownSound, "%q", name)
}

func sampleCount(duration float64) int {
	return max(1, int(config.SampleRate*duration))
}

// Tone is a sine with optional overtones (weights of the 1st, 2nd, ... harmonic)
// shaped by a short attack and release.
func Tone(freq, duration, volume float64, harmonics []float64) []float64 {
	if len(harmonics) == 0 {
		harmonics = []float64{1}
	}
	total := 0.0
	for _, h := range harmonics {
		total += math.Abs(h)
	}
	total = math.Max(1e-6, total)

	n := sampleCount(duration)
	attack := max(1, int(float64(n)*toneAttack))
	release := max(1, int(float64(n)*toneRelease))

	out := make([]float64, n)
	for i := range out {
		t := float64(i) / config.SampleRate
		s := 0.0
		for k, w := range harmonics {
			s += w * math.Sin(2*math.Pi*freq*float64(k+1)*t)
		}
		s /= total
		switch {
		case i < attack:
			s *= float64(i) / float64(attack)
		case i > n-release:
			s *= math.Max(0, float64(n-i)/float64(release))
		}
		out[i] = clampSample(s * volume)
	}
	return out
}

// Noise is a linearly decaying burst from a fixed LCG, so every run sounds the same.
func Noise(duration, volume float64) []float64 {
	n := sampleCount(duration)
	decay := 1 / float64(n)
	seed := uint32(noiseSeed)

	out := make([]float64, n)
	for i := range out {
		seed = (1103515245*seed + 12345) & 0x7FFFFFFF
		raw := float64(seed)/0x7FFFFFFF*2 - 1
		env := math.Max(0, 1-float64(i)*decay)
		out[i] = clampSample(raw * env * volume)
	}
	return out
}

// Chirp sweeps linearly from start to end Hz.
func Chirp(start, end, duration, volume float64) []float64 {
	n := sampleCount(duration)
	out := make([]float64, n)
	for i := range out {
		progress := float64(i) / float64(n)
		freq := start + (end-start)*progress
		t := float64(i) / config.SampleRate
		env := math.Min(1, progress/chirpAttack) * math.Min(1, math.Max(0, (1-progress)/chirpRelease))
		out[i] = clampSample(math.Sin(2*math.Pi*freq*t) * env * volume)
	}
	return out
}

// NoteFrequency converts names like "A4" or "C#5" to Hz (A4 = 440).
func NoteFrequency(name string) (float64, error) {
	if len(name) < 2 {
		return 0, eris.Wrapf(ErrBadNote, "%q", name)
	}
	octave, err := strconv.Atoi(name[len(name)-1:])
	if err != nil {
		return 0, eris.Wrapf(ErrBadNote, "%q", name)
	}
	semitone := -1
	for i, n := range noteNames {
		if n == name[:len(name)-1] {
			semitone = i
			break
		}
	}
	if semitone < 0 {
		return 0, eris.Wrapf(ErrBadNote, "%q", name)
	}
	const a = 9
	return 440 * math.Pow(2, float64(octave-4)+float64(semitone-a)/12), nil
}

// MusicLoop renders the background melody with its bass line, one note per beat.
func MusicLoop() ([]float64, error) {
	beat := max(1, int(config.SampleRate*60.0/musicBPM))
	out := make([]float64, 0, beat*len(musicMelody))

	for b, note := range musicMelody {
		melodyFreq, err := NoteFrequency(note)
		if err != nil {
			return nil, err
		}
		bassFreq, err := NoteFrequency(musicBass[b])
		if err != nil {
			return nil, err
		}
		for i := 0; i < beat; i++ {
			t := float64(b*beat+i) / config.SampleRate
			attack := math.Min(1, float64(i)/(float64(beat)*0.18))
			release := math.Min(1, float64(beat-i)/(float64(beat)*0.28))
			env := attack * release

			melody := math.Sin(2*math.Pi*melodyFreq*t) * env
			bass := math.Sin(2*math.Pi*bassFreq*t) * (0.55 + 0.35*env)
			out = append(out, clampSample(0.42*melody+0.28*bass))
		}
	}
	return out, nil
}

func clampSample(s float64) float64 {
	return math.Max(-1, math.Min(1, s))
}

// EncodePCM turns mono samples into 16-bit little-endian stereo frames.
func EncodePCM(samples []float64) []byte {
	out := make([]byte, len(samples)*4)
	for i, s := range samples {
		v := uint16(int16(clampSample(s) * 32767))
		binary.LittleEndian.PutUint16(out[4*i:], v)   // left
		binary.LittleEndian.PutUint16(out[4*i+2:], v) // right
	}
	return out
}
