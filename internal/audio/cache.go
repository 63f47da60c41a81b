// internal/audio/cache.go
package audio

import (
	"sync"

	"garden-guardians/internal/interfaces"
)

// Cache keeps encoded sound effects so each one is synthesized only once.
// It is owned by the Player and cleared when sound is switched off.
type Cache struct {
	mu    sync.Mutex
	sound map[interfaces.SoundName][]byte
}

func NewCache() *Cache {
	return &Cache{sound: make(map[interfaces.SoundName][]byte)}
}

// Get returns the PCM of the named effect, building it on first use.
func (c *Cache) Get(name interfaces.SoundName) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if pcm, ok := c.sound[name]; ok {
		return pcm, nil
	}
	samples, err := Build(name)
	if err != nil {
		return nil, err
	}
	pcm := EncodePCM(samples)
	c.sound[name] = pcm
	return pcm, nil
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sound)
}

func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.sound)
}
