package sound

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Chirper plays a chirp per call. A disabled Chirper is silent.
type Chirper struct {
	ctx    *audio.Context
	player *audio.Player
}

func NewChirper(enabled bool) *Chirper {
	if !enabled {
		return &Chirper{}
	}
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(int(SampleRate))
	}
	return &Chirper{ctx: ctx}
}

func (c *Chirper) Enabled() bool { return c.ctx != nil }

func (c *Chirper) Play() {
	if c.ctx == nil {
		return
	}
	p, err := c.ctx.NewPlayer(NewReader(Chirp(SampleRate), Format))
	if err != nil {
		log.Printf("sound: chirp: %v", err)
		return
	}
	p.SetVolume(0.5)
	p.Play()
	// Keep the last player reachable until the next chirp replaces it.
	c.player = p
}
