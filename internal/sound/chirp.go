// Package sound makes the little chirp the cat answers taps with.
package sound

import (
	"io"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
)

const SampleRate beep.SampleRate = 44100

// Format is 16-bit signed little-endian stereo, what ebiten's audio players read.
var Format = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

// sweep is a sine tone gliding from f0 to f1 Hz under a half-sine envelope.
func sweep(sr beep.SampleRate, f0, f1 float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	phase := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			t := float64(pos) / float64(total)
			freq := f0 + (f1-f0)*t
			phase += 2 * math.Pi * freq / float64(sr)
			env := math.Sin(math.Pi * t)
			v := math.Sin(phase) * env
			samples[i][0] = v
			samples[i][1] = v
			pos++
			n++
		}
		return n, true
	})
}

// Chirp is a two-note "mrrp": a rising glide, a short gap, a falling glide.
func Chirp(sr beep.SampleRate) beep.Streamer {
	s := beep.Seq(
		sweep(sr, 520, 880, 110*time.Millisecond),
		beep.Silence(sr.N(25*time.Millisecond)),
		sweep(sr, 760, 480, 150*time.Millisecond),
	)
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   -1.5,
	}
}

// Reader encodes a beep.Streamer as PCM bytes in the given format.
type Reader struct {
	s      beep.Streamer
	format beep.Format
	buf    [][2]float64
	done   bool
}

func NewReader(s beep.Streamer, format beep.Format) *Reader {
	return &Reader{s: s, format: format}
}

func (r *Reader) Read(p []byte) (int, error) {
	if r.done {
		return 0, io.EOF
	}
	frame := r.format.Width()
	frames := len(p) / frame
	if frames == 0 {
		return 0, nil
	}
	if cap(r.buf) < frames {
		r.buf = make([][2]float64, frames)
	}
	buf := r.buf[:frames]

	n, ok := r.s.Stream(buf)
	for i := 0; i < n; i++ {
		r.format.EncodeSigned(p[i*frame:], buf[i])
	}
	if !ok || n < frames {
		r.done = true
		if n == 0 {
			if err := r.s.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}
	}
	return n * frame, nil
}
