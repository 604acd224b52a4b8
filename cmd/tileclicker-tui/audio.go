package main

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"golang.org/x/time/rate"
)

const sampleRate = beep.SampleRate(44100)

// tone is a sine oscillator with a short linear fade-out.
type tone struct {
	freq     float64
	phase    float64
	position int
	duration int
}

func newTone(freq float64, d time.Duration) beep.Streamer {
	return &tone{freq: freq, duration: sampleRate.N(d)}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, false
		}
		env := 1 - float64(t.position)/float64(t.duration)
		v := math.Sin(2*math.Pi*t.phase) * env
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(sampleRate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// Sounds plays short feedback tones through a shared mixer. Click tones are
// rate limited so a burst of clicks does not stack into noise.
type Sounds struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	limiter *rate.Limiter
	enabled bool
}

// NewSounds opens the speaker. A failed init leaves the player silent.
func NewSounds() (*Sounds, error) {
	s := &Sounds{
		mixer:   &beep.Mixer{},
		limiter: rate.NewLimiter(rate.Every(80*time.Millisecond), 3),
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return s, err
	}
	speaker.Play(s.mixer)
	s.enabled = true
	return s, nil
}

func (s *Sounds) play(streamers ...beep.Streamer) {
	if s.limiter != nil && !s.limiter.Allow() {
		return
	}
	s.playNow(streamers...)
}

func (s *Sounds) playNow(streamers ...beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.enabled {
		return
	}
	vol := &effects.Volume{Streamer: beep.Seq(streamers...), Base: 2, Volume: -2}
	speaker.Lock()
	s.mixer.Add(vol)
	speaker.Unlock()
}

// Purchase plays a rising chirp.
func (s *Sounds) Purchase() {
	s.play(newTone(660, 50*time.Millisecond), newTone(880, 70*time.Millisecond))
}

// Sale plays a falling chirp.
func (s *Sounds) Sale() {
	s.play(newTone(880, 50*time.Millisecond), newTone(660, 70*time.Millisecond))
}

// Refused plays a low buzz.
func (s *Sounds) Refused() {
	s.play(newTone(160, 120*time.Millisecond))
}

// Win plays a short arpeggio.
func (s *Sounds) Win() {
	s.playNow(
		newTone(523, 120*time.Millisecond),
		newTone(659, 120*time.Millisecond),
		newTone(784, 120*time.Millisecond),
		newTone(1047, 300*time.Millisecond),
	)
}

// Close silences the mixer.
func (s *Sounds) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.enabled {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.enabled = false
}
