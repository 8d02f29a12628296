package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

type wave int

const (
	waveSine wave = iota
	waveSquare
	waveSaw
	waveNoise
)

// tone is a fixed-length oscillator.
type tone struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     wave
	rate     beep.SampleRate
}

func newTone(freq float64, d time.Duration, w wave, rate beep.SampleRate) *tone {
	return &tone{freq: freq, length: rate.N(d), wave: w, rate: rate}
}

func (o *tone) Stream(samples [][2]float64) (int, bool) {
	if o.position >= o.length {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.length {
			return i, true
		}
		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case waveSaw:
			val = 2 * (o.phase - 0.5)
		case waveNoise:
			val = rand.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{streamer: s, attack: rate.N(attack), release: rate.N(release), total: rate.N(d)}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Max(0, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly by vol. math.Log2(0) is -Inf so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func shaped(freq float64, d, attack, release time.Duration, w wave, rate beep.SampleRate) beep.Streamer {
	return newEnvelope(newTone(freq, d, w, rate), d, attack, release, rate)
}

// cue builds a fresh streamer for one sound effect.
type cue func(rate beep.SampleRate) beep.Streamer

// punchCue is a short noise thump.
func punchCue(rate beep.SampleRate) beep.Streamer {
	d := 90 * time.Millisecond
	return beep.Mix(
		newVolume(shaped(0, d, 2*time.Millisecond, 70*time.Millisecond, waveNoise, rate), 0.6),
		newVolume(shaped(70, d, 2*time.Millisecond, 60*time.Millisecond, waveSine, rate), 0.8),
	)
}

// monsterCue is a low growl.
func monsterCue(rate beep.SampleRate) beep.Streamer {
	d := 250 * time.Millisecond
	return beep.Mix(
		newVolume(shaped(98, d, 20*time.Millisecond, 120*time.Millisecond, waveSaw, rate), 0.7),
		newVolume(shaped(103, d, 20*time.Millisecond, 120*time.Millisecond, waveSaw, rate), 0.3),
	)
}

// monsterDieCue falls through three notes.
func monsterDieCue(rate beep.SampleRate) beep.Streamer {
	d := 120 * time.Millisecond
	var notes []beep.Streamer
	for _, f := range []float64{220, 165, 110} {
		notes = append(notes, shaped(f, d, 5*time.Millisecond, 60*time.Millisecond, waveSquare, rate))
	}
	return newVolume(beep.Seq(notes...), 0.5)
}

// pickCue is a rising two-note chime.
func pickCue(rate beep.SampleRate) beep.Streamer {
	d := 70 * time.Millisecond
	return beep.Seq(
		shaped(660, d, 3*time.Millisecond, 40*time.Millisecond, waveSine, rate),
		shaped(990, d, 3*time.Millisecond, 50*time.Millisecond, waveSine, rate),
	)
}

// droneCue is one bar of the background drone; it is looped.
func droneCue(rate beep.SampleRate) beep.Streamer {
	d := 4 * time.Second
	return beep.Mix(
		newVolume(shaped(55, d, time.Second, time.Second, waveSine, rate), 0.6),
		newVolume(shaped(82.5, d, time.Second, time.Second, waveSine, rate), 0.25),
		newVolume(shaped(0, d, time.Second, time.Second, waveNoise, rate), 0.02),
	)
}
