package audio

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/road-racer/internal/engine"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a single tone for a fixed duration
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a finite tone generator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + int64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		v := waveValue(o.wave, o.phase, o.rng)
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

func waveValue(wave WaveType, phase float64, rng *rand.Rand) float64 {
	switch wave {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	case WaveNoise:
		return rng.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// noteFreq returns the frequency of a note n semitones away from A4.
func noteFreq(n int) float64 {
	return 440 * math.Pow(2, float64(n)/12)
}

func tone(semitone int, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(noteFreq(semitone), d, wave, rate)
	return NewEnvelope(osc, d, 5*time.Millisecond, d/3, rate)
}

// NewSound builds a one-shot effect for a preset.
func NewSound(sfx engine.SfxPreset, rate beep.SampleRate) (beep.Streamer, error) {
	switch sfx {
	case engine.SfxImpact1:
		d := 120 * time.Millisecond
		return NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, time.Millisecond, 100*time.Millisecond, rate), nil
	case engine.SfxImpact3:
		d := 250 * time.Millisecond
		thud := NewEnvelope(NewOscillator(70, d, WaveSaw, rate), d, time.Millisecond, 200*time.Millisecond, rate)
		crash := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, time.Millisecond, 220*time.Millisecond, rate)
		return beep.Mix(newVolume(thud, 0.6), newVolume(crash, 0.4)), nil
	case engine.SfxJingle1:
		n := 90 * time.Millisecond
		return beep.Seq(
			tone(3, n, WaveSquare, rate),
			tone(7, n, WaveSquare, rate),
			tone(10, 2*n, WaveSquare, rate),
		), nil
	case engine.SfxJingle3:
		// Descending minor run, game over.
		n := 140 * time.Millisecond
		return beep.Seq(
			tone(7, n, WaveSquare, rate),
			tone(3, n, WaveSquare, rate),
			tone(0, n, WaveSquare, rate),
			tone(-5, 3*n, WaveSquare, rate),
		), nil
	default:
		return nil, fmt.Errorf("%w: sfx %q", ErrUnknownPreset, sfx)
	}
}

// melody loops a note sequence forever.
type melody struct {
	notes  []int // Semitones from A4; restNote is silence
	beat   int   // Samples per note
	wave   WaveType
	rate   beep.SampleRate
	pos    int
	phase  float64
	rng    *rand.Rand
	volume float64
}

const restNote = math.MinInt32

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := (m.pos / m.beat) % len(m.notes)
		within := m.pos % m.beat
		var v float64
		if note := m.notes[idx]; note != restNote {
			if within == 0 {
				m.phase = 0
			}
			// Short decay per note keeps notes separated.
			decay := 1 - float64(within)/float64(m.beat)
			v = m.volume * decay * waveValue(m.wave, m.phase, m.rng)
			m.phase += noteFreq(note) / float64(m.rate)
			m.phase -= math.Floor(m.phase)
		}
		samples[i][0] = v
		samples[i][1] = v
		m.pos++
	}
	return len(samples), true
}

func (m *melody) Err() error { return nil }

// NewMusic builds an endless background track for a preset.
func NewMusic(music engine.MusicPreset, rate beep.SampleRate) (beep.Streamer, error) {
	switch music {
	case engine.MusicWhimsicalPopsicle:
		return &melody{
			notes:  []int{3, 7, 10, 7, 12, 10, 7, restNote, 5, 8, 12, 8, 15, 12, 8, restNote},
			beat:   rate.N(180 * time.Millisecond),
			wave:   WaveSquare,
			rate:   rate,
			rng:    rand.New(rand.NewSource(1)),
			volume: 0.5,
		}, nil
	case engine.MusicClassyChiptune:
		return &melody{
			notes:  []int{0, 4, 7, 12, 7, 4, -5, -1, 2, 7, 2, -1},
			beat:   rate.N(220 * time.Millisecond),
			wave:   WaveSaw,
			rate:   rate,
			rng:    rand.New(rand.NewSource(2)),
			volume: 0.4,
		}, nil
	default:
		return nil, fmt.Errorf("%w: music %q", ErrUnknownPreset, music)
	}
}
