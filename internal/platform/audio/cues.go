// Package audio synthesizes the game's sound cues with beep. Everything is
// generated from oscillators at runtime, so there are no sample assets to
// ship and no decoder dependencies.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/rayraychen2011/tui-breaker/internal/core"
)

// SampleRate is the fixed output rate for all cues.
const SampleRate = beep.SampleRate(44100)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave for a fixed duration.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite streamer producing the given wave.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// sweep generates a sine wave whose frequency glides linearly from one
// value to another over the duration.
type sweep struct {
	from     float64
	to       float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// NewSweep creates a finite frequency glide, rising or falling.
func NewSweep(from, to float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:     from,
		to:       to,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, false
		}

		progress := float64(s.position) / float64(s.duration)
		freq := s.from + (s.to-s.from)*progress
		val := math.Sin(2 * math.Pi * s.phase)

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase = s.phase - math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies attack/release shaping to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps a streamer with a linear attack and release ramp.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0

		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a streamer in a volume effect.
// math.Log2(0) is -Inf, so zero volume is handled by muting instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Cue durations. Kept short so rapid events never stack into mush.
const (
	wallCueDuration   = 40 * time.Millisecond
	paddleCueDuration = 55 * time.Millisecond
	brickCueDuration  = 65 * time.Millisecond
	burstCueDuration  = 260 * time.Millisecond
	launchCueDuration = 90 * time.Millisecond
	boostNoteDuration = 55 * time.Millisecond
	lostCueDuration   = 280 * time.Millisecond
	clearNoteDuration = 90 * time.Millisecond
	overCueDuration   = 600 * time.Millisecond

	cueAttack  = 2 * time.Millisecond
	cueRelease = 25 * time.Millisecond
)

// WallCue is a short low thud for wall bounces.
func WallCue(vol float64) beep.Streamer {
	osc := NewOscillator(220, wallCueDuration, WaveSine, SampleRate)
	shaped := NewEnvelope(osc, wallCueDuration, cueAttack, cueRelease, SampleRate)
	return newVolume(shaped, 0.4*vol)
}

// PaddleCue is a mid-pitch tap for paddle bounces.
func PaddleCue(vol float64) beep.Streamer {
	osc := NewOscillator(330, paddleCueDuration, WaveSine, SampleRate)
	shaped := NewEnvelope(osc, paddleCueDuration, cueAttack, cueRelease, SampleRate)
	return newVolume(shaped, 0.5*vol)
}

// BrickCue is a bright ding with an octave overtone for destroyed bricks.
func BrickCue(vol float64) beep.Streamer {
	fund := NewOscillator(660, brickCueDuration, WaveSquare, SampleRate)
	fundShaped := NewEnvelope(fund, brickCueDuration, cueAttack, 45*time.Millisecond, SampleRate)

	over := NewOscillator(1320, brickCueDuration, WaveSine, SampleRate)
	overShaped := NewEnvelope(over, brickCueDuration, cueAttack, 55*time.Millisecond, SampleRate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.6),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, 0.5*vol)
}

// BurstCue is a noisy blast with a low rumble for special bricks.
func BurstCue(vol float64) beep.Streamer {
	noise := NewOscillator(0, burstCueDuration, WaveNoise, SampleRate)
	noiseShaped := NewEnvelope(noise, burstCueDuration, cueAttack, 200*time.Millisecond, SampleRate)

	rumble := NewSweep(120, 60, burstCueDuration, SampleRate)
	rumbleShaped := NewEnvelope(rumble, burstCueDuration, cueAttack, 200*time.Millisecond, SampleRate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.35),
		newVolume(rumbleShaped, 0.5),
	)
	return newVolume(mixed, 0.7*vol)
}

// LaunchCue is a quick rising glide for serving the ball.
func LaunchCue(vol float64) beep.Streamer {
	s := NewSweep(300, 600, launchCueDuration, SampleRate)
	shaped := NewEnvelope(s, launchCueDuration, cueAttack, 40*time.Millisecond, SampleRate)
	return newVolume(shaped, 0.5*vol)
}

// BoostCue is a two-note jump an octave apart for the speed boost.
func BoostCue(vol float64) beep.Streamer {
	n1 := NewOscillator(440, boostNoteDuration, WaveSquare, SampleRate)
	n1Shaped := NewEnvelope(n1, boostNoteDuration, cueAttack, 30*time.Millisecond, SampleRate)

	n2 := NewOscillator(880, boostNoteDuration, WaveSquare, SampleRate)
	n2Shaped := NewEnvelope(n2, boostNoteDuration, cueAttack, 35*time.Millisecond, SampleRate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), 0.4*vol)
}

// BallLostCue is a falling glide for a drained life.
func BallLostCue(vol float64) beep.Streamer {
	s := NewSweep(500, 140, lostCueDuration, SampleRate)
	shaped := NewEnvelope(s, lostCueDuration, cueAttack, 120*time.Millisecond, SampleRate)
	return newVolume(shaped, 0.6*vol)
}

// LevelClearCue is a rising three-note arpeggio for finishing a stage.
func LevelClearCue(vol float64) beep.Streamer {
	notes := []float64{523.25, 659.25, 783.99} // C5 E5 G5
	seq := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		osc := NewOscillator(f, clearNoteDuration, WaveSquare, SampleRate)
		seq = append(seq, NewEnvelope(osc, clearNoteDuration, cueAttack, 40*time.Millisecond, SampleRate))
	}
	return newVolume(beep.Seq(seq...), 0.45*vol)
}

// GameOverCue is a long low drone for the end of the run.
func GameOverCue(vol float64) beep.Streamer {
	osc := NewOscillator(110, overCueDuration, WaveSaw, SampleRate)
	shaped := NewEnvelope(osc, overCueDuration, 10*time.Millisecond, 450*time.Millisecond, SampleRate)
	return newVolume(shaped, 0.5*vol)
}

// CueFor maps a game event to its sound, or nil for silent events.
func CueFor(e core.Event, vol float64) beep.Streamer {
	switch e {
	case core.EventWallHit:
		return WallCue(vol)
	case core.EventPaddleHit:
		return PaddleCue(vol)
	case core.EventBrickHit:
		return BrickCue(vol)
	case core.EventSpecialBurst:
		return BurstCue(vol)
	case core.EventLaunch:
		return LaunchCue(vol)
	case core.EventBoost:
		return BoostCue(vol)
	case core.EventBallLost:
		return BallLostCue(vol)
	case core.EventLevelClear:
		return LevelClearCue(vol)
	case core.EventGameOver:
		return GameOverCue(vol)
	default:
		return nil
	}
}
