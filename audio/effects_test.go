package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestOscillatorRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 20*time.Millisecond, wave, rate)
		samples := drain(osc)
		if len(samples) != rate.N(20*time.Millisecond) {
			t.Errorf("wave %d: %d samples, want %d", wave, len(samples), rate.N(20*time.Millisecond))
		}
		for i, s := range samples {
			if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
				t.Fatalf("wave %d sample %d = %v", wave, i, s)
			}
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: err %v", wave, osc.Err())
		}
	}
}

func TestOscillatorSquareLevels(t *testing.T) {
	samples := drain(NewOscillator(220, 10*time.Millisecond, WaveSquare, 44100))
	for i, s := range samples {
		if s[0] != 1 && s[0] != -1 {
			t.Fatalf("sample %d = %v", i, s[0])
		}
	}
}

func TestOscillatorFinishes(t *testing.T) {
	osc := NewOscillator(440, 10*time.Millisecond, WaveSine, 44100)
	drain(osc)
	n, ok := osc.Stream(make([][2]float64, 10))
	if ok || n != 0 {
		t.Errorf("finished oscillator streamed n=%d ok=%v", n, ok)
	}
}

func TestNoiseVaries(t *testing.T) {
	samples := drain(NewOscillator(0, 5*time.Millisecond, WaveNoise, 44100))
	for i := 1; i < len(samples); i++ {
		if samples[i][0] != samples[0][0] {
			return
		}
	}
	t.Error("noise samples all equal")
}

func TestSweepLength(t *testing.T) {
	rate := beep.SampleRate(22050)
	samples := drain(NewSweep(200, 800, 50*time.Millisecond, rate))
	if len(samples) != rate.N(50*time.Millisecond) {
		t.Errorf("sweep %d samples", len(samples))
	}
	for _, s := range samples {
		if math.Abs(s[0]) > 1 {
			t.Fatalf("sweep sample %v", s)
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, rate), d, 20*time.Millisecond, 20*time.Millisecond, rate)
	samples := drain(env)

	if samples[0][0] != 0 {
		t.Errorf("attack should start silent, got %v", samples[0][0])
	}
	mid := samples[len(samples)/2][0]
	if math.Abs(mid) != 1 {
		t.Errorf("sustain level %v, want full", mid)
	}
	last := samples[len(samples)-1][0]
	if math.Abs(last) >= 0.01 {
		t.Errorf("release tail %v, want near zero", last)
	}
}

func TestNewVolumeSilent(t *testing.T) {
	s := newVolume(NewOscillator(0, 5*time.Millisecond, WaveSquare, 44100), 0)
	for _, v := range drain(s) {
		if v[0] != 0 || v[1] != 0 {
			t.Fatalf("silent volume produced %v", v)
		}
	}
}

func TestNewVolumeHalf(t *testing.T) {
	s := newVolume(NewOscillator(0, 5*time.Millisecond, WaveSquare, 44100), 0.5)
	for _, v := range drain(s) {
		if math.Abs(math.Abs(v[0])-0.5) > 1e-9 {
			t.Fatalf("half volume produced %v", v)
		}
	}
}
