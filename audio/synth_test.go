package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestRenderLength(t *testing.T) {
	s := beep.Take(100, NewSweep(440, 440, time.Second, WaveSine, SampleRate))
	out := Render(s)
	if len(out) != 100*4 {
		t.Fatalf("expected 400 bytes, got %d", len(out))
	}
}

func TestRenderSilence(t *testing.T) {
	out := Render(beep.Silence(10))
	if len(out) != 40 {
		t.Fatalf("expected 40 bytes, got %d", len(out))
	}
	for i, b := range out {
		if b != 0 {
			t.Fatalf("byte %d not silent: %d", i, b)
		}
	}
}

func TestSynthEveryCueTerminates(t *testing.T) {
	for _, c := range Cues() {
		t.Run(c.String(), func(t *testing.T) {
			out := Render(Synth(c, SampleRate))
			if len(out) == 0 {
				t.Fatalf("cue %s rendered no samples", c)
			}
			if len(out)%4 != 0 {
				t.Fatalf("cue %s rendered a partial frame: %d bytes", c, len(out))
			}
			if limit := SampleRate.N(time.Second) * 4; len(out) > limit {
				t.Fatalf("cue %s longer than a second", c)
			}
		})
	}
}

func TestSweepStaysInRange(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		s := NewSweep(200, 800, 50*time.Millisecond, wave, SampleRate)
		buf := make([][2]float64, 256)
		for {
			n, ok := s.Stream(buf)
			for i := 0; i < n; i++ {
				if buf[i][0] < -1 || buf[i][0] > 1 {
					t.Fatalf("wave %d sample %d out of range: %v", wave, i, buf[i][0])
				}
			}
			if !ok {
				break
			}
		}
	}
}

func TestCueString(t *testing.T) {
	if CueLevelComplete.String() != "level_complete" || Cue(9).String() != "cue(9)" {
		t.Fatalf("unexpected cue names")
	}
}
