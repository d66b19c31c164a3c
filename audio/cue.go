// Package audio turns gameplay cues into sound. Cue waveforms are
// synthesised once at startup and replayed through an ebiten audio context.
package audio

import "strconv"

// Cue is a fire-and-forget sound trigger.
type Cue uint8

const (
	CueJump Cue = iota
	CueDeath
	CueLevelComplete

	cueCount
)

var cueNames = [cueCount]string{
	CueJump:          "jump",
	CueDeath:         "death",
	CueLevelComplete: "level_complete",
}

func (c Cue) String() string {
	if c >= cueCount {
		return "cue(" + strconv.Itoa(int(c)) + ")"
	}
	return cueNames[c]
}

// Cues lists every known cue.
func Cues() []Cue {
	return []Cue{CueJump, CueDeath, CueLevelComplete}
}
