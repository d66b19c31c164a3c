package audio

import (
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"
)

// Player plays cues through an ebiten audio context. Each cue has one
// pre-rendered player that is rewound on every trigger.
type Player struct {
	players map[Cue]*ebitenaudio.Player
	log     *zap.Logger
}

// NewPlayer synthesises every cue. ctx must run at SampleRate.
func NewPlayer(ctx *ebitenaudio.Context, volume float64, log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Player{players: make(map[Cue]*ebitenaudio.Player, cueCount), log: log}
	for _, c := range Cues() {
		pl := ctx.NewPlayerFromBytes(Render(Synth(c, SampleRate)))
		pl.SetVolume(volume)
		p.players[c] = pl
	}
	return p
}

// Play restarts the cue's sound and returns immediately.
func (p *Player) Play(c Cue) {
	if p == nil {
		return
	}
	pl, ok := p.players[c]
	if !ok || pl == nil {
		return
	}
	if err := pl.Rewind(); err != nil {
		p.log.Warn("rewind cue", zap.Stringer("cue", c), zap.Error(err))
		return
	}
	pl.Play()
}
