package component

// Lifetime is a frame-based countdown. Systems destroy the entity once
// Remaining reaches zero.
type Lifetime struct {
	Duration  float64
	Remaining float64
}

// Start arms the countdown.
func (l *Lifetime) Start(frames float64) {
	l.Duration = frames
	l.Remaining = frames
}

func (l *Lifetime) PercentElapsed() float64 {
	if l.Duration <= 0 {
		return 1
	}
	return 1 - l.Remaining/l.Duration
}

func (l *Lifetime) PercentRemaining() float64 {
	if l.Duration <= 0 {
		return 0
	}
	return l.Remaining / l.Duration
}

func (l *Lifetime) Reset() {
	*l = Lifetime{}
}
