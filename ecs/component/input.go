package component

// Button holds the three edges of one input button. Pressed and Released are
// single-frame pulses; Held lasts for the whole time the button is down.
type Button struct {
	Pressed  bool
	Held     bool
	Released bool
}

// Press records a down edge. Repeated downs while held are ignored.
func (b *Button) Press() {
	if b.Held {
		return
	}
	b.Pressed = true
	b.Held = true
}

// Release records an up edge.
func (b *Button) Release() {
	b.Held = false
	b.Released = true
}

// ClearEdges drops the single-frame pulses and keeps Held.
func (b *Button) ClearEdges() {
	b.Pressed = false
	b.Released = false
}

// Input stores per-frame button state for an entity.
type Input struct {
	Up    Button
	Down  Button
	Left  Button
	Right Button
	Space Button
}

// Buttons returns every button in a fixed order.
func (i *Input) Buttons() []*Button {
	return []*Button{&i.Up, &i.Down, &i.Left, &i.Right, &i.Space}
}

// ClearEdges drops Pressed/Released on all buttons.
func (i *Input) ClearEdges() {
	for _, b := range i.Buttons() {
		b.ClearEdges()
	}
}

// AxisX is -1, 0 or +1 from the held left/right buttons.
func (i *Input) AxisX() int {
	x := 0
	if i.Right.Held {
		x++
	}
	if i.Left.Held {
		x--
	}
	return x
}

func (i *Input) Reset() {
	*i = Input{}
}
