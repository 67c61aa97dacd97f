package tetris

import "math/rand"

// Picker chooses the kind of each newly drawn piece.
type Picker interface {
	Pick() Kind
}

// RandomPicker draws each kind uniformly and independently of earlier draws.
type RandomPicker struct {
	rng *rand.Rand
}

// NewRandomPicker creates a uniform picker seeded with seed.
func NewRandomPicker(seed int64) *RandomPicker {
	return &RandomPicker{rng: rand.New(rand.NewSource(seed))}
}

// Pick returns a uniformly chosen kind.
func (p *RandomPicker) Pick() Kind {
	return Kind(p.rng.Intn(KindCount))
}

// SequencePicker replays a fixed list of kinds, starting over after the
// last one. Useful for scripted games and tests.
type SequencePicker struct {
	kinds []Kind
	pos   int
}

// NewSequencePicker creates a picker that cycles through kinds.
// Panics if kinds is empty.
func NewSequencePicker(kinds ...Kind) *SequencePicker {
	if len(kinds) == 0 {
		panic("tetris: sequence picker needs at least one kind")
	}
	return &SequencePicker{kinds: append([]Kind(nil), kinds...)}
}

// Pick returns the next kind in the sequence.
func (p *SequencePicker) Pick() Kind {
	k := p.kinds[p.pos]
	p.pos = (p.pos + 1) % len(p.kinds)
	return k
}
