package input

// Set is a bit set of commands.
type Set uint32

func (s Set) Has(c Command) bool { return s&(1<<c) != 0 }

func (s Set) With(cs ...Command) Set {
	for _, c := range cs {
		s |= 1 << c
	}
	return s
}

// SetOf builds a set from commands.
func SetOf(cs ...Command) Set { return Set(0).With(cs...) }

// Snapshot is the input state sampled once at the start of a tick. Held
// commands drive continuous motion; pressed commands fire once per key press.
type Snapshot struct {
	held, pressed Set
}

func NewSnapshot(held, pressed Set) Snapshot {
	return Snapshot{held: held, pressed: pressed}
}

// Held reports whether c is down this tick.
func (s Snapshot) Held(c Command) bool { return s.held.Has(c) }

// Pressed reports whether c went down since the previous tick.
func (s Snapshot) Pressed(c Command) bool { return s.pressed.Has(c) }

// Edges derives pressed commands from successive held sets.
type Edges struct {
	prev Set
}

// Update records held as the current state and returns the snapshot for
// this tick.
func (e *Edges) Update(held Set) Snapshot {
	pressed := held &^ e.prev
	e.prev = held
	return Snapshot{held: held, pressed: pressed}
}
