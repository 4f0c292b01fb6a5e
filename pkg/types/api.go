package types

// UnknownAddr marks a section whose prior address is unknown. It is a
// sentinel, not a valid address: valid addresses are non-negative, zero
// included.
const UnknownAddr int64 = -1

// SectionSpec describes one named, sized section as read from the input.
// Name is the identity key for the whole run and must be unique and
// non-empty (the empty name is reserved for the terminal base record in the
// output encoding).
type SectionSpec struct {
	// Name uniquely identifies the section across the run.
	Name string

	// OldAddr is the address the section occupied in the previous image,
	// or UnknownAddr if it has never been placed.
	OldAddr int64

	// Size is the section length in address units. Must be positive.
	Size int64
}

// HasOldAddr reports whether the section carries a usable prior address.
func (s SectionSpec) HasOldAddr() bool { return s.OldAddr != UnknownAddr }

// End returns the exclusive end of the section's old range. Only meaningful
// when HasOldAddr() is true.
func (s SectionSpec) End() int64 { return s.OldAddr + s.Size }

// Params are the run parameters shared by every pipeline stage.
type Params struct {
	// Base is the minimum permissible address for any section.
	Base int64

	// Spacing is the minimum gap the placer keeps between two consecutive
	// section ranges.
	Spacing int64
}

// Placement is one section's final position.
type Placement struct {
	Name string
	Addr int64

	// Kept reports whether the section survived at its original address.
	Kept bool
}

// Result is the outcome of a successful planning run.
type Result struct {
	// Placements holds every section, sorted ascending by Addr.
	Placements []Placement

	// NewBase is the new top of the used address space: the lowest address
	// at which a future run could place fresh sections. The text encoding
	// carries it as a terminal record with an empty name.
	NewBase int64
}
