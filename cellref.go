package fift

import "fmt"

// Cell, Slice and Builder are the TVM data-cell family (spec §3.1): the
// core only tracks their identity and lifetime and provides a minimal
// bit/reference store, treating the real TVM cell assembler/serializer
// (Asm.fif and friends) as an out-of-scope external collaborator (spec
// §1's "Out of scope ... the TVM cell assembler vocabulary"). This is
// intentionally not a binding to a cell-hashing library: see DESIGN.md's
// "Standard-library-only parts and why".

// Cell is an immutable bag of up to 1023 bits and up to 4 child cell
// references, TVM's normal limits.
type Cell struct {
	Bits []bool
	Refs []*Cell
}

func (*Cell) TypeName() string { return "Cell" }
func (c *Cell) String() string {
	return fmt.Sprintf("Cell[%d bits, %d refs]", len(c.Bits), len(c.Refs))
}

// Slice is a read cursor into a Cell: a bit position and a ref position.
type Slice struct {
	Src     *Cell
	BitPos  int
	RefPos  int
}

func NewSlice(c *Cell) *Slice { return &Slice{Src: c} }

func (*Slice) TypeName() string { return "Slice" }
func (s *Slice) String() string {
	return fmt.Sprintf("Slice[%d/%d bits, %d/%d refs]", s.BitPos, len(s.Src.Bits), s.RefPos, len(s.Src.Refs))
}

// BitsLeft reports how many unread bits remain.
func (s *Slice) BitsLeft() int { return len(s.Src.Bits) - s.BitPos }

// RefsLeft reports how many unread child references remain.
func (s *Slice) RefsLeft() int { return len(s.Src.Refs) - s.RefPos }

// Builder is a write cursor accumulating bits and refs toward a future Cell.
type Builder struct {
	Bits []bool
	Refs []*Cell
}

func NewBuilder() *Builder { return &Builder{} }

func (*Builder) TypeName() string { return "Builder" }
func (b *Builder) String() string {
	return fmt.Sprintf("Builder[%d bits, %d refs]", len(b.Bits), len(b.Refs))
}

// Finalize freezes the builder's contents into a new immutable Cell,
// leaving the builder itself still usable (TVM's ENDC does not consume
// its argument's storage, only its own reference).
func (b *Builder) Finalize() *Cell {
	bits := make([]bool, len(b.Bits))
	copy(bits, b.Bits)
	refs := make([]*Cell, len(b.Refs))
	copy(refs, b.Refs)
	return &Cell{Bits: bits, Refs: refs}
}

// StoreBits appends n low bits of v (MSB first) to the builder.
func (b *Builder) StoreBits(v uint64, n int) error {
	if len(b.Bits)+n > 1023 {
		return RangeError{Op: "cell overflow"}
	}
	for i := n - 1; i >= 0; i-- {
		b.Bits = append(b.Bits, (v>>uint(i))&1 != 0)
	}
	return nil
}

// StoreRef appends a child cell reference.
func (b *Builder) StoreRef(c *Cell) error {
	if len(b.Refs) >= 4 {
		return RangeError{Op: "cell ref overflow"}
	}
	b.Refs = append(b.Refs, c)
	return nil
}

// LoadBits reads n bits (MSB first) from the slice as an unsigned value.
func (s *Slice) LoadBits(n int) (uint64, error) {
	if s.BitsLeft() < n {
		return 0, RangeError{Op: "cell underflow"}
	}
	var v uint64
	for i := 0; i < n; i++ {
		v <<= 1
		if s.Src.Bits[s.BitPos+i] {
			v |= 1
		}
	}
	s.BitPos += n
	return v, nil
}

// LoadRef reads the next child reference from the slice.
func (s *Slice) LoadRef() (*Cell, error) {
	if s.RefsLeft() < 1 {
		return nil, RangeError{Op: "cell ref underflow"}
	}
	c := s.Src.Refs[s.RefPos]
	s.RefPos++
	return c, nil
}
