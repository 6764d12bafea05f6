package fift

import (
	"fmt"
	"strings"

	"github.com/tonfift/fift/internal/bigint"
)

// Value is the closed tagged union of every runtime value (spec §3.1).
// The variant set is small and fixed, so dispatch is a type switch rather
// than a class hierarchy (spec §9 "polymorphic value union").
type Value interface {
	TypeName() string
	fmt.Stringer
}

// Null is the distinguished absent value; it also stands for the empty
// cons list.
type Null struct{}

func (Null) TypeName() string { return "Null" }
func (Null) String() string   { return "(null)" }

// Integer is an arbitrary-precision signed integer.
type Integer struct{ I bigint.Int }

func NewInteger(n int64) Integer { return Integer{bigint.FromInt64(n)} }

func (Integer) TypeName() string  { return "Integer" }
func (v Integer) String() string  { return v.I.String() }

// String is UTF-8 text. $len reports byte length and $reverse works over
// []rune (see words_string.go); no substring-slicing word is provided.
type String string

func (String) TypeName() string { return "String" }
func (v String) String() string { return string(v) }

// Bytes is an immutable byte sequence (B{..} literal).
type Bytes []byte

func (Bytes) TypeName() string { return "Bytes" }
func (v Bytes) String() string {
	var sb strings.Builder
	sb.WriteString("B{")
	for i, b := range v {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x", b)
	}
	sb.WriteByte('}')
	return sb.String()
}

// Atom is an interned symbol; equality is pointer identity on the
// *atomObj it wraps (spec §3.2 "every Atom with a given textual name is
// a single object").
type Atom struct{ obj *atomObj }

type atomObj struct{ name string }

func (Atom) TypeName() string { return "Atom" }
func (v Atom) String() string { return v.obj.name }

// Name returns the atom's textual name.
func (v Atom) Name() string { return v.obj.name }

// Tuple is a fixed-length ordered sequence, indexable in O(1).
type Tuple struct{ Elems []Value }

func NewTuple(elems ...Value) *Tuple { return &Tuple{Elems: elems} }

func (*Tuple) TypeName() string { return "Tuple" }
func (v *Tuple) String() string {
	var sb strings.Builder
	sb.WriteString("[ ")
	for _, e := range v.Elems {
		sb.WriteString(Display(e))
		sb.WriteByte(' ')
	}
	sb.WriteByte(']')
	return sb.String()
}

// Pair is a cons cell; the empty list is Null, not a nil *Pair, so lists
// are immutable DAGs with freely shared tails (spec §3.2).
type Pair struct {
	Head Value
	Tail Value
}

func NewPair(head, tail Value) *Pair { return &Pair{Head: head, Tail: tail} }

func (*Pair) TypeName() string { return "Pair" }

// String renders a cons-list the way Fift's own list printer does: a space
// just inside each paren, e.g. `( 1 2 3 )` (spec §8 scenario 5).
func (v *Pair) String() string {
	var sb strings.Builder
	sb.WriteString("( ")
	cur := Value(v)
	for {
		p, ok := cur.(*Pair)
		if !ok {
			break
		}
		sb.WriteString(Display(p.Head))
		sb.WriteByte(' ')
		cur = p.Tail
	}
	if _, isNull := cur.(Null); !isNull {
		sb.WriteString(". ")
		sb.WriteString(Display(cur))
		sb.WriteByte(' ')
	}
	sb.WriteByte(')')
	return sb.String()
}

// Box is the sole identity-bearing mutable reference type (spec §3.2):
// `variable`, `hole`, and Lisp-style bindings are all a Box under a name.
type Box struct{ Val Value }

func NewBox(v Value) *Box { return &Box{Val: v} }

func (*Box) TypeName() string { return "Box" }
func (b *Box) String() string { return fmt.Sprintf("Box(%s)", Display(b.Val)) }

// WordRef is a first-class reference to a dictionary entry, produced by
// `'` and `find`, invoked by `execute`.
type WordRef struct{ Entry *Entry }

func (*WordRef) TypeName() string { return "WordRef" }
func (v *WordRef) String() string { return "'" + v.Entry.Name }

// Display renders a Value per the printing rules of spec §6.4.
func Display(v Value) string {
	if v == nil {
		return ""
	}
	if _, ok := v.(Null); ok {
		return "(null)"
	}
	return v.String()
}

// TypeOf names a value's variant for error messages and `type`/dumper use.
func TypeOf(v Value) string {
	if v == nil {
		return "Null"
	}
	return v.TypeName()
}

// Eq implements `eq?`: identity on atoms/boxes/cells/continuations,
// value-equality on integers and null (spec §4.3).
func Eq(a, b Value) bool {
	switch av := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Integer:
		bv, ok := b.(Integer)
		return ok && av.I.Cmp(bv.I) == 0
	case Atom:
		bv, ok := b.(Atom)
		return ok && av.obj == bv.obj
	case *Box:
		bv, ok := b.(*Box)
		return ok && av == bv
	case *Pair:
		bv, ok := b.(*Pair)
		return ok && av == bv
	case *Cell:
		bv, ok := b.(*Cell)
		return ok && av == bv
	case *Slice:
		bv, ok := b.(*Slice)
		return ok && av == bv
	case *Builder:
		bv, ok := b.(*Builder)
		return ok && av == bv
	case *Continuation:
		bv, ok := b.(*Continuation)
		return ok && av == bv
	default:
		return a == b
	}
}

// Eqv implements `eqv?`: Eq for reference types, value-equality for
// integers, strings and byte-strings.
func Eqv(a, b Value) bool {
	switch av := a.(type) {
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Bytes:
		bv, ok := b.(Bytes)
		return ok && string(av) == string(bv)
	default:
		return Eq(a, b)
	}
}

// Equal implements `equal?`: structural deep equality over tuples and
// lists, falling back to Eqv on leaves.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case *Tuple:
		bv, ok := b.(*Tuple)
		if !ok || len(av.Elems) != len(bv.Elems) {
			return false
		}
		for i := range av.Elems {
			if !Equal(av.Elems[i], bv.Elems[i]) {
				return false
			}
		}
		return true
	case *Pair:
		bv, ok := b.(*Pair)
		return ok && Equal(av.Head, bv.Head) && Equal(av.Tail, bv.Tail)
	case Null:
		_, ok := b.(Null)
		return ok
	default:
		return Eqv(a, b)
	}
}

// Compare orders integers, strings (lexicographic on bytes) and
// byte-strings; it is undefined (returns 0, false) for any other pair
// (spec §4.3 "ordering is defined only for...").
func Compare(a, b Value) (cmp int, ok bool) {
	switch av := a.(type) {
	case Integer:
		bv, ok := b.(Integer)
		if !ok {
			return 0, false
		}
		return av.I.Cmp(bv.I), true
	case String:
		bv, ok := b.(String)
		if !ok {
			return 0, false
		}
		return strings.Compare(string(av), string(bv)), true
	case Bytes:
		bv, ok := b.(Bytes)
		if !ok {
			return 0, false
		}
		return strings.Compare(string(av), string(bv)), true
	default:
		return 0, false
	}
}
