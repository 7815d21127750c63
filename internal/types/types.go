// Package types implements concrete type handles for the two kinds this
// language's type system expresses: unsigned integers of an arbitrary bit
// width, and bool. Handles are interned per compile through an Interner
// threaded explicitly through the pipeline — there is no process-global
// type table, so independent compiles (and tests) never interfere.
package types

import "fmt"

// TypeID identifies an interned concrete type.
type TypeID uint32

// NoTypeID marks the absence of a concrete type.
const NoTypeID TypeID = 0

// Kind enumerates the supported concrete type kinds.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindUint
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindUint:
		return "uint"
	case KindBool:
		return "bool"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Width is the bit width of an unsigned integer type. Unused for KindBool.
type Width uint16

// Type is a compact descriptor for a concrete type: bool, or an unsigned
// integer of the given Width.
type Type struct {
	Kind  Kind
	Width Width
}

func (t Type) String() string {
	switch t.Kind {
	case KindBool:
		return "bool"
	case KindUint:
		return fmt.Sprintf("u%d", t.Width)
	default:
		return "<invalid type>"
	}
}
