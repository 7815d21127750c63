package ir

import "kdc/internal/types"

// OperandKind distinguishes the two ways an instruction can reference a
// value: a literal constant, or the result of an earlier value (a
// parameter or a prior instruction).
type OperandKind uint8

const (
	OperandConst OperandKind = iota
	OperandValue
)

// Operand is a use-site reference, carrying its own type so instructions
// never need to look one up elsewhere to type-check or print themselves.
type Operand struct {
	Kind  OperandKind
	Type  types.TypeID
	Const uint64  // OperandConst
	Value ValueID // OperandValue
}
