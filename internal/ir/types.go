// Package ir defines the strictly-typed intermediate representation that
// HIR→IR lowering produces: typed functions with a single entry block,
// straight-line instruction lists, and an explicit terminator per block.
// This is the boundary format; turning it into machine code is out of
// scope — the only consumer in this repository is the "-r" tree-walking
// evaluator.
package ir

// ValueID numbers a function's SSA-style values: one per parameter, then one
// per instruction that produces a result, in the order both are allocated.
type ValueID uint32

// BlockID indexes a Function's Blocks slice.
type BlockID uint32

// FuncID indexes a Unit's Functions slice.
type FuncID uint32

// LocalID indexes a Function's Locals slice — the IR's stack slots, one per
// declared variable and one per match expression's result.
type LocalID uint32
