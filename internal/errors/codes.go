// Package errors defines the failure codes raised by the board, the characters and the matrix.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an error raised outside this taxonomy.
	CodeUnknown Code = "UNKNOWN"

	// Game errors
	CodeIllegalArgument Code = "ILLEGAL_ARGUMENT"
	CodeIllegalCell     Code = "ILLEGAL_CELL"
	CodeCellEmpty       Code = "CELL_EMPTY"
	CodeCellOccupied    Code = "CELL_OCCUPIED"
	CodeMoveTooFar      Code = "MOVE_TOO_FAR"
	CodeOutOfRange      Code = "OUT_OF_RANGE"
	CodeOutOfAmmo       Code = "OUT_OF_AMMO"
	CodeIllegalTarget   Code = "ILLEGAL_TARGET"

	// Matrix errors
	CodeAccessIllegalElement  Code = "ACCESS_ILLEGAL_ELEMENT"
	CodeIllegalInitialization Code = "ILLEGAL_INITIALIZATION"
	CodeDimensionMismatch     Code = "DIMENSION_MISMATCH"
)

// IsMatrix reports whether the code belongs to the matrix container.
func (c Code) IsMatrix() bool {
	switch c {
	case CodeAccessIllegalElement, CodeIllegalInitialization, CodeDimensionMismatch:
		return true
	default:
		return false
	}
}
