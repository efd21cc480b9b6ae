// Package errors provides structured domain errors for the substitution engine.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Reference data errors
	CodeReferenceTableMissing Code = "REFERENCE_TABLE_MISSING"
	CodeCandidatesEmpty       Code = "CANDIDATES_EMPTY"

	// Equipment errors
	CodeEquipmentPoolEmpty Code = "EQUIPMENT_POOL_EMPTY"
	CodeJobUnknown         Code = "JOB_UNKNOWN"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// Fatal reports whether the code means the subsystem cannot activate.
func (c Code) Fatal() bool {
	switch c {
	case CodeReferenceTableMissing, CodeCandidatesEmpty:
		return true
	default:
		return false
	}
}
