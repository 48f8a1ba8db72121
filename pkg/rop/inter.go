package rop

// Outcome is the read-only capability surface shared by every container
type Outcome interface {
	// HasValue returns true if a value is present (Some / Ok)
	HasValue() bool
	// HasError returns true if an error payload is attached to the absent state
	HasError() bool
}

// Verdict extends Outcome with success/failure wording
type Verdict interface {
	Outcome
	// IsOk returns true if the operation succeeded
	IsOk() bool
	// IsErr returns true if the operation failed
	IsErr() bool
}

// Carrier is implemented by containers that transport a Data side channel
type Carrier interface {
	Verdict
	// Data returns the instance's own side channel map
	Data() Data
}
