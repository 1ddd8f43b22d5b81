// Package errs defines the error taxonomy shared by the calculation core.
//
// Primitives fail fast with DataNotFoundError when a required row or key is
// missing from a lookup table. Orchestration layers wrap anything unexpected
// in a CalculationError naming the step that failed, while letting
// DataNotFoundError propagate unchanged.
package errs

import (
	"errors"
	"fmt"
)

// DataNotFoundError reports a missing required entry in a lookup table.
type DataNotFoundError struct {
	Table string
	Key   string
}

func (e *DataNotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("no matching row in %s", e.Table)
	}
	return fmt.Sprintf("%s: %q not found", e.Table, e.Key)
}

// DataNotFound returns a DataNotFoundError for the given table and key.
func DataNotFound(table, key string) error {
	return &DataNotFoundError{Table: table, Key: key}
}

// IsDataNotFound reports whether err is (or wraps) a DataNotFoundError.
func IsDataNotFound(err error) bool {
	var dnf *DataNotFoundError
	return errors.As(err, &dnf)
}

// CalculationError wraps an unexpected failure in a named calculation step.
type CalculationError struct {
	Step string
	Err  error
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("calculation %s failed: %v", e.Step, e.Err)
}

func (e *CalculationError) Unwrap() error { return e.Err }

// Calculation wraps err as a CalculationError for the given step. A
// DataNotFoundError is returned unchanged since it is already actionable.
func Calculation(step string, err error) error {
	if err == nil {
		return nil
	}
	if IsDataNotFound(err) {
		return err
	}
	return &CalculationError{Step: step, Err: err}
}
