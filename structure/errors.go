// SPDX-License-Identifier: MIT

package structure

import (
	"errors"
	"fmt"
)

var (
	// ErrWorkerTaskFailure marks an AllTimestamps run in which at least one
	// timestamp failed. It is joined with one *TaskError per failure.
	ErrWorkerTaskFailure = errors.New("structure: worker task failed")

	// ErrEmptyNodeList is returned when the node file has no labels.
	ErrEmptyNodeList = errors.New("structure: node list is empty")

	// ErrBadLevelFile is returned when a hierarchy directory holds a level
	// file whose name is not a level number, or levels are not 1..k.
	ErrBadLevelFile = errors.New("structure: bad level file")

	// ErrNestingViolation is returned when a level is not contained in the
	// level below it, or levels differ in shape.
	ErrNestingViolation = errors.New("structure: k-core nesting violated")
)

// TaskError reports the failure of one timestamp file.
type TaskError struct {
	File string
	Err  error
}

// Error implements error.
func (e *TaskError) Error() string { return fmt.Sprintf("%s: %v", e.File, e.Err) }

// Unwrap returns the underlying cause.
func (e *TaskError) Unwrap() error { return e.Err }
