package aesecb

import (
	"errors"
	"fmt"
)

// ErrScheduleReleased is wrapped by the precondition raised when a released schedule is used again.
var ErrScheduleReleased = errors.New("key schedule already released")

// ErrChunkTooLarge is returned by a streaming backend when a call exceeds its chunk cap.
var ErrChunkTooLarge = errors.New("chunk exceeds backend maximum")

// PreconditionError describes a violated caller precondition such as a buffer length that is not a
// multiple of BlockSize. It is never returned: it is raised with panic, the Go counterpart of an
// assertion abort.
type PreconditionError struct {
	Op     string
	Reason string
	Err    error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: precondition violated: %s", e.Op, e.Reason)
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

// Fail panics with a PreconditionError.
func Fail(op, format string, args ...interface{}) {
	panic(&PreconditionError{Op: op, Reason: fmt.Sprintf(format, args...)})
}

// FailWith panics with a PreconditionError wrapping err.
func FailWith(op string, err error) {
	panic(&PreconditionError{Op: op, Reason: err.Error(), Err: err})
}

// BackendFault reports an internal failure of a block backend. It is unrecoverable: callers
// escalate it to process termination after logging the diagnostic.
type BackendFault struct {
	Backend string
	Op      string
	Err     error
}

func (e *BackendFault) Error() string {
	return fmt.Sprintf("backend %s: %s failed: %v", e.Backend, e.Op, e.Err)
}

func (e *BackendFault) Unwrap() error {
	return e.Err
}

// CheckSchedule panics unless ks is a live schedule of the wanted variant.
func CheckSchedule(op string, ks *KeySchedule, want Variant) {
	if ks == nil {
		Fail(op, "nil key schedule")
	}
	if ks.released {
		FailWith(op, ErrScheduleReleased)
	}
	if ks.variant != want {
		Fail(op, "schedule is %v, want %v", ks.variant, want)
	}
	if len(ks.rounds) != want.ScheduleSize() {
		Fail(op, "schedule has %d bytes, want %d", len(ks.rounds), want.ScheduleSize())
	}
}

// CheckBuffers panics unless src is a whole number of blocks and dst can hold it.
func CheckBuffers(op string, dst, src []byte) {
	if len(src)%BlockSize != 0 {
		Fail(op, "input length %d is not a multiple of %d", len(src), BlockSize)
	}
	if len(dst) < len(src) {
		Fail(op, "output length %d is smaller than input length %d", len(dst), len(src))
	}
}
