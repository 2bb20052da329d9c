package transform

import (
	"errors"
	"fmt"
)

// Op names the direction of a transform.
type Op string

const (
	OpEncrypt Op = "encrypt"
	OpDecrypt Op = "decrypt"
)

// Status is the per-attribute result of a transform.
type Status uint8

const (
	// StatusSkipped means the attribute was not applicable: it is not marked,
	// not a string, or holds no value.
	StatusSkipped Status = iota
	// StatusTransformed means the new value was written back.
	StatusTransformed
	// StatusFailed means the cipher rejected the value; the attribute keeps
	// its original content.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusTransformed:
		return "transformed"
	case StatusFailed:
		return "failed"
	default:
		return "skipped"
	}
}

// Outcome is the result for one attribute.
type Outcome struct {
	Field  string
	Status Status
	Err    error
}

// TransformError describes a failed attribute. It unwraps to the cipher error.
type TransformError struct {
	Field string
	Op    Op
	Err   error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("%s field %q: %v", e.Op, e.Field, e.Err)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// Report collects the outcomes of one or more entity transforms.
type Report struct {
	Op       Op
	Outcomes []Outcome
}

// Count returns the number of outcomes with status s.
func (r Report) Count(s Status) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == s {
			n++
		}
	}
	return n
}

// Failed returns the failed outcomes.
func (r Report) Failed() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Status == StatusFailed {
			out = append(out, o)
		}
	}
	return out
}

// OK reports whether no attribute failed.
func (r Report) OK() bool {
	return r.Count(StatusFailed) == 0
}

// Err joins every failure as a *TransformError, or returns nil.
func (r Report) Err() error {
	var errs []error
	for _, o := range r.Outcomes {
		if o.Status == StatusFailed {
			errs = append(errs, &TransformError{Field: o.Field, Op: r.Op, Err: o.Err})
		}
	}
	return errors.Join(errs...)
}

func (r *Report) merge(other Report) {
	r.Outcomes = append(r.Outcomes, other.Outcomes...)
}
