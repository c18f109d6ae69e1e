package splitq

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminated = errors.New("unterminated group")
	ErrInternal     = errors.New("internal inconsistency")
)

// SplitError is the error type returned by Split. Err is ErrUnterminated
// when input ends with an open quoted or code group (Kind and Off name
// the group and where it began), or ErrInternal when the scanner reaches
// a state asserted impossible. ErrInternal indicates a scanner defect,
// never bad input.
type SplitError struct {
	Err  error
	Kind GroupKind
	Off  int
	Msg  string
}

func (e *SplitError) Unwrap() error {
	return e.Err
}

func (e *SplitError) Error() string {
	if errors.Is(e.Err, ErrInternal) {
		return fmt.Sprintf("SplitError: %s: %s", e.Err, e.Msg)
	}
	return fmt.Sprintf("SplitError: %s %s at offset %d", e.Err, e.Kind, e.Off)
}

func unterminatedErr(kind GroupKind, off int) *SplitError {
	return &SplitError{Err: ErrUnterminated, Kind: kind, Off: off}
}

func internalErr(format string, args ...any) *SplitError {
	return &SplitError{Err: ErrInternal, Msg: fmt.Sprintf(format, args...)}
}
