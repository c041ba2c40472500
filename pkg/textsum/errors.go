package textsum

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when the text has no content left to summarize.
var ErrEmptyInput = errors.New("textsum: empty input")

// SegmentationError reports that the text could not be split into
// sentences. Text carries the raw input, which callers may show as a
// degraded summary.
type SegmentationError struct {
	Text string
	Err  error
}

func (e *SegmentationError) Error() string {
	return fmt.Sprintf("textsum: segment sentences: %v", e.Err)
}

func (e *SegmentationError) Unwrap() error { return e.Err }

// ScoringError reports a failure while building frequencies or scoring.
// It is never returned from Summarize; it is attached to Result.Err when
// the leading-sentences fallback was used.
type ScoringError struct {
	Err error
}

func (e *ScoringError) Error() string {
	return fmt.Sprintf("textsum: score sentences: %v", e.Err)
}

func (e *ScoringError) Unwrap() error { return e.Err }
