package pipeline

import "fmt"

// InsufficientTextError: aggregated OCR text is too short to attempt any
// extraction. Fatal; neither extractor runs.
type InsufficientTextError struct {
	Length int
	Min    int
}

func (e *InsufficientTextError) Error() string {
	return fmt.Sprintf("aggregated OCR text too short: %d chars, need at least %d", e.Length, e.Min)
}

// PrimaryExtractionError: the AI call or its response parsing failed.
// Recovered in-pipeline by routing to the fallback extractor.
type PrimaryExtractionError struct {
	Cause error
}

func (e *PrimaryExtractionError) Error() string {
	return fmt.Sprintf("primary extraction failed: %v", e.Cause)
}

func (e *PrimaryExtractionError) Unwrap() error { return e.Cause }

// FallbackExtractionError: the pattern extractor yielded nothing after the
// primary already failed. Fatal; the document is unprocessable. The primary
// failure rides along as context, but the fallback failure is the proximate
// cause that gets surfaced.
type FallbackExtractionError struct {
	Cause   error
	Primary error
}

func (e *FallbackExtractionError) Error() string {
	if e.Primary != nil {
		return fmt.Sprintf("fallback extraction failed: %v (after %v)", e.Cause, e.Primary)
	}
	return fmt.Sprintf("fallback extraction failed: %v", e.Cause)
}

func (e *FallbackExtractionError) Unwrap() error { return e.Cause }

// PersistenceError: the store rejected the final write. Fatal, not retried.
type PersistenceError struct {
	Op    string
	Cause error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed (%s): %v", e.Op, e.Cause)
}

func (e *PersistenceError) Unwrap() error { return e.Cause }
