package ingest

import "fmt"

// DescriptorError indicates a malformed address[@alt]:path descriptor.
type DescriptorError struct {
	// Descriptor is the offending descriptor as given
	Descriptor string

	// Reason describes what is wrong with it
	Reason string
}

func (e *DescriptorError) Error() string {
	return fmt.Sprintf("invalid descriptor %q: %s", e.Descriptor, e.Reason)
}

// RecordError indicates a malformed S-record line.
type RecordError struct {
	// Line is the 1-based line number of the offending record
	Line int

	// Reason describes what is wrong with it
	Reason string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}
