package dfuse

import "fmt"

// FormatErrorKind classifies structural violations found in container bytes.
type FormatErrorKind int

const (
	// BadSignature means a prefix or target signature literal did not match
	BadSignature FormatErrorKind = iota

	// Truncated means the input ended before a declared structure was complete
	Truncated

	// TrailingTargetBytes means a target's element blob held bytes beyond
	// its declared elements
	TrailingTargetBytes

	// TrailingFileBytes means bytes remained after the file suffix
	TrailingFileBytes
)

func (k FormatErrorKind) String() string {
	switch k {
	case BadSignature:
		return "bad signature"
	case Truncated:
		return "truncated"
	case TrailingTargetBytes:
		return "trailing target bytes"
	case TrailingFileBytes:
		return "trailing file bytes"
	default:
		return fmt.Sprintf("unknown format error kind %d", int(k))
	}
}

// FormatError indicates a structural violation in container bytes.
type FormatError struct {
	// Kind classifies the violation
	Kind FormatErrorKind

	// Target is the 0-based index of the affected target, or -1 when the
	// violation is not scoped to a target
	Target int

	// Detail describes the violation
	Detail string
}

func (e *FormatError) Error() string {
	if e.Target >= 0 {
		return fmt.Sprintf("target %d: %s: %s", e.Target, e.Kind, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// ChecksumMismatchError indicates that the suffix checksum does not match
// the checksum computed over the file contents.
type ChecksumMismatchError struct {
	// Stored is the checksum read from the suffix
	Stored uint32

	// Computed is the checksum computed over the preceding file bytes
	Computed uint32
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: suffix has 0x%08X, computed 0x%08X", e.Stored, e.Computed)
}

// AlreadySuffixedError indicates an attempt to wrap an input file that
// already carries a valid DFU suffix. Wrapping it again would nest one
// container inside another and corrupt the image.
type AlreadySuffixedError struct {
	// Path is the offending input file
	Path string
}

func (e *AlreadySuffixedError) Error() string {
	return fmt.Sprintf("%s already has a DFU suffix: remove it and retry", e.Path)
}
