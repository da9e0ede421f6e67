package dfuse

// Constants for the DfuSe container layout (UM0391, DFU revision 1.1a).
// All multi-byte integers on the wire are little-endian.
const (
	// PrefixSize is the size of the file prefix in bytes
	PrefixSize = 11

	// TargetHeaderSize is the size of a target header in bytes
	TargetHeaderSize = 274

	// ElementHeaderSize is the size of an element header (address + size) in bytes
	ElementHeaderSize = 8

	// SuffixSize is the size of the file suffix in bytes
	SuffixSize = 16

	// NameFieldSize is the size of the target name field in bytes
	NameFieldSize = 255

	// FormatVersion is the DfuSe format version (always 1)
	FormatVersion = 1

	// DFUVersion is the BCD DFU specification version stored in the suffix (1.1a)
	DFUVersion = 0x011A

	// DefaultVendorID is the ST Microelectronics USB vendor ID
	DefaultVendorID = 0x0483

	// DefaultProductID is the ST DFU bootloader USB product ID
	DefaultProductID = 0xDF11

	// DefaultName is the container name used when no input supplies one
	DefaultName = "ST..."

	prefixSignature = "DfuSe"
	targetSignature = "Target"
	suffixMarker    = "UFD"
)

// Element is one contiguous memory region within a target.
type Element struct {
	// Address is the target memory address the data is loaded at
	Address uint32

	// Data is the raw image payload; its length is the element's wire size
	Data []byte
}

// Target is one alternate setting's worth of image data: an ordered
// sequence of elements flashed through a single USB interface alternate
// setting. Element order is wire order and is preserved as-is.
type Target struct {
	// AltSetting is the USB interface alternate setting index
	AltSetting uint8

	// Named indicates whether the target carries a name on the wire.
	// Absence is a flag, not an empty string: a container built with the
	// named field cleared deserializes with Named=false even if the name
	// field bytes are non-zero.
	Named bool

	// Name is the human-readable target name (at most 254 bytes plus the
	// NUL terminator on the wire); empty unless Named is set
	Name string

	// Elements are the target's memory regions in wire order
	Elements []Element
}

// Suffix is the trailing structure authenticating a DFU-family file.
type Suffix struct {
	// Device is the bcdDevice field (0 when not targeting a specific revision)
	Device uint16

	// Product is the USB product ID
	Product uint16

	// Vendor is the USB vendor ID
	Vendor uint16

	// DFUVersion is the BCD DFU specification version
	DFUVersion uint16

	// Marker holds the 3-byte "UFD" literal as read from the wire
	Marker string

	// Length is the declared suffix length (16)
	Length uint8

	// CRC is the stored file checksum, covering every preceding byte
	CRC uint32
}

// File is a decoded DfuSe container.
type File struct {
	// Version is the format version from the prefix
	Version uint8

	// Size is the declared total size: prefix + target blobs + suffix
	Size uint32

	// Targets are the container's targets in wire order
	Targets []Target

	// Suffix is the decoded file suffix
	Suffix Suffix
}
