package dfuse

import "encoding/binary"

// BuildConfig holds the container-level fields applied during Serialize.
type BuildConfig struct {
	// Name is the name stamped on every unnamed target
	Name string

	// Vendor is the USB vendor ID stored in the suffix
	Vendor uint16

	// Product is the USB product ID stored in the suffix
	Product uint16

	// Device is the bcdDevice suffix field; 0 targets any revision
	Device uint16
}

func defaultBuildConfig() BuildConfig {
	return BuildConfig{
		Name:    DefaultName,
		Vendor:  DefaultVendorID,
		Product: DefaultProductID,
	}
}

// BuildOption is a functional option for Serialize.
type BuildOption func(*BuildConfig)

// WithName sets the container name. Names longer than the 255-byte wire
// field are truncated; the name is NUL-padded otherwise.
//
// Example:
//
//	data := dfuse.Serialize(targets, dfuse.WithName("app v1.2"))
func WithName(name string) BuildOption {
	return func(c *BuildConfig) {
		c.Name = name
	}
}

// WithDeviceIDs sets the USB vendor and product IDs stored in the suffix.
// Defaults are the ST DFU bootloader IDs 0x0483:0xDF11.
//
// Example:
//
//	data := dfuse.Serialize(targets, dfuse.WithDeviceIDs(0x0483, 0xDF11))
func WithDeviceIDs(vendor, product uint16) BuildOption {
	return func(c *BuildConfig) {
		c.Vendor = vendor
		c.Product = product
	}
}

// Serialize encodes targets into a complete DfuSe container, suffix and
// checksum included. Targets are written in slice order, elements in
// element order; no reordering or merging happens here.
//
// Malformed target lists (more than 255 targets, element data the caller
// mutates concurrently) are a contract violation by the caller; the
// assembler that produced the targets is responsible for preventing them.
func Serialize(targets []Target, opts ...BuildOption) []byte {
	cfg := defaultBuildConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var body []byte
	for _, t := range targets {
		var blob []byte
		for _, e := range t.Elements {
			blob = binary.LittleEndian.AppendUint32(blob, e.Address)
			blob = binary.LittleEndian.AppendUint32(blob, uint32(len(e.Data)))
			blob = append(blob, e.Data...)
		}

		name := cfg.Name
		if t.Named {
			name = t.Name
		}
		var nameField [NameFieldSize]byte
		copy(nameField[:], name)

		body = append(body, targetSignature...)
		body = append(body, t.AltSetting)
		body = binary.LittleEndian.AppendUint32(body, 1) // named flag
		body = append(body, nameField[:]...)
		body = binary.LittleEndian.AppendUint32(body, uint32(len(blob)))
		body = binary.LittleEndian.AppendUint32(body, uint32(len(t.Elements)))
		body = append(body, blob...)
	}

	data := make([]byte, 0, PrefixSize+len(body)+SuffixSize)
	data = append(data, prefixSignature...)
	data = append(data, FormatVersion)
	data = binary.LittleEndian.AppendUint32(data, uint32(PrefixSize+len(body)+SuffixSize))
	data = append(data, uint8(len(targets)))
	data = append(data, body...)

	data = binary.LittleEndian.AppendUint16(data, cfg.Device)
	data = binary.LittleEndian.AppendUint16(data, cfg.Product)
	data = binary.LittleEndian.AppendUint16(data, cfg.Vendor)
	data = binary.LittleEndian.AppendUint16(data, DFUVersion)
	data = append(data, suffixMarker...)
	data = append(data, SuffixSize)
	data = binary.LittleEndian.AppendUint32(data, Checksum(data))

	return data
}
