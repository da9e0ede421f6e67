package dfuse

import "encoding/binary"

// decodeSuffix decodes a 16-byte suffix. b must be exactly SuffixSize long.
func decodeSuffix(b []byte) Suffix {
	return Suffix{
		Device:     binary.LittleEndian.Uint16(b[0:2]),
		Product:    binary.LittleEndian.Uint16(b[2:4]),
		Vendor:     binary.LittleEndian.Uint16(b[4:6]),
		DFUVersion: binary.LittleEndian.Uint16(b[6:8]),
		Marker:     string(b[8:11]),
		Length:     b[11],
		CRC:        binary.LittleEndian.Uint32(b[12:16]),
	}
}

// DetectSuffix reports whether data already ends in a valid DFU suffix:
// the last 16 bytes carry the "UFD" marker and a checksum that verifies
// over everything before it.
//
// Run this against any raw binary before wrapping it in a container.
// Wrapping an already-suffixed image double-wraps it, and the resulting
// file flashes the inner suffix bytes into the device.
func DetectSuffix(data []byte) bool {
	if len(data) < SuffixSize {
		return false
	}
	s := decodeSuffix(data[len(data)-SuffixSize:])
	return s.Marker == suffixMarker && VerifyChecksum(data[:len(data)-4], s.CRC)
}
