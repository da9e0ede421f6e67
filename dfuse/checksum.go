package dfuse

import "hash/crc32"

// Checksum computes the DfuSe file checksum: the bitwise one's-complement
// of the standard CRC-32 (IEEE 802.3 polynomial, init 0xFFFFFFFF, as
// produced by zlib's crc32) over data.
//
// The complement is part of the format. Existing DfuSe tooling writes and
// verifies this transformed value, so a plain CRC-32 here would produce
// containers every other tool rejects.
func Checksum(data []byte) uint32 {
	return ^crc32.ChecksumIEEE(data)
}

// VerifyChecksum reports whether stored matches the checksum computed
// over data. data must be every file byte preceding the stored checksum
// field.
func VerifyChecksum(data []byte, stored uint32) bool {
	return Checksum(data) == stored
}
