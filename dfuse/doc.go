// Package dfuse encodes and decodes firmware images in the DfuSe
// container format (ST Microelectronics "DFU with extensions", UM0391,
// built on USB DFU 1.1a).
//
// # File Format
//
// A container is a prefix, a sequence of targets and a suffix. All
// integers are little-endian.
//
// Prefix (11 bytes):
//
//	[Signature "DfuSe"(5)][Version(1)][TotalSize(4)][Targets(1)]
//
// Target header (274 bytes), followed by its element blob:
//
//	[Signature "Target"(6)][AltSetting(1)][Named(4)][Name(255)][Size(4)][Elements(4)]
//
// Element (8-byte header plus payload):
//
//	[Address(4)][Size(4)][Data(Size)]
//
// Suffix (16 bytes):
//
//	[Device(2)][Product(2)][Vendor(2)][DFUVersion(2)][Marker "UFD"(3)][Length(1)][CRC(4)]
//
// The CRC is the one's-complement of the zlib-style CRC-32 over every
// preceding byte of the file. See Checksum.
//
// # Building
//
// Serialize a target list into complete container bytes:
//
//	targets := []dfuse.Target{{
//	    AltSetting: 0,
//	    Elements: []dfuse.Element{
//	        {Address: 0x08000000, Data: image},
//	    },
//	}}
//	data := dfuse.Serialize(targets,
//	    dfuse.WithDeviceIDs(0x0483, 0xDF11),
//	    dfuse.WithName("app v1.2"),
//	)
//
// # Parsing
//
// Deserialize returns the decoded container plus a list of diagnostics.
// Structural violations that prevent decoding (bad signatures, truncated
// input) are returned as the error; recoverable anomalies — leftover
// bytes inside a target, bytes after the suffix, a checksum mismatch —
// are diagnostics, so inspection tools can report every finding:
//
//	f, diags, err := dfuse.Deserialize(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dfuse.Report(os.Stdout, f)
//	for _, d := range diags {
//	    fmt.Println("PARSE ERROR:", d)
//	}
//
// # Error Handling
//
// The package provides structured error types:
//   - FormatError: structural violation, classified by FormatErrorKind
//   - ChecksumMismatchError: suffix CRC does not verify
//   - AlreadySuffixedError: input to wrap already carries a DFU suffix
//
// Match them with errors.As.
package dfuse
