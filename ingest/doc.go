// Package ingest turns external firmware representations into the
// segment stream the dfuse codec consumes.
//
// # Sources
//
// Three sources implement the same capability — "produce an ordered
// sequence of (address, data, alt-setting) segments":
//
//   - BinarySource: raw binary files named by address[@alt]:path
//     descriptors, one segment per descriptor
//   - SRecSource: Motorola S19 text, contiguous records folded into
//     minimal segments, container name taken from the S0 header
//   - HexSource: Intel HEX files, parsed by the gohex library
//
// # Assembly
//
// Assemble groups a segment stream into dfuse targets, closing a target
// whenever the alternate setting changes:
//
//	src := ingest.NewBinarySource([]string{
//	    "0x08000000:boot.bin",
//	    "0x08004000@1:app.bin",
//	})
//	segs, err := src.Segments()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data := dfuse.Serialize(ingest.Assemble(segs))
//
// # Error Handling
//
// Ingestion errors abort the build; no segment stream is returned for
// malformed input. Structured types classify the failures:
//   - DescriptorError: malformed address[@alt]:path descriptor
//   - RecordError: malformed S-record line
//   - dfuse.AlreadySuffixedError: a binary input already carries a DFU suffix
//
// File read failures are wrapped *os.PathError values.
package ingest
