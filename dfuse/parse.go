package dfuse

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Deserialize decodes a DfuSe container.
//
// Violations that make further decoding impossible — a bad prefix or
// target signature, input ending before a declared structure — return a
// *FormatError and stop. Anomalies that do not block decoding are
// collected as diagnostics instead, so parse mode can report every
// finding in one pass:
//   - *FormatError with TrailingTargetBytes: a target's element blob held
//     bytes beyond its declared elements (remaining targets still parse)
//   - *FormatError with TrailingFileBytes: bytes after the suffix
//   - *ChecksumMismatchError: the suffix checksum does not verify
//
// Deserialize is pure: it never prints and never writes files. Dumping
// element images is the caller's optional post-step.
func Deserialize(data []byte) (*File, []error, error) {
	if len(data) < PrefixSize+SuffixSize {
		return nil, nil, &FormatError{
			Kind:   Truncated,
			Target: -1,
			Detail: fmt.Sprintf("file is %d bytes, minimum is %d", len(data), PrefixSize+SuffixSize),
		}
	}
	if string(data[:5]) != prefixSignature {
		return nil, nil, &FormatError{
			Kind:   BadSignature,
			Target: -1,
			Detail: fmt.Sprintf("prefix signature is %q, want %q", data[:5], prefixSignature),
		}
	}

	f := &File{
		Version: data[5],
		Size:    binary.LittleEndian.Uint32(data[6:10]),
	}
	targetCount := int(data[10])
	rest := data[PrefixSize:]

	var diags []error
	for t := 0; t < targetCount; t++ {
		if len(rest) < TargetHeaderSize {
			return nil, diags, &FormatError{
				Kind:   Truncated,
				Target: t,
				Detail: fmt.Sprintf("%d bytes left, target header needs %d", len(rest), TargetHeaderSize),
			}
		}
		hdr := rest[:TargetHeaderSize]
		rest = rest[TargetHeaderSize:]

		if string(hdr[:6]) != targetSignature {
			return nil, diags, &FormatError{
				Kind:   BadSignature,
				Target: t,
				Detail: fmt.Sprintf("target signature is %q, want %q", hdr[:6], targetSignature),
			}
		}

		tgt := Target{AltSetting: hdr[6]}
		if named := binary.LittleEndian.Uint32(hdr[7:11]); named != 0 {
			tgt.Named = true
			tgt.Name = cstring(hdr[11 : 11+NameFieldSize])
		}
		size := binary.LittleEndian.Uint32(hdr[266:270])
		elements := binary.LittleEndian.Uint32(hdr[270:274])

		if uint32(len(rest)) < size {
			return nil, diags, &FormatError{
				Kind:   Truncated,
				Target: t,
				Detail: fmt.Sprintf("%d bytes left, target declares %d", len(rest), size),
			}
		}
		blob := rest[:size]
		rest = rest[size:]

		for e := uint32(0); e < elements; e++ {
			if len(blob) < ElementHeaderSize {
				diags = append(diags, &FormatError{
					Kind:   Truncated,
					Target: t,
					Detail: fmt.Sprintf("element %d: %d bytes left, header needs %d", e, len(blob), ElementHeaderSize),
				})
				blob = nil
				break
			}
			elem := Element{Address: binary.LittleEndian.Uint32(blob[0:4])}
			esize := binary.LittleEndian.Uint32(blob[4:8])
			blob = blob[ElementHeaderSize:]

			if uint32(len(blob)) < esize {
				diags = append(diags, &FormatError{
					Kind:   Truncated,
					Target: t,
					Detail: fmt.Sprintf("element %d: %d bytes left, element declares %d", e, len(blob), esize),
				})
				blob = nil
				break
			}
			elem.Data = blob[:esize]
			blob = blob[esize:]
			tgt.Elements = append(tgt.Elements, elem)
		}
		if len(blob) != 0 {
			diags = append(diags, &FormatError{
				Kind:   TrailingTargetBytes,
				Target: t,
				Detail: fmt.Sprintf("%d bytes left after %d declared elements", len(blob), elements),
			})
		}

		f.Targets = append(f.Targets, tgt)
	}

	if len(rest) < SuffixSize {
		return nil, diags, &FormatError{
			Kind:   Truncated,
			Target: -1,
			Detail: fmt.Sprintf("%d bytes left, suffix needs %d", len(rest), SuffixSize),
		}
	}
	f.Suffix = decodeSuffix(rest[:SuffixSize])

	// The stored checksum covers every file byte preceding its own field.
	covered := len(data) - len(rest) + SuffixSize - 4
	if computed := Checksum(data[:covered]); computed != f.Suffix.CRC {
		diags = append(diags, &ChecksumMismatchError{
			Stored:   f.Suffix.CRC,
			Computed: computed,
		})
	}

	if extra := len(rest) - SuffixSize; extra > 0 {
		diags = append(diags, &FormatError{
			Kind:   TrailingFileBytes,
			Target: -1,
			Detail: fmt.Sprintf("%d bytes after suffix", extra),
		})
	}

	return f, diags, nil
}

// cstring returns the bytes of b up to the first NUL as a string.
func cstring(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
