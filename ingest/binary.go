package ingest

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/moffa90/go-dfuse/dfuse"
)

// BinarySource ingests raw binary files from address[@alt]:path
// descriptors. Each descriptor yields exactly one segment holding the
// file's entire contents, in descriptor order.
type BinarySource struct {
	descriptors []string
	cfg         sourceConfig
}

// NewBinarySource returns a source over the given descriptors.
//
// A descriptor names a load address, an optional alternate setting and a
// file path, e.g. "0x08000000:boot.bin" or "0x08004000@1:app.bin". The
// address accepts hex (0x), octal (leading 0) and decimal literals and
// is masked to 32 bits.
func NewBinarySource(descriptors []string, opts ...SourceOption) *BinarySource {
	cfg := defaultSourceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &BinarySource{descriptors: descriptors, cfg: cfg}
}

// Segments reads every descriptor's file and returns one segment per
// descriptor. Inputs that already carry a DFU suffix abort with
// *dfuse.AlreadySuffixedError: they are finished containers, not raw
// images.
func (s *BinarySource) Segments() ([]Segment, error) {
	segs := make([]Segment, 0, len(s.descriptors))
	for _, d := range s.descriptors {
		addr, alt, path, err := parseDescriptor(d, s.cfg.defaultAlt)
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read binary: %w", err)
		}
		if dfuse.DetectSuffix(data) {
			return nil, &dfuse.AlreadySuffixedError{Path: path}
		}
		segs = append(segs, Segment{Address: addr, Data: data, AltSetting: alt})
	}
	return segs, nil
}

// parseDescriptor splits an address[@alt]:path descriptor.
func parseDescriptor(d string, defaultAlt uint8) (addr uint32, alt uint8, path string, err error) {
	addrPart, path, ok := strings.Cut(d, ":")
	if !ok {
		return 0, 0, "", &DescriptorError{Descriptor: d, Reason: "missing ':' between address and path"}
	}

	alt = defaultAlt
	if base, altPart, found := strings.Cut(addrPart, "@"); found {
		addrPart = base
		// A bare trailing '@' falls back to the default setting.
		if altPart != "" {
			n, err := strconv.ParseUint(altPart, 10, 8)
			if err != nil {
				return 0, 0, "", &DescriptorError{
					Descriptor: d,
					Reason:     fmt.Sprintf("alternate setting %q is not a number", altPart),
				}
			}
			alt = uint8(n)
		}
	}

	v, err := strconv.ParseUint(addrPart, 0, 64)
	if err != nil {
		return 0, 0, "", &DescriptorError{
			Descriptor: d,
			Reason:     fmt.Sprintf("address %q invalid", addrPart),
		}
	}
	return uint32(v), alt, path, nil
}
