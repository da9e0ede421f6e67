package ingest

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
)

// SRecSource ingests Motorola S-record (S19) text.
//
// S0 header records supply the container name. S1/S2/S3 data records
// carry 2-, 3- and 4-byte addresses; the trailing per-record checksum
// byte is not part of the payload. Count and termination records
// (S5/S7/S8/S9) and unrecognized lines are ignored.
//
// Data records at consecutive addresses are folded into a single
// segment: a record whose address equals the end of the running segment
// extends it, any other address closes the segment and starts a new one.
// The container format needs exact (address, size) element boundaries,
// and one element per text line would fragment the container badly;
// folding yields the minimal set of contiguous segments.
//
// S19 carries no alternate-setting concept, so every segment gets the
// configured default setting and assembly always yields one target.
type SRecSource struct {
	r     io.Reader
	cfg   sourceConfig
	name  string
	named bool
}

// NewSRecSource returns a source reading S-record text from r.
func NewSRecSource(r io.Reader, opts ...SourceOption) *SRecSource {
	cfg := defaultSourceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &SRecSource{r: r, cfg: cfg}
}

// Name returns the container name decoded from the S0 header record, if
// the input had one. Valid only after Segments has returned.
func (s *SRecSource) Name() (string, bool) {
	return s.name, s.named
}

// Segments reads the input fully and returns the folded segments.
func (s *SRecSource) Segments() ([]Segment, error) {
	var (
		segs []Segment
		cur  Segment
		open bool
	)

	sc := bufio.NewScanner(s.r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if len(text) < 2 || text[0] != 'S' {
			continue
		}
		switch text[1] {
		case '0':
			if len(text) < 10 {
				return nil, &RecordError{Line: line, Reason: "header record too short"}
			}
			name, err := hex.DecodeString(text[8 : len(text)-2])
			if err != nil {
				return nil, &RecordError{Line: line, Reason: fmt.Sprintf("header payload not hex: %v", err)}
			}
			s.name = string(name)
			s.named = true

		case '1', '2', '3':
			// Address field is 4, 6 or 8 hex digits wide, starting after
			// the type and count characters.
			digits := 4 + 2*int(text[1]-'1')
			if len(text) < 4+digits+2 {
				return nil, &RecordError{Line: line, Reason: "data record too short"}
			}
			addr64, err := strconv.ParseUint(text[4:4+digits], 16, 32)
			if err != nil {
				return nil, &RecordError{Line: line, Reason: fmt.Sprintf("address %q invalid", text[4:4+digits])}
			}
			payload, err := hex.DecodeString(text[4+digits : len(text)-2])
			if err != nil {
				return nil, &RecordError{Line: line, Reason: fmt.Sprintf("payload not hex: %v", err)}
			}

			addr := uint32(addr64)
			if open && addr == cur.Address+uint32(len(cur.Data)) {
				cur.Data = append(cur.Data, payload...)
				continue
			}
			if open {
				segs = append(segs, cur)
			}
			cur = Segment{Address: addr, Data: payload, AltSetting: s.cfg.defaultAlt}
			open = true

		default:
			// S5/S7/S8/S9 record counts and termination addresses carry
			// no image data.
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read s-records: %w", err)
	}

	if open {
		segs = append(segs, cur)
	}
	return segs, nil
}
