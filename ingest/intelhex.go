package ingest

import (
	"fmt"
	"os"

	"github.com/marcinbor85/gohex"
)

// HexSource ingests Intel HEX files. Parsing is delegated to the gohex
// library; this source only adapts its (address, data) segment stream.
// Intel HEX carries no alternate-setting concept, so every segment gets
// the configured default setting.
type HexSource struct {
	paths []string
	cfg   sourceConfig
}

// NewHexSource returns a source over the given Intel HEX files.
func NewHexSource(paths []string, opts ...SourceOption) *HexSource {
	cfg := defaultSourceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &HexSource{paths: paths, cfg: cfg}
}

// Segments parses every file and returns its data segments in file
// order. gohex already folds records into contiguous segments.
func (s *HexSource) Segments() ([]Segment, error) {
	var segs []Segment
	for _, path := range s.paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open hex file: %w", err)
		}
		mem := gohex.NewMemory()
		err = mem.ParseIntelHex(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		for _, ds := range mem.GetDataSegments() {
			segs = append(segs, Segment{
				Address:    ds.Address,
				Data:       ds.Data,
				AltSetting: s.cfg.defaultAlt,
			})
		}
	}
	return segs, nil
}
