package ingest

import "github.com/moffa90/go-dfuse/dfuse"

// Segment is one contiguous run of bytes bound for a target memory
// address, tagged with the USB alternate setting it belongs to. Segments
// exist only between ingestion and assembly; they are never persisted.
type Segment struct {
	// Address is the target memory address of the first byte
	Address uint32

	// Data is the raw payload
	Data []byte

	// AltSetting is the alternate setting the segment belongs to
	AltSetting uint8
}

// Source produces an ordered sequence of segments from some external
// representation. The assembler and the codec never know which kind of
// input fed them: raw binaries, S-record text and Intel HEX all arrive
// through this interface.
type Source interface {
	// Segments reads the source fully and returns its segments in input
	// order. Any malformed input aborts with an error; a build must not
	// silently produce a corrupt container.
	Segments() ([]Segment, error)
}

// Namer is implemented by sources whose input carries a container name
// (an S-record S0 header record).
type Namer interface {
	// Name returns the container name and whether the input supplied one.
	// Valid only after Segments has returned.
	Name() (string, bool)
}

// Assemble groups segments into targets. Consecutive segments sharing an
// alternate setting join one target, in segment order; a changed
// alternate setting closes the current target and opens a new one.
// Segments are never reordered or merged across that boundary, so
// settings 0,1,0 yield three targets.
func Assemble(segs []Segment) []dfuse.Target {
	var targets []dfuse.Target
	for _, s := range segs {
		if len(targets) == 0 || targets[len(targets)-1].AltSetting != s.AltSetting {
			targets = append(targets, dfuse.Target{AltSetting: s.AltSetting})
		}
		t := &targets[len(targets)-1]
		t.Elements = append(t.Elements, dfuse.Element{Address: s.Address, Data: s.Data})
	}
	return targets
}
