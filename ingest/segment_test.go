package ingest

import (
	"testing"

	"github.com/moffa90/go-dfuse/dfuse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble(t *testing.T) {
	tests := []struct {
		name        string
		altSettings []uint8
		wantCounts  []int // elements per resulting target
	}{
		{
			name:        "no segments",
			altSettings: nil,
			wantCounts:  nil,
		},
		{
			name:        "single setting",
			altSettings: []uint8{0, 0, 0},
			wantCounts:  []int{3},
		},
		{
			name:        "setting change closes target",
			altSettings: []uint8{0, 0, 1},
			wantCounts:  []int{2, 1},
		},
		{
			name:        "no merging across the boundary",
			altSettings: []uint8{0, 1, 0},
			wantCounts:  []int{1, 1, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := make([]Segment, len(tt.altSettings))
			for i, alt := range tt.altSettings {
				segs[i] = Segment{
					Address:    0x1000 * uint32(i+1),
					Data:       []byte{byte(i)},
					AltSetting: alt,
				}
			}

			targets := Assemble(segs)

			require.Len(t, targets, len(tt.wantCounts))
			seen := 0
			for i, want := range tt.wantCounts {
				assert.Len(t, targets[i].Elements, want, "target %d", i)
				assert.Equal(t, tt.altSettings[seen], targets[i].AltSetting, "target %d", i)
				seen += want
			}
		})
	}
}

func TestAssemblePreservesOrder(t *testing.T) {
	segs := []Segment{
		{Address: 0x2000, Data: []byte{0x01}, AltSetting: 0},
		{Address: 0x1000, Data: []byte{0x02}, AltSetting: 0},
	}

	targets := Assemble(segs)

	require.Len(t, targets, 1)
	// Wire order is ingestion order, never sorted by address.
	assert.Equal(t, []dfuse.Element{
		{Address: 0x2000, Data: []byte{0x01}},
		{Address: 0x1000, Data: []byte{0x02}},
	}, targets[0].Elements)
}
