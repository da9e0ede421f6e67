package ingest

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/moffa90/go-dfuse/dfuse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDescriptor(t *testing.T) {
	tests := []struct {
		name       string
		descriptor string
		defaultAlt uint8
		wantAddr   uint32
		wantAlt    uint8
		wantPath   string
		wantErr    bool
	}{
		{
			name:       "hex address",
			descriptor: "0x08000000:fw.bin",
			wantAddr:   0x08000000,
			wantPath:   "fw.bin",
		},
		{
			name:       "decimal address",
			descriptor: "4096:fw.bin",
			wantAddr:   4096,
			wantPath:   "fw.bin",
		},
		{
			name:       "octal address",
			descriptor: "0777:fw.bin",
			wantAddr:   0o777,
			wantPath:   "fw.bin",
		},
		{
			name:       "explicit alt setting",
			descriptor: "0x1000@2:fw.bin",
			wantAddr:   0x1000,
			wantAlt:    2,
			wantPath:   "fw.bin",
		},
		{
			name:       "empty alt falls back to default",
			descriptor: "0x1000@:fw.bin",
			defaultAlt: 3,
			wantAddr:   0x1000,
			wantAlt:    3,
			wantPath:   "fw.bin",
		},
		{
			name:       "no alt falls back to default",
			descriptor: "0x1000:fw.bin",
			defaultAlt: 3,
			wantAddr:   0x1000,
			wantAlt:    3,
			wantPath:   "fw.bin",
		},
		{
			name:       "path with drive colon",
			descriptor: "0x1000:C:\\fw.bin",
			wantAddr:   0x1000,
			wantPath:   "C:\\fw.bin",
		},
		{
			name:       "missing colon",
			descriptor: "0x1000",
			wantErr:    true,
		},
		{
			name:       "non-numeric alt",
			descriptor: "0x1000@x:fw.bin",
			wantErr:    true,
		},
		{
			name:       "bad address",
			descriptor: "grue:fw.bin",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, alt, path, err := parseDescriptor(tt.descriptor, tt.defaultAlt)
			if tt.wantErr {
				var de *DescriptorError
				require.ErrorAs(t, err, &de)
				assert.Equal(t, tt.descriptor, de.Descriptor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAddr, addr)
			assert.Equal(t, tt.wantAlt, alt)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}

func writeTestFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestBinarySourceGrouping(t *testing.T) {
	dir := t.TempDir()
	a := writeTestFile(t, dir, "a.bin", []byte{0x0A})
	b := writeTestFile(t, dir, "b.bin", []byte{0x0B})
	c := writeTestFile(t, dir, "c.bin", []byte{0x0C})

	src := NewBinarySource([]string{
		"0x1000@0:" + a,
		"0x2000@0:" + b,
		"0x3000@1:" + c,
	})
	segs, err := src.Segments()
	require.NoError(t, err)
	require.Len(t, segs, 3)

	targets := Assemble(segs)
	require.Len(t, targets, 2)
	assert.Equal(t, []dfuse.Element{
		{Address: 0x1000, Data: []byte{0x0A}},
		{Address: 0x2000, Data: []byte{0x0B}},
	}, targets[0].Elements)
	assert.Equal(t, uint8(1), targets[1].AltSetting)
	assert.Equal(t, []dfuse.Element{
		{Address: 0x3000, Data: []byte{0x0C}},
	}, targets[1].Elements)
}

func TestBinarySourceAlreadySuffixed(t *testing.T) {
	// An arbitrary buffer with a valid suffix appended must be refused.
	suffixed := []byte("some arbitrary image")
	suffixed = binary.LittleEndian.AppendUint16(suffixed, 0)
	suffixed = binary.LittleEndian.AppendUint16(suffixed, dfuse.DefaultProductID)
	suffixed = binary.LittleEndian.AppendUint16(suffixed, dfuse.DefaultVendorID)
	suffixed = binary.LittleEndian.AppendUint16(suffixed, dfuse.DFUVersion)
	suffixed = append(suffixed, "UFD"...)
	suffixed = append(suffixed, dfuse.SuffixSize)
	suffixed = binary.LittleEndian.AppendUint32(suffixed, dfuse.Checksum(suffixed))

	path := writeTestFile(t, t.TempDir(), "suffixed.bin", suffixed)

	src := NewBinarySource([]string{"0x1000:" + path})
	segs, err := src.Segments()

	var ase *dfuse.AlreadySuffixedError
	require.ErrorAs(t, err, &ase)
	assert.Equal(t, path, ase.Path)
	assert.Nil(t, segs)
}

func TestBinarySourceUnreadableFile(t *testing.T) {
	src := NewBinarySource([]string{"0x1000:" + filepath.Join(t.TempDir(), "missing.bin")})
	_, err := src.Segments()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBinarySourceDescriptorOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeTestFile(t, dir, "a.bin", []byte{0x0A})
	b := writeTestFile(t, dir, "b.bin", []byte{0x0B})

	src := NewBinarySource([]string{"0x2000:" + b, "0x1000:" + a})
	segs, err := src.Segments()
	require.NoError(t, err)

	require.Len(t, segs, 2)
	assert.Equal(t, uint32(0x2000), segs[0].Address)
	assert.Equal(t, uint32(0x1000), segs[1].Address)
}
