package dfuse

import (
	"fmt"
	"io"
)

// Report writes a human-readable summary of a decoded container:
// one line for the prefix, one per target, one indented line per
// element and one for the suffix.
func Report(w io.Writer, f *File) {
	fmt.Fprintf(w, "DfuSe v%d, image size: %d, targets: %d\n", f.Version, f.Size, len(f.Targets))
	for i, t := range f.Targets {
		size := 0
		for _, e := range t.Elements {
			size += ElementHeaderSize + len(e.Data)
		}
		fmt.Fprintf(w, "Target %d, alt setting: %d, name: %q, size: %d, elements: %d\n",
			i, t.AltSetting, t.Name, size, len(t.Elements))
		for j, e := range t.Elements {
			fmt.Fprintf(w, "  %d, address: 0x%08x, size: %d\n", j, e.Address, len(e.Data))
		}
	}
	s := f.Suffix
	fmt.Fprintf(w, "usb: %04x:%04x, device: 0x%04x, dfu: 0x%04x, %s, %d, 0x%08x\n",
		s.Vendor, s.Product, s.Device, s.DFUVersion, s.Marker, s.Length, s.CRC)
}
