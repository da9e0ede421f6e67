package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/moffa90/go-dfuse/dfuse"
	"github.com/moffa90/go-dfuse/ingest"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build -b address[@alt]:file.bin [-b ...] <out.dfu>",
	Short: "Build a container from raw binary files",
	Long: `Build a DfuSe container from raw binary files loaded at fixed addresses.

Each -b descriptor names a load address, an optional alternate interface
number and a file path. Descriptors with the same alternate setting are
grouped into one target; a changed setting starts a new target. The
binary files must not already carry a DFU suffix.

Example:
  dfuse-pack build -b 0x08000000:boot.bin -b 0x08004000@1:app.bin out.dfu`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

var buildHexCmd = &cobra.Command{
	Use:   "build-ihex -i file.hex [-i ...] <out.dfu>",
	Short: "Build a container from Intel HEX files",
	Long: `Build a DfuSe container from Intel HEX files.

Each file's data segments become elements of a single target at the
default alternate interface number.

Example:
  dfuse-pack build-ihex -i app.hex out.dfu`,
	Args: cobra.ExactArgs(1),
	RunE: runBuildHex,
}

var buildS19Cmd = &cobra.Command{
	Use:   "build-s19 <file.s19> <out.dfu>",
	Short: "Build a container from a Motorola S19 file",
	Long: `Build a DfuSe container from a Motorola S-record (S19) file.

Contiguous data records are folded into single elements, and the S0
header record, when present, names the container.

Example:
  dfuse-pack build-s19 app.s19 out.dfu`,
	Args: cobra.ExactArgs(2),
	RunE: runBuildS19,
}

func init() {
	buildCmd.Flags().StringArrayP("bin", "b", nil, "raw binary descriptor, address[@alt]:path (repeatable)")
	//nolint:errcheck
	buildCmd.MarkFlagRequired("bin")

	buildHexCmd.Flags().StringArrayP("hex", "i", nil, "Intel HEX input file (repeatable)")
	//nolint:errcheck
	buildHexCmd.MarkFlagRequired("hex")

	for _, c := range []*cobra.Command{buildCmd, buildHexCmd, buildS19Cmd} {
		c.Flags().StringP("device", "D", "", "target vendor:device pair, defaults to 0x0483:0xdf11")
		c.Flags().Uint8P("alt-intf", "a", 0, "default alternate interface number")
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	descriptors, _ := cmd.Flags().GetStringArray("bin")
	alt, _ := cmd.Flags().GetUint8("alt-intf")
	return emit(cmd, ingest.NewBinarySource(descriptors, ingest.WithDefaultAlt(alt)), args[0])
}

func runBuildHex(cmd *cobra.Command, args []string) error {
	paths, _ := cmd.Flags().GetStringArray("hex")
	alt, _ := cmd.Flags().GetUint8("alt-intf")
	return emit(cmd, ingest.NewHexSource(paths, ingest.WithDefaultAlt(alt)), args[0])
}

func runBuildS19(cmd *cobra.Command, args []string) error {
	alt, _ := cmd.Flags().GetUint8("alt-intf")

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	return emit(cmd, ingest.NewSRecSource(f, ingest.WithDefaultAlt(alt)), args[1])
}

// emit runs one source through assembly and serialization and writes the
// container. Any ingestion error aborts before the output file is
// touched, so a failed build leaves no partial output behind.
func emit(cmd *cobra.Command, src ingest.Source, outPath string) error {
	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}

	segs, err := src.Segments()
	if err != nil {
		return err
	}
	if n, ok := src.(ingest.Namer); ok {
		if name, named := n.Name(); named {
			opts = append(opts, dfuse.WithName(name))
		}
	}

	data := dfuse.Serialize(ingest.Assemble(segs), opts...)
	return os.WriteFile(outPath, data, 0o644)
}

// buildOptions translates the -D flag into serializer options.
func buildOptions(cmd *cobra.Command) ([]dfuse.BuildOption, error) {
	device, _ := cmd.Flags().GetString("device")
	if device == "" {
		return nil, nil
	}
	vendor, product, err := parseDevicePair(device)
	if err != nil {
		return nil, err
	}
	return []dfuse.BuildOption{dfuse.WithDeviceIDs(vendor, product)}, nil
}

// parseDevicePair splits a vendor:device pair such as "0x0483:0xdf11".
// Both halves accept hex, octal and decimal literals, masked to 16 bits.
func parseDevicePair(s string) (vendor, product uint16, err error) {
	v, p, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid device %q: want vendor:device", s)
	}
	vn, err := strconv.ParseUint(v, 0, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid device %q: vendor %q is not a number", s, v)
	}
	pn, err := strconv.ParseUint(p, 0, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid device %q: device %q is not a number", s, p)
	}
	return uint16(vn), uint16(pn), nil
}
