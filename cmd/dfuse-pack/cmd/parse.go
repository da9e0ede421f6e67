package cmd

import (
	"fmt"
	"os"

	"github.com/moffa90/go-dfuse/dfuse"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file.dfu>",
	Short: "Decode and report a DfuSe container",
	Long: `Decode a DfuSe container, report its structure and verify its checksum.

Structural anomalies and checksum mismatches are reported but do not stop
the parse, so a damaged container can still be diagnosed. The exit status
is 1 when anything was reported.

Example:
  dfuse-pack parse firmware.dfu
  dfuse-pack parse --dump firmware.dfu`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolP("dump", "d", false, "dump contained images to the current directory")
}

func runParse(cmd *cobra.Command, args []string) error {
	dump, _ := cmd.Flags().GetBool("dump")
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File: %q\n", path)

	f, diags, err := dfuse.Deserialize(data)
	if err != nil {
		return err
	}
	dfuse.Report(out, f)

	if dump {
		for t := range f.Targets {
			for e, elem := range f.Targets[t].Elements {
				name := fmt.Sprintf("%s.target%d.image%d.bin", path, t, e)
				if err := os.WriteFile(name, elem.Data, 0o644); err != nil {
					return err
				}
				fmt.Fprintf(out, "    dumped image to %q\n", name)
			}
		}
	}

	for _, d := range diags {
		fmt.Fprintf(cmd.ErrOrStderr(), "PARSE ERROR: %v\n", d)
	}
	if len(diags) > 0 {
		return fmt.Errorf("%d parse error(s)", len(diags))
	}
	return nil
}
