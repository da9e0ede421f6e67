package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dfuse-pack",
	Short: "Pack and inspect DfuSe (ST DFU) firmware containers",
	Long: `dfuse-pack builds and inspects firmware containers in the DfuSe format
(ST Microelectronics "DFU with extensions", UM0391).

Containers can be built from raw binary files at fixed addresses, from
Intel HEX files or from a Motorola S19 file, and existing containers can
be decoded, validated and their images dumped.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(buildHexCmd)
	rootCmd.AddCommand(buildS19Cmd)
}
