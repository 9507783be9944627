package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/greenhouse-controller/internal/service/common"
)

// serialCmd prints the board serial number shown in the console header.
var serialCmd = &cobra.Command{
	Use:   "serial",
	Short: "Print the board serial number.",
	Long:  "Print the serial number read from /proc/cpuinfo in hexadecimal, or 0 when it is not available.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%x\n", common.Serial())

		return err
	},
}
