package idtool

import (
	"github.com/rathijitpapon/snowflakeid/pkg/log"
	"github.com/spf13/cobra"
)

// NewRoot constructs the root snowid command.
// It registers the generate, decode and bounds commands.
func NewRoot(logger log.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:          "snowid",
		Short:        "Snowflake id toolkit",
		Long:         "snowid mints, decodes and brackets unique 64-bit ids that encode a timestamp, a machine id and a per-millisecond sequence.",
		SilenceUsage: true,
	}
	root.AddCommand(newGenerateCommand(logger))
	root.AddCommand(newDecodeCommand(logger))
	root.AddCommand(newBoundsCommand(logger))
	return root
}
