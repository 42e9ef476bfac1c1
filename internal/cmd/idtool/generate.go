package idtool

import (
	"fmt"
	"time"

	"github.com/rathijitpapon/snowflakeid/pkg/log"
	"github.com/spf13/cobra"
)

func newGenerateCommand(logger log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "Generate snowflake ids",
		Aliases: []string{"gen"},
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := newGenerator(cmd)
			if err != nil {
				return err
			}
			count, _ := cmd.Flags().GetInt("count")
			logger.Debug("generator ready",
				log.Int64("machine_id", g.MachineID()),
				log.Int64("max_machine_id", g.MaxMachineID()),
				log.Int64("max_sequence", g.MaxSequence()),
				log.Str("epoch", g.Epoch().Format(time.RFC3339)))
			for i := 0; i < count; i++ {
				fmt.Fprintln(cmd.OutOrStdout(), g.NextID())
			}
			return nil
		},
	}
	cmd.Flags().IntP("count", "n", 1, "Number of ids to generate")
	addGeneratorFlags(cmd)
	return cmd
}
