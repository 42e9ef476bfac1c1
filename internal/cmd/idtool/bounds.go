package idtool

import (
	"time"

	"github.com/rathijitpapon/snowflakeid/internal/config"
	"github.com/rathijitpapon/snowflakeid/pkg/log"
	"github.com/spf13/cobra"
)

// boundsOutput is the JSON shape bounds prints.
type boundsOutput struct {
	Timestamp   string `json:"timestamp"`
	TimestampMs int64  `json:"timestampMs"`
	First       string `json:"first"`
	Last        string `json:"last"`
}

func newBoundsCommand(logger log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bounds <timestamp>",
		Short: "Print the first and last possible ids for a timestamp",
		Long: "bounds computes the smallest and largest id whose timestamp field encodes " +
			"the given instant (RFC3339 or unix milliseconds). The pair brackets every id " +
			"any machine could mint during that millisecond, so it works as a half-open " +
			"boundary for range queries over id-ordered data.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := newGenerator(cmd)
			if err != nil {
				return err
			}
			at, err := config.ParseTime(args[0])
			if err != nil {
				return err
			}
			first, err := g.FirstIDAt(at)
			if err != nil {
				return err
			}
			last, err := g.LastIDAt(at)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), boundsOutput{
				Timestamp:   at.UTC().Format(time.RFC3339Nano),
				TimestampMs: at.UnixMilli(),
				First:       first.String(),
				Last:        last.String(),
			})
		},
	}
	addGeneratorFlags(cmd)
	return cmd
}
