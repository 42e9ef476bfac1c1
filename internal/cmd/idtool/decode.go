package idtool

import (
	"time"

	"github.com/rathijitpapon/snowflakeid/pkg/log"
	"github.com/rathijitpapon/snowflakeid/pkg/snowflake"
	"github.com/spf13/cobra"
)

// decodedID is the JSON shape decode prints, one object per input id.
type decodedID struct {
	ID          string `json:"id"`
	Timestamp   string `json:"timestamp"`
	TimestampMs int64  `json:"timestampMs"`
	MachineID   int64  `json:"machineId"`
	Sequence    int64  `json:"sequence"`
}

func newDecodeCommand(logger log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <id>...",
		Short: "Decode ids into timestamp, machine id and sequence",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := newGenerator(cmd)
			if err != nil {
				return err
			}
			for _, arg := range args {
				id, err := snowflake.ParseID(arg)
				if err != nil {
					return err
				}
				parts := g.Decode(id)
				out := decodedID{
					ID:          id.String(),
					Timestamp:   parts.Timestamp.Format(time.RFC3339Nano),
					TimestampMs: parts.Timestamp.UnixMilli(),
					MachineID:   parts.MachineID,
					Sequence:    parts.Sequence,
				}
				if err := printJSON(cmd.OutOrStdout(), out); err != nil {
					return err
				}
			}
			return nil
		},
	}
	addGeneratorFlags(cmd)
	return cmd
}
