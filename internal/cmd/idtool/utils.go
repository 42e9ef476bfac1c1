package idtool

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rathijitpapon/snowflakeid/internal/config"
	"github.com/rathijitpapon/snowflakeid/pkg/snowflake"
	"github.com/spf13/cobra"
)

// addGeneratorFlags registers the flags shared by every command that needs a
// configured generator.
func addGeneratorFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "Path to a JSON or YAML config file")
	cmd.Flags().Int("machine-id-bits", 0, "Machine id field width in bits (with --sequence-bits, must sum to 22)")
	cmd.Flags().Int("sequence-bits", 0, "Sequence field width in bits (with --machine-id-bits, must sum to 22)")
	cmd.Flags().Int64("machine-id", 0, "Fixed machine id (default: derived from the first non-loopback interface)")
	cmd.Flags().String("epoch", "", "Epoch as RFC3339 or unix milliseconds")
}

// resolveConfig layers config file, SNOWID_* environment and flags, in
// increasing order of precedence.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	config.FromEnv(&cfg)

	// Setting exactly one bit-width flag derives the other.
	if flags.Changed("machine-id-bits") {
		cfg.MachineIDBits, _ = flags.GetInt("machine-id-bits")
		if !flags.Changed("sequence-bits") {
			cfg.SequenceBits = 0
		}
	}
	if flags.Changed("sequence-bits") {
		cfg.SequenceBits, _ = flags.GetInt("sequence-bits")
		if !flags.Changed("machine-id-bits") {
			cfg.MachineIDBits = 0
		}
	}
	if flags.Changed("machine-id") {
		id, _ := flags.GetInt64("machine-id")
		cfg.MachineID = &id
	}
	if flags.Changed("epoch") {
		cfg.Epoch, _ = flags.GetString("epoch")
	}
	return cfg, nil
}

// newGenerator builds a generator from the command's resolved configuration.
func newGenerator(cmd *cobra.Command) (*snowflake.Generator, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return snowflake.New(opts)
}

// printJSON writes v to w as a single JSON line.
func printJSON(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
