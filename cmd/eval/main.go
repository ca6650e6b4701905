package eval

import (
	"fmt"
	"strconv"

	"github.com/netrixframework/evd/cmd/params"
	"github.com/netrixframework/evd/config"
	"github.com/netrixframework/evd/dist"
	"github.com/netrixframework/evd/log"
	"github.com/spf13/cobra"
)

// EvalCmd returns the command evaluating one operation of a distribution
func EvalCmd() *cobra.Command {
	var flags *params.Flags
	cmd := &cobra.Command{
		Use:   "eval [distribution] [cdf|pdf|quantile|random] [value]",
		Short: "Evaluate an operation of a distribution",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.LoadConfig(config.ConfigPath)
			if err != nil {
				return fmt.Errorf("failed to parse config: %s", err)
			}
			log.Init(conf.LogConfig)
			defer log.Destroy()

			d, err := flags.Distribution(args[0])
			if err != nil {
				return err
			}
			op, err := dist.ParseOp(args[1])
			if err != nil {
				return err
			}
			var x float64
			if op != dist.OpRandom {
				if len(args) != 3 {
					return fmt.Errorf("%s needs a value", op)
				}
				x, err = strconv.ParseFloat(args[2], 64)
				if err != nil {
					return fmt.Errorf("invalid value %q: %w", args[2], err)
				}
			}
			seed := flags.SeedFor(conf)
			value, err := dist.Evaluate(d, op, x, seed)
			if err != nil {
				return err
			}
			log.With(log.LogParams{
				"distribution": args[0],
				"op":           op,
				"x":            x,
				"seed":         seed.String(),
			}).Debug("Evaluated")
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(value, 'g', -1, 64))
			return nil
		},
	}
	flags = params.Bind(cmd)
	return cmd
}
