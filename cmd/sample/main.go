package sample

import (
	"fmt"
	"strconv"

	"github.com/netrixframework/evd/cmd/params"
	"github.com/netrixframework/evd/config"
	"github.com/netrixframework/evd/dist"
	"github.com/netrixframework/evd/log"
	"github.com/spf13/cobra"
)

// SampleCmd returns the command drawing variates from a distribution
func SampleCmd() *cobra.Command {
	var n int
	var flags *params.Flags
	cmd := &cobra.Command{
		Use:   "sample [distribution]",
		Short: "Draw random variates from a distribution, one per line",
		Args:  cobra.ExactArgs(1),
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
			seed := flags.SeedFor(conf)
			values, err := dist.Sample(d, seed, n)
			if err != nil {
				return err
			}
			log.With(log.LogParams{
				"distribution": args[0],
				"n":            n,
				"seed":         seed.String(),
			}).Debug("Sampled")
			out := cmd.OutOrStdout()
			for _, v := range values {
				fmt.Fprintln(out, strconv.FormatFloat(v, 'g', -1, 64))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 1, "Number of variates")
	flags = params.Bind(cmd)
	return cmd
}
