package cmd

import (
	"github.com/netrixframework/evd/cmd/eval"
	"github.com/netrixframework/evd/cmd/sample"
	"github.com/netrixframework/evd/cmd/serve"
	"github.com/netrixframework/evd/config"
	"github.com/spf13/cobra"
)

// RootCmd returns the root cobra command of the evd tool
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "evd",
		Short:        "Evaluate and sample extreme-value distributions",
		SilenceUsage: true,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.PersistentFlags().StringVarP(&config.ConfigPath, "config", "c", "config.json", "Config file path")
	cmd.AddCommand(eval.EvalCmd())
	cmd.AddCommand(sample.SampleCmd())
	cmd.AddCommand(serve.ServeCmd())
	return cmd
}
