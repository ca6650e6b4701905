package serve

import (
	"fmt"

	"github.com/netrixframework/evd/apiserver"
	"github.com/netrixframework/evd/config"
	"github.com/netrixframework/evd/log"
	"github.com/netrixframework/evd/util"
	"github.com/spf13/cobra"
)

// ServeCmd returns the command running the API server until interrupted
func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve distribution evaluations over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			termCh := util.Term()

			conf, err := config.LoadConfig(config.ConfigPath)
			if err != nil {
				return fmt.Errorf("failed to parse config: %s", err)
			}
			log.Init(conf.LogConfig)
			defer log.Destroy()

			server := apiserver.NewAPIServer(conf, log.DefaultLogger)
			server.Start()

			<-termCh
			server.Stop()
			return nil
		},
	}
}
