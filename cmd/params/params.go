// Package params holds the distribution flags shared by the eval and sample
// commands
package params

import (
	"fmt"

	"github.com/netrixframework/evd/config"
	"github.com/netrixframework/evd/dist"
	"github.com/spf13/cobra"
)

// Flags are the parameter and seed flags of a command
type Flags struct {
	Params dist.Params
	Seed   uint64

	cmd *cobra.Command
}

// Bind registers the flags on cmd
func Bind(cmd *cobra.Command) *Flags {
	f := &Flags{cmd: cmd}
	cmd.Flags().Float64Var(&f.Params.Loc, "loc", 0, "Location parameter")
	cmd.Flags().Float64Var(&f.Params.Scale, "scale", 1, "Scale parameter, must be positive")
	cmd.Flags().Float64Var(&f.Params.Shape, "shape", 0, "Shape parameter, ignored by gumbel")
	cmd.Flags().Uint64Var(&f.Seed, "seed", 0, "Seed for random draws, defaults to the configured seed or system entropy")
	return f
}

// Distribution constructs the named distribution from the flags
func (f *Flags) Distribution(name string) (dist.Distribution, error) {
	d, err := dist.New(name, f.Params)
	if err != nil {
		return nil, fmt.Errorf("invalid distribution: %w", err)
	}
	return d, nil
}

// SeedFor returns the --seed flag when given and the configured seed otherwise
func (f *Flags) SeedFor(conf *config.Config) dist.Seed {
	if f.cmd.Flags().Changed("seed") {
		return dist.WithSeed(f.Seed)
	}
	return conf.DefaultSeed()
}
