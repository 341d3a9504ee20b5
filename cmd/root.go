package cmd

import (
	"github.com/spf13/cobra"

	"github.com/km-arc/go-summer/app"
	kernel "github.com/km-arc/go-summer/framework/app"
)

var version = "dev"

// SetVersion sets the version reported by --version.
func SetVersion(v string) { version = v }

// NewRootCmd builds the summer command tree.
func NewRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "summer",
		Short:         "A tiny IoC container with a demo HTTP app",
		Long:          `summer wires a demo HTTP application entirely through a typed inversion-of-control container.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&envFile, "env-file", "e", ".env",
		"dotenv file to load before reading the environment")

	load := func() (*kernel.Application, error) {
		return newApplication(envFile)
	}
	root.AddCommand(newServeCmd(load), newGraphCmd(load), newRoutesCmd(load))
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// newApplication loads config from envFile and registers the demo providers.
func newApplication(envFile string) (*kernel.Application, error) {
	a, err := kernel.New(envFile)
	if err != nil {
		return nil, err
	}
	if err := a.Register(&app.AppServiceProvider{}); err != nil {
		return nil, err
	}
	return a, nil
}
