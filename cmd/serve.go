package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	kernel "github.com/km-arc/go-summer/framework/app"
)

func newServeCmd(load func() (*kernel.Application, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Boot the container and serve HTTP on APP_PORT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = a.Logger().Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.Run(ctx)
		},
	}
}
