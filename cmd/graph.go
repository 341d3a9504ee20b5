package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	kernel "github.com/km-arc/go-summer/framework/app"
	"github.com/km-arc/go-summer/framework/container"
)

func newGraphCmd(load func() (*kernel.Application, error)) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print every binding with its lifecycle and dependencies",
		Long: `Boot the application and print the binding graph.

Examples:
  summer graph
  summer graph --output yaml
  summer graph | jq '.[] | select(.lifecycle == "singleton")'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load()
			if err != nil {
				return err
			}
			if _, err := a.Boot(); err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), output, container.Describe(a.Registry))
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "json", "output format: json or yaml")
	return cmd
}

func newRoutesCmd(load func() (*kernel.Application, error)) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Print the HTTP routes mounted by the providers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load()
			if err != nil {
				return err
			}
			router, err := a.Router()
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), output, router.Routes())
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "json", "output format: json or yaml")
	return cmd
}

func write(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want json or yaml)", format)
	}
}
