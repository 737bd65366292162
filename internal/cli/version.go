package cli

import (
	"github.com/spf13/cobra"

	"github.com/RodrigoRozasV/contentful-products-api/internal/core/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build stamp",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd, version.Info())
		},
	}
}
