// Package cli is the cobra command tree of the products binary
package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/RodrigoRozasV/contentful-products-api/internal/core/version"
	perr "github.com/RodrigoRozasV/contentful-products-api/internal/platform/errors"
	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/logger"
)

// NewRoot builds the command tree over rt
func NewRoot(rt Runtime) *cobra.Command {
	root := &cobra.Command{
		Use:           "products",
		Short:         "Sync and report on the Contentful product catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Info().String(),
	}
	root.AddCommand(
		newSyncCmd(rt),
		newScheduleCmd(rt),
		newReportCmd(rt),
		newListCmd(rt),
		newGetCmd(rt),
		newDeleteCmd(rt),
		newVersionCmd(),
	)
	return root
}

// Run executes args and returns the process exit code; failures are logged and, when
// they carry a code, printed as json on stderr
func Run(ctx context.Context, rt Runtime, args []string, stdout, stderr io.Writer) int {
	root := NewRoot(rt)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteContextC(ctx)
	if cerr := rt.Close(context.WithoutCancel(ctx)); cerr != nil {
		logger.Get().Warn().Err(cerr).Msg("close runtime failed")
	}
	if err == nil {
		return 0
	}

	if e, ok := perr.As(err); ok && e.Op() == "" && cmd != nil {
		err = perr.WithOp(err, cmd.Name())
	}
	logger.Get().Error().Err(err).Str("code", perr.CodeOf(err).String()).Msg("command failed")
	root.SetOut(stderr)
	_ = printJSON(root, perr.WireFrom(err))
	return perr.Exit(err)
}
