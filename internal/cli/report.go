package cli

import (
	"github.com/spf13/cobra"

	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/validate"
	"github.com/RodrigoRozasV/contentful-products-api/internal/services/reports/domain"
)

func newReportCmd(rt Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Catalog statistics",
	}
	cmd.AddCommand(newReportDeletedCmd(rt), newReportActiveCmd(rt), newReportCategoriesCmd(rt))
	return cmd
}

func newReportDeletedCmd(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "deleted",
		Short: "Share of products that were soft deleted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := rt.Reports(cmd.Context())
			if err != nil {
				return err
			}
			out, err := svc.Deleted(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, out)
		},
	}
}

func newReportActiveCmd(rt Runtime) *cobra.Command {
	var start, end, hasPrice string
	cmd := &cobra.Command{
		Use:     "active",
		Aliases: []string{"non-deleted"},
		Short:   "Live products by price presence, optionally within a creation date range",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validate.Var("hasPrice", hasPrice, "omitempty,oneof=true false"); err != nil {
				return err
			}
			in := domain.NonDeletedFilters{StartDate: start, EndDate: end}
			if hasPrice != "" {
				v := hasPrice == "true"
				in.HasPrice = &v
			}

			svc, err := rt.Reports(cmd.Context())
			if err != nil {
				return err
			}
			out, err := svc.NonDeleted(cmd.Context(), in)
			if err != nil {
				return err
			}
			return printJSON(cmd, out)
		},
	}
	cmd.Flags().StringVar(&start, "start-date", "", "inclusive lower bound on creation date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end-date", "", "inclusive upper bound on creation date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&hasPrice, "has-price", "", "true or false; both when omitted")
	return cmd
}

func newReportCategoriesCmd(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Live products grouped by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := rt.Reports(cmd.Context())
			if err != nil {
				return err
			}
			out, err := svc.ByCategory(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, out)
		},
	}
}
