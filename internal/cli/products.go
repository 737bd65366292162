package cli

import (
	"github.com/spf13/cobra"

	"github.com/RodrigoRozasV/contentful-products-api/internal/core/catalog"
	"github.com/RodrigoRozasV/contentful-products-api/internal/services/products/domain"
)

func newListCmd(rt Runtime) *cobra.Command {
	var (
		in                 domain.ListInput
		minPrice, maxPrice float64
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Page through live products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("min-price") {
				in.MinPrice = &minPrice
			}
			if cmd.Flags().Changed("max-price") {
				in.MaxPrice = &maxPrice
			}

			svc, err := rt.Products(cmd.Context())
			if err != nil {
				return err
			}
			page, err := svc.List(cmd.Context(), in)
			if err != nil {
				return err
			}
			return printJSON(cmd, page)
		},
	}
	d := catalog.DefaultPagination()
	f := cmd.Flags()
	f.IntVar(&in.Page, "page", d.Page(), "page number, from 1")
	f.IntVar(&in.Limit, "limit", d.Limit(), "page size, at most 5")
	f.StringVar(&in.Name, "name", "", "case insensitive name substring")
	f.StringVar(&in.Category, "category", "", "case insensitive category substring")
	f.Float64Var(&minPrice, "min-price", 0, "inclusive lower price bound")
	f.Float64Var(&maxPrice, "max-price", 0, "inclusive upper price bound")
	return cmd
}

func newGetCmd(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one live product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.Products(cmd.Context())
			if err != nil {
				return err
			}
			p, err := svc.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, domain.ToDTO(p))
		},
	}
}

func newDeleteCmd(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Soft delete a product; later syncs do not restore it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.Products(cmd.Context())
			if err != nil {
				return err
			}
			res, err := svc.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}
}
