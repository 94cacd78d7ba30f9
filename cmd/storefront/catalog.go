package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/JeremiasReinoso/MiFelisa/internal/catalog"
	"github.com/JeremiasReinoso/MiFelisa/internal/config"
	"github.com/JeremiasReinoso/MiFelisa/internal/session"
)

func (a *app) catalogCmd() *cobra.Command {
	var category, search string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the visible products with their prices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			st, err := loadStore(cfg, a.logger)
			if err != nil {
				return err
			}

			ctrl := session.NewController(uuid.New(), st.catalog, st.composer, a.logger)
			for _, c := range []session.Command{session.SetCategory(category), session.SetSearch(search)} {
				if _, err := ctrl.Dispatch(c); err != nil {
					return err
				}
			}
			return printCatalog(cmd, ctrl.Catalog())
		},
	}
	cmd.Flags().StringVar(&category, "category", catalog.AllCategories, "Only show this category")
	cmd.Flags().StringVar(&search, "search", "", "Only show products whose name contains this text")
	return cmd
}

func printCatalog(cmd *cobra.Command, view session.CatalogView) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE")
	for _, p := range view.Products {
		if !p.Visible {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Category, priceColumn(p))
	}
	return w.Flush()
}

func priceColumn(p session.ProductView) string {
	if len(p.Variants) == 0 {
		return p.PriceText
	}
	parts := make([]string, 0, len(p.Variants))
	for _, v := range p.Variants {
		parts = append(parts, v.Label+" "+v.PriceText)
	}
	return strings.Join(parts, " / ")
}
