package main

import (
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/trolleywise/price-service/internal/catalog"
	"github.com/trolleywise/price-service/internal/pricing"
	"github.com/trolleywise/price-service/internal/stores"
)

var catalogSeed int64

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the product catalog with generated price comparisons",
	RunE:  runCatalog,
}

func init() {
	catalogCmd.Flags().Int64Var(&catalogSeed, "seed", 1, "random seed for price generation")
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	gen := pricing.NewGenerator(rand.NewSource(catalogSeed))
	products := catalog.Generate(gen, stores.Roster())

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tCHEAPEST\tFROM\tSPREAD")
	for _, p := range products {
		cheapestStore, ok := catalog.CheapestStore(p)
		from := "-"
		if ok {
			if s, found := stores.ByID(cheapestStore); found {
				from = s.Name
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID,
			p.Name,
			p.Category,
			pricing.FormatPence(catalog.CheapestPrice(p)),
			from,
			pricing.FormatPence(catalog.TotalSavings(p)),
		)
	}
	return w.Flush()
}
