package main

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/trolleywise/price-service/internal/appstate"
	"github.com/trolleywise/price-service/internal/catalog"
	"github.com/trolleywise/price-service/internal/persistence"
	"github.com/trolleywise/price-service/internal/pricing"
	"github.com/trolleywise/price-service/internal/stores"
)

var alertsSeed int64

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Price alert utilities",
}

var alertsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Evaluate saved price alerts against freshly generated prices",
	RunE:  runAlertsCheck,
}

func init() {
	alertsCheckCmd.Flags().Int64Var(&alertsSeed, "seed", 0, "random seed for price generation (0 = random)")
	alertsCmd.AddCommand(alertsCheckCmd)
	rootCmd.AddCommand(alertsCmd)
}

func runAlertsCheck(cmd *cobra.Command, args []string) error {
	if cfg == nil {
		return fmt.Errorf("config required for alerts check but not loaded")
	}

	persister, err := persistence.NewFileStore(cfg.Storage.BasePath)
	if err != nil {
		return err
	}

	var gen *pricing.Generator
	if alertsSeed != 0 {
		gen = pricing.NewGenerator(rand.NewSource(alertsSeed))
	} else {
		gen = pricing.NewDefaultGenerator()
	}
	products := catalog.Generate(gen, stores.Roster())

	store := appstate.NewStore(persister, *logger)
	if err := store.Bootstrap(context.Background(), products); err != nil {
		return err
	}

	triggered := appstate.EvaluateAlerts(store.Snapshot())
	if len(triggered) == 0 {
		fmt.Println("No alerts triggered")
		return nil
	}

	for _, t := range triggered {
		fmt.Printf("%s at %s: %s (target %s)\n",
			t.Product.Name,
			t.StorePrice.StoreName,
			pricing.FormatPence(t.StorePrice.Price),
			pricing.FormatPence(t.Alert.TargetPrice),
		)
	}
	return nil
}
