// Command storefront serves the Mi Felisa catalog and cart.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JeremiasReinoso/MiFelisa/internal/catalog"
	"github.com/JeremiasReinoso/MiFelisa/internal/config"
	"github.com/JeremiasReinoso/MiFelisa/internal/order"
	"github.com/JeremiasReinoso/MiFelisa/internal/storehours"
)

type app struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:          "storefront",
		Short:        "Mi Felisa storefront: catalog, cart and WhatsApp orders",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if a.verbose {
				a.logger, err = zap.NewDevelopment()
			} else {
				a.logger, err = zap.NewProduction()
			}
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(a.serveCmd(), a.catalogCmd(), a.hoursCmd())
	return root
}

// store is the read-only state every subcommand builds from the config.
type store struct {
	catalog  *catalog.Catalog
	composer *order.Composer
	hours    storehours.Window
}

func loadStore(cfg config.Config, logger *zap.Logger) (*store, error) {
	cat, err := catalog.Load(cfg.CatalogPath, logger)
	if err != nil {
		return nil, err
	}
	money, err := order.NewMoney(cfg.Locale, cfg.CurrencySymbol)
	if err != nil {
		return nil, err
	}
	composer := order.NewComposer(money)
	composer.Greeting = cfg.Greeting
	composer.Number = cfg.WhatsAppNumber

	hours, err := storehours.ParseWindow(cfg.OpenAt, cfg.CloseAt)
	if err != nil {
		return nil, err
	}
	return &store{catalog: cat, composer: composer, hours: hours}, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
