package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/JeremiasReinoso/MiFelisa/internal/config"
	"github.com/JeremiasReinoso/MiFelisa/internal/storehours"
)

func (a *app) hoursCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hours",
		Short: "Print whether the store is open right now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			w, err := storehours.ParseWindow(cfg.OpenAt, cfg.CloseAt)
			if err != nil {
				return err
			}
			printHours(cmd, w, time.Now())
			return nil
		},
	}
}

func printHours(cmd *cobra.Command, w storehours.Window, now time.Time) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", w.Status(now).Text, w)
}
