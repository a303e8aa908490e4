package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "dashmock",
		Short: "Demo-mode backend for the trading dashboard",
		Long: "dashmock serves the trading dashboard a fully synthetic backend:\n" +
			"trades, positions, candles, analytics and live streams are all\n" +
			"generated data, so the UI can be demonstrated without a real\n" +
			"trading system behind it.",
	}
	root.PersistentFlags().String("config", "config/config.yaml", "path to config file")
	root.AddCommand(newServeCmd(), newRoutesCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
