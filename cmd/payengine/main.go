package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "payengine",
		Short: "Transaction processing engine",
		Long: `payengine folds an ordered stream of transaction events (deposit,
withdrawal, dispute, resolve, chargeback) into per-client account
ledgers and emits the final balance snapshot.`,
	}

	rootCmd.AddCommand(newProcessCmd())
	rootCmd.AddCommand(newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
