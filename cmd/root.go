package cmd

import (
	"fmt"
	"os"

	"product-alternatives/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "product-alternatives",
	Short: "Product Alternatives Service",
	Long: `Product Alternatives finds substitute products for a list of requested items.
It joins uploaded CSV/XLSX files with the reference inventory and exports the
filtered alternatives as a workbook.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding with ISO8601 timestamps reads better in a terminal
		l, logErr := logger.Console()
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
