package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"product-alternatives/core/reconcile"

	"github.com/spf13/cobra"
)

// variantsCmd prints the column sets of every variant.
var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List the available variants and their columns",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "VARIANT\tSHEET\tUPLOAD COLUMNS\tJOIN KEYS\tFACETS\tOUTPUT")
		for _, s := range reconcile.Variants() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				s.Name,
				s.ReferenceSheet,
				strings.Join(s.QueryRequired, ","),
				strings.Join(s.JoinKeys, ","),
				strings.Join(s.Facets, ","),
				strings.Join(s.OutputColumns(), ","))
		}
		return w.Flush()
	},
}

func init() {
	RootCmd.AddCommand(variantsCmd)
}
