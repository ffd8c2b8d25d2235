package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sorteos-rd/sorteos-cli/internal/site"
)

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "List the registered provider sites",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := buildRegistry()
		if err != nil {
			return err
		}
		formatSites(os.Stdout, reg)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sitesCmd)
}

func formatSites(out io.Writer, reg *site.Registry) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "KEY\tPROVIDER\tURL")
	_, _ = fmt.Fprintln(w, "---\t--------\t---")
	for _, s := range reg.All() {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", s.Key(), s.Provider(), s.URL())
	}
	_ = w.Flush()
}
