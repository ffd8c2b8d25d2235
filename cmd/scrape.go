package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sorteos-rd/sorteos-cli/internal/engine"
	"github.com/sorteos-rd/sorteos-cli/internal/fetcher"
	"github.com/sorteos-rd/sorteos-cli/internal/publish"
	"github.com/sorteos-rd/sorteos-cli/internal/site"
)

var (
	scrapeDebug bool
	scrapeOnly  []string
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape all provider sites and publish artifacts",
	Long:  "Runs every registered provider site in key order, merges the draws, and writes data.json plus the dated feed when the content changed.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		reg, err := buildRegistry()
		if err != nil {
			return err
		}
		if len(scrapeOnly) > 0 {
			reg, err = filterRegistry(reg, scrapeOnly)
			if err != nil {
				return err
			}
		}

		f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
			Timeout:    time.Duration(cfg.Fetch.TimeoutSecs) * time.Second,
			RatePerSec: cfg.Fetch.RatePerSec,
		})
		pub := publish.New(cfg.OutDir)

		e := engine.New(reg, f, pub, engine.Options{
			Source: cfg.Publish.Source,
			Debug:  scrapeDebug || cfg.Fetch.Debug,
		})

		report, err := e.Run(ctx)
		if err != nil {
			return err
		}

		formatReport(os.Stdout, report)
		return nil
	},
}

func init() {
	scrapeCmd.Flags().BoolVar(&scrapeDebug, "debug-dump", false, "dump raw markup to debug/<site>.html")
	scrapeCmd.Flags().StringSliceVar(&scrapeOnly, "site", nil, "restrict the run to specific site keys")
	rootCmd.AddCommand(scrapeCmd)
}

func buildRegistry() (*site.Registry, error) {
	tbl, err := site.LoadTable(cfg.Sites.File)
	if err != nil {
		return nil, err
	}
	return site.BuildRegistry(tbl)
}

// filterRegistry narrows a registry to the named keys.
func filterRegistry(reg *site.Registry, keys []string) (*site.Registry, error) {
	out := site.NewRegistry()
	for _, key := range keys {
		s, err := reg.Get(key)
		if err != nil {
			return nil, err
		}
		if err := out.Register(s); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// formatReport writes the per-site summary and final status.
func formatReport(out io.Writer, report *engine.Report) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "SITE\tDRAWS\tSTATUS")
	_, _ = fmt.Fprintln(w, "----\t-----\t------")
	for _, res := range report.Sites {
		status := "ok"
		if res.Err != nil {
			status = eris.Cause(res.Err).Error()
		}
		_, _ = fmt.Fprintf(w, "%s\t%d\t%s\n", res.Key, len(res.Draws), status)
	}
	_ = w.Flush()

	_, _ = fmt.Fprintf(out, "TOTAL DRAWS: %d\n", report.Total)
	if report.Updated {
		_, _ = fmt.Fprintln(out, "Updated.")
	} else {
		_, _ = fmt.Fprintln(out, "No changes.")
	}
}
