package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/docforge/internal/ir"
	"github.com/jonathan/docforge/internal/observability"
	"github.com/jonathan/docforge/internal/parser"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>...",
	Short: "Parse source files into a document JSON",
	Long:  "Parse one or more source files into the canonical document representation. Multiple inputs are merged into a single synthetic document.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

var (
	parseOutputFile string
	parseVerbose    bool
)

// parseWorkers bounds concurrent file parses in batch mode.
const parseWorkers = 4

func init() {
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output document JSON file (default: stdout)")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print document and job summaries")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	results := make([]*parser.Result, len(args))

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(parseWorkers)
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			result, err := parser.ParseFile(path)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Results keep input order regardless of completion order.
	var doc ir.Document
	if len(results) == 1 {
		doc = results[0].Document
	} else {
		docs := make([]ir.Document, len(results))
		for i, result := range results {
			docs[i] = result.Document
		}
		doc = ir.MergeDocuments(docs)
	}

	if parseVerbose {
		printer := observability.NewPrinter(cmd.OutOrStdout())
		printer.PrintDocument(doc)
		for _, result := range results {
			printer.PrintJobMetadata(result.Metadata)
		}
	}

	return writeJSON(cmd, parseOutputFile, doc)
}

// writeJSON marshals v with indentation and writes it to path, or the
// command's output stream when path is empty.
func writeJSON(cmd *cobra.Command, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}

	if path == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
