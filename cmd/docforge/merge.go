package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/docforge/internal/ir"
	"github.com/jonathan/docforge/internal/observability"
	"github.com/spf13/cobra"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <document.json>...",
	Short: "Merge document JSON files into one document",
	Long:  "Merge two or more document JSON files by concatenating their sections in input order. By default the result carries the synthetic MergedFile name; --keep-name preserves the first document's name instead.",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runMerge,
}

var (
	mergeOutputFile string
	mergeKeepName   bool
	mergeVerbose    bool
)

func init() {
	mergeCmd.Flags().StringVarP(&mergeOutputFile, "out", "o", "", "Path to output document JSON file (default: stdout)")
	mergeCmd.Flags().BoolVar(&mergeKeepName, "keep-name", false, "Name the result after the first input instead of MergedFile")
	mergeCmd.Flags().BoolVarP(&mergeVerbose, "verbose", "v", false, "Print a summary of the merged document")

	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	docs := make([]ir.Document, len(args))
	for i, path := range args {
		doc, err := readDocument(path)
		if err != nil {
			return err
		}
		docs[i] = doc
	}

	var merged ir.Document
	if mergeKeepName {
		merged = docs[0].MergeAll(docs[1:]...)
	} else {
		merged = ir.MergeDocuments(docs)
	}

	if mergeVerbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintDocument(merged)
	}

	return writeJSON(cmd, mergeOutputFile, merged)
}

// readDocument loads and decodes a document JSON file.
func readDocument(path string) (ir.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ir.Document{}, fmt.Errorf("read %s: %w", path, err)
	}

	var doc ir.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return ir.Document{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return doc, nil
}
