package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jonathan/docforge/internal/config"
	"github.com/jonathan/docforge/internal/inference"
	"github.com/jonathan/docforge/internal/llm"
	"github.com/jonathan/docforge/internal/observability"
	"github.com/spf13/cobra"
)

var inferSchemaCmd = &cobra.Command{
	Use:   "infer-schema",
	Short: "Infer an entity/relation schema from a document JSON",
	Long:  "Infer the entity types, relation types, and per-entity valid relations present in a parsed document by prompting an LLM with its section text.",
	RunE:  runInferSchema,
}

var (
	inferInputFile  string
	inferOutputFile string
	inferAPIKey     string
	inferModel      string
	inferConfigFile string
	inferVerbose    bool
)

func init() {
	inferSchemaCmd.Flags().StringVarP(&inferInputFile, "in", "i", "", "Path to document JSON file (required)")
	inferSchemaCmd.Flags().StringVarP(&inferOutputFile, "out", "o", "", "Path to output schema JSON file (default: stdout)")
	inferSchemaCmd.Flags().StringVar(&inferAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	inferSchemaCmd.Flags().StringVar(&inferModel, "model", "", "Model override for schema inference")
	inferSchemaCmd.Flags().StringVar(&inferConfigFile, "config", "", "Path to JSON config file")
	inferSchemaCmd.Flags().BoolVarP(&inferVerbose, "verbose", "v", false, "Print the inferred schema summary")

	rootCmd.AddCommand(inferSchemaCmd)
}

func runInferSchema(cmd *cobra.Command, _ []string) error {
	if inferInputFile == "" {
		return fmt.Errorf("--in is required")
	}

	cfg := config.Config{
		APIKey:  inferAPIKey,
		Model:   inferModel,
		Verbose: inferVerbose,
		Output:  inferOutputFile,
	}
	if inferConfigFile != "" {
		fileCfg, err := config.LoadConfig(inferConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("API key is required: set --api-key or GEMINI_API_KEY")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	doc, err := readDocument(inferInputFile)
	if err != nil {
		return err
	}

	llmConfig := llm.DefaultConfig()
	if cfg.Model != "" {
		llmConfig = llmConfig.WithModel(llm.TierAdvanced, cfg.Model)
	}

	ctx := context.Background()
	client, err := llm.NewClient(ctx, llmConfig, cfg.APIKey)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	opts := &inference.Options{
		TraceID: uuid.NewString(),
		UserID:  "docforge_cli",
	}
	schema, err := inference.InferSchema(ctx, doc, client, opts)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(cmd.OutOrStdout())
		printer.PrintDocument(doc)
		printer.PrintSchema(schema)
	}

	return writeJSON(cmd, cfg.Output, schema)
}
