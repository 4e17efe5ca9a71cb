// Package inference derives an entity/relation schema from a parsed
// document by prompting an external LLM. It performs exactly one round
// trip per invocation and propagates provider failures to the caller
// untouched.
package inference

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/docforge/internal/ir"
	"github.com/jonathan/docforge/internal/llm"
	"github.com/jonathan/docforge/internal/prompts"
	"github.com/jonathan/docforge/internal/schemas"
)

const promptFile = "inference.json"

// Options carries optional tracing metadata and model selection for one
// inference call. Trace fields are attached to the request context and
// forwarded with the provider request; they never affect the inferred
// schema.
type Options struct {
	TraceID     string        // Defaults to a fresh UUID
	TraceName   string        // Defaults to "NLP: Internal Entity Extraction"
	UserID      string        // Defaults to "file_parser"
	Tier        llm.ModelTier // Defaults to TierAdvanced
	Temperature *float32      // Overrides the client's sampling temperature when set
}

func (o *Options) withDefaults() Options {
	opts := Options{}
	if o != nil {
		opts = *o
	}
	if opts.TraceID == "" {
		opts.TraceID = uuid.NewString()
	}
	if opts.TraceName == "" {
		opts.TraceName = "NLP: Internal Entity Extraction"
	}
	if opts.UserID == "" {
		opts.UserID = "file_parser"
	}
	if opts.Tier == "" {
		opts.Tier = llm.TierAdvanced
	}
	return opts
}

// InferSchema prompts the LLM with the document's plain section text (not
// its markdown views) and parses the response into a validated schema
// descriptor. The call is cancellable through ctx; cancellation and
// timeouts surface as an APICallError. Callers wanting the blocking form
// pass context.Background().
func InferSchema(ctx context.Context, doc ir.Document, client llm.Client, opts *Options) (*ir.Schema, error) {
	options := opts.withDefaults()
	ctx = llm.WithTrace(ctx, llm.Trace{
		ID:     options.TraceID,
		Name:   options.TraceName,
		UserID: options.UserID,
	})

	var callOpts []llm.CallOption
	if options.Temperature != nil {
		callOpts = append(callOpts, llm.WithCallTemperature(*options.Temperature))
	}

	prompt := buildPrompt(doc)
	systemPrompt := prompts.MustGet(promptFile, "infer-schema-system")

	responseText, err := client.GenerateJSON(ctx, systemPrompt, prompt, options.Tier, callOpts...)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to generate schema from LLM",
			Cause:   err,
		}
	}

	return parseResponse(responseText)
}

// buildPrompt constructs the inference prompt from the ordered plain text
// of every section.
func buildPrompt(doc ir.Document) string {
	template := prompts.MustGet(promptFile, "infer-schema")
	return prompts.Format(template, map[string]string{
		"DocumentText": strings.Join(doc.SectionTexts(), "\n\n"),
	})
}

// parseResponse validates the raw model output against the schema
// descriptor contract and decodes it.
func parseResponse(responseText string) (*ir.Schema, error) {
	responseText = llm.CleanJSONBlock(responseText)

	if err := schemas.Validate(schemas.SchemaDescriptorSchema, responseText); err != nil {
		return nil, &ParseError{
			Message: "response does not satisfy the schema descriptor contract",
			Cause:   err,
		}
	}

	var schema ir.Schema
	if err := json.Unmarshal([]byte(responseText), &schema); err != nil {
		return nil, &ParseError{
			Message: "failed to decode schema descriptor JSON",
			Cause:   err,
		}
	}

	// Cross-field invariants (e.g. the validation map referencing an
	// undeclared relation) are reported, not repaired.
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	return &schema, nil
}
