package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/genai"

	"github.com/DurgeshS-25/labpanel-tracker/internal/llm"
	"github.com/DurgeshS-25/labpanel-tracker/internal/report"
)

// Client implements llm.StructuredExtractor over the Gemini API.
// It walks an ordered list of candidate models and stops at the first one
// that returns a schema-valid panel; trying several models is a resilience
// optimization, not part of the extraction contract.
type Client struct {
	cfg  Config
	genc *genai.Client
	log  *slog.Logger
}

func NewClient(ctx context.Context, cfg Config, logger *slog.Logger) (*Client, error) {
	cfg.applyDefaults()
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: missing API key")
	}
	genc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Client{cfg: cfg, genc: genc, log: logger}, nil
}

func (c *Client) ExtractPanel(ctx context.Context, text string) (report.ExtractionResult, []byte, error) {
	text = llm.TruncateForPrompt(text)
	prompt := llm.BuildExtractionPrompt(text)

	contents := []*genai.Content{
		{Parts: []*genai.Part{{Text: prompt}}},
	}
	genCfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr(c.cfg.Temperature),
	}

	var errs []error
	for _, model := range c.cfg.Models {
		start := time.Now()
		c.log.Info("llm.extract.start", "model", model, "text_len", len(text), "temp", c.cfg.Temperature)

		callCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
		result, err := c.genc.Models.GenerateContent(callCtx, model, contents, genCfg)
		cancel()
		if err != nil {
			c.log.Warn("llm.extract.call_failed",
				"model", model, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
			errs = append(errs, fmt.Errorf("%s: %w", model, err))
			if ctx.Err() != nil {
				break
			}
			continue
		}

		raw := result.Text()
		if raw == "" {
			c.log.Warn("llm.extract.empty_response", "model", model)
			errs = append(errs, fmt.Errorf("%s: empty response", model))
			continue
		}

		res, rawJSON, err := llm.DecodePanel([]byte(raw))
		if err != nil {
			c.log.Warn("llm.extract.decode_failed",
				"model", model, "error", err, "raw_bytes", len(raw))
			errs = append(errs, fmt.Errorf("%s: %w", model, err))
			continue
		}

		c.log.Info("llm.extract.ok",
			"model", model,
			"biomarkers", len(res.Biomarkers),
			"has_patient", !res.Patient.IsZero(),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return res, rawJSON, nil
	}

	return report.ExtractionResult{}, nil, fmt.Errorf("all candidate models failed: %w", errors.Join(errs...))
}
