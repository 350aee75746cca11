package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/DurgeshS-25/labpanel-tracker/internal/llm"
	"github.com/DurgeshS-25/labpanel-tracker/internal/report"
)

// MinDocumentTextLen is the hard floor below which no extractor runs;
// neither strategy produces meaningful matches against less text.
const MinDocumentTextLen = 20

// PageExtractor is the OCR collaborator: document path -> ordered per-page text.
type PageExtractor interface {
	ExtractPages(ctx context.Context, path string) ([]string, error)
}

// FallbackExtractor is the deterministic pattern-matching path.
type FallbackExtractor interface {
	Extract(text string) (report.ExtractionResult, error)
}

// Processor runs the extraction state machine for one document:
// Aggregating -> ExtractingPrimary -> Done, or on primary failure
// ExtractingFallback -> Done | Failed. The fallback runs at most once.
type Processor struct {
	logger   *slog.Logger
	ocr      PageExtractor
	primary  llm.StructuredExtractor
	fallback FallbackExtractor
}

func NewProcessor(logger *slog.Logger, ocr PageExtractor, primary llm.StructuredExtractor, fallback FallbackExtractor) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{logger: logger, ocr: ocr, primary: primary, fallback: fallback}
}

// Process OCRs the document at path, then extracts a panel from the
// aggregated text. The DocumentText is returned alongside the result so
// callers can record what the extractors actually saw.
func (p *Processor) Process(ctx context.Context, path string) (report.ExtractionResult, report.DocumentText, error) {
	start := time.Now()
	pages, err := p.ocr.ExtractPages(ctx, path)
	if err != nil {
		p.logger.Error("pipeline.ocr.failed", "path", path, "error", err)
		return report.ExtractionResult{}, report.DocumentText{}, err
	}

	doc := report.Aggregate(pages)
	p.logger.Info("pipeline.aggregated",
		"path", path, "pages", len(pages), "text_len", len(doc.Full),
		"elapsed_ms", time.Since(start).Milliseconds())

	res, err := p.ExtractFrom(ctx, doc)
	return res, doc, err
}

// ExtractFrom runs both extraction strategies against already-aggregated
// text. Only a primary failure is recovered; everything else is terminal.
func (p *Processor) ExtractFrom(ctx context.Context, doc report.DocumentText) (report.ExtractionResult, error) {
	if len(doc.Full) < MinDocumentTextLen {
		return report.ExtractionResult{}, &InsufficientTextError{Length: len(doc.Full), Min: MinDocumentTextLen}
	}

	res, _, err := p.primary.ExtractPanel(ctx, doc.Full)
	if err == nil && len(res.Biomarkers) > 0 {
		res.Biomarkers = report.Normalize(res.Biomarkers)
		p.logger.Info("pipeline.primary.ok", "biomarkers", len(res.Biomarkers))
		return res, nil
	}
	if err == nil {
		err = errEmptyPrimaryResult
	}
	primErr := &PrimaryExtractionError{Cause: err}
	p.logger.Warn("pipeline.primary.failed", "error", err)

	fb, ferr := p.fallback.Extract(doc.Full)
	if ferr != nil {
		p.logger.Error("pipeline.fallback.failed", "error", ferr, "primary_error", err)
		return report.ExtractionResult{}, &FallbackExtractionError{Cause: ferr, Primary: primErr}
	}
	fb.Biomarkers = report.Normalize(fb.Biomarkers)
	p.logger.Info("pipeline.fallback.ok", "biomarkers", len(fb.Biomarkers))
	return fb, nil
}
