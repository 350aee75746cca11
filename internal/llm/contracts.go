package llm

import (
	"context"

	"github.com/DurgeshS-25/labpanel-tracker/internal/report"
)

// MaxPromptTextLen caps how much aggregated OCR text is sent to the model.
// Lab values cluster at the top of a report; the tail is boilerplate.
const MaxPromptTextLen = 15000

// StructuredExtractor is the primary extraction capability the pipeline
// depends on. How many candidate models sit behind it is an implementation
// detail of the client.
type StructuredExtractor interface {
	ExtractPanel(ctx context.Context, text string) (report.ExtractionResult, []byte /*rawJSON*/, error)
}

// TruncateForPrompt clips text to MaxPromptTextLen from the beginning.
func TruncateForPrompt(text string) string {
	if len(text) > MaxPromptTextLen {
		return text[:MaxPromptTextLen]
	}
	return text
}
