package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/DurgeshS-25/labpanel-tracker/constants"
	"github.com/DurgeshS-25/labpanel-tracker/internal/report"
)

type fakePrimary struct {
	res   report.ExtractionResult
	err   error
	calls int
}

func (f *fakePrimary) ExtractPanel(_ context.Context, _ string) (report.ExtractionResult, []byte, error) {
	f.calls++
	return f.res, nil, f.err
}

type fakeFallback struct {
	res   report.ExtractionResult
	err   error
	calls int
}

func (f *fakeFallback) Extract(_ string) (report.ExtractionResult, error) {
	f.calls++
	return f.res, f.err
}

func docWith(text string) report.DocumentText {
	return report.Aggregate([]string{text})
}

const sampleText = "Glucose: 95 mg/dL (70-100)\nCholesterol: 250 mg/dL (125-200)"

func aiResult() report.ExtractionResult {
	return report.ExtractionResult{
		Method: constants.MethodAI,
		Biomarkers: []report.Biomarker{
			{Name: "Glucose", Value: 95, ReferenceMin: report.Ptr(70.0), ReferenceMax: report.Ptr(100.0)},
		},
	}
}

func patternResult() report.ExtractionResult {
	return report.ExtractionResult{
		Method: constants.MethodPattern,
		Biomarkers: []report.Biomarker{
			{Name: "Cholesterol", Value: 250, ReferenceMin: report.Ptr(125.0), ReferenceMax: report.Ptr(200.0)},
		},
	}
}

func TestExtractFromPrimarySucceeds(t *testing.T) {
	primary := &fakePrimary{res: aiResult()}
	fallback := &fakeFallback{res: patternResult()}
	p := NewProcessor(nil, nil, primary, fallback)

	res, err := p.ExtractFrom(context.Background(), docWith(sampleText))
	if err != nil {
		t.Fatalf("ExtractFrom: %v", err)
	}
	if res.Method != constants.MethodAI {
		t.Errorf("Method = %q, want ai", res.Method)
	}
	if fallback.calls != 0 {
		t.Errorf("fallback ran %d times, want 0", fallback.calls)
	}
	// normalization must have derived the status
	if res.Biomarkers[0].Status != constants.StatusNormal {
		t.Errorf("status = %q, want normal", res.Biomarkers[0].Status)
	}
}

func TestExtractFromPrimaryFailsFallbackRecovers(t *testing.T) {
	primary := &fakePrimary{err: errors.New("model unavailable")}
	fallback := &fakeFallback{res: patternResult()}
	p := NewProcessor(nil, nil, primary, fallback)

	res, err := p.ExtractFrom(context.Background(), docWith(sampleText))
	if err != nil {
		t.Fatalf("ExtractFrom: %v", err)
	}
	if res.Method != constants.MethodPattern {
		t.Errorf("Method = %q, want pattern-matching", res.Method)
	}
	if fallback.calls != 1 {
		t.Errorf("fallback ran %d times, want exactly 1", fallback.calls)
	}
	if res.Biomarkers[0].Status != constants.StatusHigh {
		t.Errorf("status = %q, want high after normalization", res.Biomarkers[0].Status)
	}
}

func TestExtractFromEmptyPrimaryResultRoutesToFallback(t *testing.T) {
	// nil error but zero biomarkers is still a primary failure
	primary := &fakePrimary{res: report.ExtractionResult{Method: constants.MethodAI}}
	fallback := &fakeFallback{res: patternResult()}
	p := NewProcessor(nil, nil, primary, fallback)

	res, err := p.ExtractFrom(context.Background(), docWith(sampleText))
	if err != nil {
		t.Fatalf("ExtractFrom: %v", err)
	}
	if res.Method != constants.MethodPattern || fallback.calls != 1 {
		t.Errorf("method = %q, fallback calls = %d", res.Method, fallback.calls)
	}
}

func TestExtractFromInsufficientText(t *testing.T) {
	primary := &fakePrimary{res: aiResult()}
	fallback := &fakeFallback{res: patternResult()}
	p := NewProcessor(nil, nil, primary, fallback)

	_, err := p.ExtractFrom(context.Background(), docWith("too short"))

	var ite *InsufficientTextError
	if !errors.As(err, &ite) {
		t.Fatalf("err = %v, want InsufficientTextError", err)
	}
	if ite.Min != MinDocumentTextLen {
		t.Errorf("Min = %d, want %d", ite.Min, MinDocumentTextLen)
	}
	if primary.calls != 0 || fallback.calls != 0 {
		t.Errorf("no extractor may run below the text floor: primary=%d fallback=%d", primary.calls, fallback.calls)
	}
}

func TestExtractFromBothFail(t *testing.T) {
	primaryErr := errors.New("model unavailable")
	fallbackErr := errors.New("no biomarkers matched any template")
	primary := &fakePrimary{err: primaryErr}
	fallback := &fakeFallback{err: fallbackErr}
	p := NewProcessor(nil, nil, primary, fallback)

	_, err := p.ExtractFrom(context.Background(), docWith(sampleText))

	var fbe *FallbackExtractionError
	if !errors.As(err, &fbe) {
		t.Fatalf("err = %v, want FallbackExtractionError", err)
	}
	if !errors.Is(err, fallbackErr) {
		t.Error("Unwrap must surface the fallback cause")
	}
	var pe *PrimaryExtractionError
	if !errors.As(fbe.Primary, &pe) || !errors.Is(pe, primaryErr) {
		t.Errorf("Primary = %v, want the wrapped primary failure", fbe.Primary)
	}
	if fallback.calls != 1 {
		t.Errorf("fallback ran %d times, want exactly 1", fallback.calls)
	}
}
