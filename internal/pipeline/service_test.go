package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/DurgeshS-25/labpanel-tracker/constants"
	"github.com/DurgeshS-25/labpanel-tracker/internal/report"
)

type fakePages struct {
	pages []string
	err   error
}

func (f *fakePages) ExtractPages(_ context.Context, _ string) ([]string, error) {
	return f.pages, f.err
}

type fakeWriter struct {
	panelID uuid.UUID
	err     error
	saves   int
}

func (f *fakeWriter) SavePanel(_ context.Context, _ uuid.UUID, _ string, _ report.ExtractionResult) (uuid.UUID, error) {
	f.saves++
	return f.panelID, f.err
}

type fakeTracker struct {
	jobID     uuid.UUID
	started   int
	ocrOK     int
	succeeded int
	failed    int
	lastError string
}

func (f *fakeTracker) Start(_ context.Context, _, _ uuid.UUID, _ string) (uuid.UUID, error) {
	f.started++
	return f.jobID, nil
}

func (f *fakeTracker) FinishOCR(_ context.Context, _ uuid.UUID, _ string, _ int) error {
	f.ocrOK++
	return nil
}

func (f *fakeTracker) FinishSuccess(_ context.Context, _ uuid.UUID, _ constants.ExtractionMethod) error {
	f.succeeded++
	return nil
}

func (f *fakeTracker) FinishFailure(_ context.Context, _ uuid.UUID, msg string) error {
	f.failed++
	f.lastError = msg
	return nil
}

func newTestService(pages PageExtractor, primary *fakePrimary, fallback *fakeFallback, tracker *fakeTracker, writer *fakeWriter) *Service {
	proc := NewProcessor(nil, pages, primary, fallback)
	return NewService(nil, proc, tracker, writer)
}

func TestProcessFileSuccess(t *testing.T) {
	panelID := uuid.New()
	tracker := &fakeTracker{jobID: uuid.New()}
	writer := &fakeWriter{panelID: panelID}
	svc := newTestService(
		&fakePages{pages: []string{sampleText}},
		&fakePrimary{res: aiResult()},
		&fakeFallback{},
		tracker, writer,
	)

	out, err := svc.ProcessFile(context.Background(), uuid.New(), uuid.New(), "/tmp/report.pdf", constants.PDF)
	if err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	if !out.Success || out.PanelID != panelID.String() {
		t.Errorf("outcome = %+v", out)
	}
	if out.ExtractionMethod != constants.MethodAI {
		t.Errorf("method = %q", out.ExtractionMethod)
	}
	if writer.saves != 1 {
		t.Errorf("SavePanel called %d times, want exactly 1", writer.saves)
	}
	if tracker.started != 1 || tracker.ocrOK != 1 || tracker.succeeded != 1 || tracker.failed != 0 {
		t.Errorf("tracker transitions = %+v", tracker)
	}
}

func TestProcessFileExtractionFailureSkipsPersistence(t *testing.T) {
	tracker := &fakeTracker{jobID: uuid.New()}
	writer := &fakeWriter{}
	svc := newTestService(
		&fakePages{pages: []string{sampleText}},
		&fakePrimary{err: errors.New("model unavailable")},
		&fakeFallback{err: errors.New("no biomarkers matched any template")},
		tracker, writer,
	)

	out, err := svc.ProcessFile(context.Background(), uuid.New(), uuid.New(), "/tmp/report.pdf", constants.PDF)

	var fbe *FallbackExtractionError
	if !errors.As(err, &fbe) {
		t.Fatalf("err = %v, want FallbackExtractionError", err)
	}
	if out.Success || out.PanelID != "" {
		t.Errorf("outcome = %+v, want failure with no panel", out)
	}
	if writer.saves != 0 {
		t.Errorf("SavePanel called %d times, nothing may be persisted on failure", writer.saves)
	}
	if tracker.failed != 1 || tracker.lastError == "" {
		t.Errorf("job must record the terminal cause: %+v", tracker)
	}
	// OCR succeeded, so that stage is still recorded
	if tracker.ocrOK != 1 {
		t.Errorf("ocrOK = %d, want 1", tracker.ocrOK)
	}
}

func TestProcessFileInsufficientText(t *testing.T) {
	tracker := &fakeTracker{jobID: uuid.New()}
	writer := &fakeWriter{}
	svc := newTestService(
		&fakePages{pages: []string{"too short"}},
		&fakePrimary{res: aiResult()},
		&fakeFallback{res: patternResult()},
		tracker, writer,
	)

	_, err := svc.ProcessFile(context.Background(), uuid.New(), uuid.New(), "/tmp/report.pdf", constants.PDF)

	var ite *InsufficientTextError
	if !errors.As(err, &ite) {
		t.Fatalf("err = %v, want InsufficientTextError", err)
	}
	if writer.saves != 0 || tracker.failed != 1 {
		t.Errorf("writer.saves = %d, tracker.failed = %d", writer.saves, tracker.failed)
	}
}

func TestProcessFilePersistenceFailure(t *testing.T) {
	tracker := &fakeTracker{jobID: uuid.New()}
	writer := &fakeWriter{err: errors.New("connection refused")}
	svc := newTestService(
		&fakePages{pages: []string{sampleText}},
		&fakePrimary{res: aiResult()},
		&fakeFallback{},
		tracker, writer,
	)

	out, err := svc.ProcessFile(context.Background(), uuid.New(), uuid.New(), "/tmp/report.pdf", constants.PDF)

	var pe *PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want PersistenceError", err)
	}
	if out.Success {
		t.Error("outcome must not report success")
	}
	if tracker.succeeded != 0 || tracker.failed != 1 {
		t.Errorf("tracker = %+v", tracker)
	}
}
