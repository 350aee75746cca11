package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// stubRunner fakes pdftoppm and tesseract. pdftoppm "renders" pageCount
// empty PNGs; tesseract "reads" a page name derived from the image path,
// with earlier pages finishing later to expose ordering bugs.
type stubRunner struct {
	pageCount int
	failPages map[string]bool
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	if strings.Contains(name, "pdftoppm") {
		prefix := args[len(args)-1]
		for i := 1; i <= s.pageCount; i++ {
			f := fmt.Sprintf("%s-%d.png", prefix, i)
			if err := os.WriteFile(f, nil, 0o644); err != nil {
				return nil, nil, err
			}
		}
		return nil, nil, nil
	}

	// tesseract <image> stdout -l <lang>
	img := filepath.Base(args[0])
	if s.failPages[img] {
		return nil, []byte("Tesseract Open Source OCR Engine: read_params_file failed"), fmt.Errorf("exit status 1")
	}
	// lower-numbered pages take longer, so completion order inverts page order
	if strings.HasSuffix(img, "-1.png") {
		time.Sleep(30 * time.Millisecond)
	} else if strings.HasSuffix(img, "-2.png") {
		time.Sleep(15 * time.Millisecond)
	}
	return []byte("text of " + img + "\n"), nil, nil
}

func newStubExtractor(t *testing.T, r Runner, maxPages int) *Extractor {
	t.Helper()
	e := NewExtractor(Config{MaxPages: maxPages, PageWorkers: 4}, nil)
	e.runner = r
	return e
}

func TestExtractPDFPreservesPageOrder(t *testing.T) {
	e := newStubExtractor(t, &stubRunner{pageCount: 3}, 0)

	res, err := e.Extract(context.Background(), "report.pdf")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Pages != 3 {
		t.Fatalf("Pages = %d, want 3", res.Pages)
	}
	for i, txt := range res.PageTexts {
		want := fmt.Sprintf("-%d.png", i+1)
		if !strings.Contains(txt, want) {
			t.Errorf("page %d text = %q, want suffix %q", i+1, txt, want)
		}
	}
}

func TestExtractPDFFailedPageYieldsEmptyText(t *testing.T) {
	r := &stubRunner{pageCount: 3, failPages: map[string]bool{"page-2.png": true}}
	e := newStubExtractor(t, r, 0)

	res, err := e.Extract(context.Background(), "report.pdf")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.PageTexts[1] != "" {
		t.Errorf("failed page text = %q, want empty", res.PageTexts[1])
	}
	if res.PageTexts[0] == "" || res.PageTexts[2] == "" {
		t.Error("healthy pages must keep their text")
	}
	if len(res.Warnings) == 0 {
		t.Error("failed page must produce a warning")
	}
}

func TestExtractPDFMaxPagesCap(t *testing.T) {
	e := newStubExtractor(t, &stubRunner{pageCount: 5}, 2)

	res, err := e.Extract(context.Background(), "report.pdf")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Pages != 2 || len(res.PageTexts) != 2 {
		t.Errorf("Pages = %d, texts = %d, want cap of 2", res.Pages, len(res.PageTexts))
	}
}

func TestExtractImage(t *testing.T) {
	e := newStubExtractor(t, &stubRunner{}, 0)

	res, err := e.Extract(context.Background(), "scan.png")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Pages != 1 || res.Method != "image-ocr" {
		t.Errorf("res = %+v", res)
	}
	if !strings.Contains(res.PageTexts[0], "scan.png") {
		t.Errorf("text = %q", res.PageTexts[0])
	}
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e := newStubExtractor(t, &stubRunner{}, 0)
	if _, err := e.Extract(context.Background(), "notes.txt"); err == nil {
		t.Error("want error for unsupported extension")
	}
}
