package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/DurgeshS-25/labpanel-tracker/constants"
)

func (e *Extractor) extractPDF(ctx context.Context, path string) (Result, error) {
	tmpDir, err := os.MkdirTemp("", "lp-pp-*")
	if err != nil {
		return Result{SourceType: constants.PDF}, err
	}
	defer func(dir string) {
		if err := os.RemoveAll(dir); err != nil {
			e.logger.Warn("ocr.pdf.tmpdir_cleanup_failed", "dir", dir, "error", err)
		}
	}(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return Result{SourceType: constants.PDF, Warnings: []string{string(errb)}}, err
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return Result{SourceType: constants.PDF, Warnings: []string{"pdftoppm produced no images"}},
			fmt.Errorf("no pages rendered")
	}

	texts, warns := e.ocrPages(ctx, matches)
	return Result{
		PageTexts:  texts,
		Pages:      len(matches),
		SourceType: constants.PDF,
		Method:     "pdf-ocr",
		Language:   e.cfg.TesseractLang,
		Warnings:   warns,
	}, nil
}

// ocrPages runs tesseract over each page image with bounded parallelism.
// Results land in a slice indexed by page, so completion order never
// changes page order. A failed page yields "" and a warning.
func (e *Extractor) ocrPages(ctx context.Context, images []string) ([]string, []string) {
	texts := make([]string, len(images))
	pageWarns := make([][]string, len(images))

	sem := make(chan struct{}, e.cfg.PageWorkers)
	var wg sync.WaitGroup
	for i, img := range images {
		wg.Add(1)
		go func(i int, img string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			txt, w, err := e.tesseractOCR(ctx, img)
			if err != nil {
				e.logger.Warn("ocr.page.failed", "page", i+1, "image", img, "error", err)
				pageWarns[i] = append(w, fmt.Sprintf("page %d: %v", i+1, err))
				return
			}
			texts[i] = txt
			pageWarns[i] = w
		}(i, img)
	}
	wg.Wait()

	var warns []string
	for _, w := range pageWarns {
		warns = append(warns, w...)
	}
	return texts, warns
}
