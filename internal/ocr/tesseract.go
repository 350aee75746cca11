package ocr

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// stray box-drawing and replacement glyphs tesseract emits on noisy scans
var reBoxNoise = regexp.MustCompile(`[|┃┆┇┊┋\x{FFFD}]+`)

func (e *Extractor) tesseractOCR(ctx context.Context, path string) (string, []string, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	// tesseract <file> stdout -l <lang>
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("tesseract: %w", err)
	}

	txt := reBoxNoise.ReplaceAllString(string(out), "")
	return strings.TrimRight(txt, "\n"), nil, nil
}
