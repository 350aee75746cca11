// Package pattern is the deterministic fallback extractor: an ordered set
// of regular-expression templates matching common lab-report layouts,
// applied line by line when the AI extractor fails or returns nothing.
package pattern

import (
	"errors"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/DurgeshS-25/labpanel-tracker/constants"
	"github.com/DurgeshS-25/labpanel-tracker/internal/report"
)

// ErrNoMatches means no biomarker survived filtering and deduplication.
var ErrNoMatches = errors.New("no biomarkers matched any template")

// Name-length bounds reject OCR noise and garbage matches.
const (
	MinNameLen = 3
	MaxNameLen = 50
)

// Template pairs a pattern with its capture-group indices. An index of 0
// means the template does not capture that field. Keeping this explicit
// lets new layouts be added without touching scan or dedupe logic.
type Template struct {
	Label string
	re    *regexp.Regexp

	nameIdx  int
	valueIdx int
	unitIdx  int
	minIdx   int
	maxIdx   int
}

const namePat = `[A-Za-z][A-Za-z0-9 ./%'()-]*?`
const numPat = `-?\d+(?:\.\d+)?`

// DefaultTemplates returns the ordered template list. Order matters only
// for which duplicate wins: earlier templates claim a test name first.
func DefaultTemplates() []Template {
	return []Template{
		{
			// Glucose: 95 mg/dL (70-100)
			Label: "colon-range",
			re: regexp.MustCompile(`^\s*(` + namePat + `)\s*:\s*(` + numPat + `)\s*([^\s()]+)\s*\(\s*(` + numPat + `)\s*[-–]\s*(` + numPat + `)\s*\)`),
			nameIdx: 1, valueIdx: 2, unitIdx: 3, minIdx: 4, maxIdx: 5,
		},
		{
			// Glucose    95    mg/dL    70-100
			Label: "columns",
			re: regexp.MustCompile(`^\s*(` + namePat + `)\s{2,}(` + numPat + `)\s+(\S+)\s+(` + numPat + `)\s*[-–]\s*(` + numPat + `)\s*$`),
			nameIdx: 1, valueIdx: 2, unitIdx: 3, minIdx: 4, maxIdx: 5,
		},
		{
			// Glucose 95 mg/dL
			Label: "bare-triple",
			re: regexp.MustCompile(`^\s*(` + namePat + `)\s*:?\s+(` + numPat + `)\s+([A-Za-z%µ][^\s]*)\s*$`),
			nameIdx: 1, valueIdx: 2, unitIdx: 3,
		},
	}
}

type Extractor struct {
	templates []Template
	logger    *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{templates: DefaultTemplates(), logger: logger}
}

// Extract scans the aggregated document text line by line, applying every
// template to every line, then deduplicates by exact test name keeping the
// first occurrence. This path never recovers patient identity.
func (e *Extractor) Extract(text string) (report.ExtractionResult, error) {
	var candidates []report.Biomarker
	for _, line := range strings.Split(text, "\n") {
		for _, tpl := range e.templates {
			m := tpl.re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			if b, ok := tpl.biomarkerFromMatch(m); ok {
				candidates = append(candidates, b)
			}
		}
	}

	biomarkers := report.DedupeByName(candidates)
	if len(biomarkers) == 0 {
		return report.ExtractionResult{}, ErrNoMatches
	}

	e.logger.Info("pattern.extract.ok",
		"matched", len(candidates), "kept", len(biomarkers))
	return report.ExtractionResult{
		Biomarkers: biomarkers,
		Method:     constants.MethodPattern,
	}, nil
}

func (tpl Template) biomarkerFromMatch(m []string) (report.Biomarker, bool) {
	name := strings.TrimSpace(m[tpl.nameIdx])
	if len(name) < MinNameLen || len(name) > MaxNameLen {
		return report.Biomarker{}, false
	}

	value, err := strconv.ParseFloat(m[tpl.valueIdx], 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return report.Biomarker{}, false
	}

	unit := strings.TrimSpace(m[tpl.unitIdx])
	if unit == "" {
		return report.Biomarker{}, false
	}

	b := report.Biomarker{
		Name:     name,
		Value:    value,
		Unit:     report.Ptr(unit),
		Category: string(constants.CategoryForTest(name)),
	}
	if tpl.minIdx > 0 {
		if v, err := strconv.ParseFloat(m[tpl.minIdx], 64); err == nil {
			b.ReferenceMin = report.Ptr(v)
		}
	}
	if tpl.maxIdx > 0 {
		if v, err := strconv.ParseFloat(m[tpl.maxIdx], 64); err == nil {
			b.ReferenceMax = report.Ptr(v)
		}
	}
	b.Status = report.DeriveStatus(b.Value, b.ReferenceMin, b.ReferenceMax)
	return b, true
}
