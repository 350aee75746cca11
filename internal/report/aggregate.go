package report

import "strings"

// PageSeparator marks page boundaries in the aggregated document text.
// Same form-feed convention pdftotext uses for page breaks.
const PageSeparator = "\n\f\n"

// DocumentText is the ordered per-page OCR output plus the joined full text.
type DocumentText struct {
	Pages []string
	Full  string
}

// Aggregate joins per-page OCR text in page order, skipping pages whose
// text is empty so the separator never doubles up at the boundaries.
// Page order is the join key regardless of OCR completion order.
func Aggregate(pages []string) DocumentText {
	nonEmpty := make([]string, 0, len(pages))
	for _, p := range pages {
		if strings.TrimSpace(p) == "" {
			continue
		}
		nonEmpty = append(nonEmpty, p)
	}
	return DocumentText{
		Pages: pages,
		Full:  strings.Join(nonEmpty, PageSeparator),
	}
}
