package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/DurgeshS-25/labpanel-tracker/constants"
	"github.com/DurgeshS-25/labpanel-tracker/internal/report"
)

var codeBlockRe = regexp.MustCompile("(?s)^```(?:json)?\\s*(.*?)\\s*```$")

// StripCodeFence removes a surrounding markdown code fence, if present.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if m := codeBlockRe.FindStringSubmatch(s); len(m) > 1 {
		return m[1]
	}
	return s
}

// ExtractJSONObject locates the outermost JSON object in s, tolerating
// explanatory text the model may wrap around the payload.
func ExtractJSONObject(s string) ([]byte, error) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return nil, fmt.Errorf("no JSON object in response")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return []byte(s[start : i+1]), nil
			}
		}
	}
	return nil, fmt.Errorf("unbalanced JSON object in response")
}

// flexNumber accepts a JSON number or a numeric string.
type flexNumber float64

func (f *flexNumber) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		s = strings.TrimSpace(str)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("not a numeric value: %q", s)
	}
	*f = flexNumber(v)
	return nil
}

type patientPayload struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
}

type biomarkerPayload struct {
	Name         string      `json:"name"`
	Value        flexNumber  `json:"value"`
	Unit         *string     `json:"unit"`
	ReferenceMin *flexNumber `json:"referenceMin"`
	ReferenceMax *flexNumber `json:"referenceMax"`
	Status       string      `json:"status"`
	Category     string      `json:"category"`
}

type panelPayload struct {
	Patient    *patientPayload    `json:"patient"`
	Biomarkers []biomarkerPayload `json:"biomarkers"`
}

// DecodePanel turns a raw model response into an ExtractionResult with
// method=ai: strips fences, locates the outermost object, validates it
// against the panel schema, and coerces numeric fields.
func DecodePanel(raw []byte) (report.ExtractionResult, []byte, error) {
	content := StripCodeFence(string(raw))
	obj, err := ExtractJSONObject(content)
	if err != nil {
		return report.ExtractionResult{}, nil, err
	}

	if err := ValidateJSONAgainstSchema(BuildPanelJSONSchema(), obj); err != nil {
		return report.ExtractionResult{}, obj, err
	}

	var payload panelPayload
	if err := json.Unmarshal(obj, &payload); err != nil {
		return report.ExtractionResult{}, obj, fmt.Errorf("unmarshal panel: %w", err)
	}
	if len(payload.Biomarkers) == 0 {
		return report.ExtractionResult{}, obj, fmt.Errorf("response contains no biomarkers")
	}

	res := report.ExtractionResult{
		Method:     constants.MethodAI,
		Biomarkers: make([]report.Biomarker, 0, len(payload.Biomarkers)),
	}
	if p := payload.Patient; p != nil {
		res.Patient = report.PatientInfo{
			FirstName:   strings.TrimSpace(p.FirstName),
			LastName:    strings.TrimSpace(p.LastName),
			DateOfBirth: strings.TrimSpace(p.DateOfBirth),
			Gender:      strings.TrimSpace(p.Gender),
		}
	}

	for _, b := range payload.Biomarkers {
		bm := report.Biomarker{
			Name:   strings.TrimSpace(b.Name),
			Value:  float64(b.Value),
			Unit:   b.Unit,
			Status: constants.ParseStatus(b.Status),
		}
		// off-taxonomy categories are dropped so Normalize can refill
		// from the test name
		if cat, ok := constants.Canonicalize(b.Category); ok {
			bm.Category = string(cat)
		}
		if b.ReferenceMin != nil {
			bm.ReferenceMin = report.Ptr(float64(*b.ReferenceMin))
		}
		if b.ReferenceMax != nil {
			bm.ReferenceMax = report.Ptr(float64(*b.ReferenceMax))
		}
		res.Biomarkers = append(res.Biomarkers, bm)
	}

	res.Biomarkers = report.Normalize(res.Biomarkers)
	if len(res.Biomarkers) == 0 {
		return report.ExtractionResult{}, obj, fmt.Errorf("no valid biomarkers after normalization")
	}
	return res, obj, nil
}
