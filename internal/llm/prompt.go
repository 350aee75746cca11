package llm

import (
	"strings"

	"github.com/DurgeshS-25/labpanel-tracker/constants"
)

// BuildExtractionPrompt composes the fixed schema instructions plus the
// aggregated (already truncated) document text.
func BuildExtractionPrompt(text string) string {
	parts := []string{
		"You are a medical lab-report parser. You will receive the OCR text of a scanned lab report.",
		"Extract every biomarker measurement you can find, plus patient metadata if present.",
		"Return ONLY a JSON object in this exact structure (no extra text, no markdown):",
		"",
		`{`,
		`  "patient": {"firstName": "", "lastName": "", "dateOfBirth": "YYYY-MM-DD", "gender": ""},`,
		`  "biomarkers": [`,
		`    {"name": "Glucose", "value": 95, "unit": "mg/dL", "referenceMin": 70, "referenceMax": 100, "status": "normal", "category": "Metabolic"}`,
		`  ]`,
		`}`,
		"",
		"Rules:",
		"- 'value' must be numeric. Skip results that have no numeric value.",
		"- 'unit', 'referenceMin' and 'referenceMax' are null when not printed on the report.",
		"- A reference bound of 0 is a real bound; never replace it with null.",
		"- 'status' is one of: normal, high, low, critical. Use the report's own flags where printed.",
		"- 'category' must be one of: " + strings.Join(constants.AsStringSlice(), ", ") + ".",
		"- Omit patient fields you cannot find; never invent them.",
		"",
		"Lab report text:",
		"",
		text,
	}
	return strings.Join(parts, "\n")
}

// BuildPanelJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We use it locally to validate the model's output; minItems
// on biomarkers is what makes an empty extraction a failure.
func BuildPanelJSONSchema() map[string]any {
	numericValue := map[string]any{
		"anyOf": []any{
			map[string]any{"type": "number"},
			map[string]any{"type": "string", "pattern": `^-?\d+(\.\d+)?$`},
		},
	}
	nullableNumber := map[string]any{
		"anyOf": []any{
			map[string]any{"type": "number"},
			map[string]any{"type": "string", "pattern": `^-?\d+(\.\d+)?$`},
			map[string]any{"type": "null"},
		},
	}

	biomarker := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":         map[string]any{"type": "string", "minLength": 1},
			"value":        numericValue,
			"unit":         map[string]any{"type": []any{"string", "null"}},
			"referenceMin": nullableNumber,
			"referenceMax": nullableNumber,
			"status":       map[string]any{"type": "string"},
			"category":     map[string]any{"type": "string"},
		},
		"required": []string{"name", "value"},
	}

	patient := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"firstName":   map[string]any{"type": "string"},
			"lastName":    map[string]any{"type": "string"},
			"dateOfBirth": map[string]any{"type": "string"},
			"gender":      map[string]any{"type": "string"},
		},
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"patient": patient,
			"biomarkers": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    biomarker,
			},
		},
		"required": []string{"biomarkers"},
	}
}
