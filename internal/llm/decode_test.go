package llm

import (
	"strings"
	"testing"

	"github.com/DurgeshS-25/labpanel-tracker/constants"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"no fence", `{"a": 1}`, `{"a": 1}`},
		{"surrounding whitespace", "  {\"a\": 1}\n", `{"a": 1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripCodeFence(tt.in); got != tt.want {
				t.Errorf("StripCodeFence = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	t.Run("object wrapped in prose", func(t *testing.T) {
		in := `Here is the extracted panel: {"biomarkers": [{"name": "Glucose"}]} Hope this helps!`
		got, err := ExtractJSONObject(in)
		if err != nil {
			t.Fatalf("ExtractJSONObject: %v", err)
		}
		want := `{"biomarkers": [{"name": "Glucose"}]}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("braces inside strings", func(t *testing.T) {
		in := `{"name": "weird {value}", "n": 1}`
		got, err := ExtractJSONObject(in)
		if err != nil {
			t.Fatalf("ExtractJSONObject: %v", err)
		}
		if string(got) != in {
			t.Errorf("got %q, want full object", got)
		}
	})

	t.Run("no object", func(t *testing.T) {
		if _, err := ExtractJSONObject("sorry, I could not parse this"); err == nil {
			t.Error("want error for response without JSON object")
		}
	})

	t.Run("unbalanced object", func(t *testing.T) {
		if _, err := ExtractJSONObject(`{"a": {"b": 1}`); err == nil {
			t.Error("want error for truncated JSON")
		}
	})
}

func TestDecodePanel(t *testing.T) {
	raw := []byte("```json\n" + `{
  "patient": {"firstName": "Jane", "lastName": "Doe", "dateOfBirth": "1985-03-12", "gender": "female"},
  "biomarkers": [
    {"name": "Glucose", "value": "95", "unit": "mg/dL", "referenceMin": 70, "referenceMax": 100, "status": "", "category": "Metabolic"},
    {"name": "TSH", "value": 8.1, "unit": "mIU/L", "referenceMin": 0.4, "referenceMax": 4.0, "status": "high", "category": ""},
    {"name": "HDL Cholesterol", "value": 32, "unit": "mg/dL", "referenceMin": 40, "referenceMax": null, "status": "", "category": "cholesterol"}
  ]
}` + "\n```")

	res, obj, err := DecodePanel(raw)
	if err != nil {
		t.Fatalf("DecodePanel: %v", err)
	}
	if len(obj) == 0 || obj[0] != '{' {
		t.Errorf("raw object not returned: %q", obj)
	}
	if res.Method != constants.MethodAI {
		t.Errorf("Method = %q, want %q", res.Method, constants.MethodAI)
	}
	if res.Patient.FirstName != "Jane" || res.Patient.DateOfBirth != "1985-03-12" {
		t.Errorf("patient = %+v", res.Patient)
	}
	if len(res.Biomarkers) != 3 {
		t.Fatalf("got %d biomarkers, want 3", len(res.Biomarkers))
	}

	glucose := res.Biomarkers[0]
	if glucose.Value != 95 {
		t.Errorf("numeric string not coerced: value = %v", glucose.Value)
	}
	if glucose.Status != constants.StatusNormal {
		t.Errorf("glucose status = %q, want derived normal", glucose.Status)
	}

	tsh := res.Biomarkers[1]
	if tsh.Status != constants.StatusHigh {
		t.Errorf("tsh status = %q, want high", tsh.Status)
	}
	if tsh.Category != string(constants.Thyroid) {
		t.Errorf("tsh category = %q, want filled from test name", tsh.Category)
	}

	hdl := res.Biomarkers[2]
	if hdl.Status != constants.StatusLow {
		t.Errorf("hdl status = %q, want low below min with no max", hdl.Status)
	}
	if hdl.Category != string(constants.Lipid) {
		t.Errorf("hdl category = %q, want canonicalized Lipid", hdl.Category)
	}
}

func TestDecodePanelZeroReferenceBound(t *testing.T) {
	raw := []byte(`{"biomarkers": [{"name": "Basophils", "value": 0.1, "unit": "K/uL", "referenceMin": 0, "referenceMax": 0.2}]}`)
	res, _, err := DecodePanel(raw)
	if err != nil {
		t.Fatalf("DecodePanel: %v", err)
	}
	b := res.Biomarkers[0]
	if b.ReferenceMin == nil || *b.ReferenceMin != 0 {
		t.Errorf("zero min bound lost: %v", b.ReferenceMin)
	}
	if b.Status != constants.StatusNormal {
		t.Errorf("status = %q, want normal", b.Status)
	}
}

func TestDecodePanelNoBiomarkers(t *testing.T) {
	if _, _, err := DecodePanel([]byte(`{"biomarkers": []}`)); err == nil {
		t.Error("want error for empty biomarkers array")
	}
}

func TestDecodePanelSchemaViolation(t *testing.T) {
	// value must be numeric or a numeric string
	raw := []byte(`{"biomarkers": [{"name": "Glucose", "value": "not measured"}]}`)
	if _, _, err := DecodePanel(raw); err == nil {
		t.Error("want schema validation error for non-numeric value")
	}
}

func TestTruncateForPrompt(t *testing.T) {
	long := strings.Repeat("x", MaxPromptTextLen+100)
	got := TruncateForPrompt(long)
	if len(got) != MaxPromptTextLen {
		t.Errorf("len = %d, want %d", len(got), MaxPromptTextLen)
	}
	short := "short text"
	if TruncateForPrompt(short) != short {
		t.Error("short text must pass through unchanged")
	}
}
