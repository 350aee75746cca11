package constants

import (
	"strings"
)

type Category string

const (
	Hematology  Category = "Hematology"
	Lipid       Category = "Lipid"
	Metabolic   Category = "Metabolic"
	Liver       Category = "Liver"
	Kidney      Category = "Kidney"
	Thyroid     Category = "Thyroid"
	Electrolyte Category = "Electrolyte"
	Vitamin     Category = "Vitamin"
	Hormone     Category = "Hormone"
	Inflammation Category = "Inflammation"
	Other       Category = "Other"
)

var allCategories = []Category{
	Hematology,
	Lipid,
	Metabolic,
	Liver,
	Kidney,
	Thyroid,
	Electrolyte,
	Vitamin,
	Hormone,
	Inflammation,
	Other,
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize maps a free-form category label to the canonical taxonomy.
func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Other, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Category{
		"cbc":          Hematology,
		"blood count":  Hematology,
		"lipids":       Lipid,
		"lipid panel":  Lipid,
		"cholesterol":  Lipid,
		"glucose":      Metabolic,
		"diabetes":     Metabolic,
		"hepatic":      Liver,
		"renal":        Kidney,
		"electrolytes": Electrolyte,
		"vitamins":     Vitamin,
		"hormones":     Hormone,
		"inflammatory": Inflammation,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Other, false
}

// keyword -> category, checked in order against the lowercased test name.
var testNameKeywords = []struct {
	keyword  string
	category Category
}{
	{"hemoglobin", Hematology},
	{"hematocrit", Hematology},
	{"platelet", Hematology},
	{"wbc", Hematology},
	{"rbc", Hematology},
	{"white blood", Hematology},
	{"red blood", Hematology},
	{"mcv", Hematology},
	{"mch", Hematology},
	{"cholesterol", Lipid},
	{"hdl", Lipid},
	{"ldl", Lipid},
	{"triglyceride", Lipid},
	{"glucose", Metabolic},
	{"hba1c", Metabolic},
	{"a1c", Metabolic},
	{"insulin", Metabolic},
	{"alt", Liver},
	{"ast", Liver},
	{"bilirubin", Liver},
	{"albumin", Liver},
	{"alkaline phosphatase", Liver},
	{"creatinine", Kidney},
	{"urea", Kidney},
	{"bun", Kidney},
	{"egfr", Kidney},
	{"tsh", Thyroid},
	{"t3", Thyroid},
	{"t4", Thyroid},
	{"thyroid", Thyroid},
	{"sodium", Electrolyte},
	{"potassium", Electrolyte},
	{"chloride", Electrolyte},
	{"calcium", Electrolyte},
	{"magnesium", Electrolyte},
	{"vitamin", Vitamin},
	{"folate", Vitamin},
	{"b12", Vitamin},
	{"testosterone", Hormone},
	{"estradiol", Hormone},
	{"cortisol", Hormone},
	{"crp", Inflammation},
	{"esr", Inflammation},
	{"sedimentation", Inflammation},
}

// CategoryForTest guesses a category from a test name. Used by the
// pattern-matching extractor, which has no model-provided category.
func CategoryForTest(name string) Category {
	n := strings.ToLower(name)
	for _, kw := range testNameKeywords {
		if strings.Contains(n, kw.keyword) {
			return kw.category
		}
	}
	return Other
}
