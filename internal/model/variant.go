package model

import "strings"

// Variant identifies which expenditure-output model a parameter set selects.
// Keep these values stable; they appear in API payloads and YAML scenarios.
type Variant string

const (
	VariantLumpSum      Variant = "lump_sum"
	VariantProportional Variant = "proportional"
)

// VariantInfo describes a model variant for listing endpoints.
type VariantInfo struct {
	Variant     Variant
	Title       string
	Description string
}

var variants = map[Variant]VariantInfo{
	VariantLumpSum: {
		Variant:     VariantLumpSum,
		Title:       "Expenditure-output model with taxation amount",
		Description: "A fixed tax amount is subtracted from autonomous consumption; net exports are a constant.",
	},
	VariantProportional: {
		Variant:     VariantProportional,
		Title:       "Expenditure-output model with tax rate and propensity to import",
		Description: "Tax is a fraction of income; imports are a fraction of disposable income.",
	},
}

// Variants returns all known variants in a stable order.
func Variants() []VariantInfo {
	return []VariantInfo{variants[VariantLumpSum], variants[VariantProportional]}
}

// ParseVariant maps a configuration string onto a Variant.
func ParseVariant(s string) (Variant, error) {
	v := Variant(s)
	if _, ok := variants[v]; !ok {
		return "", &ParameterError{Param: "model", Raw: s, Reason: "must be one of " + variantNames()}
	}
	return v, nil
}

func variantNames() string {
	names := make([]string, 0, len(variants))
	for _, v := range Variants() {
		names = append(names, string(v.Variant))
	}
	return strings.Join(names, ", ")
}
