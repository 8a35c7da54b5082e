// internal/matching/preferences.go
// Tolerant parsing of freeform preference documents

package matching

import (
	"encoding/json"
	"math"
	"strings"
)

// Fitness scale, ordered from least to most active.
const (
	FitnessSedentary = "sedentary"
	FitnessAverage   = "average"
	FitnessActive    = "active"
	FitnessAny       = "any"
)

var fitnessRank = map[string]int{
	FitnessSedentary: 0,
	FitnessAverage:   1,
	FitnessActive:    2,
}

// Range is an inclusive numeric interval; either bound may be open.
type Range struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// Contains reports whether v lies within the range.
func (r *Range) Contains(v float64) bool {
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

// AboutMe is a person's self-description, read by the other party's filters.
type AboutMe struct {
	Height           *float64 `json:"height,omitempty"`
	Build            *string  `json:"build,omitempty"`
	FitnessLevel     *string  `json:"fitnessLevel,omitempty"`
	Ethnicity        *string  `json:"ethnicity,omitempty"`
	Religion         *string  `json:"religion,omitempty"`
	HasChildren      *bool    `json:"hasChildren,omitempty"`
	NumberOfChildren *int     `json:"numberOfChildren,omitempty"`
	IsDivorced       *bool    `json:"isDivorced,omitempty"`
	HasTattoos       *bool    `json:"hasTattoos,omitempty"`
	HasPiercings     *bool    `json:"hasPiercings,omitempty"`
	IsSmoker         *bool    `json:"isSmoker,omitempty"`
	Occupation       *string  `json:"occupation,omitempty"`
	IncomeRange      *string  `json:"incomeRange,omitempty"`
}

// LookingFor holds a person's requirements against a candidate. A non-nil
// empty EthnicityPreference is a stated preference that accepts everyone.
type LookingFor struct {
	AgeRange            *Range    `json:"ageRange,omitempty"`
	HeightRange         *Range    `json:"heightRange,omitempty"`
	FitnessPreference   *string   `json:"fitnessPreference,omitempty"`
	EthnicityPreference *[]string `json:"ethnicityPreference,omitempty"`
	IncomePreference    *string   `json:"incomePreference,omitempty"`
	ReligionRequired    *string   `json:"religionRequired,omitempty"`
	WantsChildren       *bool     `json:"wantsChildren,omitempty"`
}

// StructuredPreferences is the normalized form of a preferences document.
// Every field is optional.
type StructuredPreferences struct {
	AboutMe      *AboutMe    `json:"aboutMe,omitempty"`
	LookingFor   *LookingFor `json:"lookingFor,omitempty"`
	DealBreakers []string    `json:"dealBreakers,omitempty"`
}

// IsEmpty reports whether no structured field survived parsing.
func (p StructuredPreferences) IsEmpty() bool {
	return p.AboutMe == nil && p.LookingFor == nil && len(p.DealBreakers) == 0
}

// ParsePreferences normalizes raw into StructuredPreferences. It never fails:
// malformed input yields an empty value, invalid fields are dropped one by
// one and unknown keys are ignored. Sections left empty after parsing are treated as
// absent, so they do not select structured scoring.
func ParsePreferences(raw json.RawMessage) StructuredPreferences {
	doc := decodeObject(raw)
	if doc == nil {
		return StructuredPreferences{}
	}

	var out StructuredPreferences
	if section, ok := doc["aboutMe"].(map[string]interface{}); ok {
		out.AboutMe = parseAboutMe(section)
	}
	if section, ok := doc["lookingFor"].(map[string]interface{}); ok {
		out.LookingFor = parseLookingFor(section)
	}
	if list, ok := doc["dealBreakers"].([]interface{}); ok {
		out.DealBreakers = stringList(list)
	}
	return out
}

// decodeObject accepts a JSON object, or a JSON string holding one.
func decodeObject(raw json.RawMessage) map[string]interface{} {
	if len(raw) == 0 {
		return nil
	}

	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}

	if s, ok := v.(string); ok {
		if err := json.Unmarshal([]byte(s), &v); err != nil {
			return nil
		}
	}

	obj, _ := v.(map[string]interface{})
	return obj
}

func parseAboutMe(m map[string]interface{}) *AboutMe {
	a := &AboutMe{
		Height:           coercePositiveFloat(m["height"]),
		Build:            coerceString(m["build"]),
		FitnessLevel:     coerceFitness(m["fitnessLevel"], false),
		Ethnicity:        coerceString(m["ethnicity"]),
		Religion:         coerceString(m["religion"]),
		HasChildren:      coerceBool(m["hasChildren"]),
		NumberOfChildren: coerceCount(m["numberOfChildren"]),
		IsDivorced:       coerceBool(m["isDivorced"]),
		HasTattoos:       coerceBool(m["hasTattoos"]),
		HasPiercings:     coerceBool(m["hasPiercings"]),
		IsSmoker:         coerceBool(m["isSmoker"]),
		Occupation:       coerceString(m["occupation"]),
		IncomeRange:      coerceString(m["incomeRange"]),
	}
	if *a == (AboutMe{}) {
		return nil
	}
	return a
}

func parseLookingFor(m map[string]interface{}) *LookingFor {
	l := &LookingFor{
		AgeRange:          coerceRange(m["ageRange"]),
		HeightRange:       coerceRange(m["heightRange"]),
		FitnessPreference: coerceFitness(m["fitnessPreference"], true),
		IncomePreference:  coerceString(m["incomePreference"]),
		ReligionRequired:  coerceString(m["religionRequired"]),
		WantsChildren:     coerceBool(m["wantsChildren"]),
	}
	if list, ok := m["ethnicityPreference"].([]interface{}); ok {
		values := stringList(list)
		if values == nil {
			values = []string{}
		}
		// A list whose entries were all invalid is not a stated preference.
		if len(values) > 0 || len(list) == 0 {
			l.EthnicityPreference = &values
		}
	}
	if *l == (LookingFor{}) {
		return nil
	}
	return l
}

func coerceString(v interface{}) *string {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func coerceBool(v interface{}) *bool {
	b, ok := v.(bool)
	if !ok {
		return nil
	}
	return &b
}

func coercePositiveFloat(v interface{}) *float64 {
	f, ok := v.(float64)
	if !ok || f <= 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return nil
	}
	return &f
}

func coerceCount(v interface{}) *int {
	f, ok := v.(float64)
	if !ok || f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return nil
	}
	n := int(f)
	return &n
}

func coerceFitness(v interface{}, allowAny bool) *string {
	s := coerceString(v)
	if s == nil {
		return nil
	}
	key := normalize(*s)
	if _, ok := fitnessRank[key]; ok || (allowAny && key == FitnessAny) {
		return s
	}
	return nil
}

// coerceRange accepts {min, max} with at least one numeric bound and min <= max.
func coerceRange(v interface{}) *Range {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}

	var r Range
	if f, ok := m["min"].(float64); ok {
		r.Min = &f
	}
	if f, ok := m["max"].(float64); ok {
		r.Max = &f
	}
	if r.Min == nil && r.Max == nil {
		return nil
	}
	if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
		return nil
	}
	return &r
}

func stringList(list []interface{}) []string {
	var out []string
	for _, item := range list {
		if s := coerceString(item); s != nil {
			out = append(out, *s)
		}
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
