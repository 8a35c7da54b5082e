package matching

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePreferencesDegradesToEmpty(t *testing.T) {
	inputs := map[string]string{
		"absent":        "",
		"null":          "null",
		"array":         `[{"aboutMe":{"isSmoker":true}}]`,
		"number":        "42",
		"plain string":  `"likes hiking"`,
		"broken json":   `{"aboutMe": {`,
		"legacy shape":  `{"interests":["hiking"],"ageRange":"25-35"}`,
		"empty objects": `{"aboutMe":{},"lookingFor":{"foo":1},"dealBreakers":[]}`,
		"wrong types":   `{"aboutMe":"tall","lookingFor":[1],"dealBreakers":"smoker"}`,
	}

	for name, raw := range inputs {
		t.Run(name, func(t *testing.T) {
			var prefs StructuredPreferences
			require.NotPanics(t, func() { prefs = ParsePreferences(json.RawMessage(raw)) })
			assert.True(t, prefs.IsEmpty())
		})
	}
}

func TestEmptySectionsCarryNoPreference(t *testing.T) {
	for _, raw := range []string{`{"lookingFor":{}}`, `{"aboutMe":{}}`, `{"dealBreakers":[]}`} {
		t.Run(raw, func(t *testing.T) {
			prefs := ParsePreferences(json.RawMessage(raw))
			assert.True(t, prefs.IsEmpty())

			out, err := json.Marshal(prefs)
			require.NoError(t, err)
			assert.JSONEq(t, `{}`, string(out))

			empty := profileOf("a", withPrefs(raw))
			assert.Equal(t, StrategyLegacy, SelectStrategy(empty, profileOf("b")))
		})
	}
}

func TestParsePreferencesAcceptsEncodedString(t *testing.T) {
	prefs := ParsePreferences(json.RawMessage(`"{\"dealBreakers\":[\"smoker\"]}"`))

	assert.Equal(t, []string{"smoker"}, prefs.DealBreakers)
}

func TestParsePreferencesDropsInvalidFields(t *testing.T) {
	prefs := ParsePreferences(json.RawMessage(`{
		"aboutMe": {
			"height": "tall",
			"isSmoker": "yes",
			"religion": "Christian",
			"numberOfChildren": 1.5,
			"fitnessLevel": "extreme",
			"ethnicity": "   ",
			"unknown": 1
		},
		"lookingFor": {
			"ageRange": {"min": 40, "max": 30},
			"heightRange": {"min": 160, "max": "tall"},
			"fitnessPreference": "ANY",
			"ethnicityPreference": [1, 2]
		}
	}`))

	require.NotNil(t, prefs.AboutMe)
	assert.Equal(t, "Christian", *prefs.AboutMe.Religion)
	assert.Nil(t, prefs.AboutMe.Height)
	assert.Nil(t, prefs.AboutMe.IsSmoker)
	assert.Nil(t, prefs.AboutMe.NumberOfChildren)
	assert.Nil(t, prefs.AboutMe.FitnessLevel)
	assert.Nil(t, prefs.AboutMe.Ethnicity)

	require.NotNil(t, prefs.LookingFor)
	assert.Nil(t, prefs.LookingFor.AgeRange)
	require.NotNil(t, prefs.LookingFor.HeightRange)
	assert.Equal(t, 160.0, *prefs.LookingFor.HeightRange.Min)
	assert.Nil(t, prefs.LookingFor.HeightRange.Max)
	assert.Equal(t, "ANY", *prefs.LookingFor.FitnessPreference)
	assert.Nil(t, prefs.LookingFor.EthnicityPreference)
}

func TestParsePreferencesRoundTrip(t *testing.T) {
	input := `{
		"aboutMe": {
			"height": 180,
			"fitnessLevel": "active",
			"religion": "Christian",
			"hasChildren": false,
			"numberOfChildren": 0,
			"isSmoker": false,
			"favoriteColor": "blue",
			"build": 42
		},
		"lookingFor": {
			"ageRange": {"min": 25, "max": 35},
			"ethnicityPreference": [],
			"wantsChildren": true,
			"religionRequired": null,
			"extra": true
		},
		"dealBreakers": ["smoker", "divorced", 7],
		"legacy": "stuff"
	}`
	expected := `{
		"aboutMe": {
			"height": 180,
			"fitnessLevel": "active",
			"religion": "Christian",
			"hasChildren": false,
			"numberOfChildren": 0,
			"isSmoker": false
		},
		"lookingFor": {
			"ageRange": {"min": 25, "max": 35},
			"ethnicityPreference": [],
			"wantsChildren": true
		},
		"dealBreakers": ["smoker", "divorced"]
	}`

	out, err := json.Marshal(ParsePreferences(json.RawMessage(input)))
	require.NoError(t, err)
	assert.JSONEq(t, expected, string(out))

	again, err := json.Marshal(ParsePreferences(out))
	require.NoError(t, err)
	assert.JSONEq(t, expected, string(again))
}

func TestRangeContains(t *testing.T) {
	lo, hi := 25.0, 35.0

	assert.True(t, (&Range{Min: &lo, Max: &hi}).Contains(25))
	assert.True(t, (&Range{Min: &lo, Max: &hi}).Contains(35))
	assert.False(t, (&Range{Min: &lo, Max: &hi}).Contains(36))
	assert.True(t, (&Range{Min: &lo}).Contains(90))
	assert.False(t, (&Range{Max: &hi}).Contains(40))
}
