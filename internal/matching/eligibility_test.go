package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckEligibility(t *testing.T) {
	subject := profileOf("alice", withGender("female"), withPrefs(`{
		"aboutMe": {"isSmoker": true},
		"dealBreakers": ["divorced", "Has Children", "vegan"],
		"lookingFor": {"religionRequired": "Christian"}
	}`))

	tests := []struct {
		name      string
		candidate Profile
		want      Rejection
	}{
		{"self", profileOf("alice", withGender("male")), RejectSelf},
		{"inactive", profileOf("bob", withGender("male"), inactive()), RejectInactive},
		{"same gender ignoring case", profileOf("carol", withGender(" Female ")), RejectSameGender},
		{"unknown gender passes", profileOf("dana"), RejectNone},
		{"blank gender is unknown", profileOf("erin", withGender("  ")), RejectNone},
		{"deal-breaker hit", profileOf("frank", withGender("male"), withPrefs(`{"aboutMe":{"isDivorced":true}}`)), RejectDealBreaker},
		{"deal-breaker alias", profileOf("gus", withGender("male"), withPrefs(`{"aboutMe":{"hasChildren":true}}`)), RejectDealBreaker},
		{"deal-breaker explicit false", profileOf("hank", withGender("male"), withPrefs(`{"aboutMe":{"isDivorced":false}}`)), RejectNone},
		{"reverse deal-breaker", profileOf("ivan", withGender("male"), withPrefs(`{"dealBreakers":["smoker"]}`)), RejectDealBreaker},
		{"religion mismatch", profileOf("jack", withGender("male"), withPrefs(`{"aboutMe":{"religion":"Muslim"}}`)), RejectReligion},
		{"religion match ignoring case", profileOf("ken", withGender("male"), withPrefs(`{"aboutMe":{"religion":"christian"}}`)), RejectNone},
		{"unknown religion passes", profileOf("leo", withGender("male"), withPrefs(`{"aboutMe":{"height":180}}`)), RejectNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckEligibility(subject, tt.candidate))
		})
	}
}

func TestReligionRequirementIsBidirectional(t *testing.T) {
	subject := profileOf("alice", withPrefs(`{"aboutMe":{"religion":"Jewish"}}`))
	candidate := profileOf("bob", withPrefs(`{"lookingFor":{"religionRequired":"Christian"}}`))

	assert.Equal(t, RejectReligion, CheckEligibility(subject, candidate))

	unstated := profileOf("carl", withPrefs(`{"lookingFor":{"religionRequired":"Christian"}}`))
	assert.Equal(t, RejectNone, CheckEligibility(profileOf("dana"), unstated))
}

func TestUnmappedDealBreakersNeverReject(t *testing.T) {
	subject := profileOf("alice", withPrefs(`{"dealBreakers":["vegan","night_owl",""]}`))
	candidate := profileOf("bob", withPrefs(`{"aboutMe":{"isSmoker":true,"isDivorced":true,"hasTattoos":true,"hasPiercings":true,"hasChildren":true}}`))

	assert.Equal(t, RejectNone, CheckEligibility(subject, candidate))
}

func TestEligibilityIsSymmetric(t *testing.T) {
	profiles := []Profile{
		profileOf("a", withGender("female"), withPrefs(`{"dealBreakers":["tattoos"],"aboutMe":{"religion":"Hindu"}}`)),
		profileOf("b", withGender("male"), withPrefs(`{"aboutMe":{"hasTattoos":true}}`)),
		profileOf("c", withGender("male"), withPrefs(`{"lookingFor":{"religionRequired":"Sikh"}}`)),
		profileOf("d", withGender("MALE")),
		profileOf("e"),
		profileOf("f", withGender("female"), withPrefs(`{"lookingFor":{"ageRange":{"min":60}}}`), withAge(22)),
	}

	for _, a := range profiles {
		for _, b := range profiles {
			if a.Person.ID == b.Person.ID {
				continue
			}
			ab := CheckEligibility(a, b) == RejectNone
			ba := CheckEligibility(b, a) == RejectNone
			assert.Equal(t, ab, ba, "%s<->%s", a.Person.ID, b.Person.ID)
		}
	}
}
