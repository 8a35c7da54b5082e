package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExplain(t *testing.T) {
	tests := []struct {
		name      string
		subject   Profile
		candidate Profile
		want      string
	}{
		{
			name:      "fallback",
			subject:   profileOf("a"),
			candidate: profileOf("b"),
			want:      FallbackExplanation,
		},
		{
			name:      "age within five years only",
			subject:   profileOf("a", withAge(30)),
			candidate: profileOf("b", withAge(35)),
			want:      "Compatible ages",
		},
		{
			name: "shared traits",
			subject: profileOf("a", withGender("female"),
				withPrefs(`{"aboutMe":{"religion":"Christian","fitnessLevel":"active","ethnicity":"Igbo"}}`)),
			candidate: profileOf("b", withGender("male"),
				withPrefs(`{"aboutMe":{"religion":"christian","fitnessLevel":"ACTIVE","ethnicity":"igbo"}}`)),
			want: "Complementary match, Shared faith (christian), Similar fitness level, Shared cultural background",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Explain(tt.subject, tt.candidate))
		})
	}
}
