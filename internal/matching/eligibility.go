// internal/matching/eligibility.go
// Hard pass/fail rules applied before scoring

package matching

import (
	"strings"

	"github.com/imadgeboyega/kiekky-matchmaker/internal/people"
)

// Profile pairs a person with their parsed preferences so each document is
// parsed once per request.
type Profile struct {
	Person *people.Person
	Prefs  StructuredPreferences
}

// NewProfile parses p's preferences.
func NewProfile(p *people.Person) Profile {
	return Profile{Person: p, Prefs: ParsePreferences(p.Preferences)}
}

func (p Profile) aboutMe() *AboutMe {
	if p.Prefs.AboutMe == nil {
		return &AboutMe{}
	}
	return p.Prefs.AboutMe
}

func (p Profile) lookingFor() *LookingFor {
	if p.Prefs.LookingFor == nil {
		return &LookingFor{}
	}
	return p.Prefs.LookingFor
}

// Rejection names the rule that removed a candidate.
type Rejection string

const (
	RejectNone        Rejection = ""
	RejectSelf        Rejection = "self"
	RejectInactive    Rejection = "inactive"
	RejectSameGender  Rejection = "same_gender"
	RejectDealBreaker Rejection = "deal_breaker"
	RejectReligion    Rejection = "religion"
)

// dealBreakers maps a named flag to the counterpart field it rejects on.
var dealBreakers = map[string]func(*AboutMe) *bool{
	"divorced":     func(a *AboutMe) *bool { return a.IsDivorced },
	"has_children": func(a *AboutMe) *bool { return a.HasChildren },
	"tattoos":      func(a *AboutMe) *bool { return a.HasTattoos },
	"piercings":    func(a *AboutMe) *bool { return a.HasPiercings },
	"smoker":       func(a *AboutMe) *bool { return a.IsSmoker },
}

// CheckEligibility applies the hard filters in order and returns the first
// rule the candidate fails, or RejectNone.
func CheckEligibility(subject, candidate Profile) Rejection {
	switch {
	case candidate.Person.ID == subject.Person.ID:
		return RejectSelf
	case !candidate.Person.Active:
		return RejectInactive
	case sameKnownGender(subject.Person, candidate.Person):
		return RejectSameGender
	case breaksDeal(subject, candidate) || breaksDeal(candidate, subject):
		return RejectDealBreaker
	case violatesReligion(subject, candidate) || violatesReligion(candidate, subject):
		return RejectReligion
	}
	return RejectNone
}

// sameKnownGender is false whenever either gender is unknown.
func sameKnownGender(a, b *people.Person) bool {
	ga, gb := known(a.Gender), known(b.Gender)
	return ga != "" && gb != "" && ga == gb
}

// genderDiffers is true only when both genders are known and differ.
func genderDiffers(a, b *people.Person) bool {
	ga, gb := known(a.Gender), known(b.Gender)
	return ga != "" && gb != "" && ga != gb
}

// breaksDeal reports whether other explicitly has a trait that holder's
// deal-breakers reject. Unmapped flags and unknown traits never reject.
func breaksDeal(holder, other Profile) bool {
	traits := other.aboutMe()
	for _, flag := range holder.Prefs.DealBreakers {
		field, ok := dealBreakers[dealBreakerKey(flag)]
		if !ok {
			continue
		}
		if v := field(traits); v != nil && *v {
			return true
		}
	}
	return false
}

// violatesReligion reports whether holder requires a religion other has
// declared differently. An undeclared religion cannot be a mismatch.
func violatesReligion(holder, other Profile) bool {
	required := known(holder.lookingFor().ReligionRequired)
	actual := known(other.aboutMe().Religion)
	return required != "" && actual != "" && required != actual
}

func dealBreakerKey(flag string) string {
	return strings.NewReplacer(" ", "_", "-", "_").Replace(normalize(flag))
}

// known returns the normalized value of s, or "" when it is absent.
func known(s *string) string {
	if s == nil {
		return ""
	}
	return normalize(*s)
}
