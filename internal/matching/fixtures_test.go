package matching

import (
	"encoding/json"

	"github.com/imadgeboyega/kiekky-matchmaker/internal/people"
)

type personOpt func(*people.Person)

func newPerson(id string, opts ...personOpt) *people.Person {
	p := &people.Person{ID: id, Name: id, Active: true}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func withAge(age int) personOpt {
	return func(p *people.Person) { p.Age = &age }
}

func withLocation(loc string) personOpt {
	return func(p *people.Person) { p.Location = &loc }
}

func withGender(g string) personOpt {
	return func(p *people.Person) { p.Gender = &g }
}

func withOwner(mm string) personOpt {
	return func(p *people.Person) { p.MatchmakerID = &mm }
}

func withPrefs(doc string) personOpt {
	return func(p *people.Person) { p.Preferences = json.RawMessage(doc) }
}

func withNotes(notes string) personOpt {
	return func(p *people.Person) { p.Notes = &notes }
}

func inactive() personOpt {
	return func(p *people.Person) { p.Active = false }
}

func profileOf(id string, opts ...personOpt) Profile {
	return NewProfile(newPerson(id, opts...))
}
