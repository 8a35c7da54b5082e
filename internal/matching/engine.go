// internal/matching/engine.go
// Matching pipeline: eligibility, exclusion, scoring, ranking, redaction

package matching

import (
	"go.uber.org/zap"

	"github.com/imadgeboyega/kiekky-matchmaker/internal/common/logger"
	"github.com/imadgeboyega/kiekky-matchmaker/internal/people"
)

// Step records how many candidates one pipeline stage removed.
type Step struct {
	Name    string
	Initial int
	Dropped int
	Left    int
}

// Pipeline stage names
const (
	StepEligibility = "eligibility"
	StepExclusion   = "exclusion"
	StepRanking     = "ranking"
)

// Request is the input to one matching run. All data is fetched up front by
// the caller; the engine performs no I/O.
type Request struct {
	Subject     *people.Person
	Pool        []*people.Person
	RequesterID string
	Excluded    ExclusionSet
}

// Outcome carries results plus per-stage statistics.
type Outcome struct {
	Results    []MatchResult
	Steps      []Step
	Rejections map[Rejection]int
	Strategies map[Strategy]int
}

// Engine is stateless and safe for concurrent use.
type Engine struct {
	limit  int
	logger *zap.Logger
}

// NewEngine returns an engine returning at most limit results. A limit
// below one uses DefaultResultLimit.
func NewEngine(limit int, log *zap.Logger) *Engine {
	if limit < 1 {
		limit = DefaultResultLimit
	}
	return &Engine{
		limit:  limit,
		logger: logger.WithFields(log, zap.String("component", "matching_engine")),
	}
}

// FindMatches returns the ranked, redacted and explained matches for subject.
func (e *Engine) FindMatches(subject *people.Person, pool []*people.Person, requesterID string, excluded ExclusionSet) []MatchResult {
	return e.Evaluate(Request{
		Subject:     subject,
		Pool:        pool,
		RequesterID: requesterID,
		Excluded:    excluded,
	}).Results
}

// Evaluate runs the full pipeline.
func (e *Engine) Evaluate(req Request) Outcome {
	out := Outcome{
		Results:    []MatchResult{},
		Rejections: map[Rejection]int{},
		Strategies: map[Strategy]int{},
	}
	subject := NewProfile(req.Subject)

	eligible := make([]Profile, 0, len(req.Pool))
	for _, p := range req.Pool {
		if p == nil {
			continue
		}
		candidate := NewProfile(p)
		if reason := CheckEligibility(subject, candidate); reason != RejectNone {
			out.Rejections[reason]++
			continue
		}
		eligible = append(eligible, candidate)
	}
	out.Steps = append(out.Steps, e.step(StepEligibility, len(req.Pool), len(eligible)))

	remaining := eligible[:0]
	for _, c := range eligible {
		if req.Excluded.Contains(c.Person.ID) {
			continue
		}
		remaining = append(remaining, c)
	}
	out.Steps = append(out.Steps, e.step(StepExclusion, len(eligible), len(remaining)))

	items := make([]scored, 0, len(remaining))
	for _, c := range remaining {
		score, strategy := Score(subject, c)
		out.Strategies[strategy]++
		items = append(items, scored{profile: c, score: score, strategy: strategy})
	}

	ranked := rankAndTruncate(items, e.limit)
	out.Steps = append(out.Steps, e.step(StepRanking, len(items), len(ranked)))

	for _, item := range ranked {
		out.Results = append(out.Results, MatchResult{
			Person:             Redact(item.profile.Person),
			CompatibilityScore: item.score,
			MatchExplanation:   Explain(subject, item.profile),
			IsCrossMatchmaker:  IsCrossMatchmaker(item.profile.Person, req.RequesterID),
		})
	}

	return out
}

func (e *Engine) step(name string, initial, left int) Step {
	s := Step{Name: name, Initial: initial, Dropped: initial - left, Left: left}
	e.logger.Debug(name,
		zap.Int("initial", s.Initial),
		zap.Int("dropped", s.Dropped),
		zap.Int("left", s.Left),
	)
	return s
}
