// internal/matching/service.go

package matching

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/imadgeboyega/kiekky-matchmaker/internal/common/apperror"
	"github.com/imadgeboyega/kiekky-matchmaker/internal/common/logger"
	"github.com/imadgeboyega/kiekky-matchmaker/internal/common/utils"
	"github.com/imadgeboyega/kiekky-matchmaker/internal/people"
)

// PersonStore is the subset of the people repository matching reads from
type PersonStore interface {
	Get(ctx context.Context, id string) (*people.Person, error)
	ListActiveExcluding(ctx context.Context, excludeID string) ([]*people.Person, error)
}

// Service exposes matching to the transport layer
type Service interface {
	FindMatches(ctx context.Context, matchmakerID, subjectID string) ([]MatchResult, error)
	RecordDecision(ctx context.Context, matchmakerID, subjectID, candidateID string, req *DecisionRequest) (*MatchDecision, error)
	ListDecisions(ctx context.Context, matchmakerID, subjectID string) ([]*MatchDecision, error)
}

type service struct {
	people    PersonStore
	decisions Repository
	engine    *Engine
	limiter   Limiter
	logger    *zap.Logger
}

// NewService wires the matching service. limiter may be nil to disable rate limiting.
func NewService(peopleStore PersonStore, decisions Repository, engine *Engine, limiter Limiter, log *zap.Logger) Service {
	return &service{
		people:    peopleStore,
		decisions: decisions,
		engine:    engine,
		limiter:   limiter,
		logger:    logger.WithFields(log, zap.String("component", "matching")),
	}
}

func (s *service) FindMatches(ctx context.Context, matchmakerID, subjectID string) ([]MatchResult, error) {
	start := time.Now()
	defer func() { RecordResponseTime("find_matches", time.Since(start)) }()

	if err := s.checkRate(ctx, matchmakerID); err != nil {
		RecordRequest("rate_limited")
		return nil, err
	}

	if _, err := uuid.Parse(subjectID); err != nil {
		RecordRequest("not_found")
		return nil, fmt.Errorf("subject %s: %w", subjectID, apperror.ErrNotFound)
	}

	var (
		subject  *people.Person
		pool     []*people.Person
		excluded ExclusionSet
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		subject, err = s.people.Get(gctx, subjectID)
		return err
	})
	g.Go(func() error {
		var err error
		pool, err = s.people.ListActiveExcluding(gctx, subjectID)
		return err
	})
	g.Go(func() error {
		var err error
		excluded, err = ResolveExclusions(gctx, s.decisions, subjectID, matchmakerID)
		return err
	})
	if err := g.Wait(); err != nil {
		RecordRequest(outcomeFor(err))
		return nil, err
	}

	if !subject.OwnedBy(matchmakerID) || !subject.Active {
		RecordRequest("not_found")
		return nil, fmt.Errorf("subject %s: %w", subjectID, apperror.ErrNotFound)
	}

	out := s.engine.Evaluate(Request{
		Subject:     subject,
		Pool:        pool,
		RequesterID: matchmakerID,
		Excluded:    excluded,
	})
	RecordOutcome(out)
	RecordRequest("ok")

	s.logger.Info("matches found",
		zap.String("matchmaker_id", matchmakerID),
		zap.String("subject_id", subjectID),
		zap.Int("pool", len(pool)),
		zap.Int("excluded", len(excluded)),
		zap.Int("results", len(out.Results)),
	)
	return out.Results, nil
}

func (s *service) RecordDecision(ctx context.Context, matchmakerID, subjectID, candidateID string, req *DecisionRequest) (*MatchDecision, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	if req.Decision == DecisionAccepted && req.DeclineReason != nil {
		return nil, apperror.Validation("decline_reason is only allowed when declining")
	}
	reason := trimmedReason(req.DeclineReason)
	if subjectID == candidateID {
		return nil, apperror.Validation("candidate must differ from subject")
	}
	if _, err := uuid.Parse(candidateID); err != nil {
		return nil, fmt.Errorf("candidate %s: %w", candidateID, apperror.ErrNotFound)
	}

	if _, err := s.ownedSubject(ctx, matchmakerID, subjectID); err != nil {
		return nil, err
	}
	if _, err := s.people.Get(ctx, candidateID); err != nil {
		return nil, err
	}

	decision := &MatchDecision{
		ID:            uuid.NewString(),
		MatchmakerID:  matchmakerID,
		SubjectID:     subjectID,
		CandidateID:   candidateID,
		Decision:      req.Decision,
		DeclineReason: reason,
	}
	if err := s.decisions.UpsertDecision(ctx, decision); err != nil {
		return nil, err
	}
	RecordDecision(decision.Decision)

	s.logger.Info("match decision recorded",
		zap.String("matchmaker_id", matchmakerID),
		zap.String("subject_id", subjectID),
		zap.String("candidate_id", candidateID),
		zap.String("decision", decision.Decision),
	)
	return decision, nil
}

func (s *service) ListDecisions(ctx context.Context, matchmakerID, subjectID string) ([]*MatchDecision, error) {
	if _, err := s.ownedSubject(ctx, matchmakerID, subjectID); err != nil {
		return nil, err
	}
	return s.decisions.ListDecisions(ctx, subjectID, matchmakerID)
}

// ownedSubject folds "missing" and "owned by someone else" into NotFound.
func (s *service) ownedSubject(ctx context.Context, matchmakerID, subjectID string) (*people.Person, error) {
	if _, err := uuid.Parse(subjectID); err != nil {
		return nil, fmt.Errorf("subject %s: %w", subjectID, apperror.ErrNotFound)
	}
	subject, err := s.people.Get(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if !subject.OwnedBy(matchmakerID) {
		return nil, fmt.Errorf("subject %s: %w", subjectID, apperror.ErrNotFound)
	}
	return subject, nil
}

// checkRate fails open when the limiter itself errors.
func (s *service) checkRate(ctx context.Context, matchmakerID string) error {
	if s.limiter == nil {
		return nil
	}
	allowed, retryAfter, err := s.limiter.Allow(ctx, matchmakerID)
	if err != nil {
		s.logger.Warn("rate limiter unavailable", zap.Error(err))
		return nil
	}
	if !allowed {
		return &apperror.RateLimitError{RetryAfter: retryAfter}
	}
	return nil
}

func trimmedReason(reason *string) *string {
	if reason == nil {
		return nil
	}
	v := strings.TrimSpace(*reason)
	if v == "" {
		return nil
	}
	return &v
}

func outcomeFor(err error) string {
	if errors.Is(err, apperror.ErrNotFound) {
		return "not_found"
	}
	return "error"
}
