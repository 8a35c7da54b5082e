// internal/introductions/service.go

package introductions

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/imadgeboyega/kiekky-matchmaker/internal/common/apperror"
	"github.com/imadgeboyega/kiekky-matchmaker/internal/common/logger"
	"github.com/imadgeboyega/kiekky-matchmaker/internal/common/utils"
	"github.com/imadgeboyega/kiekky-matchmaker/internal/people"
)

// PersonStore is the subset of the people repository introductions read from
type PersonStore interface {
	Get(ctx context.Context, id string) (*people.Person, error)
}

// Service manages introductions between people
type Service interface {
	Create(ctx context.Context, matchmakerID string, req *CreateIntroductionRequest) (*Introduction, error)
	List(ctx context.Context, matchmakerID, status string) ([]*Introduction, error)
	UpdateStatus(ctx context.Context, matchmakerID, id string, req *UpdateStatusRequest) (*Introduction, error)
}

type service struct {
	repo   Repository
	people PersonStore
	logger *zap.Logger
}

// NewService creates an introductions service
func NewService(repo Repository, peopleStore PersonStore, log *zap.Logger) Service {
	return &service{
		repo:   repo,
		people: peopleStore,
		logger: logger.WithFields(log, zap.String("component", "introductions")),
	}
}

// Create proposes an introduction. The requester must represent at least
// one of the two people, and both must be active.
func (s *service) Create(ctx context.Context, matchmakerID string, req *CreateIntroductionRequest) (*Introduction, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	a, err := s.activePerson(ctx, req.PersonAID)
	if err != nil {
		return nil, err
	}
	b, err := s.activePerson(ctx, req.PersonBID)
	if err != nil {
		return nil, err
	}
	if !a.OwnedBy(matchmakerID) && !b.OwnedBy(matchmakerID) {
		return nil, fmt.Errorf("introduce %s and %s: %w", a.ID, b.ID, apperror.ErrForbidden)
	}

	intro := &Introduction{
		ID:           uuid.NewString(),
		MatchmakerID: matchmakerID,
		PersonAID:    a.ID,
		PersonBID:    b.ID,
		Status:       StatusPending,
		Notes:        trimmed(req.Notes),
	}
	if err := s.repo.Create(ctx, intro); err != nil {
		return nil, err
	}
	RecordStatus(StatusPending)

	s.logger.Info("introduction created",
		zap.String("matchmaker_id", matchmakerID),
		zap.String("introduction_id", intro.ID),
	)
	return intro, nil
}

func (s *service) List(ctx context.Context, matchmakerID, status string) ([]*Introduction, error) {
	if status != "" && !ValidStatus(status) {
		return nil, apperror.Validation("unknown status " + status)
	}
	return s.repo.ListByMatchmaker(ctx, matchmakerID, status)
}

// UpdateStatus is allowed for a matchmaker representing either side.
// Introductions the requester cannot see are reported as not found.
func (s *service) UpdateStatus(ctx context.Context, matchmakerID, id string, req *UpdateStatusRequest) (*Introduction, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("introduction %s: %w", id, apperror.ErrNotFound)
	}

	intro, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	ok, err := s.representsEitherSide(ctx, matchmakerID, intro)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("introduction %s: %w", id, apperror.ErrNotFound)
	}

	if !CanTransition(intro.Status, req.Status) {
		return nil, apperror.Validation(fmt.Sprintf("cannot move introduction from %s to %s", intro.Status, req.Status))
	}

	notes := trimmed(req.Notes)
	if err := s.repo.UpdateStatus(ctx, id, req.Status, notes); err != nil {
		return nil, err
	}
	RecordStatus(req.Status)

	s.logger.Info("introduction status updated",
		zap.String("matchmaker_id", matchmakerID),
		zap.String("introduction_id", id),
		zap.String("from", intro.Status),
		zap.String("to", req.Status),
	)
	return s.repo.Get(ctx, id)
}

func (s *service) activePerson(ctx context.Context, id string) (*people.Person, error) {
	p, err := s.people.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.Active {
		return nil, fmt.Errorf("person %s: %w", id, apperror.ErrNotFound)
	}
	return p, nil
}

func (s *service) representsEitherSide(ctx context.Context, matchmakerID string, intro *Introduction) (bool, error) {
	for _, id := range []string{intro.PersonAID, intro.PersonBID} {
		p, err := s.people.Get(ctx, id)
		if err != nil {
			return false, err
		}
		if p.OwnedBy(matchmakerID) {
			return true, nil
		}
	}
	return false, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
