// internal/people/service.go

package people

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/imadgeboyega/kiekky-matchmaker/internal/common/apperror"
	"github.com/imadgeboyega/kiekky-matchmaker/internal/common/logger"
	"github.com/imadgeboyega/kiekky-matchmaker/internal/common/utils"
)

// Service manages the people a matchmaker represents. Records owned by
// another matchmaker are reported as not found.
type Service interface {
	Create(ctx context.Context, matchmakerID string, req *CreatePersonRequest) (*Person, error)
	Get(ctx context.Context, matchmakerID, id string) (*Person, error)
	List(ctx context.Context, matchmakerID string, includeInactive bool) ([]*Person, error)
	Update(ctx context.Context, matchmakerID, id string, req *UpdatePersonRequest) (*Person, error)
	Deactivate(ctx context.Context, matchmakerID, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a people service
func NewService(repo Repository, log *zap.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger.WithFields(log, zap.String("component", "people")),
	}
}

func (s *service) Create(ctx context.Context, matchmakerID string, req *CreatePersonRequest) (*Person, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	if err := validateDocument("preferences", req.Preferences); err != nil {
		return nil, err
	}
	if err := validateDocument("personality", req.Personality); err != nil {
		return nil, err
	}

	owner := matchmakerID
	p := &Person{
		ID:           uuid.NewString(),
		MatchmakerID: &owner,
		Active:       true,
		Name:         strings.TrimSpace(req.Name),
		Age:          req.Age,
		Location:     trimmed(req.Location),
		Gender:       trimmed(req.Gender),
		Preferences:  req.Preferences,
		Personality:  req.Personality,
		Notes:        req.Notes,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("person created",
		zap.String("matchmaker_id", matchmakerID),
		zap.String("person_id", p.ID),
	)
	return p, nil
}

func (s *service) Get(ctx context.Context, matchmakerID, id string) (*Person, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("person %s: %w", id, apperror.ErrNotFound)
	}

	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.OwnedBy(matchmakerID) {
		return nil, fmt.Errorf("person %s: %w", id, apperror.ErrNotFound)
	}
	return p, nil
}

func (s *service) List(ctx context.Context, matchmakerID string, includeInactive bool) ([]*Person, error) {
	return s.repo.ListByMatchmaker(ctx, matchmakerID, includeInactive)
}

func (s *service) Update(ctx context.Context, matchmakerID, id string, req *UpdatePersonRequest) (*Person, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	if err := validateDocument("preferences", req.Preferences); err != nil {
		return nil, err
	}
	if err := validateDocument("personality", req.Personality); err != nil {
		return nil, err
	}

	current, err := s.Get(ctx, matchmakerID, id)
	if err != nil {
		return nil, err
	}
	if req.IsEmpty() {
		return current, nil
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
	}
	if err := s.repo.Update(ctx, id, req); err != nil {
		return nil, err
	}

	return s.repo.Get(ctx, id)
}

func (s *service) Deactivate(ctx context.Context, matchmakerID, id string) error {
	if _, err := s.Get(ctx, matchmakerID, id); err != nil {
		return err
	}
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}

	s.logger.Info("person deactivated",
		zap.String("matchmaker_id", matchmakerID),
		zap.String("person_id", id),
	)
	return nil
}

// validateDocument accepts an absent document, JSON null or a JSON object.
// Reads stay lenient; only writes are checked.
func validateDocument(field string, raw json.RawMessage) error {
	trimmedRaw := bytes.TrimSpace(raw)
	if len(trimmedRaw) == 0 || bytes.Equal(trimmedRaw, []byte("null")) {
		return nil
	}
	var obj map[string]interface{}
	if err := json.Unmarshal(trimmedRaw, &obj); err != nil {
		return apperror.Validation(field + " must be a JSON object")
	}
	return nil
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
