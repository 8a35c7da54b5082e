package introductions

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/imadgeboyega/kiekky-matchmaker/internal/common/apperror"
	"github.com/imadgeboyega/kiekky-matchmaker/internal/people"
)

const (
	aliceID   = "aaaaaaaa-0000-0000-0000-000000000001"
	bobID     = "bbbbbbbb-0000-0000-0000-000000000002"
	carolID   = "cccccccc-0000-0000-0000-000000000003"
	dormantID = "dddddddd-0000-0000-0000-000000000004"
	missingID = "eeeeeeee-0000-0000-0000-000000000005"
)

type memoryPeople map[string]*people.Person

func (m memoryPeople) Get(_ context.Context, id string) (*people.Person, error) {
	p, ok := m[id]
	if !ok {
		return nil, fmt.Errorf("person %s: %w", id, apperror.ErrNotFound)
	}
	return p, nil
}

type memoryRepository struct {
	mu        sync.Mutex
	intros    map[string]*Introduction
	createErr error
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{intros: map[string]*Introduction{}}
}

func (m *memoryRepository) Create(_ context.Context, intro *Introduction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	intro.CreatedAt = time.Now()
	intro.UpdatedAt = intro.CreatedAt
	cp := *intro
	m.intros[intro.ID] = &cp
	return nil
}

func (m *memoryRepository) Get(_ context.Context, id string) (*Introduction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	intro, ok := m.intros[id]
	if !ok {
		return nil, fmt.Errorf("introduction %s: %w", id, apperror.ErrNotFound)
	}
	cp := *intro
	return &cp, nil
}

func (m *memoryRepository) ListByMatchmaker(_ context.Context, matchmakerID, status string) ([]*Introduction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*Introduction{}
	for _, intro := range m.intros {
		if intro.MatchmakerID == matchmakerID && (status == "" || intro.Status == status) {
			cp := *intro
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryRepository) UpdateStatus(_ context.Context, id, status string, notes *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	intro, ok := m.intros[id]
	if !ok {
		return fmt.Errorf("introduction %s: %w", id, apperror.ErrNotFound)
	}
	intro.Status = status
	if notes != nil {
		intro.Notes = notes
	}
	intro.UpdatedAt = time.Now()
	return nil
}

func person(id, owner string, active bool) *people.Person {
	p := &people.Person{ID: id, Name: id, Active: active}
	if owner != "" {
		p.MatchmakerID = &owner
	}
	return p
}

func seedPeople() memoryPeople {
	return memoryPeople{
		aliceID:   person(aliceID, "mm-1", true),
		bobID:     person(bobID, "mm-2", true),
		carolID:   person(carolID, "", true),
		dormantID: person(dormantID, "mm-1", false),
	}
}

func TestCreateIntroduction(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	repo := newMemoryRepository()
	svc := NewService(repo, seedPeople(), zap.New(core))
	notes := "  both love hiking  "
	before := testutil.ToFloat64(introductionsTotal.WithLabelValues(StatusPending))

	intro, err := svc.Create(context.Background(), "mm-1", &CreateIntroductionRequest{
		PersonAID: aliceID,
		PersonBID: bobID,
		Notes:     &notes,
	})

	require.NoError(t, err)
	assert.Equal(t, StatusPending, intro.Status)
	assert.Equal(t, "mm-1", intro.MatchmakerID)
	require.NotNil(t, intro.Notes)
	assert.Equal(t, "both love hiking", *intro.Notes)
	assert.Contains(t, repo.intros, intro.ID)
	assert.Equal(t, before+1, testutil.ToFloat64(introductionsTotal.WithLabelValues(StatusPending)))
	assert.Equal(t, 1, logs.FilterMessage("introduction created").Len())
}

func TestCreateIntroductionRules(t *testing.T) {
	tests := []struct {
		name       string
		matchmaker string
		a, b       string
		wantErr    error
	}{
		{"owns neither side", "mm-3", aliceID, bobID, apperror.ErrForbidden},
		{"seed and other matchmaker", "mm-1", carolID, bobID, apperror.ErrForbidden},
		{"same person", "mm-1", aliceID, aliceID, apperror.ErrValidation},
		{"malformed id", "mm-1", aliceID, "bob", apperror.ErrValidation},
		{"missing person", "mm-1", aliceID, missingID, apperror.ErrNotFound},
		{"inactive person", "mm-2", dormantID, bobID, apperror.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryRepository()
			svc := NewService(repo, seedPeople(), nil)

			_, err := svc.Create(context.Background(), tt.matchmaker, &CreateIntroductionRequest{PersonAID: tt.a, PersonBID: tt.b})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.intros)
		})
	}
}

func TestCreateIntroductionWithSeedProfile(t *testing.T) {
	svc := NewService(newMemoryRepository(), seedPeople(), nil)

	intro, err := svc.Create(context.Background(), "mm-1", &CreateIntroductionRequest{PersonAID: carolID, PersonBID: aliceID})

	require.NoError(t, err)
	assert.Equal(t, carolID, intro.PersonAID)
}

func TestCreateIntroductionStorageError(t *testing.T) {
	repo := newMemoryRepository()
	repo.createErr = apperror.Storage("create introduction", errors.New("disk full"))
	svc := NewService(repo, seedPeople(), nil)

	_, err := svc.Create(context.Background(), "mm-1", &CreateIntroductionRequest{PersonAID: aliceID, PersonBID: bobID})

	assert.True(t, apperror.IsStorage(err))
}

func TestUpdateIntroductionStatus(t *testing.T) {
	repo := newMemoryRepository()
	svc := NewService(repo, seedPeople(), nil)
	ctx := context.Background()

	intro, err := svc.Create(ctx, "mm-1", &CreateIntroductionRequest{PersonAID: aliceID, PersonBID: bobID})
	require.NoError(t, err)

	// The other side's matchmaker may move it along too.
	updated, err := svc.UpdateStatus(ctx, "mm-2", intro.ID, &UpdateStatusRequest{Status: StatusAccepted})
	require.NoError(t, err)
	assert.Equal(t, StatusAccepted, updated.Status)

	updated, err = svc.UpdateStatus(ctx, "mm-1", intro.ID, &UpdateStatusRequest{Status: StatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, updated.Status)

	_, err = svc.UpdateStatus(ctx, "mm-1", intro.ID, &UpdateStatusRequest{Status: StatusDeclined})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestUpdateIntroductionStatusRejections(t *testing.T) {
	repo := newMemoryRepository()
	svc := NewService(repo, seedPeople(), nil)
	ctx := context.Background()

	intro, err := svc.Create(ctx, "mm-1", &CreateIntroductionRequest{PersonAID: aliceID, PersonBID: bobID})
	require.NoError(t, err)

	tests := []struct {
		name       string
		matchmaker string
		id         string
		status     string
		wantErr    error
	}{
		{"outsider", "mm-3", intro.ID, StatusAccepted, apperror.ErrNotFound},
		{"unknown introduction", "mm-1", missingID, StatusAccepted, apperror.ErrNotFound},
		{"malformed id", "mm-1", "intro-1", StatusAccepted, apperror.ErrNotFound},
		{"back to pending", "mm-1", intro.ID, StatusPending, apperror.ErrValidation},
		{"skip to completed", "mm-1", intro.ID, StatusCompleted, apperror.ErrValidation},
		{"unknown status", "mm-1", intro.ID, "ghosted", apperror.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateStatus(ctx, tt.matchmaker, tt.id, &UpdateStatusRequest{Status: tt.status})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Equal(t, StatusPending, repo.intros[intro.ID].Status)
}

func TestListIntroductions(t *testing.T) {
	repo := newMemoryRepository()
	svc := NewService(repo, seedPeople(), nil)
	ctx := context.Background()

	first, err := svc.Create(ctx, "mm-1", &CreateIntroductionRequest{PersonAID: aliceID, PersonBID: bobID})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "mm-1", &CreateIntroductionRequest{PersonAID: aliceID, PersonBID: carolID})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, "mm-1", first.ID, &UpdateStatusRequest{Status: StatusDeclined})
	require.NoError(t, err)

	all, err := svc.List(ctx, "mm-1", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	declined, err := svc.List(ctx, "mm-1", StatusDeclined)
	require.NoError(t, err)
	require.Len(t, declined, 1)
	assert.Equal(t, first.ID, declined[0].ID)

	others, err := svc.List(ctx, "mm-2", "")
	require.NoError(t, err)
	assert.Empty(t, others)

	_, err = svc.List(ctx, "mm-1", "ghosted")
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusPending, StatusAccepted))
	assert.True(t, CanTransition(StatusPending, StatusDeclined))
	assert.True(t, CanTransition(StatusAccepted, StatusCompleted))
	assert.True(t, CanTransition(StatusAccepted, StatusDeclined))
	assert.False(t, CanTransition(StatusPending, StatusCompleted))
	assert.False(t, CanTransition(StatusDeclined, StatusAccepted))
	assert.False(t, CanTransition(StatusCompleted, StatusPending))
}
