package people

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/imadgeboyega/kiekky-matchmaker/internal/common/apperror"
)

type memoryRepository struct {
	mu      sync.Mutex
	people  map[string]*Person
	failGet error
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{people: map[string]*Person{}}
}

func (m *memoryRepository) Create(_ context.Context, p *Person) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.people[p.ID] = &cp
	return nil
}

func (m *memoryRepository) Get(_ context.Context, id string) (*Person, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet != nil {
		return nil, m.failGet
	}
	p, ok := m.people[id]
	if !ok {
		return nil, fmt.Errorf("person %s: %w", id, apperror.ErrNotFound)
	}
	cp := *p
	return &cp, nil
}

func (m *memoryRepository) ListByMatchmaker(_ context.Context, matchmakerID string, includeInactive bool) ([]*Person, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Person
	for _, p := range m.people {
		if p.OwnedBy(matchmakerID) && (includeInactive || p.Active) {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryRepository) ListActiveExcluding(_ context.Context, excludeID string) ([]*Person, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Person
	for _, p := range m.people {
		if p.Active && p.ID != excludeID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memoryRepository) Update(_ context.Context, id string, req *UpdatePersonRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.people[id]
	if !ok {
		return apperror.ErrNotFound
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Age != nil {
		p.Age = req.Age
	}
	if req.Location != nil {
		p.Location = req.Location
	}
	if req.Gender != nil {
		p.Gender = req.Gender
	}
	if req.Preferences != nil {
		p.Preferences = req.Preferences
	}
	if req.Notes != nil {
		p.Notes = req.Notes
	}
	return nil
}

func (m *memoryRepository) Deactivate(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.people[id]
	if !ok {
		return apperror.ErrNotFound
	}
	p.Active = false
	return nil
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestServiceCreate(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	repo := newMemoryRepository()
	svc := NewService(repo, zap.New(core))
	ctx := context.Background()

	p, err := svc.Create(ctx, "mm-1", &CreatePersonRequest{
		Name:        "  Alice ",
		Age:         intPtr(27),
		Location:    strPtr("NYC"),
		Gender:      strPtr("  "),
		Preferences: json.RawMessage(`{"dealBreakers":["smoker"]}`),
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice", p.Name)
	assert.True(t, p.Active)
	assert.True(t, p.OwnedBy("mm-1"))
	assert.Nil(t, p.Gender)
	assert.Len(t, repo.people, 1)

	entries := logs.FilterMessage("person created").All()
	require.Len(t, entries, 1)
	assert.Equal(t, p.ID, entries[0].ContextMap()["person_id"])
}

func TestServiceCreateValidation(t *testing.T) {
	svc := NewService(newMemoryRepository(), nil)
	ctx := context.Background()

	tests := []struct {
		name string
		req  *CreatePersonRequest
	}{
		{"missing name", &CreatePersonRequest{}},
		{"under age", &CreatePersonRequest{Name: "Bob", Age: intPtr(17)}},
		{"array preferences", &CreatePersonRequest{Name: "Bob", Preferences: json.RawMessage(`[1,2]`)}},
		{"string personality", &CreatePersonRequest{Name: "Bob", Personality: json.RawMessage(`"warm"`)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, "mm-1", tt.req)
			assert.ErrorIs(t, err, apperror.ErrValidation)
		})
	}
}

func TestServiceOwnershipFoldsIntoNotFound(t *testing.T) {
	repo := newMemoryRepository()
	svc := NewService(repo, nil)
	ctx := context.Background()

	p, err := svc.Create(ctx, "mm-1", &CreatePersonRequest{Name: "Alice"})
	require.NoError(t, err)

	repo.people["00000000-0000-0000-0000-000000000001"] = &Person{ID: "00000000-0000-0000-0000-000000000001", Name: "Seed", Active: true}

	_, err = svc.Get(ctx, "mm-2", p.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = svc.Get(ctx, "mm-1", "00000000-0000-0000-0000-000000000001")
	assert.ErrorIs(t, err, apperror.ErrNotFound, "seed profiles are not editable by anyone")

	_, err = svc.Get(ctx, "mm-1", "not-a-uuid")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	err = svc.Deactivate(ctx, "mm-2", p.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.True(t, repo.people[p.ID].Active)

	got, err := svc.Get(ctx, "mm-1", p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
}

func TestServiceUpdateAndDeactivate(t *testing.T) {
	repo := newMemoryRepository()
	svc := NewService(repo, nil)
	ctx := context.Background()

	p, err := svc.Create(ctx, "mm-1", &CreatePersonRequest{Name: "Alice"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "mm-1", p.ID, &UpdatePersonRequest{Name: strPtr(" Alicia "), Age: intPtr(30)})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Name)
	assert.Equal(t, 30, *updated.Age)

	unchanged, err := svc.Update(ctx, "mm-1", p.ID, &UpdatePersonRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", unchanged.Name)

	require.NoError(t, svc.Deactivate(ctx, "mm-1", p.ID))

	active, err := svc.List(ctx, "mm-1", false)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := svc.List(ctx, "mm-1", true)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestServiceSurfacesStorageErrors(t *testing.T) {
	repo := newMemoryRepository()
	repo.failGet = apperror.Storage("get person", fmt.Errorf("connection refused"))
	svc := NewService(repo, nil)

	_, err := svc.Get(context.Background(), "mm-1", "00000000-0000-0000-0000-000000000001")
	assert.True(t, apperror.IsStorage(err))
}
