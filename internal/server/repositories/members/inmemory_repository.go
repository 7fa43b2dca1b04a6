package members

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/dmitrijs2005/firstweek/internal/server/models"
)

// InMemoryRepository keeps members in a map. IDs are assigned from a
// monotonically increasing counter and are never reused.
type InMemoryRepository struct {
	mu     sync.RWMutex
	lastID int64
	rows   map[int64]models.Member
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{rows: make(map[int64]models.Member)}
}

func (r *InMemoryRepository) Save(_ context.Context, member *models.Member) (*models.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[member.ID]; !ok || member.IsNew() {
		r.lastID++
		member.ID = r.lastID
	}
	r.rows[member.ID] = *member

	return member, nil
}

func (r *InMemoryRepository) FindByID(_ context.Context, id int64) (*models.Member, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.rows[id]
	if !ok {
		return nil, false, nil
	}
	return &m, true, nil
}

func (r *InMemoryRepository) FindAll(_ context.Context) ([]models.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Member, 0, len(r.rows))
	for _, id := range slices.Sorted(maps.Keys(r.rows)) {
		result = append(result, r.rows[id])
	}
	return result, nil
}

func (r *InMemoryRepository) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.rows, id)
	return nil
}
