package registrants

import (
	"context"
	"sync"
)

// MemoryRepository is an in-memory Repository used by tests and local
// experiments. It enforces the same email uniqueness the database does.
type MemoryRepository struct {
	mu      sync.Mutex
	nextID  uint
	byID    map[uint]Registrant
	byEmail map[string]uint
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		nextID:  1,
		byID:    make(map[uint]Registrant),
		byEmail: make(map[string]uint),
	}
}

func (m *MemoryRepository) Create(_ context.Context, registrant *Registrant) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byEmail[registrant.Email]; ok {
		return ErrDuplicateEmail
	}

	registrant.ID = m.nextID
	m.nextID++
	m.byID[registrant.ID] = *registrant
	m.byEmail[registrant.Email] = registrant.ID
	return nil
}

func (m *MemoryRepository) GetByID(_ context.Context, id uint) (*Registrant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	registrant, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return m.projection(registrant), nil
}

func (m *MemoryRepository) GetByEmail(_ context.Context, email string) (*Registrant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id, ok := m.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	registrant := m.byID[id]
	return m.projection(registrant), nil
}

func (m *MemoryRepository) EmailExists(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.byEmail[email]
	return ok, nil
}

// Count reports the number of stored rows. Test helper.
func (m *MemoryRepository) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byID)
}

// projection mirrors the column selection of the SQL lookups.
func (m *MemoryRepository) projection(r Registrant) *Registrant {
	return &Registrant{
		ID:        r.ID,
		FirstName: r.FirstName,
		Email:     r.Email,
	}
}
