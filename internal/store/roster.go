package store

import (
	"sync"

	"github.com/smartclass/sentinel_backend/internal/models"
)

// Roster caches the student universe in memory so the capture loop and the
// analytics endpoints never hit the database on the hot path. Refreshed from
// the database whenever the roster changes.
type Roster struct {
	mu       sync.RWMutex
	students []models.Student
	byID     map[string]models.Student
}

func NewRoster() *Roster {
	return &Roster{byID: make(map[string]models.Student)}
}

// Replace swaps in a new roster snapshot.
func (r *Roster) Replace(students []models.Student) {
	byID := make(map[string]models.Student, len(students))
	for _, s := range students {
		byID[s.ID] = s
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.students = make([]models.Student, len(students))
	copy(r.students, students)
	r.byID = byID
}

// Students returns a copy of the roster.
func (r *Roster) Students() []models.Student {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Student, len(r.students))
	copy(out, r.students)
	return out
}

// Get looks a student up by id.
func (r *Roster) Get(id string) (models.Student, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byID[id]
	return s, ok
}

// Len returns the roster size.
func (r *Roster) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.students)
}
