package store

import (
	"sync"

	"github.com/smartclass/sentinel_backend/internal/models"
)

// RecordStore holds the in-memory, append-only sequence of attendance
// records. The capture controller is the only writer; everything else
// (analytics, export, websocket feed) reads copies.
type RecordStore struct {
	mu      sync.RWMutex
	records []models.AttendanceRecord
}

func NewRecordStore() *RecordStore {
	return &RecordStore{}
}

// Append adds one record to the end of the sequence.
func (s *RecordStore) Append(rec models.AttendanceRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
}

// Load replaces the whole sequence, used once at startup to restore
// archived records.
func (s *RecordStore) Load(records []models.AttendanceRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make([]models.AttendanceRecord, len(records))
	copy(s.records, records)
}

// Records returns a copy of the full sequence. Readers never observe an
// append half-applied.
func (s *RecordStore) Records() []models.AttendanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.AttendanceRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records.
func (s *RecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
