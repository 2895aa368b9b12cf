package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartclass/sentinel_backend/internal/models"
)

func TestRecordStoreAppendAndRead(t *testing.T) {
	s := NewRecordStore()
	assert.Equal(t, 0, s.Len())

	s.Append(models.AttendanceRecord{ID: "r1", StudentID: "s1", Timestamp: time.Now()})
	s.Append(models.AttendanceRecord{ID: "r2", StudentID: "s2", Timestamp: time.Now()})

	got := s.Records()
	require.Len(t, got, 2)
	assert.Equal(t, "r1", got[0].ID)
	assert.Equal(t, "r2", got[1].ID)
}

func TestRecordStoreReturnsCopies(t *testing.T) {
	s := NewRecordStore()
	s.Append(models.AttendanceRecord{ID: "r1", StudentID: "s1"})

	got := s.Records()
	got[0].StudentID = "tampered"

	assert.Equal(t, "s1", s.Records()[0].StudentID)
}

func TestRecordStoreConcurrentAppendsAndReads(t *testing.T) {
	s := NewRecordStore()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Append(models.AttendanceRecord{ID: fmt.Sprintf("r-%d-%d", n, j)})
				_ = s.Records()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1000, s.Len())
}

func TestRecordStoreLoadReplaces(t *testing.T) {
	s := NewRecordStore()
	s.Append(models.AttendanceRecord{ID: "old"})

	s.Load([]models.AttendanceRecord{{ID: "a"}, {ID: "b"}})

	got := s.Records()
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
}

func TestRosterReplaceAndGet(t *testing.T) {
	r := NewRoster()
	assert.Equal(t, 0, r.Len())

	r.Replace([]models.Student{
		{ID: "s1", Name: "Riya Sen"},
		{ID: "s2", Name: "Aryan Das"},
	})

	assert.Equal(t, 2, r.Len())
	got, ok := r.Get("s1")
	require.True(t, ok)
	assert.Equal(t, "Riya Sen", got.Name)

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestRosterStudentsReturnsCopy(t *testing.T) {
	r := NewRoster()
	r.Replace([]models.Student{{ID: "s1", Name: "Riya Sen"}})

	got := r.Students()
	got[0].Name = "tampered"

	assert.Equal(t, "Riya Sen", r.Students()[0].Name)
}
