// Package capture runs the recurring detection cycle and turns raw detection
// events into attendance records, at most one per student per session.
package capture

import (
	"context"
	"log"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/smartclass/sentinel_backend/internal/models"
	"github.com/smartclass/sentinel_backend/internal/store"
)

// DefaultInterval is how often a detection pass fires.
const DefaultInterval = 2 * time.Second

// Detection is one recognition tuple reported by the detector collaborator.
type Detection struct {
	StudentID  string  `json:"student_id"`
	Emotion    string  `json:"emotion"`
	Confidence float64 `json:"confidence"`
}

// Detector supplies zero or more detections per pass. An error degrades the
// pass to zero detections; it never stops the capture loop.
type Detector interface {
	Detect(ctx context.Context) ([]Detection, error)
}

// Status describes the current capture run.
type Status struct {
	Running   bool   `json:"running"`
	SessionID string `json:"session_id,omitempty"`
	Attendees int    `json:"attendees"`
}

// Controller owns the per-session dedup state and the tick loop. A single
// goroutine executes passes, so passes never overlap and the dedup
// check-then-append is never interleaved.
type Controller struct {
	detector Detector
	store    *store.RecordStore
	roster   *store.Roster
	interval time.Duration
	onRecord []func(models.AttendanceRecord)

	mu        sync.Mutex
	running   bool
	sessionID string
	attendees map[string]struct{}
	cancel    context.CancelFunc
	done      chan struct{}
}

func New(detector Detector, records *store.RecordStore, roster *store.Roster, interval time.Duration) *Controller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Controller{
		detector: detector,
		store:    records,
		roster:   roster,
		interval: interval,
	}
}

// OnRecord registers a hook invoked after each successful append, outside the
// controller lock. Register hooks before the first Start.
func (c *Controller) OnRecord(fn func(models.AttendanceRecord)) {
	c.onRecord = append(c.onRecord, fn)
}

// Start begins a new capture session and returns its id. Calling Start while
// a session is already running is a no-op and returns the active id.
func (c *Controller) Start() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return c.sessionID
	}

	c.sessionID = uuid.NewString()
	c.attendees = make(map[string]struct{})
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.done = make(chan struct{})
	c.running = true

	go c.run(ctx)
	log.Println("capture: session started:", c.sessionID)
	return c.sessionID
}

// Stop halts the detection cycle. An in-flight pass may finish, but no new
// pass starts after Stop returns.
func (c *Controller) Stop() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.running = false
	cancel := c.cancel
	done := c.done
	sessionID := c.sessionID
	c.mu.Unlock()

	cancel()
	<-done
	log.Println("capture: session stopped:", sessionID)
}

// Status reports the current run state.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := Status{Running: c.running, Attendees: len(c.attendees)}
	if c.running {
		st.SessionID = c.sessionID
	}
	return st
}

func (c *Controller) run(ctx context.Context) {
	defer close(c.done)
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.pass(ctx)
		}
	}
}

// pass performs one detection cycle: query the detector, then append a record
// for every newly seen student.
func (c *Controller) pass(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	detections, err := c.detector.Detect(ctx)
	if err != nil {
		log.Printf("capture: detection pass failed: %v", err)
		return
	}

	c.mu.Lock()
	appended := make([]models.AttendanceRecord, 0, len(detections))
	for _, d := range detections {
		if _, seen := c.attendees[d.StudentID]; seen {
			continue
		}
		student, ok := c.roster.Get(d.StudentID)
		if !ok {
			log.Printf("capture: detection for unknown student %q ignored", d.StudentID)
			continue
		}
		if !models.ValidEmotion(d.Emotion) {
			log.Printf("capture: detection with unknown emotion %q ignored", d.Emotion)
			continue
		}

		rec := models.AttendanceRecord{
			ID:          uuid.NewString(),
			StudentID:   student.ID,
			StudentName: student.Name,
			Timestamp:   time.Now(),
			Emotion:     d.Emotion,
			Confidence:  clampConfidence(d.Confidence),
			SessionID:   c.sessionID,
		}
		c.store.Append(rec)
		c.attendees[student.ID] = struct{}{}
		appended = append(appended, rec)
	}
	c.mu.Unlock()

	for _, rec := range appended {
		for _, fn := range c.onRecord {
			fn(rec)
		}
	}
}

// clampConfidence forces confidence into [0,1] and rounds to 2 decimals.
func clampConfidence(v float64) float64 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return math.Round(v*100) / 100
}
