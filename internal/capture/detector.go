package capture

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/smartclass/sentinel_backend/internal/models"
	"github.com/smartclass/sentinel_backend/internal/store"
)

// DetectorFunc adapts a plain function to the Detector interface.
type DetectorFunc func(ctx context.Context) ([]Detection, error)

func (f DetectorFunc) Detect(ctx context.Context) ([]Detection, error) {
	return f(ctx)
}

// HTTPDetector queries an external face recognition service for the current
// set of recognized students.
type HTTPDetector struct {
	url    string
	client *http.Client
}

type detectResponse struct {
	Detections []Detection `json:"detections"`
}

func NewHTTPDetector(url string, timeout time.Duration) *HTTPDetector {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPDetector{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (d *HTTPDetector) Detect(ctx context.Context) ([]Detection, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("recognizer request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recognizer returned status %d", resp.StatusCode)
	}

	var body detectResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode recognizer response: %w", err)
	}
	return body.Detections, nil
}

// SimulatedDetector is the demo-mode stand-in for a real recognizer. Each
// pass has a 40% chance of recognizing one random roster student with a
// random emotion and a confidence in [0.7, 1.0].
type SimulatedDetector struct {
	roster *store.Roster

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewSimulatedDetector(roster *store.Roster) *SimulatedDetector {
	return &SimulatedDetector{
		roster: roster,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (d *SimulatedDetector) Detect(ctx context.Context) ([]Detection, error) {
	students := d.roster.Students()
	if len(students) == 0 {
		return nil, nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.rnd.Float64() <= 0.6 {
		return nil, nil
	}
	student := students[d.rnd.Intn(len(students))]
	emotion := models.Emotions[d.rnd.Intn(len(models.Emotions))]
	confidence := d.rnd.Float64()*0.3 + 0.7
	return []Detection{{
		StudentID:  student.ID,
		Emotion:    emotion,
		Confidence: confidence,
	}}, nil
}
