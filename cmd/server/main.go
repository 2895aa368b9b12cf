package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/gin-gonic/gin"

	"github.com/smartclass/sentinel_backend/internal/ai"
	"github.com/smartclass/sentinel_backend/internal/capture"
	"github.com/smartclass/sentinel_backend/internal/config"
	"github.com/smartclass/sentinel_backend/internal/database"
	"github.com/smartclass/sentinel_backend/internal/routes"
	"github.com/smartclass/sentinel_backend/internal/store"
	"github.com/smartclass/sentinel_backend/internal/ws"
)

func main() {
	// Load .env (non-fatal if missing in production)
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	if err := database.SeedStudents(db); err != nil {
		log.Fatalf("roster seed failed: %v", err)
	}

	roster := store.NewRoster()
	students, err := database.LoadStudents(db)
	if err != nil {
		log.Fatalf("roster load failed: %v", err)
	}
	roster.Replace(students)

	records := store.NewRecordStore()
	archived, err := database.LoadRecords(db)
	if err != nil {
		log.Fatalf("record load failed: %v", err)
	}
	records.Load(archived)
	log.Printf("loaded %d students, %d archived records", len(students), len(archived))

	hub := ws.NewLiveHub()
	go hub.Run()

	var detector capture.Detector
	if cfg.RecognizerURL != "" {
		detector = capture.NewHTTPDetector(cfg.RecognizerURL, cfg.RecognizerTimeout)
	} else {
		log.Println("no recognizer configured, using simulated detector")
		detector = capture.NewSimulatedDetector(roster)
	}

	capt := capture.New(detector, records, roster, cfg.CaptureInterval)
	capt.OnRecord(hub.BroadcastRecord)
	archiver := database.NewArchiver(db)
	capt.OnRecord(archiver.Archive)

	aiClient := ai.NewClient(cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel, cfg.AITimeout)

	r := gin.Default()
	routes.Register(r, routes.Deps{
		DB:      db,
		Store:   records,
		Roster:  roster,
		Capture: capt,
		AI:      aiClient,
		Hub:     hub,
	})

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Println("server exited with error:", err)
		os.Exit(1)
	}
}
