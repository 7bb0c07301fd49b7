package main

import (
	"log"
	"net/http"
	"os"

	"wearable-backend/internal/database"
	"wearable-backend/internal/handlers"
	"wearable-backend/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	log.Println("═══════════════════════════════════════════════════════════════════")
	log.Println("🚀 SMART WEARABLE BACKEND STARTING")
	log.Println("═══════════════════════════════════════════════════════════════════")

	// Load .env file
	log.Println("📂 Loading environment variables...")
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  Warning: .env file not found, using environment variables from system")
	} else {
		log.Println("✅ .env file loaded successfully")
	}

	// Pick the record store: Postgres when DATABASE_URL is configured,
	// otherwise the in-memory store (demo mode, no durability).
	var recordStore store.Store
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Println("⚠️  DATABASE_URL not set, running on the in-memory store")
		recordStore = store.NewMemoryStore()
	} else {
		log.Println("🔌 Connecting to database...")
		db, err := database.Connect(dbURL)
		if err != nil {
			log.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
			log.Println("❌ FATAL ERROR: Database connection failed")
			log.Printf("   Error: %v", err)
			log.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
			log.Fatal(err)
		}
		defer db.Close()
		log.Println("✅ Database connection established")

		log.Println("🔄 Running database migrations...")
		if err := database.Migrate(db); err != nil {
			log.Println("❌ FATAL ERROR: Database migrations failed")
			log.Fatal(err)
		}
		log.Println("✅ Database migrations completed")

		recordStore = database.NewPostgresStore(db)
	}

	// Seed demo data (idempotent; also exposed as POST /seed)
	log.Println("🌱 Seeding demo data...")
	if err := database.Seed(recordStore); err != nil {
		log.Println("❌ FATAL ERROR: Seeding failed")
		log.Fatal(err)
	}
	log.Println("✅ Demo data seeded")

	r := handlers.NewRouter(recordStore)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
		log.Printf("⚠️  PORT not set, using default: %s", port)
	}

	log.Println("═══════════════════════════════════════════════════════════════════")
	log.Println("✅ ALL INITIALIZATION COMPLETE")
	log.Printf("🚀 Server starting on http://localhost:%s", port)
	log.Println("═══════════════════════════════════════════════════════════════════")

	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Println("❌ FATAL ERROR: Server failed to start")
		log.Fatal(err)
	}
}
