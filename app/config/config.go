package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Config holds the application-wide settings and the shared DB pool.
type Config struct {
	DB            *sql.DB
	ListenAddr    string
	SessionSecret string
}

var AppConfig *Config

// AllComponents is the fixed universe of selectable evaluation components.
// It is a configuration constant, not derived from the component table: the
// component-performance page offers all of these regardless of which ones a
// given course actually defines.
var AllComponents = []string{"CT1", "CT2", "DA1", "DA2", "EXT", "REM", "ATT", "AA"}

// ProgramNameFilter restricts the program dropdown to the degree tracks this
// deployment reports on.
const ProgramNameFilter = "B.TECH"

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads .env (when present) and environment variables into AppConfig.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	AppConfig = &Config{
		ListenAddr:    getenv("LISTEN_ADDR", ":8080"),
		SessionSecret: getenv("SESSION_SECRET", "academic-results-secret-key"),
	}
}

// InitDB opens the PostgreSQL pool and verifies connectivity.
func InitDB() {
	if AppConfig == nil {
		Load()
	}

	host := getenv("DB_HOST", "localhost")
	port := getenv("DB_PORT", "5432")
	user := getenv("DB_USER", "postgres")
	password := os.Getenv("DB_PASSWORD")
	dbname := getenv("DB_NAME", "academic")

	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable connect_timeout=60", host, port, user, dbname)
	if password != "" {
		psqlInfo += " password=" + password
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatal("Database connection failed:", err)
	}
	log.Printf("Connected to database %s at %s:%s", dbname, host, port)

	AppConfig.DB = db
}

// GetDB returns the shared database pool.
func GetDB() *sql.DB {
	if AppConfig == nil {
		return nil
	}
	return AppConfig.DB
}
