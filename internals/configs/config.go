package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Auth modes. Exactly one token validator is active per deployment.
const (
	AuthModeLocal  = "local"
	AuthModeRemote = "remote"
)

var (
	MongoDBURL      string
	MongoDBName     string
	JWTSecret       string
	JWTAlgorithm    string
	AuthMode        string
	IdentityBaseURL string
	AllowedOrigins  string
	Host            string
	Port            string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, using system ENV")
	} else {
		log.Println("[INFO] .env file loaded")
	}

	MongoDBURL = GetEnv("MONGODB_URL", "mongodb://localhost:27017")
	MongoDBName = GetEnv("MONGODB_DB_NAME", "grades_db")
	JWTSecret = GetEnv("JWT_SECRET")
	JWTAlgorithm = GetEnv("JWT_ALGORITHM", "HS256")
	AuthMode = GetEnv("AUTH_MODE", AuthModeRemote)
	IdentityBaseURL = GetEnv("IDENTITY_BASE_URL", "http://localhost:8080")
	AllowedOrigins = GetEnv("ALLOWED_ORIGINS", "http://localhost:5173")
	Host = GetEnv("HOST", "0.0.0.0")
	Port = GetEnv("PORT", "8000")

	if AuthMode != AuthModeLocal && AuthMode != AuthModeRemote {
		log.Fatalf("[ERROR] AUTH_MODE must be %q or %q, got %q", AuthModeLocal, AuthModeRemote, AuthMode)
	}
	if AuthMode == AuthModeLocal && JWTSecret == "" {
		log.Fatal("[ERROR] JWT_SECRET is required when AUTH_MODE=local")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
