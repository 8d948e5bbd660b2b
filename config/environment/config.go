package environment

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"

	DriverFirestore = "firestore"
	DriverSQLite    = "sqlite"
	DriverMemory    = "memory"
)

type Config struct {
	Env         string
	Port        string
	JWTSecret   string
	StoreDriver string
	LogLevel    string
	CORSOrigins []string

	FirebaseCredentials string // base64 encoded service account JSON
	FirebaseProjectID   string

	SQLitePath string
}

func (c Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// LoadDotEnv loads a .env file if there is one. Variables already set in the
// environment win.
func LoadDotEnv(files ...string) bool {
	return godotenv.Load(files...) == nil
}

// Load reads the configuration from the environment and checks it.
func Load() (Config, error) {
	cfg := Config{
		Env:                 Get("APP_ENV", EnvDevelopment),
		Port:                Get("PORT", "8080"),
		JWTSecret:           GetJWTSecret(),
		StoreDriver:         strings.ToLower(Get("STORE_DRIVER", DriverFirestore)),
		LogLevel:            Get("LOG_LEVEL", "info"),
		CORSOrigins:         splitList(Get("CORS_ORIGINS", "*")),
		FirebaseCredentials: GetFirebaseKey(),
		FirebaseProjectID:   GetFirebaseProjectID(),
		SQLitePath:          Get("SQLITE_PATH", "./expenses.db"),
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET environment variable is missing"))
	}
	switch c.StoreDriver {
	case DriverFirestore:
		if c.FirebaseCredentials == "" {
			errs = append(errs, errors.New("FIREBASE_CREDENTIALS_BASE64 environment variable is missing"))
		}
		if c.FirebaseProjectID == "" {
			errs = append(errs, errors.New("FIREBASE_PROJECT_ID environment variable is missing"))
		}
	case DriverSQLite, DriverMemory:
	default:
		errs = append(errs, errors.New("STORE_DRIVER must be one of firestore, sqlite, memory"))
	}
	return errors.Join(errs...)
}

func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetJWTSecret() string {
	return os.Getenv("JWT_SECRET")
}

func GetFirebaseKey() string {
	return os.Getenv("FIREBASE_CREDENTIALS_BASE64")
}

func GetFirebaseProjectID() string {
	return os.Getenv("FIREBASE_PROJECT_ID")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
