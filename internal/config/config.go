package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"time"
)

// Config holds all runtime configuration values. Each field
// corresponds to an environment variable. Required values go through
// must(); everything with a sensible default is optional.
type Config struct {
	Env          string // application environment (e.g. "dev", "prod")
	Port         string // HTTP port to listen on
	JWTSecret    string // secret used to sign JWTs
	AccessTTLMin int    // access token time-to-live in minutes
	BcryptCost   int    // bcrypt cost for password hashing

	StoreBackend string // slot store backend: memory, redis or mysql

	DBUser string // database username (mysql backend)
	DBPass string // database password (optional)
	DBHost string // database host address
	DBPort string // database port number
	DBName string // database name

	CatalogBaseURL  string        // third-party movie metadata base URL
	CatalogAPIKey   string        // api_key query credential
	CatalogImages   string        // poster/profile image base URL
	CatalogBackdrop string        // backdrop image base URL
	CatalogTimeout  time.Duration // per-request HTTP timeout
}

// Load reads configuration values from environment variables and
// returns a Config. Missing required variables cause a fatal log.
func Load() Config {
	return Config{
		Env:          must("APP_ENV"),
		Port:         must("APP_PORT"),
		JWTSecret:    must("JWT_SECRET"),
		AccessTTLMin: mustInt("ACCESS_TOKEN_TTL_MIN"),
		BcryptCost:   mustInt("BCRYPT_COST"),

		StoreBackend: getenv("STORE_BACKEND", "memory"),

		DBUser: os.Getenv("DB_USER"),
		DBPass: os.Getenv("DB_PASS"),
		DBHost: os.Getenv("DB_HOST"),
		DBPort: os.Getenv("DB_PORT"),
		DBName: os.Getenv("DB_NAME"),

		CatalogBaseURL:  getenv("CATALOG_BASE_URL", "https://api.themoviedb.org/3"),
		CatalogAPIKey:   must("CATALOG_API_KEY"),
		CatalogImages:   getenv("CATALOG_IMAGE_BASE", "https://image.tmdb.org/t/p/w500"),
		CatalogBackdrop: getenv("CATALOG_BACKDROP_BASE", "https://image.tmdb.org/t/p/original"),
		CatalogTimeout:  parseDur(getenv("CATALOG_TIMEOUT", "10s")),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 10 * time.Second
	}
	return d
}
