package config // package config loads application configuration from environment variables

import (
    "log" // log is used to report configuration errors and halt execution
    "os"  // os provides access to environment variables

    "github.com/joho/godotenv" // godotenv loads a local .env file when present

    "github.com/avionix/cabin-seat-booking/internal/model" // model supplies the layout parser
)

// Config holds runtime configuration for the HTTP server.  Each field
// corresponds to an environment variable.  Redis, cache and rate limit
// settings have their own loaders in this package.
type Config struct {
    Env  string // application environment (e.g. "dev", "prod")
    Port string // HTTP port to listen on
}

// Load reads configuration values from environment variables and
// returns a Config.  A .env file in the working directory is loaded
// first if one exists.  Required variables are enforced by must() and
// missing values cause the program to exit with a fatal log message.
func Load() Config {
    _ = godotenv.Load() // best effort; the environment wins over the file
    return Config{
        Env:  must("APP_ENV"),  // environment (dev/test/prod)
        Port: must("APP_PORT"), // port to bind the HTTP server
    }
}

// LoadLayout builds the cabin layout from the CABIN_LAYOUT variable,
// falling back to the reference 7x4 cabin when unset.  The spec format
// is one rune per seat (F free, X aisle, S storage), rows separated by
// semicolons; see model.ParseLayout.
func LoadLayout() (model.Layout, error) {
    return model.ParseLayout(getenv("CABIN_LAYOUT", model.DefaultLayoutSpec))
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}
