package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	SupabaseURL       string
	SupabaseAnonKey   string
	SupabaseJWTSecret string
	Port              string
	PrefsFile         string
}

// Load reads configuration from the environment. A .env file is honored when
// present but not required.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		SupabaseURL:       os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey:   os.Getenv("SUPABASE_ANON_KEY"),
		SupabaseJWTSecret: os.Getenv("SUPABASE_JWT_SECRET"),
		Port:              getEnv("PORT", "8080"),
		PrefsFile:         getEnv("PREFS_FILE", "preferences.json"),
	}
}

// Configured reports whether the hosted store credentials are present. When
// they are not, the application runs with a disabled store instead of
// refusing to start.
func (c *Config) Configured() bool {
	return c.SupabaseURL != "" && c.SupabaseAnonKey != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
