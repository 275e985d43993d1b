package webapi

import "github.com/spf13/viper"

// Environment variable defaults. The service reads its configuration once
// at startup and never mutates it afterwards.
const (
	DefaultVersion     = "1.0.0"
	DefaultEnvironment = "development"
	DefaultPort        = 5000
	DefaultCommit      = "unknown"
)

// Config holds the environment-supplied service configuration.
type Config struct {
	Version     string
	Environment string
	Port        int
	Commit      string
}

// LoadConfig reads APP_VERSION, ENVIRONMENT, PORT, and GIT_COMMIT from the
// environment, applying documented defaults for anything unset.
func LoadConfig() Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("APP_VERSION", DefaultVersion)
	v.SetDefault("ENVIRONMENT", DefaultEnvironment)
	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("GIT_COMMIT", DefaultCommit)

	return Config{
		Version:     v.GetString("APP_VERSION"),
		Environment: v.GetString("ENVIRONMENT"),
		Port:        v.GetInt("PORT"),
		Commit:      v.GetString("GIT_COMMIT"),
	}
}
