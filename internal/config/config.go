package config

import (
	_ "github.com/joho/godotenv/autoload"
	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the process reads from the environment.
// Loaded once in main and passed down; nothing else reaches for os.Getenv.
type Config struct {
	Port int `envconfig:"PORT" default:"8080"`

	DBHost         string `envconfig:"DB_HOST" default:"localhost"`
	DBPort         string `envconfig:"DB_PORT" default:"5432"`
	DBUser         string `envconfig:"DB_USER" default:"postgres"`
	DBPassword     string `envconfig:"DB_PASSWORD"`
	DBDatabase     string `envconfig:"DB_DATABASE" default:"anka"`
	DBMaxOpenConns int    `envconfig:"DB_MAX_OPEN_CONNECTIONS" default:"10"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`
	AppEnv   string `envconfig:"APP_ENV" default:"local"`
}

func Load() (Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	return c, err
}
