package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	Backend    Backend `yaml:"backend"`
	Wizard     Wizard  `yaml:"wizard"`
	Events     Events  `yaml:"events"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8082"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Backend points at the Eventify API service that owns all business logic.
type Backend struct {
	URL     string        `yaml:"url" env:"BACKEND_URL" env-default:"http://localhost:8080"`
	Timeout time.Duration `yaml:"timeout" env-default:"10s"`
}

type Wizard struct {
	DraftTTL      time.Duration `yaml:"draft_ttl" env-default:"2h"`
	SweepInterval time.Duration `yaml:"sweep_interval" env-default:"1m"`
	MaxPosterSize int64         `yaml:"max_poster_size" env-default:"10485760"`
}

type Events struct {
	PageSize int `yaml:"page_size" env-default:"6"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
