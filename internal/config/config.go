package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-required:"true"`
	API        API    `yaml:"api"`
	HTTPServer `yaml:"http_server"`
}

// API describes the games/ads backend the form talks to.
type API struct {
	BaseURL string        `yaml:"base_url" env:"API_URL" env-required:"true"`
	Timeout time.Duration `yaml:"timeout" env:"API_TIMEOUT" env-default:"10s"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

func MustLoad() *Config {
	configPath := flag.String("config", "", "path to config yaml file")
	flag.Parse()

	if *configPath == "" {
		*configPath = os.Getenv("CONFIG_PATH")
	}
	if *configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	cfg, err := Load(*configPath, ".env")
	if err != nil {
		log.Fatalf("cannot read config: %s - %s", *configPath, err)
	}

	return cfg
}

// Load reads the yaml file at path, letting environment variables override it.
// Dotenv files are loaded first when they exist; variables already set in the
// process environment win over them.
func Load(path string, dotenv ...string) (*Config, error) {
	const op = "config.Load"

	for _, f := range dotenv {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: config file does not exist: %s", op, path)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}
