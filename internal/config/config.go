package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config agrupa toda la configuración del proceso; se lee una sola vez al arrancar.
type Config struct {
	Port        string   `env:"PORT" envDefault:"3000"`
	FrontendURL []string `env:"FRONTEND_URL" envSeparator:"," envDefault:"http://localhost:5173,http://localhost:4173"`

	ShutdownGrace time.Duration `env:"SHUTDOWN_GRACE" envDefault:"1500ms"`

	Log      Log
	Database Database
	AI       AI
	Auth     Auth

	// Umbral heurístico anti-basura para fotos decodificadas.
	MinImageBytes int `env:"MIN_IMAGE_BYTES" envDefault:"512"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
	App    string `env:"APP_NAME" envDefault:"pet-identifier"`
}

// Database: si URL está vacía se usan repos in-memory (modo dev).
type Database struct {
	URL             string        `env:"DATABASE_URL"`
	Bootstrap       bool          `env:"DB_BOOTSTRAP" envDefault:"true"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
	ConnectTimeout  time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"3s"`
}

// AI describe el proveedor de clasificación. Provider se elige explícitamente.
type AI struct {
	Provider string        `env:"AI_PROVIDER" envDefault:"generic"`
	Timeout  time.Duration `env:"AI_TIMEOUT" envDefault:"30s"`

	APIURL string `env:"AI_API_URL"`
	APIKey string `env:"AI_API_KEY"`
	Model  string `env:"AI_MODEL"`

	HFToken   string `env:"HF_TOKEN"`
	HFBaseURL string `env:"HF_BASE_URL" envDefault:"https://router.huggingface.co/hf-inference/models"`

	ReplicateAPIKey       string        `env:"REPLICATE_API_KEY"`
	ReplicateModel        string        `env:"REPLICATE_MODEL"`
	ReplicateBaseURL      string        `env:"REPLICATE_BASE_URL" envDefault:"https://api.replicate.com/v1"`
	ReplicatePollInterval time.Duration `env:"REPLICATE_POLL_INTERVAL" envDefault:"1s"`
}

type Auth struct {
	PepperSecret string        `env:"PEPPER_SECRET"`
	BcryptRounds int           `env:"BCRYPT_ROUNDS" envDefault:"10"`
	JWTSecret    string        `env:"JWT_SECRET"`
	JWTTTL       time.Duration `env:"JWT_TTL" envDefault:"24h"`
}

// Load lee la configuración desde variables de entorno.
func Load() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.AI.Provider = strings.ToLower(strings.TrimSpace(cfg.AI.Provider))
	origins := make([]string, 0, len(cfg.FrontendURL))
	for _, o := range cfg.FrontendURL {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	cfg.FrontendURL = origins

	if cfg.Auth.BcryptRounds < 4 || cfg.Auth.BcryptRounds > 31 {
		return nil, fmt.Errorf("BCRYPT_ROUNDS out of range: %d", cfg.Auth.BcryptRounds)
	}
	if cfg.MinImageBytes < 0 {
		cfg.MinImageBytes = 0
	}

	return &cfg, nil
}

func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}
