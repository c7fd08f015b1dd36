package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	APIPort  int `yaml:"apiPort"`
	Database struct {
		Type     string `yaml:"type"`
		Path     string `yaml:"path"`
		WALMode  bool   `yaml:"walMode"`
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		Name     string `yaml:"name"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		SSLMode  string `yaml:"sslMode"`
	} `yaml:"database"`
	Auth struct {
		JWTSecret       string `yaml:"jwtSecret"`
		TokenTTLMinutes int    `yaml:"tokenTTLMinutes"`
	} `yaml:"auth"`
	Seed bool `yaml:"seed"`
}

// LoadConfig loads the configuration from file and environment variables.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set up config file handling
	v.SetConfigFile(path)   // Use the full path to the config file
	v.SetConfigType("yaml") // Set the config type to yaml
	v.AutomaticEnv()        // Read in environment variables that match
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Try to read the config file
	if err := v.ReadInConfig(); err != nil {
		// If the file doesn't exist or is invalid, return an error
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		log.Printf("Warning: Could not read config file: %s. Using defaults or environment variables.", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Set default port if not specified
	if cfg.APIPort == 0 {
		cfg.APIPort = 8080 // Default port
		log.Println("APIPort not specified, using default 8080")
	}

	// Set default database type if not specified
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
		log.Println("Database type not specified, using default sqlite")
	}

	// Set default database path if not specified
	if cfg.Database.Type == "sqlite" && cfg.Database.Path == "" {
		cfg.Database.Path = "./data/savasana.db"
		log.Println("Database path not specified, using default ./data/savasana.db")
	}

	// Set default WAL mode for sqlite
	if cfg.Database.Type == "sqlite" && !v.IsSet("database.walMode") {
		cfg.Database.WALMode = true
		log.Println("WAL mode not specified, enabling by default")
	}

	// Set default postgres SSL mode
	if cfg.Database.Type == "postgres" && cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}

	// The JWT secret has no safe default; warn loudly when missing so a dev
	// setup still boots but never silently ships without one.
	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = "savasana-dev-secret-do-not-use-in-production"
		log.Println("WARNING: auth.jwtSecret not specified, using insecure development secret")
	}

	if cfg.Auth.TokenTTLMinutes == 0 {
		cfg.Auth.TokenTTLMinutes = 24 * 60
		log.Println("Token TTL not specified, using default 24h")
	}

	// Seed default teachers and admin account unless disabled
	if !v.IsSet("seed") {
		cfg.Seed = true
	}

	log.Printf("Configuration loaded: port=%d database=%s seed=%v", cfg.APIPort, cfg.Database.Type, cfg.Seed)
	return &cfg, nil
}
