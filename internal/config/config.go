package config

import (
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port" default:"8080"`
		Host         string        `yaml:"host" default:"0.0.0.0"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"30s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"30s"`
		IdleTimeout  time.Duration `yaml:"idle_timeout" default:"60s"`
	} `yaml:"server"`

	Storage struct {
		// Driver selects the persistence backend for this deployment:
		// postgres, redis, rest (proxy to an upstream HTTP backend) or
		// memory. One driver per deployment; there is no runtime
		// auto-detection between them.
		Driver string `yaml:"driver" default:"memory"`

		Postgres struct {
			DSN string `yaml:"dsn"`
		} `yaml:"postgres"`

		Redis struct {
			URL       string        `yaml:"url" default:"redis://localhost:6379"`
			Password  string        `yaml:"password"`
			DB        int           `yaml:"db" default:"0"`
			Timeout   time.Duration `yaml:"timeout" default:"5s"`
			KeyPrefix string        `yaml:"key_prefix" default:"recruitdesk"`
		} `yaml:"redis"`
	} `yaml:"storage"`

	Client struct {
		// BaseURL, when set, is probed first and normally wins
		BaseURL string `yaml:"base_url"`
		// ProbeBases are the fallback candidate bases tried in order after
		// the configured override
		ProbeBases []string `yaml:"probe_bases"`
		// ProbeTimeout bounds each individual probe request
		ProbeTimeout time.Duration `yaml:"probe_timeout" default:"1500ms"`
		// RequestTimeout bounds regular adapter calls
		RequestTimeout time.Duration `yaml:"request_timeout" default:"15s"`
		// RateLimit caps outbound adapter requests per second (0 = unlimited)
		RateLimit int `yaml:"rate_limit" default:"0"`
	} `yaml:"client"`

	Auth struct {
		Enabled       bool          `yaml:"enabled" default:"false"`
		AdminEmail    string        `yaml:"admin_email"`
		AdminPassword string        `yaml:"admin_password"`
		SessionTTL    time.Duration `yaml:"session_ttl" default:"12h"`
	} `yaml:"auth"`

	Uploads struct {
		Dir     string `yaml:"dir" default:"uploads"`
		MaxSize int64  `yaml:"max_size" default:"5242880"` // bytes
	} `yaml:"uploads"`

	Logging struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"json"`
		Output string `yaml:"output" default:"stdout"`

		Adapters []struct {
			Name    string                 `yaml:"name"`
			Type    string                 `yaml:"type"`
			Enabled bool                   `yaml:"enabled"`
			Options map[string]interface{} `yaml:"options"`
		} `yaml:"adapters"`
	} `yaml:"logging"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or $VAR syntax
func expandEnvVars(s string) string {
	// Expand ${VAR} syntax
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1] // Remove ${ and }
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match // Return original if env var not found
	})

	// Expand $VAR syntax (but avoid replacing ${VAR} that was already processed)
	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:] // Remove $
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match // Return original if env var not found
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second

	config.Storage.Driver = "memory"
	config.Storage.Redis.URL = "redis://localhost:6379"
	config.Storage.Redis.DB = 0
	config.Storage.Redis.Timeout = 5 * time.Second
	config.Storage.Redis.KeyPrefix = "recruitdesk"

	config.Client.ProbeBases = []string{
		"http://localhost:8080",
		"http://localhost:30020",
		"http://localhost:8000",
	}
	config.Client.ProbeTimeout = 1500 * time.Millisecond
	config.Client.RequestTimeout = 15 * time.Second

	config.Auth.SessionTTL = 12 * time.Hour

	config.Uploads.Dir = "uploads"
	config.Uploads.MaxSize = 5 * 1024 * 1024

	config.Logging.Level = "info"
	config.Logging.Format = "json"
	config.Logging.Output = "stdout"

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			// Expand environment variables in the YAML content
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	return config, nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if driver := os.Getenv("STORAGE_DRIVER"); driver != "" {
		c.Storage.Driver = driver
	}

	if dsn := os.Getenv("POSTGRES_DSN"); dsn != "" {
		c.Storage.Postgres.DSN = dsn
	}

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		c.Storage.Redis.URL = redisURL
	}

	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		c.Storage.Redis.Password = redisPassword
	}

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		if db, err := strconv.Atoi(redisDB); err == nil {
			c.Storage.Redis.DB = db
		}
	}

	if redisTimeout := os.Getenv("REDIS_TIMEOUT"); redisTimeout != "" {
		if timeout, err := time.ParseDuration(redisTimeout); err == nil {
			c.Storage.Redis.Timeout = timeout
		}
	}

	if keyPrefix := os.Getenv("REDIS_KEY_PREFIX"); keyPrefix != "" {
		c.Storage.Redis.KeyPrefix = keyPrefix
	}

	if baseURL := os.Getenv("API_BASE_URL"); baseURL != "" {
		c.Client.BaseURL = baseURL
	}

	if probeBases := os.Getenv("API_PROBE_BASES"); probeBases != "" {
		bases := []string{}
		for _, base := range strings.Split(probeBases, ",") {
			if trimmed := strings.TrimSpace(base); trimmed != "" {
				bases = append(bases, trimmed)
			}
		}
		if len(bases) > 0 {
			c.Client.ProbeBases = bases
		}
	}

	if probeTimeout := os.Getenv("API_PROBE_TIMEOUT"); probeTimeout != "" {
		if timeout, err := time.ParseDuration(probeTimeout); err == nil {
			c.Client.ProbeTimeout = timeout
		}
	}

	if requestTimeout := os.Getenv("API_REQUEST_TIMEOUT"); requestTimeout != "" {
		if timeout, err := time.ParseDuration(requestTimeout); err == nil {
			c.Client.RequestTimeout = timeout
		}
	}

	if rateLimit := os.Getenv("API_RATE_LIMIT"); rateLimit != "" {
		if limit, err := strconv.Atoi(rateLimit); err == nil {
			c.Client.RateLimit = limit
		}
	}

	if authEnabled := os.Getenv("AUTH_ENABLED"); authEnabled != "" {
		c.Auth.Enabled = authEnabled == "true" || authEnabled == "1"
	}

	if adminEmail := os.Getenv("ADMIN_EMAIL"); adminEmail != "" {
		c.Auth.AdminEmail = adminEmail
	}

	if adminPassword := os.Getenv("ADMIN_PASSWORD"); adminPassword != "" {
		c.Auth.AdminPassword = adminPassword
	}

	if sessionTTL := os.Getenv("SESSION_TTL"); sessionTTL != "" {
		if ttl, err := time.ParseDuration(sessionTTL); err == nil {
			c.Auth.SessionTTL = ttl
		}
	}

	if uploadsDir := os.Getenv("UPLOADS_DIR"); uploadsDir != "" {
		c.Uploads.Dir = uploadsDir
	}

	if maxSize := os.Getenv("UPLOADS_MAX_SIZE"); maxSize != "" {
		if size, err := strconv.ParseInt(maxSize, 10, 64); err == nil {
			c.Uploads.MaxSize = size
		}
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}
}
