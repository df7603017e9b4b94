package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, browser pool,
// redirect crawler, URL codec, database connection, and graceful shutdown
// behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request.
		// Screenshot requests wait for sessions and render pages, so this is
		// deliberately generous.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"90s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Browser contains browser session pool related configurations
	Browser struct {
		// DevToolsURL is the Chrome DevTools endpoint to connect to
		// (e.g. ws://localhost:9222). Empty launches a local headless Chrome.
		DevToolsURL string `env:"BROWSER_DEVTOOLS_URL" env-default:"" yaml:"devToolsUrl"`
		// MaxSessions is the maximum number of concurrent browser sessions
		MaxSessions int `env:"BROWSER_MAX_SESSIONS" env-default:"4" yaml:"maxSessions"`
		// QueueSize is the maximum number of requests waiting for a session
		QueueSize int `env:"BROWSER_QUEUE_SIZE" env-default:"16" yaml:"queueSize"`
		// AcquireTimeout is the maximum time a request waits for a session
		AcquireTimeout time.Duration `env:"BROWSER_ACQUIRE_TIMEOUT" env-default:"30s" yaml:"acquireTimeout"`
		// CaptureTimeout bounds a single navigate-and-screenshot round trip
		CaptureTimeout time.Duration `env:"BROWSER_CAPTURE_TIMEOUT" env-default:"30s" yaml:"captureTimeout"`
		// ViewportWidth is the emulated viewport width in pixels
		ViewportWidth int `env:"BROWSER_VIEWPORT_WIDTH" env-default:"1920" yaml:"viewportWidth"`
		// ViewportHeight is the emulated viewport height in pixels
		ViewportHeight int `env:"BROWSER_VIEWPORT_HEIGHT" env-default:"1080" yaml:"viewportHeight"`
	} `yaml:"browser"`

	// Crawler contains redirect crawler related configurations
	Crawler struct {
		// MaxHops is the maximum number of redirects followed per URL
		MaxHops int `env:"CRAWLER_MAX_HOPS" env-default:"10" yaml:"maxHops"`
		// HopTimeout is the deadline applied to each redirect probe
		HopTimeout time.Duration `env:"CRAWLER_HOP_TIMEOUT" env-default:"10s" yaml:"hopTimeout"`
		// UserAgent identifies the service on outbound probes
		UserAgent string `env:"CRAWLER_USER_AGENT" env-default:"" yaml:"userAgent"`
	} `yaml:"crawler"`

	// Codec contains identifier detection related configurations
	Codec struct {
		// MinCandidateLength is the shortest span considered for decoding
		MinCandidateLength int `env:"CODEC_MIN_CANDIDATE_LENGTH" env-default:"8" yaml:"minCandidateLength"`
		// Placeholder replaces every detected identifier in anonymized URLs
		Placeholder string `env:"CODEC_PLACEHOLDER" env-default:"anonymized_value" yaml:"placeholder"`
	} `yaml:"codec"`

	// MaxURLLength is the longest accepted input URL in bytes
	MaxURLLength int `env:"MAX_URL_LENGTH" env-default:"2048" yaml:"maxUrlLength"`

	// JWT contains token verification and signing related configurations
	JWT struct {
		// PrivateKey is the PEM-encoded RSA private key used to sign tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// PublicKey is the PEM-encoded RSA public key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
	} `yaml:"jwt"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"urlshot" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
