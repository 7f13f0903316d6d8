package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultBcryptCost         = 12
	defaultMetricsPath        = "/metrics"
)

// Supported credential hashing algorithms.
const (
	HashAlgorithmArgon2id = "argon2id"
	HashAlgorithmBcrypt   = "bcrypt"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// SecretKey holds process-wide secrets, loaded once at startup.
	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Metrics configuration for the Prometheus endpoint
	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`

	// Migrations configuration for schema management at startup
	Migrations *MigrationsConfig `json:"migrations" yaml:"migrations"`
}

// SecretKeyConfig holds the token signing key and the credential hashing secret.
type SecretKeyConfig struct {
	Signing string `json:"signing" yaml:"signing"`
	Server  string `json:"server" yaml:"server"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	// HashAlgorithm selects the algorithm for new hashes: "argon2id" or "bcrypt"
	HashAlgorithm string        `json:"hashAlgorithm" yaml:"hashAlgorithm"`
	BcryptCost    int           `json:"bcryptCost" yaml:"bcryptCost"`
	Argon2        *Argon2Config `json:"argon2" yaml:"argon2"`

	// HashWorkers bounds concurrent hash computations; 0 means GOMAXPROCS
	HashWorkers int `json:"hashWorkers" yaml:"hashWorkers"`
}

// Argon2Config defines Argon2id cost parameters
type Argon2Config struct {
	Memory      uint32 `json:"memory" yaml:"memory"` // KiB
	Iterations  uint32 `json:"iterations" yaml:"iterations"`
	Parallelism uint8  `json:"parallelism" yaml:"parallelism"`
	SaltLength  uint32 `json:"saltLength" yaml:"saltLength"`
	KeyLength   uint32 `json:"keyLength" yaml:"keyLength"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MetricsConfig defines the Prometheus scrape endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// MigrationsConfig defines whether embedded migrations run on startup
type MigrationsConfig struct {
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A missing .env file is fine; real deployments inject the environment.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.HashAlgorithm == "" {
		cfg.Auth.HashAlgorithm = HashAlgorithmArgon2id
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}
	cfg.Auth.Argon2 = cfg.Auth.Argon2.WithDefaults()

	if cfg.Metrics != nil && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}
}

// Validate reports configuration that would leave the service unable to
// authenticate requests.
func (cfg *Config) Validate() error {
	if strings.TrimSpace(cfg.SecretKey.Signing) == "" {
		return errors.New("secretKey.signing must be provided")
	}
	if strings.TrimSpace(cfg.SecretKey.Server) == "" {
		return errors.New("secretKey.server must be provided")
	}

	switch cfg.Auth.HashAlgorithm {
	case HashAlgorithmArgon2id, HashAlgorithmBcrypt:
	default:
		return errors.Errorf("unsupported auth.hashAlgorithm %q", cfg.Auth.HashAlgorithm)
	}

	if err := cfg.Auth.Argon2.Validate(); err != nil {
		return errors.Wrap(err, "auth.argon2")
	}

	return nil
}

// Bounds on Argon2id parameters. Memory is in KiB.
const (
	MaxArgon2Memory      = 1024 * 1024
	MaxArgon2Iterations  = 64
	MaxArgon2Parallelism = 64
	MinArgon2SaltLength  = 8
	MinArgon2KeyLength   = 16
)

// WithDefaults returns a copy of c with every zero field taken from
// DefaultArgon2Config. A nil receiver yields the defaults.
func (c *Argon2Config) WithDefaults() *Argon2Config {
	def := DefaultArgon2Config()
	if c == nil {
		return def
	}

	out := *c
	if out.Memory == 0 {
		out.Memory = def.Memory
	}
	if out.Iterations == 0 {
		out.Iterations = def.Iterations
	}
	if out.Parallelism == 0 {
		out.Parallelism = def.Parallelism
	}
	if out.SaltLength == 0 {
		out.SaltLength = def.SaltLength
	}
	if out.KeyLength == 0 {
		out.KeyLength = def.KeyLength
	}

	return &out
}

// Validate rejects parameters that would panic in argon2 or produce weak hashes.
func (c *Argon2Config) Validate() error {
	if c == nil {
		return errors.New("parameters must be provided")
	}

	switch {
	case c.Memory == 0 || c.Memory > MaxArgon2Memory:
		return errors.Errorf("memory must be between 1 and %d KiB, got %d", MaxArgon2Memory, c.Memory)
	case c.Iterations == 0 || c.Iterations > MaxArgon2Iterations:
		return errors.Errorf("iterations must be between 1 and %d, got %d", MaxArgon2Iterations, c.Iterations)
	case c.Parallelism == 0 || c.Parallelism > MaxArgon2Parallelism:
		return errors.Errorf("parallelism must be between 1 and %d, got %d", MaxArgon2Parallelism, c.Parallelism)
	case c.SaltLength < MinArgon2SaltLength:
		return errors.Errorf("saltLength must be at least %d, got %d", MinArgon2SaltLength, c.SaltLength)
	case c.KeyLength < MinArgon2KeyLength:
		return errors.Errorf("keyLength must be at least %d, got %d", MinArgon2KeyLength, c.KeyLength)
	}

	return nil
}

// DefaultArgon2Config returns the Argon2id parameters used when none are configured.
func DefaultArgon2Config() *Argon2Config {
	return &Argon2Config{
		Memory:      64 * 1024,
		Iterations:  1,
		Parallelism: 4,
		SaltLength:  16,
		KeyLength:   32,
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
