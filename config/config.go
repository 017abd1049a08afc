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
	defaultPath                  = "."
	defaultMaxRequestBodySize    = "100KB"
	defaultBcryptCost            = 12
	defaultTokenTTL              = 3600 * time.Second
	defaultKeyBits               = 2048
	defaultPassportExpiryHorizon = 90 * 24 * time.Hour
	defaultCacheTTL              = 5 * time.Minute
	defaultWorkerPort            = 8081

	// EnvProduction is the env.env value that forbids ephemeral signing keys.
	EnvProduction = "production"
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

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Customer *CustomerConfig `json:"customer" yaml:"customer"`

	Reservation *ReservationConfig `json:"reservation" yaml:"reservation"`

	// Redis backs the lodging read cache; nil disables caching.
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// PubSub configuration for reservation event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Migrations *MigrationsConfig `json:"migrations" yaml:"migrations"`

	// Worker configures the reservation event push consumer
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`

	// TokenTTL is the fixed validity of issued bearer tokens.
	TokenTTL time.Duration `json:"tokenTTL" yaml:"tokenTTL"`

	// PrivateKeyPath points at a PEM encoded RSA private key (PKCS#1 or PKCS#8).
	// When empty outside production an ephemeral key is generated at startup.
	PrivateKeyPath string `json:"privateKeyPath" yaml:"privateKeyPath"`

	// KeyBits is the modulus size used for ephemeral keys.
	KeyBits int `json:"keyBits" yaml:"keyBits"`

	Issuer string `json:"issuer" yaml:"issuer"`
}

// CustomerConfig defines customer statistics settings
type CustomerConfig struct {
	// PassportExpiryHorizon is the window used to count soon-to-expire passports.
	PassportExpiryHorizon time.Duration `json:"passportExpiryHorizon" yaml:"passportExpiryHorizon"`
}

// ReservationConfig defines reservation creation rules
type ReservationConfig struct {
	// PreventOverlap rejects reservations whose stay intersects an existing one on the same lodging.
	PreventOverlap bool `json:"preventOverlap" yaml:"preventOverlap"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RedisConfig defines the redis connection used by the lodging cache
type RedisConfig struct {
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	TTL      time.Duration `json:"ttl" yaml:"ttl"`
	Prefix   string        `json:"prefix" yaml:"prefix"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local", "google" or "rabbitmq"; empty disables publishing
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// AMQP URL and queue (for rabbitmq provider)
	RabbitMQURL   string `json:"rabbitmqUrl" yaml:"rabbitmqUrl"`
	RabbitMQQueue string `json:"rabbitmqQueue" yaml:"rabbitmqQueue"`
}

// WorkerConfig defines the push endpoint consuming reservation events
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`

	// VerifyPushAuth checks the Google-signed OIDC token on push requests
	VerifyPushAuth bool `json:"verifyPushAuth" yaml:"verifyPushAuth"`
}

// MigrationsConfig controls schema migrations at startup
type MigrationsConfig struct {
	AutoRun bool `json:"autoRun" yaml:"autoRun"`
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
	// A missing .env is the normal case outside local development.
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

	return cfg, nil
}

// IsProduction reports whether the service runs with production safeguards.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env.Env, EnvProduction)
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if c.Auth == nil {
		c.Auth = &AuthConfig{}
	}
	if c.Auth.BcryptCost <= 0 {
		c.Auth.BcryptCost = defaultBcryptCost
	}
	if c.Auth.TokenTTL <= 0 {
		c.Auth.TokenTTL = defaultTokenTTL
	}
	if c.Auth.KeyBits <= 0 {
		c.Auth.KeyBits = defaultKeyBits
	}

	if c.Customer == nil {
		c.Customer = &CustomerConfig{}
	}
	if c.Customer.PassportExpiryHorizon <= 0 {
		c.Customer.PassportExpiryHorizon = defaultPassportExpiryHorizon
	}

	if c.Reservation == nil {
		c.Reservation = &ReservationConfig{}
	}

	if c.Migrations == nil {
		c.Migrations = &MigrationsConfig{}
	}

	if c.Worker == nil {
		c.Worker = &WorkerConfig{}
	}
	if c.Worker.Port <= 0 {
		c.Worker.Port = defaultWorkerPort
	}

	if c.Redis != nil && c.Redis.TTL <= 0 {
		c.Redis.TTL = defaultCacheTTL
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
