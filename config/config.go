package config

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/url"
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

	encryptionKeyLength   = 32
	minStateSecretLength  = 32
	defaultResetTokenTTL  = time.Hour
	defaultRememberFor    = 3600
	defaultHydraTimeout   = 10 * time.Second
	defaultTwoFactorIssue = "Gatekeeper"
)

// Storage drivers.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Host string `json:"host" yaml:"host"`
		Port int    `json:"port" yaml:"port"`
		// PathPrefix mounts every route under a prefix such as "/api".
		PathPrefix         string   `json:"pathPrefix" yaml:"pathPrefix"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Storage struct {
		// Driver is "postgres" or "memory".
		Driver string `json:"driver" yaml:"driver"`
	} `json:"storage" yaml:"storage"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Migration *MigrationConfig `json:"migration" yaml:"migration"`

	Hydra *HydraConfig `json:"hydra" yaml:"hydra"`

	Hashing *HashingConfig `json:"hashing" yaml:"hashing"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	TwoFactor *TwoFactorConfig `json:"twoFactor" yaml:"twoFactor"`

	// QRCode configuration for provisioning QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	PasswordReset *PasswordResetConfig `json:"passwordReset" yaml:"passwordReset"`

	// EncryptionKey is the base64 encoded AES-256 key protecting TOTP secrets.
	EncryptionKey string `json:"encryptionKey" yaml:"encryptionKey"`

	OAuth *OAuthConfig `json:"oauth" yaml:"oauth"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	AMQP *AMQPConfig `json:"amqp" yaml:"amqp"`
}

// MigrationConfig controls schema migrations run by the service itself.
type MigrationConfig struct {
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// HydraConfig points at the authorization server admin API.
type HydraConfig struct {
	AdminURL           string        `json:"adminURL" yaml:"adminURL"`
	Timeout            time.Duration `json:"timeout" yaml:"timeout"`
	Remember           bool          `json:"remember" yaml:"remember"`
	RememberFor        int           `json:"rememberFor" yaml:"rememberFor"`
	ConsentRememberFor int           `json:"consentRememberFor" yaml:"consentRememberFor"`
}

// HashingConfig defines argon2id cost parameters
type HashingConfig struct {
	Memory      uint32 `json:"memory" yaml:"memory"`
	Iterations  uint32 `json:"iterations" yaml:"iterations"`
	Parallelism uint8  `json:"parallelism" yaml:"parallelism"`
	SaltLength  uint32 `json:"saltLength" yaml:"saltLength"`
	KeyLength   uint32 `json:"keyLength" yaml:"keyLength"`
}

// PasswordStrengthConfig defines password strength requirements
type PasswordStrengthConfig struct {
	MinLength        int  `json:"minLength" yaml:"minLength"`
	RequireUppercase bool `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase bool `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers   bool `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial   bool `json:"requireSpecial" yaml:"requireSpecial"`
	MaxLength        int  `json:"maxLength" yaml:"maxLength"`
}

type TwoFactorConfig struct {
	Issuer string `json:"issuer" yaml:"issuer"`
	// SetupTTL bounds how long an unverified enrolment stays valid.
	SetupTTL time.Duration `json:"setupTTL" yaml:"setupTTL"`
	Skew     int           `json:"skew" yaml:"skew"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

type PasswordResetConfig struct {
	URLBase         string        `json:"urlBase" yaml:"urlBase"`
	TokenTTL        time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
	MinResponseTime time.Duration `json:"minResponseTime" yaml:"minResponseTime"`
	RevokeSessions  bool          `json:"revokeSessions" yaml:"revokeSessions"`
}

type OAuthConfig struct {
	StateSecret string               `json:"stateSecret" yaml:"stateSecret"`
	StateTTL    time.Duration        `json:"stateTTL" yaml:"stateTTL"`
	Google      *OAuthProviderConfig `json:"google" yaml:"google"`
	GitHub      *OAuthProviderConfig `json:"github" yaml:"github"`
}

type OAuthProviderConfig struct {
	ClientID     string `json:"clientID" yaml:"clientID"`
	ClientSecret string `json:"clientSecret" yaml:"clientSecret"`
	RedirectURL  string `json:"redirectURL" yaml:"redirectURL"`
}

// Configured reports whether the provider has credentials.
func (p *OAuthProviderConfig) Configured() bool {
	return p != nil && p.ClientID != "" && p.ClientSecret != "" && p.RedirectURL != ""
}

// RedisConfig enables attempt throttling.
type RedisConfig struct {
	Enabled  bool   `json:"enabled" yaml:"enabled"`
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`

	LoginLimit  int           `json:"loginLimit" yaml:"loginLimit"`
	LoginWindow time.Duration `json:"loginWindow" yaml:"loginWindow"`
	ResetLimit  int           `json:"resetLimit" yaml:"resetLimit"`
	ResetWindow time.Duration `json:"resetWindow" yaml:"resetWindow"`
}

// AMQPConfig enables publishing reset notices to a queue.
type AMQPConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	URL     string `json:"url" yaml:"url"`
	Queue   string `json:"queue" yaml:"queue"`
}

type Log struct {
	Pretty    bool   `json:"pretty" yaml:"pretty"`
	Level     string `json:"level" yaml:"level"`
	SentryDSN string `json:"sentryDSN" yaml:"sentryDSN"`
}

// databaseURLKey holds a connection URL until it is expanded into the postgres section.
const databaseURLKey = "databaseURL"

// legacyEnvAliases maps the flat variable names of older deployments onto config paths.
var legacyEnvAliases = map[string]string{
	"DATABASE_URL":                  databaseURLKey,
	"HYDRA_ADMIN_URL":               "hydra.adminURL",
	"HOST":                          "http.host",
	"PORT":                          "http.port",
	"ENCRYPTION_KEY":                "encryptionKey",
	"OAUTH_STATE_SECRET":            "oauth.stateSecret",
	"PASSWORD_RESET_URL_BASE":       "passwordReset.urlBase",
	"PASSWORD_RESET_TOKEN_TTL_SECS": "passwordReset.tokenTTL",
	"TOTP_ISSUER":                   "twoFactor.issuer",
	"GOOGLE_CLIENT_ID":              "oauth.google.clientID",
	"GOOGLE_CLIENT_SECRET":          "oauth.google.clientSecret",
	"GOOGLE_REDIRECT_URI":           "oauth.google.redirectURL",
	"GITHUB_CLIENT_ID":              "oauth.github.clientID",
	"GITHUB_CLIENT_SECRET":          "oauth.github.clientSecret",
	"GITHUB_REDIRECT_URI":           "oauth.github.redirectURL",
	"SENTRY_DSN":                    "env.log.sentryDSN",
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
			if alias, ok := legacyEnvAliases[k]; ok {
				return alias, legacyEnvValue(k, v)
			}

			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := expandDatabaseURL(koanfInstance); err != nil {
		return nil, err
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
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

// expandDatabaseURL spreads a postgres:// URL over the postgres connection keys.
func expandDatabaseURL(k *koanf.Koanf) error {
	raw := strings.TrimSpace(k.String(databaseURLKey))
	k.Delete(databaseURLKey)
	if raw == "" {
		return nil
	}

	values, err := databaseURLValues(raw)
	if err != nil {
		return err
	}
	for key, value := range values {
		if err := k.Set(key, value); err != nil {
			return errors.Wrapf(err, "set %s", key)
		}
	}

	return nil
}

func databaseURLValues(raw string) (map[string]any, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, errors.Wrap(err, "DATABASE_URL is invalid")
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return nil, errors.Errorf("DATABASE_URL scheme %q is not postgres", u.Scheme)
	}
	if u.Hostname() == "" {
		return nil, errors.New("DATABASE_URL has no host")
	}

	port := u.Port()
	if port == "" {
		port = "5432"
	}
	password, _ := u.User.Password()

	values := map[string]any{
		"postgres.master.host":     u.Hostname(),
		"postgres.master.port":     port,
		"postgres.master.userName": u.User.Username(),
		"postgres.master.password": password,
		"postgres.database":        strings.TrimPrefix(u.Path, "/"),
	}
	if sslMode := u.Query().Get("sslmode"); sslMode != "" {
		values["postgres.sslMode"] = sslMode
	}

	return values, nil
}

// legacyEnvValue converts values whose unit changed between deployments.
func legacyEnvValue(key, value string) any {
	if key == "PASSWORD_RESET_TOKEN_TTL_SECS" {
		if secs, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return (time.Duration(secs) * time.Second).String()
		}
	}

	return value
}

func New() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", slog.Any("error", err))
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if replicas := buildReplicasFromEnv(); len(replicas) > 0 && cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicas
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.HTTP.PathPrefix != "" {
		c.HTTP.PathPrefix = "/" + strings.Trim(c.HTTP.PathPrefix, "/")
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = StorageDriverPostgres
	}
	if c.Migration == nil {
		c.Migration = &MigrationConfig{}
	}
	if c.Hydra == nil {
		c.Hydra = &HydraConfig{Remember: true}
	}
	if c.Hydra.Timeout <= 0 {
		c.Hydra.Timeout = defaultHydraTimeout
	}
	if c.Hydra.RememberFor <= 0 {
		c.Hydra.RememberFor = defaultRememberFor
	}
	if c.Hydra.ConsentRememberFor <= 0 {
		c.Hydra.ConsentRememberFor = defaultRememberFor
	}
	if c.Hashing == nil {
		c.Hashing = &HashingConfig{}
	}
	if c.PasswordStrength == nil {
		c.PasswordStrength = &PasswordStrengthConfig{MinLength: 8, MaxLength: 128}
	}
	if c.TwoFactor == nil {
		c.TwoFactor = &TwoFactorConfig{}
	}
	if c.TwoFactor.Issuer == "" {
		c.TwoFactor.Issuer = defaultTwoFactorIssue
	}
	if c.TwoFactor.Skew <= 0 {
		c.TwoFactor.Skew = 1
	}
	if c.QRCode == nil {
		c.QRCode = &QRCodeConfig{}
	}
	if c.PasswordReset == nil {
		c.PasswordReset = &PasswordResetConfig{RevokeSessions: true}
	}
	if c.PasswordReset.TokenTTL <= 0 {
		c.PasswordReset.TokenTTL = defaultResetTokenTTL
	}
	if c.OAuth == nil {
		c.OAuth = &OAuthConfig{}
	}
	if c.OAuth.StateTTL <= 0 {
		c.OAuth.StateTTL = 10 * time.Minute
	}
	if c.Redis == nil {
		c.Redis = &RedisConfig{}
	}
	if c.AMQP == nil {
		c.AMQP = &AMQPConfig{}
	}
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	if c.Hydra == nil || c.Hydra.AdminURL == "" {
		return errors.New("hydra.adminURL is required")
	}
	if _, err := url.ParseRequestURI(c.Hydra.AdminURL); err != nil {
		return errors.Wrap(err, "hydra.adminURL is invalid")
	}

	if _, err := c.EncryptionKeyBytes(); err != nil {
		return err
	}

	if len(c.OAuth.StateSecret) < minStateSecretLength {
		return errors.Errorf("oauth.stateSecret must be at least %d bytes", minStateSecretLength)
	}

	switch c.Storage.Driver {
	case StorageDriverMemory:
	case StorageDriverPostgres:
		if c.Postgres == nil {
			return errors.New("postgres section or DATABASE_URL is required")
		}
	default:
		return errors.Errorf("unknown storage.driver %q", c.Storage.Driver)
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		return errors.New("redis.addr is required when redis is enabled")
	}
	if c.AMQP.Enabled && (c.AMQP.URL == "" || c.AMQP.Queue == "") {
		return errors.New("amqp.url and amqp.queue are required when amqp is enabled")
	}

	return nil
}

// EncryptionKeyBytes decodes the base64 AES-256 key.
func (c *Config) EncryptionKeyBytes() ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(c.EncryptionKey))
	if err != nil {
		return nil, errors.Wrap(err, "encryptionKey must be base64 encoded")
	}
	if len(key) != encryptionKeyLength {
		return nil, errors.Errorf("encryptionKey must decode to %d bytes, got %d", encryptionKeyLength, len(key))
	}

	return key, nil
}

// Address returns the host:port the HTTP server listens on.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.HTTP.Host, c.HTTP.Port)
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
