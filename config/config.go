package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"civicradar/internal/domain/constants"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "64KB"

	DefaultRadiusMeters     = 5000.0
	DefaultMaxRadiusMeters  = 50000.0
	DefaultConcurrency      = 20
	DefaultDeliveryTimeout  = 10 * time.Second
	DefaultCooldownWindow   = time.Hour
	DefaultForwardQueueSize = 32
	DefaultForwardRetries   = 3
	DefaultForwardBaseDelay = 500 * time.Millisecond
	DefaultPushTTL          = 86400
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

	Migration *MigrationConfig `json:"migration" yaml:"migration"`

	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	// Dispatch controls proximity fan-out
	Dispatch *DispatchConfig `json:"dispatch" yaml:"dispatch"`

	// Push selects and configures the delivery transport
	Push *PushConfig `json:"push" yaml:"push"`

	// Composer holds the static parts of notification payloads
	Composer *ComposerConfig `json:"composer" yaml:"composer"`

	Subscriptions *SubscriptionsConfig `json:"subscriptions" yaml:"subscriptions"`

	// PubSub configuration for report events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for region notices
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Tracker configures the client-side tracking agent
	Tracker *TrackerConfig `json:"tracker" yaml:"tracker"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MigrationConfig controls schema management at startup
type MigrationConfig struct {
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// SecretKeyConfig holds the HMAC secret used to verify session tokens
type SecretKeyConfig struct {
	Access string `json:"access" yaml:"access"`
}

// DispatchConfig defines proximity dispatch behaviour
type DispatchConfig struct {
	DefaultRadiusMeters float64       `json:"defaultRadiusMeters" yaml:"defaultRadiusMeters"`
	MaxRadiusMeters     float64       `json:"maxRadiusMeters" yaml:"maxRadiusMeters"`
	Concurrency         int           `json:"concurrency" yaml:"concurrency"`
	DeliveryTimeout     time.Duration `json:"deliveryTimeout" yaml:"deliveryTimeout"`

	// TriggerToken guards the internal dispatch endpoints
	TriggerToken string `json:"triggerToken" yaml:"triggerToken"`
}

// PushConfig defines which push transport is used
type PushConfig struct {
	// Provider is "webpush" or "firebase"
	Provider string          `json:"provider" yaml:"provider"`
	WebPush  *WebPushConfig  `json:"webPush" yaml:"webPush"`
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`
}

// WebPushConfig holds VAPID credentials
type WebPushConfig struct {
	Subscriber      string `json:"subscriber" yaml:"subscriber"`
	VAPIDPublicKey  string `json:"vapidPublicKey" yaml:"vapidPublicKey"`
	VAPIDPrivateKey string `json:"vapidPrivateKey" yaml:"vapidPrivateKey"`
	TTL             int    `json:"ttl" yaml:"ttl"`
	Urgency         string `json:"urgency" yaml:"urgency"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

type ComposerConfig struct {
	AppURL string `json:"appUrl" yaml:"appUrl"`
	Icon   string `json:"icon" yaml:"icon"`
	Badge  string `json:"badge" yaml:"badge"`
}

type SubscriptionsConfig struct {
	// UnsubscribeDisablesProximity clears the proximity preference when a device unsubscribes
	UnsubscribeDisablesProximity bool `json:"unsubscribeDisablesProximity" yaml:"unsubscribeDisablesProximity"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// TrackerConfig drives cmd/tracker
type TrackerConfig struct {
	ServerURL      string        `json:"serverUrl" yaml:"serverUrl"`
	AccessToken    string        `json:"accessToken" yaml:"accessToken"`
	TrackPath      string        `json:"trackPath" yaml:"trackPath"`
	EmitInterval   time.Duration `json:"emitInterval" yaml:"emitInterval"`
	CooldownWindow time.Duration `json:"cooldownWindow" yaml:"cooldownWindow"`
	QueueSize      int           `json:"queueSize" yaml:"queueSize"`
	MaxRetries     uint64        `json:"maxRetries" yaml:"maxRetries"`
	RetryBaseDelay time.Duration `json:"retryBaseDelay" yaml:"retryBaseDelay"`

	// CooldownStore is "memory" or "redis"
	CooldownStore string `json:"cooldownStore" yaml:"cooldownStore"`
}

type RedisConfig struct {
	URL            string        `json:"url" yaml:"url"`
	KeyPrefix      string        `json:"keyPrefix" yaml:"keyPrefix"`
	ConnectTimeout time.Duration `json:"connectTimeout" yaml:"connectTimeout"`
	RetryAttempts  int           `json:"retryAttempts" yaml:"retryAttempts"`
	RetryInterval  time.Duration `json:"retryInterval" yaml:"retryInterval"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// DISPATCH_TRIGGERTOKEN -> dispatch.triggerToken
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	ApplyDefaults(cfg)

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills unset sections and zero values with their defaults.
func ApplyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Dispatch == nil {
		cfg.Dispatch = &DispatchConfig{}
	}
	if cfg.Dispatch.DefaultRadiusMeters <= 0 {
		cfg.Dispatch.DefaultRadiusMeters = DefaultRadiusMeters
	}
	if cfg.Dispatch.MaxRadiusMeters <= 0 {
		cfg.Dispatch.MaxRadiusMeters = DefaultMaxRadiusMeters
	}
	if cfg.Dispatch.Concurrency <= 0 {
		cfg.Dispatch.Concurrency = DefaultConcurrency
	}
	if cfg.Dispatch.DeliveryTimeout <= 0 {
		cfg.Dispatch.DeliveryTimeout = DefaultDeliveryTimeout
	}

	if cfg.Push == nil {
		cfg.Push = &PushConfig{Provider: constants.PushProviderWebPush}
	}
	if cfg.Push.WebPush != nil && cfg.Push.WebPush.TTL <= 0 {
		cfg.Push.WebPush.TTL = DefaultPushTTL
	}

	if cfg.Composer == nil {
		cfg.Composer = &ComposerConfig{}
	}

	if cfg.Subscriptions == nil {
		cfg.Subscriptions = &SubscriptionsConfig{UnsubscribeDisablesProximity: true}
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}
	}

	if cfg.Tracker == nil {
		cfg.Tracker = &TrackerConfig{}
	}
	if cfg.Tracker.CooldownWindow <= 0 {
		cfg.Tracker.CooldownWindow = DefaultCooldownWindow
	}
	if cfg.Tracker.QueueSize <= 0 {
		cfg.Tracker.QueueSize = DefaultForwardQueueSize
	}
	if cfg.Tracker.MaxRetries == 0 {
		cfg.Tracker.MaxRetries = DefaultForwardRetries
	}
	if cfg.Tracker.RetryBaseDelay <= 0 {
		cfg.Tracker.RetryBaseDelay = DefaultForwardBaseDelay
	}
	if cfg.Tracker.CooldownStore == "" {
		cfg.Tracker.CooldownStore = constants.CooldownStoreMemory
	}

	if cfg.Redis == nil {
		cfg.Redis = &RedisConfig{}
	}
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = "civicradar"
	}
	if cfg.Redis.ConnectTimeout <= 0 {
		cfg.Redis.ConnectTimeout = 10 * time.Second
	}
	if cfg.Redis.RetryAttempts <= 0 {
		cfg.Redis.RetryAttempts = 3
	}
	if cfg.Redis.RetryInterval <= 0 {
		cfg.Redis.RetryInterval = time.Second
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

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
