package config

import (
	"strings"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize = "12MB"
	defaultSessionTTL         = time.Hour
	defaultLifecycleTokenTTL  = time.Hour
	defaultPendingRetention   = 30 * 24 * time.Hour
	defaultPurgeInterval      = time.Hour
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Migration controls the embedded schema migrations
	Migration *MigrationConfig `json:"migration" yaml:"migration"`

	SecretKey SecretKey `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	// Frontend builds the links embedded in lifecycle emails
	Frontend FrontendConfig `json:"frontend" yaml:"frontend"`

	// Mail configures transactional email delivery
	Mail *MailConfig `json:"mail" yaml:"mail"`

	// PubSub configuration for queued mail delivery
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Worker configures the mail worker push endpoint
	Worker *WorkerConfig `json:"worker" yaml:"worker"`

	// Storage configures where exam result files are kept
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Maintenance configures the pending account purge job
	Maintenance *MaintenanceConfig `json:"maintenance" yaml:"maintenance"`

	// Metrics configures the prometheus endpoint
	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`

	// QRCode configuration for exam pass QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

// MigrationConfig defines schema migration behaviour
type MigrationConfig struct {
	// Apply pending migrations when the API starts
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// SecretKey holds the HMAC secrets. Session and lifecycle tokens never share a key.
type SecretKey struct {
	Session   string `json:"session" yaml:"session"`
	Lifecycle string `json:"lifecycle" yaml:"lifecycle"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost        int           `json:"bcryptCost" yaml:"bcryptCost"`
	SessionTTL        time.Duration `json:"sessionTtl" yaml:"sessionTtl"`
	LifecycleTokenTTL time.Duration `json:"lifecycleTokenTtl" yaml:"lifecycleTokenTtl"`
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

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FrontendConfig defines the web client routes that receive lifecycle tokens
type FrontendConfig struct {
	BaseURL        string `json:"baseUrl" yaml:"baseUrl"`
	ActivationPath string `json:"activationPath" yaml:"activationPath"`
	ResetPath      string `json:"resetPath" yaml:"resetPath"`
	ExamPath       string `json:"examPath" yaml:"examPath"`
}

// MailConfig defines SMTP delivery settings
type MailConfig struct {
	// Mode is "smtp", "queue" or "log"
	Mode        string        `json:"mode" yaml:"mode"`
	Host        string        `json:"host" yaml:"host"`
	Port        int           `json:"port" yaml:"port"`
	Username    string        `json:"username" yaml:"username"`
	Password    string        `json:"password" yaml:"password"`
	From        string        `json:"from" yaml:"from"`
	FromName    string        `json:"fromName" yaml:"fromName"`
	SendTimeout time.Duration `json:"sendTimeout" yaml:"sendTimeout"`
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

	// Expected audience of push OIDC tokens received by the mail worker
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// WorkerConfig defines the mail worker HTTP listener
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
}

// StorageConfig defines the blob bucket used for exam files
type StorageConfig struct {
	// BucketURL is a gocloud.dev URL such as file:///var/lib/examhub or s3://bucket?region=us-east-1
	BucketURL     string `json:"bucketUrl" yaml:"bucketUrl"`
	MaxUploadSize int64  `json:"maxUploadSize" yaml:"maxUploadSize"`
}

// MaintenanceConfig defines the pending account purge schedule
type MaintenanceConfig struct {
	PurgeEnabled     bool          `json:"purgeEnabled" yaml:"purgeEnabled"`
	PurgeInterval    time.Duration `json:"purgeInterval" yaml:"purgeInterval"`
	PendingRetention time.Duration `json:"pendingRetention" yaml:"pendingRetention"`
}

// MetricsConfig defines the prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.SessionTTL <= 0 {
		cfg.Auth.SessionTTL = defaultSessionTTL
	}
	if cfg.Auth.LifecycleTokenTTL <= 0 {
		cfg.Auth.LifecycleTokenTTL = defaultLifecycleTokenTTL
	}

	if cfg.Maintenance == nil {
		cfg.Maintenance = &MaintenanceConfig{}
	}
	if cfg.Maintenance.PendingRetention <= 0 {
		cfg.Maintenance.PendingRetention = defaultPendingRetention
	}
	if cfg.Maintenance.PurgeInterval <= 0 {
		cfg.Maintenance.PurgeInterval = defaultPurgeInterval
	}
}
