package structs

import "time"

type Config struct {
	Server    *ServerConfig
	Cors      *CorsConfig
	Database  *DatabaseConfig
	Cache     *CacheConfig
	Auth      *AuthConfig
	Email     *EmailConfig
	Queue     *QueueConfig
	RateLimit *RateLimitConfig
	Content   *ContentConfig
}

type ServerConfig struct {
	AppName        string
	Environment    string
	Port           string
	ServerURL      string
	FrontendURL    string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int
}

type CorsConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	MaxConns     int
	MinConns     int
	MaxLifetime  time.Duration
	MaxIdleTime  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type CacheConfig struct {
	Address         string
	Username        string
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	MaxIdleConns    int
	PoolTimeout     time.Duration
	IdleTimeout     time.Duration
	DialTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	MaxRetries      int
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration
}

type AuthConfig struct {
	AccessTokenSecret  string
	AccessTokenExpiry  time.Duration
	RefreshTokenSecret string
	RefreshTokenExpiry time.Duration
	PendingLoginTTL    time.Duration
	BlacklistCacheTTL  time.Duration
	CacheUserTTL       time.Duration
	CookieDomain       string
}

type EmailConfig struct {
	ApiKey       string
	From         string
	AdminEmail   string
	SupportEmail string
}

type QueueConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
	GroupID string
}

type RateLimitConfig struct {
	Enabled        bool
	AuthLimit      int
	AuthWindow     time.Duration
	AdminLimit     int
	AdminWindow    time.Duration
	GeneralLimit   int
	GeneralWindow  time.Duration
	ResendCooldown time.Duration
}

type ContentConfig struct {
	ResumePath string
}
