package config

import (
	"fmt"
	"os"
	"time"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "REWARDWALLET"

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Log       LogConfig       `mapstructure:"log"`
	OTP       OTPConfig       `mapstructure:"otp"`
	SMTP      SMTPConfig      `mapstructure:"smtp"`
	Razorpay  RazorpayConfig  `mapstructure:"razorpay"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Lock      LockConfig      `mapstructure:"lock"`
	RateLimit RateLimitConfig `mapstructure:"rateLimit"`
	Game      GameConfig      `mapstructure:"game"`
	Admin     AdminConfig     `mapstructure:"admin"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host           string        `mapstructure:"host"`
	Port           string        `mapstructure:"port"`
	RequestTimeout time.Duration `mapstructure:"requestTimeout"`
	AllowedOrigins []string      `mapstructure:"allowedOrigins"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"ssl"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"`
}

// JWTConfig holds JWT-related configuration
type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// OTPConfig controls issuing and delivering one-time passcodes
type OTPConfig struct {
	TTL              time.Duration `mapstructure:"ttl"`
	BcryptCost       int           `mapstructure:"bcryptCost"`
	Sender           string        `mapstructure:"sender"`
	ExposeInResponse bool          `mapstructure:"exposeInResponse"`
}

// SMTPConfig holds the mail relay used by the smtp OTP sender
type SMTPConfig struct {
	Host     string        `mapstructure:"host"`
	Port     int           `mapstructure:"port"`
	Username string        `mapstructure:"username"`
	Password string        `mapstructure:"password"`
	From     string        `mapstructure:"from"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// RazorpayConfig holds payment gateway configuration
type RazorpayConfig struct {
	BaseURL   string        `mapstructure:"baseURL"`
	KeyID     string        `mapstructure:"keyID"`
	KeySecret string        `mapstructure:"keySecret"`
	Currency  string        `mapstructure:"currency"`
	Timeout   time.Duration `mapstructure:"timeout"`
	RetryMax  int           `mapstructure:"retryMax"`
}

// RedisConfig holds redis connection configuration
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LockConfig selects the per-user lock implementation
type LockConfig struct {
	Driver      string        `mapstructure:"driver"`
	WaitTimeout time.Duration `mapstructure:"waitTimeout"`
	TTL         time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig limits OTP requests and OTP verification attempts per client IP
type RateLimitConfig struct {
	OTPRequests       int           `mapstructure:"otpRequests"`
	OTPVerifyAttempts int           `mapstructure:"otpVerifyAttempts"`
	Window            time.Duration `mapstructure:"window"`
}

// GameConfig holds game related configuration
type GameConfig struct {
	Timezone string `mapstructure:"timezone"`
}

// AdminConfig holds the account seeded as withdrawal reviewer
type AdminConfig struct {
	Email string `mapstructure:"email"`
	Name  string `mapstructure:"name"`
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetMigrateURL returns the database URL understood by golang-migrate
func (c *Config) GetMigrateURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the server address for binding
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// Location returns the timezone used for calendar-day windows
func (c *Config) Location() (*time.Location, error) {
	if c.Game.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Game.Timezone)
}

// GetEnvironment returns the current environment
func GetEnvironment() string {
	if env := os.Getenv(EnvPrefix + "_ENV"); env != "" {
		return env
	}
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "development"
}
