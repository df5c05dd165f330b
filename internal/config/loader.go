package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads config.<env>.yml from path, applies REWARDWALLET_ environment overrides and
// fills in defaults. A .env file in the working directory is loaded first when present.
func Load(path, env string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName(fmt.Sprintf("config.%s", env))
	v.SetConfigType("yml")
	v.AddConfigPath(path)

	v.AutomaticEnv()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}
	return &c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.requestTimeout", "30s")
	v.SetDefault("database.ssl", "disable")
	v.SetDefault("jwt.expiry", "168h")
	v.SetDefault("log.level", "info")
	v.SetDefault("otp.ttl", "10m")
	v.SetDefault("otp.bcryptCost", 10)
	v.SetDefault("otp.sender", "log")
	v.SetDefault("razorpay.baseURL", "https://api.razorpay.com")
	v.SetDefault("razorpay.currency", "INR")
	v.SetDefault("razorpay.timeout", "10s")
	v.SetDefault("razorpay.retryMax", 3)
	v.SetDefault("lock.driver", "memory")
	v.SetDefault("lock.waitTimeout", "5s")
	v.SetDefault("lock.ttl", "10s")
	v.SetDefault("rateLimit.otpRequests", 5)
	v.SetDefault("rateLimit.otpVerifyAttempts", 10)
	v.SetDefault("rateLimit.window", "15m")
}
