package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RedisPassword   string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB    int    `mapstructure:"REDIS_CACHE_DB"`
	RedisCheckoutDB int    `mapstructure:"REDIS_CHECKOUT_DB"`
	RedisQueueDB    int    `mapstructure:"REDIS_QUEUE_DB"`

	// Clinic working hours drive the bookable slot grid.
	ClinicOpen      string `mapstructure:"CLINIC_OPEN"`  // "HH:MM"
	ClinicClose     string `mapstructure:"CLINIC_CLOSE"` // "HH:MM", exclusive
	SlotIntervalMin int    `mapstructure:"SLOT_INTERVAL_MIN"`

	// Checkout session lifetime and reminder lead time.
	CheckoutTTLMin  int `mapstructure:"CHECKOUT_TTL_MIN"`
	ReminderLeadMin int `mapstructure:"REMINDER_LEAD_MIN"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_CHECKOUT_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("CLINIC_OPEN", "09:00")
	viper.SetDefault("CLINIC_CLOSE", "17:00")
	viper.SetDefault("SLOT_INTERVAL_MIN", 30)
	viper.SetDefault("CHECKOUT_TTL_MIN", 30)
	viper.SetDefault("REMINDER_LEAD_MIN", 60)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
