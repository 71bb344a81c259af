package config

import (
	"fmt"
	"os"
	"strconv"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type KafkaConfig struct {
	Brokers []string
}

// ScoringConfig carries the decision-band thresholds as whole percentages.
type ScoringConfig struct {
	PremiumThreshold    int
	AcceptableThreshold int
}

type Config struct {
	GRPCPort           int
	HTTPPort           int
	DB                 DatabaseConfig
	Kafka              KafkaConfig
	Scoring            ScoringConfig
	RecomputeInterval  int // minutes between stale-recompute runs; 0 disables
	ServiceName        string
}

func (c Config) Validate() {
	if c.DB.Password == "" {
		panic("DB_PASSWORD environment variable is required")
	}
	if c.Scoring.AcceptableThreshold >= c.Scoring.PremiumThreshold {
		panic("SCORING_ACCEPTABLE_THRESHOLD must be below SCORING_PREMIUM_THRESHOLD")
	}
}

func Load() Config {
	return Config{
		GRPCPort: getEnvInt("GRPC_PORT", 9093),
		HTTPPort: getEnvInt("HTTP_PORT", 8093),
		DB: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "assessment"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "assessments"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
		},
		Kafka: KafkaConfig{
			Brokers: []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
		},
		Scoring: ScoringConfig{
			PremiumThreshold:    getEnvInt("SCORING_PREMIUM_THRESHOLD", 85),
			AcceptableThreshold: getEnvInt("SCORING_ACCEPTABLE_THRESHOLD", 60),
		},
		RecomputeInterval: getEnvInt("RECOMPUTE_INTERVAL_MINUTES", 30),
		ServiceName:       "assessment-service",
	}
}

func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
