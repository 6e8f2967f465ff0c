package config

import "os"

// Config holds server and backing-store settings, all env-driven.
type Config struct {
	MongoURI          string
	MongoDatabase     string
	RedisAddr         string
	HTTPPort          string
	JWTSecret         string
	ProfessorPasscode string
}

// Load reads the configuration from the environment with local defaults.
func Load() *Config {
	return &Config{
		MongoURI:          getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:     getEnvOrDefault("MONGO_DATABASE", "codexam"),
		RedisAddr:         getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		HTTPPort:          getEnvOrDefault("PORT", "8080"),
		JWTSecret:         getEnvOrDefault("JWT_SECRET", "super-secret-key-change-in-production"),
		ProfessorPasscode: getEnvOrDefault("PROFESSOR_PASSCODE", "422025"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
