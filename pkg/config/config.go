package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string

	DataDir  string
	ImageDir string

	JWTSecret string
	JWTExpiry int64

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	MailFrom     string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:  getEnv("SERVER_PORT", "5000"),
		Environment: getEnv("ENVIRONMENT", "development"),

		DataDir:  getEnv("DATA_DIR", "data/json"),
		ImageDir: getEnv("IMAGE_DIR", "data/images"),

		JWTSecret: getEnv("JWT_SECRET", "your-secret-key"),
		JWTExpiry: getEnvAsInt64("JWT_EXPIRY", 24*60*60), // 24 hours

		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUser:     getEnv("EMAIL_USER", ""),
		SMTPPassword: getEnv("EMAIL_PASSWORD", ""),
		MailFrom:     getEnv("EMAIL_FROM", ""),
	}

	if config.MailFrom == "" {
		config.MailFrom = config.SMTPUser
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
