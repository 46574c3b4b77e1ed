package config

import "os"

type Config struct {
	Port              string
	MongoURI          string
	MongoDatabase     string
	SMTPHost          string
	SMTPPort          string
	EmailUser         string // also the From address
	EmailPass         string
	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioPhoneNumber string // sender number, E.164
	PlatformBaseURL   string // base for invitation and verification links
}

func Load() *Config {
	return &Config{
		Port:              getEnv("API_PORT", "8092"),
		MongoURI:          getEnv("MONGO_URI", ""),
		MongoDatabase:     getEnv("MONGO_DATABASE", ""),
		SMTPHost:          getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:          getEnv("SMTP_PORT", "587"),
		EmailUser:         getEnv("EMAIL_USER", ""),
		EmailPass:         getEnv("EMAIL_PASS", ""),
		TwilioAccountSID:  getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:   getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioPhoneNumber: getEnv("TWILIO_PHONE_NUMBER", ""),
		PlatformBaseURL:   getEnv("PLATFORM_BASE_URL", "https://your-platform.com"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
