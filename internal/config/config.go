package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config carries everything the server reads from the environment.
type Config struct {
	Port        string
	MongoURI    string
	DBName      string
	JWTSecret   string
	ExternalURL string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
}

// Load reads .env (when present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	v := viper.New()
	v.SetDefault("PORT", "3000")
	v.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	v.SetDefault("DB_NAME", "quran_platform")
	v.SetDefault("JWT_SECRET", "dev-secret-change-me")
	v.AutomaticEnv()

	return &Config{
		Port:        v.GetString("PORT"),
		MongoURI:    v.GetString("MONGODB_URI"),
		DBName:      v.GetString("DB_NAME"),
		JWTSecret:   v.GetString("JWT_SECRET"),
		ExternalURL: v.GetString("EXTERNAL_URL"),

		CloudinaryCloudName: v.GetString("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    v.GetString("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: v.GetString("CLOUDINARY_API_SECRET"),
	}
}
