package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Gemini   GeminiConfig
	Analysis AnalysisConfig
	Upload   UploadConfig
	Reports  ReportsConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type GeminiConfig struct {
	APIKey      string
	MatchModel  string
	AgentModel  string
	Temperature float32
}

type AnalysisConfig struct {
	MinResumeChars int
	MinJobChars    int
}

type UploadConfig struct {
	MaxFileSize int64
}

type ReportsConfig struct {
	// Max analyses kept in memory per process. Oldest are evicted first.
	Retention int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Gemini: GeminiConfig{
			APIKey:      getEnv("GEMINI_API_KEY", ""),
			MatchModel:  getEnv("GEMINI_MATCH_MODEL", "gemini-2.5-flash"),
			AgentModel:  getEnv("GEMINI_AGENT_MODEL", "gemini-2.5-flash"),
			Temperature: getEnvAsFloat32("GEMINI_TEMPERATURE", 0.3),
		},
		Analysis: AnalysisConfig{
			MinResumeChars: getEnvAsInt("MIN_RESUME_CHARS", 50),
			MinJobChars:    getEnvAsInt("MIN_JOB_CHARS", 30),
		},
		Upload: UploadConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Reports: ReportsConfig{
			Retention: getEnvAsInt("REPORT_RETENTION", 20),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 32); err == nil {
		return float32(value)
	}
	return defaultValue
}
