package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	Redis         RedisConfig
	Storage       StorageConfig
	Transcription TranscriptionConfig
	LLM           LLMConfig
	Engine        EngineConfig
	VAD           VADConfig
	Cache         CacheConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	AllowedOrigins  []string
	ShutdownTimeout int
	MaxUploadMB     int64
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	MaxConns    int
	MinConns    int
	AutoMigrate bool
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// StorageConfig holds storage configuration
type StorageConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	UseSSL          bool
}

// TranscriptionConfig holds speech-to-text configuration
type TranscriptionConfig struct {
	AssemblyAIAPIKey string
	LanguageCode     string
	PollInterval     time.Duration
}

// LLMConfig holds chat-completion configuration for contextual filler
// judgment and feedback generation
type LLMConfig struct {
	GroqAPIKey    string
	Model         string
	BaseURL       string
	Timeout       time.Duration
	MaxAttempts   int
	RetryInterval time.Duration
}

// EngineConfig holds speech-analysis tuning
type EngineConfig struct {
	MinPauseGap      float64
	SilenceFactor    float64
	LongPauseSec     float64
	PauseTolerance   float64
	FillerClusterGap float64
	MinComfortWPM    float64
	MaxComfortWPM    float64
}

// VADConfig holds voice-activity-detection configuration
type VADConfig struct {
	SileroModelPath string
	SileroThreshold float64
}

// CacheConfig holds result and verdict cache TTLs
type CacheConfig struct {
	VerdictTTL time.Duration
	ResultTTL  time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			AllowedOrigins:  []string{getEnv("ALLOWED_ORIGINS", "http://localhost:3000")},
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
			MaxUploadMB:     int64(getEnvAsInt("MAX_UPLOAD_MB", 100)),
		},
		Database: DatabaseConfig{
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        getEnv("DB_PORT", "5432"),
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", "postgres"),
			Name:        getEnv("DB_NAME", "speech_coach"),
			SSLMode:     getEnv("DB_SSLMODE", "disable"),
			MaxConns:    getEnvAsInt("DB_MAX_CONNS", 25),
			MinConns:    getEnvAsInt("DB_MIN_CONNS", 5),
			AutoMigrate: getEnvAsBool("DB_AUTO_MIGRATE", true),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Storage: StorageConfig{
			Endpoint:        getEnv("STORAGE_ENDPOINT", "localhost:9000"),
			AccessKeyID:     getEnv("STORAGE_ACCESS_KEY", "minioadmin"),
			SecretAccessKey: getEnv("STORAGE_SECRET_KEY", "minioadmin"),
			BucketName:      getEnv("STORAGE_BUCKET", "speech-coach"),
			UseSSL:          getEnvAsBool("STORAGE_USE_SSL", false),
		},
		Transcription: TranscriptionConfig{
			AssemblyAIAPIKey: getEnv("ASSEMBLYAI_API_KEY", ""),
			LanguageCode:     getEnv("TRANSCRIPTION_LANGUAGE", "ru"),
			PollInterval:     getEnvAsDuration("TRANSCRIPTION_POLL_INTERVAL", "3s"),
		},
		LLM: LLMConfig{
			GroqAPIKey:    getEnv("GROQ_API_KEY", ""),
			Model:         getEnv("LLM_MODEL", "llama-3.3-70b-versatile"),
			BaseURL:       getEnv("LLM_BASE_URL", "https://api.groq.com/openai/v1"),
			Timeout:       getEnvAsDuration("LLM_TIMEOUT", "60s"),
			MaxAttempts:   getEnvAsInt("LLM_MAX_ATTEMPTS", 3),
			RetryInterval: getEnvAsDuration("LLM_RETRY_INTERVAL", "1s"),
		},
		Engine: EngineConfig{
			MinPauseGap:      getEnvAsFloat("ENGINE_MIN_PAUSE_GAP", 0.5),
			SilenceFactor:    getEnvAsFloat("ENGINE_SILENCE_FACTOR", 0.35),
			LongPauseSec:     getEnvAsFloat("ENGINE_LONG_PAUSE_SEC", 2.5),
			PauseTolerance:   getEnvAsFloat("ENGINE_PAUSE_TOLERANCE", 0.25),
			FillerClusterGap: getEnvAsFloat("ENGINE_FILLER_CLUSTER_GAP", 2.0),
			MinComfortWPM:    getEnvAsFloat("ENGINE_MIN_COMFORT_WPM", 100),
			MaxComfortWPM:    getEnvAsFloat("ENGINE_MAX_COMFORT_WPM", 180),
		},
		VAD: VADConfig{
			SileroModelPath: getEnv("SILERO_MODEL_PATH", ""),
			SileroThreshold: getEnvAsFloat("SILERO_THRESHOLD", 0.5),
		},
		Cache: CacheConfig{
			VerdictTTL: getEnvAsDuration("CACHE_VERDICT_TTL", "168h"),
			ResultTTL:  getEnvAsDuration("CACHE_RESULT_TTL", "24h"),
		},
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Transcription.AssemblyAIAPIKey == "" {
		return fmt.Errorf("ASSEMBLYAI_API_KEY is required")
	}
	return nil
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// Helper functions

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

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}
