package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	APIPort  string
	LogLevel string

	RandomSeed uint64

	ProcessingDelayMinMs int
	ProcessingDelayMaxMs int

	TypingDelayPerCharMs int
	TypingDelayMaxMs     int
	TypingDelayBaseMs    int

	APIRateLimitRPS         int
	APIRateLimitBurst       int
	BackpressureMaxInFlight int
	BackpressureWaitMs      int
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		APIPort:  mustEnv("API_PORT", "8080"),
		LogLevel: mustEnv("LOG_LEVEL", "info"),

		RandomSeed: uint64(mustEnvInt("RANDOM_SEED", 0)),

		ProcessingDelayMinMs: mustEnvInt("PROCESSING_DELAY_MIN_MS", 2000),
		ProcessingDelayMaxMs: mustEnvInt("PROCESSING_DELAY_MAX_MS", 5000),

		TypingDelayPerCharMs: mustEnvInt("TYPING_DELAY_PER_CHAR_MS", 15),
		TypingDelayMaxMs:     mustEnvInt("TYPING_DELAY_MAX_MS", 3000),
		TypingDelayBaseMs:    mustEnvInt("TYPING_DELAY_BASE_MS", 800),

		APIRateLimitRPS:         mustEnvInt("API_RATE_LIMIT_RPS", 0),
		APIRateLimitBurst:       mustEnvInt("API_RATE_LIMIT_BURST", 0),
		BackpressureMaxInFlight: mustEnvInt("BACKPRESSURE_MAX_IN_FLIGHT", 0),
		BackpressureWaitMs:      mustEnvInt("BACKPRESSURE_WAIT_MS", 100),
	}
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
