package env

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gaia-pathfinder/internal/application/port/output"

	"github.com/joho/godotenv"
)

var _ output.ConfigPort = (*EnvService)(nil)

type EnvService struct{}

// NewEnvService loads .env and then .env.<APP_ENV> into the process
// environment. Missing files are not an error.
func NewEnvService() *EnvService {
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "dev"
	}

	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Info: no .env file found, using process environment")
	}

	envFile := fmt.Sprintf(".env.%s", appEnv)
	if err := godotenv.Overload(envFile); err == nil {
		log.Printf("Environment overrides loaded from %s", envFile)
	}

	return &EnvService{}
}

// Get returns the value of key with surrounding whitespace removed.
func (e *EnvService) Get(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func (e *EnvService) GetWithDefault(key string, defaultValue string) string {
	if val := e.Get(key); val != "" {
		return val
	}
	return defaultValue
}

func (e *EnvService) GetBool(key string, defaultValue bool) bool {
	val := e.Get(key)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func (e *EnvService) GetInt(key string, defaultValue int) int {
	val := e.Get(key)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}
