package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port   string
	DBPath string

	RedisAddr     string
	RedisPort     string
	RedisPassword string

	// Optional shared token for the local API. Empty disables auth.
	APIToken string

	// Provider credentials. Availability of catalog models is derived
	// from these at refresh time.
	OllamaHost      string
	AnthropicAPIKey string
	OpenAIAPIKey    string
	DeepSeekAPIKey  string

	// Cost estimation constants. These are projection inputs, not billing
	// data; they are env-tunable so the estimator carries no magic numbers.
	TokensPerCall    int
	InputShare       float64
	NumStrategies    int
	TokensPerVariant int
	CallsStrategic   int
	CallsCoordinator int
	CallsHealthCheck int

	// Monthly budget ceiling in USD. Zero means no ceiling.
	MonthlyBudget float64

	// Log configuration
	LogLevel      string
	LogFilename   string
	LogMaxSize    int
	LogMaxBackups int
	LogMaxAge     int
	LogCompress   bool
}

func (c *Config) RedisFullAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisAddr, c.RedisPort)
}

// ProviderCredentials reports, per provider, whether the credential (or
// local runtime) needed to call it is configured.
func (c *Config) ProviderCredentials() map[string]bool {
	return map[string]bool{
		"ollama":    c.OllamaHost != "",
		"anthropic": c.AnthropicAPIKey != "",
		"openai":    c.OpenAIAPIKey != "",
		"deepseek":  c.DeepSeekAPIKey != "",
	}
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		// Ignore error if .env file is not found
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return &Config{
		Port:   getEnv("PORT", "8173"),
		DBPath: getEnv("DB_PATH", "factory.db"),

		RedisAddr:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		APIToken: os.Getenv("FACTORY_API_TOKEN"),

		OllamaHost:      os.Getenv("OLLAMA_HOST"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		DeepSeekAPIKey:  os.Getenv("DEEPSEEK_API_KEY"),

		TokensPerCall:    getEnvAsInt("EST_TOKENS_PER_CALL", 2000),
		InputShare:       getEnvAsFloat("EST_INPUT_SHARE", 0.75),
		NumStrategies:    getEnvAsInt("EST_NUM_STRATEGIES", 6),
		TokensPerVariant: getEnvAsInt("EST_TOKENS_PER_VARIANT", 3000),
		CallsStrategic:   getEnvAsInt("EST_CALLS_STRATEGIC", 50),
		CallsCoordinator: getEnvAsInt("EST_CALLS_COORDINATOR", 200),
		CallsHealthCheck: getEnvAsInt("EST_CALLS_HEALTH_CHECK", 120),

		MonthlyBudget: getEnvAsFloat("MONTHLY_BUDGET", 0),

		LogLevel:      getEnv("LOG_LEVEL", "INFO"),
		LogFilename:   getEnv("LOG_FILENAME", "logs/factory.log"),
		LogMaxSize:    getEnvAsInt("LOG_MAX_SIZE", 100),
		LogMaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 3),
		LogMaxAge:     getEnvAsInt("LOG_MAX_AGE", 28),
		LogCompress:   getEnvAsBool("LOG_COMPRESS", true),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.Atoi(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseBool(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}
