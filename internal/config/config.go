package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Model backend types and database connector kinds accepted by Validate.
const (
	ModelDummy        = "dummy"
	ModelTransformers = "transformers"
	ModelLangChain    = "langchain"
)

type Config struct {
	ServerAddr string
	DataDir    string

	ModelType   string
	ModelName   string
	ModelDevice string

	OllamaBaseURL string
	OpenAIKey     string
	OpenAIBaseURL string

	DBType      string
	DatabaseURL string
	SQLitePath  string

	WatchFiles bool
	TopK       int
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerAddr:    getenv("SERVER_ADDR", ":8080"),
		DataDir:       getenv("HOST_DATA_DIR", "data/files"),
		ModelType:     getenv("MODEL_TYPE", ModelDummy),
		ModelName:     getenv("MODEL_NAME", ""),
		ModelDevice:   getenv("MODEL_DEVICE", "cpu"),
		OllamaBaseURL: getenv("OLLAMA_BASE_URL", "http://localhost:11434"),
		OpenAIKey:     getenv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getenv("OPENAI_BASE_URL", ""),
		DBType:        getenv("DB_TYPE", "none"),
		DatabaseURL:   getenv("DATABASE_URL", ""),
		SQLitePath:    getenv("SQLITE_PATH", "data/assistant.db"),
		WatchFiles:    getenvBool("WATCH_FILES", true),
		TopK:          getenvInt("RETRIEVE_TOP_K", 3),
	}
}

// Validate fails fast on configuration the rest of the app cannot act on.
func (c *Config) Validate() error {
	switch c.ModelType {
	case ModelDummy, ModelTransformers, ModelLangChain:
	default:
		return fmt.Errorf("invalid MODEL_TYPE %q: must be dummy, transformers or langchain", c.ModelType)
	}
	switch c.ModelDevice {
	case "cpu", "cuda":
	default:
		return fmt.Errorf("invalid MODEL_DEVICE %q: must be cpu or cuda", c.ModelDevice)
	}
	if c.ModelType == ModelLangChain && c.OpenAIKey == "" {
		return fmt.Errorf("MODEL_TYPE=langchain requires OPENAI_API_KEY")
	}
	switch c.DBType {
	case "none", "sqlite", "postgres", "mockvector":
	default:
		return fmt.Errorf("invalid DB_TYPE %q: must be none, sqlite, postgres or mockvector", c.DBType)
	}
	if c.DBType == "postgres" && c.DatabaseURL == "" {
		return fmt.Errorf("DB_TYPE=postgres requires DATABASE_URL")
	}
	if c.TopK <= 0 {
		return fmt.Errorf("RETRIEVE_TOP_K must be positive, got %d", c.TopK)
	}
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
