package llm

import "docassist/internal/config"

func testConfig(modelType string) *config.Config {
	return &config.Config{
		ModelType:     modelType,
		ModelName:     "test-model",
		ModelDevice:   "cpu",
		OllamaBaseURL: "http://localhost:11434",
		OpenAIKey:     "test-key",
	}
}
