package constants

const (
	OpenAI = "openai"
	Gemini = "gemini"
)

const (
	OpenAIModel               = "gpt-4o"
	OpenAITemperature         = 0
	OpenAIMaxCompletionTokens = 1024

	GeminiModel               = "gemini-pro"
	GeminiTemperature         = 0
	GeminiMaxCompletionTokens = 1024
)
