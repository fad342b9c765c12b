package models

// ============================================================================
// LLM MODEL CATALOGUE
// Static lookup table of the models the backend can be asked to use, with
// their published prices per million tokens. Used for cost display and for
// the mock backend's synthetic usage rows.
// ============================================================================

type LLMModel struct {
	Name                       string
	Provider                   string
	InputCostPerMillionTokens  float64
	OutputCostPerMillionTokens float64
}

const DefaultLLMModel = "gemini-2.5-flash-lite"

var LLMModels = []LLMModel{
	{"gemini-2.5-flash-lite", "google", 0.1, 0.4},
	{"gemini-2.5-flash", "google", 0.3, 2.5},
	{"gemini-2.5-pro", "google", 1.25, 10},
	{"gemini-3-flash-preview", "google", 0.5, 3},
	{"gemini-3-pro-preview", "google", 2, 12},
	{"deepseek-chat", "deepseek", 0.27, 0.42},
	{"deepseek-reasoner", "deepseek", 0.27, 0.42},
	{"gpt-5-nano", "openai", 0.05, 0.4},
	{"gpt-5-mini", "openai", 0.25, 2},
}

var llmIndex = func() map[string]LLMModel {
	m := make(map[string]LLMModel, len(LLMModels))
	for _, model := range LLMModels {
		m[model.Name] = model
	}
	return m
}()

// LookupLLMModel returns the catalogue entry for name.
func LookupLLMModel(name string) (LLMModel, bool) {
	m, ok := llmIndex[name]
	return m, ok
}

// EstimateCost computes the dollar cost of a call on the given model.
func EstimateCost(model string, inputTokens, outputTokens int) float64 {
	m, ok := llmIndex[model]
	if !ok {
		return 0
	}
	inputCost := float64(inputTokens) * m.InputCostPerMillionTokens / 1_000_000
	outputCost := float64(outputTokens) * m.OutputCostPerMillionTokens / 1_000_000
	return inputCost + outputCost
}
