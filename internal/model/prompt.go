package model

// PromptTemplate is the editable configuration behind one AI task: the
// system prompt text plus the sampling parameters sent with it.
type PromptTemplate struct {
	ID          string  `json:"id" bson:"_id"`
	Module      string  `json:"module" bson:"module"`
	Name        string  `json:"name" bson:"name"`
	Description string  `json:"description" bson:"description"`
	Prompt      string  `json:"prompt" bson:"prompt"`
	Temperature float64 `json:"temperature" bson:"temperature"`
	MaxTokens   int     `json:"maxTokens" bson:"maxTokens"`
}
