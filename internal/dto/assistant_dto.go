package dto

type QueryRequest struct {
	SessionId string            `json:"sessionId" validate:"required"`
	UserInput string            `json:"userInput" validate:"required"`
	Context   []ContextEventDTO `json:"context"`
}

type QueryResponse struct {
	Response  string `json:"response"`
	SessionId string `json:"session_id"`
}
