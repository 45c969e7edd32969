package service

import (
	"context"
	"fmt"
	"strings"

	"edge-journal-be/internal/dto"
	"edge-journal-be/internal/pkg/logger"
	"edge-journal-be/pkg/llm"
)

type IAssistantService interface {
	// Query answers a live question against the session's recent on-screen
	// and spoken context.
	Query(ctx context.Context, req *dto.QueryRequest) (*dto.QueryResponse, error)
}

type assistantService struct {
	llmProvider llm.LLMProvider
	log         logger.ILogger
}

func NewAssistantService(llmProvider llm.LLMProvider, log logger.ILogger) IAssistantService {
	return &assistantService{
		llmProvider: llmProvider,
		log:         log,
	}
}

func (s *assistantService) Query(ctx context.Context, req *dto.QueryRequest) (*dto.QueryResponse, error) {
	prompt := buildAssistantPrompt(req.UserInput, req.Context)

	response, err := s.llmProvider.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("assistant generation failed: %w", err)
	}

	s.log.Info("assistant", "Query answered", map[string]interface{}{
		"session_id":    req.SessionId,
		"context_items": len(req.Context),
	})

	return &dto.QueryResponse{
		Response:  response,
		SessionId: req.SessionId,
	}, nil
}

func buildAssistantPrompt(userInput string, context []dto.ContextEventDTO) string {
	var sb strings.Builder

	sb.WriteString("You are a helpful assistant observing the user's screen and audio.\n\n")

	if len(context) > 0 {
		sb.WriteString("Recent context from the user's session:\n")
		for i, item := range context {
			sb.WriteString(fmt.Sprintf("%d. [%s] %s\n", i+1, item.Source, item.Text))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("User question: ")
	sb.WriteString(userInput)
	sb.WriteString("\n\nAnswer concisely based on the context above.")

	return sb.String()
}
