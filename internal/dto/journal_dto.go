package dto

// Requests use the frontend's camelCase field names; responses use the
// snake_case keys the poll loop expects.

type SessionEndRequest struct {
	SessionId string `json:"sessionId" validate:"required"`
}

type SessionEndResponse struct {
	Status    string `json:"status"`
	SessionId string `json:"session_id"`
}

type JournalRequest struct {
	SessionId string `json:"sessionId" validate:"required"`
}

// JournalPollResponse is the poll surface contract: "processing" while no
// entry exists, "done" with either the summary fields or error set.
type JournalPollResponse struct {
	Status        string `json:"status"`
	SessionId     string `json:"session_id"`
	SummaryAction string `json:"summary_action,omitempty"`
	RelatedMemory string `json:"related_memory,omitempty"`
	Error         string `json:"error,omitempty"`
}

// PublishSessionEndMessage is the work-queue payload for one pipeline run.
type PublishSessionEndMessage struct {
	SessionId string `json:"session_id"`
}
