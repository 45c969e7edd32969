package dto

import "time"

type StoreEventRequest struct {
	SessionId string                 `json:"sessionId" validate:"required"`
	Source    string                 `json:"source" validate:"required"`
	Text      string                 `json:"text" validate:"required"`
	Timestamp *time.Time             `json:"timestamp"` // defaults to ingest time
	Metadata  map[string]interface{} `json:"metadata"`
}

type StoreEventResponse struct {
	EventId string `json:"event_id"`
	Status  string `json:"status"`
}

type ContextRequest struct {
	SessionId string `json:"sessionId" validate:"required"`
	Count     int    `json:"count"`
}

type ContextEventDTO struct {
	Id        string                 `json:"id"`
	SessionId string                 `json:"session_id"`
	Source    string                 `json:"source"`
	Text      string                 `json:"text"`
	Metadata  map[string]interface{} `json:"metadata"`
}

type ContextResponse struct {
	SessionId string            `json:"session_id"`
	Context   []ContextEventDTO `json:"context"`
	Count     int               `json:"count"`
}
