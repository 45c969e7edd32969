package dto

type CaptureRequest struct {
	SessionId string `json:"sessionId" validate:"required"`
	Filename  string `json:"filename" validate:"required"`
}

type CaptureResponse struct {
	Message string `json:"message"`
}

type TranscribeRequest struct {
	SessionId string `json:"sessionId" validate:"required"`
}

type TranscribeResponse struct {
	Message string `json:"message"`
}
