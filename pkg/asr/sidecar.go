package asr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// SidecarEngine calls a local ASR inference process over HTTP.
type SidecarEngine struct {
	BaseURL string
	Client  *http.Client
}

var _ Engine = &SidecarEngine{}

func NewSidecarEngine(baseURL string) *SidecarEngine {
	return &SidecarEngine{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 120 * time.Second, // whole-file transcription can be slow on CPU
		},
	}
}

type transcribeRequest struct {
	Filename string `json:"filename"`
}

type transcribeResponse struct {
	Segments []Segment `json:"segments"`
}

func (e *SidecarEngine) Transcribe(ctx context.Context, audioPath string) ([]Segment, error) {
	payloadBytes, err := json.Marshal(transcribeRequest{Filename: audioPath})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := e.BaseURL + "/transcribe"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("asr request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("asr error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var result transcribeResponse
	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return result.Segments, nil
}
