package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// SidecarEngine calls a local OCR inference process over HTTP.
type SidecarEngine struct {
	BaseURL string
	Client  *http.Client
}

var _ Engine = &SidecarEngine{}

func NewSidecarEngine(baseURL string) *SidecarEngine {
	return &SidecarEngine{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type recognizeRequest struct {
	Filename string `json:"filename"`
}

type recognizeResponse struct {
	Text string `json:"text"`
}

func (e *SidecarEngine) Recognize(ctx context.Context, imagePath string) (string, error) {
	payloadBytes, err := json.Marshal(recognizeRequest{Filename: imagePath})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := e.BaseURL + "/ocr"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ocr request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ocr error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var result recognizeResponse
	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	return result.Text, nil
}
