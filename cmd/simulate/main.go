package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:8000"

// Simplified DTOs for the script
type storeEventRequest struct {
	SessionId string                 `json:"sessionId"`
	Source    string                 `json:"source"`
	Text      string                 `json:"text"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

type sessionEndRequest struct {
	SessionId string `json:"sessionId"`
}

type journalPollResponse struct {
	Status        string `json:"status"`
	SessionId     string `json:"session_id"`
	SummaryAction string `json:"summary_action"`
	RelatedMemory string `json:"related_memory"`
	Error         string `json:"error"`
}

func main() {
	sessionId := fmt.Sprintf("sim-%d", time.Now().Unix())

	color.Cyan("=== Journal Pipeline Simulation Client ===")
	color.Cyan("Session: %s", sessionId)

	events := []storeEventRequest{
		{SessionId: sessionId, Source: "ocr", Text: "TypeError: cannot read properties of undefined (reading 'map') at App.jsx:42"},
		{SessionId: sessionId, Source: "asr", Text: "okay this error again, last time I fixed it by guarding the fetch result"},
		{SessionId: sessionId, Source: "ocr", Text: "npm run dev -- server restarted, error gone"},
	}

	for _, ev := range events {
		if err := postJSON("/api/events", ev, nil); err != nil {
			log.Fatalf("Failed to store event: %v", err)
		}
		fmt.Printf("Stored [%s] %s\n", ev.Source, ev.Text)
	}

	color.Yellow("\nEnding session...")
	if err := postJSON("/api/session/end", sessionEndRequest{SessionId: sessionId}, nil); err != nil {
		log.Fatalf("Failed to end session: %v", err)
	}

	// Poll until the pipeline lands its terminal entry
	start := time.Now()
	for {
		var poll journalPollResponse
		if err := postJSON("/api/journal", sessionEndRequest{SessionId: sessionId}, &poll); err != nil {
			log.Fatalf("Poll failed: %v", err)
		}

		if poll.Status == "done" {
			elapsed := time.Since(start).Round(time.Millisecond)
			if poll.Error != "" {
				color.Red("\nJournal failed (%v): %s", elapsed, poll.Error)
				return
			}
			color.Green("\nJournal ready (%v)", elapsed)
			fmt.Printf("Summary: %s\n", poll.SummaryAction)
			if poll.RelatedMemory != "" {
				fmt.Printf("Related memory: %s\n", poll.RelatedMemory)
			}
			return
		}

		fmt.Print(".")
		time.Sleep(2 * time.Second)

		if time.Since(start) > 5*time.Minute {
			color.Red("\nTimed out waiting for journal entry")
			return
		}
	}
}

func postJSON(path string, payload interface{}, out interface{}) error {
	jsonBytes, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := http.Post(baseURL+path, "application/json", bytes.NewBuffer(jsonBytes))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API Error %d: %s", resp.StatusCode, string(body))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
