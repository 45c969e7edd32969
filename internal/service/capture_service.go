package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"edge-journal-be/internal/dto"
	"edge-journal-be/internal/entity"
	"edge-journal-be/internal/pkg/logger"
	"edge-journal-be/pkg/asr"
	"edge-journal-be/pkg/ocr"

	"github.com/google/uuid"
)

type ICaptureService interface {
	// ProcessCapture runs OCR on a captured frame and stores the
	// recognized text as an ocr event for the session.
	ProcessCapture(ctx context.Context, req *dto.CaptureRequest) (*dto.CaptureResponse, error)

	// TranscribeLatest transcribes the newest recording and stores each
	// segment as an asr event for the session.
	TranscribeLatest(ctx context.Context, req *dto.TranscribeRequest) (*dto.TranscribeResponse, error)
}

type captureService struct {
	ocrEngine     ocr.Engine
	asrEngine     asr.Engine
	eventService  IEventService
	recordingsDir string
	log           logger.ILogger
}

func NewCaptureService(
	ocrEngine ocr.Engine,
	asrEngine asr.Engine,
	eventService IEventService,
	recordingsDir string,
	log logger.ILogger,
) ICaptureService {
	return &captureService{
		ocrEngine:     ocrEngine,
		asrEngine:     asrEngine,
		eventService:  eventService,
		recordingsDir: recordingsDir,
		log:           log,
	}
}

func (s *captureService) ProcessCapture(ctx context.Context, req *dto.CaptureRequest) (*dto.CaptureResponse, error) {
	text, err := s.ocrEngine.Recognize(ctx, req.Filename)
	if err != nil {
		return nil, fmt.Errorf("ocr recognition failed: %w", err)
	}

	if strings.TrimSpace(text) == "" {
		return &dto.CaptureResponse{Message: "no text recognized"}, nil
	}

	_, err = s.eventService.Store(ctx, &dto.StoreEventRequest{
		SessionId: req.SessionId,
		Source:    entity.EventSourceOCR,
		Text:      text,
		Metadata:  map[string]interface{}{"image_file": req.Filename},
	})
	if err != nil {
		return nil, fmt.Errorf("store ocr event: %w", err)
	}

	s.log.Info("capture", "Frame processed", map[string]interface{}{
		"session_id": req.SessionId,
		"filename":   req.Filename,
		"text_len":   len(text),
	})

	return &dto.CaptureResponse{Message: "capture processed"}, nil
}

func (s *captureService) TranscribeLatest(ctx context.Context, req *dto.TranscribeRequest) (*dto.TranscribeResponse, error) {
	audioPath, err := s.latestRecording()
	if err != nil {
		return nil, err
	}

	segments, err := s.asrEngine.Transcribe(ctx, audioPath)
	if err != nil {
		return nil, fmt.Errorf("transcription failed: %w", err)
	}

	now := time.Now()
	rawEvents := make([]*entity.RawEvent, 0, len(segments))
	for _, seg := range segments {
		if strings.TrimSpace(seg.Text) == "" {
			continue
		}
		rawEvents = append(rawEvents, &entity.RawEvent{
			Id:        uuid.New(),
			SessionId: req.SessionId,
			Source:    entity.EventSourceASR,
			Timestamp: now,
			Text:      seg.Text,
			Metadata: map[string]interface{}{
				"audio_file": filepath.Base(audioPath),
				"start":      seg.Start,
				"end":        seg.End,
			},
			CreatedAt: now,
		})
	}

	if len(rawEvents) > 0 {
		if err := s.eventService.StoreBulk(ctx, rawEvents); err != nil {
			return nil, fmt.Errorf("store asr events: %w", err)
		}
	}

	s.log.Info("capture", "Recording transcribed", map[string]interface{}{
		"session_id": req.SessionId,
		"audio_file": filepath.Base(audioPath),
		"segments":   len(rawEvents),
	})

	return &dto.TranscribeResponse{
		Message: fmt.Sprintf("transcribed %d segments", len(rawEvents)),
	}, nil
}

// latestRecording returns the most recently modified .wav under the
// recordings directory.
func (s *captureService) latestRecording() (string, error) {
	entries, err := os.ReadDir(s.recordingsDir)
	if err != nil {
		return "", fmt.Errorf("read recordings dir: %w", err)
	}

	var newest string
	var newestMod time.Time
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".wav") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if newest == "" || info.ModTime().After(newestMod) {
			newest = e.Name()
			newestMod = info.ModTime()
		}
	}

	if newest == "" {
		return "", fmt.Errorf("no recordings found in %s", s.recordingsDir)
	}
	return filepath.Join(s.recordingsDir, newest), nil
}
