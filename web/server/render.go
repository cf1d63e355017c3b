package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/df07/go-lambert-raytracer/pkg/core"
	"github.com/df07/go-lambert-raytracer/pkg/output"
	"github.com/df07/go-lambert-raytracer/pkg/renderer"
)

const maxWorkers = 64

// RenderRequest represents a render request from the client
type RenderRequest struct {
	SceneParams
	Workers int `json:"workers"` // Row workers, 0 = one per CPU
}

// RenderResult is sent once the frame is complete
type RenderResult struct {
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	ImageData      string  `json:"imageData"` // Base64 encoded PNG
	ElapsedMs      int64   `json:"elapsedMs"`
	TotalPixels    int     `json:"totalPixels"`
	Hits           int     `json:"hits"`
	Misses         int     `json:"misses"`
	Workers        int     `json:"workers"`
	AverageValue   float64 `json:"averageIntensity"`
	MaxValue       float64 `json:"maxIntensity"`
	PrimitiveCount int     `json:"primitiveCount"`
}

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "frame", "error", "complete"
	Data string `json:"data"` // JSON-encoded data
}

// handleRender renders a scene and streams console output and the finished
// frame via SSE
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)
	ctx := r.Context()

	// Single writer goroutine owns w until the channel is closed
	sseEventChan := make(chan SSEEvent, 100)
	var writerDone sync.WaitGroup
	writerDone.Add(1)
	go func() {
		defer writerDone.Done()
		s.writeSSEEvents(ctx, w, sseEventChan)
	}()
	defer func() {
		close(sseEventChan)
		writerDone.Wait()
	}()

	req, err := parseRenderRequest(r)
	if err != nil {
		s.sendEvent(ctx, sseEventChan, SSEEvent{Type: "error", Data: fmt.Sprintf("Invalid request: %v", err)})
		return
	}

	consoleChan, webLogger := s.setupConsoleLogging()
	var consoleDone sync.WaitGroup
	consoleDone.Add(1)
	go func() {
		defer consoleDone.Done()
		s.streamConsoleMessages(ctx, consoleChan, sseEventChan)
	}()

	result, err := s.render(ctx, req, webLogger)

	// Flush console output ahead of the result
	close(consoleChan)
	consoleDone.Wait()

	if err != nil {
		s.sendEvent(ctx, sseEventChan, SSEEvent{Type: "error", Data: fmt.Sprintf("Rendering failed: %v", err)})
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		log.Printf("Error marshaling render result: %v", err)
		return
	}
	s.sendEvent(ctx, sseEventChan, SSEEvent{Type: "frame", Data: string(data)})
	s.sendEvent(ctx, sseEventChan, SSEEvent{Type: "complete", Data: "Rendering completed"})
}

// render builds the requested scene and renders one frame
func (s *Server) render(ctx context.Context, req *RenderRequest, logger core.Logger) (*RenderResult, error) {
	sceneObj, err := s.createScene(req.Scene, logger)
	if err != nil {
		return nil, err
	}

	startTime := time.Now()
	raytracer := renderer.NewRaytracer(sceneObj, sceneObj.Camera, req.Width, req.Height)
	raytracer.SetWorkers(req.Workers)
	raytracer.SetLogger(logger)

	frame, err := raytracer.Render(ctx)
	if err != nil {
		return nil, err
	}

	imageData, err := frameToBase64PNG(frame)
	if err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &RenderResult{
		Width:          frame.Width,
		Height:         frame.Height,
		ImageData:      imageData,
		ElapsedMs:      time.Since(startTime).Milliseconds(),
		TotalPixels:    frame.Stats.TotalPixels,
		Hits:           frame.Stats.Hits,
		Misses:         frame.Stats.Misses,
		Workers:        frame.Stats.Workers,
		AverageValue:   frame.Stats.AverageIntensity,
		MaxValue:       frame.Stats.MaxIntensity,
		PrimitiveCount: sceneObj.PrimitiveCount(),
	}, nil
}

// parseRenderRequest parses request parameters
func parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	params, err := parseSceneParams(r.URL.Query())
	if err != nil {
		return nil, err
	}

	req := &RenderRequest{SceneParams: params}
	if req.Workers, err = parseIntParam(r.URL.Query(), "workers", 0, 0, maxWorkers); err != nil {
		return nil, err
	}
	return req, nil
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// setupConsoleLogging creates console channel and web logger for a render
func (s *Server) setupConsoleLogging() (chan ConsoleMessage, core.Logger) {
	consoleChan := make(chan ConsoleMessage, 50)
	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	return consoleChan, NewWebLogger(renderID, consoleChan)
}

// writeSSEEvents writes events until the channel is closed or the client
// goes away
func (s *Server) writeSSEEvents(ctx context.Context, w http.ResponseWriter, sseEventChan <-chan SSEEvent) {
	disconnected := false
	for event := range sseEventChan {
		// Keep draining so senders never block
		if disconnected || ctx.Err() != nil {
			disconnected = true
			continue
		}

		if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
			disconnected = true
			continue
		}
		if flusher, ok := w.(http.Flusher); ok {
			flusher.Flush()
		}
	}
}

// streamConsoleMessages forwards console messages as SSE events
func (s *Server) streamConsoleMessages(ctx context.Context, consoleChan <-chan ConsoleMessage, sseEventChan chan<- SSEEvent) {
	for consoleMsg := range consoleChan {
		data, err := json.Marshal(consoleMsg)
		if err != nil {
			log.Printf("Error marshaling console message: %v", err)
			continue
		}
		s.sendEvent(ctx, sseEventChan, SSEEvent{Type: "console", Data: string(data)})
	}
}

func (s *Server) sendEvent(ctx context.Context, sseEventChan chan<- SSEEvent, event SSEEvent) {
	select {
	case sseEventChan <- event:
	case <-ctx.Done():
	}
}

// frameToBase64PNG converts a frame to base64-encoded PNG
func frameToBase64PNG(frame *renderer.Frame) (string, error) {
	var buf bytes.Buffer
	if err := output.EncodePNG(&buf, frame.Pixels, frame.Width, frame.Height); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
