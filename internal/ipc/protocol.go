package ipc

import (
	"encoding/json"
	"fmt"
)

// CommandType represents different IPC command types
type CommandType string

const (
	CommandReload        CommandType = "RELOAD"
	CommandGetStatus     CommandType = "GET_STATUS"
	CommandGetStage      CommandType = "GET_STAGE"
	CommandSetStage      CommandType = "SET_STAGE"
	CommandListPanels    CommandType = "LIST_PANELS"
	CommandTogglePanel   CommandType = "TOGGLE_PANEL"
	CommandFocusPanel    CommandType = "FOCUS_PANEL"
	CommandMovePanel     CommandType = "MOVE_PANEL"
	CommandResizePanel   CommandType = "RESIZE_PANEL"
	CommandMaximizePanel CommandType = "MAXIMIZE_PANEL"
)

// Request represents an IPC request from client to server
type Request struct {
	Command CommandType     `json:"command"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response represents an IPC response from server to client
type Response struct {
	Status string          `json:"status"` // "OK" or "ERROR"
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// StatusData represents the data returned by GET_STATUS
type StatusData struct {
	PanelCount    int   `json:"panel_count"`
	OpenPanels    int   `json:"open_panels"`
	StageWidth    int   `json:"stage_width"`
	StageHeight   int   `json:"stage_height"`
	UptimeSeconds int64 `json:"uptime_seconds"`
	DaemonRunning bool  `json:"daemon_running"`
}

// StageData represents the data returned by GET_STAGE
type StageData struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// SetStagePayload represents the payload for SET_STAGE
type SetStagePayload struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// PanelInfo represents one panel's committed state
type PanelInfo struct {
	Kind      string `json:"kind"`
	Open      bool   `json:"open"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Z         int    `json:"z"`
	Maximized bool   `json:"maximized"`
}

// PanelsData represents the data returned by LIST_PANELS
type PanelsData struct {
	Panels []PanelInfo `json:"panels"`
}

// PanelPayload addresses a single panel by kind
type PanelPayload struct {
	Kind string `json:"kind"`
}

// MovePanelPayload represents the payload for MOVE_PANEL
type MovePanelPayload struct {
	Kind string `json:"kind"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// ResizePanelPayload represents the payload for RESIZE_PANEL
type ResizePanelPayload struct {
	Kind   string `json:"kind"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// NewOKResponse creates a successful response with optional data
func NewOKResponse(data interface{}) (*Response, error) {
	var dataBytes json.RawMessage
	if data != nil {
		bytes, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response data: %w", err)
		}
		dataBytes = bytes
	}

	return &Response{
		Status: "OK",
		Data:   dataBytes,
	}, nil
}

// NewErrorResponse creates an error response with a message
func NewErrorResponse(errMsg string) *Response {
	return &Response{
		Status: "ERROR",
		Error:  errMsg,
	}
}

// ParseRequest parses a request from JSON bytes
func ParseRequest(data []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}
	return &req, nil
}

// Marshal converts a response to JSON bytes
func (r *Response) Marshal() ([]byte, error) {
	return json.Marshal(r)
}
