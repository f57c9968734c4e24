package ipc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/1broseidon/stagehand/internal/geom"
	"github.com/1broseidon/stagehand/internal/panel"
	"github.com/1broseidon/stagehand/internal/runtimepath"
)

// StageSetter applies a new fixed stage size. Servers running against a
// display-tracked stage pass nil and SET_STAGE is rejected.
type StageSetter func(geom.Size) error

// Server handles IPC requests from clients
type Server struct {
	socketPath   string
	listener     net.Listener
	reg          *panel.Registry
	setStage     StageSetter
	startTime    time.Time
	reloadChan   chan struct{}
	shuttingDown bool
	shutdownMu   sync.Mutex
}

// NewServer creates a new IPC server
func NewServer(reg *panel.Registry, setStage StageSetter, reloadChan chan struct{}) (*Server, error) {
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve IPC socket path: %w", err)
	}

	// Remove existing socket if present
	os.Remove(socketPath)

	return &Server{
		socketPath: socketPath,
		reg:        reg,
		setStage:   setStage,
		startTime:  time.Now(),
		reloadChan: reloadChan,
	}, nil
}

// Start begins listening for IPC connections
func (s *Server) Start() error {
	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("failed to create IPC socket: %w", err)
	}
	s.listener = listener

	// Set socket permissions
	if err := os.Chmod(s.socketPath, 0600); err != nil {
		return fmt.Errorf("failed to set socket permissions: %w", err)
	}

	log.Printf("IPC server listening on %s", s.socketPath)

	go s.acceptLoop()

	return nil
}

// acceptLoop accepts incoming connections
func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			s.shutdownMu.Lock()
			if s.shuttingDown {
				s.shutdownMu.Unlock()
				return
			}
			s.shutdownMu.Unlock()
			log.Printf("IPC accept error: %v", err)
			continue
		}

		go s.handleConnection(conn)
	}
}

// handleConnection handles a single IPC connection
func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	reader := bufio.NewReader(conn)

	// Read the request (expect JSON on a single line)
	data, err := reader.ReadBytes('\n')
	if err != nil && err != io.EOF {
		log.Printf("IPC read error: %v", err)
		return
	}

	req, err := ParseRequest(data)
	if err != nil {
		s.sendError(conn, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	resp := s.handleCommand(req)

	respData, err := resp.Marshal()
	if err != nil {
		log.Printf("Failed to marshal response: %v", err)
		return
	}

	respData = append(respData, '\n')
	if _, err := conn.Write(respData); err != nil {
		log.Printf("Failed to send response: %v", err)
	}
}

// handleCommand processes an IPC command and returns a response
func (s *Server) handleCommand(req *Request) *Response {
	switch req.Command {
	case CommandReload:
		return s.handleReload()
	case CommandGetStatus:
		return s.handleGetStatus()
	case CommandGetStage:
		return s.handleGetStage()
	case CommandSetStage:
		return s.handleSetStage(req.Payload)
	case CommandListPanels:
		return s.handleListPanels()
	case CommandTogglePanel:
		return s.handleTogglePanel(req.Payload)
	case CommandFocusPanel:
		return s.handleFocusPanel(req.Payload)
	case CommandMovePanel:
		return s.handleMovePanel(req.Payload)
	case CommandResizePanel:
		return s.handleResizePanel(req.Payload)
	case CommandMaximizePanel:
		return s.handleMaximizePanel(req.Payload)
	default:
		return NewErrorResponse(fmt.Sprintf("Unknown command: %s", req.Command))
	}
}

// handleReload notifies the daemon to reload its configuration
func (s *Server) handleReload() *Response {
	log.Println("IPC: Received RELOAD command")

	if s.reloadChan == nil {
		return NewErrorResponse("Reload is not supported by this server")
	}

	// Notify the main daemon via channel (non-blocking)
	select {
	case s.reloadChan <- struct{}{}:
	default:
	}

	resp, _ := NewOKResponse(nil)
	return resp
}

// handleGetStatus returns current daemon status
func (s *Server) handleGetStatus() *Response {
	snap := s.reg.Snapshot()
	stage := s.reg.Stage()

	open := 0
	for _, st := range snap {
		if st.Open {
			open++
		}
	}

	status := StatusData{
		PanelCount:    len(snap),
		OpenPanels:    open,
		StageWidth:    stage.Width,
		StageHeight:   stage.Height,
		UptimeSeconds: int64(time.Since(s.startTime).Seconds()),
		DaemonRunning: true,
	}

	resp, _ := NewOKResponse(status)
	return resp
}

// handleGetStage returns the current stage rectangle
func (s *Server) handleGetStage() *Response {
	stage := s.reg.Stage()

	resp, _ := NewOKResponse(StageData{
		Width:  stage.Width,
		Height: stage.Height,
	})
	return resp
}

// handleSetStage pins the stage to a new size when the daemon allows it
func (s *Server) handleSetStage(payload json.RawMessage) *Response {
	var req SetStagePayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return NewErrorResponse(fmt.Sprintf("Invalid stage payload: %v", err))
	}
	if req.Width <= 0 || req.Height <= 0 {
		return NewErrorResponse(fmt.Sprintf("Stage size must be positive, got %dx%d", req.Width, req.Height))
	}

	if s.setStage == nil {
		return NewErrorResponse("Stage is tracked from the display and cannot be set")
	}

	if err := s.setStage(geom.Size{Width: req.Width, Height: req.Height}); err != nil {
		return NewErrorResponse(fmt.Sprintf("Failed to set stage: %v", err))
	}

	log.Printf("IPC: Stage set to %dx%d", req.Width, req.Height)

	resp, _ := NewOKResponse(nil)
	return resp
}

// handleListPanels returns every panel's committed state
func (s *Server) handleListPanels() *Response {
	snap := s.reg.Snapshot()

	panels := make([]PanelInfo, 0, len(snap))
	for k, st := range snap {
		panels = append(panels, PanelInfo{
			Kind:      string(k),
			Open:      st.Open,
			X:         st.Rect.X,
			Y:         st.Rect.Y,
			Width:     st.Rect.Width,
			Height:    st.Rect.Height,
			Z:         st.Z,
			Maximized: st.Maximized,
		})
	}

	// Bottom to top, so readers see stacking order directly.
	sort.Slice(panels, func(i, j int) bool {
		return panels[i].Z < panels[j].Z
	})

	resp, _ := NewOKResponse(PanelsData{Panels: panels})
	return resp
}

// handleTogglePanel flips a panel's visibility
func (s *Server) handleTogglePanel(payload json.RawMessage) *Response {
	k, errResp := parsePanelKind(payload)
	if errResp != nil {
		return errResp
	}

	s.reg.ToggleOpen(k)

	st, _ := s.reg.Get(k)
	log.Printf("IPC: Toggled panel %s (open=%v)", k, st.Open)

	resp, _ := NewOKResponse(panelInfoFor(k, st))
	return resp
}

// handleFocusPanel raises a panel to the top of the stack
func (s *Server) handleFocusPanel(payload json.RawMessage) *Response {
	k, errResp := parsePanelKind(payload)
	if errResp != nil {
		return errResp
	}

	st, _ := s.reg.Get(k)
	if !st.Open {
		return NewErrorResponse(fmt.Sprintf("Panel %s is not open", k))
	}

	s.reg.BringToFront(k)

	st, _ = s.reg.Get(k)
	resp, _ := NewOKResponse(panelInfoFor(k, st))
	return resp
}

// handleMovePanel repositions a panel, keeping its size
func (s *Server) handleMovePanel(payload json.RawMessage) *Response {
	var req MovePanelPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return NewErrorResponse(fmt.Sprintf("Invalid move payload: %v", err))
	}
	k, err := panel.ParseKind(req.Kind)
	if err != nil {
		return NewErrorResponse(err.Error())
	}

	st, ok := s.reg.Get(k)
	if !ok {
		return NewErrorResponse(fmt.Sprintf("Unknown panel: %s", req.Kind))
	}
	if st.Maximized {
		return NewErrorResponse(fmt.Sprintf("Panel %s is maximized; restore it first", k))
	}

	rect := st.Rect
	rect.X = req.X
	rect.Y = req.Y
	s.reg.SetGeometry(k, rect)

	st, _ = s.reg.Get(k)
	resp, _ := NewOKResponse(panelInfoFor(k, st))
	return resp
}

// handleResizePanel resizes a panel, keeping its position
func (s *Server) handleResizePanel(payload json.RawMessage) *Response {
	var req ResizePanelPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return NewErrorResponse(fmt.Sprintf("Invalid resize payload: %v", err))
	}
	k, err := panel.ParseKind(req.Kind)
	if err != nil {
		return NewErrorResponse(err.Error())
	}

	st, ok := s.reg.Get(k)
	if !ok {
		return NewErrorResponse(fmt.Sprintf("Unknown panel: %s", req.Kind))
	}
	if st.Maximized {
		return NewErrorResponse(fmt.Sprintf("Panel %s is maximized; restore it first", k))
	}

	rect := st.Rect
	rect.Width = req.Width
	rect.Height = req.Height
	s.reg.SetGeometry(k, rect)

	st, _ = s.reg.Get(k)
	resp, _ := NewOKResponse(panelInfoFor(k, st))
	return resp
}

// handleMaximizePanel toggles a panel between maximized and restored
func (s *Server) handleMaximizePanel(payload json.RawMessage) *Response {
	k, errResp := parsePanelKind(payload)
	if errResp != nil {
		return errResp
	}

	s.reg.ToggleMaximize(k)

	st, _ := s.reg.Get(k)
	log.Printf("IPC: Panel %s maximized=%v", k, st.Maximized)

	resp, _ := NewOKResponse(panelInfoFor(k, st))
	return resp
}

func parsePanelKind(payload json.RawMessage) (panel.Kind, *Response) {
	var req PanelPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return "", NewErrorResponse(fmt.Sprintf("Invalid panel payload: %v", err))
	}
	k, err := panel.ParseKind(req.Kind)
	if err != nil {
		return "", NewErrorResponse(err.Error())
	}
	return k, nil
}

func panelInfoFor(k panel.Kind, st panel.State) PanelInfo {
	return PanelInfo{
		Kind:      string(k),
		Open:      st.Open,
		X:         st.Rect.X,
		Y:         st.Rect.Y,
		Width:     st.Rect.Width,
		Height:    st.Rect.Height,
		Z:         st.Z,
		Maximized: st.Maximized,
	}
}

// sendError sends an error response
func (s *Server) sendError(conn net.Conn, errMsg string) {
	resp := NewErrorResponse(errMsg)
	data, _ := resp.Marshal()
	data = append(data, '\n')
	conn.Write(data)
}

// Stop gracefully shuts down the IPC server
func (s *Server) Stop() {
	s.shutdownMu.Lock()
	s.shuttingDown = true
	s.shutdownMu.Unlock()

	if s.listener != nil {
		s.listener.Close()
	}
	os.Remove(s.socketPath)
}
