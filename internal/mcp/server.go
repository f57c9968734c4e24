// Package mcp exposes panel control to AI agents over the Model Context
// Protocol. Every tool is a thin adapter over the daemon's IPC surface, so
// agents see exactly the state the daemon has committed.
package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/stagehand/internal/ipc"
)

const (
	ServerName    = "stagehand"
	ServerVersion = "0.1.0"
)

// daemonClient is the slice of the IPC client the tools need. Narrowed to an
// interface so tests can run against a stub instead of a live socket.
type daemonClient interface {
	ListPanels() (*ipc.PanelsData, error)
	TogglePanel(kind string) (*ipc.PanelInfo, error)
	FocusPanel(kind string) (*ipc.PanelInfo, error)
	MovePanel(kind string, x, y int) (*ipc.PanelInfo, error)
	ResizePanel(kind string, width, height int) (*ipc.PanelInfo, error)
	MaximizePanel(kind string) (*ipc.PanelInfo, error)
	GetStage() (*ipc.StageData, error)
}

// Server is the MCP server for panel orchestration.
type Server struct {
	mcpServer *mcpsdk.Server
	daemon    daemonClient
}

// NewServer creates an MCP server talking to the local daemon socket.
func NewServer() *Server {
	s := &Server{
		daemon: ipc.NewClient(),
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_panels",
		Description: "List all panels with their position, size, stacking order, and open/maximized state. Panels are returned bottom to top.",
	}, s.handleListPanels)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "toggle_panel",
		Description: "Open or close a panel. Opening a panel also raises it to the top of the stack; geometry is preserved across open/close.",
	}, s.handleTogglePanel)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "focus_panel",
		Description: "Raise an open panel to the top of the stack. Fails if the panel is closed.",
	}, s.handleFocusPanel)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "move_panel",
		Description: "Move a panel to a new position in stage-local pixels. The position is clamped so the panel stays fully inside the stage. Fails while the panel is maximized.",
	}, s.handleMovePanel)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "resize_panel",
		Description: "Resize a panel. The size is clamped to the minimum panel size and the stage bounds. Fails while the panel is maximized.",
	}, s.handleResizePanel)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "maximize_panel",
		Description: "Toggle a panel between maximized (filling the stage) and its remembered pre-maximize geometry.",
	}, s.handleMaximizePanel)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_stage",
		Description: "Get the current stage size in pixels.",
	}, s.handleGetStage)
}
