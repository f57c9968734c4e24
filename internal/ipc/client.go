package ipc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/1broseidon/stagehand/internal/runtimepath"
)

// Client handles IPC communication with the daemon
type Client struct {
	socketPath string
	timeout    time.Duration
}

// NewClient creates a new IPC client
func NewClient() *Client {
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		// Keep constructor non-failing; sendRequest surfaces connection errors.
		socketPath = ""
	}

	return &Client{
		socketPath: socketPath,
		timeout:    5 * time.Second,
	}
}

// sendRequest sends a request and waits for a response
func (c *Client) sendRequest(req *Request) (*Response, error) {
	conn, err := net.DialTimeout("unix", c.socketPath, c.timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to daemon: %w (is the daemon running?)", err)
	}
	defer conn.Close()

	conn.SetDeadline(time.Now().Add(c.timeout))

	reqData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	reqData = append(reqData, '\n')
	if _, err := conn.Write(reqData); err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	reader := bufio.NewReader(conn)
	respData, err := reader.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var resp Response
	if err := json.Unmarshal(respData, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.Status == "ERROR" {
		return nil, fmt.Errorf("daemon error: %s", resp.Error)
	}

	return &resp, nil
}

// Reload sends a RELOAD command to the daemon
func (c *Client) Reload() error {
	req := &Request{
		Command: CommandReload,
	}

	_, err := c.sendRequest(req)
	return err
}

// GetStatus retrieves daemon status
func (c *Client) GetStatus() (*StatusData, error) {
	req := &Request{
		Command: CommandGetStatus,
	}

	resp, err := c.sendRequest(req)
	if err != nil {
		return nil, err
	}

	var status StatusData
	if err := json.Unmarshal(resp.Data, &status); err != nil {
		return nil, fmt.Errorf("failed to parse status data: %w", err)
	}

	return &status, nil
}

// GetStage retrieves the current stage rectangle
func (c *Client) GetStage() (*StageData, error) {
	req := &Request{
		Command: CommandGetStage,
	}

	resp, err := c.sendRequest(req)
	if err != nil {
		return nil, err
	}

	var stage StageData
	if err := json.Unmarshal(resp.Data, &stage); err != nil {
		return nil, fmt.Errorf("failed to parse stage data: %w", err)
	}

	return &stage, nil
}

// SetStage pins the stage to a new size
func (c *Client) SetStage(width, height int) error {
	payload, err := json.Marshal(SetStagePayload{Width: width, Height: height})
	if err != nil {
		return fmt.Errorf("failed to marshal stage payload: %w", err)
	}

	req := &Request{
		Command: CommandSetStage,
		Payload: payload,
	}

	_, err = c.sendRequest(req)
	return err
}

// ListPanels retrieves all panel states in stacking order
func (c *Client) ListPanels() (*PanelsData, error) {
	req := &Request{
		Command: CommandListPanels,
	}

	resp, err := c.sendRequest(req)
	if err != nil {
		return nil, err
	}

	var data PanelsData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to parse panels data: %w", err)
	}

	return &data, nil
}

// TogglePanel flips a panel's visibility and returns its new state
func (c *Client) TogglePanel(kind string) (*PanelInfo, error) {
	return c.panelCommand(CommandTogglePanel, kind)
}

// FocusPanel raises a panel to the top of the stack
func (c *Client) FocusPanel(kind string) (*PanelInfo, error) {
	return c.panelCommand(CommandFocusPanel, kind)
}

// MaximizePanel toggles a panel between maximized and restored
func (c *Client) MaximizePanel(kind string) (*PanelInfo, error) {
	return c.panelCommand(CommandMaximizePanel, kind)
}

// MovePanel repositions a panel, keeping its size
func (c *Client) MovePanel(kind string, x, y int) (*PanelInfo, error) {
	payload, err := json.Marshal(MovePanelPayload{Kind: kind, X: x, Y: y})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal move payload: %w", err)
	}

	return c.panelRequest(&Request{
		Command: CommandMovePanel,
		Payload: payload,
	})
}

// ResizePanel resizes a panel, keeping its position
func (c *Client) ResizePanel(kind string, width, height int) (*PanelInfo, error) {
	payload, err := json.Marshal(ResizePanelPayload{Kind: kind, Width: width, Height: height})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resize payload: %w", err)
	}

	return c.panelRequest(&Request{
		Command: CommandResizePanel,
		Payload: payload,
	})
}

// panelCommand sends a command addressing a panel by kind alone
func (c *Client) panelCommand(cmd CommandType, kind string) (*PanelInfo, error) {
	payload, err := json.Marshal(PanelPayload{Kind: kind})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal panel payload: %w", err)
	}

	return c.panelRequest(&Request{
		Command: cmd,
		Payload: payload,
	})
}

func (c *Client) panelRequest(req *Request) (*PanelInfo, error) {
	resp, err := c.sendRequest(req)
	if err != nil {
		return nil, err
	}

	var info PanelInfo
	if err := json.Unmarshal(resp.Data, &info); err != nil {
		return nil, fmt.Errorf("failed to parse panel data: %w", err)
	}

	return &info, nil
}

// Ping checks if the daemon is responding
func (c *Client) Ping() error {
	_, err := c.GetStatus()
	return err
}
