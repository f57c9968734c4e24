package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/stagehand/internal/ipc"
)

func (s *Server) handleListPanels(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListPanelsInput) (*mcpsdk.CallToolResult, ListPanelsOutput, error) {
	data, err := s.daemon.ListPanels()
	if err != nil {
		return nil, ListPanelsOutput{}, err
	}

	panels := make([]PanelSummary, 0, len(data.Panels))
	for _, p := range data.Panels {
		panels = append(panels, summaryFromInfo(p))
	}

	return nil, ListPanelsOutput{Panels: panels}, nil
}

func (s *Server) handleTogglePanel(_ context.Context, _ *mcpsdk.CallToolRequest, args TogglePanelInput) (*mcpsdk.CallToolResult, PanelOutput, error) {
	info, err := s.daemon.TogglePanel(args.Kind)
	if err != nil {
		return nil, PanelOutput{}, err
	}
	return nil, PanelOutput{Panel: summaryFromInfo(*info)}, nil
}

func (s *Server) handleFocusPanel(_ context.Context, _ *mcpsdk.CallToolRequest, args FocusPanelInput) (*mcpsdk.CallToolResult, PanelOutput, error) {
	info, err := s.daemon.FocusPanel(args.Kind)
	if err != nil {
		return nil, PanelOutput{}, err
	}
	return nil, PanelOutput{Panel: summaryFromInfo(*info)}, nil
}

func (s *Server) handleMovePanel(_ context.Context, _ *mcpsdk.CallToolRequest, args MovePanelInput) (*mcpsdk.CallToolResult, PanelOutput, error) {
	info, err := s.daemon.MovePanel(args.Kind, args.X, args.Y)
	if err != nil {
		return nil, PanelOutput{}, err
	}
	return nil, PanelOutput{Panel: summaryFromInfo(*info)}, nil
}

func (s *Server) handleResizePanel(_ context.Context, _ *mcpsdk.CallToolRequest, args ResizePanelInput) (*mcpsdk.CallToolResult, PanelOutput, error) {
	info, err := s.daemon.ResizePanel(args.Kind, args.Width, args.Height)
	if err != nil {
		return nil, PanelOutput{}, err
	}
	return nil, PanelOutput{Panel: summaryFromInfo(*info)}, nil
}

func (s *Server) handleMaximizePanel(_ context.Context, _ *mcpsdk.CallToolRequest, args MaximizePanelInput) (*mcpsdk.CallToolResult, PanelOutput, error) {
	info, err := s.daemon.MaximizePanel(args.Kind)
	if err != nil {
		return nil, PanelOutput{}, err
	}
	return nil, PanelOutput{Panel: summaryFromInfo(*info)}, nil
}

func (s *Server) handleGetStage(_ context.Context, _ *mcpsdk.CallToolRequest, _ GetStageInput) (*mcpsdk.CallToolResult, GetStageOutput, error) {
	stage, err := s.daemon.GetStage()
	if err != nil {
		return nil, GetStageOutput{}, err
	}
	return nil, GetStageOutput{Width: stage.Width, Height: stage.Height}, nil
}

func summaryFromInfo(p ipc.PanelInfo) PanelSummary {
	return PanelSummary{
		Kind:      p.Kind,
		Open:      p.Open,
		X:         p.X,
		Y:         p.Y,
		Width:     p.Width,
		Height:    p.Height,
		Z:         p.Z,
		Maximized: p.Maximized,
	}
}
