package mcp

// PanelSummary describes one panel's committed state.
type PanelSummary struct {
	Kind      string `json:"kind"`
	Open      bool   `json:"open"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Z         int    `json:"z"`
	Maximized bool   `json:"maximized"`
}

// ListPanelsInput is the input for the list_panels tool.
type ListPanelsInput struct{}

// ListPanelsOutput is the output for the list_panels tool. Panels are ordered
// bottom to top.
type ListPanelsOutput struct {
	Panels []PanelSummary `json:"panels"`
}

// TogglePanelInput is the input for the toggle_panel tool.
type TogglePanelInput struct {
	Kind string `json:"kind" jsonschema:"required,Panel kind: chat, jobs, or agentconfig"`
}

// FocusPanelInput is the input for the focus_panel tool.
type FocusPanelInput struct {
	Kind string `json:"kind" jsonschema:"required,Panel kind: chat, jobs, or agentconfig"`
}

// MaximizePanelInput is the input for the maximize_panel tool.
type MaximizePanelInput struct {
	Kind string `json:"kind" jsonschema:"required,Panel kind: chat, jobs, or agentconfig"`
}

// MovePanelInput is the input for the move_panel tool.
type MovePanelInput struct {
	Kind string `json:"kind" jsonschema:"required,Panel kind: chat, jobs, or agentconfig"`
	X    int    `json:"x" jsonschema:"Target x position in stage-local pixels. Out-of-bounds values are clamped."`
	Y    int    `json:"y" jsonschema:"Target y position in stage-local pixels. Out-of-bounds values are clamped."`
}

// ResizePanelInput is the input for the resize_panel tool.
type ResizePanelInput struct {
	Kind   string `json:"kind" jsonschema:"required,Panel kind: chat, jobs, or agentconfig"`
	Width  int    `json:"width" jsonschema:"required,Target width in pixels. Clamped to the minimum panel size and the stage."`
	Height int    `json:"height" jsonschema:"required,Target height in pixels. Clamped to the minimum panel size and the stage."`
}

// PanelOutput is the output for tools that act on a single panel.
type PanelOutput struct {
	Panel PanelSummary `json:"panel"`
}

// GetStageInput is the input for the get_stage tool.
type GetStageInput struct{}

// GetStageOutput is the output for the get_stage tool.
type GetStageOutput struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}
