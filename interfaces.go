package main

import (
	"time"
)

const (
	// Overlay message display duration
	overlayMessageDuration = 2 * time.Second
)

// RenderState provides read-only access to viewer state for the renderer
type RenderState interface {
	// Current image; ok is false when nothing is selected or it failed to decode
	GetCurrentTexture() (tex Texture, ok bool)
	GetCurrentPath() string
	GetPlacement() Placement
	GetZoomPercent() (percent float64, ok bool)

	// Panels
	IsSidePanelVisible() bool
	GetLayout() panelLayout
	GetZoomSlider() *ZoomSlider

	// Overlays
	IsShowingHelp() bool
	GetOverlayMessage() string
	GetOverlayMessageTime() time.Time

	// Display data
	GetCurrentIndex() (index int, ok bool)
	GetTotalImagesCount() int
	GetFontSize() float64
	GetConfigStatus() ConfigLoadResult
	GetKeybindings() map[string][]string
	GetMousebindings() map[string][]string
}

// InputActions provides action methods for the input handler
type InputActions interface {
	// Application control
	Exit()

	// Display toggles
	ToggleHelp()
	ToggleSidePanel()
	ToggleFullscreen()

	// Navigation
	NavigateNext()
	NavigatePrevious()
	JumpToImage(index int)
	OpenFile()
	CopyPath()

	// Zoom and pan
	ZoomIn()
	ZoomOut()
	ZoomReset()
	ZoomFit()
	PanByDelta(delta Vec2)

	// Messages
	ShowOverlayMessage(message string)

	GetTotalImagesCount() int
}
