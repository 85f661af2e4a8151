package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// frameInput is the raw pointer state polled once per tick, so the frame
// logic never talks to ebiten directly
type frameInput struct {
	Cursor          Vec2
	LeftPressed     bool    // primary button held
	LeftJustPressed bool    // primary button went down this tick
	Wheel           float64 // vertical wheel in notch units (120 per notch)
	PanEnabled      bool    // dragging with the primary button pans
}

// InputHandler polls the pointer and dispatches bound actions
type InputHandler struct {
	inputActions        InputActions
	keybindingManager   *KeybindingManager
	mousebindingManager *MousebindingManager
	actions             []string
}

// NewInputHandler creates a new InputHandler
func NewInputHandler(inputActions InputActions, keybindingManager *KeybindingManager, mousebindingManager *MousebindingManager) *InputHandler {
	return &InputHandler{
		inputActions:        inputActions,
		keybindingManager:   keybindingManager,
		mousebindingManager: mousebindingManager,
		actions:             actionNames(),
	}
}

// HandleInput dispatches every action whose key or mouse binding fired this
// tick. It returns true if any action ran.
func (h *InputHandler) HandleInput() bool {
	h.mousebindingManager.BeginFrame()

	inputProcessed := false
	for _, action := range h.actions {
		if h.keybindingManager.ExecuteAction(action, h.inputActions) {
			inputProcessed = true
			continue
		}
		if h.mousebindingManager.ExecuteAction(action, h.inputActions) {
			inputProcessed = true
		}
	}
	return inputProcessed
}

// PollInput snapshots the pointer for this tick. The wheel is zeroed when a
// wheel binding already used it.
func (h *InputHandler) PollInput() frameInput {
	mx, my := ebiten.CursorPosition()
	in := frameInput{
		Cursor:          Vec2{float64(mx), float64(my)},
		LeftPressed:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		LeftJustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}

	settings := h.mousebindingManager.GetSettings()
	in.PanEnabled = settings.EnableMouse && settings.EnableDragPan
	if settings.EnableMouse && !h.mousebindingManager.WheelConsumed() {
		_, wheelY := h.mousebindingManager.wheel()
		in.Wheel = wheelY * wheelNotch
	}
	return in
}

// GetKeybindings returns the active keybindings
func (h *InputHandler) GetKeybindings() map[string][]string {
	return h.keybindingManager.GetKeybindings()
}

// GetMousebindings returns the active mouse bindings
func (h *InputHandler) GetMousebindings() map[string][]string {
	return h.mousebindingManager.GetMousebindings()
}
