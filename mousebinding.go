package main

import (
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MouseSettings contains mouse-specific configuration
type MouseSettings struct {
	WheelSensitivity float64 `json:"wheel_sensitivity"`
	DoubleClickTime  int     `json:"double_click_time"` // milliseconds
	EnableMouse      bool    `json:"enable_mouse"`
	WheelInverted    bool    `json:"wheel_inverted"`
	EnableDragPan    bool    `json:"enable_drag_pan"`
}

// GetDefaultMouseSettings returns the default mouse settings
func GetDefaultMouseSettings() MouseSettings {
	return MouseSettings{
		WheelSensitivity: 1.0,
		DoubleClickTime:  300,
		EnableMouse:      true,
		WheelInverted:    false,
		EnableDragPan:    true,
	}
}

// DoubleClickTracker tracks double-click state
type DoubleClickTracker struct {
	lastClickTime   time.Time
	lastClickButton ebiten.MouseButton
	clickCount      int
}

// MouseCombination represents a mouse action with optional modifiers
type MouseCombination struct {
	Button        ebiten.MouseButton
	IsWheel       bool
	WheelDirX     float64
	WheelDirY     float64
	IsDoubleClick bool
	modifiers
}

// MousebindingManager matches configured mouse strings against the mouse
type MousebindingManager struct {
	mousebindings      map[string][]string
	parsed             map[string][]MouseCombination
	settings           MouseSettings
	doubleClickTracker DoubleClickTracker
	wheelConsumed      bool
}

// NewMousebindingManager creates a new MousebindingManager
func NewMousebindingManager(mousebindings map[string][]string, settings MouseSettings) *MousebindingManager {
	mm := &MousebindingManager{
		settings: settings,
		doubleClickTracker: DoubleClickTracker{
			lastClickTime: time.Now(),
		},
	}
	mm.UpdateMousebindings(mousebindings)
	return mm
}

// getMouseMapping returns a mapping from string mouse actions to Ebiten mouse buttons
func getMouseMapping() map[string]ebiten.MouseButton {
	return map[string]ebiten.MouseButton{
		"LeftClick":   ebiten.MouseButtonLeft,
		"RightClick":  ebiten.MouseButtonRight,
		"MiddleClick": ebiten.MouseButtonMiddle,
		"Back":        ebiten.MouseButton3,
		"Forward":     ebiten.MouseButton4,
	}
}

var wheelDirections = map[string]Vec2{
	"WheelUp":    {0, 1},
	"WheelDown":  {0, -1},
	"WheelLeft":  {-1, 0},
	"WheelRight": {1, 0},
}

func isValidMouseName(name string) bool {
	if _, ok := wheelDirections[name]; ok {
		return true
	}
	_, ok := getMouseMapping()[strings.TrimPrefix(name, "Double")]
	return ok
}

// parseMouseString parses a mouse string like "Shift+LeftClick" or "WheelUp" into a MouseCombination
func parseMouseString(mouseStr string, mouseMapping map[string]ebiten.MouseButton) (MouseCombination, bool) {
	parts := strings.Split(mouseStr, "+")
	actionName := parts[len(parts)-1]
	combination := MouseCombination{modifiers: parseModifiers(parts[:len(parts)-1])}

	if dir, ok := wheelDirections[actionName]; ok {
		combination.IsWheel = true
		combination.WheelDirX, combination.WheelDirY = dir.X, dir.Y
		return combination, true
	}

	if base, ok := strings.CutPrefix(actionName, "Double"); ok {
		combination.IsDoubleClick = true
		actionName = base
	}
	button, exists := mouseMapping[actionName]
	if !exists {
		return MouseCombination{}, false
	}
	combination.Button = button
	return combination, true
}

// BeginFrame resets per-tick state; call once before checking actions
func (mm *MousebindingManager) BeginFrame() {
	mm.wheelConsumed = false
}

// WheelConsumed reports whether a wheel binding fired this tick
func (mm *MousebindingManager) WheelConsumed() bool {
	return mm.wheelConsumed
}

// wheel returns this tick's wheel delta after sensitivity and inversion
func (mm *MousebindingManager) wheel() (float64, float64) {
	wheelX, wheelY := ebiten.Wheel()
	if mm.settings.WheelInverted {
		wheelY = -wheelY
	}
	return wheelX * mm.settings.WheelSensitivity, wheelY * mm.settings.WheelSensitivity
}

// isMouseActionTriggered checks if a mouse combination is currently being triggered
func (mm *MousebindingManager) isMouseActionTriggered(combination MouseCombination) bool {
	if !mm.settings.EnableMouse || !combination.held() {
		return false
	}

	if combination.IsWheel {
		wheelX, wheelY := mm.wheel()
		return sameDirection(combination.WheelDirX, wheelX) || sameDirection(combination.WheelDirY, wheelY)
	}

	if combination.IsDoubleClick {
		return mm.checkDoubleClick(combination.Button)
	}

	return inpututil.IsMouseButtonJustPressed(combination.Button)
}

func sameDirection(want, got float64) bool {
	return (want > 0 && got > 0) || (want < 0 && got < 0)
}

// checkDoubleClick checks if a double-click occurred for the given button
func (mm *MousebindingManager) checkDoubleClick(button ebiten.MouseButton) bool {
	if !inpututil.IsMouseButtonJustPressed(button) {
		return false
	}

	now := time.Now()
	sinceLast := now.Sub(mm.doubleClickTracker.lastClickTime)
	mm.doubleClickTracker.lastClickTime = now

	if mm.doubleClickTracker.lastClickButton == button &&
		sinceLast <= time.Duration(mm.settings.DoubleClickTime)*time.Millisecond {
		mm.doubleClickTracker.clickCount++
		if mm.doubleClickTracker.clickCount == 2 {
			mm.doubleClickTracker.clickCount = 0
			return true
		}
		return false
	}

	mm.doubleClickTracker.clickCount = 1
	mm.doubleClickTracker.lastClickButton = button
	return false
}

// CheckAction checks if any mouse binding for the given action is triggered
func (mm *MousebindingManager) CheckAction(action string) bool {
	for _, combination := range mm.parsed[action] {
		if mm.isMouseActionTriggered(combination) {
			if combination.IsWheel {
				mm.wheelConsumed = true
			}
			return true
		}
	}
	return false
}

// ExecuteAction executes the given action if one of its mouse bindings fired
func (mm *MousebindingManager) ExecuteAction(action string, inputActions InputActions) bool {
	if !mm.CheckAction(action) {
		return false
	}
	return globalActionExecutor.ExecuteAction(action, inputActions)
}

// GetMousebindings returns the current mouse bindings map (for display purposes)
func (mm *MousebindingManager) GetMousebindings() map[string][]string {
	return mm.mousebindings
}

// UpdateMousebindings replaces the mouse bindings and re-parses them
func (mm *MousebindingManager) UpdateMousebindings(mousebindings map[string][]string) {
	mouseMapping := getMouseMapping()
	mm.mousebindings = mousebindings
	mm.parsed = make(map[string][]MouseCombination, len(mousebindings))
	for action, mouseStrings := range mousebindings {
		for _, mouseStr := range mouseStrings {
			combination, ok := parseMouseString(mouseStr, mouseMapping)
			if !ok {
				log.Printf("Warning: Ignoring unknown mouse binding '%s' for action '%s'", mouseStr, action)
				continue
			}
			mm.parsed[action] = append(mm.parsed[action], combination)
		}
	}
}

// GetSettings returns the current mouse settings
func (mm *MousebindingManager) GetSettings() MouseSettings {
	return mm.settings
}
