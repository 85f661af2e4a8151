package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestParseKeyString(t *testing.T) {
	mapping := getKeyMapping()
	tests := []struct {
		input    string
		ok       bool
		expected KeyCombination
	}{
		{"KeyO", true, KeyCombination{Key: ebiten.KeyO}},
		{"Ctrl+KeyO", true, KeyCombination{Key: ebiten.KeyO, modifiers: modifiers{Ctrl: true}}},
		{"Shift+Slash", true, KeyCombination{Key: ebiten.KeySlash, modifiers: modifiers{Shift: true}}},
		{"Shift+Alt+Key0", true, KeyCombination{Key: ebiten.Key0, modifiers: modifiers{Shift: true, Alt: true}}},
		{"Numpad7", true, KeyCombination{Key: ebiten.KeyNumpad7}},
		{"ArrowRight", true, KeyCombination{Key: ebiten.KeyArrowRight}},
		{"KeyNope", false, KeyCombination{}},
		{"", false, KeyCombination{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := parseKeyString(tt.input, mapping)
			if ok != tt.ok {
				t.Fatalf("parseKeyString(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if got != tt.expected {
				t.Errorf("parseKeyString(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestKeyMappingLetters(t *testing.T) {
	mapping := getKeyMapping()
	if mapping["KeyA"] != ebiten.KeyA || mapping["KeyZ"] != ebiten.KeyZ {
		t.Errorf("letter keys mapped to %v..%v", mapping["KeyA"], mapping["KeyZ"])
	}
	if mapping["Key9"] != ebiten.Key9 {
		t.Errorf("Key9 mapped to %v", mapping["Key9"])
	}
}

func TestParseMouseString(t *testing.T) {
	mapping := getMouseMapping()
	tests := []struct {
		input string
		ok    bool
		check func(MouseCombination) bool
	}{
		{"MiddleClick", true, func(c MouseCombination) bool { return c.Button == ebiten.MouseButtonMiddle && !c.IsWheel }},
		{"Forward", true, func(c MouseCombination) bool { return c.Button == ebiten.MouseButton4 }},
		{"DoubleLeftClick", true, func(c MouseCombination) bool { return c.IsDoubleClick && c.Button == ebiten.MouseButtonLeft }},
		{"Ctrl+WheelUp", true, func(c MouseCombination) bool { return c.IsWheel && c.WheelDirY > 0 && c.Ctrl }},
		{"WheelLeft", true, func(c MouseCombination) bool { return c.IsWheel && c.WheelDirX < 0 }},
		{"ThumbClick", false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := parseMouseString(tt.input, mapping)
			if ok != tt.ok {
				t.Fatalf("parseMouseString(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if tt.check != nil && !tt.check(got) {
				t.Errorf("parseMouseString(%q) = %+v", tt.input, got)
			}
		})
	}
}

func TestIsValidMouseName(t *testing.T) {
	for _, name := range []string{"LeftClick", "DoubleRightClick", "WheelDown", "Back"} {
		if !isValidMouseName(name) {
			t.Errorf("isValidMouseName(%q) = false", name)
		}
	}
	for _, name := range []string{"", "Double", "Wheel", "leftclick"} {
		if isValidMouseName(name) {
			t.Errorf("isValidMouseName(%q) = true", name)
		}
	}
}

func TestValidateBindingString(t *testing.T) {
	valid := func(name string) bool { return name == "KeyX" }
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"KeyX", false},
		{"ctrl+KeyX", false},
		{"Shift+Ctrl+Alt+KeyX", false},
		{"", true},
		{"KeyY", true},
		{"Meta+KeyX", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := validateBindingString(tt.input, valid)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateBindingString(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestUpdateKeybindingsSkipsUnknownKeys(t *testing.T) {
	km := NewKeybindingManager(map[string][]string{
		"exit": {"Escape", "Hyper"},
	})
	if got := len(km.parsed["exit"]); got != 1 {
		t.Errorf("parsed %d combinations for exit, want 1", got)
	}
	if got := km.GetKeybindings()["exit"]; len(got) != 2 {
		t.Errorf("GetKeybindings()[exit] = %v, want configured strings", got)
	}
}

func TestActionDefinitionsAreExecutable(t *testing.T) {
	actions := &recordingActions{total: 3}
	for _, name := range actionNames() {
		if !globalActionExecutor.ExecuteAction(name, actions) {
			t.Errorf("action %q not handled", name)
		}
	}
	if globalActionExecutor.ExecuteAction("explode", actions) {
		t.Error("unknown action reported as handled")
	}
	if len(actions.calls) != len(actionDefinitions) {
		t.Errorf("recorded %d calls, want %d: %v", len(actions.calls), len(actionDefinitions), actions.calls)
	}
	if actions.jumps[len(actions.jumps)-1] != 2 {
		t.Errorf("jump_last jumped to %d, want 2", actions.jumps[len(actions.jumps)-1])
	}
}

// recordingActions records every InputActions call
type recordingActions struct {
	calls []string
	jumps []int
	total int
}

func (r *recordingActions) record(name string)        { r.calls = append(r.calls, name) }
func (r *recordingActions) Exit()                     { r.record("Exit") }
func (r *recordingActions) ToggleHelp()               { r.record("ToggleHelp") }
func (r *recordingActions) ToggleSidePanel()          { r.record("ToggleSidePanel") }
func (r *recordingActions) ToggleFullscreen()         { r.record("ToggleFullscreen") }
func (r *recordingActions) NavigateNext()             { r.record("NavigateNext") }
func (r *recordingActions) NavigatePrevious()         { r.record("NavigatePrevious") }
func (r *recordingActions) OpenFile()                 { r.record("OpenFile") }
func (r *recordingActions) CopyPath()                 { r.record("CopyPath") }
func (r *recordingActions) ZoomIn()                   { r.record("ZoomIn") }
func (r *recordingActions) ZoomOut()                  { r.record("ZoomOut") }
func (r *recordingActions) ZoomReset()                { r.record("ZoomReset") }
func (r *recordingActions) ZoomFit()                  { r.record("ZoomFit") }
func (r *recordingActions) PanByDelta(Vec2)           { r.record("PanByDelta") }
func (r *recordingActions) ShowOverlayMessage(string) { r.record("ShowOverlayMessage") }
func (r *recordingActions) GetTotalImagesCount() int  { return r.total }
func (r *recordingActions) JumpToImage(index int) {
	r.record("JumpToImage")
	r.jumps = append(r.jumps, index)
}
