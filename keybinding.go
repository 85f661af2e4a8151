package main

import (
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeybindingManager matches configured key strings against the keyboard
type KeybindingManager struct {
	keybindings map[string][]string
	parsed      map[string][]KeyCombination
}

// NewKeybindingManager creates a new KeybindingManager
func NewKeybindingManager(keybindings map[string][]string) *KeybindingManager {
	km := &KeybindingManager{}
	km.UpdateKeybindings(keybindings)
	return km
}

// getKeyMapping returns a mapping from string keys to Ebiten keys
func getKeyMapping() map[string]ebiten.Key {
	keys := map[string]ebiten.Key{
		// Special keys
		"Space":      ebiten.KeySpace,
		"Backspace":  ebiten.KeyBackspace,
		"Enter":      ebiten.KeyEnter,
		"Escape":     ebiten.KeyEscape,
		"Tab":        ebiten.KeyTab,
		"Home":       ebiten.KeyHome,
		"End":        ebiten.KeyEnd,
		"PageUp":     ebiten.KeyPageUp,
		"PageDown":   ebiten.KeyPageDown,
		"ArrowUp":    ebiten.KeyArrowUp,
		"ArrowDown":  ebiten.KeyArrowDown,
		"ArrowLeft":  ebiten.KeyArrowLeft,
		"ArrowRight": ebiten.KeyArrowRight,
		"F11":        ebiten.KeyF11,

		// Punctuation
		"Comma":     ebiten.KeyComma,
		"Period":    ebiten.KeyPeriod,
		"Slash":     ebiten.KeySlash,
		"Semicolon": ebiten.KeySemicolon,
		"Quote":     ebiten.KeyQuote,
		"Minus":     ebiten.KeyMinus,
		"Equal":     ebiten.KeyEqual,

		"NumpadEnter":    ebiten.KeyNumpadEnter,
		"NumpadAdd":      ebiten.KeyNumpadAdd,
		"NumpadSubtract": ebiten.KeyNumpadSubtract,
	}
	for i := 0; i < 26; i++ {
		keys["Key"+string(rune('A'+i))] = ebiten.KeyA + ebiten.Key(i)
	}
	for i := 0; i < 10; i++ {
		keys["Key"+string(rune('0'+i))] = ebiten.Key0 + ebiten.Key(i)
		keys["Numpad"+string(rune('0'+i))] = ebiten.KeyNumpad0 + ebiten.Key(i)
	}
	return keys
}

// modifiers are the modifier keys a binding requires
type modifiers struct {
	Shift bool
	Ctrl  bool
	Alt   bool
}

// parseModifiers reads the "Shift+Ctrl+" prefix of a binding
func parseModifiers(parts []string) modifiers {
	var m modifiers
	for _, part := range parts {
		switch strings.ToLower(part) {
		case "shift":
			m.Shift = true
		case "ctrl":
			m.Ctrl = true
		case "alt":
			m.Alt = true
		}
	}
	return m
}

// held reports whether exactly the required modifiers are down
func (m modifiers) held() bool {
	return m.Shift == ebiten.IsKeyPressed(ebiten.KeyShift) &&
		m.Ctrl == ebiten.IsKeyPressed(ebiten.KeyControl) &&
		m.Alt == ebiten.IsKeyPressed(ebiten.KeyAlt)
}

// KeyCombination represents a key with optional modifiers
type KeyCombination struct {
	Key ebiten.Key
	modifiers
}

// parseKeyString parses a key string like "Shift+KeyB" into a KeyCombination
func parseKeyString(keyStr string, keyMapping map[string]ebiten.Key) (KeyCombination, bool) {
	parts := strings.Split(keyStr, "+")
	key, exists := keyMapping[parts[len(parts)-1]]
	if !exists {
		return KeyCombination{}, false
	}
	return KeyCombination{Key: key, modifiers: parseModifiers(parts[:len(parts)-1])}, true
}

func (c KeyCombination) justPressed() bool {
	return inpututil.IsKeyJustPressed(c.Key) && c.held()
}

// CheckAction checks if any keybinding for the given action was pressed this tick
func (km *KeybindingManager) CheckAction(action string) bool {
	for _, combination := range km.parsed[action] {
		if combination.justPressed() {
			return true
		}
	}
	return false
}

// ExecuteAction executes the given action if one of its keys was pressed
func (km *KeybindingManager) ExecuteAction(action string, inputActions InputActions) bool {
	if !km.CheckAction(action) {
		return false
	}
	return globalActionExecutor.ExecuteAction(action, inputActions)
}

// GetKeybindings returns the current keybindings map (for display purposes)
func (km *KeybindingManager) GetKeybindings() map[string][]string {
	return km.keybindings
}

// UpdateKeybindings replaces the keybindings and re-parses them
func (km *KeybindingManager) UpdateKeybindings(keybindings map[string][]string) {
	keyMapping := getKeyMapping()
	km.keybindings = keybindings
	km.parsed = make(map[string][]KeyCombination, len(keybindings))
	for action, keyStrings := range keybindings {
		for _, keyStr := range keyStrings {
			combination, ok := parseKeyString(keyStr, keyMapping)
			if !ok {
				log.Printf("Warning: Ignoring unknown key '%s' for action '%s'", keyStr, action)
				continue
			}
			km.parsed[action] = append(km.parsed[action], combination)
		}
	}
}
