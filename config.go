package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const appName = "neatpic"

// Config defaults and limits
const (
	defaultFontSize       = 16.0
	minFontSize           = 10.0
	defaultCacheSize      = 16
	maxCacheSize          = 64
	defaultSidePanelWidth = 220
	minSidePanelWidth     = 120
	maxSidePanelWidth     = 800
)

// ConfigLoadResult contains the result of loading configuration
type ConfigLoadResult struct {
	Config   Config
	HasError bool
	Warnings []string
	Status   string // "OK", "Default", "Warning", "Error"
}

// Config holds user preferences. It is read at startup and never written.
type Config struct {
	SortMethod     int                 `json:"sort_method"`
	FontSize       float64             `json:"font_size"`
	CacheSize      int                 `json:"cache_size"`
	SidePanelWidth int                 `json:"side_panel_width"`
	ShowSidePanel  bool                `json:"show_side_panel"`
	Keybindings    map[string][]string `json:"keybindings"`
	Mousebindings  map[string][]string `json:"mousebindings"`
	Mouse          MouseSettings       `json:"mouse"`
}

// DefaultConfig returns the configuration used when no config file exists
func DefaultConfig() Config {
	return Config{
		SortMethod:     SortNatural,
		FontSize:       defaultFontSize,
		CacheSize:      defaultCacheSize,
		SidePanelWidth: defaultSidePanelWidth,
		ShowSidePanel:  true,
		Keybindings:    GetDefaultKeybindings(),
		Mousebindings:  GetDefaultMousebindings(),
		Mouse:          GetDefaultMouseSettings(),
	}
}

func getConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.json")
}

func loadConfig() ConfigLoadResult {
	return loadConfigFromPath(getConfigPath())
}

func loadConfigFromPath(configPath string) ConfigLoadResult {
	config := DefaultConfig()

	result := ConfigLoadResult{
		Config:   config,
		Warnings: []string{},
		Status:   "OK",
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		// Config file not found is not an error - use defaults
		result.Status = "Default"
		return result
	}

	if err := json.Unmarshal(data, &config); err != nil {
		log.Printf("Warning: Invalid config file %s, using defaults: %v", configPath, err)
		result.HasError = true
		result.Status = "Error"
		result.Warnings = append(result.Warnings, fmt.Sprintf("Invalid config file: %v", err))
		return result
	}

	if config.SortMethod < SortNatural || config.SortMethod > SortEntryOrder {
		config.SortMethod = SortNatural
	}

	if config.FontSize < minFontSize {
		config.FontSize = defaultFontSize
	}

	if config.CacheSize < 1 {
		config.CacheSize = defaultCacheSize
	} else if config.CacheSize > maxCacheSize {
		config.CacheSize = maxCacheSize
	}

	if config.SidePanelWidth < minSidePanelWidth {
		config.SidePanelWidth = defaultSidePanelWidth
	} else if config.SidePanelWidth > maxSidePanelWidth {
		config.SidePanelWidth = maxSidePanelWidth
	}

	if config.Mouse.WheelSensitivity <= 0 {
		config.Mouse.WheelSensitivity = 1.0
	}
	if config.Mouse.DoubleClickTime <= 0 {
		config.Mouse.DoubleClickTime = GetDefaultMouseSettings().DoubleClickTime
	}

	if err := mergeBindings(&config.Keybindings, GetDefaultKeybindings(), validateKeybindings); err != nil {
		log.Printf("Warning: Invalid keybindings detected, using defaults: %v", err)
		result.Status = "Warning"
		result.Warnings = append(result.Warnings, fmt.Sprintf("Keybinding errors: %v", err))
	}
	if err := mergeBindings(&config.Mousebindings, GetDefaultMousebindings(), validateMousebindings); err != nil {
		log.Printf("Warning: Invalid mouse bindings detected, using defaults: %v", err)
		result.Status = "Warning"
		result.Warnings = append(result.Warnings, fmt.Sprintf("Mouse binding errors: %v", err))
	}

	result.Config = config
	return result
}

// mergeBindings fills actions missing from bindings with defaults, then
// replaces the whole map with the defaults if validation fails
func mergeBindings(bindings *map[string][]string, defaults map[string][]string, validate func(map[string][]string) error) error {
	if *bindings == nil {
		*bindings = defaults
		return nil
	}
	for action, keys := range defaults {
		if _, exists := (*bindings)[action]; !exists {
			(*bindings)[action] = keys
		}
	}
	if err := validate(*bindings); err != nil {
		*bindings = defaults
		return err
	}
	return nil
}

// validateKeybindings checks key names, modifiers, and conflicts
func validateKeybindings(keybindings map[string][]string) error {
	validKeys := getKeyMapping()
	return validateBindings(keybindings, func(name string) bool {
		_, ok := validKeys[name]
		return ok
	})
}

// validateMousebindings checks mouse action names, modifiers, and conflicts
func validateMousebindings(mousebindings map[string][]string) error {
	return validateBindings(mousebindings, isValidMouseName)
}

func validateBindings(bindings map[string][]string, validName func(string) bool) error {
	inputToAction := make(map[string]string)
	known := GetActionDescriptions()

	for action, inputs := range bindings {
		if _, ok := known[action]; !ok {
			return fmt.Errorf("unknown action '%s'", action)
		}
		for _, input := range inputs {
			if err := validateBindingString(input, validName); err != nil {
				return fmt.Errorf("invalid binding '%s' for action '%s': %v", input, action, err)
			}
			if existing, exists := inputToAction[input]; exists {
				return fmt.Errorf("conflict: '%s' is bound to both '%s' and '%s'", input, existing, action)
			}
			inputToAction[input] = action
		}
	}
	return nil
}

// validateBindingString validates a single "Mod+Mod+Name" string
func validateBindingString(input string, validName func(string) bool) error {
	if input == "" {
		return fmt.Errorf("empty binding")
	}
	parts := strings.Split(input, "+")

	name := parts[len(parts)-1]
	if !validName(name) {
		return fmt.Errorf("unknown input: %s", name)
	}

	for _, modifier := range parts[:len(parts)-1] {
		switch strings.ToLower(modifier) {
		case "shift", "ctrl", "alt":
		default:
			return fmt.Errorf("unknown modifier: %s", modifier)
		}
	}
	return nil
}
