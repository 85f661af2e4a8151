package main

// ActionDefinition defines an action with its default keybindings, mouse bindings, and description
type ActionDefinition struct {
	Name         string
	Keys         []string
	MouseActions []string
	Description  string
}

// actionDefinitions contains all action definitions with default keybindings, mouse bindings, and descriptions
var actionDefinitions = []ActionDefinition{
	{"exit", []string{"Escape", "KeyQ"}, []string{}, "Quit application"},
	{"help", []string{"Shift+Slash"}, []string{}, "Show/hide help"},
	{"toggle_panel", []string{"Tab"}, []string{}, "Show/hide the side panel"},
	{"next", []string{"ArrowRight", "Space", "PageDown"}, []string{"Forward"}, "Next image"},
	{"previous", []string{"ArrowLeft", "Backspace", "PageUp"}, []string{"Back"}, "Previous image"},
	{"jump_first", []string{"Home"}, []string{}, "Jump to first image"},
	{"jump_last", []string{"End"}, []string{}, "Jump to last image"},
	{"fullscreen", []string{"Enter"}, []string{}, "Toggle fullscreen"},
	{"open", []string{"Ctrl+KeyO"}, []string{}, "Open another image"},
	{"copy_path", []string{"Ctrl+KeyC"}, []string{}, "Copy image path to clipboard"},

	// Zoom actions
	{"zoom_in", []string{"Equal", "Shift+Equal"}, []string{}, "Zoom in"},
	{"zoom_out", []string{"Minus"}, []string{}, "Zoom out"},
	{"zoom_reset", []string{"Key0"}, []string{}, "Reset to 100% zoom"},
	{"zoom_fit", []string{"KeyF"}, []string{"MiddleClick"}, "Fit to window and recenter"},
}

// ActionExecutor is the single place actions are mapped onto InputActions,
// shared by the keyboard and mouse binding managers
type ActionExecutor struct{}

// NewActionExecutor creates a new ActionExecutor instance
func NewActionExecutor() *ActionExecutor {
	return &ActionExecutor{}
}

// ExecuteAction runs action and reports whether it was recognized
func (ae *ActionExecutor) ExecuteAction(action string, inputActions InputActions) bool {
	switch action {
	case "exit":
		inputActions.Exit()
	case "help":
		inputActions.ToggleHelp()
	case "toggle_panel":
		inputActions.ToggleSidePanel()
	case "next":
		inputActions.NavigateNext()
	case "previous":
		inputActions.NavigatePrevious()
	case "jump_first":
		inputActions.JumpToImage(0)
	case "jump_last":
		if total := inputActions.GetTotalImagesCount(); total > 0 {
			inputActions.JumpToImage(total - 1)
		}
	case "fullscreen":
		inputActions.ToggleFullscreen()
	case "open":
		inputActions.OpenFile()
	case "copy_path":
		inputActions.CopyPath()
	case "zoom_in":
		inputActions.ZoomIn()
	case "zoom_out":
		inputActions.ZoomOut()
	case "zoom_reset":
		inputActions.ZoomReset()
	case "zoom_fit":
		inputActions.ZoomFit()
	default:
		return false
	}

	return true
}

// globalActionExecutor is the global instance of ActionExecutor used throughout the application
var globalActionExecutor = NewActionExecutor()

// GetActionDescriptions returns a map of action names to their descriptions
func GetActionDescriptions() map[string]string {
	descriptions := make(map[string]string)
	for _, action := range actionDefinitions {
		descriptions[action.Name] = action.Description
	}
	return descriptions
}

// GetDefaultKeybindings returns a map of action names to their default keybindings
func GetDefaultKeybindings() map[string][]string {
	keybindings := make(map[string][]string)
	for _, action := range actionDefinitions {
		keybindings[action.Name] = action.Keys
	}
	return keybindings
}

// GetDefaultMousebindings returns a map of action names to their default mouse bindings
func GetDefaultMousebindings() map[string][]string {
	mousebindings := make(map[string][]string)
	for _, action := range actionDefinitions {
		mousebindings[action.Name] = action.MouseActions
	}
	return mousebindings
}

// actionNames returns action names in definition order
func actionNames() []string {
	names := make([]string, 0, len(actionDefinitions))
	for _, action := range actionDefinitions {
		names = append(names, action.Name)
	}
	return names
}
