package main

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sqweek/dialog"
)

const defaultWindowTitle = "NeatPic"

// platform holds the desktop integrations the viewer calls out to
type platform struct {
	pickFile       func(startDir string) (string, error)
	writeClipboard func(text string) error
	setTitle       func(title string)
}

func defaultPlatform() platform {
	return platform{
		pickFile:       pickImageFile,
		writeClipboard: clipboard.WriteAll,
		setTitle:       ebiten.SetWindowTitle,
	}
}

func pickImageFile(startDir string) (string, error) {
	exts := make([]string, 0, len(supportedExts))
	for ext := range supportedExts {
		exts = append(exts, strings.TrimPrefix(ext, "."))
	}
	slices.Sort(exts)
	return dialog.File().
		Title("Open image").
		Filter("Images", exts...).
		Filter("Archives", "zip", "rar", "7z").
		SetStartDir(startDir).
		Load()
}

// Viewer is the application context: it owns the image set, the viewer
// state, and the persisted settings, and implements ebiten.Game
type Viewer struct {
	store        *SettingsStore
	settings     Settings
	config       Config
	configResult ConfigLoadResult

	scanner  *Scanner
	dir      string
	images   []*ImageEntry
	textures *TextureCache
	curr     *CurrentImage // nil when no image is selected

	input        *InputHandler
	slider       ZoomSlider
	layout       panelLayout
	placement    Placement
	lastCursor   Vec2
	panning      bool
	pendingWheel float64

	showHelp           bool
	showSidePanel      bool
	overlayMessage     string
	overlayMessageTime time.Time

	fullscreen bool
	quitting   bool

	screenW, screenH int

	renderer *Renderer
	platform platform
}

// NewViewer builds a viewer over an already scanned image set
func NewViewer(ctx OpenContext, store *SettingsStore, settings Settings, configResult ConfigLoadResult, decoder Decoder, factory TextureFactory) *Viewer {
	config := configResult.Config
	v := &Viewer{
		store:         store,
		settings:      settings,
		config:        config,
		configResult:  configResult,
		scanner:       NewScanner(config.SortMethod),
		textures:      NewTextureCache(decoder, factory, config.CacheSize),
		showSidePanel: config.ShowSidePanel,
		screenW:       settings.WindowWidth,
		screenH:       settings.WindowHeight,
		platform:      defaultPlatform(),
	}
	v.setImageSet(ctx)
	v.input = NewInputHandler(v,
		NewKeybindingManager(config.Keybindings),
		NewMousebindingManager(config.Mousebindings, config.Mouse))
	v.renderer = NewRenderer(v)
	return v
}

func (v *Viewer) setImageSet(ctx OpenContext) {
	v.dir = ctx.Dir
	v.images = ctx.Images
	v.curr = nil
	if ctx.HasIndex {
		v.curr = NewCurrentImage(ctx.Index)
	}
}

// Update handles one tick: quit requests, window tracking, bound actions,
// then pointer-driven pan and zoom
func (v *Viewer) Update() error {
	if ebiten.IsWindowBeingClosed() {
		v.Exit()
	}
	if v.quitting {
		return v.shutdown()
	}

	v.trackWindowSize()
	v.input.HandleInput()
	if v.quitting {
		return v.shutdown()
	}

	v.step(v.input.PollInput())
	return nil
}

func (v *Viewer) shutdown() error {
	v.store.Save(v.settings)
	return ebiten.Termination
}

// trackWindowSize keeps the in-memory settings at the live windowed size
func (v *Viewer) trackWindowSize() {
	if ebiten.IsFullscreen() {
		return
	}
	if w, h := ebiten.WindowSize(); w > 0 && h > 0 {
		v.settings.WindowWidth = w
		v.settings.WindowHeight = h
	}
}

// step applies one tick of pointer input to the viewer state
func (v *Viewer) step(in frameInput) {
	v.layout = computeLayout(v.screenW, v.screenH, v.showSidePanel, v.config.SidePanelWidth, v.config.FontSize)

	if v.curr == nil {
		v.lastCursor = in.Cursor
		v.pendingWheel = 0
		return
	}

	// Pan
	if in.LeftJustPressed {
		v.panning = in.PanEnabled && !v.overPanel(in.Cursor)
	}
	if !in.LeftPressed {
		v.panning = false
	}
	if v.panning {
		v.PanByDelta(in.Cursor.Sub(v.lastCursor))
	}
	v.lastCursor = in.Cursor

	// Fit, place, and wheel zoom
	wheel := in.Wheel + v.pendingWheel
	v.pendingWheel = 0
	if tex, err := v.textures.Texture(v.images[v.curr.Index]); err == nil {
		w, h := tex.Size()
		available := Vec2{float64(v.layout.Viewport.w), float64(v.layout.Viewport.h)}
		v.placement = v.curr.Step(Vec2{float64(w), float64(h)}, available, wheel)
	}

	// Top panel
	if percent, changed := v.slider.Update(v.layout.Slider, v.curr.ZoomPercent(), in); changed {
		v.curr.SetZoomPercent(percent)
	}
}

func (v *Viewer) overPanel(p Vec2) bool {
	if v.showSidePanel && v.layout.Side.containsVec(p) {
		return true
	}
	return v.layout.Top.containsVec(p)
}

// Draw renders the current tick
func (v *Viewer) Draw(screen *ebiten.Image) {
	v.renderer.Draw(screen)
}

// Layout uses the window size as the logical screen size
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.screenW, v.screenH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// InputActions

func (v *Viewer) Exit() {
	v.quitting = true
}

func (v *Viewer) ToggleHelp() {
	v.showHelp = !v.showHelp
}

func (v *Viewer) ToggleSidePanel() {
	v.showSidePanel = !v.showSidePanel
}

func (v *Viewer) ToggleFullscreen() {
	v.fullscreen = !v.fullscreen
	ebiten.SetFullscreen(v.fullscreen)
	if !v.fullscreen {
		ebiten.SetWindowSize(v.settings.WindowWidth, v.settings.WindowHeight)
	}
}

// navigate moves by delta, wrapping around the image set
func (v *Viewer) navigate(delta int) {
	count := len(v.images)
	if count == 0 || v.curr == nil {
		return
	}
	v.JumpToImage((v.curr.Index + delta%count + count) % count)
}

func (v *Viewer) NavigateNext() {
	v.navigate(1)
}

func (v *Viewer) NavigatePrevious() {
	v.navigate(-1)
}

// JumpToImage selects index in fit mode; out of range indices are ignored
func (v *Viewer) JumpToImage(index int) {
	if index < 0 || index >= len(v.images) {
		return
	}
	if v.curr != nil && v.curr.Index == index {
		return
	}
	v.curr = NewCurrentImage(index)
	v.panning = false
	debugLog("Image [%d/%d] %s", index+1, len(v.images), v.images[index].Path.Path)
}

// OpenFile asks for another file and rebuilds the image set around it
func (v *Viewer) OpenFile() {
	path, err := v.platform.pickFile(v.startDir())
	if errors.Is(err, dialog.ErrCancelled) {
		debugLog("Open cancelled")
		return
	}
	if err != nil {
		log.Printf("Error: File dialog failed: %v", err)
		v.ShowOverlayMessage(fmt.Sprintf("Open failed: %v", err))
		return
	}
	v.openPath(path)
}

func (v *Viewer) startDir() string {
	if isArchiveExt(v.dir) {
		return filepath.Dir(v.dir)
	}
	return v.dir
}

// openPath rescans around path, keeping the current set when the scan fails
func (v *Viewer) openPath(path string) bool {
	ctx, err := v.scanner.Scan(path)
	if err != nil {
		log.Printf("Error: %v", err)
		v.ShowOverlayMessage(fmt.Sprintf("Cannot open: %v", err))
		return false
	}
	v.textures.Purge()
	v.setImageSet(ctx)
	v.panning = false
	v.platform.setTitle(windowTitle(path, ctx))
	return true
}

func (v *Viewer) CopyPath() {
	path := v.GetCurrentPath()
	if path == "" {
		return
	}
	if err := v.platform.writeClipboard(path); err != nil {
		log.Printf("Error: Failed to copy to clipboard: %v", err)
		v.ShowOverlayMessage("Copy failed")
		return
	}
	v.ShowOverlayMessage("Copied " + filepath.Base(path))
}

func (v *Viewer) ZoomIn() {
	v.pendingWheel += wheelNotch
}

func (v *Viewer) ZoomOut() {
	v.pendingWheel -= wheelNotch
}

func (v *Viewer) ZoomReset() {
	if v.curr != nil {
		v.curr.SetZoomPercent(100)
	}
}

func (v *Viewer) ZoomFit() {
	if v.curr != nil {
		v.curr.ResetFit()
	}
}

func (v *Viewer) PanByDelta(delta Vec2) {
	if v.curr != nil {
		v.curr.Pan(delta)
	}
}

func (v *Viewer) ShowOverlayMessage(message string) {
	v.overlayMessage = message
	v.overlayMessageTime = time.Now()
}

// RenderState

func (v *Viewer) GetCurrentTexture() (Texture, bool) {
	if v.curr == nil {
		return nil, false
	}
	tex, err := v.textures.Texture(v.images[v.curr.Index])
	if err != nil {
		return nil, false
	}
	return tex, true
}

func (v *Viewer) GetCurrentPath() string {
	if v.curr == nil {
		return ""
	}
	return v.images[v.curr.Index].Path.Path
}

func (v *Viewer) GetPlacement() Placement {
	return v.placement
}

func (v *Viewer) GetZoomPercent() (float64, bool) {
	if v.curr == nil {
		return 0, false
	}
	return v.curr.ZoomPercent(), true
}

func (v *Viewer) IsSidePanelVisible() bool {
	return v.showSidePanel
}

func (v *Viewer) GetLayout() panelLayout {
	return v.layout
}

func (v *Viewer) GetZoomSlider() *ZoomSlider {
	return &v.slider
}

func (v *Viewer) IsShowingHelp() bool {
	return v.showHelp
}

func (v *Viewer) GetOverlayMessage() string {
	return v.overlayMessage
}

func (v *Viewer) GetOverlayMessageTime() time.Time {
	return v.overlayMessageTime
}

func (v *Viewer) GetCurrentIndex() (int, bool) {
	if v.curr == nil {
		return 0, false
	}
	return v.curr.Index, true
}

func (v *Viewer) GetTotalImagesCount() int {
	return len(v.images)
}

func (v *Viewer) GetFontSize() float64 {
	return v.config.FontSize
}

func (v *Viewer) GetConfigStatus() ConfigLoadResult {
	return v.configResult
}

func (v *Viewer) GetKeybindings() map[string][]string {
	return v.input.GetKeybindings()
}

func (v *Viewer) GetMousebindings() map[string][]string {
	return v.input.GetMousebindings()
}

// windowTitle names the window after the browse root
func windowTitle(openedPath string, ctx OpenContext) string {
	if openedPath == "" || ctx.Dir == "" {
		return defaultWindowTitle
	}
	return ctx.Dir
}
