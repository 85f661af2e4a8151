package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

var debugMode bool

// debugLog prints only when debug output is enabled
func debugLog(format string, args ...interface{}) {
	if debugMode {
		log.Printf("Debug: "+format, args...)
	}
}

func main() {
	flag.BoolVar(&debugMode, "debug", os.Getenv("NEATPIC_DEBUG") != "", "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] [path]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	openedPath := flag.Arg(0)

	configResult := loadConfig()
	for _, warning := range configResult.Warnings {
		log.Printf("Warning: %s", warning)
	}

	store := NewSettingsStore(DefaultSettingsPath())
	settings := store.Load()
	debugLog("Settings %s: %dx%d", store.Path(), settings.WindowWidth, settings.WindowHeight)

	ctx, err := NewScanner(configResult.Config.SortMethod).Scan(openedPath)
	if err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
	debugLog("Opened %s: %d images", ctx.Dir, len(ctx.Images))

	if err := InitGraphics(); err != nil {
		log.Fatal(err)
	}

	viewer := NewViewer(ctx, store, settings, configResult, fileDecoder{}, ebitenTextureFactory{})

	ebiten.SetWindowTitle(windowTitle(openedPath, ctx))
	ebiten.SetWindowSize(settings.WindowWidth, settings.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal(err)
	}
}
