// Command sandbox runs the controller in a small level with hot-reloaded
// tuning, level layout and hit script.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/wallclimb/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "log every animator signal")
	watch := flag.Bool("watch", true, "hot reload files in the prefab directory")
	dir := flag.String("prefabs", prefabs.Dir, "prefab directory shadowing the embedded files")
	flag.Parse()

	logLevel := slog.LevelInfo
	if *debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	prefabs.Dir = *dir

	game, err := NewGame(logger, *watch)
	if err != nil {
		logger.Error("start sandbox", "error", err)
		os.Exit(1)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("wallclimb sandbox")
	ebiten.SetTPS(ticksPerSecond)

	if err := ebiten.RunGame(game); err != nil {
		logger.Error("run sandbox", "error", err)
		os.Exit(1)
	}
}
