// Command drop-sandbox is a terminal viewer for drop scenes
// Sources from a YAML scene release loot into a toy ballistic world shown top-down
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-loot/audio"
	"github.com/lixenwraith/vi-loot/config"
	"github.com/lixenwraith/vi-loot/scene"
)

var (
	debugFlag = flag.Bool("debug", false, "Write logs to logs/drop-sandbox.log")
	sceneFlag = flag.String("scene", "", "Scene YAML file (default: built-in courtyard)")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

// run owns every deferred cleanup and returns the process exit code
func run() (code int) {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}

	if logFile := setupLogging(*debugFlag || settings.Debug); logFile != nil {
		defer logFile.Close()
	}

	sc, err := loadScene(*sceneFlag, settings.Scene)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	var sound *audio.Player
	if settings.Audio {
		cfg := audio.DefaultConfig()
		cfg.MasterVolume = settings.Volume
		sound = audio.NewPlayer(cfg)
		if err := sound.Initialize(); err != nil {
			// Non-fatal, the sandbox runs silent
			fmt.Fprintf(os.Stderr, "audio: %v (continuing without audio)\n", err)
		}
		defer sound.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mDROP-SANDBOX CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()

	sb, err := newSandbox(screen, sc, settings, sound)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	sb.run()
	return 0
}

// loadScene prefers the flag, then DROP_SCENE, then the embedded scene
func loadScene(flagPath, envPath string) (*scene.Scene, error) {
	switch {
	case flagPath != "":
		return scene.Load(flagPath)
	case envPath != "":
		return scene.Load(envPath)
	default:
		return scene.Default()
	}
}
