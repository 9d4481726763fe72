package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/good-manners/asset"
	"github.com/lixenwraith/good-manners/audio"
	"github.com/lixenwraith/good-manners/config"
	"github.com/lixenwraith/good-manners/content"
	"github.com/lixenwraith/good-manners/game"
)

var (
	configFlag  = flag.String("config", "", "Optional YAML config file")
	contentFlag = flag.String("content", "", "Scenarios JSON path (overrides config)")
	assetsFlag  = flag.String("assets", "", "Asset directory (overrides config)")
	endBGFlag   = flag.String("end-background", "", "End screen image (overrides config)")
	muteFlag    = flag.Bool("mute", false, "Silence audio playback")
	debugFlag   = flag.Bool("debug", false, "Write diagnostics to logs/good-manners.log")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Flags win over file values
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "content":
			cfg.Content = *contentFlag
		case "assets":
			cfg.Assets = *assetsFlag
		case "end-background":
			cfg.EndBackground = *endBGFlag
		case "mute":
			cfg.Mute = *muteFlag
		case "debug":
			cfg.Debug = *debugFlag
		}
	})

	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	// Fatal load-time tier: a bad content source aborts startup
	store := asset.NewStore(cfg.Assets)
	scenarios, err := content.Load(cfg.Content, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// Audio degrades to a no-op when the speaker is unavailable
	player := audio.NewPlayer(cfg.Assets)
	if err := player.Initialize(); err != nil {
		log.Printf("audio unavailable, continuing silent: %v", err)
	}
	player.SetMuted(cfg.Mute)
	defer player.Stop()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before printing the stack
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\ncrashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.HideCursor()

	g := game.New(scenarios, store, player, cfg.EndBackground)
	run(screen, g)
}

// run drives the main loop: an event goroutine feeding a channel plus a
// ticker at the display's natural refresh cadence.
func run(screen tcell.Screen, g *game.Game) {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			if !g.HandleEvent(ev) {
				return
			}

		case <-ticker.C:
			g.Update()
			g.Draw(screen)
			screen.Show()
		}
	}
}
