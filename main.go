package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fractal-synth/engine"
	"github.com/lixenwraith/fractal-synth/preset"
	"github.com/lixenwraith/fractal-synth/store"
)

func main() {
	presetName := flag.String("preset", preset.DefaultName, "starting preset: "+strings.Join(preset.Names(), ", "))
	fps := flag.Int("fps", 30, "target frames per second")
	dbPath := flag.String("db", "fractal-synth.db", "snapshot database path (empty disables snapshots)")
	snapshot := flag.String("snapshot", "", "restore a saved snapshot by name")
	list := flag.Bool("list", false, "list saved snapshots and exit")
	flag.Parse()

	if *fps < 1 {
		*fps = 1
	}

	var snaps *store.Store
	if *dbPath != "" {
		snaps = store.New(*dbPath)
		if err := snaps.Init(context.Background()); err != nil {
			log.Printf("snapshot store unavailable: %v", err)
			snaps = nil
		} else {
			defer snaps.Close()
		}
	}

	if *list {
		listSnapshots(snaps)
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()

	synth := engine.New(screen, snaps, engine.Config{
		Preset:   *presetName,
		FPS:      *fps,
		DBPath:   *dbPath,
		Snapshot: *snapshot,
	})
	synth.Run()
}

func listSnapshots(snaps *store.Store) {
	if snaps == nil {
		fmt.Println("no snapshot store configured")
		return
	}
	names, err := snaps.List(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "list failed: %v\n", err)
		os.Exit(1)
	}
	if len(names) == 0 {
		fmt.Println("no snapshots saved")
		return
	}
	for _, name := range names {
		fmt.Println(name)
	}
}
