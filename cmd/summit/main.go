package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/automoto/summit/config"
	"github.com/automoto/summit/leveldata"
	"github.com/automoto/summit/logger"
	"github.com/automoto/summit/player"
	"github.com/automoto/summit/scenes"
	"github.com/automoto/summit/tilemap"
)

const appName = "summit"

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s <autotile|import|run> [flags]\n", filepath.Base(os.Args[0]))
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	var err error
	switch os.Args[1] {
	case "autotile":
		err = autotileCmd(os.Args[2:])
	case "import":
		err = importCmd(os.Args[2:])
	case "run":
		err = runCmd(os.Args[2:])
	default:
		usage()
	}
	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}

func autotileCmd(args []string) error {
	fs := flag.NewFlagSet("autotile", flag.ExitOnError)
	mapPath := fs.String("map", config.Level.DefaultMapPath, "Level document to autotile in place")
	_ = fs.Parse(args)

	tm, err := tilemap.Load(*mapPath)
	if err != nil {
		return err
	}
	tm.Autotile()
	if err := tm.Save(*mapPath); err != nil {
		return err
	}
	fmt.Printf("autotiled %d tiles in %s\n", tm.Len(), *mapPath)
	return nil
}

func importCmd(args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	tmxPath := fs.String("tmx", "", "TMX file to import")
	out := fs.String("out", config.Level.DefaultMapPath, "Level document to write")
	slot := fs.String("slot", "", "Also store the level in this save slot")
	_ = fs.Parse(args)

	if *tmxPath == "" {
		return errors.New("-tmx is required")
	}
	dir, name := filepath.Split(*tmxPath)
	if dir == "" {
		dir = "."
	}
	tm, err := leveldata.ImportTMX(os.DirFS(dir), name)
	if err != nil {
		return err
	}
	tm.Autotile()
	if err := tm.Save(*out); err != nil {
		return err
	}
	if *slot != "" {
		store, err := leveldata.OpenStore(appName)
		if err != nil {
			return err
		}
		if err := store.SaveLevel(*slot, tm); err != nil {
			return err
		}
	}
	fmt.Printf("imported %d tiles, %d off-grid from %s into %s\n", tm.Len(), len(tm.Offgrid()), *tmxPath, *out)
	return nil
}

func runCmd(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	mapPath := fs.String("map", config.Level.DefaultMapPath, "Level document to simulate")
	slot := fs.String("slot", "", "Load the level from this save slot instead of -map")
	ticks := fs.Int("ticks", config.TPS*5, "Ticks to simulate")
	move := fs.Int("move", 1, "Horizontal input held for the whole run (-1, 0, 1)")
	seed := fs.Int64("seed", 1, "Effect RNG seed")
	configPath := fs.String("config", "", "YAML tuning overrides")
	logPath := fs.String("log", "", "Log file (stderr when empty)")
	debug := fs.Bool("debug", false, "Enable debug logging")
	realtime := fs.Bool("realtime", false, "Tick on the wall clock instead of as fast as possible")
	_ = fs.Parse(args)

	if err := logger.Init(*logPath, *debug); err != nil {
		return err
	}
	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			return err
		}
	}

	tm, err := loadRunMap(*mapPath, *slot)
	if err != nil {
		return err
	}

	scene := scenes.NewPlatformerScene(tm).WithSeed(*seed)
	scene.SetInput(player.Intent{MoveX: *move})
	var snap scenes.Snapshot
	if *realtime {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		snap = scenes.NewLoop(scene, config.TPS, func(s scenes.Snapshot) bool {
			return s.Tick < *ticks && !s.Finished
		}).Run(ctx)
	} else {
		for i := 0; i < *ticks; i++ {
			scene.Update()
			snap = scene.Snapshot()
			if snap.Finished {
				break
			}
		}
	}

	logger.Log.Infow("Run finished",
		"tick", snap.Tick,
		"pos", fmt.Sprintf("%.2f,%.2f", snap.Pos.X, snap.Pos.Y),
		"action", snap.Action.String(),
		"mode", snap.Mode.String(),
		"deaths", snap.Deaths,
		"checkpoint", snap.Checkpoint,
		"finished", snap.Finished,
	)
	fmt.Printf("tick=%d pos=(%.2f, %.2f) action=%s deaths=%d finished=%t\n",
		snap.Tick, snap.Pos.X, snap.Pos.Y, snap.Action, snap.Deaths, snap.Finished)
	return nil
}

func loadRunMap(mapPath, slot string) (*tilemap.Tilemap, error) {
	if slot != "" {
		store, err := leveldata.OpenStore(appName)
		if err != nil {
			return nil, err
		}
		return store.LoadLevel(slot)
	}
	tm, err := tilemap.Load(mapPath)
	if errors.Is(err, tilemap.ErrNotFound) {
		logger.Log.Warnw("Level not found, running on an empty map", "path", mapPath)
		return tilemap.New(config.Level.TileSize), nil
	}
	return tm, err
}
