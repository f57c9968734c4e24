package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/1broseidon/stagehand/internal/config"
	"github.com/1broseidon/stagehand/internal/geom"
	"github.com/1broseidon/stagehand/internal/ipc"
	"github.com/1broseidon/stagehand/internal/panel"
	"github.com/1broseidon/stagehand/internal/platform"
	"github.com/1broseidon/stagehand/internal/stage"
)

func runDaemon() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Printf("Configuration loaded (min panel: %dx%d)",
		cfg.MinPanelSize.Width, cfg.MinPanelSize.Height)

	reg := panel.NewRegistry(geom.Rect{}, cfg.MinSize(), cfg.PanelDefaultsByKind())

	// Stage source: fixed size from config, or the active display via X11.
	var (
		provider stage.Provider
		setStage ipc.StageSetter
		watcher  *stage.Watcher
	)

	if fixed, ok := cfg.FixedStageRect(); ok {
		padding := cfg.StagePadding
		apply := func(size geom.Size) error {
			r := geom.ApplyPadding(geom.Rect{Width: size.Width, Height: size.Height}, padding)
			reg.Reflow(geom.Rect{Width: r.Width, Height: r.Height})
			return nil
		}
		if err := apply(geom.Size{Width: fixed.Width, Height: fixed.Height}); err != nil {
			log.Fatalf("Failed to apply fixed stage: %v", err)
		}
		setStage = apply
		log.Printf("Fixed stage: %dx%d", fixed.Width, fixed.Height)
	} else {
		backend, err := platform.NewLinuxBackendFromDisplay()
		if err != nil {
			log.Fatalf("Failed to connect to display: %v", err)
		}
		defer backend.Disconnect()

		provider = stage.WithPadding(stage.NewDisplayProvider(backend), cfg.StagePadding)
		watcher = stage.NewWatcher(provider, stage.DefaultPollInterval, reg.Reflow)
		watcher.Start()
		defer watcher.Stop()
		log.Println("Stage tracking the active display")
	}

	reloadChan := make(chan struct{}, 1)

	ipcServer, err := ipc.NewServer(reg, setStage, reloadChan)
	if err != nil {
		log.Fatalf("Failed to create IPC server: %v", err)
	}
	if err := ipcServer.Start(); err != nil {
		log.Fatalf("Failed to start IPC server: %v", err)
	}
	defer ipcServer.Stop()

	log.Println("stagehand daemon started successfully")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	for {
		select {
		case sig := <-sigCh:
			switch sig {
			case syscall.SIGHUP:
				log.Println("Received SIGHUP, reloading configuration...")
				reloadConfig(reg)

			case os.Interrupt, syscall.SIGTERM:
				log.Println("Shutting down stagehand daemon...")
				return
			}

		case <-reloadChan:
			log.Println("Reloading configuration via IPC...")
			reloadConfig(reg)
		}
	}
}

// reloadConfig re-reads the config file and reflows panels against the
// current stage. The stage source is fixed at startup and not swapped on
// reload.
func reloadConfig(reg *panel.Registry) {
	newCfg, err := config.Load()
	if err != nil {
		log.Printf("Config reload failed: %v", err)
		return
	}

	// Panels keep their geometry; only the minimum size constraint is
	// refreshed and re-applied against the current stage.
	reg.SetMinSize(newCfg.MinSize())
	reg.Reflow(reg.Stage())
	log.Printf("Configuration reloaded (min panel: %dx%d)",
		newCfg.MinPanelSize.Width, newCfg.MinPanelSize.Height)
}
