package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cwbudde/algo-viscoconv/anim"
	termdisplay "github.com/cwbudde/algo-viscoconv/internal/display/term"
	"github.com/cwbudde/algo-viscoconv/internal/display/window"
)

const (
	backendWindow = "window"
	backendTerm   = "term"
)

var errNotTerminal = errors.New("stdout is not a terminal; use --backend window")

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the animation (default)",
	Args:  cobra.NoArgs,
	RunE:  runPlay,
}

func addPlayFlags(cmd *cobra.Command) {
	fs := cmd.PersistentFlags()
	fs.Duration("interval", time.Millisecond, "nominal time between frames")
	fs.String("backend", backendWindow, "display backend: window or term")
}

func runPlay(cmd *cobra.Command, args []string) error {
	scene, err := sceneFromFlags(cmd)
	if err != nil {
		return err
	}
	d := anim.NewDriver(scene)
	interval := getDuration(cmd, "interval")

	backend := getString(cmd, "backend")
	log.WithFields(log.Fields{
		"backend":  backend,
		"frames":   d.Frames(),
		"interval": interval,
	}).Debug("starting playback")

	switch backend {
	case backendWindow:
		w, err := window.New(d, window.Options{TPS: ticksPerSecond(interval)})
		if err != nil {
			return err
		}
		return w.Run()
	case backendTerm:
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return errNotTerminal
		}
		t, err := termdisplay.Open(d, interval)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return t.Run(ctx)
	default:
		return fmt.Errorf("unknown backend %q", backend)
	}
}

// ticksPerSecond converts a frame interval to an ebiten tick rate.
func ticksPerSecond(interval time.Duration) int {
	if interval <= 0 {
		return 1000
	}
	tps := int((time.Second + interval - 1) / interval)
	if tps < 1 {
		tps = 1
	}
	return tps
}
