// Command rampage plays the game in a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell"
	"golang.org/x/sync/errgroup"

	"github.com/borkshop/rampage/internal/config"
	"github.com/borkshop/rampage/internal/ecs"
	"github.com/borkshop/rampage/internal/game"
	"github.com/borkshop/rampage/internal/input"
	"github.com/borkshop/rampage/internal/perf"
	"github.com/borkshop/rampage/internal/persist"
	"github.com/borkshop/rampage/internal/term"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, os.Args[1:]); err != nil {
		log.Fatalln(err)
	}
}

func run(ctx context.Context, args []string) error {
	cfg, err := config.Parse(flag.NewFlagSet("rampage", flag.ExitOnError), args)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	var store *persist.Store
	if cfg.SavePath != "" {
		if store, err = persist.OpenStore(cfg.SavePath); err != nil {
			return err
		}
		defer store.Close()
	}

	scr, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := scr.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	var finiOnce sync.Once
	fini := func() { finiOnce.Do(scr.Fini) }
	defer fini()

	r := term.NewRenderer(scr)
	opts := game.Options{
		Seed:   cfg.Seed,
		Rules:  cfg.Rules,
		Logger: logger,
		Camera: r.Camera(),
	}
	w, err := loadWorld(ctx, store, cfg, opts)
	if err != nil {
		return err
	}
	logger.Printf("session %v", w.Session)

	cmds := make(chan game.Command, 16)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return input.Poll(ctx, scr, cmds)
	})
	eg.Go(func() error {
		defer fini()
		return frameLoop(ctx, cfg.FPS, w, r, cmds, logger)
	})
	err = eg.Wait()
	fini()
	if errors.Is(err, input.ErrQuit) || errors.Is(err, context.Canceled) {
		err = nil
	}
	if serr := saveWorld(store, cfg.SaveSlot, w); err == nil {
		err = serr
	}
	return err
}

func openLog(name string) (*log.Logger, func(), error) {
	if name == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return log.New(f, "", log.LstdFlags), func() { _ = f.Close() }, nil
}

// loadWorld resumes the configured save slot, or starts a new game.
func loadWorld(ctx context.Context, store *persist.Store, cfg config.Config, opts game.Options) (*game.World, error) {
	if store != nil && cfg.Load {
		st, ok, err := store.Load(ctx, cfg.SaveSlot)
		if err != nil {
			return nil, err
		}
		if ok {
			w, err := game.Load(opts, st)
			if err != nil {
				return nil, fmt.Errorf("load slot %q: %w", cfg.SaveSlot, err)
			}
			opts.Logger.Printf("resumed slot %q", cfg.SaveSlot)
			return w, nil
		}
	}
	return game.NewWorld(opts), nil
}

// saveWorld autosaves a game in progress; a finished game clears the slot.
func saveWorld(store *persist.Store, slot string, w *game.World) error {
	if store == nil {
		return nil
	}
	ctx := context.Background()
	if w.State == game.TurnOver {
		return store.Delete(ctx, slot)
	}
	st, err := w.Snapshot()
	if err != nil {
		return err
	}
	return store.Save(ctx, slot, st)
}

// frameLoop owns the world: it applies player commands and runs one world
// frame per tick.
func frameLoop(ctx context.Context, fps int, w *game.World, r *term.Renderer, cmds <-chan game.Command, logger *log.Logger) error {
	start := time.Now()
	var pf perf.Perf
	pf.Init(ecs.ProcFunc(func() {
		w.Frame(time.Since(start).Seconds())
		r.Draw(w)
	}))

	tick := time.NewTicker(time.Second / time.Duration(fps))
	defer tick.Stop()

	var pending []game.Command
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-cmds:
			pending = append(pending, cmd)
		case <-tick.C:
			pf.Process()
			if pf.Round()%(fps*10) == 0 {
				logger.Printf("fps %.1f, last frame %v", pf.FPS(), pf.Elapsed())
			}
		}
		pending = applyCommands(w, pending)
	}
}

// applyCommands feeds queued commands to the world while it awaits input,
// returning whatever has to wait.
func applyCommands(w *game.World, pending []game.Command) []game.Command {
	for len(pending) > 0 {
		if err := w.Command(pending[0]); errors.Is(err, game.ErrNotPlayerTurn) {
			if w.State == game.TurnOver || w.UI.State == game.UIPostDeath {
				return pending[:0]
			}
			return pending
		}
		pending = pending[1:]
	}
	return pending
}
