// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"go-merge-defense/internal/app"
	"go-merge-defense/internal/config"
	"go-merge-defense/internal/defs"
	"go-merge-defense/internal/event"
	"go-merge-defense/internal/journal"
	"go-merge-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

// Update advances one fixed step; ebiten calls it config.TPS times per second.
func (a *AppGame) Update() error {
	a.stateMachine.Update(config.FixedStep)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configDir := flag.String("config", "configs", "directory with tuning.yaml, upgrade_links.json and market.json")
	journalPath := flag.String("journal", "", "write a zstd event journal to this file")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	definitions, err := defs.LoadDefinitions(*configDir)
	if err != nil {
		log.Fatal(err)
	}
	game := app.NewGame(definitions)

	if *journalPath != "" {
		w, err := journal.Create(*journalPath, game.GetGameTime)
		if err != nil {
			log.Fatal(err)
		}
		defer w.Close()
		game.EventDispatcher.Subscribe(event.Any, w)
		closeOnSignal(w)
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewGameState(sm, game))
	a := &AppGame{stateMachine: sm}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Merge Defense")
	ebiten.SetTPS(config.TPS)
	if err := ebiten.RunGame(a); err != nil {
		log.Print(err)
	}
}

// closeOnSignal flushes the journal from a signal goroutine while the game loop may still
// be writing to it, then exits.
func closeOnSignal(w *journal.Writer) {
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-ch
		if err := w.Close(); err != nil {
			log.Printf("journal: %v", err)
		}
		log.Printf("Stopped by %s", sig)
		os.Exit(1)
	}()
}
