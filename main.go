package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lowrez/gridfire/audio"
	"github.com/lowrez/gridfire/engine"
	"github.com/lowrez/gridfire/grid"
	"github.com/lowrez/gridfire/input"
	"github.com/lowrez/gridfire/parameter"
	"github.com/lowrez/gridfire/render"
	"github.com/lowrez/gridfire/system"
)

// Game owns the terminal shell around one world: screen, input, audio,
// and the tick/render loop
type Game struct {
	screen   tcell.Screen
	world    *engine.World
	sched    *engine.Scheduler
	renderer *render.Renderer
	keys     *input.State
	sounds   *audio.SoundManager

	prev     engine.StateSnapshot
	lastHurt time.Time
}

func NewGame(lvl *grid.Level, seed int64) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	world := engine.NewWorld(lvl, seed)
	g := &Game{
		screen:   screen,
		world:    world,
		renderer: render.New(screen),
		keys:     input.NewState(),
		sounds:   audio.NewSoundManager(),
		prev:     world.State.Snapshot(),
	}

	// Fixed pipeline: motion, then AI, then projectiles
	g.sched = engine.NewScheduler(world, engine.NewTimeProvider(),
		system.NewMotion(), system.NewChase(), system.NewProjectiles())

	if err := g.sounds.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}

	return g, nil
}

// handleInput routes a terminal event; returns false to quit
func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action, ok := input.ActionForKey(ev)
		if !ok {
			return true
		}
		switch action {
		case input.ActionQuit:
			return false
		case input.ActionPause:
			g.togglePause()
		default:
			g.keys.Press(action, time.Now())
		}

	case *tcell.EventResize:
		g.screen.Sync()
	}

	return true
}

// togglePause freezes the scheduler and drops all held keys so no residual
// motion survives regaining control
func (g *Game) togglePause() {
	g.keys.Clear()
	g.sched.SetPaused(!g.sched.Paused())
}

// tick runs one frame: sample input, simulate, sound the diffs, render
func (g *Game) tick() {
	snap := g.keys.Snapshot(time.Now())
	g.sched.Tick(snap)

	cur := g.world.State.Snapshot()
	g.soundDiffs(cur)
	g.prev = cur

	g.renderer.Draw(g.world, g.sched.Paused())
}

// soundDiffs turns state changes since the previous frame into effects
func (g *Game) soundDiffs(cur engine.StateSnapshot) {
	if cur.Ammo < g.prev.Ammo {
		g.sounds.PlayFire()
	}
	if cur.Score > g.prev.Score {
		g.sounds.PlayKill()
	}
	if cur.Health < g.prev.Health && time.Since(g.lastHurt) > 300*time.Millisecond {
		g.sounds.PlayHurt()
		g.lastHurt = time.Now()
	}
	if cur.Terminal != g.prev.Terminal {
		switch cur.Terminal {
		case engine.TerminalWon:
			g.sounds.PlayWin()
		case engine.TerminalLost:
			g.sounds.PlayLose()
		}
	}
}

func (g *Game) run() {
	ticker := time.NewTicker(parameter.TickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}

		case <-ticker.C:
			g.tick()
		}
	}
}

func (g *Game) cleanup() {
	g.sounds.Cleanup()
	g.screen.Fini()
}

func main() {
	levelPath := flag.String("level", "", "path to a text level file")
	seed := flag.Int64("seed", time.Now().UnixNano(), "enemy speed variance seed")
	flag.Parse()

	var lvl *grid.Level
	var err error
	if *levelPath != "" {
		lvl, err = grid.LoadLevel(*levelPath, parameter.CellSize)
	} else {
		lvl, err = grid.ParseLevel(grid.DefaultLevel, parameter.CellSize)
	}
	if err != nil {
		log.Fatalf("Level load failed: %v", err)
	}

	game, err := NewGame(lvl, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()

	game.run()
}
