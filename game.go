package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/flappy/common"
	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/ecs/entity"
	"github.com/milk9111/flappy/ecs/system"
	"github.com/milk9111/flappy/prefabs"
	"github.com/milk9111/flappy/rng"
	"github.com/milk9111/flappy/timing"
)

type Game struct {
	world    *ecs.World
	clock    *timing.Clock
	scene    entity.Scene
	gameplay *system.Gameplay
	render   *system.RenderSystem

	pauseUI *ebitenui.UI
	paused  bool
	quit    bool

	seed    uint64
	debug   bool
	watcher *prefabs.Watcher
}

func NewGame(seed uint64, debug, watch bool) (*Game, error) {
	g := &Game{
		render: system.NewRenderSystem(),
		seed:   seed,
		debug:  debug,
	}
	g.pauseUI = NewPauseUI(g)

	if err := g.reset(); err != nil {
		return nil, err
	}

	if watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("prefab watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

// reset rebuilds the world from the prefabs with a fresh clock and rng so a
// restart replays the same pipe sequence.
func (g *Game) reset() error {
	pipes, err := prefabs.LoadPipeSpawnerSpec()
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}

	world := ecs.NewWorld()
	scene, err := entity.AddEntities(world, pipes)
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}

	clock := timing.NewClock(ebiten.TPS())
	gameplay, err := system.NewGameplay(system.Services{
		Clock:      clock,
		RNG:        rng.New(g.seed),
		SpawnTimer: scene.SpawnTimer,
		Pipes:      pipes,
		Verbose:    g.debug,
	})
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}

	g.world = world
	g.clock = clock
	g.scene = scene
	g.gameplay = gameplay
	return nil
}

func (g *Game) Update() error {
	if g.quit {
		g.close()
		return ebiten.Termination
	}

	g.reloadChangedPrefabs()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.clock.Advance()
	g.gameplay.Update(g.world)
	return nil
}

func (g *Game) reloadChangedPrefabs() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("prefab watcher: %v", err)
		}
	default:
	}

	changed := g.watcher.Poll()
	if len(changed) == 0 {
		return
	}
	log.Printf("prefabs changed: %v, restarting", changed)
	if err := g.reset(); err != nil {
		// keep running the old scene until the prefab is fixed
		log.Printf("prefab reload failed: %v", err)
	}
}

func (g *Game) restart() {
	if err := g.reset(); err != nil {
		log.Printf("restart failed: %v", err)
		return
	}
	g.paused = false
}

func (g *Game) close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("prefab watcher close: %v", err)
		}
		g.watcher = nil
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)

	if g.debug {
		system.DrawPhysicsDebug(g.gameplay.Physics.Space(), g.world, screen)
		system.DrawPlayerDebug(g.world, screen)
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frame: %d    FPS: %.2f    Spawned: %d    Contacts: %d",
			g.clock.Frame(), ebiten.ActualFPS(), g.gameplay.Spawner.Spawned(), g.gameplay.Physics.Contacts()))
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
