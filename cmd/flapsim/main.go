// Command flapsim runs the game headless for a fixed number of seconds and
// prints the resulting pipe and player state as YAML. Two runs with the same
// seed print the same report.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/milk9111/flappy/ecs"
	"github.com/milk9111/flappy/ecs/component"
	"github.com/milk9111/flappy/ecs/entity"
	"github.com/milk9111/flappy/ecs/system"
	"github.com/milk9111/flappy/prefabs"
	"github.com/milk9111/flappy/rng"
	"github.com/milk9111/flappy/timing"
	"gopkg.in/yaml.v3"
)

type report struct {
	Seed     uint64       `yaml:"seed"`
	TPS      int          `yaml:"tps"`
	Frames   uint64       `yaml:"frames"`
	Spawned  int          `yaml:"spawned"`
	Removed  int          `yaml:"despawned"`
	Player   playerReport `yaml:"player"`
	Pipes    []pipeReport `yaml:"pipes"`
	Contacts int          `yaml:"contacts"`
}

type playerReport struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	VelocityY float64 `yaml:"velocity_y"`
}

type pipeReport struct {
	Entity string  `yaml:"entity"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
}

func main() {
	seed := flag.Uint64("seed", rng.DefaultSeed, "seed for pipe offsets")
	seconds := flag.Float64("seconds", 1, "simulated seconds")
	tps := flag.Int("tps", timing.DefaultTPS, "ticks per simulated second")
	flapEvery := flag.Int("flap", 0, "release jump every N frames (0 never flaps)")
	verbose := flag.Bool("v", false, "log each pipe spawn")
	flag.Parse()

	pipes, err := prefabs.LoadPipeSpawnerSpec()
	if err != nil {
		log.Fatal(err)
	}

	w := ecs.NewWorld()
	scene, err := entity.AddEntities(w, pipes)
	if err != nil {
		log.Fatal(err)
	}

	clock := timing.NewClock(*tps)
	gameplay, err := system.NewGameplay(system.Services{
		Clock:      clock,
		RNG:        rng.New(*seed),
		SpawnTimer: scene.SpawnTimer,
		Pipes:      pipes,
		Input: func() component.Input {
			if *flapEvery <= 0 {
				return component.Input{}
			}
			return component.Input{JumpReleased: (clock.Frame() % uint64(*flapEvery)) == 0}
		},
		Verbose: *verbose,
	})
	if err != nil {
		log.Fatal(err)
	}

	frames := int(*seconds * float64(clock.TPS()))
	for i := 0; i < frames; i++ {
		clock.Advance()
		gameplay.Update(w)
	}

	out := report{
		Seed:     *seed,
		TPS:      clock.TPS(),
		Frames:   clock.Frame(),
		Spawned:  gameplay.Spawner.Spawned(),
		Removed:  gameplay.Despawner.Despawned(),
		Contacts: gameplay.Physics.Contacts(),
	}
	if t, ok := ecs.Get(w, scene.Player, component.TransformComponent.Kind()); ok {
		out.Player.X, out.Player.Y = t.X, t.Y
	}
	if v, ok := ecs.Get(w, scene.Player, component.VelocityComponent.Kind()); ok {
		out.Player.VelocityY = v.LinearY
	}
	ecs.ForEach2(w, component.PipeSpawnerComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, _ *component.PipeSpawner, t *component.Transform) {
			out.Pipes = append(out.Pipes, pipeReport{Entity: e.String(), X: t.X, Y: t.Y})
		})

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		log.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		log.Fatal(err)
	}
}
