package main

import (
	"flag"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/LilLilian59/JeuDeLaVie/internal/control"
	"github.com/LilLilian59/JeuDeLaVie/pkg/life"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// options collects the runner's command line.
type options struct {
	sets      kvList
	stamps    kvList
	obstacles kvList
	cells     kvList

	steps       int
	gps         int
	every       int
	print       bool
	metricsAddr string
	trials      int
	workers     int
}

func (o *options) bind(fs *flag.FlagSet) {
	fs.Var(&o.sets, "set", "grid parameter in key=value form: w, h, seed, density (repeatable)")
	fs.Var(&o.stamps, "stamp", "pattern to stamp as name@x,y (repeatable)")
	fs.Var(&o.obstacles, "obstacle", "obstacle cell as x,y (repeatable)")
	fs.Var(&o.cells, "cell", "live cell as x,y (repeatable)")
	fs.IntVar(&o.steps, "steps", 100, "generations to simulate (0 runs until interrupted)")
	fs.IntVar(&o.gps, "gps", 0, "generations per second (0 runs unthrottled)")
	fs.IntVar(&o.every, "every", 0, "log progress every N generations (0 disables)")
	fs.BoolVar(&o.print, "print", false, "print the final grid")
	fs.StringVar(&o.metricsAddr, "metrics-addr", "", "address to serve Prometheus metrics on (empty disables)")
	fs.IntVar(&o.trials, "trials", 0, "run N random soup trials instead of a single grid")
	fs.IntVar(&o.workers, "workers", runtime.NumCPU(), "parallel soup trials")
}

// config resolves the -set overrides into an engine configuration.
func (o *options) config() (life.Config, error) {
	values := map[string]string{}
	for _, kv := range o.sets {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			return life.Config{}, fmt.Errorf("invalid -set %q: want key=value", kv)
		}
		values[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return life.FromMap(values), nil
}

// intents converts the seeding flags into controller intents. Obstacles go
// first so later cells and stamps respect them.
func (o *options) intents() ([]control.Intent, error) {
	var out []control.Intent
	for _, v := range o.obstacles {
		x, y, err := parseCoord(v)
		if err != nil {
			return nil, fmt.Errorf("-obstacle: %w", err)
		}
		out = append(out, control.Intent{Kind: control.ToggleObstacle, X: x, Y: y})
	}
	for _, v := range o.cells {
		x, y, err := parseCoord(v)
		if err != nil {
			return nil, fmt.Errorf("-cell: %w", err)
		}
		out = append(out, control.Intent{Kind: control.SetCell, X: x, Y: y, Alive: true})
	}
	for _, v := range o.stamps {
		name, coord, ok := strings.Cut(v, "@")
		if !ok {
			return nil, fmt.Errorf("-stamp %q: want name@x,y", v)
		}
		x, y, err := parseCoord(coord)
		if err != nil {
			return nil, fmt.Errorf("-stamp: %w", err)
		}
		out = append(out, control.Intent{Kind: control.StampPattern, Pattern: name, X: x, Y: y})
	}
	return out, nil
}

func parseCoord(v string) (int, int, error) {
	xs, ys, ok := strings.Cut(v, ",")
	if !ok {
		return 0, 0, fmt.Errorf("coordinate %q: want x,y", v)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return 0, 0, fmt.Errorf("coordinate %q: %w", v, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return 0, 0, fmt.Errorf("coordinate %q: %w", v, err)
	}
	return x, y, nil
}
