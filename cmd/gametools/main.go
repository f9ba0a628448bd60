package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/zeusync/gametools/internal/config"
	"github.com/zeusync/gametools/internal/injector"
	"github.com/zeusync/gametools/internal/observability/log"
)

const usage = `usage: gametools [-config file.yaml] <command> [args]

commands:
  distance  x,y,z x,y,z   Euclidean distance between two points
  equal     x,y,z x,y,z   approximate component-wise equality
  manhattan x,y x,y       grid distance between two cells
  adjacent  x,y           the four orthogonal neighbours of a cell
  inbounds  x,y [WxH]     whether a cell lies inside a grid
  scenes    path...       load scenes and list them in index order
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gametools", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	configPath := fs.String("config", "", "path to a YAML config file")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "gametools:", err)
		return 1
	}
	app := injector.InitializeApp(cfg)
	defer func() { _ = app.Logger.Sync() }()

	cmd, ok := commands[fs.Arg(0)]
	if !ok {
		fmt.Fprintf(stderr, "gametools: unknown command %q\n", fs.Arg(0))
		fs.Usage()
		return 2
	}

	e := &env{app: app, cfg: cfg, out: stdout}
	if err := cmd(e, fs.Args()[1:]); err != nil {
		app.Logger.Debug("command failed", log.String("command", fs.Arg(0)), log.Error(err))
		fmt.Fprintln(stderr, "gametools:", err)
		if errors.Is(err, errUsage) {
			fs.Usage()
			return 2
		}
		return 1
	}
	return 0
}
