package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/zeusync/gametools/internal/config"
	"github.com/zeusync/gametools/internal/injector"
	"github.com/zeusync/gametools/internal/observability/log"
	"github.com/zeusync/gametools/pkg/arrays"
	"github.com/zeusync/gametools/pkg/grid"
	"github.com/zeusync/gametools/pkg/scene"
	"github.com/zeusync/gametools/pkg/vector"
)

var (
	errUsage           = errors.New("wrong number of arguments")
	errInvalidArgument = errors.New("invalid argument")
)

type env struct {
	app *injector.App
	cfg config.Config
	out io.Writer
}

type command func(e *env, args []string) error

var commands = map[string]command{
	"distance":  distanceCmd,
	"equal":     equalCmd,
	"manhattan": manhattanCmd,
	"adjacent":  adjacentCmd,
	"inbounds":  inBoundsCmd,
	"scenes":    scenesCmd,
}

func distanceCmd(e *env, args []string) error {
	a, b, err := twoPoints(args)
	if err != nil {
		return err
	}
	d := vector.Distance(a, b)
	e.app.Logger.Debug("distance", log.Float64("result", d))
	_, err = fmt.Fprintln(e.out, strconv.FormatFloat(d, 'g', -1, 64))
	return err
}

func equalCmd(e *env, args []string) error {
	a, b, err := twoPoints(args)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.out, vector.ApproximatelyEqual(a, b))
	return err
}

func manhattanCmd(e *env, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	a, err := parseCell(args[0])
	if err != nil {
		return err
	}
	b, err := parseCell(args[1])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.out, grid.ManhattanDistance(a, b))
	return err
}

func adjacentCmd(e *env, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	src, err := parseCell(args[0])
	if err != nil {
		return err
	}
	for _, c := range grid.AdjacentCoordinates(src) {
		if _, err := fmt.Fprintf(e.out, "%d,%d\n", c.X, c.Y); err != nil {
			return err
		}
	}
	return nil
}

func inBoundsCmd(e *env, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errUsage
	}
	width, height := e.cfg.Grid.Width, e.cfg.Grid.Height
	if len(args) == 2 {
		var err error
		if width, height, err = parseExtents(args[1]); err != nil {
			return err
		}
	}
	g, err := arrays.NewGrid[struct{}](width, height)
	if err != nil {
		return fmt.Errorf("%v: %w", err, errInvalidArgument)
	}

	c, err := parseFloats(args[0], 2)
	if err != nil {
		return err
	}
	inside := arrays.InBoundsFloat(vector.Vector2{X: c[0], Y: c[1]}, g)
	_, err = fmt.Fprintln(e.out, inside)
	return err
}

func scenesCmd(e *env, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	for _, p := range args {
		if _, err := e.app.Scenes.Load(p); err != nil {
			return err
		}
	}
	for i, s := range scene.ActiveScenes(e.app.Scenes) {
		if _, err := fmt.Fprintf(e.out, "%d\t%s\t%s\t%016x\n", i, s.Name(), s.Path(), s.Handle()); err != nil {
			return err
		}
	}
	return nil
}

func twoPoints(args []string) (vector.Point3, vector.Point3, error) {
	if len(args) != 2 {
		return vector.Point3{}, vector.Point3{}, errUsage
	}
	a, err := parseFloats(args[0], 3)
	if err != nil {
		return vector.Point3{}, vector.Point3{}, err
	}
	b, err := parseFloats(args[1], 3)
	if err != nil {
		return vector.Point3{}, vector.Point3{}, err
	}
	return vector.P3(a[0], a[1], a[2]), vector.P3(b[0], b[1], b[2]), nil
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("%q: want %d comma-separated numbers: %w", s, n, errInvalidArgument)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %v: %w", s, err, errInvalidArgument)
		}
		out[i] = v
	}
	return out, nil
}

func parseCell(s string) (vector.Vector2Int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return vector.Vector2Int{}, fmt.Errorf("%q: want x,y: %w", s, errInvalidArgument)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
	y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err := errors.Join(errX, errY); err != nil {
		return vector.Vector2Int{}, fmt.Errorf("%q: %v: %w", s, err, errInvalidArgument)
	}
	return vector.Vector2Int{X: x, Y: y}, nil
}

func parseExtents(s string) (int, int, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%q: want WxH: %w", s, errInvalidArgument)
	}
	width, errW := strconv.Atoi(w)
	height, errH := strconv.Atoi(h)
	if err := errors.Join(errW, errH); err != nil || width < 0 || height < 0 {
		return 0, 0, fmt.Errorf("%q: want non-negative WxH: %w", s, errInvalidArgument)
	}
	return width, height, nil
}
