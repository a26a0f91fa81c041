package ui

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"os"
	"septic/src"
	"septic/src/analysis"
	"septic/src/base"
	"septic/src/engine/gbp"
	"septic/src/logic/convert/convpos"
	"septic/src/logx"
	clic "septic/src/ui/cli"
	"septic/src/ui/gui"
	"septic/src/ui/gui/gbase"
	"septic/src/ui/gui/gbase/gconf"
	"septic/src/ui/gui/gboard"

	"github.com/urfave/cli/v3"
)

func GetLogger(file *os.File, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(c.String("level")),
		c.Bool("dev"),
		c.Bool("console"),
	)
	l.InitLogger(file)
	return l
}

func withLogger(c *cli.Command, run func(*logx.Logx) error) error {
	file, err := logx.OpenLogFile()
	if err != nil {
		return fmt.Errorf("error open logfile: %v", err)
	}
	defer file.Close()
	logger := GetLogger(file, c)
	defer logger.Sync()
	return run(logger)
}

func RunGUI(c *cli.Command) error {
	err := withLogger(c, func(logger *logx.Logx) error {
		g, err := gui.NewGUI(gui.Options{Route: c.String("route"), EnginePath: c.String("engine")}, logger)
		if err != nil {
			logger.Errorf("error init GUI: %v", err)
			return fmt.Errorf("error init GUI: %v", err)
		}
		return g.Run()
	})
	if errors.Is(err, gbase.ErrExit) {
		return nil
	}
	return err
}

func RunCLI(c *cli.Command) error {
	return withLogger(c, func(logger *logx.Logx) error {
		cfg, err := gconf.NewGUIConfig()
		if err != nil {
			return err
		}
		path, args := cfg.EnginePath, cfg.EngineArgs
		if p := c.String("engine"); p != "" {
			path, args = p, nil
		}
		if path == "" {
			return errors.New("no engine configured, pass --engine")
		}

		rules := gbp.NewExec(logger, path, args...)
		if err := rules.Init(); err != nil {
			return fmt.Errorf("error start engine: %v", err)
		}
		defer rules.Close()

		gb := src.NewGameBuilder(logger, rules)
		if pos := c.String("pos"); pos != "" {
			err = gb.CreateFromString(pos)
		} else {
			err = gb.CreateNew(!c.Bool("second"))
		}
		if err != nil {
			return err
		}

		depth := cfg.SearchDepth
		if d := c.Int("depth"); d > 0 {
			depth = int(d)
		}
		a := analysis.New(logger, rules, gbp.Factory(logger, path, args...), depth, 0)
		defer a.Close()

		clic.EnableANSI()
		return clic.NewCLI(gb, a, clic.PrintSnapshot).Run()
	})
}

func RunRender(c *cli.Command) error {
	s, err := convpos.ConvertStringToSnapshot(c.String("pos"))
	if err != nil {
		return fmt.Errorf("bad position: %v", err)
	}
	w, h := int(c.Int("width")), int(c.Int("height"))
	if w <= 0 || h <= 0 {
		return fmt.Errorf("bad size %dx%d", w, h)
	}
	var bg color.Color
	if !c.Bool("transparent") {
		bg = gbase.PaletteFromString(c.String("theme")).Bg
	}
	out := c.String("out")
	if err := gboard.Export(s, w, h, bg).SavePNG(out); err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func RunSeptic() error {
	df := &cli.BoolFlag{
		Name:    "dev",
		Aliases: []string{"d"},
		Usage:   "dev encode log",
	}
	lf := &cli.StringFlag{
		Name:    "level",
		Aliases: []string{"l"},
		Usage:   "level log",
		Value:   "info",
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console log",
	}
	ef := &cli.StringFlag{
		Name:    "engine",
		Aliases: []string{"e"},
		Usage:   "path to a GBP engine, overrides the config",
	}
	rf := &cli.StringFlag{
		Name:  "route",
		Usage: "initial page: /, /gob, /crab",
		Value: "/",
	}
	// root flags are inherited by every subcommand
	rootff := []cli.Flag{df, lf, cf, ef, rf}
	cliff := []cli.Flag{
		&cli.StringFlag{
			Name:  "pos",
			Usage: "start from a position string",
		},
		&cli.BoolFlag{
			Name:  "second",
			Usage: "player 1 moves first",
		},
		&cli.IntFlag{
			Name:  "depth",
			Usage: "search depth for eval, overrides the config",
		},
	}
	renderff := []cli.Flag{
		&cli.StringFlag{
			Name:  "pos",
			Usage: "position string",
			Value: convpos.ConvertSnapshotToString(base.NewSnapshot(base.PlayerOne)),
		},
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "output PNG",
			Value:   "board.png",
		},
		&cli.IntFlag{
			Name:  "width",
			Usage: "image width",
			Value: 650,
		},
		&cli.IntFlag{
			Name:  "height",
			Usage: "image height",
			Value: 500,
		},
		&cli.StringFlag{
			Name:  "theme",
			Usage: "light or dark background",
			Value: "light",
		},
		&cli.BoolFlag{
			Name:  "transparent",
			Usage: "no background",
		},
	}

	return (&cli.Command{
		Name:  "septic",
		Usage: "gobblet gobblers board and move analyzer",
		Flags: rootff,
		Commands: []*cli.Command{
			{
				Name:  "gui",
				Usage: "open the window",
				Action: func(ctx context.Context, c *cli.Command) error {
					return RunGUI(c)
				},
			},
			{
				Name:  "cli",
				Usage: "play in the terminal",
				Flags: cliff,
				Action: func(ctx context.Context, c *cli.Command) error {
					return RunCLI(c)
				},
			},
			{
				Name:  "render",
				Usage: "save a position as PNG",
				Flags: renderff,
				Action: func(ctx context.Context, c *cli.Command) error {
					return RunRender(c)
				},
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return RunGUI(c)
		},
	}).Run(context.Background(), os.Args)
}
