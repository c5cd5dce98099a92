package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"plateau/internal/config"
	"plateau/internal/interpreter"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		logrus.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("plateau", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "plateau.yaml", "config file (optional)")
	format := fs.String("format", "", "output format: text or yaml")
	workers := fs.Int("workers", 0, "robots simulated in parallel")
	render := fs.Bool("render", false, "draw the grid with final positions to stderr")
	logLevel := fs.String("log-level", "", "debug, info, warn or error")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: plateau [flags] [input file]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = *format
		case "workers":
			cfg.Workers = *workers
		case "render":
			cfg.Render = *render
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if fs.NArg() > 0 {
		cfg.Input = fs.Arg(0)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := newLogger(stderr, cfg.LogLevel)
	log.WithFields(logrus.Fields{"input": cfg.Input, "workers": cfg.Workers}).Debug("plateau starting")

	data, err := os.ReadFile(cfg.Input)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("input file %q not found, create it with the mission format", cfg.Input)
	}
	if err != nil {
		return err
	}

	mission, err := interpreter.Parse(string(data))
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"grid":   mission.Grid.String(),
		"robots": len(mission.Deployments),
	}).Debug("mission parsed")

	runner := &interpreter.Runner{Workers: cfg.Workers, Log: log}
	states, err := runner.Run(mission.Grid, mission.Deployments)
	if err != nil {
		return err
	}

	if cfg.Render {
		if err := mission.Grid.Display(stderr, states); err != nil {
			return err
		}
	}

	out, err := interpreter.Format(cfg.Format, states)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, out)
	return err
}

func newLogger(w io.Writer, level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}
