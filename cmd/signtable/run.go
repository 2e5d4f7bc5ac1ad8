package main

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/signtable/config"
	"github.com/katalvlaran/signtable/logger"
	"github.com/katalvlaran/signtable/randmatrix"
	"github.com/katalvlaran/signtable/render"
	"github.com/katalvlaran/signtable/rowstat"
	"github.com/katalvlaran/signtable/table"
)

// resolve applies positional arguments and validates the result.
func resolve(cfg *config.Config, args []string) error {
	if err := cfg.ApplyArgs(args); err != nil {
		return errors.Wrap(err, "arguments")
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "configuration")
	}

	return nil
}

// runTable builds the whole table before writing anything, so a failure
// leaves out untouched.
func runTable(out io.Writer, cfg *config.Config, args []string) error {
	if err := resolve(cfg, args); err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log := logger.L.WithFields(logrus.Fields{
		"size":    cfg.Size,
		"min":     cfg.Min,
		"max":     cfg.Max,
		"max_run": cfg.MaxRunLength,
		"seed":    seed,
	})
	log.Debug("generating matrix")

	m, err := randmatrix.Generate(cfg.Size, cfg.Min, cfg.Max, randmatrix.WithSeed(seed))
	if err != nil {
		return errors.Wrap(err, "generate matrix")
	}

	an, err := rowstat.NewAnalyzer(
		rowstat.WithMaxRun(cfg.MaxRunLength),
		rowstat.WithLowestPositive(cfg.LowestPositive()),
	)
	if err != nil {
		return errors.Wrap(err, "row analyzer")
	}

	tbl, err := table.Build(m, an, table.WithLabels(cfg.MinPositiveLabel, cfg.ReplacementsLabel))
	if err != nil {
		return errors.Wrap(err, "build table")
	}
	log.WithFields(logrus.Fields{
		"minimum":  tbl.Min,
		"min_rows": len(tbl.MinRows),
	}).Debug("table built")

	mode, err := render.ParseColorMode(cfg.Color)
	if err != nil {
		return errors.Wrap(err, "color")
	}

	return errors.Wrap(render.New(out, render.WithColorMode(mode)).Render(tbl.Lines), "render")
}

// runConfig prints the effective configuration.
func runConfig(out io.Writer, cfg *config.Config, args []string) error {
	if err := resolve(cfg, args); err != nil {
		return err
	}
	s, err := cfg.YAML()
	if err != nil {
		return errors.Wrap(err, "config")
	}
	_, err = fmt.Fprint(out, s)

	return errors.Wrap(err, "write config")
}
