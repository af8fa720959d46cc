package swatch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"chartstyle/config"
	"chartstyle/css"
	"chartstyle/state"
)

// Run is the "swatch" command action: every argument is an element path to
// render as a cell.
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("swatch")

	args := cmd.Args().Slice()
	if len(args) == 0 {
		return errors.New("no element path has been specified")
	}

	layout, err := NewLayout(&env.Cfg.Swatch)
	if err != nil {
		return err
	}

	sheet, err := env.LoadStyles(cmd.StringSlice("style")...)
	if err != nil {
		return err
	}

	cells := make([]Cell, 0, len(args))
	for _, text := range args {
		path := css.ParseElementPath(text)
		if len(path) == 0 {
			log.Warn("Empty element path, skipping")
			continue
		}
		cell, err := NewCell(sheet.Query(path), layout.Background)
		if err != nil {
			return fmt.Errorf("unable to style '%s': %w", text, err)
		}
		cells = append(cells, cell)
	}
	if len(cells) == 0 {
		return errors.New("nothing to draw")
	}

	fname := cmd.String("output")
	if len(fname) == 0 {
		fname = config.CleanFileName(args[0]) + ".png"
	}

	if err := Save(fname, cells, layout); err != nil {
		return err
	}
	env.Rpt.Store("swatch/"+filepath.Base(fname), fname)

	w, h := layout.Size(len(cells))
	log.Info("Swatch created", zap.String("file", fname), zap.Int("cells", len(cells)), zap.Int("width", w), zap.Int("height", h))
	return nil
}
