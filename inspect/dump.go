package inspect

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"chartstyle/css"
	"chartstyle/state"
)

// Dump writes composed stylesheet in cascade order to DESTINATION or STDOUT.
func Dump(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("dump")

	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	sheet, err := env.LoadStyles(cmd.StringSlice("style")...)
	if err != nil {
		return err
	}

	fname := cmd.Args().Get(0)
	out := output(cmd)
	if len(fname) > 0 {
		f, err := os.Create(fname)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer f.Close()
		out = f
	} else {
		fname = "STDOUT"
	}

	log.Info("Dumping stylesheet", zap.String("file", fname), zap.Int("rules", sheet.Len()))
	if err := WriteStylesheet(out, sheet, cmd.Bool("warnings")); err != nil {
		return fmt.Errorf("unable to write stylesheet: %w", err)
	}
	return nil
}

// WriteStylesheet serializes sheet. Problems found while parsing are written
// first as comments when requested.
func WriteStylesheet(w io.Writer, sheet *css.Stylesheet, warnings bool) error {
	if warnings {
		for _, msg := range sheet.Warnings() {
			if _, err := fmt.Fprintf(w, "/* %s */\n", strings.ReplaceAll(msg, "*/", "* /")); err != nil {
				return err
			}
		}
	}
	_, err := sheet.WriteTo(w)
	return err
}
