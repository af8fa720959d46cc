package inspect

import (
	"context"
	"errors"
	"fmt"
	"io"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"chartstyle/css"
	"chartstyle/state"
)

// Check parses stylesheet files in strict mode and reports every malformed
// fragment. Files are not merged and configured stylesheets are not involved.
func Check(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("check")

	files := cmd.Args().Slice()
	if len(files) == 0 {
		return errors.New("no stylesheet has been specified")
	}

	bad := CheckFiles(log, output(cmd), files...)
	if bad > 0 {
		return fmt.Errorf("%d of %d stylesheet(s) have problems", bad, len(files))
	}
	log.Info("All stylesheets are well formed", zap.Int("files", len(files)))
	return nil
}

// CheckFiles writes one line per problem to w and returns number of files
// which could not be read or have malformed fragments.
func CheckFiles(log *zap.Logger, w io.Writer, files ...string) int {
	loader := css.NewLoader(log, css.WithStrict(true))

	var bad int
	for _, file := range files {
		sheet, err := loader.Load(file)
		if err == nil {
			fmt.Fprintf(w, "%s: ok, %d rule(s)\n", file, sheet.Len())
			continue
		}
		bad++

		var perr *css.ParseError
		if !errors.As(err, &perr) {
			fmt.Fprintf(w, "%s: %v\n", file, err)
			continue
		}
		for _, e := range multierr.Errors(errors.Unwrap(err)) {
			fmt.Fprintln(w, e)
		}
	}
	return bad
}
