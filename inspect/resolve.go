// Package inspect implements commands looking into composed stylesheets.
package inspect

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"sort"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"chartstyle/css"
	"chartstyle/state"
	"chartstyle/utils/debug"
)

// output returns where command results go, normally STDOUT.
func output(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func sortedKeys(m map[string]string) []string {
	keys := slices.Collect(maps.Keys(m))
	sort.Sort(natural.StringSlice(keys))
	return keys
}

// Resolve prints resolved properties for every element path on the command line.
func Resolve(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("resolve")

	if cmd.Args().Len() == 0 {
		return errors.New("no element path has been specified")
	}

	sheet, err := env.LoadStyles(cmd.StringSlice("style")...)
	if err != nil {
		return err
	}

	out := output(cmd)
	for i, text := range cmd.Args().Slice() {
		path := css.ParseElementPath(text)
		if len(path) == 0 {
			log.Warn("Empty element path, skipping", zap.Int("arg", i))
			continue
		}
		if i > 0 {
			fmt.Fprintln(out)
		}

		if cmd.Bool("tree") {
			err = WriteTree(out, sheet, path, cmd.StringSlice("sub")...)
		} else {
			props := sheet.Query(path)
			for _, name := range cmd.StringSlice("sub") {
				props = props.Sub(name)
			}
			err = WriteProperties(out, props, cmd.Bool("font"))
		}
		if err != nil {
			return fmt.Errorf("unable to output properties for '%s': %w", text, err)
		}
		log.Debug("Resolved", zap.String("path", text), zap.Strings("sub", cmd.StringSlice("sub")))
	}
	return nil
}

// WriteProperties writes path followed by its resolved properties in natural
// key order. With font set, the assembled font description is added.
func WriteProperties(w io.Writer, props *css.Properties, font bool) error {
	values := props.Raw()

	tw := debug.NewTreeWriter()
	tw.Line(0, "%s", props.Path())
	tw.Pairs(1, sortedKeys(values), func(k string) string { return values[k] })

	if font {
		f, err := props.Font()
		if err != nil {
			return err
		}
		tw.Line(1, "=> font %q %s %s %gpx", f.Family, f.Weight, f.Slant, f.Size)
	}

	_, err := io.WriteString(w, tw.String())
	return err
}

// WriteTree writes every level of path with the properties it introduces or
// changes compared to its parent. Sub elements, if any, are appended to path.
func WriteTree(w io.Writer, sheet *css.Stylesheet, path css.ElementPath, sub ...string) error {
	for _, name := range sub {
		path = path.Child(name)
	}

	tw := debug.NewTreeWriter()
	parent := map[string]string{}
	for depth := range path {
		current := sheet.Resolve(path[:depth+1])

		var changed []string
		for _, k := range sortedKeys(current) {
			if old, ok := parent[k]; !ok || old != current[k] {
				changed = append(changed, k)
			}
		}

		tw.Line(depth, "%s", path[depth])
		tw.Pairs(depth+1, changed, func(k string) string { return current[k] })
		parent = current
	}

	_, err := io.WriteString(w, tw.String())
	return err
}
