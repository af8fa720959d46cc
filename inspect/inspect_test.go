package inspect

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"chartstyle/config"
	"chartstyle/css"
	"chartstyle/state"
)

// setupTestEnv creates a test environment with proper context and logger
func setupTestEnv(t *testing.T) (context.Context, *state.LocalEnv) {
	t.Helper()
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	env.Cfg = &config.Config{Version: 1, Styles: config.StylesConfig{UseDefault: true}}
	return ctx, env
}

func writeStyle(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func runCommand(t *testing.T, ctx context.Context, sub *cli.Command, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := &cli.Command{Name: "test", Writer: &buf, Commands: []*cli.Command{sub}}
	err := root.Run(ctx, append([]string{"test", sub.Name}, args...))
	return buf.String(), err
}

func resolveCommand() *cli.Command {
	return &cli.Command{
		Name:   "resolve",
		Action: Resolve,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "style"},
			&cli.StringSliceFlag{Name: "sub"},
			&cli.BoolFlag{Name: "tree"},
			&cli.BoolFlag{Name: "font"},
		},
	}
}

func TestWriteProperties(t *testing.T) {
	sheet := css.MustParse("a { x: 1; long-name: 2 }")

	var buf bytes.Buffer
	if err := WriteProperties(&buf, sheet.QueryString("a"), false); err != nil {
		t.Fatalf("WriteProperties() error = %v", err)
	}
	want := "a\n  long-name: 2\n  x:         1\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteProperties():\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteProperties_NaturalOrder(t *testing.T) {
	sheet := css.MustParse("a { p10: x; p2: x; p1: x }")

	var buf bytes.Buffer
	if err := WriteProperties(&buf, sheet.QueryString("a"), false); err != nil {
		t.Fatalf("WriteProperties() error = %v", err)
	}
	got := buf.String()
	if strings.Index(got, "p2:") > strings.Index(got, "p10:") {
		t.Errorf("keys not in natural order:\n%s", got)
	}
}

func TestWriteProperties_Font(t *testing.T) {
	sheet := css.MustParse("a { font: bold 12px Mono }")

	var buf bytes.Buffer
	if err := WriteProperties(&buf, sheet.QueryString("a"), true); err != nil {
		t.Fatalf("WriteProperties() error = %v", err)
	}
	if !strings.Contains(buf.String(), `=> font "Mono" bold normal 12px`) {
		t.Errorf("font line missing:\n%s", buf.String())
	}

	sheet = css.MustParse("a { font-weight: heavy }")
	if err := WriteProperties(&buf, sheet.QueryString("a"), true); err == nil {
		t.Error("expected error for bad font weight")
	}
}

func TestWriteTree(t *testing.T) {
	sheet := css.MustParse("a { x: 1; y: 2 } a b { y: 3 } b { z: 4 }")
	want := "a\n  x: 1\n  y: 2\n  b\n    y: 3\n    z: 4\n"

	var buf bytes.Buffer
	if err := WriteTree(&buf, sheet, css.ParseElementPath("a b")); err != nil {
		t.Fatalf("WriteTree() error = %v", err)
	}
	if got := buf.String(); got != want {
		t.Errorf("WriteTree():\ngot:\n%s\nwant:\n%s", got, want)
	}

	buf.Reset()
	if err := WriteTree(&buf, sheet, css.ParseElementPath("a"), "b"); err != nil {
		t.Fatalf("WriteTree() error = %v", err)
	}
	if got := buf.String(); got != want {
		t.Errorf("WriteTree() with sub:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestResolve(t *testing.T) {
	ctx, _ := setupTestEnv(t)

	out, err := runCommand(t, ctx, resolveCommand(), "wavegraph grid#x.major label", "legend key")
	if err != nil {
		t.Fatalf("resolve error = %v", err)
	}
	for _, want := range []string{"wavegraph grid#x.major label\n", "  color:", "#999", "legend key\n", "#555"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestResolve_SubAndExtraStyle(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	style := writeStyle(t, t.TempDir(), "extra.css", "legend label { color: #123; }")

	out, err := runCommand(t, ctx, resolveCommand(), "--style", style, "--sub", "label", "--font", "legend")
	if err != nil {
		t.Fatalf("resolve error = %v", err)
	}
	if !strings.HasPrefix(out, "legend label\n") {
		t.Errorf("sub element not resolved:\n%s", out)
	}
	if !strings.Contains(out, "#123") {
		t.Errorf("extra stylesheet not applied:\n%s", out)
	}
	if !strings.Contains(out, `=> font "Sans" normal normal 10px`) {
		t.Errorf("font line missing:\n%s", out)
	}
}

func TestResolve_Tree(t *testing.T) {
	ctx, _ := setupTestEnv(t)

	out, err := runCommand(t, ctx, resolveCommand(), "--tree", "wavegraph curve label")
	if err != nil {
		t.Fatalf("resolve error = %v", err)
	}
	for _, want := range []string{"wavegraph\n", "  curve\n", "    label\n", "font-weight: bold"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestResolve_NoArgs(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	if _, err := runCommand(t, ctx, resolveCommand()); err == nil {
		t.Error("expected error without element path")
	}
}

func TestDump(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	dir := t.TempDir()
	dest := filepath.Join(dir, "out.css")

	cmd := &cli.Command{
		Name:   "dump",
		Action: Dump,
		Flags:  []cli.Flag{&cli.StringSliceFlag{Name: "style"}, &cli.BoolFlag{Name: "warnings"}},
	}
	if _, err := runCommand(t, ctx, cmd, dest); err != nil {
		t.Fatalf("dump error = %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("unable to read dump: %v", err)
	}
	reparsed, err := css.NewParser(nil, css.WithStrict(true)).Parse(data)
	if err != nil {
		t.Fatalf("dump does not parse back: %v", err)
	}
	if reparsed.Len() != css.Default().Len() {
		t.Errorf("Len() = %d, want %d", reparsed.Len(), css.Default().Len())
	}
}

func TestWriteStylesheet_Warnings(t *testing.T) {
	sheet, _ := css.NewParser(nil).ParseString("a { b: 1 } junk")

	var buf bytes.Buffer
	if err := WriteStylesheet(&buf, sheet, true); err != nil {
		t.Fatalf("WriteStylesheet() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "/* ") || !strings.Contains(buf.String(), "junk") {
		t.Errorf("warnings not written:\n%s", buf.String())
	}

	// warnings are comments, so the output is still a valid stylesheet
	if _, err := css.NewParser(nil, css.WithStrict(true)).ParseString(buf.String()); err != nil {
		t.Errorf("output does not parse: %v", err)
	}
}

func TestCheckFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeStyle(t, dir, "good.css", "a { b: 1 }")
	bad := writeStyle(t, dir, "bad.css", "a { b: 1 } junk }")
	missing := filepath.Join(dir, "missing.css")

	var buf bytes.Buffer
	n := CheckFiles(zap.NewNop(), &buf, good, bad, missing)
	if n != 2 {
		t.Errorf("CheckFiles() = %d, want 2", n)
	}

	out := buf.String()
	if !strings.Contains(out, good+": ok, 1 rule(s)") {
		t.Errorf("good file not reported:\n%s", out)
	}
	if !strings.Contains(out, bad+": offset") || !strings.Contains(out, "junk") {
		t.Errorf("bad file problem not reported:\n%s", out)
	}
	if !strings.Contains(out, missing) {
		t.Errorf("missing file not reported:\n%s", out)
	}
}

func TestCheck(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	dir := t.TempDir()
	good := writeStyle(t, dir, "good.css", "a { b: 1 }")
	bad := writeStyle(t, dir, "bad.css", "a { b }")

	cmd := &cli.Command{Name: "check", Action: Check}
	if _, err := runCommand(t, ctx, cmd, good); err != nil {
		t.Errorf("check of good file error = %v", err)
	}
	if _, err := runCommand(t, ctx, &cli.Command{Name: "check", Action: Check}, good, bad); err == nil {
		t.Error("expected error for bad file")
	}
}
