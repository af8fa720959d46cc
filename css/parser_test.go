package css_test

import (
	"errors"
	"maps"
	"strings"
	"testing"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"chartstyle/css"
)

func parseLossy(t *testing.T, text string) *css.Stylesheet {
	t.Helper()
	sheet, err := css.NewParser(zap.NewNop()).ParseString(text)
	if err != nil {
		t.Fatalf("lossy parse returned error: %v", err)
	}
	return sheet
}

func TestParser_SingleRule(t *testing.T) {
	sheet := parseLossy(t, "a.foo { color: #ff0000; width: 5; }")

	if sheet.Len() != 1 {
		t.Fatalf("expected 1 rule, got %d", sheet.Len())
	}
	rule := sheet.Rules()[0]
	if got := rule.Selector().String(); got != "a.foo" {
		t.Errorf("selector = %q", got)
	}

	want := map[string]string{"color": "#ff0000", "width": "5"}
	if got := rule.Properties(); !maps.Equal(got, want) {
		t.Errorf("properties = %v, want %v", got, want)
	}
	if got := sheet.QueryString("a.foo").Raw(); !maps.Equal(got, want) {
		t.Errorf("resolved = %v, want %v", got, want)
	}
	if len(sheet.Warnings()) != 0 {
		t.Errorf("unexpected warnings: %v", sheet.Warnings())
	}
}

func TestParser_Declarations(t *testing.T) {
	tests := []struct {
		name  string
		input string
		rules int
		key   string
		value string
	}{
		{"last property without semicolon", "a { b: 1; c: 2 }", 1, "c", "2"},
		{"whitespace trimmed", "a {\n\tb  :   some value  ;\n}", 1, "b", "some value"},
		{"extra colons belong to value", "a { bg: url(http://x/y); }", 1, "bg", "url(http://x/y)"},
		{"important kept raw", "a { b: 1 !important; }", 1, "b", "1 !important"},
		{"later duplicate wins", "a { b: 1; b: 2; }", 1, "b", "2"},
		{"empty value", "a { b: ; }", 1, "b", ""},
		{"comment inside declaration is value text", "a { b: 1 /* c */; }", 1, "b", "1 /* c */"},
		{"empty rule", "a { }", 1, "", ""},
		{"no spaces", "a{b:1}", 1, "b", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet := parseLossy(t, tt.input)
			if sheet.Len() != tt.rules {
				t.Fatalf("expected %d rules, got %d", tt.rules, sheet.Len())
			}
			if tt.key == "" {
				if n := len(sheet.Rules()[0].Properties()); n != 0 {
					t.Errorf("expected no properties, got %d", n)
				}
				return
			}
			got, ok := sheet.Rules()[0].Get(tt.key)
			if !ok || got != tt.value {
				t.Errorf("%s = %q (%v), want %q", tt.key, got, ok, tt.value)
			}
			if len(sheet.Warnings()) != 0 {
				t.Errorf("unexpected warnings: %v", sheet.Warnings())
			}
		})
	}
}

func TestParser_Comments(t *testing.T) {
	sheet := parseLossy(t, "/* header */ a { b: 1; } /* between */ c /* in selector */ d { e: 2; } /**/")

	if sheet.Len() != 2 {
		t.Fatalf("expected 2 rules, got %d", sheet.Len())
	}
	if len(sheet.Warnings()) != 0 {
		t.Errorf("unexpected warnings: %v", sheet.Warnings())
	}
	if got := sheet.QueryString("c d").Get("e", ""); got != "2" {
		t.Errorf("c d e = %q", got)
	}
}

func TestParser_CommentSeparatesSelectorTokens(t *testing.T) {
	sheet := parseLossy(t, "grid/* x */label { color: red; }")

	if got := sheet.String(); got != "grid label {\n  color: red;\n}\n" {
		t.Errorf("String() = %q", got)
	}
	if !sheet.QueryString("grid label").Has("color") {
		t.Error("grid label should match")
	}
	if sheet.QueryString("gridlabel").Has("color") {
		t.Error("gridlabel should not match")
	}
}

func TestParser_GroupedSelectors(t *testing.T) {
	sheet := parseLossy(t, "legend label, grid label { color: red; }")

	if sheet.Len() != 2 {
		t.Fatalf("expected 2 rules, got %d", sheet.Len())
	}
	for _, path := range []string{"legend label", "grid label"} {
		if got := sheet.QueryString(path).Get("color", ""); got != "red" {
			t.Errorf("%s color = %q", path, got)
		}
	}
}

func TestParser_SortedBySpecificity(t *testing.T) {
	sheet := parseLossy(t, "#x { c: id; } a b c d { c: types; } * { c: any; }")

	rules := sheet.Rules()
	for i := 1; i < len(rules); i++ {
		if rules[i].Specificity().Less(rules[i-1].Specificity()) {
			t.Fatalf("rules not sorted: %v before %v", rules[i-1].Specificity(), rules[i].Specificity())
		}
	}
	if got := sheet.QueryString("a b c d#x").Get("c", ""); got != "id" {
		t.Errorf("expected id rule to win, got %q", got)
	}
	if got := sheet.QueryString("a b c d").Get("c", ""); got != "types" {
		t.Errorf("expected type rule to win, got %q", got)
	}
}

func TestParser_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		rules    int
		warnings int
		reason   string
	}{
		{"unterminated declaration", "a { b: 1; } c { d", 1, 1, "unterminated declaration"},
		{"unterminated comment", "a { b: 1 } /* open", 1, 1, "unterminated comment"},
		{"trailing text", "a { b: 1 } c", 1, 1, "trailing text"},
		{"stray brace", "} a { b: 1 }", 1, 1, "unexpected '}'"},
		{"empty selector", "{ a: 1 }", 0, 1, "invalid selector"},
		{"empty group member", "a, { b: 1 }", 1, 1, "invalid selector"},
		{"property without colon", "a { b; c: 1 }", 1, 1, "property without ':'"},
		{"property without name", "a { : 1; c: 2 }", 1, 1, "property without name"},
		{"at-rule statement", "@import 'x.css'; a { b: 1 }", 1, 1, "at-rules are not supported"},
		{"at-rule block", "@media print { a { b: 1 } } c { d: 2 }", 1, 1, "at-rules are not supported"},
		{"unterminated at-rule block", "@media print { a { b: 1 }", 0, 2, "unterminated at-rule block"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet := parseLossy(t, tt.input)
			if sheet.Len() != tt.rules {
				t.Errorf("expected %d rules, got %d", tt.rules, sheet.Len())
			}
			warnings := sheet.Warnings()
			if len(warnings) != tt.warnings {
				t.Fatalf("expected %d warnings, got %v", tt.warnings, warnings)
			}
			// the last warning describes how the fragment ended
			if last := warnings[len(warnings)-1]; !strings.Contains(last, tt.reason) {
				t.Errorf("warning %q does not mention %q", last, tt.reason)
			}
		})
	}
}

func TestParser_AtRuleBlockIsSkipped(t *testing.T) {
	sheet := parseLossy(t, "@media print { a { b: 1 } } c { d: 2 }")

	if got := sheet.QueryString("a").Len(); got != 0 {
		t.Errorf("rule from at-rule block leaked: %v", sheet.QueryString("a").Raw())
	}
	if got := sheet.QueryString("c").Get("d", ""); got != "2" {
		t.Errorf("c d = %q", got)
	}
}

func TestParser_Strict(t *testing.T) {
	p := css.NewParser(zap.NewNop(), css.WithStrict(true))

	sheet, err := p.ParseString("} a { : 1; x; } @import 'y'; b { c: 1 }")
	if err == nil {
		t.Fatal("expected error in strict mode")
	}
	if !errors.Is(err, css.ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}
	if got := len(multierr.Errors(err)); got != 4 {
		t.Errorf("expected 4 errors, got %d: %v", got, err)
	}
	for _, e := range multierr.Errors(err) {
		var perr *css.ParseError
		if !errors.As(e, &perr) {
			t.Errorf("expected *ParseError, got %T", e)
		}
	}

	// well formed rules are returned regardless
	if sheet.Len() != 2 {
		t.Errorf("expected 2 rules, got %d", sheet.Len())
	}
	if got := sheet.QueryString("b").Get("c", ""); got != "1" {
		t.Errorf("b c = %q", got)
	}
}

func TestParser_StrictErrorDetails(t *testing.T) {
	p := css.NewParser(zap.NewNop(), css.WithStrict(true))

	_, err := p.ParseString("a { b: 1; } }", "extra.css")
	var perr *css.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if perr.Offset != 12 {
		t.Errorf("Offset = %d, want 12", perr.Offset)
	}
	if perr.Source != "extra.css" {
		t.Errorf("Source = %q", perr.Source)
	}
	if !strings.Contains(err.Error(), "extra.css") {
		t.Errorf("error message lacks source: %v", err)
	}

	_, err = p.ParseString("{ a: 1 }")
	if !errors.Is(err, css.ErrEmptySelector) {
		t.Errorf("expected ErrEmptySelector, got %v", err)
	}
}

func TestParser_StrictClean(t *testing.T) {
	p := css.NewParser(zap.NewNop(), css.WithStrict(true))
	sheet, err := p.Parse([]byte("a { b: 1; }"), "clean.css")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sheet.Len() != 1 {
		t.Errorf("expected 1 rule, got %d", sheet.Len())
	}
}

func TestParser_LogsDroppedFragments(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	p := css.NewParser(zap.New(core))

	if _, err := p.ParseString("a { b: 1 } junk", "test.css"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dropped := logs.FilterMessage("Dropping malformed fragment").All()
	if len(dropped) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(dropped))
	}
	if got := dropped[0].ContextMap()["text"]; got != "junk" {
		t.Errorf("logged text = %v", got)
	}
	if dropped[0].LoggerName != "css-parser" {
		t.Errorf("logger name = %q", dropped[0].LoggerName)
	}
}

func TestMustParse(t *testing.T) {
	sheet := css.MustParse("a { b: 1 }")
	if sheet.Len() != 1 {
		t.Errorf("expected 1 rule, got %d", sheet.Len())
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic on malformed text")
		}
	}()
	css.MustParse("a { b: 1 } junk")
}
