package css

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/h2non/filetype"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	textunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

//go:embed default.css
var DefaultCSS []byte

// Default returns a fresh copy of the built-in chart stylesheet. Callers are
// free to merge into it.
func Default() *Stylesheet {
	return MustParse(string(DefaultCSS))
}

// Loader reads stylesheets from disk.
type Loader struct {
	log    *zap.Logger
	parser *Parser
}

// NewLoader creates loader, parser options are passed to the underlying parser.
func NewLoader(log *zap.Logger, opts ...ParserOption) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{
		log:    log.Named("css-loader"),
		parser: NewParser(log, opts...),
	}
}

// Load reads and parses a single file. In strict mode the parsed stylesheet is
// returned together with the parse errors.
func (l *Loader) Load(path string) (*Stylesheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read stylesheet: %w", err)
	}
	if data, err = decodeText(data); err != nil {
		return nil, fmt.Errorf("unable to decode stylesheet '%s': %w", path, err)
	}
	sheet, err := l.parser.Parse(data, path)
	for _, w := range sheet.Warnings() {
		l.log.Warn("Stylesheet problem", zap.String("file", path), zap.String("details", w))
	}
	if err != nil {
		return sheet, fmt.Errorf("unable to parse stylesheet '%s': %w", path, err)
	}
	l.log.Debug("Loaded stylesheet", zap.String("file", path), zap.Int("rules", sheet.Len()))
	return sheet, nil
}

// decodeText refuses binary files and converts text to UTF-8 without BOM.
// UTF-16 is recognized by its BOM only. Parse error offsets refer to the
// decoded text.
func decodeText(data []byte) ([]byte, error) {
	if kind, _ := filetype.Match(data); kind != filetype.Unknown {
		return nil, fmt.Errorf("%w: content looks like %s", ErrNotStylesheet, kind.MIME.Value)
	}
	out, _, err := transform.Bytes(textunicode.BOMOverride(textunicode.UTF8.NewDecoder()), data)
	return out, err
}

// LoadAll loads files in order and merges them, so later files override
// earlier ones. Every file is attempted; all failures are reported together.
func (l *Loader) LoadAll(paths ...string) (*Stylesheet, error) {
	out := New()
	var errs error
	for _, path := range paths {
		sheet, err := l.Load(path)
		if err != nil {
			errs = multierr.Append(errs, err)
		}
		out.Merge(sheet)
	}
	return out, errs
}

// LoadStylesheet reads and parses a single stylesheet file.
func LoadStylesheet(path string, opts ...ParserOption) (*Stylesheet, error) {
	return NewLoader(nil, opts...).Load(path)
}

// LoadStylesheets loads several files in lossy mode and merges them in order.
func LoadStylesheets(log *zap.Logger, paths ...string) (*Stylesheet, error) {
	return NewLoader(log).LoadAll(paths...)
}
