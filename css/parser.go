package css

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Parser parses simplified CSS text into a Stylesheet.
//
// Only "selector { key: value; ... }" declarations and /* comments */ are
// understood. In lossy mode (the default) malformed fragments are dropped and
// reported through Stylesheet.Warnings; in strict mode each of them is also
// returned as a *ParseError.
type Parser struct {
	log    *zap.Logger
	strict bool
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithStrict makes the parser report malformed fragments as errors.
func WithStrict(strict bool) ParserOption {
	return func(p *Parser) {
		p.strict = strict
	}
}

// NewParser creates a new stylesheet parser.
func NewParser(log *zap.Logger, opts ...ParserOption) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Parser{log: log.Named("css-parser")}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses stylesheet text. The optional source parameter identifies
// what's being parsed (for logging and error messages). Well formed rules are
// always returned, even when an error is reported in strict mode.
func (p *Parser) Parse(data []byte, source ...string) (*Stylesheet, error) {
	return p.ParseString(string(data), source...)
}

// ParseString is Parse for string input.
func (p *Parser) ParseString(text string, source ...string) (*Stylesheet, error) {
	var src string
	if len(source) > 0 {
		src = source[0]
	}
	if src != "" {
		p.log.Debug("Parsing stylesheet", zap.String("source", src), zap.Int("bytes", len(text)))
	}

	r := &run{parser: p, source: src, sheet: New()}
	r.scan(text)

	r.sheet.rules = r.rules
	r.sheet.sortRules()

	p.log.Debug("Parsed stylesheet",
		zap.String("source", src),
		zap.Int("rules", len(r.rules)),
		zap.Int("warnings", len(r.sheet.warnings)))

	if p.strict {
		return r.sheet, r.errs
	}
	return r.sheet, nil
}

type parseState int

const (
	stateOutside parseState = iota
	stateDeclaration
	stateComment
)

// run holds state of a single Parse call.
type run struct {
	parser *Parser
	source string
	sheet  *Stylesheet
	rules  []Rule
	errs   error

	state parseState

	buf      strings.Builder
	bufStart int

	// current declaration
	selector      string
	selectorStart int
	props         map[string]string
	key           string
	haveKey       bool

	// > 0 while skipping the body of an at-rule
	skipDepth int
}

func (r *run) scan(text string) {
	for i := 0; i < len(text); i++ {
		ch := text[i]

		if r.state == stateComment {
			if ch == '*' && i+1 < len(text) && text[i+1] == '/' {
				r.state = stateOutside
				i++
				// comment separates tokens around it
				if r.buf.Len() > 0 {
					r.buf.WriteByte(' ')
				}
			}
			continue
		}

		if r.state == stateOutside {
			if ch == '/' && i+1 < len(text) && text[i+1] == '*' {
				r.state = stateComment
				i++
				continue
			}
			if r.skipDepth > 0 {
				r.skipAtRule(ch)
				continue
			}
			r.outside(i, ch)
			continue
		}

		r.declaration(i, ch)
	}
	r.finish(len(text))
}

func (r *run) append(pos int, ch byte) {
	if r.buf.Len() == 0 {
		r.bufStart = pos
	}
	r.buf.WriteByte(ch)
}

func (r *run) take() string {
	s := strings.TrimSpace(r.buf.String())
	r.buf.Reset()
	return s
}

func (r *run) outside(pos int, ch byte) {
	switch ch {
	case '{':
		start := r.bufStart
		text := r.take()
		if strings.HasPrefix(text, "@") {
			r.malformed(start, text, "at-rules are not supported", nil)
			r.skipDepth = 1
			return
		}
		r.selector, r.selectorStart = text, start
		r.props = make(map[string]string)
		r.key, r.haveKey = "", false
		r.state = stateDeclaration
	case ';':
		if text := strings.TrimSpace(r.buf.String()); strings.HasPrefix(text, "@") {
			start := r.bufStart
			r.buf.Reset()
			r.malformed(start, text, "at-rules are not supported", nil)
			return
		}
		r.append(pos, ch)
	case '}':
		text := r.take()
		r.malformed(pos, text, "unexpected '}'", nil)
	default:
		r.append(pos, ch)
	}
}

func (r *run) skipAtRule(ch byte) {
	switch ch {
	case '{':
		r.skipDepth++
	case '}':
		r.skipDepth--
	}
}

func (r *run) declaration(pos int, ch byte) {
	switch ch {
	case ':':
		if r.haveKey {
			// colons after the first one belong to the value
			r.append(pos, ch)
			return
		}
		r.key, r.haveKey = r.take(), true
	case ';':
		r.commitProperty()
	case '}':
		r.commitProperty()
		r.finishRule()
		r.state = stateOutside
	default:
		r.append(pos, ch)
	}
}

func (r *run) commitProperty() {
	start := r.bufStart
	value := r.take()
	switch {
	case r.haveKey && r.key == "":
		r.malformed(start, value, "property without name", nil)
	case r.haveKey:
		r.props[r.key] = value
	case value != "":
		r.malformed(start, value, "property without ':'", nil)
	}
	r.key, r.haveKey = "", false
}

func (r *run) finishRule() {
	// grouped selectors produce one rule each
	for sel := range strings.SplitSeq(r.selector, ",") {
		parsed, err := ParseSelector(sel)
		if err != nil {
			r.malformed(r.selectorStart, r.selector, "invalid selector", ErrEmptySelector)
			continue
		}
		r.rules = append(r.rules, NewRuleFor(parsed, r.props))
	}
	r.selector, r.props = "", nil
}

func (r *run) finish(end int) {
	switch {
	case r.state == stateComment:
		r.malformed(end, "", "unterminated comment", nil)
	case r.state == stateDeclaration:
		r.malformed(r.selectorStart, r.selector, "unterminated declaration", nil)
	case r.skipDepth > 0:
		r.malformed(end, "", "unterminated at-rule block", nil)
	default:
		start := r.bufStart
		if text := r.take(); text != "" {
			r.malformed(start, text, "trailing text without declaration", nil)
		}
	}
}

// malformed records a dropped fragment.
func (r *run) malformed(pos int, text, reason string, cause error) {
	perr := &ParseError{Source: r.source, Offset: pos, Text: text, Reason: reason, Err: cause}
	r.sheet.warnings = append(r.sheet.warnings, perr.Error())
	r.parser.log.Debug("Dropping malformed fragment",
		zap.String("source", r.source),
		zap.Int("offset", pos),
		zap.String("text", text),
		zap.String("reason", reason))
	if r.parser.strict {
		r.errs = multierr.Append(r.errs, perr)
	}
}

// MustParse parses text in strict mode and panics on any malformed fragment.
// Intended for stylesheets known at compile time.
func MustParse(text string) *Stylesheet {
	sheet, err := NewParser(nil, WithStrict(true)).ParseString(text)
	if err != nil {
		panic(fmt.Sprintf("unable to parse stylesheet: %v", err))
	}
	return sheet
}
