// Package swatch renders resolved element styles as a grid of colored cells,
// to see at a glance what a composed stylesheet does to chart elements.
package swatch

import (
	"fmt"

	"chartstyle/config"
	"chartstyle/css"
)

var (
	black       = css.Color{A: 1}
	transparent = css.Color{}
)

// Cell is the drawable summary of a single element path.
type Cell struct {
	Path        string
	Fill        css.Color // background-color, swatch background when absent
	Ink         css.Color // color
	Border      css.Color // border-color
	BorderWidth float64   // border-width in pixels
	Font        css.Font
}

// NewCell extracts drawable properties, background is used when the element
// does not define its own.
func NewCell(props *css.Properties, background css.Color) (Cell, error) {
	c := Cell{Path: props.Path().String()}

	var err error
	if c.Fill, err = props.ColorOr("background-color", background); err != nil {
		return c, err
	}
	if c.Ink, err = props.ColorOr("color", black); err != nil {
		return c, err
	}
	if c.Border, err = props.ColorOr("border-color", transparent); err != nil {
		return c, err
	}
	if c.BorderWidth, err = props.Length("border-width", 0); err != nil {
		return c, err
	}
	if c.Font, err = props.Font(); err != nil {
		return c, err
	}
	return c, nil
}

// Layout describes swatch geometry in pixels.
type Layout struct {
	CellSize    int
	Columns     int
	Padding     int
	LabelHeight int
	Background  css.Color
}

// NewLayout builds layout from configuration.
func NewLayout(conf *config.SwatchConfig) (Layout, error) {
	bg, err := css.ParseColor(conf.Background)
	if err != nil {
		return Layout{}, fmt.Errorf("bad swatch background: %w", err)
	}
	return Layout{
		CellSize:    conf.CellSize,
		Columns:     conf.Columns,
		Padding:     max(conf.CellSize/8, 4),
		LabelHeight: 16,
		Background:  bg,
	}, nil
}

// Size returns dimensions of the whole swatch for n cells.
func (l Layout) Size(n int) (w, h int) {
	cols := max(min(n, l.Columns), 1)
	rows := max((n+l.Columns-1)/l.Columns, 1)
	w = l.Padding + cols*(l.CellSize+l.Padding)
	h = l.Padding + rows*(l.CellSize+l.LabelHeight+l.Padding)
	return w, h
}

// Origin returns top left corner of the i-th cell.
func (l Layout) Origin(i int) (x, y int) {
	col, row := i%l.Columns, i/l.Columns
	x = l.Padding + col*(l.CellSize+l.Padding)
	y = l.Padding + row*(l.CellSize+l.LabelHeight+l.Padding)
	return x, y
}
