package swatch

import (
	"bytes"
	"math"
	"strconv"

	"github.com/beevik/etree"
	"github.com/gosimple/slug"

	"chartstyle/css"
)

const svgNS = "http://www.w3.org/2000/svg"

// BuildSVG lays cells out in a grid. Every cell is filled with its background,
// gets a centered sample of its ink color, its border and a caption.
func BuildSVG(cells []Cell, l Layout) *etree.Document {
	w, h := l.Size(len(cells))

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	svg := doc.CreateElement("svg")
	svg.CreateAttr("xmlns", svgNS)
	svg.CreateAttr("width", strconv.Itoa(w))
	svg.CreateAttr("height", strconv.Itoa(h))
	svg.CreateAttr("viewBox", "0 0 "+strconv.Itoa(w)+" "+strconv.Itoa(h))

	bg := svg.CreateElement("rect")
	bg.CreateAttr("width", strconv.Itoa(w))
	bg.CreateAttr("height", strconv.Itoa(h))
	setPaint(bg, "fill", l.Background)

	for i, c := range cells {
		x, y := l.Origin(i)

		g := svg.CreateElement("g")
		g.CreateAttr("id", cellID(i, c.Path))

		outer := g.CreateElement("rect")
		setBox(outer, x, y, l.CellSize, l.CellSize)
		setPaint(outer, "fill", c.Fill)
		if c.BorderWidth > 0 && c.Border.A > 0 {
			setPaint(outer, "stroke", c.Border)
			outer.CreateAttr("stroke-width", formatFloat(c.BorderWidth))
		}

		inner := g.CreateElement("rect")
		setBox(inner, x+l.CellSize/4, y+l.CellSize/4, l.CellSize/2, l.CellSize/2)
		setPaint(inner, "fill", c.Ink)

		caption := g.CreateElement("text")
		caption.CreateAttr("x", strconv.Itoa(x+l.CellSize/2))
		caption.CreateAttr("y", strconv.Itoa(y+l.CellSize+l.LabelHeight-4))
		caption.CreateAttr("text-anchor", "middle")
		caption.CreateAttr("font-family", c.Font.Family)
		caption.CreateAttr("font-weight", c.Font.Weight.String())
		if c.Font.Size > 0 {
			caption.CreateAttr("font-size", formatFloat(c.Font.Size))
		}
		caption.SetText(c.Path)
	}

	doc.Indent(2)
	return doc
}

// SVG returns serialized swatch document.
func SVG(cells []Cell, l Layout) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := BuildSVG(cells, l).WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func cellID(i int, path string) string {
	return "cell-" + strconv.Itoa(i) + "-" + slug.Make(path)
}

func setBox(el *etree.Element, x, y, w, h int) {
	el.CreateAttr("x", strconv.Itoa(x))
	el.CreateAttr("y", strconv.Itoa(y))
	el.CreateAttr("width", strconv.Itoa(w))
	el.CreateAttr("height", strconv.Itoa(h))
}

// setPaint splits color into #rrggbb and opacity, translucent colors are not
// understood by every renderer otherwise.
func setPaint(el *etree.Element, attr string, c css.Color) {
	hex := c.Hex()
	el.CreateAttr(attr, hex[:7])
	if c.A < 1 {
		el.CreateAttr(attr+"-opacity", formatFloat(math.Round(c.A*1000)/1000))
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
