// Package pdfdoc models a printable document as a typed node tree, rendered
// to PDF separately. Keeping layout data apart from gofpdf calls lets the
// report builders be tested without touching font files.
package pdfdoc

import (
	"fmt"
	"strconv"
)

// Align is horizontal text alignment within a cell or line.
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Style is a reusable text style. Zero values fall back to the renderer's
// defaults.
type Style struct {
	Size   float64
	Bold   bool
	R      int
	G      int
	B      int
	HasRGB bool
}

func (s Style) WithColor(r, g, b int) Style {
	s.R, s.G, s.B = r, g, b
	s.HasRGB = true
	return s
}

// Node is one element of the document tree.
type Node interface {
	isNode()
}

// Text is a full-width line of text.
type Text struct {
	Value string
	Style Style
	Align Align
}

// Row lays cells out side by side. Widths are fractions of the printable
// width and must sum to at most 1; missing widths share the remainder.
type Row struct {
	Cells []Cell
}

type Cell struct {
	Value string
	Width float64
	Style Style
	Align Align
}

// Table is a header row plus body rows with shared column widths.
type Table struct {
	Headers   []string
	Widths    []float64
	Rows      [][]string
	HeaderSty Style
	BodySty   Style
	ZebraFill bool
}

// Box draws its children inside a filled, bordered block.
type Box struct {
	Children []Node
	FillR    int
	FillG    int
	FillB    int
	HasFill  bool
}

// Spacer adds vertical whitespace in millimetres.
type Spacer struct {
	Height float64
}

// Divider is a horizontal rule.
type Divider struct{}

func (Text) isNode()    {}
func (Row) isNode()     {}
func (Table) isNode()   {}
func (Box) isNode()     {}
func (Spacer) isNode()  {}
func (Divider) isNode() {}

// Document is a complete printable page set.
type Document struct {
	Title string
	// RTL flips alignment and reverses row cells for Arabic output.
	RTL   bool
	Nodes []Node
}

func (d *Document) Add(nodes ...Node) {
	d.Nodes = append(d.Nodes, nodes...)
}

// SafeText renders a value for a PDF cell. Numeric zero is meaningful and
// prints as "0"; empty strings and nils print as a dash so blank cells are
// visibly intentional.
func SafeText(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "-"
	case string:
		if x == "" {
			return "-"
		}
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		s := fmt.Sprintf("%v", x)
		if s == "" {
			return "-"
		}
		return s
	}
}
