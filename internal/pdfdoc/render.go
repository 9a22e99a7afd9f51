package pdfdoc

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageMargin  = 12.0
	defaultSize = 11.0
)

// Renderer turns Documents into PDF bytes. When a UTF-8 font is available in
// fontDir it is embedded so Arabic text renders; otherwise the built-in
// Helvetica is used, which covers the English reports.
type Renderer struct {
	fontDir  string
	utf8Font string
}

func NewRenderer(fontDir string) *Renderer {
	r := &Renderer{fontDir: fontDir}
	if _, err := os.Stat(filepath.Join(fontDir, "DejaVuSans.ttf")); err == nil {
		r.utf8Font = "DejaVuSans"
	}
	return r
}

// Render produces the PDF for one document.
func (r *Renderer) Render(doc *Document) ([]byte, error) {
	if doc.RTL && r.utf8Font == "" {
		return nil, fmt.Errorf("arabic output requires a UTF-8 font in %s", r.fontDir)
	}

	pdf := gofpdf.New("P", "mm", "A4", r.fontDir)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)

	family := "Helvetica"
	if r.utf8Font != "" {
		pdf.AddUTF8Font(r.utf8Font, "", "DejaVuSans.ttf")
		pdf.AddUTF8Font(r.utf8Font, "B", "DejaVuSans-Bold.ttf")
		family = r.utf8Font
	}

	if doc.Title != "" {
		pdf.SetTitle(doc.Title, true)
	}
	pdf.AddPage()
	if doc.RTL {
		pdf.RTL()
	}

	st := &renderState{pdf: pdf, family: family, rtl: doc.RTL}
	for _, node := range doc.Nodes {
		st.render(node)
	}

	if err := pdf.Error(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type renderState struct {
	pdf    *gofpdf.Fpdf
	family string
	rtl    bool
}

func (st *renderState) printableWidth() float64 {
	pageWidth, _ := st.pdf.GetPageSize()
	return pageWidth - 2*pageMargin
}

func (st *renderState) applyStyle(s Style) float64 {
	size := s.Size
	if size == 0 {
		size = defaultSize
	}
	style := ""
	if s.Bold {
		style = "B"
	}
	st.pdf.SetFont(st.family, style, size)
	if s.HasRGB {
		st.pdf.SetTextColor(s.R, s.G, s.B)
	} else {
		st.pdf.SetTextColor(0, 0, 0)
	}
	return size * 0.55
}

func (st *renderState) align(a Align) string {
	if a == "" {
		a = AlignLeft
	}
	if st.rtl {
		switch a {
		case AlignLeft:
			a = AlignRight
		case AlignRight:
			a = AlignLeft
		}
	}
	return string(a)
}

func (st *renderState) render(node Node) {
	switch n := node.(type) {
	case Text:
		h := st.applyStyle(n.Style)
		st.pdf.CellFormat(0, h, n.Value, "", 1, st.align(n.Align), false, 0, "")

	case Spacer:
		st.pdf.Ln(n.Height)

	case Divider:
		st.pdf.Ln(1.5)
		y := st.pdf.GetY()
		st.pdf.SetDrawColor(180, 180, 180)
		st.pdf.Line(pageMargin, y, pageMargin+st.printableWidth(), y)
		st.pdf.Ln(1.5)

	case Row:
		st.renderRow(n)

	case Table:
		st.renderTable(n)

	case Box:
		st.renderBox(n)
	}
}

func (st *renderState) renderRow(row Row) {
	cells := row.Cells
	total := st.printableWidth()

	// Cells without a width share what the sized cells leave over.
	used, unsized := 0.0, 0
	for _, c := range cells {
		if c.Width > 0 {
			used += c.Width
		} else {
			unsized++
		}
	}
	share := 0.0
	if unsized > 0 && used < 1 {
		share = (1 - used) / float64(unsized)
	}

	maxH := 0.0
	for _, c := range cells {
		if h := st.applyStyle(c.Style); h > maxH {
			maxH = h
		}
	}

	for i, c := range cells {
		st.applyStyle(c.Style)
		w := c.Width
		if w <= 0 {
			w = share
		}
		ln := 0
		if i == len(cells)-1 {
			ln = 1
		}
		st.pdf.CellFormat(total*w, maxH, c.Value, "", ln, st.align(c.Align), false, 0, "")
	}
}

func (st *renderState) renderTable(t Table) {
	total := st.printableWidth()
	cols := len(t.Headers)
	if cols == 0 {
		return
	}

	widths := make([]float64, cols)
	for i := range widths {
		if i < len(t.Widths) && t.Widths[i] > 0 {
			widths[i] = t.Widths[i] * total
		} else {
			widths[i] = total / float64(cols)
		}
	}

	headerH := st.applyStyle(t.HeaderSty) + 2
	st.pdf.SetFillColor(45, 45, 45)
	st.pdf.SetTextColor(255, 255, 255)
	for i, h := range t.Headers {
		ln := 0
		if i == cols-1 {
			ln = 1
		}
		st.pdf.CellFormat(widths[i], headerH, h, "1", ln, st.align(AlignCenter), true, 0, "")
	}

	bodyH := st.applyStyle(t.BodySty) + 1.5
	for rowIdx, row := range t.Rows {
		fill := t.ZebraFill && rowIdx%2 == 1
		if fill {
			st.pdf.SetFillColor(240, 240, 240)
		}
		for i := 0; i < cols; i++ {
			val := ""
			if i < len(row) {
				val = row[i]
			}
			ln := 0
			if i == cols-1 {
				ln = 1
			}
			st.pdf.CellFormat(widths[i], bodyH, val, "1", ln, st.align(AlignCenter), fill, 0, "")
		}
	}
}

func (st *renderState) renderBox(b Box) {
	startY := st.pdf.GetY()
	if b.HasFill {
		height := st.estimateHeight(b.Children) + 4
		st.pdf.SetFillColor(b.FillR, b.FillG, b.FillB)
		st.pdf.Rect(pageMargin, startY, st.printableWidth(), height, "F")
	}
	st.pdf.SetY(startY + 2)
	for _, child := range b.Children {
		st.render(child)
	}
	st.pdf.Ln(2)
}

func (st *renderState) estimateHeight(nodes []Node) float64 {
	h := 0.0
	for _, node := range nodes {
		switch n := node.(type) {
		case Text:
			size := n.Style.Size
			if size == 0 {
				size = defaultSize
			}
			h += size * 0.55
		case Spacer:
			h += n.Height
		case Divider:
			h += 3
		case Row:
			maxH := 0.0
			for _, c := range n.Cells {
				size := c.Style.Size
				if size == 0 {
					size = defaultSize
				}
				if ch := size * 0.55; ch > maxH {
					maxH = ch
				}
			}
			h += maxH
		case Table:
			headerSize := n.HeaderSty.Size
			if headerSize == 0 {
				headerSize = defaultSize
			}
			bodySize := n.BodySty.Size
			if bodySize == 0 {
				bodySize = defaultSize
			}
			h += headerSize*0.55 + 2 + float64(len(n.Rows))*(bodySize*0.55+1.5)
		case Box:
			h += st.estimateHeight(n.Children) + 4
		}
	}
	return h
}
