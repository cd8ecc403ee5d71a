package ui

import "github.com/five82/playpen/internal/editor"

// Fixed chrome.
const (
	// footerHeight is the command bar below the body. It is excluded from
	// the window size reported to the editor so the drag math only sees the
	// rows it divides.
	footerHeight = 1

	// LayoutCompactWidth is the threshold below which the header drops
	// secondary fields.
	LayoutCompactWidth = 100

	// minPane is the smallest outer size of a pane, borders included.
	minPane = 3

	// splitStep is how far the keyboard resize bindings move a splitter.
	splitStep = 0.05
)

// geometry is the screen layout derived from the editor model. X grows to
// the right, Y grows down, both from the top-left cell.
type geometry struct {
	width, height int

	headerHeight int
	sidebarWidth int

	bodyY, bodyH int

	editorsX, editorsW int
	resultX, resultW   int

	elmH, htmlH int

	// splitterX is the first column of the result pane; splitterY is the
	// first row of the HTML editor. Either is -1 when not draggable.
	splitterX, splitterY int
}

func layoutFor(m editor.Model) geometry {
	size := m.WindowSize()
	lay := m.Layout()

	g := geometry{
		width:        size.Width,
		height:       size.Height + footerHeight,
		headerHeight: clampInt(lay.HeaderHeight, 1, max(1, size.Height-minPane)),
		splitterX:    -1,
		splitterY:    -1,
	}
	g.sidebarWidth = clampInt(lay.SidebarWidth, 0, max(0, size.Width-2*minPane))
	g.bodyY = g.headerHeight
	g.bodyH = max(0, size.Height-g.headerHeight)

	main := max(0, size.Width-g.sidebarWidth)
	g.editorsX = g.sidebarWidth
	g.editorsW = clampInt(int(m.ResultSplit()*float64(main)), minPane, max(minPane, main-minPane))
	g.resultX = g.editorsX + g.editorsW
	g.resultW = max(0, main-g.editorsW)
	g.splitterX = g.resultX

	switch m.Collapse() {
	case editor.JustElmOpen:
		g.elmH = g.bodyH
	case editor.JustHTMLOpen:
		g.htmlH = g.bodyH
	default:
		g.elmH = clampInt(int(m.EditorSplit()*float64(g.bodyH)), minPane, max(minPane, g.bodyH-minPane))
		g.htmlH = max(0, g.bodyH-g.elmH)
		g.splitterY = g.bodyY + g.elmH
	}
	return g
}

// onResultSplitter reports whether a press at (x, y) grabs the vertical
// splitter between the editors and the result pane.
func (g geometry) onResultSplitter(x, y int) bool {
	return g.splitterX >= 0 && x == g.splitterX && y >= g.bodyY && y < g.bodyY+g.bodyH
}

// onEditorSplitter reports whether a press at (x, y) grabs the horizontal
// splitter between the Elm and HTML editors.
func (g geometry) onEditorSplitter(x, y int) bool {
	return g.splitterY >= 0 && y == g.splitterY && x >= g.editorsX && x < g.resultX
}

// inElm and inHTML locate clicks inside the editor panes.
func (g geometry) inElm(x, y int) bool {
	return g.elmH > 0 && x >= g.editorsX && x < g.resultX && y >= g.bodyY && y < g.bodyY+g.elmH
}

func (g geometry) inHTML(x, y int) bool {
	top := g.bodyY + g.elmH
	return g.htmlH > 0 && x >= g.editorsX && x < g.resultX && y >= top && y < top+g.htmlH
}

// splitPosition is the pointer position that puts a splitter at fraction f.
// It inverts the editor's drag math so keyboard resizing goes through the
// same drag messages as the mouse.
func (g geometry) splitPosition(f float64) editor.Position {
	return editor.Position{
		X: g.sidebarWidth + int(f*float64(g.width-g.sidebarWidth)+0.5),
		Y: g.headerHeight + int(f*float64(g.height-footerHeight-g.headerHeight)+0.5),
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
