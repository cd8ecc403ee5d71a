package editor

import "math"

// Two independent split trackers. The editor split divides the code and
// markup editors along the window height; the result split divides the
// editors from the result along the window width. Drag events that arrive
// while a tracker is idle are ignored.

func (m Model) startEditorDrag() Model {
	m.editorDragging = true
	return m
}

func (m Model) endEditorDrag() Model {
	m.editorDragging = false
	return m
}

func (m Model) dragEditor(pos Position) Model {
	if !m.editorDragging {
		return m
	}
	if split, ok := splitFraction(pos.Y, m.windowSize.Height, m.layout.HeaderHeight); ok {
		m.editorSplit = split
	}
	return m
}

func (m Model) startResultDrag() Model {
	m.resultDragging = true
	return m
}

func (m Model) endResultDrag() Model {
	m.resultDragging = false
	return m
}

func (m Model) dragResult(pos Position) Model {
	if !m.resultDragging {
		return m
	}
	if split, ok := splitFraction(pos.X, m.windowSize.Width, m.layout.SidebarWidth); ok {
		m.resultSplit = split
	}
	return m
}

func (m Model) resize(size Size) Model {
	m.windowSize = size
	return m
}

// splitFraction is (coordinate - offset) / (dimension - offset) clamped to
// [minSplit, maxSplit]. ok is false when the window leaves no room.
func splitFraction(coordinate, dimension, offset int) (float64, bool) {
	span := dimension - offset
	if span <= 0 {
		return 0, false
	}
	return clampSplit(float64(coordinate-offset) / float64(span)), true
}

func clampSplit(v float64) float64 {
	switch {
	case math.IsNaN(v), v < minSplit:
		return minSplit
	case v > maxSplit:
		return maxSplit
	default:
		return v
	}
}
