package render

import "github.com/mcoot/minesweeper/internal/model"

// Layout controls the text shape of a rendered grid
type Layout struct {
	IndexBase int  // Added to 0-indexed coordinates in labels
	MinWidth  int  // Minimum width of row labels and cells
	Margin    int  // Spaces before each row label
	Rule      rune // Character of the rule under the header
}

// ClassicLayout is the wide, 1-indexed layout with a double rule
func ClassicLayout() Layout {
	return Layout{IndexBase: 1, MinWidth: 2, Margin: 1, Rule: '='}
}

// CompactLayout is the narrow, 0-indexed layout with a single rule
func CompactLayout() Layout {
	return Layout{IndexBase: 0, MinWidth: 1, Margin: 0, Rule: '-'}
}

// LayoutFor returns the layout that goes with a variant
func LayoutFor(variant model.Variant) Layout {
	if variant == model.VariantCompact {
		return CompactLayout()
	}
	return ClassicLayout()
}

// width returns the column width needed to label a grid of the given size
func (l Layout) width(size int) int {
	w := digits(size - 1 + l.IndexBase)
	if w < l.MinWidth {
		return l.MinWidth
	}
	return w
}

func digits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}
