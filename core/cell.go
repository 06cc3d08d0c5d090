package core

import "github.com/gdamore/tcell/v2"

// Cell is a single character cell of the composed frame.
type Cell struct {
	Ch    rune
	Style tcell.Style
}
