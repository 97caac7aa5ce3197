package entity

// Cell is the content of one board square.
type Cell int8

const (
	Empty Cell = iota
	Cross
	Circle
)

func (that Cell) String() string {
	switch that {
	case Cross:
		return "Cross"
	case Circle:
		return "Circle"
	default:
		return "Empty"
	}
}

// Mark returns the glyph drawn for the cell.
func (that Cell) Mark() string {
	switch that {
	case Cross:
		return "X"
	case Circle:
		return "O"
	default:
		return " "
	}
}

// Opponent returns the symbol that moves after this one.
func (that Cell) Opponent() Cell {
	if that == Cross {
		return Circle
	}
	return Cross
}
