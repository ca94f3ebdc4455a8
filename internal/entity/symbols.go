package entity

const emptySymbol = " "

// Symbols holds the markers drawn for each side.
type Symbols struct {
	Player   string
	Computer string
}

var DefaultSymbols = Symbols{Player: "X", Computer: "O"}

func (that Symbols) Of(cell Cell) string {
	switch cell {
	case PlayerCell:
		return that.Player
	case ComputerCell:
		return that.Computer
	default:
		return emptySymbol
	}
}
