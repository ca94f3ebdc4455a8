package entity

// Outcome - the state of a game after a move.
type Outcome int

const (
	InProgress Outcome = iota
	PlayerWon
	ComputerWon
	Tie
)

const (
	MessagePlayerWon   = "You Won!"
	MessageComputerWon = "Computer Won!"
	MessageTie         = "The game ended in a tie!"
)

func (that Outcome) IsFinished() bool {
	return that != InProgress
}

// Message - the text shown to the player when the game ends, empty while in progress.
func (that Outcome) Message() string {
	switch that {
	case PlayerWon:
		return MessagePlayerWon
	case ComputerWon:
		return MessageComputerWon
	case Tie:
		return MessageTie
	default:
		return ""
	}
}

func (that Outcome) String() string {
	switch that {
	case InProgress:
		return "in_progress"
	case PlayerWon:
		return "player_won"
	case ComputerWon:
		return "computer_won"
	case Tie:
		return "tie"
	default:
		return "unknown"
	}
}
