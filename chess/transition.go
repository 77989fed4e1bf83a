package chess

// MoveStatus is the outcome of Player.MakeMove.
type MoveStatus uint8

const (
	Done MoveStatus = iota
	IllegalMove
	LeavesPlayerInCheck
)

// IsDone reports whether the move was applied.
func (s MoveStatus) IsDone() bool { return s == Done }

func (s MoveStatus) String() string {
	switch s {
	case Done:
		return "DONE"
	case IllegalMove:
		return "ILLEGAL_MOVE"
	case LeavesPlayerInCheck:
		return "LEAVES_PLAYER_IN_CHECK"
	default:
		return "UNKNOWN"
	}
}

// MoveTransition records an attempted move. Board is the resulting position
// when the status is Done and the original position otherwise.
type MoveTransition struct {
	board  *Board
	move   Move
	status MoveStatus
}

// Board returns the resulting position.
func (t MoveTransition) Board() *Board { return t.board }

// Move returns the move that was attempted.
func (t MoveTransition) Move() Move { return t.move }

// Status returns the outcome of the attempt.
func (t MoveTransition) Status() MoveStatus { return t.status }
