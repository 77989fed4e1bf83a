package chess

import "fmt"

// Player is one side's view of a board: its king, its legal moves (standard
// moves plus castles) and whether it is in check. Players are created by
// Builder.Build and never change.
type Player struct {
	board      *Board
	alliance   Alliance
	king       Piece
	legalMoves []Move
	inCheck    bool
}

func newPlayer(b *Board, alliance Alliance, standardMoves, opponentMoves []Move) *Player {
	p := &Player{board: b, alliance: alliance}
	p.king = p.establishKing()
	p.inCheck = len(CalculateAttacksOnTile(p.king.Position(), opponentMoves)) > 0

	castles := p.calculateKingCastles(opponentMoves)
	p.legalMoves = make([]Move, 0, len(standardMoves)+len(castles))
	p.legalMoves = append(p.legalMoves, standardMoves...)
	p.legalMoves = append(p.legalMoves, castles...)
	return p
}

func (p *Player) establishKing() Piece {
	for _, piece := range p.board.activePieces(p.alliance) {
		if piece.Type().IsKing() {
			return piece
		}
	}
	panic(fmt.Errorf("%w: %s", ErrNoKing, p.alliance))
}

// Board returns the position this player belongs to.
func (p *Player) Board() *Board { return p.board }

// Alliance returns the side of this player.
func (p *Player) Alliance() Alliance { return p.alliance }

// King returns this side's king.
func (p *Player) King() Piece { return p.king }

// ActivePieces returns this side's pieces on the board.
func (p *Player) ActivePieces() []Piece { return p.board.Pieces(p.alliance) }

// Opponent returns the other side's player of the same board.
func (p *Player) Opponent() *Player { return p.board.Player(p.alliance.Opponent()) }

// LegalMoves returns pseudo-legal moves followed by castles. Moves that leave
// the king attacked are still listed; MakeMove rejects them.
func (p *Player) LegalMoves() []Move {
	return append([]Move(nil), p.legalMoves...)
}

// CalculateAttacksOnTile returns the moves whose destination is tile.
func CalculateAttacksOnTile(tile int, moves []Move) []Move {
	var attacks []Move
	for _, m := range moves {
		if m.DestinationCoordinate() == tile {
			attacks = append(attacks, m)
		}
	}
	return attacks
}

// IsMoveLegal reports whether move is in this player's legal-move set.
func (p *Player) IsMoveLegal(move Move) bool {
	_, ok := p.find(move)
	return ok
}

func (p *Player) find(move Move) (Move, bool) {
	for _, m := range p.legalMoves {
		if m.Equal(move) {
			return m, true
		}
	}
	return NullMove, false
}

// IsInCheck reports whether an opponent move lands on the king's tile.
func (p *Player) IsInCheck() bool { return p.inCheck }

// IsInCheckMate reports a king in check with no move that resolves it.
func (p *Player) IsInCheckMate() bool {
	return p.inCheck && !p.HasEscapeMoves()
}

// IsInStaleMate reports a king not in check with no move that keeps it safe.
func (p *Player) IsInStaleMate() bool {
	return !p.inCheck && !p.HasEscapeMoves()
}

// HasEscapeMoves tries every legal move and reports whether any completes.
// Each probe executes the move and rebuilds both players of the new board.
func (p *Player) HasEscapeMoves() bool {
	for _, m := range p.legalMoves {
		if p.MakeMove(m).Status().IsDone() {
			return true
		}
	}
	return false
}

// IsCastled reports whether the king and a rook stand on the squares a castle
// leaves them on, both having moved.
func (p *Player) IsCastled() bool {
	layout := castleLayouts[p.alliance]
	if p.king.IsFirstMove() {
		return false
	}
	rookOn := func(tile int) bool {
		r := p.board.PieceAt(tile)
		return r.Type().IsRook() && r.Alliance() == p.alliance && !r.IsFirstMove()
	}
	switch p.king.Position() {
	case layout.kingStart + 2:
		return rookOn(layout.kingStart + 1)
	case layout.kingStart - 2:
		return rookOn(layout.kingStart - 1)
	}
	return false
}

// MakeMove applies move if it is legal and does not leave this player's king
// attacked. The board is unchanged unless the status is Done.
func (p *Player) MakeMove(move Move) MoveTransition {
	canonical, ok := p.find(move)
	if !ok {
		return MoveTransition{board: p.board, move: move, status: IllegalMove}
	}
	next := canonical.Execute()
	mover := next.Player(p.alliance)
	kingAttacks := CalculateAttacksOnTile(mover.King().Position(), mover.Opponent().legalMoves)
	if len(kingAttacks) > 0 {
		return MoveTransition{board: p.board, move: move, status: LeavesPlayerInCheck}
	}
	return MoveTransition{board: next, move: move, status: Done}
}

// String returns the side name.
func (p *Player) String() string { return p.alliance.String() }
