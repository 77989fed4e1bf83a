package chess

// castleLayout fixes the home tiles of one side. The two layouts mirror each
// other across the board: White castles on row 7, Black on row 0.
type castleLayout struct {
	kingStart     int
	kingSideRook  int
	queenSideRook int
}

var castleLayouts = [2]castleLayout{
	White: {kingStart: 60, kingSideRook: 63, queenSideRook: 56},
	Black: {kingStart: 4, kingSideRook: 7, queenSideRook: 0},
}

// calculateKingCastles returns at most two castles, king side first. It runs
// after inCheck is known.
func (p *Player) calculateKingCastles(opponentMoves []Move) []Move {
	layout := castleLayouts[p.alliance]
	if !p.king.IsFirstMove() || p.inCheck || p.king.Position() != layout.kingStart {
		return nil
	}
	k := layout.kingStart
	var castles []Move

	if p.emptyTiles(k+1, k+2) {
		rook, ok := p.castleRook(layout.kingSideRook)
		if ok && unattacked(opponentMoves, k+1, k+2) {
			castles = append(castles, NewKingSideCastleMove(p.board, p.king, k+2, rook, layout.kingSideRook, k+1))
		}
	}

	// The tile next to the rook only has to be empty; the king never crosses it.
	if p.emptyTiles(k-1, k-2, k-3) {
		rook, ok := p.castleRook(layout.queenSideRook)
		if ok && unattacked(opponentMoves, k-1, k-2) {
			castles = append(castles, NewQueenSideCastleMove(p.board, p.king, k-2, rook, layout.queenSideRook, k-1))
		}
	}
	return castles
}

func (p *Player) emptyTiles(tiles ...int) bool {
	for _, t := range tiles {
		if p.board.tiles[t].Occupied() {
			return false
		}
	}
	return true
}

// castleRook returns the unmoved rook of this side standing on tile.
func (p *Player) castleRook(tile int) (Piece, bool) {
	r := p.board.tiles[tile].piece
	if r.IsNone() || !r.IsFirstMove() {
		return NoPiece, false
	}
	if !r.Type().IsRook() || r.Alliance() != p.alliance {
		return NoPiece, false
	}
	return r, true
}

func unattacked(opponentMoves []Move, tiles ...int) bool {
	for _, t := range tiles {
		if len(CalculateAttacksOnTile(t, opponentMoves)) > 0 {
			return false
		}
	}
	return true
}
