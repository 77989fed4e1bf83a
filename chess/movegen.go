package chess

// Geometry is expressed as (row, column) deltas so no move can wrap around a
// board edge.
var knightOffsets = [8][2]int{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// Ray directions: 0-3 orthogonal, 4-7 diagonal.
var rayDirections = [8][2]int{
	{-1, 0}, {1, 0}, {0, 1}, {0, -1},
	{-1, 1}, {-1, -1}, {1, 1}, {1, -1},
}

// Precomputed destination tiles per origin tile.
var knightTargets [NumTiles][]int
var kingTargets [NumTiles][]int

// rays[sq][dir] lists the tiles along dir, nearest first, origin excluded.
var rays [NumTiles][8][]int

func init() {
	initStepTables()
	initRays()
}

func initStepTables() {
	for sq := 0; sq < NumTiles; sq++ {
		row, col := Row(sq), Column(sq)
		for _, off := range knightOffsets {
			if t, ok := tileAt(row+off[0], col+off[1]); ok {
				knightTargets[sq] = append(knightTargets[sq], t)
			}
		}
		for _, off := range kingOffsets {
			if t, ok := tileAt(row+off[0], col+off[1]); ok {
				kingTargets[sq] = append(kingTargets[sq], t)
			}
		}
	}
}

func initRays() {
	for sq := 0; sq < NumTiles; sq++ {
		row, col := Row(sq), Column(sq)
		for dir, d := range rayDirections {
			for r, c := row+d[0], col+d[1]; ; r, c = r+d[0], c+d[1] {
				t, ok := tileAt(r, c)
				if !ok {
					break
				}
				rays[sq][dir] = append(rays[sq][dir], t)
			}
		}
	}
}

func pawnStartRow(a Alliance) int {
	if a == White {
		return 6
	}
	return 1
}

// CalculateLegalMoves returns the pseudo-legal moves of pieces on b: moves
// that follow each piece's pattern and the occupancy of b, without regard to
// the safety of the mover's king. Castles are not included.
func (b *Board) CalculateLegalMoves(pieces []Piece) []Move {
	moves := make([]Move, 0, 64)
	for _, p := range pieces {
		moves = b.appendPieceMoves(moves, p)
	}
	return moves
}

// CalculatePieceMoves returns the pseudo-legal moves of a single piece.
func (b *Board) CalculatePieceMoves(p Piece) []Move {
	return b.appendPieceMoves(nil, p)
}

func (b *Board) appendPieceMoves(dst []Move, p Piece) []Move {
	sq := p.Position()
	switch p.Type() {
	case Pawn:
		return b.appendPawnMoves(dst, p)
	case Knight:
		return b.appendStepMoves(dst, p, knightTargets[sq])
	case King:
		return b.appendStepMoves(dst, p, kingTargets[sq])
	case Rook:
		return b.appendSlidingMoves(dst, p, rays[sq][:4])
	case Bishop:
		return b.appendSlidingMoves(dst, p, rays[sq][4:])
	case Queen:
		return b.appendSlidingMoves(dst, p, rays[sq][:])
	}
	return dst
}

func (b *Board) appendStepMoves(dst []Move, p Piece, targets []int) []Move {
	for _, t := range targets {
		occupant := b.tiles[t].piece
		if occupant.IsNone() {
			dst = append(dst, NewMajorMove(b, p, t))
		} else if occupant.Alliance() != p.Alliance() {
			dst = append(dst, NewMajorAttackMove(b, p, t, occupant))
		}
	}
	return dst
}

func (b *Board) appendSlidingMoves(dst []Move, p Piece, directions [][]int) []Move {
	for _, ray := range directions {
		for _, t := range ray {
			occupant := b.tiles[t].piece
			if occupant.IsNone() {
				dst = append(dst, NewMajorMove(b, p, t))
				continue
			}
			if occupant.Alliance() != p.Alliance() {
				dst = append(dst, NewMajorAttackMove(b, p, t, occupant))
			}
			break
		}
	}
	return dst
}

func (b *Board) appendPawnMoves(dst []Move, p Piece) []Move {
	a := p.Alliance()
	row, col := Row(p.Position()), Column(p.Position())
	dir := a.Direction()

	if one, ok := tileAt(row+dir, col); ok && !b.tiles[one].Occupied() {
		dst = append(dst, NewPawnMove(b, p, one))
		if p.IsFirstMove() && row == pawnStartRow(a) {
			if two, ok := tileAt(row+2*dir, col); ok && !b.tiles[two].Occupied() {
				dst = append(dst, NewPawnJump(b, p, two))
			}
		}
	}

	for _, dc := range [2]int{-1, 1} {
		target, ok := tileAt(row+dir, col+dc)
		if !ok {
			continue
		}
		if occupant := b.tiles[target].piece; !occupant.IsNone() {
			if occupant.Alliance() != a {
				dst = append(dst, NewPawnAttackMove(b, p, target, occupant))
			}
			continue
		}
		ep, ok := b.EnPassantPawn()
		if !ok || ep.Alliance() == a || ep.Type() != Pawn {
			continue
		}
		if beside, _ := tileAt(row, col+dc); ep.Position() == beside {
			dst = append(dst, NewPawnEnPassantAttackMove(b, p, target, ep))
		}
	}
	return dst
}
