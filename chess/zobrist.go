package chess

import "math/rand"

// Zobrist keys per alliance, piece type and tile, plus the state that changes
// which moves are legal: first-move flags that enable castles or pawn jumps,
// side to move and en-passant file.
var zobristPiece [2][7][NumTiles]uint64
var zobristFirstMove [NumTiles]uint64
var zobristEnPassant [NumTilesPerRow]uint64
var zobristSide uint64

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed so hashes are stable between runs.
	rnd := rand.New(rand.NewSource(0xC0DE))

	for a := 0; a < 2; a++ {
		for t := 0; t < 7; t++ {
			for sq := 0; sq < NumTiles; sq++ {
				zobristPiece[a][t][sq] = rnd.Uint64()
			}
		}
	}
	for sq := 0; sq < NumTiles; sq++ {
		zobristFirstMove[sq] = rnd.Uint64()
	}
	for f := 0; f < NumTilesPerRow; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

func (b *Board) computeZobrist() uint64 {
	var key uint64
	for sq := 0; sq < NumTiles; sq++ {
		p := b.tiles[sq].piece
		if p.IsNone() {
			continue
		}
		key ^= zobristPiece[p.Alliance()][p.Type()][sq]
		if hashesFirstMove(p) {
			key ^= zobristFirstMove[sq]
		}
	}
	if b.moveMaker == Black {
		key ^= zobristSide
	}
	if ep, ok := b.EnPassantPawn(); ok {
		key ^= zobristEnPassant[Column(ep.Position())]
	}
	return key
}

// hashesFirstMove reports whether the first-move flag of p can change the
// moves of the position. A pawn's flag only matters on its start row.
func hashesFirstMove(p Piece) bool {
	if !p.IsFirstMove() {
		return false
	}
	switch p.Type() {
	case King, Rook:
		return true
	case Pawn:
		return Row(p.Position()) == pawnStartRow(p.Alliance())
	}
	return false
}
