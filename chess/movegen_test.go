package chess_test

import (
	"sort"
	"testing"

	"chess-core/chess"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func destinations(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, chess.TileName(m.DestinationCoordinate()))
	}
	sort.Strings(out)
	return out
}

func TestPieceMoves(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{"knight in corner", "k7/8/8/8/8/8/8/N6K w - - 0 1", "a1", []string{"b3", "c2"}},
		{"knight on edge does not wrap", "k7/8/8/7N/8/8/8/K7 w - - 0 1", "h5", []string{"f4", "f6", "g3", "g7"}},
		{"rook stops at own piece", "k7/8/8/8/8/8/8/K6R w - - 0 1", "h1",
			[]string{"b1", "c1", "d1", "e1", "f1", "g1", "h2", "h3", "h4", "h5", "h6", "h7", "h8"}},
		{"bishop captures and stops", "k7/8/8/8/8/2p5/8/K3B3 w - - 0 1", "e1",
			[]string{"c3", "d2", "f2", "g3", "h4"}},
		{"king on edge", "k7/8/8/8/8/8/8/4K3 w - - 0 1", "e1", []string{"d1", "d2", "e2", "f1", "f2"}},
		{"queen", "7k/8/8/8/8/8/1P6/QK6 w - - 0 1", "a1",
			[]string{"a2", "a3", "a4", "a5", "a6", "a7", "a8"}},
		{"pawn on start row", "k7/8/8/8/8/8/4P3/K7 w - - 0 1", "e2", []string{"e3", "e4"}},
		{"pawn jump blocked", "k7/8/8/8/4n3/8/4P3/K7 w - - 0 1", "e2", []string{"e3"}},
		{"pawn blocked", "k7/8/8/8/8/4n3/4P3/K7 w - - 0 1", "e2", nil},
		{"pawn captures both sides", "k7/8/8/8/8/3n1b2/4P3/K7 w - - 0 1", "e2", []string{"d3", "e3", "e4", "f3"}},
		{"pawn ignores own pieces", "k7/8/8/8/8/3N1B2/4P3/K7 w - - 0 1", "e2", []string{"e3", "e4"}},
		{"black pawn", "k7/3p4/8/8/8/8/8/K7 b - - 0 1", "d7", []string{"d5", "d6"}},
		{"pawn off start row", "k7/8/8/8/8/4P3/8/K7 w - - 0 1", "e3", []string{"e4"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := decode(t, c.fen)
			p := b.PieceAt(tile(t, c.from))
			require.False(t, p.IsNone())
			moves := b.CalculatePieceMoves(p)
			if c.want == nil {
				assert.Empty(t, moves)
				return
			}
			assert.Equal(t, c.want, destinations(moves))
		})
	}
}

func TestPawnMoveKinds(t *testing.T) {
	b := decode(t, "k7/8/8/8/8/5b2/4P3/K7 w - - 0 1")
	kinds := map[string]chess.MoveKind{}
	for _, m := range b.CalculatePieceMoves(b.PieceAt(tile(t, "e2"))) {
		kinds[m.Coordinates()] = m.Kind()
	}
	assert.Equal(t, map[string]chess.MoveKind{
		"e2e3": chess.PawnMove,
		"e2e4": chess.PawnJump,
		"e2f3": chess.PawnAttackMove,
	}, kinds)
}

func TestEnPassantOnlyBesideThePawn(t *testing.T) {
	// Both neighbours of the jumped pawn may take it; a pawn two files away may not.
	b := decode(t, "k7/8/8/2PpP3/8/8/8/7K w - d6 0 2")
	for _, from := range []string{"c5", "e5"} {
		m := chess.CreateMove(b, tile(t, from), tile(t, "d6"))
		assert.Equal(t, chess.PawnEnPassantAttackMove, m.Kind(), from)
	}
	b = decode(t, "k7/8/8/3p1P2/8/8/8/7K w - d6 0 2")
	assert.True(t, chess.CreateMove(b, tile(t, "f5"), tile(t, "e6")).IsNull())
}

func TestCalculateLegalMovesStartPosition(t *testing.T) {
	b := chess.StandardBoard()
	moves := b.CalculateLegalMoves(b.WhitePieces())
	assert.Len(t, moves, 20)

	var jumps, knights int
	for _, m := range moves {
		switch {
		case m.Kind() == chess.PawnJump:
			jumps++
		case m.MovedPiece().Type() == chess.Knight:
			knights++
		}
		assert.False(t, m.IsAttack())
	}
	assert.Equal(t, 8, jumps)
	assert.Equal(t, 4, knights)
}

func TestNoPromotion(t *testing.T) {
	b := decode(t, "k7/4P3/8/8/8/8/8/K7 w - - 0 1")
	next := play(t, b, "e7e8")
	assert.Equal(t, chess.Pawn, next.PieceAt(tile(t, "e8")).Type())
	// A pawn on the last rank has no moves.
	assert.Empty(t, next.CalculatePieceMoves(next.PieceAt(tile(t, "e8"))))
}
