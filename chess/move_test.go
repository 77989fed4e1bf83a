package chess_test

import (
	"testing"

	"chess-core/chess"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMove(t *testing.T) {
	b := chess.StandardBoard()

	m := chess.CreateMove(b, tile(t, "e2"), tile(t, "e4"))
	require.False(t, m.IsNull())
	assert.Equal(t, chess.PawnJump, m.Kind())
	assert.Same(t, b, m.Board())
	assert.Equal(t, "e2e4", m.Coordinates())

	assert.Equal(t, chess.PawnMove, chess.CreateMove(b, tile(t, "e2"), tile(t, "e3")).Kind())
	assert.Equal(t, chess.MajorMove, chess.CreateMove(b, tile(t, "g1"), tile(t, "f3")).Kind())

	// Black's moves are found even with White to move.
	assert.Equal(t, chess.PawnJump, chess.CreateMove(b, tile(t, "d7"), tile(t, "d5")).Kind())

	none := chess.CreateMove(b, tile(t, "e2"), tile(t, "e5"))
	assert.True(t, none.IsNull())
	assert.Equal(t, -1, none.CurrentCoordinate())
	assert.Equal(t, -1, none.DestinationCoordinate())
	assert.Equal(t, "0000", none.String())
}

func TestCreateMoveFromNotation(t *testing.T) {
	b := chess.StandardBoard()

	m, err := chess.CreateMoveFromNotation(b, "g1f3")
	require.NoError(t, err)
	assert.Equal(t, chess.Knight, m.MovedPiece().Type())
	assert.Equal(t, tile(t, "f3"), m.DestinationCoordinate())

	m, err = chess.CreateMoveFromNotation(b, "a1a5")
	require.NoError(t, err)
	assert.True(t, m.IsNull())

	for _, bad := range []string{"", "e2", "e2e9", "z1e4", "e2e4q"} {
		_, err := chess.CreateMoveFromNotation(b, bad)
		assert.ErrorIs(t, err, chess.ErrUnknownTile, bad)
	}
}

func TestNullMoveExecutePanics(t *testing.T) {
	assert.PanicsWithValue(t, chess.ErrNullMoveExecution, func() { chess.NullMove.Execute() })
}

func TestMoveEquality(t *testing.T) {
	b := chess.StandardBoard()
	a := chess.CreateMove(b, tile(t, "g1"), tile(t, "f3"))
	again := chess.CreateMove(b, tile(t, "g1"), tile(t, "f3"))

	assert.True(t, a.Equal(again))
	assert.Equal(t, a.Hash(), again.Hash())

	// A rebuilt move with the same mover and destination is the same move.
	rebuilt := chess.NewMajorMove(nil, a.MovedPiece(), a.DestinationCoordinate())
	assert.True(t, a.Equal(rebuilt))
	assert.True(t, rebuilt.Equal(a))
	assert.Equal(t, a.Hash(), rebuilt.Hash())

	other := chess.CreateMove(b, tile(t, "g1"), tile(t, "h3"))
	assert.False(t, a.Equal(other))

	assert.True(t, chess.NullMove.Equal(chess.NullMove))
	assert.False(t, a.Equal(chess.NullMove))
	assert.False(t, chess.NullMove.Equal(a))
}

func TestMoveEqualityCaptureIsSymmetric(t *testing.T) {
	b := decode(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	capture := chess.CreateMove(b, tile(t, "e4"), tile(t, "d5"))
	require.Equal(t, chess.PawnAttackMove, capture.Kind())

	quiet := chess.NewPawnMove(b, capture.MovedPiece(), capture.DestinationCoordinate())
	assert.False(t, capture.Equal(quiet))
	assert.False(t, quiet.Equal(capture))

	wrongVictim := chess.NewPawnAttackMove(b, capture.MovedPiece(), capture.DestinationCoordinate(),
		chess.NewPiece(chess.Queen, chess.Black, capture.DestinationCoordinate()))
	assert.False(t, capture.Equal(wrongVictim))
	assert.False(t, wrongVictim.Equal(capture))
}

func TestExecutePawnJump(t *testing.T) {
	b := chess.StandardBoard()
	next := chess.CreateMove(b, tile(t, "e2"), tile(t, "e4")).Execute()

	assert.Equal(t, chess.Black, next.MoveMaker())
	assert.False(t, next.Tile(tile(t, "e2")).Occupied())

	pawn := next.PieceAt(tile(t, "e4"))
	assert.Equal(t, chess.Pawn, pawn.Type())
	assert.False(t, pawn.IsFirstMove())

	ep, ok := next.EnPassantPawn()
	require.True(t, ok)
	assert.Equal(t, pawn, ep)

	// The original board is untouched.
	assert.True(t, b.PieceAt(tile(t, "e2")).IsFirstMove())
	assert.False(t, b.Tile(tile(t, "e4")).Occupied())
}

func TestExecuteClearsEnPassantPawn(t *testing.T) {
	b := play(t, chess.StandardBoard(), "e2e4")
	next := chess.CreateMove(b, tile(t, "g8"), tile(t, "f6")).Execute()
	_, ok := next.EnPassantPawn()
	assert.False(t, ok)
}

func TestExecuteCapture(t *testing.T) {
	b := decode(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	m := chess.CreateMove(b, tile(t, "e4"), tile(t, "d5"))
	require.True(t, m.IsAttack())
	assert.Equal(t, b.PieceAt(tile(t, "d5")), m.AttackedPiece())

	next := m.Execute()
	assert.Len(t, next.BlackPieces(), 1)
	assert.Len(t, next.WhitePieces(), 2)
	assert.Equal(t, chess.White, next.PieceAt(tile(t, "d5")).Alliance())
	assert.False(t, next.Tile(tile(t, "e4")).Occupied())
}

func TestExecuteMajorCapture(t *testing.T) {
	b := decode(t, "4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1")
	m := chess.CreateMove(b, tile(t, "d1"), tile(t, "d5"))
	require.Equal(t, chess.MajorAttackMove, m.Kind())

	next := m.Execute()
	assert.Len(t, next.BlackPieces(), 1)
	assert.Equal(t, chess.Rook, next.PieceAt(tile(t, "d5")).Type())
	assert.Equal(t, chess.White, next.PieceAt(tile(t, "d5")).Alliance())
}

func TestExecuteEnPassant(t *testing.T) {
	b := decode(t, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	m := chess.CreateMove(b, tile(t, "e5"), tile(t, "d6"))
	require.Equal(t, chess.PawnEnPassantAttackMove, m.Kind())
	assert.Equal(t, tile(t, "d5"), m.AttackedPiece().Position())

	next := m.Execute()
	assert.False(t, next.Tile(tile(t, "d5")).Occupied())
	assert.False(t, next.Tile(tile(t, "e5")).Occupied())
	assert.Equal(t, chess.Pawn, next.PieceAt(tile(t, "d6")).Type())
	assert.Len(t, next.BlackPieces(), 1)
}

func TestEnPassantWindow(t *testing.T) {
	b := decode(t, "4k3/3p4/8/4P3/8/8/8/4K3 b - - 0 1")

	jumped := play(t, b, "d7d5")
	ep, ok := jumped.EnPassantPawn()
	require.True(t, ok)
	assert.Equal(t, tile(t, "d5"), ep.Position())
	assert.Equal(t, chess.PawnEnPassantAttackMove,
		chess.CreateMove(jumped, tile(t, "e5"), tile(t, "d6")).Kind())

	later := play(t, jumped, "e1e2", "e8f8")
	_, ok = later.EnPassantPawn()
	assert.False(t, ok)
	assert.True(t, chess.CreateMove(later, tile(t, "e5"), tile(t, "d6")).IsNull())
}

func TestCastleDisplay(t *testing.T) {
	b := decode(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	ks := chess.CreateMove(b, tile(t, "e1"), tile(t, "g1"))
	require.Equal(t, chess.KingSideCastleMove, ks.Kind())
	assert.Equal(t, "O-O", ks.String())
	assert.Equal(t, "e1g1", ks.Coordinates())
	assert.True(t, ks.IsCastlingMove())
	assert.False(t, ks.IsAttack())

	qs := chess.CreateMove(b, tile(t, "e8"), tile(t, "c8"))
	require.Equal(t, chess.QueenSideCastleMove, qs.Kind())
	assert.Equal(t, "O-O-O", qs.String())
	assert.Equal(t, tile(t, "a8"), qs.CastleRookStart())
	assert.Equal(t, tile(t, "d8"), qs.CastleRookDestination())
	assert.Equal(t, chess.Rook, qs.CastleRook().Type())

	assert.Equal(t, "e2e4", chess.CreateMove(chess.StandardBoard(), tile(t, "e2"), tile(t, "e4")).String())
}

func TestExecuteCastle(t *testing.T) {
	b := decode(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	next := chess.CreateMove(b, tile(t, "e1"), tile(t, "g1")).Execute()

	king := next.PieceAt(tile(t, "g1"))
	rook := next.PieceAt(tile(t, "f1"))
	assert.Equal(t, chess.King, king.Type())
	assert.False(t, king.IsFirstMove())
	assert.Equal(t, chess.Rook, rook.Type())
	assert.Equal(t, chess.White, rook.Alliance())
	assert.False(t, rook.IsFirstMove())
	assert.False(t, next.Tile(tile(t, "e1")).Occupied())
	assert.False(t, next.Tile(tile(t, "h1")).Occupied())
	assert.True(t, next.PieceAt(tile(t, "a1")).IsFirstMove())
	assert.Equal(t, chess.Black, next.MoveMaker())
	assert.True(t, next.WhitePlayer().IsCastled())
	assert.False(t, next.BlackPlayer().IsCastled())

	black := chess.CreateMove(next, tile(t, "e8"), tile(t, "c8")).Execute()
	assert.Equal(t, chess.King, black.PieceAt(tile(t, "c8")).Type())
	assert.Equal(t, chess.Rook, black.PieceAt(tile(t, "d8")).Type())
	assert.False(t, black.Tile(tile(t, "a8")).Occupied())
	assert.True(t, black.BlackPlayer().IsCastled())
	assert.Equal(t, chess.White, black.MoveMaker())
}

func TestMoveKindString(t *testing.T) {
	assert.Equal(t, "PawnEnPassantAttackMove", chess.PawnEnPassantAttackMove.String())
	assert.Equal(t, "NullMove", chess.NullMoveKind.String())
}
