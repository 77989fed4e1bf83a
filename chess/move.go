package chess

import "fmt"

// MoveKind tags the variant of a Move.
type MoveKind uint8

const (
	NullMoveKind MoveKind = iota
	MajorMove
	MajorAttackMove
	PawnMove
	PawnJump
	PawnAttackMove
	PawnEnPassantAttackMove
	KingSideCastleMove
	QueenSideCastleMove
)

func (k MoveKind) String() string {
	switch k {
	case MajorMove:
		return "MajorMove"
	case MajorAttackMove:
		return "MajorAttackMove"
	case PawnMove:
		return "PawnMove"
	case PawnJump:
		return "PawnJump"
	case PawnAttackMove:
		return "PawnAttackMove"
	case PawnEnPassantAttackMove:
		return "PawnEnPassantAttackMove"
	case KingSideCastleMove:
		return "KingSideCastleMove"
	case QueenSideCastleMove:
		return "QueenSideCastleMove"
	default:
		return "NullMove"
	}
}

// Move describes a transition from the board it was generated on. Moves are
// values and never change after construction. The board is only read, by
// Execute.
type Move struct {
	kind        MoveKind
	board       *Board
	movedPiece  Piece
	destination int

	// attack kinds
	attacked Piece

	// castle kinds
	castleRook            Piece
	castleRookStart       int
	castleRookDestination int
}

// NullMove is returned by lookups that find nothing. Executing it panics.
var NullMove = Move{kind: NullMoveKind, destination: -1}

// NewMajorMove builds a quiet move of a non-pawn piece.
func NewMajorMove(b *Board, moved Piece, destination int) Move {
	return Move{kind: MajorMove, board: b, movedPiece: moved, destination: destination}
}

// NewMajorAttackMove builds a capture by a non-pawn piece.
func NewMajorAttackMove(b *Board, moved Piece, destination int, attacked Piece) Move {
	return Move{kind: MajorAttackMove, board: b, movedPiece: moved, destination: destination, attacked: attacked}
}

// NewPawnMove builds a one-tile pawn advance.
func NewPawnMove(b *Board, moved Piece, destination int) Move {
	return Move{kind: PawnMove, board: b, movedPiece: moved, destination: destination}
}

// NewPawnJump builds a two-tile pawn advance.
func NewPawnJump(b *Board, moved Piece, destination int) Move {
	return Move{kind: PawnJump, board: b, movedPiece: moved, destination: destination}
}

// NewPawnAttackMove builds a diagonal pawn capture.
func NewPawnAttackMove(b *Board, moved Piece, destination int, attacked Piece) Move {
	return Move{kind: PawnAttackMove, board: b, movedPiece: moved, destination: destination, attacked: attacked}
}

// NewPawnEnPassantAttackMove builds an en-passant capture. attacked stands
// beside the capturing pawn, not on destination.
func NewPawnEnPassantAttackMove(b *Board, moved Piece, destination int, attacked Piece) Move {
	return Move{kind: PawnEnPassantAttackMove, board: b, movedPiece: moved, destination: destination, attacked: attacked}
}

// NewKingSideCastleMove builds a castle towards the h-file rook.
func NewKingSideCastleMove(b *Board, king Piece, destination int, rook Piece, rookStart, rookDestination int) Move {
	return Move{
		kind:                  KingSideCastleMove,
		board:                 b,
		movedPiece:            king,
		destination:           destination,
		castleRook:            rook,
		castleRookStart:       rookStart,
		castleRookDestination: rookDestination,
	}
}

// NewQueenSideCastleMove builds a castle towards the a-file rook.
func NewQueenSideCastleMove(b *Board, king Piece, destination int, rook Piece, rookStart, rookDestination int) Move {
	return Move{
		kind:                  QueenSideCastleMove,
		board:                 b,
		movedPiece:            king,
		destination:           destination,
		castleRook:            rook,
		castleRookStart:       rookStart,
		castleRookDestination: rookDestination,
	}
}

// Kind returns the variant tag.
func (m Move) Kind() MoveKind { return m.kind }

// Board is the position the move was generated on.
func (m Move) Board() *Board { return m.board }

// MovedPiece returns the piece as it stands before the move.
func (m Move) MovedPiece() Piece { return m.movedPiece }

// CurrentCoordinate is the tile the moved piece starts from, -1 for NullMove.
func (m Move) CurrentCoordinate() int {
	if m.kind == NullMoveKind {
		return -1
	}
	return m.movedPiece.Position()
}

// DestinationCoordinate is the tile the moved piece lands on, -1 for NullMove.
func (m Move) DestinationCoordinate() int { return m.destination }

// IsNull reports whether m is the NullMove sentinel.
func (m Move) IsNull() bool { return m.kind == NullMoveKind }

// IsAttack reports whether the move captures a piece.
func (m Move) IsAttack() bool {
	switch m.kind {
	case MajorAttackMove, PawnAttackMove, PawnEnPassantAttackMove:
		return true
	}
	return false
}

// IsCastlingMove reports a king- or queen-side castle.
func (m Move) IsCastlingMove() bool {
	return m.kind == KingSideCastleMove || m.kind == QueenSideCastleMove
}

// AttackedPiece returns the captured piece, or NoPiece for quiet moves.
func (m Move) AttackedPiece() Piece { return m.attacked }

// CastleRook returns the rook taking part in a castle.
func (m Move) CastleRook() Piece { return m.castleRook }

// CastleRookStart is the rook's tile before the castle.
func (m Move) CastleRookStart() int { return m.castleRookStart }

// CastleRookDestination is the rook's tile after the castle.
func (m Move) CastleRookDestination() int { return m.castleRookDestination }

// Equal reports whether two moves are the same move: same destination and
// same moved piece. Captures additionally need the same captured piece, and a
// capture never equals a quiet move.
func (m Move) Equal(o Move) bool {
	if m.kind == NullMoveKind || o.kind == NullMoveKind {
		return m.kind == o.kind
	}
	if m.destination != o.destination || m.movedPiece != o.movedPiece {
		return false
	}
	if m.IsAttack() || o.IsAttack() {
		return m.IsAttack() && o.IsAttack() && m.attacked == o.attacked
	}
	return true
}

// Hash is consistent with Equal.
func (m Move) Hash() uint64 {
	const prime = 31
	h := uint64(1)
	h = prime*h + uint64(m.destination+1)
	h = prime*h + pieceHash(m.movedPiece)
	if m.IsAttack() {
		h += pieceHash(m.attacked) + 1
	}
	return h
}

func pieceHash(p Piece) uint64 {
	h := uint64(p.kind)
	h = h<<1 | uint64(p.alliance)
	h = h<<7 | uint64(p.position&0x7F)
	if p.firstMove {
		h = h<<1 | 1
	} else {
		h <<= 1
	}
	return h
}

// Execute applies the move to its board and returns the resulting board. It
// panics for NullMove.
func (m Move) Execute() *Board {
	switch m.kind {
	case NullMoveKind:
		panic(ErrNullMoveExecution)
	case KingSideCastleMove, QueenSideCastleMove:
		return m.executeCastle()
	case PawnJump:
		return m.executeStandard(true)
	default:
		return m.executeStandard(false)
	}
}

func (m Move) executeStandard(markEnPassant bool) *Board {
	mover := m.movedPiece.Alliance()
	bl := NewBuilder()
	for _, p := range m.board.activePieces(mover) {
		if p != m.movedPiece {
			bl.SetPiece(p)
		}
	}
	captured := m.IsAttack()
	for _, p := range m.board.activePieces(mover.Opponent()) {
		if captured && p == m.attacked {
			continue
		}
		bl.SetPiece(p)
	}
	moved := m.movedPiece.Moved(m.destination)
	bl.SetPiece(moved)
	if markEnPassant {
		bl.SetEnPassantPawn(moved)
	}
	bl.SetMoveMaker(mover.Opponent())
	return bl.MustBuild()
}

func (m Move) executeCastle() *Board {
	mover := m.movedPiece.Alliance()
	bl := NewBuilder()
	for _, p := range m.board.activePieces(mover) {
		if p != m.movedPiece && p != m.castleRook {
			bl.SetPiece(p)
		}
	}
	for _, p := range m.board.activePieces(mover.Opponent()) {
		bl.SetPiece(p)
	}
	bl.SetPiece(m.movedPiece.Moved(m.destination))
	bl.SetPiece(NewPieceWithFirstMove(Rook, m.castleRook.Alliance(), m.castleRookDestination, false))
	bl.SetMoveMaker(mover.Opponent())
	return bl.MustBuild()
}

// Coordinates renders the move as origin and destination tiles, e.g. "e2e4".
func (m Move) Coordinates() string {
	if m.kind == NullMoveKind {
		return "0000"
	}
	return TileName(m.CurrentCoordinate()) + TileName(m.destination)
}

// String returns "O-O" or "O-O-O" for castles and coordinates otherwise.
func (m Move) String() string {
	switch m.kind {
	case KingSideCastleMove:
		return "O-O"
	case QueenSideCastleMove:
		return "O-O-O"
	}
	return m.Coordinates()
}

// CreateMove looks up the legal move of board going from current to
// destination. It returns NullMove when there is none.
func CreateMove(b *Board, current, destination int) Move {
	for _, m := range b.AllLegalMoves() {
		if m.CurrentCoordinate() == current && m.DestinationCoordinate() == destination {
			return m
		}
	}
	return NullMove
}

// CreateMoveFromNotation is CreateMove for coordinate notation such as "g1f3".
func CreateMoveFromNotation(b *Board, notation string) (Move, error) {
	if len(notation) != 4 {
		return NullMove, fmt.Errorf("%w: %q", ErrUnknownTile, notation)
	}
	from, err := TileIndex(notation[:2])
	if err != nil {
		return NullMove, err
	}
	to, err := TileIndex(notation[2:])
	if err != nil {
		return NullMove, err
	}
	return CreateMove(b, from, to), nil
}
