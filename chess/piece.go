package chess

// Alliance is the side a piece belongs to.
type Alliance uint8

const (
	White Alliance = 0
	Black Alliance = 1
)

// Opponent returns the other side.
func (a Alliance) Opponent() Alliance {
	if a == White {
		return Black
	}
	return White
}

// Direction is the tile-index step of a forward pawn move. White pawns move
// towards tile 0, Black pawns towards tile 63.
func (a Alliance) Direction() int {
	if a == White {
		return -1
	}
	return 1
}

func (a Alliance) String() string {
	if a == White {
		return "White"
	}
	return "Black"
}

// PieceType is a colorless representation of a chess piece.
type PieceType uint8

const (
	NoPieceType PieceType = 0
	Pawn        PieceType = 1
	Knight      PieceType = 2
	Bishop      PieceType = 3
	Rook        PieceType = 4
	Queen       PieceType = 5
	King        PieceType = 6
)

func (t PieceType) IsKing() bool { return t == King }

func (t PieceType) IsRook() bool { return t == Rook }

// String returns the upper-case letter used in FEN and diagrams.
func (t PieceType) String() string {
	switch t {
	case Pawn:
		return "P"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return "-"
	}
}

// Piece is an immutable piece value. Two pieces are the same piece when type,
// alliance, position and first-move flag all match, so Piece values compare
// with ==. The zero Piece means "no piece".
type Piece struct {
	kind      PieceType
	alliance  Alliance
	position  int
	firstMove bool
}

// NoPiece is the zero Piece.
var NoPiece = Piece{}

// NewPiece returns a piece that has not moved yet.
func NewPiece(kind PieceType, alliance Alliance, position int) Piece {
	return Piece{kind: kind, alliance: alliance, position: position, firstMove: true}
}

// NewPieceWithFirstMove lets callers restore a piece whose move history is
// known from elsewhere, e.g. FEN castling rights.
func NewPieceWithFirstMove(kind PieceType, alliance Alliance, position int, firstMove bool) Piece {
	return Piece{kind: kind, alliance: alliance, position: position, firstMove: firstMove}
}

func (p Piece) Type() PieceType { return p.kind }

func (p Piece) Alliance() Alliance { return p.alliance }

func (p Piece) Position() int { return p.position }

// IsFirstMove reports whether the piece has never moved.
func (p Piece) IsFirstMove() bool { return p.firstMove }

// IsNone reports whether p is the zero Piece.
func (p Piece) IsNone() bool { return p.kind == NoPieceType }

// Moved returns the piece as it stands after moving to destination.
func (p Piece) Moved(destination int) Piece {
	return Piece{kind: p.kind, alliance: p.alliance, position: destination, firstMove: false}
}

// Symbol is the FEN letter of the piece: upper case for White, lower case for Black.
func (p Piece) Symbol() rune {
	if p.IsNone() {
		return '.'
	}
	r := rune(p.kind.String()[0])
	if p.alliance == Black {
		r += 'a' - 'A'
	}
	return r
}

func (p Piece) String() string {
	if p.IsNone() {
		return "none"
	}
	return string(p.Symbol()) + "@" + TileName(p.position)
}
