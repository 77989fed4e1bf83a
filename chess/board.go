package chess

import (
	"fmt"
	"strings"
)

// Board is an immutable position snapshot. It is produced by a Builder and
// never changes afterwards; executing a move yields a new Board.
type Board struct {
	tiles       [NumTiles]Tile
	whitePieces []Piece
	blackPieces []Piece
	moveMaker   Alliance
	enPassant   Piece

	whitePlayer *Player
	blackPlayer *Player

	hash uint64
}

// Tile returns the tile at coordinate. It panics if coordinate is off the board.
func (b *Board) Tile(coordinate int) Tile { return b.tiles[coordinate] }

// PieceAt returns the occupant of coordinate or NoPiece.
func (b *Board) PieceAt(coordinate int) Piece {
	if !IsValidTile(coordinate) {
		return NoPiece
	}
	return b.tiles[coordinate].piece
}

// Pieces returns the active pieces of one side ordered by tile.
func (b *Board) Pieces(a Alliance) []Piece {
	if a == White {
		return append([]Piece(nil), b.whitePieces...)
	}
	return append([]Piece(nil), b.blackPieces...)
}

func (b *Board) WhitePieces() []Piece { return b.Pieces(White) }

func (b *Board) BlackPieces() []Piece { return b.Pieces(Black) }

// AllPieces returns White's pieces followed by Black's.
func (b *Board) AllPieces() []Piece {
	all := make([]Piece, 0, len(b.whitePieces)+len(b.blackPieces))
	all = append(all, b.whitePieces...)
	return append(all, b.blackPieces...)
}

func (b *Board) activePieces(a Alliance) []Piece {
	if a == White {
		return b.whitePieces
	}
	return b.blackPieces
}

// MoveMaker is the side to move.
func (b *Board) MoveMaker() Alliance { return b.moveMaker }

// EnPassantPawn returns the pawn that may be captured en passant on this move.
func (b *Board) EnPassantPawn() (Piece, bool) {
	return b.enPassant, !b.enPassant.IsNone()
}

// WhitePlayer returns White's player.
func (b *Board) WhitePlayer() *Player { return b.whitePlayer }

// BlackPlayer returns Black's player.
func (b *Board) BlackPlayer() *Player { return b.blackPlayer }

// Player returns the player of the given side.
func (b *Board) Player(a Alliance) *Player {
	if a == White {
		return b.whitePlayer
	}
	return b.blackPlayer
}

// CurrentPlayer returns the player whose turn it is.
func (b *Board) CurrentPlayer() *Player { return b.Player(b.moveMaker) }

// AllLegalMoves returns White's legal moves followed by Black's.
func (b *Board) AllLegalMoves() []Move {
	all := make([]Move, 0, len(b.whitePlayer.legalMoves)+len(b.blackPlayer.legalMoves))
	all = append(all, b.whitePlayer.legalMoves...)
	return append(all, b.blackPlayer.legalMoves...)
}

// Hash returns the Zobrist key of the position.
func (b *Board) Hash() uint64 { return b.hash }

// String draws the board from White's point of view, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for i := 0; i < NumTiles; i++ {
		sb.WriteString(b.tiles[i].String())
		if (i+1)%NumTilesPerRow == 0 {
			sb.WriteByte('\n')
		} else {
			sb.WriteString("  ")
		}
	}
	return sb.String()
}

// Builder assembles a Board. A Builder must not be shared between goroutines
// and should be discarded after Build.
type Builder struct {
	config    map[int]Piece
	moveMaker Alliance
	enPassant Piece
}

// NewBuilder returns an empty builder with White to move.
func NewBuilder() *Builder {
	return &Builder{config: make(map[int]Piece, 32)}
}

// SetPiece places p on its own position, replacing any previous occupant.
func (bl *Builder) SetPiece(p Piece) *Builder {
	if p.IsNone() {
		return bl
	}
	bl.config[p.Position()] = p
	return bl
}

// SetMoveMaker sets the side to move.
func (bl *Builder) SetMoveMaker(a Alliance) *Builder {
	bl.moveMaker = a
	return bl
}

// SetEnPassantPawn marks the pawn that has just advanced two tiles.
func (bl *Builder) SetEnPassantPawn(p Piece) *Builder {
	bl.enPassant = p
	return bl
}

// Build validates the configuration and computes both players.
func (bl *Builder) Build() (*Board, error) {
	b := &Board{moveMaker: bl.moveMaker}
	for i := range b.tiles {
		b.tiles[i].coordinate = i
	}
	for pos, p := range bl.config {
		if !IsValidTile(pos) {
			return nil, fmt.Errorf("%w: %s on %d", ErrTileOutOfRange, string(p.Symbol()), pos)
		}
		b.tiles[pos].piece = p
	}

	var kings [2]int
	for i := 0; i < NumTiles; i++ {
		p := b.tiles[i].piece
		if p.IsNone() {
			continue
		}
		if p.Alliance() == White {
			b.whitePieces = append(b.whitePieces, p)
		} else {
			b.blackPieces = append(b.blackPieces, p)
		}
		if p.Type().IsKing() {
			kings[p.Alliance()]++
		}
	}
	for _, a := range []Alliance{White, Black} {
		if kings[a] == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoKing, a)
		}
	}

	if ep := bl.enPassant; !ep.IsNone() && IsValidTile(ep.Position()) && b.tiles[ep.Position()].piece == ep {
		b.enPassant = ep
	}

	whiteStandard := b.CalculateLegalMoves(b.whitePieces)
	blackStandard := b.CalculateLegalMoves(b.blackPieces)
	b.whitePlayer = newPlayer(b, White, whiteStandard, blackStandard)
	b.blackPlayer = newPlayer(b, Black, blackStandard, whiteStandard)

	b.hash = b.computeZobrist()
	return b, nil
}

// MustBuild is like Build but panics on an invalid configuration.
func (bl *Builder) MustBuild() *Board {
	b, err := bl.Build()
	if err != nil {
		panic(err)
	}
	return b
}

// StandardBoard returns the initial position with White to move.
func StandardBoard() *Board {
	bl := NewBuilder()
	backRank := [NumTilesPerRow]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col, kind := range backRank {
		bl.SetPiece(NewPiece(kind, Black, col))
		bl.SetPiece(NewPiece(Pawn, Black, NumTilesPerRow+col))
		bl.SetPiece(NewPiece(Pawn, White, 6*NumTilesPerRow+col))
		bl.SetPiece(NewPiece(kind, White, 7*NumTilesPerRow+col))
	}
	return bl.SetMoveMaker(White).MustBuild()
}
