// Package fen converts between FEN strings and chess boards. Parsing and
// validation of the FEN text is done by goosemg; this package maps the parsed
// position onto chess tiles and rebuilds first-move flags from the castling
// and en-passant fields.
package fen

import (
	"errors"
	"fmt"
	"strings"

	"chess-core/chess"

	"github.com/Oliverans/GooseEngineMG/goosemg"
)

// StartPos is the FEN of the standard initial position.
const StartPos = goosemg.FENStartPos

// ErrOpponentInCheck is returned for positions where the side that just moved
// left its king attacked. Such a position offers a king capture.
var ErrOpponentInCheck = errors.New("fen: side not to move is in check")

// goosemg numbers squares from a1 = 0; chess tiles start at a8 = 0.
func toTile(sq int) int {
	rank, file := sq/8, sq%8
	return (7-rank)*chess.NumTilesPerRow + file
}

func convertPiece(p goosemg.Piece) (chess.PieceType, chess.Alliance, bool) {
	switch p {
	case goosemg.WhitePawn:
		return chess.Pawn, chess.White, true
	case goosemg.WhiteKnight:
		return chess.Knight, chess.White, true
	case goosemg.WhiteBishop:
		return chess.Bishop, chess.White, true
	case goosemg.WhiteRook:
		return chess.Rook, chess.White, true
	case goosemg.WhiteQueen:
		return chess.Queen, chess.White, true
	case goosemg.WhiteKing:
		return chess.King, chess.White, true
	case goosemg.BlackPawn:
		return chess.Pawn, chess.Black, true
	case goosemg.BlackKnight:
		return chess.Knight, chess.Black, true
	case goosemg.BlackBishop:
		return chess.Bishop, chess.Black, true
	case goosemg.BlackRook:
		return chess.Rook, chess.Black, true
	case goosemg.BlackQueen:
		return chess.Queen, chess.Black, true
	case goosemg.BlackKing:
		return chess.King, chess.Black, true
	}
	return chess.NoPieceType, chess.White, false
}

// castle rights letters per side: king side, queen side.
var rightLetters = [2][2]byte{
	chess.White: {'K', 'Q'},
	chess.Black: {'k', 'q'},
}

var homeTiles = [2]struct{ king, kingRook, queenRook int }{
	chess.White: {king: 60, kingRook: 63, queenRook: 56},
	chess.Black: {king: 4, kingRook: 7, queenRook: 0},
}

var pawnRows = [2]int{chess.White: 6, chess.Black: 1}

func firstMove(kind chess.PieceType, a chess.Alliance, tile int, rights string) bool {
	home := homeTiles[a]
	kingSide := strings.IndexByte(rights, rightLetters[a][0]) >= 0
	queenSide := strings.IndexByte(rights, rightLetters[a][1]) >= 0
	switch kind {
	case chess.Pawn:
		return chess.Row(tile) == pawnRows[a]
	case chess.King:
		return tile == home.king && (kingSide || queenSide)
	case chess.Rook:
		return (tile == home.kingRook && kingSide) || (tile == home.queenRook && queenSide)
	}
	return false
}

// Decode builds a board from a FEN string. Halfmove and fullmove counters are
// accepted but not kept. Positions where the side not to move is in check
// are rejected with ErrOpponentInCheck.
func Decode(s string) (*chess.Board, error) {
	gb, err := goosemg.ParseFEN(strings.Join(strings.Fields(s), " "))
	if err != nil {
		return nil, fmt.Errorf("fen: %w", err)
	}
	// ToFEN gives canonical side, castling and en-passant fields.
	fields := strings.Fields(gb.ToFEN())
	if len(fields) < 4 {
		return nil, fmt.Errorf("fen: unexpected canonical form %q", gb.ToFEN())
	}
	side, rights, epField := fields[1], fields[2], fields[3]

	bl := chess.NewBuilder()
	for sq := 0; sq < chess.NumTiles; sq++ {
		kind, alliance, ok := convertPiece(gb.PieceAt(goosemg.Square(sq)))
		if !ok {
			continue
		}
		tile := toTile(sq)
		bl.SetPiece(chess.NewPieceWithFirstMove(kind, alliance, tile, firstMove(kind, alliance, tile, rights)))
	}

	mover := chess.White
	if side == "b" {
		mover = chess.Black
	}
	bl.SetMoveMaker(mover)

	if epField != "-" {
		target, err := chess.TileIndex(epField)
		if err != nil {
			return nil, fmt.Errorf("fen: en passant: %w", err)
		}
		jumper := mover.Opponent()
		pawnTile := target + chess.NumTilesPerRow*jumper.Direction()
		// The pawn is placed without a first move so Build keeps it as the
		// en-passant pawn only when it really stands there.
		if chess.IsValidTile(pawnTile) {
			bl.SetEnPassantPawn(chess.NewPieceWithFirstMove(chess.Pawn, jumper, pawnTile, false))
		}
	}

	b, err := bl.Build()
	if err != nil {
		return nil, fmt.Errorf("fen: %w", err)
	}
	if b.Player(mover.Opponent()).IsInCheck() {
		return nil, ErrOpponentInCheck
	}
	return b, nil
}

// MustDecode is like Decode but panics on invalid input.
func MustDecode(s string) *chess.Board {
	b, err := Decode(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Encode writes b as FEN. Castling rights are derived from unmoved kings and
// rooks on their home tiles; the move counters are always "0 1".
func Encode(b *chess.Board) string {
	var sb strings.Builder

	for row := 0; row < chess.NumTilesPerRow; row++ {
		empty := 0
		for col := 0; col < chess.NumTilesPerRow; col++ {
			p := b.PieceAt(row*chess.NumTilesPerRow + col)
			if p.IsNone() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteRune(p.Symbol())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if row < chess.NumTilesPerRow-1 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	if b.MoveMaker() == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	rights := castlingRights(b)
	if rights == "" {
		rights = "-"
	}
	sb.WriteString(rights)
	sb.WriteByte(' ')

	if ep, ok := b.EnPassantPawn(); ok {
		sb.WriteString(chess.TileName(ep.Position() - chess.NumTilesPerRow*ep.Alliance().Direction()))
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(" 0 1")
	return sb.String()
}

func castlingRights(b *chess.Board) string {
	unmoved := func(tile int, kind chess.PieceType, a chess.Alliance) bool {
		p := b.PieceAt(tile)
		return p.Type() == kind && p.Alliance() == a && p.IsFirstMove()
	}
	var sb strings.Builder
	for _, a := range []chess.Alliance{chess.White, chess.Black} {
		home := homeTiles[a]
		if !unmoved(home.king, chess.King, a) {
			continue
		}
		if unmoved(home.kingRook, chess.Rook, a) {
			sb.WriteByte(rightLetters[a][0])
		}
		if unmoved(home.queenRook, chess.Rook, a) {
			sb.WriteByte(rightLetters[a][1])
		}
	}
	return sb.String()
}
