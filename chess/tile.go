package chess

import "fmt"

const (
	NumTiles       = 64
	NumTilesPerRow = 8
)

// Tile is one square of a board snapshot.
type Tile struct {
	coordinate int
	piece      Piece
}

func (t Tile) Coordinate() int { return t.coordinate }

// Occupied reports whether a piece stands on the tile.
func (t Tile) Occupied() bool { return !t.piece.IsNone() }

// Piece returns the occupant or NoPiece.
func (t Tile) Piece() Piece { return t.piece }

func (t Tile) String() string {
	if !t.Occupied() {
		return "-"
	}
	return string(t.piece.Symbol())
}

// IsValidTile reports whether coordinate addresses a tile.
func IsValidTile(coordinate int) bool {
	return coordinate >= 0 && coordinate < NumTiles
}

// Row is the row of a tile counted from Black's back rank (row 0 = rank 8).
func Row(coordinate int) int { return coordinate / NumTilesPerRow }

// Column is the file of a tile (0 = a).
func Column(coordinate int) int { return coordinate % NumTilesPerRow }

func tileAt(row, column int) (int, bool) {
	if row < 0 || row >= NumTilesPerRow || column < 0 || column >= NumTilesPerRow {
		return 0, false
	}
	return row*NumTilesPerRow + column, true
}

// TileName converts a coordinate to algebraic notation: 0 -> "a8", 63 -> "h1".
func TileName(coordinate int) string {
	if !IsValidTile(coordinate) {
		return "??"
	}
	return string([]byte{'a' + byte(Column(coordinate)), '8' - byte(Row(coordinate))})
}

// TileIndex converts algebraic notation ("e2") to a coordinate.
func TileIndex(name string) (int, error) {
	if len(name) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTile, name)
	}
	file, rank := name[0], name[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTile, name)
	}
	return int('8'-rank)*NumTilesPerRow + int(file-'a'), nil
}
