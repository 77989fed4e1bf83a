package chess

import "errors"

var (
	ErrNoKing            = errors.New("chess: no king on board")
	ErrTileOutOfRange    = errors.New("chess: tile out of range")
	ErrUnknownTile       = errors.New("chess: unknown tile name")
	ErrNullMoveExecution = errors.New("chess: cannot execute the null move")
)
