// Package perft counts move-tree leaves for chess boards and cross-checks the
// counts against dragontoothmg.
package perft

import (
	"fmt"
	"sort"

	"chess-core/chess"
	"chess-core/fen"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/maps"
)

// Count returns the number of positions reachable from b in exactly depth
// plies. Only moves whose transition is Done are followed.
func Count(b *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	player := b.CurrentPlayer()
	var nodes uint64
	for _, m := range player.LegalMoves() {
		t := player.MakeMove(m)
		if !t.Status().IsDone() {
			continue
		}
		if depth == 1 {
			nodes++
			continue
		}
		nodes += Count(t.Board(), depth-1)
	}
	return nodes
}

// Divide returns the leaf count below each root move, keyed by coordinate
// notation ("e1g1" for White's king-side castle).
func Divide(b *chess.Board, depth int) map[string]uint64 {
	div := make(map[string]uint64)
	if depth <= 0 {
		return div
	}
	player := b.CurrentPlayer()
	for _, m := range player.LegalMoves() {
		t := player.MakeMove(m)
		if !t.Status().IsDone() {
			continue
		}
		div[m.Coordinates()] = Count(t.Board(), depth-1)
	}
	return div
}

// Total sums a divide.
func Total(div map[string]uint64) uint64 {
	var sum uint64
	for _, n := range div {
		sum += n
	}
	return sum
}

// SortedMoves returns the keys of a divide in lexical order.
func SortedMoves(div map[string]uint64) []string {
	keys := maps.Keys(div)
	sort.Strings(keys)
	return keys
}

// Reference computes a divide of the FEN position with dragontoothmg. Promotions
// appear with their piece suffix, e.g. "e7e8q".
func Reference(fenStr string, depth int) (div map[string]uint64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("perft: reference parse %q: %v", fenStr, r)
		}
	}()
	board := dragontoothmg.ParseFen(fenStr)
	div = make(map[string]uint64)
	if depth <= 0 {
		return div, nil
	}
	for _, m := range board.GenerateLegalMoves() {
		unapply := board.Apply(m)
		div[m.String()] = referenceCount(&board, depth-1)
		unapply()
	}
	return div, nil
}

func referenceCount(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += referenceCount(b, depth-1)
		unapply()
	}
	return nodes
}

// Mismatch is a root move whose count differs from the reference. A zero Got
// means the move was not generated; a zero Want means the reference does not
// know it.
type Mismatch struct {
	Move string
	Got  uint64
	Want uint64
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: got %d, want %d", m.Move, m.Got, m.Want)
}

// Compare divides the FEN position to depth with both generators and returns
// the differing root moves in lexical order.
func Compare(fenStr string, depth int) ([]Mismatch, error) {
	b, err := fen.Decode(fenStr)
	if err != nil {
		return nil, err
	}
	want, err := Reference(fenStr, depth)
	if err != nil {
		return nil, err
	}
	got := Divide(b, depth)

	union := make(map[string]uint64, len(want))
	for k := range want {
		union[k] = 0
	}
	for k := range got {
		union[k] = 0
	}

	var out []Mismatch
	for _, mv := range SortedMoves(union) {
		if got[mv] != want[mv] {
			out = append(out, Mismatch{Move: mv, Got: got[mv], Want: want[mv]})
		}
	}
	return out, nil
}
