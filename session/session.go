// Package session runs a line-based command loop over a chess board. It is
// meant for manual play and for scripting positions from a shell.
package session

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"chess-core/chess"
	"chess-core/fen"
	"chess-core/perft"
)

// Session holds the current board and writes replies to out.
type Session struct {
	board *chess.Board
	out   io.Writer
	cache *chess.StatusCache
}

func New(out io.Writer) *Session {
	return &Session{board: chess.StandardBoard(), out: out, cache: chess.NewStatusCache()}
}

// Board returns the current position.
func (s *Session) Board() *chess.Board { return s.board }

// Run reads commands from in until EOF or "quit".
func (s *Session) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}
		if !s.Exec(tokens) {
			return nil
		}
	}
	return scanner.Err()
}

// Exec runs one command. It returns false when the session should end.
func (s *Session) Exec(tokens []string) bool {
	switch strings.ToLower(tokens[0]) {
	case "quit":
		return false
	case "isready":
		s.println("readyok")
	case "new":
		s.board = chess.StandardBoard()
	case "position":
		if err := s.position(tokens[1:]); err != nil {
			s.println("error", err)
		}
	case "move":
		for _, n := range tokens[1:] {
			if err := s.move(n); err != nil {
				s.println("error", err)
				break
			}
		}
	case "d":
		fmt.Fprint(s.out, s.board.String())
		s.println("fen", fen.Encode(s.board))
	case "fen":
		s.println(fen.Encode(s.board))
	case "legal":
		s.legal()
	case "status":
		s.println(s.cache.Status(s.board))
	case "perft":
		s.perft(tokens[1:])
	default:
		s.println("unknown command", tokens[0])
	}
	return true
}

// position startpos [moves ...] | position fen <fen> [moves ...]
func (s *Session) position(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("position: missing startpos or fen")
	}
	var moves []string
	for i, a := range args {
		if a == "moves" {
			moves = args[i+1:]
			args = args[:i]
			break
		}
	}
	var b *chess.Board
	switch args[0] {
	case "startpos":
		b = chess.StandardBoard()
	case "fen":
		var err error
		b, err = fen.Decode(strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("position: unknown kind %q", args[0])
	}
	s.board = b
	for _, n := range moves {
		if err := s.move(n); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) move(notation string) error {
	m, err := chess.CreateMoveFromNotation(s.board, notation)
	if err != nil {
		return err
	}
	t := s.board.CurrentPlayer().MakeMove(m)
	if !t.Status().IsDone() {
		return fmt.Errorf("%s: %s", notation, t.Status())
	}
	s.board = t.Board()
	s.println("ok", m)
	if st := s.cache.Status(s.board); st != chess.Ongoing {
		s.println("status", st)
	}
	return nil
}

// legal lists the moves of the side to move that complete, in generation
// order.
func (s *Session) legal() {
	p := s.board.CurrentPlayer()
	var names []string
	for _, m := range p.LegalMoves() {
		if p.MakeMove(m).Status().IsDone() {
			names = append(names, m.String())
		}
	}
	s.println(strings.Join(names, " "))
}

func (s *Session) perft(args []string) {
	depth := 1
	if len(args) > 0 {
		d, err := strconv.Atoi(args[0])
		if err != nil || d < 0 {
			s.println("error perft: bad depth", args[0])
			return
		}
		depth = d
	}
	div := perft.Divide(s.board, depth)
	for _, mv := range perft.SortedMoves(div) {
		s.println(fmt.Sprintf("%s: %d", mv, div[mv]))
	}
	s.println("Total:", perft.Total(div))
}

func (s *Session) println(a ...any) { fmt.Fprintln(s.out, a...) }
