//
// bitmax - a bitboard chess engine in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package game owns a Board, the side to move and the move history stack,
// and derives castling rights from that history on demand rather than
// tracking them incrementally.
package game

import (
	"fmt"

	"github.com/dkhenry/bitmax/internal/board"
	"github.com/dkhenry/bitmax/internal/chess"
	"github.com/dkhenry/bitmax/internal/movegen"
)

// Game is exclusively owned by one goroutine: make/undo calls must be
// strictly paired and LIFO, and there is no safe interleaving across
// threads.
type Game struct {
	Board      *board.Board
	SideToMove chess.Color
	History    []chess.Move
}

// New wraps b into a Game with side to move and an empty history.
func New(b *board.Board, side chess.Color) *Game {
	return &Game{Board: b, SideToMove: side}
}

// CastlingRights derives the current castling rights by scanning the move
// history from scratch: a king move clears both rights for its color, and a
// move from a rook's original square clears that side's right.
func (g *Game) CastlingRights() chess.CastlingRights {
	rights := chess.CastlingAll
	for _, m := range g.History {
		c := m.Piece.Color
		if m.Piece.Type == chess.King {
			rights = rights.Remove(chess.Right(c, chess.CastleKingside)).Remove(chess.Right(c, chess.CastleQueenside))
			continue
		}
		switch m.From {
		case chess.SqA1:
			rights = rights.Remove(chess.CastlingWhiteQueenside)
		case chess.SqH1:
			rights = rights.Remove(chess.CastlingWhiteKingside)
		case chess.SqA8:
			rights = rights.Remove(chess.CastlingBlackQueenside)
		case chess.SqH8:
			rights = rights.Remove(chess.CastlingBlackKingside)
		}
	}
	return rights
}

// LegalMoves generates the legal moves for the side to move.
func (g *Game) LegalMoves() movegen.Result {
	return movegen.Generate(g.Board, g.SideToMove, g.CastlingRights())
}

// Make applies m, pushes it onto the history and flips the side to move. m
// must be a member of LegalMoves(). isExternal controls how a move outside
// the legal set is reported: externally driven flows (UI input) pass true
// and get ErrIllegalMove from a fresh LegalMoves() scan, since the caller
// cannot be trusted to have checked first. Internal callers - search and
// perft, which only ever feed moves drawn from a LegalMoves() call they
// already made for that node - pass false and skip the scan entirely, so
// Make costs one Board.Apply rather than a second full move generation on
// top of the one the caller already paid for; a bad move from such a caller
// surfaces as board.ErrCorruptState out of Board.Apply itself, which is the
// right signal for a bug rather than untrusted input.
func (g *Game) Make(m chess.Move, isExternal bool) error {
	if isExternal && !g.isLegal(m) {
		return fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}
	if err := g.Board.Apply(m); err != nil {
		return err
	}
	g.History = append(g.History, m)
	g.SideToMove = g.SideToMove.Flip()
	return nil
}

// Undo reverts the most recent move and flips the side to move back. It is
// a programming error to call Undo on a Game with empty history.
func (g *Game) Undo() error {
	n := len(g.History)
	if n == 0 {
		return fmt.Errorf("%w: undo with empty history", board.ErrCorruptState)
	}
	m := g.History[n-1]
	if err := g.Board.Revert(m); err != nil {
		return err
	}
	g.History = g.History[:n-1]
	g.SideToMove = g.SideToMove.Flip()
	return nil
}

func (g *Game) isLegal(m chess.Move) bool {
	for _, candidate := range g.LegalMoves().Moves {
		if candidate == m {
			return true
		}
	}
	return false
}
