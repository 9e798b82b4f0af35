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

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkhenry/bitmax/internal/board"
	"github.com/dkhenry/bitmax/internal/chess"
)

func newStartingGame(side chess.Color) *Game {
	b := board.New()
	backRank := [8]chess.PieceType{
		chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
		chess.King, chess.Bishop, chess.Knight, chess.Rook,
	}
	for f := chess.FileA; f <= chess.FileH; f++ {
		b.PlaceSquare(chess.Piece{Color: chess.Black, Type: backRank[f]}, chess.SquareOf(f, chess.Rank0))
		b.PlaceSquare(chess.Piece{Color: chess.Black, Type: chess.Pawn}, chess.SquareOf(f, chess.Rank1))
		b.PlaceSquare(chess.Piece{Color: chess.White, Type: chess.Pawn}, chess.SquareOf(f, chess.Rank6))
		b.PlaceSquare(chess.Piece{Color: chess.White, Type: backRank[f]}, chess.SquareOf(f, chess.Rank7))
	}
	return New(b, side)
}

func TestPerftStartingPositionDepth1(t *testing.T) {
	g := newStartingGame(chess.White)
	assert.EqualValues(t, 20, Perft(g, 1))
}

func TestPerftStartingPositionDepth1BlackToMove(t *testing.T) {
	g := newStartingGame(chess.Black)
	assert.EqualValues(t, 20, Perft(g, 1))
}

// Known perft(2) for the starting position: every one of White's 20 replies
// is met by exactly 20 Black replies, since none of White's first moves
// change Black's mobility.
func TestPerftStartingPositionDepth2(t *testing.T) {
	g := newStartingGame(chess.White)
	assert.EqualValues(t, 400, Perft(g, 2))
}

func TestPerftRestoresBoardAfterCounting(t *testing.T) {
	g := newStartingGame(chess.White)
	before := g.Board.Occupancy()
	Perft(g, 2)
	assert.Equal(t, before, g.Board.Occupancy())
	assert.Empty(t, g.History)
	assert.Equal(t, chess.White, g.SideToMove)
}
