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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkhenry/bitmax/internal/board"
	"github.com/dkhenry/bitmax/internal/chess"
)

func startingBoard() *board.Board {
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
	return b
}

func TestGenerateStartingPositionMoveCount(t *testing.T) {
	b := startingBoard()
	res := Generate(b, chess.White, chess.CastlingNone)
	assert.Len(t, res.Moves, 20)
}

func TestGenerateFiltersMovesIntoCheck(t *testing.T) {
	b := board.New()
	b.PlaceSquare(chess.Piece{Color: chess.White, Type: chess.King}, chess.SqE1)
	b.PlaceSquare(chess.Piece{Color: chess.White, Type: chess.Rook}, chess.SqE2)
	b.PlaceSquare(chess.Piece{Color: chess.Black, Type: chess.Rook}, chess.SqE8)
	b.PlaceSquare(chess.Piece{Color: chess.Black, Type: chess.King}, chess.SqA8)

	res := Generate(b, chess.White, chess.CastlingNone)
	for _, m := range res.Moves {
		if m.From == chess.SqE2 {
			assert.Equal(t, chess.FileE, m.To.FileOf(), "pinned rook must not move off the e-file")
		}
	}
}

func TestGenerateCastlingRequiresClearPathAndSafety(t *testing.T) {
	b := board.New()
	b.PlaceSquare(chess.Piece{Color: chess.White, Type: chess.King}, chess.SqE1)
	b.PlaceSquare(chess.Piece{Color: chess.White, Type: chess.Rook}, chess.SqH1)
	b.PlaceSquare(chess.Piece{Color: chess.White, Type: chess.Rook}, chess.SqA1)
	b.PlaceSquare(chess.Piece{Color: chess.Black, Type: chess.King}, chess.SqA8)

	res := Generate(b, chess.White, chess.CastlingAll)
	found := map[chess.CastleSide]bool{}
	for _, m := range res.Moves {
		if m.Kind == chess.CastleMove {
			found[m.CastleSide] = true
		}
	}
	assert.True(t, found[chess.CastleKingside])
	assert.True(t, found[chess.CastleQueenside])
}

func TestGenerateCastlingBlockedByAttackedSquare(t *testing.T) {
	b := board.New()
	b.PlaceSquare(chess.Piece{Color: chess.White, Type: chess.King}, chess.SqE1)
	b.PlaceSquare(chess.Piece{Color: chess.White, Type: chess.Rook}, chess.SqH1)
	b.PlaceSquare(chess.Piece{Color: chess.Black, Type: chess.Rook}, chess.SqF8)
	b.PlaceSquare(chess.Piece{Color: chess.Black, Type: chess.King}, chess.SqA8)

	res := Generate(b, chess.White, chess.CastlingAll)
	for _, m := range res.Moves {
		assert.False(t, m.Kind == chess.CastleMove && m.CastleSide == chess.CastleKingside,
			"f1 is attacked, kingside castle must be illegal")
	}
}

// Rights only record "not yet forfeited by a move"; a position set up with
// the king off e1 must still never castle.
func TestGenerateNoCastlingWhenKingOffOriginSquare(t *testing.T) {
	b := board.New()
	b.PlaceSquare(chess.Piece{Color: chess.White, Type: chess.King}, chess.SqD1)
	b.PlaceSquare(chess.Piece{Color: chess.White, Type: chess.Rook}, chess.SqA1)
	b.PlaceSquare(chess.Piece{Color: chess.White, Type: chess.Rook}, chess.SqH1)
	b.PlaceSquare(chess.Piece{Color: chess.Black, Type: chess.King}, chess.SqA8)

	res := Generate(b, chess.White, chess.CastlingAll)
	for _, m := range res.Moves {
		assert.NotEqual(t, chess.CastleMove, m.Kind)
	}
}

func TestAttackedSquaresKnight(t *testing.T) {
	b := board.New()
	b.PlaceSquare(chess.Piece{Color: chess.White, Type: chess.Knight}, chess.SqG1)
	att := AttackedSquares(b, chess.White)
	assert.True(t, att.Has(chess.SqF3))
	assert.True(t, att.Has(chess.SqH3))
	assert.True(t, att.Has(chess.SqE2))
}

func TestGenerateStartingPositionBlackToMove(t *testing.T) {
	b := startingBoard()
	res := Generate(b, chess.Black, chess.CastlingNone)
	assert.Len(t, res.Moves, 20)
}

// rnbqkbnr/pppppppp/8/8/8/3P4/PPP1PPPP/RNBQKBNR, white to move: 26 legal
// moves - the d-pawn opens a diagonal for the c1 bishop and a square for
// the b1 knight on top of the usual starting-position total.
func TestGenerateAfterPawnD3Opening(t *testing.T) {
	b := startingBoard()
	b.Apply(chess.NewStandardMove(chess.Piece{Color: chess.White, Type: chess.Pawn}, chess.SqD2, chess.SqD3))
	res := Generate(b, chess.White, chess.CastlingNone)
	assert.Len(t, res.Moves, 26)
}

func TestGenerateBareBishopOnEmptyBoard(t *testing.T) {
	b := board.New()
	b.PlaceSquare(chess.Piece{Color: chess.White, Type: chess.King}, chess.SqH1)
	b.PlaceSquare(chess.Piece{Color: chess.Black, Type: chess.King}, chess.SqA8)
	b.PlaceSquare(chess.Piece{Color: chess.White, Type: chess.Bishop}, chess.SqD4)

	res := Generate(b, chess.White, chess.CastlingNone)
	bishopMoves := 0
	for _, m := range res.Moves {
		if m.Piece.Type == chess.Bishop {
			bishopMoves++
		}
	}
	assert.Equal(t, 13, bishopMoves)
}

// A lone back rank "R3K2R" with no prior king/rook moves: both castles
// plus 5 non-castling king moves (d1, d2, e2, f2, f1 are all free).
func TestGenerateBackRankRookKingRookCastleAndKingMoves(t *testing.T) {
	b := board.New()
	b.PlaceSquare(chess.Piece{Color: chess.White, Type: chess.Rook}, chess.SqA1)
	b.PlaceSquare(chess.Piece{Color: chess.White, Type: chess.King}, chess.SqE1)
	b.PlaceSquare(chess.Piece{Color: chess.White, Type: chess.Rook}, chess.SqH1)
	b.PlaceSquare(chess.Piece{Color: chess.Black, Type: chess.King}, chess.SqA8)

	res := Generate(b, chess.White, chess.CastlingAll)
	castles, kingMoves := 0, 0
	for _, m := range res.Moves {
		switch {
		case m.Kind == chess.CastleMove:
			castles++
		case m.Piece.Type == chess.King:
			kingMoves++
		}
	}
	assert.Equal(t, 2, castles)
	assert.Equal(t, 5, kingMoves)
}

// The white pawn on c7 has four promotions to c8; the black pawn on f2,
// not on move, contributes none.
func TestGeneratePromotionsOnlyForSideToMove(t *testing.T) {
	b := board.New()
	b.PlaceSquare(chess.Piece{Color: chess.White, Type: chess.King}, chess.SqA1)
	b.PlaceSquare(chess.Piece{Color: chess.Black, Type: chess.King}, chess.SqA8)
	b.PlaceSquare(chess.Piece{Color: chess.White, Type: chess.Pawn}, chess.SqC7)
	b.PlaceSquare(chess.Piece{Color: chess.Black, Type: chess.Pawn}, chess.SqF2)

	res := Generate(b, chess.White, chess.CastlingNone)
	promotions := 0
	for _, m := range res.Moves {
		if m.Kind == chess.PromotionMove {
			promotions++
			assert.Equal(t, chess.SqC8, m.To)
		}
	}
	assert.Equal(t, 4, promotions)
}
