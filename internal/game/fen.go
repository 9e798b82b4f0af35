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
	"fmt"

	"github.com/dkhenry/bitmax/internal/board"
	"github.com/dkhenry/bitmax/internal/chess"
)

// LoadFEN parses the piece-placement field of a FEN string: ranks
// top-to-bottom, files left-to-right, digits 1-8 skip empty squares,
// PNBRQK/pnbrqk place pieces, any other character (including the '/' rank
// separators) is ignored. Parsing stops once 64 squares are filled. Full
// FEN - move counters, en passant, castling availability - is out of scope;
// side is passed separately.
func LoadFEN(placement string, side chess.Color) (*Game, error) {
	b := board.New()
	sq := chess.SqA8

	for i := 0; i < len(placement) && sq < chess.SqLength; i++ {
		c := placement[i]
		switch {
		case c >= '1' && c <= '8':
			sq += chess.Square(c - '0')
		default:
			if p, ok := chess.PieceFromChar(c); ok {
				b.PlaceSquare(p, sq)
				sq++
			}
		}
	}

	if err := validatePlacement(b); err != nil {
		return nil, err
	}
	return New(b, side), nil
}

// validatePlacement rejects placements no legal game can reach: a missing
// or duplicated king, or a pawn on either back rank.
func validatePlacement(b *board.Board) error {
	for _, c := range [2]chess.Color{chess.White, chess.Black} {
		if b.Bb(c, chess.King).PopCount() != 1 {
			return fmt.Errorf("%w: color %s must have exactly one king", ErrInvalidPosition, c)
		}
		pawns := b.Bb(c, chess.Pawn)
		if pawns&(chess.RankBb[chess.Rank0]|chess.RankBb[chess.Rank7]) != 0 {
			return fmt.Errorf("%w: color %s has a pawn on a back rank", ErrInvalidPosition, c)
		}
	}
	return nil
}
