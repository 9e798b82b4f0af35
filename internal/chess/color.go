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

package chess

import "fmt"

// Color is White or Black.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// ColorLength is the number of colors.
const ColorLength = 2

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid reports whether c is a valid color.
func (c Color) IsValid() bool {
	return c < 2
}

// String returns "w" or "b".
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		panic(fmt.Sprintf("invalid color %d", c))
	}
}

var forward = [ColorLength]Direction{North, South}

// Forward returns the pawn push direction for c.
func (c Color) Forward() Direction {
	return forward[c]
}

// promotionRank is the row index a pawn of color c promotes on.
var promotionRank = [ColorLength]Rank{Rank0, Rank7}

// PromotionRank returns the row index on which a pawn of color c promotes.
func (c Color) PromotionRank() Rank {
	return promotionRank[c]
}

// startRank is the row index pawns of color c start on.
var startRank = [ColorLength]Rank{Rank6, Rank1}

// StartRank returns the row index pawns of color c begin the game on.
func (c Color) StartRank() Rank {
	return startRank[c]
}

// backRank is the row index the king and rooks of color c start on.
var backRank = [ColorLength]Rank{Rank7, Rank0}

// BackRank returns the row index the king and rooks of color c start on,
// used for castling: king/rook home squares and the squares castling moves
// through all lie on this rank, not StartRank (which is the pawn row).
func (c Color) BackRank() Rank {
	return backRank[c]
}
