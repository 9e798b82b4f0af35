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

// Square represents one square on the board: 0 is the top-left square
// (file a, rank 8), 63 is bottom-right (file h, rank 1).
type Square int8

//noinspection GoUnusedConst
const (
	SqA8 Square = iota
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA1
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqNone
	SqLength = SqNone
)

// IsValid reports whether sq represents a square on the board (sq < 64).
func (sq Square) IsValid() bool {
	return sq >= 0 && sq < SqNone
}

// FileOf returns the file of sq.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the row index of sq (0 = rank 8 .. 7 = rank 1).
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// SquareOf returns the square for a given file and row index, or SqNone if
// either is invalid.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(int(r)*8 + int(f))
}

// MakeSquare parses a square from algebraic notation (e.g. "e4"). Returns
// SqNone if s does not denote a valid square.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	file := File(s[0] - 'a')
	displayRank := int(s[1] - '0')
	if !file.IsValid() || displayRank < 1 || displayRank > 8 {
		return SqNone
	}
	return SquareOf(file, Rank(8-displayRank))
}

// To returns the square reached by stepping one square in direction d from
// sq, or SqNone if that step leaves the board.
func (sq Square) To(d Direction) Square {
	f := int(sq.FileOf()) + d.fileDelta()
	r := int(sq.RankOf()) + d.rankDelta()
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return SqNone
	}
	return Square(r*8 + f)
}

// String returns algebraic notation for sq (e.g. "e4"), or "-" if invalid.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}
