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

import (
	"strings"

	"github.com/dkhenry/bitmax/internal/bitutil"
)

// Bitboard is a 64-bit mask, one bit per square.
type Bitboard uint64

const (
	BbZero Bitboard = 0
	BbAll  Bitboard = ^Bitboard(0)
)

// Bb returns the single-bit Bitboard for sq.
func (sq Square) Bb() Bitboard {
	return Bitboard(1) << uint(sq)
}

// Has reports whether sq is set in b.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bb() != 0
}

// PushSquare sets sq in b and returns the result.
func (b Bitboard) PushSquare(sq Square) Bitboard {
	return b | sq.Bb()
}

// PopSquare clears sq in b and returns the result.
func (b Bitboard) PopSquare(sq Square) Bitboard {
	return b &^ sq.Bb()
}

// PopLsb returns the least significant set square in *b and clears it.
// Returns SqNone if b is empty.
func (b *Bitboard) PopLsb() Square {
	v := uint64(*b)
	sq := bitutil.PopLSB(&v)
	*b = Bitboard(v)
	if sq < 0 {
		return SqNone
	}
	return Square(sq)
}

// Lsb returns the least significant set square in b, or SqNone if empty.
func (b Bitboard) Lsb() Square {
	sq := bitutil.Lsb(uint64(b))
	if sq < 0 {
		return SqNone
	}
	return Square(sq)
}

// Msb returns the most significant set square in b, or SqNone if empty.
func (b Bitboard) Msb() Square {
	sq := bitutil.Msb(uint64(b))
	if sq < 0 {
		return SqNone
	}
	return Square(sq)
}

// PopCount returns the number of set squares in b.
func (b Bitboard) PopCount() int {
	return bitutil.PopCount(uint64(b))
}

// StringBoard renders b as an 8x8 ASCII board, top row = rank 8.
func (b Bitboard) StringBoard() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank0; r <= Rank7; r++ {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, r)) {
				sb.WriteString("| X ")
			} else {
				sb.WriteString("|   ")
			}
		}
		sb.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return sb.String()
}

// File/rank mask constants, built once at init.
var (
	FileBb [8]Bitboard
	RankBb [8]Bitboard
)

func init() {
	for f := FileA; f <= FileH; f++ {
		var m Bitboard
		for r := Rank0; r <= Rank7; r++ {
			m |= SquareOf(f, r).Bb()
		}
		FileBb[f] = m
	}
	for r := Rank0; r <= Rank7; r++ {
		var m Bitboard
		for f := FileA; f <= FileH; f++ {
			m |= SquareOf(f, r).Bb()
		}
		RankBb[r] = m
	}
}
