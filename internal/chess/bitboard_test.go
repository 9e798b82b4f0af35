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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardPushPopSquare(t *testing.T) {
	var b Bitboard
	b = b.PushSquare(SqD4)
	assert.True(t, b.Has(SqD4))
	b = b.PopSquare(SqD4)
	assert.False(t, b.Has(SqD4))
	assert.Equal(t, BbZero, b)
}

func TestBitboardPopLsbDrainsInAscendingOrder(t *testing.T) {
	b := SqH8.Bb() | SqA8.Bb() | SqD4.Bb()
	var got []Square
	for b != BbZero {
		got = append(got, b.PopLsb())
	}
	assert.Equal(t, []Square{SqA8, SqH8, SqD4}, got)
	assert.Equal(t, SqNone, b.PopLsb())
}

func TestBitboardPopCount(t *testing.T) {
	var b Bitboard
	assert.Equal(t, 0, b.PopCount())
	b = b.PushSquare(SqA1).PushSquare(SqH8).PushSquare(SqD4)
	assert.Equal(t, 3, b.PopCount())
}

func TestBitboardLsbMsbOnEmptyBoard(t *testing.T) {
	var b Bitboard
	assert.Equal(t, SqNone, b.Lsb())
	assert.Equal(t, SqNone, b.Msb())
}

func TestFileAndRankMasksCoverEverySquareExactlyOnce(t *testing.T) {
	var union Bitboard
	for f := FileA; f <= FileH; f++ {
		union |= FileBb[f]
	}
	assert.Equal(t, BbAll, union)

	var seen Bitboard
	for r := Rank0; r <= Rank7; r++ {
		assert.Equal(t, 8, RankBb[r].PopCount())
		seen |= RankBb[r]
	}
	assert.Equal(t, BbAll, seen)
}
