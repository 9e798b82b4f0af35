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

package bitutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPopCount(t *testing.T) {
	assert.Equal(t, 0, PopCount(0))
	assert.Equal(t, 1, PopCount(1))
	assert.Equal(t, 64, PopCount(^uint64(0)))
}

func TestPopLSBClearsLowestBitAndReturnsItsIndex(t *testing.T) {
	b := uint64(0b1010)
	assert.Equal(t, 1, PopLSB(&b))
	assert.Equal(t, uint64(0b1000), b)
	assert.Equal(t, 3, PopLSB(&b))
	assert.Equal(t, uint64(0), b)
	assert.Equal(t, -1, PopLSB(&b))
}

func TestLsbMsbOnEmptyAndSingleBit(t *testing.T) {
	assert.Equal(t, -1, Lsb(0))
	assert.Equal(t, -1, Msb(0))
	assert.Equal(t, 5, Lsb(1<<5))
	assert.Equal(t, 5, Msb(1<<5))
	assert.Equal(t, 0, Lsb(0b1011))
	assert.Equal(t, 3, Msb(0b1011))
}

func TestFileOfAndRankOf(t *testing.T) {
	// square 10 = rank 1, file 2 (0-indexed, row-major, 8 files per rank).
	assert.Equal(t, 2, FileOf(10))
	assert.Equal(t, 1, RankOf(10))
}

func TestRayStopsAtBlockerInclusive(t *testing.T) {
	// from square 0 (file 0, rank 0) moving (+1, +1): diagonal 0,9,18,27...
	blockers := uint64(1) << 18
	ray := Ray(blockers, 0, 1, 1)
	assert.NotEqual(t, uint64(0), ray&(1<<9))
	assert.NotEqual(t, uint64(0), ray&(1<<18))
	assert.Equal(t, uint64(0), ray&(1<<27))
}

func TestRayStopsAtBoardEdge(t *testing.T) {
	// from square 0 moving (-1, 0): immediately off board.
	ray := Ray(0, 0, -1, 0)
	assert.Equal(t, uint64(0), ray)
}
