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

package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkhenry/bitmax/internal/chess"
)

// For every square and every subset of its relevant blocker mask, the magic
// lookup must agree with a direct ray-cast against that occupancy.
func TestRookAttacksMatchRayCastForEverySubset(t *testing.T) {
	for sq := chess.SqA8; sq < chess.SqLength; sq++ {
		mask := slidingAttack(rookDirections[:], sq, chess.BbZero) &^ edgeMask(sq)
		var b chess.Bitboard
		for {
			want := slidingAttack(rookDirections[:], sq, b)
			got := RookAttacks(sq, b)
			assert.Equal(t, want, got, "square %s occupancy %#x", sq, uint64(b))
			b = (b - mask) & mask
			if b == 0 {
				break
			}
		}
	}
}

func TestBishopAttacksMatchRayCastForEverySubset(t *testing.T) {
	for sq := chess.SqA8; sq < chess.SqLength; sq++ {
		mask := slidingAttack(bishopDirections[:], sq, chess.BbZero) &^ edgeMask(sq)
		var b chess.Bitboard
		for {
			want := slidingAttack(bishopDirections[:], sq, b)
			got := BishopAttacks(sq, b)
			assert.Equal(t, want, got, "square %s occupancy %#x", sq, uint64(b))
			b = (b - mask) & mask
			if b == 0 {
				break
			}
		}
	}
}

func TestQueenAttacksIsUnionOfRookAndBishop(t *testing.T) {
	occ := chess.SqD4.Bb() | chess.SqD7.Bb() | chess.SqA4.Bb() | chess.SqG7.Bb()
	sq := chess.SqD4
	assert.Equal(t, RookAttacks(sq, occ)|BishopAttacks(sq, occ), QueenAttacks(sq, occ))
}

func TestRookAttacksFromCornerOnEmptyBoard(t *testing.T) {
	att := RookAttacks(chess.SqA1, chess.BbZero)
	assert.Equal(t, 14, att.PopCount())
	assert.True(t, att.Has(chess.SqA8))
	assert.True(t, att.Has(chess.SqH1))
}
