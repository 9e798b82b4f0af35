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

// Package attacks holds the precomputed jump tables and magic-bitboard
// lookup tables used by move generation: knight/king leaper tables, pawn
// push/attack tables and the rook/bishop/queen slider tables.
package attacks

import "github.com/dkhenry/bitmax/internal/chess"

// KnightAttacks[sq] and KingAttacks[sq] hold the full set of squares a
// knight or king standing on sq attacks, with no regard to occupancy.
var (
	KnightAttacks [chess.SqLength]chess.Bitboard
	KingAttacks   [chess.SqLength]chess.Bitboard
)

// knightOffsets and kingOffsets are expressed in (file, rank) space so that
// off-board destinations can be dropped before they wrap around a file.
var knightOffsets = [8][2]int{
	{1, -2}, {2, -1}, {2, 1}, {1, 2},
	{-1, 2}, {-2, 1}, {-2, -1}, {-1, -2},
}

var kingOffsets = [8][2]int{
	{1, -1}, {1, 0}, {1, 1}, {0, 1},
	{-1, 1}, {-1, 0}, {-1, -1}, {0, -1},
}

func init() {
	for sq := chess.SqA8; sq < chess.SqLength; sq++ {
		KnightAttacks[sq] = leaperAttacks(sq, knightOffsets[:])
		KingAttacks[sq] = leaperAttacks(sq, kingOffsets[:])
	}
}

func leaperAttacks(sq chess.Square, offsets [][2]int) chess.Bitboard {
	f, r := int(sq.FileOf()), int(sq.RankOf())
	var bb chess.Bitboard
	for _, off := range offsets {
		nf, nr := f+off[0], r+off[1]
		if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
			continue
		}
		bb = bb.PushSquare(chess.SquareOf(chess.File(nf), chess.Rank(nr)))
	}
	return bb
}
