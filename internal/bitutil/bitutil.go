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

// Package bitutil implements the raw 64-bit helpers shared by the attack
// table builder: population count, least/most significant bit extraction
// and an 8-direction ray walk. Nothing here knows about pieces or moves -
// it only operates on plain uint64 bitboards and 0..63 square indices so it
// can be used while the higher-level chess types are still being built.
package bitutil

import "math/bits"

// PopCount returns the number of set bits ("population count") in b.
func PopCount(b uint64) int {
	return bits.OnesCount64(b)
}

// PopLSB returns the index of the least significant set bit in *b and
// clears it. Returns -1 if b is empty.
func PopLSB(b *uint64) int {
	if *b == 0 {
		return -1
	}
	sq := bits.TrailingZeros64(*b)
	*b &= *b - 1
	return sq
}

// Lsb returns the index of the least significant set bit without
// modifying b. Returns -1 if b is empty.
func Lsb(b uint64) int {
	if b == 0 {
		return -1
	}
	return bits.TrailingZeros64(b)
}

// Msb returns the index of the most significant set bit in b.
// Returns -1 if b is empty.
func Msb(b uint64) int {
	if b == 0 {
		return -1
	}
	return 63 - bits.LeadingZeros64(b)
}

// FileOf returns the file (0=a .. 7=h) of a square index.
func FileOf(sq int) int {
	return sq & 7
}

// RankOf returns the row index (0=top rank .. 7=bottom rank) of a square index.
func RankOf(sq int) int {
	return sq >> 3
}

// Ray walks the board from square 'from' in the direction given by
// (fileDelta, rankDelta), setting every visited square, and stops as soon
// as it visits a square that is set in blockers (that square is included)
// or steps off the board. Used only at attack-table build time - not on
// any search hot path.
func Ray(blockers uint64, from int, fileDelta int, rankDelta int) uint64 {
	var ray uint64
	f, r := FileOf(from), RankOf(from)
	for {
		f += fileDelta
		r += rankDelta
		if f < 0 || f > 7 || r < 0 || r > 7 {
			break
		}
		sq := r*8 + f
		ray |= uint64(1) << uint(sq)
		if blockers&(uint64(1)<<uint(sq)) != 0 {
			break
		}
	}
	return ray
}
