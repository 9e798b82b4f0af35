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

import "github.com/dkhenry/bitmax/internal/chess"

// magic holds the perfect-hash parameters for one square's slider table:
// occupancy is masked and multiplied by number, then shifted down to an
// index into the shared attacks slice at offset.
type magic struct {
	mask   chess.Bitboard
	number chess.Bitboard
	shift  uint
	offset int
}

func (m *magic) index(occupied chess.Bitboard) int {
	occ := occupied & m.mask
	occ *= m.number
	occ >>= m.shift
	return m.offset + int(occ)
}

const (
	rookTableSize   = 102400
	bishopTableSize = 5248
)

var (
	rookMagics   [chess.SqLength]magic
	bishopMagics [chess.SqLength]magic
	rookTable    [rookTableSize]chess.Bitboard
	bishopTable  [bishopTableSize]chess.Bitboard
)

var rookDirections = [4]chess.Direction{chess.North, chess.South, chess.East, chess.West}
var bishopDirections = [4]chess.Direction{chess.Northeast, chess.Northwest, chess.Southeast, chess.Southwest}

func init() {
	initSliderMagics(rookDirections[:], rookMagics[:], rookTable[:])
	initSliderMagics(bishopDirections[:], bishopMagics[:], bishopTable[:])
}

// RookAttacks returns the rook attack set from sq given the full board
// occupancy (own pieces included - callers mask those out themselves).
func RookAttacks(sq chess.Square, occupied chess.Bitboard) chess.Bitboard {
	m := &rookMagics[sq]
	return rookTable[m.index(occupied)]
}

// BishopAttacks returns the bishop attack set from sq given occupied.
func BishopAttacks(sq chess.Square, occupied chess.Bitboard) chess.Bitboard {
	m := &bishopMagics[sq]
	return bishopTable[m.index(occupied)]
}

// QueenAttacks returns the union of rook and bishop attacks from sq.
func QueenAttacks(sq chess.Square, occupied chess.Bitboard) chess.Bitboard {
	return RookAttacks(sq, occupied) | BishopAttacks(sq, occupied)
}

// slidingAttack ray-casts along directions from sq against occupied,
// stopping (inclusive) at the first occupied square in each direction.
func slidingAttack(directions []chess.Direction, sq chess.Square, occupied chess.Bitboard) chess.Bitboard {
	var attack chess.Bitboard
	for _, d := range directions {
		s := sq
		for {
			s = s.To(d)
			if !s.IsValid() {
				break
			}
			attack = attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// edgeMask returns the board-edge squares not on sq's own file or rank -
// these never belong to a relevant blocker mask since a slider's attack
// always reaches the edge regardless of what sits there.
func edgeMask(sq chess.Square) chess.Bitboard {
	ranks := (chess.RankBb[chess.Rank0] | chess.RankBb[chess.Rank7]) &^ chess.RankBb[sq.RankOf()]
	files := (chess.FileBb[chess.FileA] | chess.FileBb[chess.FileH]) &^ chess.FileBb[sq.FileOf()]
	return ranks | files
}

// initSliderMagics fills magics and table for one piece type (rook or
// bishop), enumerating every blocker subset via the Carry-Rippler trick and
// searching for a magic multiplier with a sparse pseudo-random generator,
// the same approach Stockfish popularized for "fancy" magic bitboards.
func initSliderMagics(directions []chess.Direction, magics []magic, table []chess.Bitboard) {
	// seeds chosen empirically to keep the search fast; indexed by rank.
	seeds := [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	var occupancy, reference [4096]chess.Bitboard
	var epoch [4096]int
	offset := 0

	for sq := chess.SqA8; sq < chess.SqLength; sq++ {
		m := &magics[sq]
		m.mask = slidingAttack(directions, sq, chess.BbZero) &^ edgeMask(sq)
		m.shift = uint(64 - m.mask.PopCount())
		m.offset = offset

		size := 0
		var b chess.Bitboard
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(directions, sq, b)
			size++
			b = (b - m.mask) & m.mask
			if b == 0 {
				break
			}
		}

		rng := newPrnG(seeds[sq.RankOf()])
		cnt := 0
		for i := 0; i < size; {
			for {
				m.number = chess.Bitboard(rng.sparseRand())
				if ((m.number * m.mask) >> 56).PopCount() >= 6 {
					continue
				}
				break
			}
			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i]) - m.offset
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					table[m.offset+idx] = reference[i]
				} else if table[m.offset+idx] != reference[i] {
					break
				}
			}
		}

		offset += size
	}
}

// prnG is the xorshift64star generator Stockfish uses to search for magic
// numbers: a single 64-bit state, period 2^64-1, no warm-up required.
type prnG struct {
	s uint64
}

func newPrnG(seed uint64) *prnG {
	return &prnG{s: seed}
}

func (r *prnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand returns a value with roughly 1/8th of its bits set on
// average, which converges to a valid magic much faster than rand64.
func (r *prnG) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
