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

// PawnPushSingle[c][sq] is the one-step advance square for a pawn of color
// c standing on sq, empty if sq is on the last rank for c.
//
// PawnPushDouble[c][sq] is the two-step advance square, set only when sq is
// on c's starting rank. Both tables encode geometry only - the move
// generator is responsible for checking that the intervening and landing
// squares are actually empty.
var (
	PawnPushSingle [chess.ColorLength][chess.SqLength]chess.Bitboard
	PawnPushDouble [chess.ColorLength][chess.SqLength]chess.Bitboard
	PawnAttacks    [chess.ColorLength][chess.SqLength]chess.Bitboard
)

func init() {
	for c := chess.White; c <= chess.Black; c++ {
		fwd := c.Forward()
		for sq := chess.SqA8; sq < chess.SqLength; sq++ {
			one := sq.To(fwd)
			if !one.IsValid() {
				continue
			}
			PawnPushSingle[c][sq] = PawnPushSingle[c][sq].PushSquare(one)

			if sq.RankOf() == c.StartRank() {
				two := one.To(fwd)
				if two.IsValid() {
					PawnPushDouble[c][sq] = PawnPushDouble[c][sq].PushSquare(two)
				}
			}

			var diag [2]chess.Direction
			if fwd == chess.North {
				diag = [2]chess.Direction{chess.Northeast, chess.Northwest}
			} else {
				diag = [2]chess.Direction{chess.Southeast, chess.Southwest}
			}
			for _, d := range diag {
				if to := sq.To(d); to.IsValid() {
					PawnAttacks[c][sq] = PawnAttacks[c][sq].PushSquare(to)
				}
			}
		}
	}
}
