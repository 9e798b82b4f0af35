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

// Package evaluator scores a position from white's point of view: positive
// favors white, negative favors black. The score is the sum of material,
// piece-square table bonuses and mobility bonuses; the last two are
// toggleable through internal/config for isolating terms in tests, while
// material is always counted.
package evaluator

import (
	"github.com/op/go-logging"

	"github.com/dkhenry/bitmax/internal/attacks"
	"github.com/dkhenry/bitmax/internal/board"
	"github.com/dkhenry/bitmax/internal/chess"
	"github.com/dkhenry/bitmax/internal/config"
)

// Evaluator holds nothing but a logger - unlike a search, evaluation has no
// per-call mutable state, so one instance is shared and reused across an
// entire search tree.
type Evaluator struct {
	log *logging.Logger
}

// New creates an Evaluator that logs through log.
func New(log *logging.Logger) *Evaluator {
	return &Evaluator{log: log}
}

// Evaluate scores b. The result is deterministic and side-symmetric: a
// color-swapped mirror of b evaluates to the negation of this value.
func (e *Evaluator) Evaluate(b *board.Board) int {
	score := materialBalance(b)

	if config.Settings.Eval.UsePieceSquareTables {
		score += pieceSquareBalance(b)
	}
	if config.Settings.Eval.UseMobility {
		score += mobilityBalance(b)
	}

	return score
}

// pieceSquareBalance sums pieceSquareValue over every piece on the board,
// white positive, black negative.
func pieceSquareBalance(b *board.Board) int {
	balance := 0
	for c := chess.White; c <= chess.Black; c++ {
		sign := 1
		if c == chess.Black {
			sign = -1
		}
		for pt := chess.King; pt < chess.PtLength; pt++ {
			bb := b.Bb(c, pt)
			for bb != 0 {
				sq := bb.PopLsb()
				balance += sign * pieceSquareValue(c, pt, sq)
			}
		}
	}
	return balance
}

// mobilityBalance sums the mobility bonus for every knight, bishop, rook and
// queen on the board, white positive, black negative. Mobility is the
// number of squares the piece attacks, excluding squares held by its own
// side, matching the attack masks move generation builds in its first step.
func mobilityBalance(b *board.Board) int {
	balance := 0
	for c := chess.White; c <= chess.Black; c++ {
		sign := 1
		if c == chess.Black {
			sign = -1
		}
		own := b.OccupancyColor(c)
		occ := b.Occupancy()

		knights := b.Bb(c, chess.Knight)
		for knights != 0 {
			sq := knights.PopLsb()
			n := (attacks.KnightAttacks[sq] &^ own).PopCount()
			balance += sign * knightMobility[n]
		}
		bishops := b.Bb(c, chess.Bishop)
		for bishops != 0 {
			sq := bishops.PopLsb()
			n := (attacks.BishopAttacks(sq, occ) &^ own).PopCount()
			balance += sign * bishopMobility[n]
		}
		rooks := b.Bb(c, chess.Rook)
		for rooks != 0 {
			sq := rooks.PopLsb()
			n := (attacks.RookAttacks(sq, occ) &^ own).PopCount()
			balance += sign * rookMobility[n]
		}
		queens := b.Bb(c, chess.Queen)
		for queens != 0 {
			sq := queens.PopLsb()
			n := (attacks.QueenAttacks(sq, occ) &^ own).PopCount()
			balance += sign * queenMobility[n]
		}
	}
	return balance
}
