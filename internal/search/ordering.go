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

package search

import (
	"sort"

	"github.com/dkhenry/bitmax/internal/chess"
)

// category buckets a move for ordering: promotions first, then captures,
// then standard moves, castling last among real moves.
func category(m chess.Move) int {
	switch m.Kind {
	case chess.PromotionMove:
		return 0
	case chess.CaptureMove:
		return 1
	case chess.StandardMove:
		return 2
	case chess.CastleMove:
		return 3
	default:
		return 4
	}
}

// promotionRank orders promotion kinds queen > rook > bishop > knight;
// PieceType.OrdinalValue ties bishop and knight at 3, so ordering needs its
// own table here.
var promotionRank = map[chess.PieceType]int{
	chess.Queen:  3,
	chess.Rook:   2,
	chess.Bishop: 1,
	chess.Knight: 0,
}

// orderMoves sorts moves in place, best-first: promotions before captures
// before standard moves before castling; captures ranked by MVV/LVA
// (captured value minus mover value, descending); promotions ranked by
// promoted-to kind; ties broken by (from, to) to keep the order
// deterministic across runs.
func orderMoves(moves []chess.Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		a, b := moves[i], moves[j]
		ca, cb := category(a), category(b)
		if ca != cb {
			return ca < cb
		}
		switch ca {
		case 0:
			ra, rb := promotionRank[a.Promotion], promotionRank[b.Promotion]
			if ra != rb {
				return ra > rb
			}
		case 1:
			va := a.Captured.OrdinalValue() - a.Piece.Type.OrdinalValue()
			vb := b.Captured.OrdinalValue() - b.Piece.Type.OrdinalValue()
			if va != vb {
				return va > vb
			}
		}
		if a.From != b.From {
			return a.From < b.From
		}
		return a.To < b.To
	})
}
