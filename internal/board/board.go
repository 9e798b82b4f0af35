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

// Package board owns the twelve piece bitboards and the cached king
// squares, and knows how to apply and revert a single move against them.
// It has no notion of legality, turn order or history - that belongs to
// internal/game and internal/movegen.
package board

import (
	"errors"
	"fmt"

	"github.com/dkhenry/bitmax/internal/chess"
)

// ErrCorruptState is returned by Apply/Revert when a move cannot possibly
// have been legal against the current board - a bug in the caller, not a
// user-facing error.
var ErrCorruptState = errors.New("board: corrupt state")

// Board holds the twelve (color, piece kind) bitboards plus a king-square
// cache per color. The pieces array is indexed [color][pieceType]; the
// PtNone row is unused and always zero.
type Board struct {
	pieces     [chess.ColorLength][chess.PtLength]chess.Bitboard
	kingSquare [chess.ColorLength]chess.Square
}

// New returns an empty board with no pieces placed.
func New() *Board {
	b := &Board{}
	b.kingSquare[chess.White] = chess.SqNone
	b.kingSquare[chess.Black] = chess.SqNone
	return b
}

// PlaceSquare puts p on sq unconditionally, used only by setup code (FEN
// loading) - not a legality-checked move application.
func (b *Board) PlaceSquare(p chess.Piece, sq chess.Square) {
	b.pieces[p.Color][p.Type] = b.pieces[p.Color][p.Type].PushSquare(sq)
	if p.Type == chess.King {
		b.kingSquare[p.Color] = sq
	}
}

// Bb returns the raw bitboard for (color, pieceType).
func (b *Board) Bb(c chess.Color, pt chess.PieceType) chess.Bitboard {
	return b.pieces[c][pt]
}

// Occupancy returns every occupied square on the board.
func (b *Board) Occupancy() chess.Bitboard {
	return b.OccupancyColor(chess.White) | b.OccupancyColor(chess.Black)
}

// OccupancyColor returns every square occupied by a piece of color c.
func (b *Board) OccupancyColor(c chess.Color) chess.Bitboard {
	var bb chess.Bitboard
	for pt := chess.King; pt < chess.PtLength; pt++ {
		bb |= b.pieces[c][pt]
	}
	return bb
}

// PieceAt scans the twelve masks in a fixed order (King, Pawn, Knight,
// Bishop, Rook, Queen; White then Black) and returns the piece on sq, if
// any.
func (b *Board) PieceAt(sq chess.Square) (chess.Piece, bool) {
	for c := chess.White; c <= chess.Black; c++ {
		for pt := chess.King; pt < chess.PtLength; pt++ {
			if b.pieces[c][pt].Has(sq) {
				return chess.Piece{Color: c, Type: pt}, true
			}
		}
	}
	return chess.Piece{}, false
}

// KingSquare returns the cached king square for c.
func (b *Board) KingSquare(c chess.Color) chess.Square {
	return b.kingSquare[c]
}

func (b *Board) set(c chess.Color, pt chess.PieceType, sq chess.Square) {
	b.pieces[c][pt] = b.pieces[c][pt].PushSquare(sq)
	if pt == chess.King {
		b.kingSquare[c] = sq
	}
}

func (b *Board) clear(c chess.Color, pt chess.PieceType, sq chess.Square) {
	b.pieces[c][pt] = b.pieces[c][pt].PopSquare(sq)
}

// rookSquares returns the rook's origin and destination squares for a
// castle move, derived from the king's squares and side.
func rookSquares(m chess.Move) (from, to chess.Square) {
	rank := m.From.RankOf()
	if m.CastleSide == chess.CastleKingside {
		return chess.SquareOf(chess.FileH, rank), chess.SquareOf(chess.FileF, rank)
	}
	return chess.SquareOf(chess.FileA, rank), chess.SquareOf(chess.FileD, rank)
}

// Apply mutates b according to m's variant. It fails with ErrCorruptState
// if the mover's bit is not set on From, or if a same-color piece already
// occupies To.
func (b *Board) Apply(m chess.Move) error {
	color := m.Piece.Color

	switch m.Kind {
	case chess.StandardMove:
		if !b.pieces[color][m.Piece.Type].Has(m.From) {
			return fmt.Errorf("%w: mover not on %s", ErrCorruptState, m.From)
		}
		if b.OccupancyColor(color).Has(m.To) {
			return fmt.Errorf("%w: own piece already on %s", ErrCorruptState, m.To)
		}
		b.clear(color, m.Piece.Type, m.From)
		b.set(color, m.Piece.Type, m.To)

	case chess.CaptureMove:
		if !b.pieces[color][m.Piece.Type].Has(m.From) {
			return fmt.Errorf("%w: mover not on %s", ErrCorruptState, m.From)
		}
		enemy := color.Flip()
		if !b.pieces[enemy][m.Captured].Has(m.To) {
			return fmt.Errorf("%w: captured piece not on %s", ErrCorruptState, m.To)
		}
		b.clear(enemy, m.Captured, m.To)
		b.clear(color, m.Piece.Type, m.From)
		b.set(color, m.Piece.Type, m.To)

	case chess.PromotionMove:
		if !b.pieces[color][chess.Pawn].Has(m.From) {
			return fmt.Errorf("%w: pawn not on %s", ErrCorruptState, m.From)
		}
		if m.Captured.IsValid() {
			enemy := color.Flip()
			if !b.pieces[enemy][m.Captured].Has(m.To) {
				return fmt.Errorf("%w: captured piece not on %s", ErrCorruptState, m.To)
			}
			b.clear(enemy, m.Captured, m.To)
		} else if b.OccupancyColor(color).Has(m.To) {
			return fmt.Errorf("%w: own piece already on %s", ErrCorruptState, m.To)
		}
		b.clear(color, chess.Pawn, m.From)
		b.set(color, m.Promotion, m.To)

	case chess.CastleMove:
		if !b.pieces[color][chess.King].Has(m.From) {
			return fmt.Errorf("%w: king not on %s", ErrCorruptState, m.From)
		}
		rFrom, rTo := rookSquares(m)
		if !b.pieces[color][chess.Rook].Has(rFrom) {
			return fmt.Errorf("%w: rook not on %s", ErrCorruptState, rFrom)
		}
		b.clear(color, chess.King, m.From)
		b.set(color, chess.King, m.To)
		b.clear(color, chess.Rook, rFrom)
		b.set(color, chess.Rook, rTo)

	default:
		return fmt.Errorf("%w: cannot apply move kind %s", ErrCorruptState, m.Kind)
	}
	return nil
}

// Revert reverses Apply, restoring the exact pre-apply bitboards. Promotion
// moves carry the captured kind directly, so no board lookup is needed to
// know what to restore.
func (b *Board) Revert(m chess.Move) error {
	color := m.Piece.Color

	switch m.Kind {
	case chess.StandardMove:
		b.clear(color, m.Piece.Type, m.To)
		b.set(color, m.Piece.Type, m.From)

	case chess.CaptureMove:
		b.clear(color, m.Piece.Type, m.To)
		b.set(color, m.Piece.Type, m.From)
		b.set(color.Flip(), m.Captured, m.To)

	case chess.PromotionMove:
		b.clear(color, m.Promotion, m.To)
		b.set(color, chess.Pawn, m.From)
		if m.Captured.IsValid() {
			b.set(color.Flip(), m.Captured, m.To)
		}

	case chess.CastleMove:
		rFrom, rTo := rookSquares(m)
		b.clear(color, chess.King, m.To)
		b.set(color, chess.King, m.From)
		b.clear(color, chess.Rook, rTo)
		b.set(color, chess.Rook, rFrom)

	default:
		return fmt.Errorf("%w: cannot revert move kind %s", ErrCorruptState, m.Kind)
	}
	return nil
}
