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

// Package movegen turns a board position into the list of legal moves for
// the side to move. Generation happens in four steps: pseudo-legal attack
// sets for every piece, expansion of those sets into tagged moves, a
// king-safety filter that applies and reverts each candidate on the board
// itself, and a separate castling step.
package movegen

import (
	"github.com/dkhenry/bitmax/internal/attacks"
	"github.com/dkhenry/bitmax/internal/board"
	"github.com/dkhenry/bitmax/internal/chess"
)

var promotionKinds = [4]chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// Result is the outcome of generating moves for one side: the legal moves
// and the attacked-squares bitboard for both colors, computed along the way
// and handed back so callers (check detection, search) don't recompute it.
type Result struct {
	Moves        []chess.Move
	AttacksWhite chess.Bitboard
	AttacksBlack chess.Bitboard
}

// Generate returns every legal move for side to move on b, plus castling
// moves permitted by rights. Moves that would leave the mover's own king
// attacked are excluded.
func Generate(b *board.Board, side chess.Color, rights chess.CastlingRights) Result {
	res := Result{
		AttacksWhite: AttackedSquares(b, chess.White),
		AttacksBlack: AttackedSquares(b, chess.Black),
	}

	opponentAttacks := res.AttacksWhite
	if side == chess.White {
		opponentAttacks = res.AttacksBlack
	}

	for _, m := range pseudoLegalMoves(b, side) {
		if isLegal(b, side, m) {
			res.Moves = append(res.Moves, m)
		}
	}
	res.Moves = append(res.Moves, castlingMoves(b, side, rights, opponentAttacks)...)

	return res
}

// isLegal applies m to b in place, checks that the mover's king is not left
// in check, and reverts m before returning. Apply/Revert never fail here since m
// was itself derived from b's current piece placement.
func isLegal(b *board.Board, side chess.Color, m chess.Move) bool {
	if err := b.Apply(m); err != nil {
		return false
	}
	defer func() { _ = b.Revert(m) }()

	king := b.KingSquare(side)
	if m.Kind == chess.CastleMove {
		king = m.To
	}
	return !AttackedSquares(b, side.Flip()).Has(king)
}

// AttackedSquares returns every square attacked by a piece of color c,
// ignoring whether the attacked square holds a piece of the same color -
// callers use this for king safety and castling legality, both of which
// need "could c capture here" rather than "is this a legal move".
func AttackedSquares(b *board.Board, c chess.Color) chess.Bitboard {
	occ := b.Occupancy()
	var att chess.Bitboard

	pawns := b.Bb(c, chess.Pawn)
	for pawns != 0 {
		sq := pawns.PopLsb()
		att |= attacks.PawnAttacks[c][sq]
	}
	knights := b.Bb(c, chess.Knight)
	for knights != 0 {
		sq := knights.PopLsb()
		att |= attacks.KnightAttacks[sq]
	}
	kingBb := b.Bb(c, chess.King)
	for kingBb != 0 {
		sq := kingBb.PopLsb()
		att |= attacks.KingAttacks[sq]
	}
	bishops := b.Bb(c, chess.Bishop)
	for bishops != 0 {
		sq := bishops.PopLsb()
		att |= attacks.BishopAttacks(sq, occ)
	}
	rooks := b.Bb(c, chess.Rook)
	for rooks != 0 {
		sq := rooks.PopLsb()
		att |= attacks.RookAttacks(sq, occ)
	}
	queens := b.Bb(c, chess.Queen)
	for queens != 0 {
		sq := queens.PopLsb()
		att |= attacks.QueenAttacks(sq, occ)
	}
	return att
}

// pseudoLegalMoves enumerates every move ignoring whether it leaves the
// mover's own king in check; isLegal filters those out afterwards.
func pseudoLegalMoves(b *board.Board, side chess.Color) []chess.Move {
	var moves []chess.Move
	occ := b.Occupancy()
	own := b.OccupancyColor(side)
	enemy := b.OccupancyColor(side.Flip())

	moves = append(moves, pawnMoves(b, side, occ, enemy)...)

	knights := b.Bb(side, chess.Knight)
	for knights != 0 {
		from := knights.PopLsb()
		targets := attacks.KnightAttacks[from] &^ own
		for targets != 0 {
			to := targets.PopLsb()
			moves = append(moves, leaperOrSliderMove(b, side, chess.Knight, from, to, enemy))
		}
	}

	bishops := b.Bb(side, chess.Bishop)
	for bishops != 0 {
		from := bishops.PopLsb()
		targets := attacks.BishopAttacks(from, occ) &^ own
		for targets != 0 {
			to := targets.PopLsb()
			moves = append(moves, leaperOrSliderMove(b, side, chess.Bishop, from, to, enemy))
		}
	}

	rooks := b.Bb(side, chess.Rook)
	for rooks != 0 {
		from := rooks.PopLsb()
		targets := attacks.RookAttacks(from, occ) &^ own
		for targets != 0 {
			to := targets.PopLsb()
			moves = append(moves, leaperOrSliderMove(b, side, chess.Rook, from, to, enemy))
		}
	}

	queens := b.Bb(side, chess.Queen)
	for queens != 0 {
		from := queens.PopLsb()
		targets := attacks.QueenAttacks(from, occ) &^ own
		for targets != 0 {
			to := targets.PopLsb()
			moves = append(moves, leaperOrSliderMove(b, side, chess.Queen, from, to, enemy))
		}
	}

	kingBb := b.Bb(side, chess.King)
	for kingBb != 0 {
		from := kingBb.PopLsb()
		targets := attacks.KingAttacks[from] &^ own
		for targets != 0 {
			to := targets.PopLsb()
			moves = append(moves, leaperOrSliderMove(b, side, chess.King, from, to, enemy))
		}
	}

	return moves
}

// leaperOrSliderMove builds a Standard or Capture move for any non-pawn
// piece kind landing on to.
func leaperOrSliderMove(b *board.Board, side chess.Color, pt chess.PieceType, from, to chess.Square, enemy chess.Bitboard) chess.Move {
	piece := chess.Piece{Color: side, Type: pt}
	if enemy.Has(to) {
		captured, _ := b.PieceAt(to)
		return chess.NewCaptureMove(piece, from, to, captured.Type)
	}
	return chess.NewStandardMove(piece, from, to)
}

// pawnMoves generates single/double pushes and diagonal captures, expanding
// to all four promotion variants (queen, rook, bishop, knight) on the last
// rank.
func pawnMoves(b *board.Board, side chess.Color, occ, enemy chess.Bitboard) []chess.Move {
	var moves []chess.Move
	piece := chess.Piece{Color: side, Type: chess.Pawn}
	promoteRank := side.PromotionRank()

	pawns := b.Bb(side, chess.Pawn)
	for pawns != 0 {
		from := pawns.PopLsb()

		if to := attacks.PawnPushSingle[side][from].Lsb(); to.IsValid() && !occ.Has(to) {
			moves = append(moves, promoteOrStandard(piece, from, to, chess.PtNone, promoteRank)...)

			if two := attacks.PawnPushDouble[side][from].Lsb(); two.IsValid() && !occ.Has(two) {
				moves = append(moves, chess.NewStandardMove(piece, from, two))
			}
		}

		captures := attacks.PawnAttacks[side][from] & enemy
		for captures != 0 {
			to := captures.PopLsb()
			captured, _ := b.PieceAt(to)
			moves = append(moves, promoteOrStandard(piece, from, to, captured.Type, promoteRank)...)
		}
	}
	return moves
}

// promoteOrStandard returns either the four promotion variants (if to is on
// promoteRank) or a single Standard/Capture move.
func promoteOrStandard(piece chess.Piece, from, to chess.Square, captured chess.PieceType, promoteRank chess.Rank) []chess.Move {
	if to.RankOf() != promoteRank {
		if captured.IsValid() {
			return []chess.Move{chess.NewCaptureMove(piece, from, to, captured)}
		}
		return []chess.Move{chess.NewStandardMove(piece, from, to)}
	}
	out := make([]chess.Move, 0, 4)
	for _, promo := range promotionKinds {
		out = append(out, chess.NewPromotionMove(piece, from, to, promo, captured))
	}
	return out
}

// castlingMoves returns the castling moves permitted by rights: the king
// and rook must both stand on their original squares, the path between them
// must be empty, and the king's current, crossed and destination squares
// must not be attacked. Rights say only "not yet forfeited by a move" -
// positions set up from a placement string can have the king anywhere, so
// the origin squares are verified here rather than assumed.
func castlingMoves(b *board.Board, side chess.Color, rights chess.CastlingRights, opponentAttacks chess.Bitboard) []chess.Move {
	var moves []chess.Move
	rank := side.BackRank()
	kingFrom := chess.SquareOf(chess.FileE, rank)
	if !b.Bb(side, chess.King).Has(kingFrom) {
		return nil
	}
	king := chess.Piece{Color: side, Type: chess.King}
	occ := b.Occupancy()

	if rights.Has(chess.Right(side, chess.CastleKingside)) {
		f, g, h := chess.SquareOf(chess.FileF, rank), chess.SquareOf(chess.FileG, rank), chess.SquareOf(chess.FileH, rank)
		if !occ.Has(f) && !occ.Has(g) && b.Bb(side, chess.Rook).Has(h) &&
			!opponentAttacks.Has(kingFrom) && !opponentAttacks.Has(f) && !opponentAttacks.Has(g) {
			moves = append(moves, chess.NewCastleMove(king, kingFrom, g, chess.CastleKingside))
		}
	}
	if rights.Has(chess.Right(side, chess.CastleQueenside)) {
		b1, c1, d1, a1 := chess.SquareOf(chess.FileB, rank), chess.SquareOf(chess.FileC, rank),
			chess.SquareOf(chess.FileD, rank), chess.SquareOf(chess.FileA, rank)
		if !occ.Has(b1) && !occ.Has(c1) && !occ.Has(d1) && b.Bb(side, chess.Rook).Has(a1) &&
			!opponentAttacks.Has(kingFrom) && !opponentAttacks.Has(d1) && !opponentAttacks.Has(c1) {
			moves = append(moves, chess.NewCastleMove(king, kingFrom, c1, chess.CastleQueenside))
		}
	}
	return moves
}
