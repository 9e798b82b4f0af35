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

package chess

// MoveKind tags which variant of Move a value holds. A Move is a small
// tagged union rather than a packed integer: the fields that apply depend
// on Kind, and irrelevant fields are left at their zero value.
type MoveKind uint8

const (
	NoMove MoveKind = iota
	StandardMove
	CaptureMove
	PromotionMove
	CastleMove
)

func (k MoveKind) String() string {
	switch k {
	case StandardMove:
		return "standard"
	case CaptureMove:
		return "capture"
	case PromotionMove:
		return "promotion"
	case CastleMove:
		return "castle"
	default:
		return "none"
	}
}

// Move is a single ply. Kind selects which of the variant-specific fields
// are meaningful:
//
//	StandardMove  From, To, Piece
//	CaptureMove   From, To, Piece, Captured
//	PromotionMove From, To, Piece, Promotion, and Captured if the
//	              promotion is itself a capture
//	CastleMove    From, To, Piece (the king), CastleSide
//
// The zero Move has Kind == NoMove and represents "no move" (e.g. a search
// result before any move has been examined).
type Move struct {
	Kind       MoveKind
	From       Square
	To         Square
	Piece      Piece
	Captured   PieceType
	Promotion  PieceType
	CastleSide CastleSide
}

// NewStandardMove builds a non-capturing, non-promoting move.
func NewStandardMove(piece Piece, from, to Square) Move {
	return Move{Kind: StandardMove, From: from, To: to, Piece: piece}
}

// NewCaptureMove builds a move that removes captured from the target square.
func NewCaptureMove(piece Piece, from, to Square, captured PieceType) Move {
	return Move{Kind: CaptureMove, From: from, To: to, Piece: piece, Captured: captured}
}

// NewPromotionMove builds a pawn promotion, optionally also capturing
// captured on the target square (pass PtNone for a non-capturing promotion).
func NewPromotionMove(piece Piece, from, to Square, promotion, captured PieceType) Move {
	return Move{Kind: PromotionMove, From: from, To: to, Piece: piece, Promotion: promotion, Captured: captured}
}

// NewCastleMove builds a castling move. From/To are the king's origin and
// destination squares.
func NewCastleMove(piece Piece, from, to Square, side CastleSide) Move {
	return Move{Kind: CastleMove, From: from, To: to, Piece: piece, CastleSide: side}
}

// IsCapture reports whether m removes an enemy piece from the board,
// including capturing promotions.
func (m Move) IsCapture() bool {
	return m.Kind == CaptureMove || (m.Kind == PromotionMove && m.Captured.IsValid())
}

// String renders m as "<from>-<to>" with an "x<captured>" suffix for
// captures and/or an "=<promotion>" suffix for promotions, or "O-O"/"O-O-O"
// for castling moves.
func (m Move) String() string {
	switch m.Kind {
	case NoMove:
		return "-"
	case CastleMove:
		return m.CastleSide.String()
	case StandardMove:
		return m.From.String() + "-" + m.To.String()
	case CaptureMove:
		return m.From.String() + "-" + m.To.String() + "x" + m.Captured.Char()
	case PromotionMove:
		s := m.From.String() + "-" + m.To.String()
		if m.Captured.IsValid() {
			s += "x" + m.Captured.Char()
		}
		return s + "=" + m.Promotion.Char()
	default:
		return "?"
	}
}
