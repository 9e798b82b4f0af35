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

// CastleSide distinguishes kingside ("right", toward the h-file) from
// queenside ("left", toward the a-file) castling.
type CastleSide uint8

const (
	CastleKingside CastleSide = iota
	CastleQueenside
)

func (s CastleSide) String() string {
	if s == CastleKingside {
		return "O-O"
	}
	return "O-O-O"
}

// CastlingRights is a 4-bit mask recording which castling moves have not
// yet been forfeited by a king or rook move.
type CastlingRights uint8

const (
	CastlingWhiteKingside CastlingRights = 1 << iota
	CastlingWhiteQueenside
	CastlingBlackKingside
	CastlingBlackQueenside

	CastlingNone CastlingRights = 0
	CastlingAll  CastlingRights = CastlingWhiteKingside | CastlingWhiteQueenside |
		CastlingBlackKingside | CastlingBlackQueenside
)

// Right returns the single-flag CastlingRights for color c and side s.
func Right(c Color, s CastleSide) CastlingRights {
	switch {
	case c == White && s == CastleKingside:
		return CastlingWhiteKingside
	case c == White && s == CastleQueenside:
		return CastlingWhiteQueenside
	case c == Black && s == CastleKingside:
		return CastlingBlackKingside
	default:
		return CastlingBlackQueenside
	}
}

// Has reports whether every flag set in want is also set in cr.
func (cr CastlingRights) Has(want CastlingRights) bool {
	return cr&want == want
}

// Add returns cr with the flags in other also set.
func (cr CastlingRights) Add(other CastlingRights) CastlingRights {
	return cr | other
}

// Remove returns cr with the flags in other cleared.
func (cr CastlingRights) Remove(other CastlingRights) CastlingRights {
	return cr &^ other
}

// String renders cr in FEN castling-availability notation, e.g. "KQkq" or
// "-" when no rights remain.
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	s := ""
	if cr.Has(CastlingWhiteKingside) {
		s += "K"
	}
	if cr.Has(CastlingWhiteQueenside) {
		s += "Q"
	}
	if cr.Has(CastlingBlackKingside) {
		s += "k"
	}
	if cr.Has(CastlingBlackQueenside) {
		s += "q"
	}
	return s
}
