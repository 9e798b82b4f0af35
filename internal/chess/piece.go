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

// Piece combines a Color and a PieceType, e.g. for FEN parsing and
// piece-square table lookups.
type Piece struct {
	Color Color
	Type  PieceType
}

// PieceFromChar maps a FEN placement character to a Piece. The second
// return value is false for any character that isn't one of PNBRQKpnbrqk.
func PieceFromChar(c byte) (Piece, bool) {
	switch c {
	case 'K':
		return Piece{White, King}, true
	case 'P':
		return Piece{White, Pawn}, true
	case 'N':
		return Piece{White, Knight}, true
	case 'B':
		return Piece{White, Bishop}, true
	case 'R':
		return Piece{White, Rook}, true
	case 'Q':
		return Piece{White, Queen}, true
	case 'k':
		return Piece{Black, King}, true
	case 'p':
		return Piece{Black, Pawn}, true
	case 'n':
		return Piece{Black, Knight}, true
	case 'b':
		return Piece{Black, Bishop}, true
	case 'r':
		return Piece{Black, Rook}, true
	case 'q':
		return Piece{Black, Queen}, true
	default:
		return Piece{}, false
	}
}

// Char returns the FEN placement character for p (uppercase for White,
// lowercase for Black).
func (p Piece) Char() string {
	c := p.Type.Char()
	if p.Color == Black {
		return string(c[0] - 'A' + 'a')
	}
	return c
}
