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

// PieceType enumerates the six chess piece kinds. PtNone is a sentinel for
// "no piece" / "no capture" / "no promotion".
type PieceType uint8

const (
	PtNone PieceType = iota
	King
	Pawn
	Knight
	Bishop
	Rook
	Queen
	PtLength
)

// IsValid reports whether pt is one of the six real piece kinds.
func (pt PieceType) IsValid() bool {
	return pt > PtNone && pt < PtLength
}

// IsSlider reports whether pt slides along rays (bishop, rook or queen).
func (pt PieceType) IsSlider() bool {
	return pt == Bishop || pt == Rook || pt == Queen
}

// midgame material values in centipawn-scale units.
var materialValue = [PtLength]int{0, 0, 124, 781, 825, 1276, 2538}

// MaterialValue returns the midgame material value of pt. Kings return 0 -
// they are never counted in material balance.
func (pt PieceType) MaterialValue() int {
	return materialValue[pt]
}

// ordinalValue gives the MVV/LVA ordinal values used for move ordering.
var ordinalValue = [PtLength]int{0, 100, 1, 3, 3, 5, 9}

// OrdinalValue returns the MVV/LVA ordinal value of pt.
func (pt PieceType) OrdinalValue() int {
	return ordinalValue[pt]
}

var pieceTypeToChar = "-KPNBRQ"

// Char returns a single-character FEN-style label for pt (uppercase).
func (pt PieceType) Char() string {
	return string(pieceTypeToChar[pt])
}

var pieceTypeToString = [PtLength]string{"none", "king", "pawn", "knight", "bishop", "rook", "queen"}

// String returns the lowercase English name of pt.
func (pt PieceType) String() string {
	return pieceTypeToString[pt]
}
