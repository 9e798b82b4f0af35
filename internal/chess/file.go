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

// File represents a chess board file a-h.
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileNone
)

// IsValid reports whether f represents a real file.
func (f File) IsValid() bool {
	return f < FileNone
}

const fileLabels = "abcdefgh"

// String returns the file letter, or "-" if f is not valid.
func (f File) String() string {
	if !f.IsValid() {
		return "-"
	}
	return string(fileLabels[f])
}

// Rank represents a board row index: 0 is the top row (displayed rank 8),
// 7 is the bottom row (displayed rank 1). This matches the Square layout
// directly (rank = square / 8) rather than conventional chess rank numbers.
type Rank uint8

const (
	Rank0 Rank = iota
	Rank1
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	RankNone
)

// IsValid reports whether r represents a real row.
func (r Rank) IsValid() bool {
	return r < RankNone
}

// Display returns the conventional chess rank number (1-8) for r.
func (r Rank) Display() int {
	return 8 - int(r)
}

// String returns the conventional chess rank digit, or "-" if r is invalid.
func (r Rank) String() string {
	if !r.IsValid() {
		return "-"
	}
	return string(rune('0' + r.Display()))
}
