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

// Direction is a set of constants for stepping between squares on the
// board. Square 0 is the top-left square (file a, rank 8) and square 63 is
// bottom-right (file h, rank 1), so North - white's forward direction -
// is a negative step.
type Direction int8

const (
	North     Direction = -8
	East      Direction = 1
	South     Direction = 8
	West      Direction = -1
	Northeast Direction = North + East
	Southeast Direction = South + East
	Southwest Direction = South + West
	Northwest Direction = North + West
)

// Directions lists all eight step directions, used when building leaper
// attack tables and magic-bitboard relevant masks.
var Directions = [8]Direction{North, East, South, West, Northeast, Southeast, Southwest, Northwest}

// fileDelta and rankDelta decompose a Direction into its file/rank step,
// matching the layout bitutil.Ray expects.
func (d Direction) fileDelta() int {
	switch d {
	case East, Northeast, Southeast:
		return 1
	case West, Northwest, Southwest:
		return -1
	default:
		return 0
	}
}

func (d Direction) rankDelta() int {
	switch d {
	case North, Northeast, Northwest:
		return -1
	case South, Southeast, Southwest:
		return 1
	default:
		return 0
	}
}
