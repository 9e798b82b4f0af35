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

package evaluator

// Mobility bonuses indexed by the number of squares a piece attacks. The
// queen table is a hand-authored non-decreasing ramp over its 28 possible
// attack counts: it rises by 5 per attacked square up to 8 squares and by 4
// per square after that.
var (
	knightMobility = [9]int{-62, -53, -12, -4, 3, 13, 22, 28, 33}
	bishopMobility = [14]int{-48, -20, 16, 26, 38, 51, 55, 63, 63, 68, 81, 81, 91, 98}
	rookMobility   = [15]int{-60, -20, 2, 3, 3, 11, 22, 31, 40, 40, 41, 48, 57, 57, 62}
	queenMobility  = [28]int{
		-30, -25, -20, -15, -10, -5, 0, 5, 10, 14, 18, 22, 26, 30,
		34, 38, 42, 46, 50, 54, 58, 62, 66, 70, 74, 78, 82, 86,
	}
)
