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

package game

// Perft counts the leaf nodes of the full game tree rooted at g, searched to
// depth plies, by making and unmaking every legal move rather than sampling.
// It exists to feed the perft-style regression scenarios and is not wired
// into cmd/bitmax: there is no benchmarking harness in this engine.
func Perft(g *Game, depth int) int64 {
	if depth == 0 {
		return 1
	}
	res := g.LegalMoves()
	if depth == 1 {
		return int64(len(res.Moves))
	}
	var nodes int64
	for _, m := range res.Moves {
		if err := g.Make(m, false); err != nil {
			panic(err)
		}
		nodes += Perft(g, depth-1)
		if err := g.Undo(); err != nil {
			panic(err)
		}
	}
	return nodes
}
