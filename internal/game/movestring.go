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

import (
	"fmt"

	"github.com/dkhenry/bitmax/internal/chess"
)

// ParseMoveString resolves s (in the "<from>-<to>" notation chess.Move.String
// produces, including its "x<captured>", "=<promotion>" and "O-O"/"O-O-O"
// forms) against g's current legal moves. It never constructs a Move from
// the string directly - matching against the legal set means a malformed or
// illegal string is rejected the same way Game.Make rejects it.
func ParseMoveString(g *Game, s string) (chess.Move, error) {
	for _, m := range g.LegalMoves().Moves {
		if m.String() == s {
			return m, nil
		}
	}
	return chess.Move{}, fmt.Errorf("%w: %q is not a legal move in this position", ErrIllegalMove, s)
}
