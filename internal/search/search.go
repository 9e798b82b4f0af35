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

// Package search picks a move by exploring the game tree to a fixed depth:
// two-branch minimax (white maximizes, black minimizes) with alpha-beta
// pruning, move ordering ahead of the recursive descent, and a leaf
// evaluation delegated to internal/evaluator. There is no transposition
// table, no iterative deepening and no time management - depth is the only
// knob, matching internal/config's searchConfiguration.
package search

import (
	"errors"
	"sort"

	"github.com/op/go-logging"

	"github.com/dkhenry/bitmax/internal/chess"
	"github.com/dkhenry/bitmax/internal/config"
	"github.com/dkhenry/bitmax/internal/evaluator"
	"github.com/dkhenry/bitmax/internal/game"
	"github.com/dkhenry/bitmax/internal/movegen"
	"github.com/dkhenry/bitmax/internal/util"
)

// Inf is the score magnitude used for checkmate and for "not fully
// searched" sentinels. It is kept well clear of any real evaluation: the
// largest piece-square-adjusted material balance is far below this.
const Inf = 1 << 20

// ErrSearchAborted is returned by BestMoves when the stop flag fires before
// any root move has been evaluated.
var ErrSearchAborted = errors.New("search: aborted before any root move was searched")

// RootMove is one entry of a searched root move list: the move, its score
// from white's point of view, and the number of leaf nodes the subtree
// under it contributed. A score of +Inf/-Inf means alpha-beta pruning cut
// this move's subtree short - the caller should treat it as unsearched
// rather than as a real evaluation.
type RootMove struct {
	Move   chess.Move
	Score  int
	Leaves int64
}

// Searcher runs fixed-depth alpha-beta search against a shared Evaluator.
// Stop is polled at the top of every node; it may be nil, in which case the
// search always runs to completion. A Searcher holds no per-call state, so
// one instance may be reused across searches (sequentially - Game is not
// safe for concurrent make/undo).
type Searcher struct {
	Eval *evaluator.Evaluator
	Stop *util.Bool
	log  *logging.Logger
}

// New creates a Searcher that logs through log. Stop is left nil; set it
// directly on the returned value to enable cancellation.
func New(eval *evaluator.Evaluator, log *logging.Logger) *Searcher {
	return &Searcher{Eval: eval, log: log}
}

// BestMoves searches g to the configured depth and returns every legal
// root move ranked best-first for the side to move, alongside its score and
// leaf count. White maximizes, black minimizes, and moves left unsearched
// by alpha-beta cutoffs at the root carry the +Inf/-Inf sentinel. A
// configured depth <= 0 is treated as depth 1 - the root itself is always
// searched one ply deep so every legal move gets its own score.
func (s *Searcher) BestMoves(g *game.Game) ([]RootMove, error) {
	depth := config.Settings.Search.Depth
	if depth <= 0 {
		depth = 1
	}

	if s.stopped() {
		return nil, ErrSearchAborted
	}

	res := g.LegalMoves()
	moves := append([]chess.Move(nil), res.Moves...)
	if config.Settings.Search.UseMoveOrdering {
		orderMoves(moves)
	}
	if len(moves) == 0 {
		return nil, nil
	}

	maximizing := g.SideToMove == chess.White
	alpha, beta := -Inf, Inf
	out := make([]RootMove, 0, len(moves))
	cutoff := false

	for _, m := range moves {
		if cutoff {
			sentinel := Inf
			if !maximizing {
				sentinel = -Inf
			}
			out = append(out, RootMove{Move: m, Score: sentinel})
			continue
		}
		if s.stopped() {
			if len(out) == 0 {
				return nil, ErrSearchAborted
			}
			cutoff = true
			out = append(out, RootMove{Move: m, Score: boundSentinel(maximizing)})
			continue
		}

		if err := g.Make(m, false); err != nil {
			return nil, err
		}
		score, leaves := s.search(g, depth-1, alpha, beta, !maximizing)
		if err := g.Undo(); err != nil {
			return nil, err
		}

		out = append(out, RootMove{Move: m, Score: score, Leaves: leaves})

		if maximizing {
			if score > alpha {
				alpha = score
			}
		} else {
			if score < beta {
				beta = score
			}
		}
		if beta <= alpha {
			cutoff = true
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if maximizing {
			return out[i].Score > out[j].Score
		}
		return out[i].Score < out[j].Score
	})

	if s.log != nil {
		var leaves int64
		for _, rm := range out {
			leaves += rm.Leaves
		}
		s.log.Debugf("depth %d: %d root moves, %d leaves, best %s (score %d)",
			depth, len(out), leaves, out[0].Move, out[0].Score)
	}
	return out, nil
}

func boundSentinel(maximizing bool) int {
	if maximizing {
		return Inf
	}
	return -Inf
}

// search is the recursive node of the minimax tree below the root. It
// returns the node's score and the number of leaves its subtree visited.
func (s *Searcher) search(g *game.Game, depth int, alpha, beta int, maximizing bool) (int, int64) {
	if depth == 0 {
		return s.Eval.Evaluate(g.Board), 1
	}

	res := g.LegalMoves()
	if len(res.Moves) == 0 {
		return s.terminalScore(g, res), 1
	}

	moves := res.Moves
	if config.Settings.Search.UseMoveOrdering {
		orderMoves(moves)
	}

	var leaves int64
	best := Inf
	if maximizing {
		best = -Inf
	}

	for _, m := range moves {
		if s.stopped() {
			break
		}

		if err := g.Make(m, false); err != nil {
			return best, leaves
		}
		score, childLeaves := s.search(g, depth-1, alpha, beta, !maximizing)
		_ = g.Undo()
		leaves += childLeaves

		if maximizing {
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
		} else {
			if score < best {
				best = score
			}
			if best < beta {
				beta = best
			}
		}
		if beta <= alpha {
			break
		}
	}
	return best, leaves
}

// terminalScore handles a position with no legal moves: checkmate (±Inf,
// favoring the side not in check) or stalemate (0).
func (s *Searcher) terminalScore(g *game.Game, res movegen.Result) int {
	inCheck := res.AttacksBlack.Has(g.Board.KingSquare(chess.White))
	if g.SideToMove == chess.Black {
		inCheck = res.AttacksWhite.Has(g.Board.KingSquare(chess.Black))
	}
	if !inCheck {
		return 0
	}
	if g.SideToMove == chess.White {
		return -Inf
	}
	return Inf
}

func (s *Searcher) stopped() bool {
	return s.Stop != nil && s.Stop.Load()
}
