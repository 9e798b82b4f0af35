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

package config

// searchConfiguration holds the configuration of a search instance. The
// search is a fixed-depth alpha-beta minimax - there is no book, no
// transposition table, no quiescence, no pruning/reduction heuristics and
// no pondering, so only depth and move ordering are configurable.
type searchConfiguration struct {
	Depth           int
	UseMoveOrdering bool
}

// sets defaults which might be overwritten by the config file.
func init() {
	Settings.Search.Depth = 4
	Settings.Search.UseMoveOrdering = true
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupSearch() {
	if Settings.Search.Depth <= 0 {
		Settings.Search.Depth = 4
	}
}
