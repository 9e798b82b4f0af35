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

// Command bitmax is a thin driver binding a FEN placement string and a
// search depth to the engine core: it loads a position, runs a fixed-depth
// search and prints the ranked root moves. There is no interactive loop -
// a UCI adapter or GUI would sit in front of the library packages, not in
// this binary.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dkhenry/bitmax/internal/chess"
	"github.com/dkhenry/bitmax/internal/config"
	"github.com/dkhenry/bitmax/internal/evaluator"
	"github.com/dkhenry/bitmax/internal/game"
	"github.com/dkhenry/bitmax/internal/logging"
	"github.com/dkhenry/bitmax/internal/search"
)

var out = message.NewPrinter(language.German)

// startFen is the piece-placement field of the standard chess starting
// position; see game.LoadFEN for the subset of FEN this engine parses.
const startFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	searchLogLvl := flag.String("searchloglvl", "", "search log level\n(critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", startFen, "piece placement to search from")
	side := flag.String("side", "w", "side to move: w or b")
	depth := flag.Int("depth", 0, "search depth; 0 uses the configured default")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.ConfFile = *configFile
	config.Setup()

	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if lvl, found := config.LogLevels[*searchLogLvl]; found {
		config.SearchLogLevel = lvl
	}
	if *depth > 0 {
		config.Settings.Search.Depth = *depth
	}

	log := logging.GetLog()
	searchLog := logging.GetSearchLog()

	color, err := parseSide(*side)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	g, err := game.LoadFEN(*fen, color)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Infof("loaded position, %s to move", color)

	s := search.New(evaluator.New(log), searchLog)
	moves, err := s.BestMoves(g)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for i, rm := range moves {
		out.Printf("%2d. %-10s score=%-8d leaves=%d\n", i+1, rm.Move, rm.Score, rm.Leaves)
	}
}

// parseSide accepts "w"/"white" or "b"/"black", matching the side-to-move
// the FEN placement loader takes as a separate chess.Color argument.
func parseSide(s string) (chess.Color, error) {
	switch s {
	case "w", "white":
		return chess.White, nil
	case "b", "black":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid -side %q: want w or b", s)
	}
}

func printVersionInfo() {
	out.Println("bitmax - a bitboard chess engine")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
