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

package util

import "sync/atomic"

// Bool is an atomic boolean. The search polls one as its stop flag from
// the search goroutine while a driver goroutine sets it, so plain bool
// would be a data race.
type Bool struct{ v uint32 }

// NewBool creates a Bool holding initial.
func NewBool(initial bool) *Bool {
	b := &Bool{}
	b.Store(initial)
	return b
}

// Load atomically reads the value.
func (b *Bool) Load() bool {
	return atomic.LoadUint32(&b.v) == 1
}

// Store atomically sets the value.
func (b *Bool) Store(v bool) {
	var n uint32
	if v {
		n = 1
	}
	atomic.StoreUint32(&b.v, n)
}
