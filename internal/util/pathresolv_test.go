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

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFileAbsolutePath(t *testing.T) {
	dir, err := ioutil.TempDir("", "pathresolv")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "config.toml")
	require.NoError(t, ioutil.WriteFile(file, []byte("# empty\n"), 0644))

	resolved, err := ResolveFile(file)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Clean(file), resolved)
}

func TestResolveFileRelativeToWorkingDirectory(t *testing.T) {
	dir, err := ioutil.TempDir("", "pathresolv")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "config.toml"), []byte("# empty\n"), 0644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(wd) }()

	resolved, err := ResolveFile("./config.toml")
	assert.NoError(t, err)
	assert.True(t, filepath.IsAbs(resolved))
}

func TestResolveFileMissing(t *testing.T) {
	_, err := ResolveFile("./definitely-not-here.toml")
	assert.Error(t, err)
}
