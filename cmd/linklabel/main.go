// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command linklabel lays out text with detected links and draws it
// to the terminal, with commands to inspect its links and geometry.
package main

import (
	"os"

	"cogentcore.org/linklabel/cmd/linklabel/cmd"
)

func main() {
	if err := cmd.NewRoot().Execute(); err != nil {
		os.Exit(1)
	}
}
