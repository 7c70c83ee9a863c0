// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"
)

// view runs the shell-quoted command line cmd with path appended.
func view(cmd, path string) error {
	args, err := shellquote.Split(cmd)
	if err != nil {
		return fmt.Errorf("parsing -view command: %v", err)
	}
	if len(args) == 0 {
		return fmt.Errorf("empty -view command")
	}
	c := exec.Command(args[0], append(args[1:], path)...)
	c.Stdout, c.Stderr = os.Stdout, os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("running %s: %v", shellquote.Join(c.Args...), err)
	}
	return nil
}
