// Copyright 2024 The fibdrv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build tools

// Package tools records build-time dependencies (go.mod wants an actual
// import to keep a require from being pruned) that aren't imported by any
// normal package: the stringer generator used by the //go:generate
// directives in ubn and fib.
package tools

import (
	_ "golang.org/x/tools/cmd/stringer"
)
