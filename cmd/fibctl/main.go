// Copyright 2024 The fibdrv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command fibctl is the Go analogue of the original driver's client.c: it
// opens a device.Device, seeks to an offset, and either reads the decimal
// value there or times a write.
package main

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/fibdrv/fibdrv/device"
	"github.com/fibdrv/fibdrv/fib"
)

type readCmd struct {
	At int64 `help:"Offset k to read F(k) at." required:""`
}

func (c *readCmd) Run() error {
	d := device.New()
	if err := d.Open(); err != nil {
		return err
	}
	defer d.Close()
	if _, err := d.Seek(c.At, device.SeekSet); err != nil {
		return err
	}
	s, _, err := d.Read()
	if err != nil {
		return err
	}
	fmt.Println(s)
	return nil
}

type writeCmd struct {
	At     int64  `help:"Offset k to run the algorithm at." required:""`
	Method string `help:"Algorithm to run." enum:"linear,doubling" default:"linear"`
}

func (c *writeCmd) Run() error {
	d := device.New()
	if err := d.Open(); err != nil {
		return err
	}
	defer d.Close()
	if _, err := d.Seek(c.At, device.SeekSet); err != nil {
		return err
	}
	method := fib.MethodLinear
	if c.Method == "doubling" {
		method = fib.MethodFastDoubling
	}
	elapsed, err := d.Write(method)
	if err != nil {
		return err
	}
	fmt.Println(elapsed)
	return nil
}

var cli struct {
	Read  readCmd  `cmd:"" help:"Read F(k) at the given offset."`
	Write writeCmd `cmd:"" help:"Run a Fibonacci algorithm and report its timing."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("fibctl"),
		kong.Description("Client for the in-process Fibonacci device."))
	ctx.FatalIfErrorf(ctx.Run())
}
