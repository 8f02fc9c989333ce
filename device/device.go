// Copyright 2024 The fibdrv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package device reimagines the original character device as an
// in-process, mutex-serialized Go type: open/close, a clamped seek
// position, a cached read of F(k) at that position, and a timed write
// that runs the requested Fibonacci algorithm without returning its
// result (mirroring the original driver's "write measures, it doesn't
// report" contract).
package device

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang/glog"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/fibdrv/fibdrv/fib"
)

// MaxLength is the largest offset the device will seek to, carried over
// from the original driver's MAX_LENGTH.
const MaxLength = 100000

// Whence values for Seek, matching os.Seek's SEEK_SET/SEEK_CUR/SEEK_END.
const (
	SeekSet = iota
	SeekCur
	SeekEnd
)

// ErrBusy is returned by Open when the device is already open.
var ErrBusy = errors.New("device: already open")

// ErrNotOpen is returned by Seek, Read, and Write when called on a device
// that hasn't been opened.
var ErrNotOpen = errors.New("device: not open")

// cacheSize bounds the number of decimal strings kept in the read cache.
const cacheSize = 256

// Device is a single Fibonacci "character device": one open session at a
// time, one seek position, one cache of already-computed decimal strings.
// Its mutex, like the original driver's fib_mutex, admits one open session
// at a time: a second Open fails with ErrBusy instead of waiting. Seek,
// Read and Write take no lock of their own, so calls made within one open
// session are not synchronized with each other.
type Device struct {
	mu     sync.Mutex
	opened bool
	pos    int64
	cache  *lru.Cache[int64, string]
}

// New returns a closed Device ready to be Open'd.
func New() *Device {
	cache, err := lru.New[int64, string](cacheSize)
	if err != nil {
		// Only returned by golang-lru for a non-positive size, which
		// cacheSize never is.
		panic(err)
	}
	return &Device{cache: cache}
}

// Open acquires the device for the calling goroutine, failing with
// ErrBusy if another caller already holds it. It does not block, mirroring
// fib_open's mutex_trylock.
func (d *Device) Open() error {
	if !d.mu.TryLock() {
		return ErrBusy
	}
	d.opened = true
	d.pos = 0
	return nil
}

// Close releases the device.
func (d *Device) Close() error {
	if !d.opened {
		return ErrNotOpen
	}
	d.opened = false
	d.mu.Unlock()
	return nil
}

// Seek adjusts the device's offset, clamped to [0, MaxLength], exactly as
// fib_device_lseek does.
func (d *Device) Seek(offset int64, whence int) (int64, error) {
	if !d.opened {
		return 0, ErrNotOpen
	}
	var newPos int64
	switch whence {
	case SeekSet:
		newPos = offset
	case SeekCur:
		newPos = d.pos + offset
	case SeekEnd:
		newPos = MaxLength - offset
	}
	if newPos > MaxLength {
		newPos = MaxLength
	}
	if newPos < 0 {
		newPos = 0
	}
	d.pos = newPos
	return newPos, nil
}

// Read returns the decimal string of F(k), k being the device's current
// offset, consulting (and populating) the read cache first. The bool
// result reports whether the value was already cached.
func (d *Device) Read() (string, bool, error) {
	if !d.opened {
		return "", false, ErrNotOpen
	}
	if s, ok := d.cache.Get(d.pos); ok {
		return s, true, nil
	}
	n, err := fib.Linear(uint64(d.pos))
	if err != nil {
		glog.Errorf("device: read at offset %d: %v", d.pos, err)
		return "", false, fmt.Errorf("device: read at offset %d: %w", d.pos, err)
	}
	s := n.Text()
	d.cache.Add(d.pos, s)
	return s, false, nil
}

// Write runs the requested Fibonacci algorithm over the device's current
// offset and returns how long it took, mirroring fib_write's ktime
// measurement. It does not return F(k) itself, matching the original
// driver's write semantics.
func (d *Device) Write(method fib.Method) (time.Duration, error) {
	if !d.opened {
		return 0, ErrNotOpen
	}
	start := time.Now()
	_, err := fib.Compute(method, uint64(d.pos))
	elapsed := time.Since(start)
	if err != nil {
		glog.Errorf("device: write (%s) at offset %d: %v", method, d.pos, err)
		return elapsed, fmt.Errorf("device: write (%s) at offset %d: %w", method, d.pos, err)
	}
	return elapsed, nil
}
