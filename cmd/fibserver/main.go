// Copyright 2024 The fibdrv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command fibserver exposes device.Device's seek/read/write surface over
// HTTP: POST /seek, GET /read, POST /write, plus Prometheus metrics at
// /metrics.
package main

import (
	"flag"
	"net/http"
	"strconv"

	"github.com/golang/glog"
	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fibdrv/fibdrv/device"
	"github.com/fibdrv/fibdrv/fib"
)

var (
	readDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name: "fibserver_read_duration_seconds",
		Help: "Latency of /read requests.",
	})
	writeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "fibserver_write_duration_seconds",
		Help: "Latency of the Fibonacci computation a /write request ran.",
	}, []string{"method"})
	cacheEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fibserver_cache_events_total",
		Help: "Read-cache hits and misses.",
	}, []string{"event"})
)

type server struct {
	dev *device.Device
}

func (s *server) seek(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	offset, err := strconv.ParseInt(r.URL.Query().Get("offset"), 10, 64)
	if err != nil {
		http.Error(w, "invalid offset", http.StatusBadRequest)
		return
	}
	pos, err := s.dev.Seek(offset, device.SeekSet)
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	w.Write([]byte(strconv.FormatInt(pos, 10)))
}

func (s *server) read(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	timer := prometheus.NewTimer(readDuration)
	defer timer.ObserveDuration()

	str, hit, err := s.dev.Read()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if hit {
		cacheEvents.WithLabelValues("hit").Inc()
	} else {
		cacheEvents.WithLabelValues("miss").Inc()
	}
	w.Write([]byte(str))
}

func (s *server) write(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	method := fib.MethodLinear
	label := "linear"
	if r.URL.Query().Get("method") == "doubling" {
		method = fib.MethodFastDoubling
		label = "doubling"
	}

	timer := prometheus.NewTimer(writeDuration.WithLabelValues(label))
	defer timer.ObserveDuration()

	elapsed, err := s.dev.Write(method)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Write([]byte(elapsed.String()))
}

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	flag.Parse()

	dev := device.New()
	if err := dev.Open(); err != nil {
		glog.Fatalf("fibserver: open device: %v", err)
	}

	s := &server{dev: dev}
	router := httprouter.New()
	router.Handle(http.MethodPost, "/seek", s.seek)
	router.Handle(http.MethodGet, "/read", s.read)
	router.Handle(http.MethodPost, "/write", s.write)
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	glog.Infof("fibserver: listening on %s", *addr)
	glog.Fatal(http.ListenAndServe(*addr, router))
}
