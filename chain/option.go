// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"time"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
)

type Option func(*Builder)

func WithLogger(log logging.Logger) Option {
	return func(b *Builder) {
		b.log = log
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(b *Builder) {
		b.tracer = tracer
	}
}

// WithRegisterer registers the builder metrics with [r] instead of a
// private registry.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(b *Builder) {
		b.registerer = r
	}
}

// WithClock replaces time.Now when computing expirations.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		b.now = now
	}
}
