// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/utils/metric"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

type builderMetrics struct {
	txsBuilt    prometheus.Counter
	txsSigned   prometheus.Counter
	signFailed  prometheus.Counter
	packedBytes prometheus.Counter

	signDuration metric.Averager
}

func newMetrics(r prometheus.Registerer) (*builderMetrics, error) {
	signDuration, err := metric.NewAverager(
		"",
		"chain_sign_duration",
		"time spent producing every signature of a transaction",
		r,
	)
	if err != nil {
		return nil, err
	}

	m := &builderMetrics{
		txsBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chain",
			Name:      "txs_built",
			Help:      "number of transactions built",
		}),
		txsSigned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chain",
			Name:      "txs_signed",
			Help:      "number of transactions signed and packed",
		}),
		signFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chain",
			Name:      "sign_failed",
			Help:      "number of transactions whose signing failed",
		}),
		packedBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chain",
			Name:      "packed_bytes",
			Help:      "bytes of packed transaction data produced",
		}),
		signDuration: signDuration,
	}

	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.txsBuilt),
		r.Register(m.txsSigned),
		r.Register(m.signFailed),
		r.Register(m.packedBytes),
	)
	return m, errs.Err
}
