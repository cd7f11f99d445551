// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/daring5920/eosabi/codec"
	"github.com/daring5920/eosabi/config"
	"github.com/daring5920/eosabi/crypto"

	etrace "github.com/daring5920/eosabi/trace"
)

// Builder turns actions into signed, packed transactions for a single
// chain. It is safe for concurrent use.
type Builder struct {
	config  *config.Config
	chainID codec.ChainID
	signer  crypto.Signer

	log        logging.Logger
	tracer     trace.Tracer
	ownsTracer bool
	registerer prometheus.Registerer
	metrics    *builderMetrics
	now        func() time.Time

	compression Compression
}

// NewBuilder returns a builder for [chainID]. Unless overridden by [opts],
// it logs to stderr at [config.Config.LogLevel] and traces according to
// [config.Config.Trace].
func NewBuilder(
	cfg *config.Config,
	chainID codec.ChainID,
	signer crypto.Signer,
	opts ...Option,
) (*Builder, error) {
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	compression, err := ParseCompression(cfg.Compression)
	if err != nil {
		return nil, err
	}
	b := &Builder{
		config:      cfg,
		chainID:     chainID,
		signer:      signer,
		registerer:  prometheus.NewRegistry(),
		now:         time.Now,
		compression: compression,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.log == nil {
		b.log = cfg.NewLogger(os.Stderr)
	}
	b.metrics, err = newMetrics(b.registerer)
	if err != nil {
		return nil, err
	}
	if b.tracer == nil {
		b.tracer, err = etrace.New(&cfg.Trace)
		if err != nil {
			return nil, err
		}
		b.ownsTracer = true
	}
	return b, nil
}

// Close flushes and stops the tracer created by [NewBuilder]. A tracer
// passed with [WithTracer] is left to its owner.
func (b *Builder) Close() error {
	if !b.ownsTracer {
		return nil
	}
	return b.tracer.Close()
}

func (b *Builder) ChainID() codec.ChainID {
	return b.chainID
}

// Build assembles a transaction referencing [refBlockID] that expires
// [config.Config.ExpirationSeconds] from now.
func (b *Builder) Build(ctx context.Context, refBlockID codec.ChainID, actions ...*Action) (*Transaction, error) {
	_, span := b.tracer.Start(ctx, "chain.Build")
	defer span.End()

	if len(actions) == 0 {
		return nil, ErrNoActions
	}
	expiration := b.now().Add(time.Duration(b.config.ExpirationSeconds) * time.Second).Truncate(time.Second)
	header := Header{
		Expiration:       expiration.UTC(),
		MaxNetUsageWords: b.config.MaxNetUsageWords,
		MaxCPUUsageMs:    b.config.MaxCPUUsageMs,
		DelaySec:         b.config.DelaySec,
	}
	header.SetReference(refBlockID)
	tx := NewTransaction(header, actions...)
	b.metrics.txsBuilt.Inc()
	b.log.Debug("built transaction",
		zap.Int("actions", len(actions)),
		zap.Uint32("refBlockNum", header.RefBlockNum),
		zap.Time("expiration", header.Expiration),
	)
	return tx, nil
}

// Sign signs [tx] with every key in [keys], in order, and packs the
// result.
func (b *Builder) Sign(
	ctx context.Context,
	tx *Transaction,
	keys []crypto.PrivateKey,
	contextFreeData [][]byte,
) (*PackedTransaction, error) {
	ctx, span := b.tracer.Start(ctx, "chain.Sign")
	defer span.End()

	packed, err := b.sign(ctx, tx, keys, contextFreeData)
	if err != nil {
		b.metrics.signFailed.Inc()
		b.log.Debug("failed to sign transaction", zap.Error(err))
		return nil, err
	}
	b.metrics.txsSigned.Inc()
	b.metrics.packedBytes.Add(float64(len(packed.PackedTrx) + len(packed.PackedContextFreeData)))
	return packed, nil
}

func (b *Builder) sign(
	ctx context.Context,
	tx *Transaction,
	keys []crypto.PrivateKey,
	contextFreeData [][]byte,
) (*PackedTransaction, error) {
	if b.signer == nil {
		return nil, ErrNoSigner
	}
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}
	if len(tx.Actions) == 0 && len(tx.ContextFreeActions) == 0 {
		return nil, ErrNoActions
	}
	if now := b.now(); !tx.Expiration.After(now) {
		return nil, fmt.Errorf("%w: expiration %s is not after %s", ErrExpired, tx.Expiration, now.UTC())
	}
	trx, err := tx.BytesWithCapacity(b.config.InitialCapacity)
	if err != nil {
		return nil, err
	}
	digest, err := signingDigest(b.chainID, trx, contextFreeData)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	signatures := make([]crypto.Signature, 0, len(keys))
	for _, key := range keys {
		sig, err := b.signer.Sign(ctx, digest, key)
		if err != nil {
			return nil, err
		}
		signatures = append(signatures, sig)
	}
	b.metrics.signDuration.Observe(float64(time.Since(start)))

	return newPackedTransaction(trx, signatures, contextFreeData, b.compression)
}

// PackAll signs every transaction in [txs] with [keys]. Results are
// returned in input order. The first failure cancels the remaining work.
func (b *Builder) PackAll(
	ctx context.Context,
	txs []*Transaction,
	keys []crypto.PrivateKey,
) ([]*PackedTransaction, error) {
	ctx, span := b.tracer.Start(ctx, "chain.PackAll")
	defer span.End()

	results := make([]*PackedTransaction, len(txs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, tx := range txs {
		i, tx := i, tx
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			packed, err := b.Sign(gctx, tx, keys, nil)
			if err != nil {
				return fmt.Errorf("transaction %d: %w", i, err)
			}
			results[i] = packed
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
