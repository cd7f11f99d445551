// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package crypto converts between the text and binary forms of keys and
// signatures. Signing itself is delegated to a [Signer].
package crypto

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck

	"github.com/daring5920/eosabi/codec"
	"github.com/daring5920/eosabi/consts"
	"github.com/daring5920/eosabi/crypto/secp256k1"
	"github.com/daring5920/eosabi/crypto/secp256r1"
)

const (
	legacyKeyPrefix = "EOS"
	keyPrefix       = "PUB_"
	checksumLen     = 4
)

// ParsePublicKey decodes either the legacy "EOS..." form or the
// "PUB_<curve>_..." form and verifies its checksum and curve point.
func ParsePublicKey(s string) (codec.PublicKey, error) {
	var (
		curve   codec.Curve
		encoded string
		suffix  []byte
	)
	switch {
	case strings.HasPrefix(s, keyPrefix):
		rest := strings.TrimPrefix(s, keyPrefix)
		name, body, ok := strings.Cut(rest, "_")
		if !ok {
			return codec.PublicKey{}, fmt.Errorf("%w: %q has no curve", ErrInvalidPublicKey, s)
		}
		c, err := parseCurve(name)
		if err != nil {
			return codec.PublicKey{}, err
		}
		curve, encoded, suffix = c, body, []byte(name)
	case strings.HasPrefix(s, legacyKeyPrefix):
		curve, encoded = codec.CurveK1, strings.TrimPrefix(s, legacyKeyPrefix)
	default:
		return codec.PublicKey{}, fmt.Errorf("%w: %q has unknown prefix", ErrInvalidPublicKey, s)
	}

	data, err := decodeChecked(encoded, consts.KeyMaterialLen, suffix)
	if err != nil {
		return codec.PublicKey{}, fmt.Errorf("%q: %w", s, err)
	}
	if err := validatePoint(curve, data); err != nil {
		return codec.PublicKey{}, err
	}
	k := codec.PublicKey{Curve: curve}
	copy(k.Data[:], data)
	return k, nil
}

// MustParsePublicKey is [ParsePublicKey] for known-good constants.
func MustParsePublicKey(s string) codec.PublicKey {
	k, err := ParsePublicKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

func parseCurve(name string) (codec.Curve, error) {
	switch name {
	case "K1":
		return codec.CurveK1, nil
	case "R1":
		return codec.CurveR1, nil
	case "WA":
		return codec.CurveWA, fmt.Errorf("%w: %s", codec.ErrUnsupportedKeyType, name)
	default:
		return 0, fmt.Errorf("%w: unknown curve %q", ErrInvalidPublicKey, name)
	}
}

func validatePoint(curve codec.Curve, data []byte) error {
	var err error
	switch curve {
	case codec.CurveK1:
		_, err = secp256k1.ParsePublicKey(data)
	case codec.CurveR1:
		_, err = secp256r1.ParsePublicKey(data)
	default:
		return fmt.Errorf("%w: %s", codec.ErrUnsupportedKeyType, curve)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	return nil
}

// PublicKeyString renders [k] as "PUB_<curve>_<base58>".
func PublicKeyString(k codec.PublicKey) (string, error) {
	if _, err := k.Curve.WireTag(); err != nil {
		return "", err
	}
	name := k.Curve.String()
	return keyPrefix + name + "_" + encodeChecked(k.Data[:], []byte(name)), nil
}

// LegacyPublicKeyString renders a K1 key as "EOS<base58>".
func LegacyPublicKeyString(k codec.PublicKey) (string, error) {
	if k.Curve != codec.CurveK1 {
		return "", fmt.Errorf("%w: legacy form only exists for K1, got %s", codec.ErrUnsupportedKeyType, k.Curve)
	}
	return legacyKeyPrefix + encodeChecked(k.Data[:], nil), nil
}

// checksum is the first 4 bytes of ripemd160(data || suffix).
func checksum(data, suffix []byte) []byte {
	h := ripemd160.New()
	_, _ = h.Write(data)
	_, _ = h.Write(suffix)
	return h.Sum(nil)[:checksumLen]
}

func encodeChecked(data, suffix []byte) string {
	buf := make([]byte, 0, len(data)+checksumLen)
	buf = append(buf, data...)
	buf = append(buf, checksum(data, suffix)...)
	return base58.Encode(buf)
}

func decodeChecked(s string, size int, suffix []byte) ([]byte, error) {
	raw := base58.Decode(s)
	if len(raw) != size+checksumLen {
		return nil, fmt.Errorf("%w: decoded %d bytes, expected %d", ErrInvalidPublicKey, len(raw), size+checksumLen)
	}
	data, sum := raw[:size], raw[size:]
	if !bytes.Equal(sum, checksum(data, suffix)) {
		return nil, ErrBadChecksum
	}
	return data, nil
}
