// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"
	"strconv"
	"strings"

	smath "github.com/ava-labs/avalanchego/utils/math"

	"github.com/daring5920/eosabi/consts"
)

// Symbol is a currency code together with the number of decimal places
// its amounts carry.
type Symbol struct {
	Precision uint8  `json:"precision"`
	Code      string `json:"code"`
}

var (
	_ Marshaler = Symbol{}
	_ Marshaler = Asset{}
)

// NewSymbol validates [code] and [precision].
func NewSymbol(precision uint8, code string) (Symbol, error) {
	if precision > consts.MaxPrecision {
		return Symbol{}, fmt.Errorf("%w: precision %d exceeds %d", ErrMalformedAsset, precision, consts.MaxPrecision)
	}
	if len(code) == 0 || len(code) > consts.SymbolCodeLen {
		return Symbol{}, fmt.Errorf("%w: symbol %q must be 1-%d characters", ErrMalformedAsset, code, consts.SymbolCodeLen)
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return Symbol{}, fmt.Errorf("%w: symbol %q must be uppercase A-Z", ErrMalformedAsset, code)
		}
	}
	return Symbol{Precision: precision, Code: code}, nil
}

// ParseSymbol parses the "<precision>,<CODE>" form, e.g. "4,EOS".
func ParseSymbol(s string) (Symbol, error) {
	ps, code, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return Symbol{}, fmt.Errorf("%w: symbol %q is missing ','", ErrMalformedAsset, s)
	}
	precision, err := strconv.ParseUint(ps, 10, 8)
	if err != nil {
		return Symbol{}, fmt.Errorf("%w: symbol %q has invalid precision", ErrMalformedAsset, s)
	}
	return NewSymbol(uint8(precision), code)
}

func (s Symbol) String() string {
	return strconv.Itoa(int(s.Precision)) + "," + s.Code
}

// Marshal writes the precision byte followed by the code, left-aligned and
// zero-padded to 7 bytes.
func (s Symbol) Marshal(p *Packer) {
	if p.Errored() {
		return
	}
	if _, err := NewSymbol(s.Precision, s.Code); err != nil {
		p.addErr(err)
		return
	}
	var code [consts.SymbolCodeLen]byte
	copy(code[:], s.Code)
	p.PackByte(s.Precision)
	p.PackFixedBytes(code[:])
}

func (p *Packer) UnpackSymbol() Symbol {
	precision := p.UnpackByte()
	code := p.read(consts.SymbolCodeLen)
	if p.Errored() {
		return Symbol{}
	}
	return Symbol{Precision: precision, Code: strings.TrimRight(string(code), "\x00")}
}

// Asset is a fixed-point quantity: Amount is the value multiplied by
// 10^Symbol.Precision.
type Asset struct {
	Amount int64  `json:"amount"`
	Symbol Symbol `json:"symbol"`
}

// ParseAsset parses "<integer>[.<fraction>] <SYMBOL>". The number of
// fraction digits sets the precision.
func ParseAsset(s string) (Asset, error) {
	s = strings.TrimSpace(s)
	amountStr, code, ok := strings.Cut(s, " ")
	if !ok {
		return Asset{}, fmt.Errorf("%w: %q has no space before the symbol", ErrMalformedAsset, s)
	}
	code = strings.TrimSpace(code)

	negative := strings.HasPrefix(amountStr, "-")
	if negative {
		amountStr = amountStr[1:]
	}
	intStr, fracStr, hasDot := strings.Cut(amountStr, ".")
	if !isDigits(intStr) || (hasDot && !isDigits(fracStr)) {
		return Asset{}, fmt.Errorf("%w: %q is not a decimal number", ErrMalformedAsset, s)
	}
	if len(fracStr) > consts.MaxPrecision {
		return Asset{}, fmt.Errorf("%w: precision %d exceeds %d", ErrMalformedAsset, len(fracStr), consts.MaxPrecision)
	}
	symbol, err := NewSymbol(uint8(len(fracStr)), code)
	if err != nil {
		return Asset{}, err
	}

	magnitude, err := decimalMagnitude(intStr, fracStr)
	if err != nil {
		return Asset{}, fmt.Errorf("%w: %q: %w", ErrIntegerOverflow, s, err)
	}
	var amount int64
	switch {
	case negative && magnitude == uint64(consts.MaxInt64)+1:
		amount = -consts.MaxInt64 - 1
	case magnitude > uint64(consts.MaxInt64):
		return Asset{}, fmt.Errorf("%w: %q does not fit in 64 bits", ErrIntegerOverflow, s)
	case negative:
		amount = -int64(magnitude)
	default:
		amount = int64(magnitude)
	}
	return Asset{Amount: amount, Symbol: symbol}, nil
}

// decimalMagnitude computes int*10^len(frac) + frac without overflowing.
func decimalMagnitude(intStr, fracStr string) (uint64, error) {
	v, err := strconv.ParseUint(intStr, 10, 64)
	if err != nil {
		return 0, err
	}
	for range fracStr {
		if v, err = smath.Mul64(v, 10); err != nil {
			return 0, err
		}
	}
	if len(fracStr) == 0 {
		return v, nil
	}
	frac, err := strconv.ParseUint(fracStr, 10, 64)
	if err != nil {
		return 0, err
	}
	return smath.Add64(v, frac)
}

func isDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// String renders the asset in the same form [ParseAsset] accepts.
func (a Asset) String() string {
	var (
		sign      string
		magnitude = uint64(a.Amount)
	)
	if a.Amount < 0 {
		sign = "-"
		magnitude = -magnitude
	}
	digits := strconv.FormatUint(magnitude, 10)
	precision := int(a.Symbol.Precision)
	if precision == 0 {
		return sign + digits + " " + a.Symbol.Code
	}
	if len(digits) <= precision {
		digits = strings.Repeat("0", precision-len(digits)+1) + digits
	}
	split := len(digits) - precision
	return sign + digits[:split] + "." + digits[split:] + " " + a.Symbol.Code
}

// Marshal writes the 8-byte amount followed by the symbol.
func (a Asset) Marshal(p *Packer) {
	if p.Errored() {
		return
	}
	if _, err := NewSymbol(a.Symbol.Precision, a.Symbol.Code); err != nil {
		p.addErr(err)
		return
	}
	p.PackInt64(a.Amount)
	a.Symbol.Marshal(p)
}

// MarshalText implements encoding.TextMarshaler.
func (a Asset) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Asset) UnmarshalText(text []byte) error {
	parsed, err := ParseAsset(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// PackAsset parses [s] and writes its 16-byte form.
func (p *Packer) PackAsset(s string) {
	if p.Errored() {
		return
	}
	a, err := ParseAsset(s)
	if err != nil {
		p.addErr(err)
		return
	}
	a.Marshal(p)
}

func (p *Packer) UnpackAsset() Asset {
	amount := p.UnpackInt64()
	symbol := p.UnpackSymbol()
	return Asset{Amount: amount, Symbol: symbol}
}
