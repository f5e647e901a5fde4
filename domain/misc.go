package domain

import (
	"math/big"
	"strings"

	"golang.org/x/xerrors"
)

var Big10 = big.NewInt(10)

// PriceScale is the fixed-point exponent used when converting an offer price
// from reference units into pay-token units: amount = price * 10^24 / rate.
// It is part of the external contract of every accepted pay token.
var PriceScale = new(big.Int).Exp(Big10, big.NewInt(24), nil)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

// NativeTokenAddress is the sentinel pay-token address selecting settlement
// in the native currency instead of a fungible token.
const NativeTokenAddress = Address("0xeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// IsNative reports whether the address is the native-currency sentinel.
func (a Address) IsNative() bool {
	return a.Equals(NativeTokenAddress)
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

func ParseBigInt(num string) (*big.Int, error) {
	bn, ok := new(big.Int).SetString(num, 10)
	if !ok {
		return nil, xerrors.Errorf("invalid number %s: %w", num, ErrInvalidNumberFormat)
	}
	return bn, nil
}
