package pricefeed

import (
	"math/big"

	"github.com/lotmarket/goapi/base/ctx"
	"github.com/lotmarket/goapi/domain"
)

// PriceFeed reports how many reference-unit subdivisions one minimal unit of
// a pay token is worth. It is a stateless passthrough to the on-chain feed;
// staleness is not validated here.
type PriceFeed interface {
	LatestRate(c ctx.Ctx, chainId domain.ChainId, feedAddress domain.Address) (*big.Int, error)
}
