package domain

import (
	"github.com/lotmarket/goapi/base/ctx"
)

type Id struct {
	ChainId ChainId `bson:"chainId"`
	Address Address `bson:"address"`
}

// PayToken is an accepted fungible payment currency and the price feed its
// reference-unit rate is read from.
type PayToken struct {
	Name             string  `bson:"name"`
	Symbol           string  `bson:"symbol"`
	Decimals         int32   `bson:"decimals"`
	ChainId          ChainId `bson:"chainId"`
	Address          Address `bson:"address"`
	PriceFeedAddress Address `bson:"priceFeedAddress"`
}

func (t *PayToken) ToId() *Id {
	return &Id{
		ChainId: t.ChainId,
		Address: t.Address,
	}
}

type PayTokenRepo interface {
	FindOne(ctx.Ctx, ChainId, Address) (*PayToken, error)
	Upsert(ctx.Ctx, *PayToken) error
}
