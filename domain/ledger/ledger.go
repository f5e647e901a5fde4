package ledger

import (
	"math/big"

	"github.com/lotmarket/goapi/base/ctx"
	"github.com/lotmarket/goapi/domain"
)

// AssetHolding is one owner's custodial quantity of a batchable asset.
type AssetHolding struct {
	ChainId    domain.ChainId `json:"chainId" bson:"chainId"`
	Owner      domain.Address `json:"owner" bson:"owner"`
	Collection domain.Address `json:"collection" bson:"collection"`
	TokenId    domain.TokenId `json:"tokenId" bson:"tokenId"`
	Quantity   int64          `json:"quantity" bson:"quantity"`
}

// Balance is one owner's custodial amount of a currency. The native currency
// uses domain.NativeTokenAddress as the token address.
type Balance struct {
	ChainId domain.ChainId `json:"chainId" bson:"chainId"`
	Owner   domain.Address `json:"owner" bson:"owner"`
	Token   domain.Address `json:"token" bson:"token"`
	// Amount is a base-10 big integer in the token's minimal units.
	Amount string `json:"amount" bson:"amount"`
}

// AssetLedger is the system of record for ownership of the listed assets.
// Transfer moves the full quantity or fails; it never partially applies.
type AssetLedger interface {
	BalanceOf(c ctx.Ctx, chainId domain.ChainId, owner, collection domain.Address, tokenId domain.TokenId) (int64, error)
	Transfer(c ctx.Ctx, chainId domain.ChainId, from, to, collection domain.Address, tokenId domain.TokenId, quantity int64) error
	Mint(c ctx.Ctx, chainId domain.ChainId, to, collection domain.Address, tokenId domain.TokenId, quantity int64) error
}

// TokenLedger is the system of record for currency balances, both the native
// currency and fungible pay tokens.
type TokenLedger interface {
	BalanceOf(c ctx.Ctx, chainId domain.ChainId, owner, token domain.Address) (*big.Int, error)
	Transfer(c ctx.Ctx, chainId domain.ChainId, token, from, to domain.Address, amount *big.Int) error
	Credit(c ctx.Ctx, chainId domain.ChainId, token, to domain.Address, amount *big.Int) error
}
