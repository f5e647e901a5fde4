package fee

import (
	"math/big"

	"github.com/lotmarket/goapi/base/ctx"
	"github.com/lotmarket/goapi/domain"
)

// Policy holds the platform fee parameters of one chain. Admin is the access
// control gate: it is set when the policy is seeded and never reassigned.
type Policy struct {
	ChainId     domain.ChainId `json:"chainId" bson:"chainId"`
	Admin       domain.Address `json:"admin" bson:"admin"`
	Recipient   domain.Address `json:"recipient" bson:"recipient"`
	Denominator int64          `json:"denominator" bson:"denominator"`
}

func (p *Policy) IsAdmin(account domain.Address) bool {
	return p.Admin.Equals(account)
}

// FeeOf computes the additive platform fee: floor(amount / denominator).
// The buyer pays amount + FeeOf(amount); the seller receives amount.
func (p *Policy) FeeOf(amount *big.Int) *big.Int {
	return new(big.Int).Div(amount, big.NewInt(p.Denominator))
}

type PatchablePolicy struct {
	Recipient   *domain.Address `bson:"recipient,omitempty"`
	Denominator *int64          `bson:"denominator,omitempty"`
}

type Repo interface {
	FindOne(ctx.Ctx, domain.ChainId) (*Policy, error)
	Upsert(ctx.Ctx, *Policy) error
	Patch(ctx.Ctx, domain.ChainId, PatchablePolicy) error
}

type UseCase interface {
	// Seed stores the boot policy unless one already exists; the admin of an
	// existing policy is never reassigned.
	Seed(ctx.Ctx, Policy) error
	Get(ctx.Ctx, domain.ChainId) (*Policy, error)
	GetFee(ctx.Ctx, domain.ChainId) (int64, error)
	SetFee(c ctx.Ctx, chainId domain.ChainId, caller domain.Address, denominator int64) error
	GetRecipient(ctx.Ctx, domain.ChainId) (domain.Address, error)
	SetRecipient(c ctx.Ctx, chainId domain.ChainId, caller, recipient domain.Address) error
}
