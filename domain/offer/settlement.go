package offer

import (
	"github.com/lotmarket/goapi/base/ctx"
	"github.com/lotmarket/goapi/domain"
)

type AcceptOfferPayload struct {
	ChainId domain.ChainId `json:"chainId"`
	TokenId domain.TokenId `json:"tokenId"`
	Buyer   domain.Address `json:"buyer"`
	// PayToken selects the payment currency; domain.NativeTokenAddress
	// selects the native currency.
	PayToken domain.Address `json:"payToken"`
	// AttachedValue is the native value committed to the call, base-10. Only
	// price plus fee is debited; it is ignored for token payments, where the
	// buyer's token balance is drawn directly.
	AttachedValue string `json:"attachedValue"`
}

// Sale reports the final settled amounts of an accepted offer, in pay-token
// minimal units.
type Sale struct {
	Offer    *Offer         `json:"offer"`
	Buyer    domain.Address `json:"buyer"`
	PayToken domain.Address `json:"payToken"`
	Amount   string         `json:"amount"`
	Fee      string         `json:"fee"`
}

// Settlement accepts offers atomically: either the buyer receives the full
// quantity and the seller and fee recipient are paid, or nothing changes.
type Settlement interface {
	Accept(ctx.Ctx, AcceptOfferPayload) (*Sale, error)
}
