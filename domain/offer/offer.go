package offer

import (
	"fmt"
	"math/big"

	"github.com/lotmarket/goapi/base/ctx"
	"github.com/lotmarket/goapi/domain"
)

// Offer is a seller's listing of a fixed quantity of one asset batch for a
// fixed reference-unit price. At most one active offer exists per OfferId.
type Offer struct {
	ChainId    domain.ChainId `json:"chainId" bson:"chainId"`
	Seller     domain.Address `json:"seller" bson:"seller"`
	Collection domain.Address `json:"collection" bson:"collection"`
	TokenId    domain.TokenId `json:"tokenId" bson:"tokenId"`
	Quantity   int64          `json:"quantity" bson:"quantity"`
	// Price is the total reference-unit price for the full quantity,
	// serialized as a base-10 big integer.
	Price     string `json:"price" bson:"price"`
	Deadline  int64  `json:"deadline" bson:"deadline"`
	IsSelling bool   `json:"isSelling" bson:"isSelling"`
}

func (o *Offer) ToId() *OfferId {
	return &OfferId{
		ChainId: o.ChainId,
		TokenId: o.TokenId,
	}
}

func (o *Offer) PriceBig() (*big.Int, error) {
	return domain.ParseBigInt(o.Price)
}

type OfferId struct {
	ChainId domain.ChainId `bson:"chainId"`
	TokenId domain.TokenId `bson:"tokenId"`
}

// LockKey names the keyed lock serializing every state transition of the
// offer, creation and cancellation included, with its settlement.
func (id *OfferId) LockKey() string {
	return fmt.Sprintf("offer:%d:%s", id.ChainId, id.TokenId)
}

type CreateOfferPayload struct {
	ChainId    domain.ChainId `json:"chainId"`
	Seller     domain.Address `json:"seller"`
	Collection domain.Address `json:"collection"`
	TokenId    domain.TokenId `json:"tokenId"`
	Quantity   int64          `json:"quantity"`
	Price      string         `json:"price"`
	Deadline   int64          `json:"deadline"`
}

// PatchableOffer carries the mutable subset of an offer record.
type PatchableOffer struct {
	IsSelling *bool `bson:"isSelling,omitempty"`
}

type Repo interface {
	FindOne(ctx.Ctx, OfferId) (*Offer, error)
	// Upsert replaces any cleared record under the same id; the usecase is
	// responsible for rejecting replacement of a still-active offer.
	Upsert(ctx.Ctx, *Offer) error
	Patch(ctx.Ctx, OfferId, PatchableOffer) error
}

type UseCase interface {
	Create(ctx.Ctx, CreateOfferPayload) (*Offer, error)
	Cancel(c ctx.Ctx, id OfferId, caller domain.Address) error
	Get(ctx.Ctx, OfferId) (*Offer, error)
	// ListEvents returns the lifecycle log of the offer id in creation order.
	ListEvents(ctx.Ctx, OfferId) ([]*Event, error)
}
