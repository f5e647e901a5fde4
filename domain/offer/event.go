package offer

import (
	"time"

	"github.com/lotmarket/goapi/base/ctx"
	"github.com/lotmarket/goapi/domain"
)

type EventType string

const (
	EventTypeCreated   EventType = "OfferCreated"
	EventTypeCancelled EventType = "OfferCancelled"
	EventTypeSold      EventType = "OfferSold"
)

// Event is one record of the append-only offer lifecycle log, written exactly
// once per state transition within the same transaction as the transition.
type Event struct {
	Type       EventType      `json:"type" bson:"type"`
	ChainId    domain.ChainId `json:"chainId" bson:"chainId"`
	TokenId    domain.TokenId `json:"tokenId" bson:"tokenId"`
	Collection domain.Address `json:"collection,omitempty" bson:"collection,omitempty"`
	Seller     domain.Address `json:"seller,omitempty" bson:"seller,omitempty"`
	Buyer      domain.Address `json:"buyer,omitempty" bson:"buyer,omitempty"`
	Quantity   int64          `json:"quantity,omitempty" bson:"quantity,omitempty"`
	Price      string         `json:"price,omitempty" bson:"price,omitempty"`
	Deadline   int64          `json:"deadline,omitempty" bson:"deadline,omitempty"`
	PayToken   domain.Address `json:"payToken,omitempty" bson:"payToken,omitempty"`
	// Amount and Fee are the settled seller and fee-recipient amounts in
	// pay-token units, present on OfferSold only.
	Amount    string    `json:"amount,omitempty" bson:"amount,omitempty"`
	Fee       string    `json:"fee,omitempty" bson:"fee,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

type EventRepo interface {
	Append(ctx.Ctx, *Event) error
	FindAll(ctx.Ctx, OfferId) ([]*Event, error)
}
