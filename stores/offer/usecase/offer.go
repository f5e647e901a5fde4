package usecase

import (
	"time"

	"github.com/lotmarket/goapi/base/ctx"
	"github.com/lotmarket/goapi/base/keylock"
	"github.com/lotmarket/goapi/base/log"
	"github.com/lotmarket/goapi/base/ptr"
	"github.com/lotmarket/goapi/domain"
	"github.com/lotmarket/goapi/domain/ledger"
	"github.com/lotmarket/goapi/domain/offer"
	"github.com/lotmarket/goapi/service/query"
)

var timeNow = time.Now

type OfferUseCaseCfg struct {
	OfferRepo   offer.Repo
	EventRepo   offer.EventRepo
	AssetLedger ledger.AssetLedger
	TxRunner    query.TxRunner
	// Locks must be the same instance the settlement usecase holds, so a
	// create or cancel can never interleave with an accept of the same offer.
	Locks *keylock.KeyLock
}

type impl struct {
	offerRepo   offer.Repo
	eventRepo   offer.EventRepo
	assetLedger ledger.AssetLedger
	txRunner    query.TxRunner
	locks       *keylock.KeyLock
}

func New(cfg *OfferUseCaseCfg) offer.UseCase {
	return &impl{
		offerRepo:   cfg.OfferRepo,
		eventRepo:   cfg.EventRepo,
		assetLedger: cfg.AssetLedger,
		txRunner:    cfg.TxRunner,
		locks:       cfg.Locks,
	}
}

func (im *impl) Create(c ctx.Ctx, payload offer.CreateOfferPayload) (*offer.Offer, error) {
	if payload.Quantity <= 0 {
		return nil, domain.ErrBadParamInput
	}
	if price, err := domain.ParseBigInt(payload.Price); err != nil {
		return nil, domain.ErrInvalidNumberFormat
	} else if price.Sign() < 0 {
		return nil, domain.ErrBadParamInput
	}
	if payload.Deadline <= timeNow().Unix() {
		return nil, domain.ErrInvalidDeadline
	}

	o := &offer.Offer{
		ChainId:    payload.ChainId,
		Seller:     payload.Seller.ToLower(),
		Collection: payload.Collection.ToLower(),
		TokenId:    payload.TokenId,
		Quantity:   payload.Quantity,
		Price:      payload.Price,
		Deadline:   payload.Deadline,
		IsSelling:  true,
	}
	id := o.ToId()

	im.locks.Lock(id.LockKey())
	defer im.locks.Unlock(id.LockKey())

	if existing, err := im.offerRepo.FindOne(c, *id); err != nil {
		c.WithField("err", err).Error("offerRepo.FindOne failed")
		return nil, err
	} else if existing != nil && existing.IsSelling {
		return nil, domain.ErrOfferAlreadyActive
	}

	if balance, err := im.assetLedger.BalanceOf(c, o.ChainId, o.Seller, o.Collection, o.TokenId); err != nil {
		c.WithField("err", err).Error("assetLedger.BalanceOf failed")
		return nil, err
	} else if balance < o.Quantity {
		return nil, domain.ErrInsufficientAssetBalance
	}

	err := im.txRunner.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.offerRepo.Upsert(c, o); err != nil {
			return err
		}
		return im.eventRepo.Append(c, &offer.Event{
			Type:       offer.EventTypeCreated,
			ChainId:    o.ChainId,
			TokenId:    o.TokenId,
			Collection: o.Collection,
			Seller:     o.Seller,
			Quantity:   o.Quantity,
			Price:      o.Price,
			Deadline:   o.Deadline,
			CreatedAt:  timeNow(),
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("create offer transaction failed")
		return nil, err
	}
	return o, nil
}

func (im *impl) Cancel(c ctx.Ctx, id offer.OfferId, caller domain.Address) error {
	im.locks.Lock(id.LockKey())
	defer im.locks.Unlock(id.LockKey())

	o, err := im.offerRepo.FindOne(c, id)
	if err != nil {
		c.WithField("err", err).Error("offerRepo.FindOne failed")
		return err
	}
	if o == nil || !o.IsSelling {
		return domain.ErrNoActiveOffer
	}
	if !o.Seller.Equals(caller) {
		return domain.ErrNotOfferOwner
	}

	err = im.txRunner.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.offerRepo.Patch(c, id, offer.PatchableOffer{IsSelling: ptr.Bool(false)}); err != nil {
			return err
		}
		return im.eventRepo.Append(c, &offer.Event{
			Type:      offer.EventTypeCancelled,
			ChainId:   o.ChainId,
			TokenId:   o.TokenId,
			Seller:    o.Seller,
			CreatedAt: timeNow(),
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("cancel offer transaction failed")
		return err
	}
	return nil
}

func (im *impl) ListEvents(c ctx.Ctx, id offer.OfferId) ([]*offer.Event, error) {
	evs, err := im.eventRepo.FindAll(c, id)
	if err != nil {
		c.WithField("err", err).Error("eventRepo.FindAll failed")
		return nil, err
	}
	return evs, nil
}

// Get never fails on an absent offer; callers observe an inactive zero
// record, matching what they would read back after a settlement cleared it.
func (im *impl) Get(c ctx.Ctx, id offer.OfferId) (*offer.Offer, error) {
	o, err := im.offerRepo.FindOne(c, id)
	if err != nil {
		c.WithField("err", err).Error("offerRepo.FindOne failed")
		return nil, err
	}
	if o == nil {
		return &offer.Offer{ChainId: id.ChainId, TokenId: id.TokenId}, nil
	}
	return o, nil
}
