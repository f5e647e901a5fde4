package usecase

import (
	"math/big"
	"time"

	"github.com/lotmarket/goapi/base/ctx"
	"github.com/lotmarket/goapi/base/keylock"
	"github.com/lotmarket/goapi/base/log"
	"github.com/lotmarket/goapi/base/metrics"
	"github.com/lotmarket/goapi/base/ptr"
	"github.com/lotmarket/goapi/domain"
	"github.com/lotmarket/goapi/domain/fee"
	"github.com/lotmarket/goapi/domain/ledger"
	"github.com/lotmarket/goapi/domain/offer"
	"github.com/lotmarket/goapi/service/pricefeed"
	"github.com/lotmarket/goapi/service/query"
)

var timeNow = time.Now

type SettlementUseCaseCfg struct {
	OfferRepo    offer.Repo
	EventRepo    offer.EventRepo
	FeeUC        fee.UseCase
	PayTokenRepo domain.PayTokenRepo
	AssetLedger  ledger.AssetLedger
	TokenLedger  ledger.TokenLedger
	PriceFeed    pricefeed.PriceFeed
	TxRunner     query.TxRunner
	// Locks must be the same instance the offer usecase holds.
	Locks *keylock.KeyLock
}

type impl struct {
	offerRepo    offer.Repo
	eventRepo    offer.EventRepo
	feeUC        fee.UseCase
	payTokenRepo domain.PayTokenRepo
	assetLedger  ledger.AssetLedger
	tokenLedger  ledger.TokenLedger
	priceFeed    pricefeed.PriceFeed
	txRunner     query.TxRunner
	locks        *keylock.KeyLock
	met          metrics.Service
}

func New(cfg *SettlementUseCaseCfg) offer.Settlement {
	return &impl{
		offerRepo:    cfg.OfferRepo,
		eventRepo:    cfg.EventRepo,
		feeUC:        cfg.FeeUC,
		payTokenRepo: cfg.PayTokenRepo,
		assetLedger:  cfg.AssetLedger,
		tokenLedger:  cfg.TokenLedger,
		priceFeed:    cfg.PriceFeed,
		txRunner:     cfg.TxRunner,
		locks:        cfg.Locks,
		met:          metrics.New("settlement"),
	}
}

func (im *impl) Accept(c ctx.Ctx, payload offer.AcceptOfferPayload) (*offer.Sale, error) {
	defer im.met.BumpTime("accept.time").End()

	sale, err := im.accept(c, payload)
	if err != nil {
		im.met.BumpSum("accept.err", 1)
		return nil, err
	}
	im.met.BumpSum("accept.sold", 1)
	return sale, nil
}

func (im *impl) accept(c ctx.Ctx, payload offer.AcceptOfferPayload) (*offer.Sale, error) {
	id := offer.OfferId{ChainId: payload.ChainId, TokenId: payload.TokenId}
	buyer := payload.Buyer.ToLower()
	payToken := payload.PayToken.ToLower()

	im.locks.Lock(id.LockKey())
	defer im.locks.Unlock(id.LockKey())

	o, err := im.offerRepo.FindOne(c, id)
	if err != nil {
		c.WithField("err", err).Error("offerRepo.FindOne failed")
		return nil, err
	}
	if o == nil || !o.IsSelling {
		return nil, domain.ErrNoActiveOffer
	}
	if timeNow().Unix() > o.Deadline {
		return nil, domain.ErrOfferExpired
	}

	price, err := o.PriceBig()
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"id":    id,
			"price": o.Price,
		}).Error("stored price is not a valid integer")
		return nil, domain.ErrInternalServerError
	}

	policy, err := im.feeUC.Get(c, payload.ChainId)
	if err != nil {
		c.WithField("err", err).Error("feeUC.Get failed")
		return nil, err
	}

	amount, feeAmount, err := im.quote(c, payload.ChainId, payToken, price, policy, payload.AttachedValue)
	if err != nil {
		return nil, err
	}

	err = im.txRunner.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.tokenLedger.Transfer(c, o.ChainId, payToken, buyer, o.Seller, amount); err != nil {
			return err
		}
		if err := im.tokenLedger.Transfer(c, o.ChainId, payToken, buyer, policy.Recipient, feeAmount); err != nil {
			return err
		}
		if err := im.assetLedger.Transfer(c, o.ChainId, o.Seller, buyer, o.Collection, o.TokenId, o.Quantity); err != nil {
			return err
		}
		if err := im.offerRepo.Patch(c, id, offer.PatchableOffer{IsSelling: ptr.Bool(false)}); err != nil {
			return err
		}
		return im.eventRepo.Append(c, &offer.Event{
			Type:       offer.EventTypeSold,
			ChainId:    o.ChainId,
			TokenId:    o.TokenId,
			Collection: o.Collection,
			Seller:     o.Seller,
			Buyer:      buyer,
			Quantity:   o.Quantity,
			Price:      o.Price,
			PayToken:   payToken,
			Amount:     amount.String(),
			Fee:        feeAmount.String(),
			CreatedAt:  timeNow(),
		})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"id":    id,
			"buyer": buyer,
		}).Error("settlement transaction failed")
		return nil, err
	}

	return &offer.Sale{
		Offer:    o,
		Buyer:    buyer,
		PayToken: payToken,
		Amount:   amount.String(),
		Fee:      feeAmount.String(),
	}, nil
}

// quote resolves the reference-unit price into the pay token's units and the
// platform fee on top of it. Native payment keeps the price as is but checks
// the attached value covers amount plus fee; only that sum is ever debited.
func (im *impl) quote(c ctx.Ctx, chainId domain.ChainId, payToken domain.Address, price *big.Int, policy *fee.Policy, attachedValue string) (*big.Int, *big.Int, error) {
	if payToken.IsNative() {
		feeAmount := policy.FeeOf(price)
		attached, err := domain.ParseBigInt(attachedValue)
		if err != nil {
			return nil, nil, domain.ErrInvalidNumberFormat
		}
		if attached.Cmp(new(big.Int).Add(price, feeAmount)) < 0 {
			return nil, nil, domain.ErrInsufficientFunds
		}
		return price, feeAmount, nil
	}

	pt, err := im.payTokenRepo.FindOne(c, chainId, payToken)
	if err != nil {
		c.WithField("err", err).Error("payTokenRepo.FindOne failed")
		return nil, nil, err
	}
	if pt == nil {
		return nil, nil, domain.ErrUnsupportedPayToken
	}

	rate, err := im.priceFeed.LatestRate(c, chainId, pt.PriceFeedAddress)
	if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"chainId":  chainId,
			"payToken": payToken,
		}).Error("priceFeed.LatestRate failed")
		return nil, nil, err
	}

	amount := new(big.Int).Div(new(big.Int).Mul(price, domain.PriceScale), rate)
	return amount, policy.FeeOf(amount), nil
}
