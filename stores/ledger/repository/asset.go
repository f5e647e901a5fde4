package repository

import (
	"github.com/lotmarket/goapi/base/ctx"
	"github.com/lotmarket/goapi/base/log"
	"github.com/lotmarket/goapi/domain"
	"github.com/lotmarket/goapi/domain/ledger"
	"github.com/lotmarket/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/xerrors"
)

type assetLedgerMongoRepo struct {
	q query.Mongo
}

func NewAssetLedger(q query.Mongo) ledger.AssetLedger {
	return &assetLedgerMongoRepo{q}
}

func (r *assetLedgerMongoRepo) BalanceOf(c ctx.Ctx, chainId domain.ChainId, owner, collection domain.Address, tokenId domain.TokenId) (int64, error) {
	holding := &ledger.AssetHolding{}
	qry := bson.M{
		"chainId":    chainId,
		"owner":      owner.ToLower(),
		"collection": collection.ToLower(),
		"tokenId":    tokenId,
	}
	if err := r.q.FindOne(c, domain.TableAssetHoldings, qry, holding); err == query.ErrNotFound {
		return 0, nil
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return 0, err
	}
	return holding.Quantity, nil
}

// Transfer debits the full quantity from the sender or fails. The debit is a
// single conditional update, so a concurrent transfer can never push the
// sender's quantity below zero.
func (r *assetLedgerMongoRepo) Transfer(c ctx.Ctx, chainId domain.ChainId, from, to, collection domain.Address, tokenId domain.TokenId, quantity int64) error {
	if quantity <= 0 {
		return domain.ErrBadParamInput
	}

	debitSelector := bson.M{
		"chainId":    chainId,
		"owner":      from.ToLower(),
		"collection": collection.ToLower(),
		"tokenId":    tokenId,
		"quantity":   bson.M{"$gte": quantity},
	}
	debit := bson.M{"$inc": bson.M{"quantity": -quantity}}
	if err := r.q.CustomPatch(c, domain.TableAssetHoldings, debitSelector, debit, false); err == query.ErrNotFound {
		return domain.ErrInsufficientAssetBalance
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"from":     from,
			"tokenId":  tokenId,
			"quantity": quantity,
		}).Error("q.CustomPatch failed")
		return xerrors.Errorf("debit %s: %w", from, domain.ErrLedgerTransferFailed)
	}

	return r.credit(c, chainId, to, collection, tokenId, quantity)
}

func (r *assetLedgerMongoRepo) Mint(c ctx.Ctx, chainId domain.ChainId, to, collection domain.Address, tokenId domain.TokenId, quantity int64) error {
	if quantity <= 0 {
		return domain.ErrBadParamInput
	}
	return r.credit(c, chainId, to, collection, tokenId, quantity)
}

func (r *assetLedgerMongoRepo) credit(c ctx.Ctx, chainId domain.ChainId, to, collection domain.Address, tokenId domain.TokenId, quantity int64) error {
	selector := bson.M{
		"chainId":    chainId,
		"owner":      to.ToLower(),
		"collection": collection.ToLower(),
		"tokenId":    tokenId,
	}
	update := bson.M{"$inc": bson.M{"quantity": quantity}}
	if err := r.q.CustomPatch(c, domain.TableAssetHoldings, selector, update, true); err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"to":       to,
			"tokenId":  tokenId,
			"quantity": quantity,
		}).Error("q.CustomPatch failed")
		return xerrors.Errorf("credit %s: %w", to, domain.ErrLedgerTransferFailed)
	}
	return nil
}
