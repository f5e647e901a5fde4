package repository

import (
	"math/big"

	"github.com/lotmarket/goapi/base/ctx"
	"github.com/lotmarket/goapi/base/log"
	"github.com/lotmarket/goapi/domain"
	"github.com/lotmarket/goapi/domain/ledger"
	"github.com/lotmarket/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/xerrors"
)

// tokenLedgerMongoRepo stores amounts as base-10 strings since mongo's $inc
// cannot cover the 256-bit range wei amounts need. Balance moves are therefore
// read-modify-write and rely on the caller holding the settlement lock and a
// surrounding transaction.
type tokenLedgerMongoRepo struct {
	q query.Mongo
}

func NewTokenLedger(q query.Mongo) ledger.TokenLedger {
	return &tokenLedgerMongoRepo{q}
}

func (r *tokenLedgerMongoRepo) BalanceOf(c ctx.Ctx, chainId domain.ChainId, owner, token domain.Address) (*big.Int, error) {
	balance := &ledger.Balance{}
	qry := r.selector(chainId, owner, token)
	if err := r.q.FindOne(c, domain.TableBalances, qry, balance); err == query.ErrNotFound {
		return big.NewInt(0), nil
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	amount, err := domain.ParseBigInt(balance.Amount)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"owner":  owner,
			"amount": balance.Amount,
		}).Error("domain.ParseBigInt failed")
		return nil, err
	}
	return amount, nil
}

func (r *tokenLedgerMongoRepo) Transfer(c ctx.Ctx, chainId domain.ChainId, token, from, to domain.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return domain.ErrBadParamInput
	}
	if amount.Sign() == 0 {
		return nil
	}

	fromBalance, err := r.BalanceOf(c, chainId, from, token)
	if err != nil {
		return err
	}
	if fromBalance.Cmp(amount) < 0 {
		return domain.ErrInsufficientFunds
	}
	if err := r.store(c, chainId, from, token, new(big.Int).Sub(fromBalance, amount)); err != nil {
		return err
	}
	return r.Credit(c, chainId, token, to, amount)
}

func (r *tokenLedgerMongoRepo) Credit(c ctx.Ctx, chainId domain.ChainId, token, to domain.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return domain.ErrBadParamInput
	}
	if amount.Sign() == 0 {
		return nil
	}

	toBalance, err := r.BalanceOf(c, chainId, to, token)
	if err != nil {
		return err
	}
	return r.store(c, chainId, to, token, new(big.Int).Add(toBalance, amount))
}

func (r *tokenLedgerMongoRepo) store(c ctx.Ctx, chainId domain.ChainId, owner, token domain.Address, amount *big.Int) error {
	balance := &ledger.Balance{
		ChainId: chainId,
		Owner:   owner.ToLower(),
		Token:   token.ToLower(),
		Amount:  amount.String(),
	}
	if err := r.q.Upsert(c, domain.TableBalances, r.selector(chainId, owner, token), balance); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"owner": owner,
			"token": token,
		}).Error("q.Upsert failed")
		return xerrors.Errorf("store balance of %s: %w", owner, domain.ErrLedgerTransferFailed)
	}
	return nil
}

func (r *tokenLedgerMongoRepo) selector(chainId domain.ChainId, owner, token domain.Address) bson.M {
	return bson.M{
		"chainId": chainId,
		"owner":   owner.ToLower(),
		"token":   token.ToLower(),
	}
}
