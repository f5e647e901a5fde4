package repository

import (
	"github.com/lotmarket/goapi/base/ctx"
	"github.com/lotmarket/goapi/base/database/mongoclient"
	"github.com/lotmarket/goapi/base/log"
	"github.com/lotmarket/goapi/domain"
	"github.com/lotmarket/goapi/domain/fee"
	"github.com/lotmarket/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type feeMongoRepo struct {
	q query.Mongo
}

func NewFeeRepo(q query.Mongo) fee.Repo {
	return &feeMongoRepo{q}
}

// FindOne returns nil without error when the chain has no policy yet.
func (r *feeMongoRepo) FindOne(c ctx.Ctx, chainId domain.ChainId) (*fee.Policy, error) {
	policy := &fee.Policy{}
	if err := r.q.FindOne(c, domain.TableFeePolicies, bson.M{"chainId": chainId}, policy); err == query.ErrNotFound {
		return nil, nil
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return policy, nil
}

func (r *feeMongoRepo) Upsert(c ctx.Ctx, policy *fee.Policy) error {
	policy.Admin = policy.Admin.ToLower()
	policy.Recipient = policy.Recipient.ToLower()
	if err := r.q.Upsert(c, domain.TableFeePolicies, bson.M{"chainId": policy.ChainId}, policy); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"chainId": policy.ChainId,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (r *feeMongoRepo) Patch(c ctx.Ctx, chainId domain.ChainId, patchable fee.PatchablePolicy) error {
	if patchable.Recipient != nil {
		lowered := patchable.Recipient.ToLower()
		patchable.Recipient = &lowered
	}
	update, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Patch(c, domain.TableFeePolicies, bson.M{"chainId": chainId}, update); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}
