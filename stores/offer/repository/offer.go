package repository

import (
	"github.com/lotmarket/goapi/base/ctx"
	"github.com/lotmarket/goapi/base/database/mongoclient"
	"github.com/lotmarket/goapi/base/log"
	"github.com/lotmarket/goapi/domain"
	"github.com/lotmarket/goapi/domain/offer"
	"github.com/lotmarket/goapi/service/query"
)

type offerMongoRepo struct {
	q query.Mongo
}

func NewOfferRepo(q query.Mongo) offer.Repo {
	return &offerMongoRepo{q}
}

// FindOne returns nil without error when no record exists under the id.
func (r *offerMongoRepo) FindOne(c ctx.Ctx, id offer.OfferId) (*offer.Offer, error) {
	res := &offer.Offer{}
	if err := r.q.FindOne(c, domain.TableOffers, id, res); err == query.ErrNotFound {
		return nil, nil
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (r *offerMongoRepo) Upsert(c ctx.Ctx, o *offer.Offer) error {
	o.Seller = o.Seller.ToLower()
	o.Collection = o.Collection.ToLower()
	selector, err := mongoclient.MakeBsonM(o.ToId())
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Upsert(c, domain.TableOffers, selector, o); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  o.ToId(),
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (r *offerMongoRepo) Patch(c ctx.Ctx, id offer.OfferId, patchable offer.PatchableOffer) error {
	selector, err := mongoclient.MakeBsonM(id)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	update, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Patch(c, domain.TableOffers, selector, update); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}
