package repository

import (
	"github.com/lotmarket/goapi/base/ctx"
	"github.com/lotmarket/goapi/base/database/mongoclient"
	"github.com/lotmarket/goapi/domain"
	"github.com/lotmarket/goapi/domain/offer"
	"github.com/lotmarket/goapi/service/query"
)

type eventMongoRepo struct {
	q query.Mongo
}

func NewEventRepo(q query.Mongo) offer.EventRepo {
	return &eventMongoRepo{q}
}

func (r *eventMongoRepo) Append(c ctx.Ctx, ev *offer.Event) error {
	ev.Seller = ev.Seller.ToLower()
	ev.Buyer = ev.Buyer.ToLower()
	ev.Collection = ev.Collection.ToLower()
	if err := r.q.Insert(c, domain.TableOfferEvents, ev); err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *eventMongoRepo) FindAll(c ctx.Ctx, id offer.OfferId) ([]*offer.Event, error) {
	qry, err := mongoclient.MakeBsonM(id)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}
	res := []*offer.Event{}
	if err := r.q.Search(c, domain.TableOfferEvents, 0, 0, "createdAt", qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}
