package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/lotmarket/goapi/base/ctx"
	"github.com/lotmarket/goapi/base/keylock"
	"github.com/lotmarket/goapi/domain"
	mockLedger "github.com/lotmarket/goapi/domain/ledger/mocks"
	"github.com/lotmarket/goapi/domain/offer"
	mockOffer "github.com/lotmarket/goapi/domain/offer/mocks"
	mockQuery "github.com/lotmarket/goapi/service/query/mocks"
)

var (
	mockCtx = ctx.Background()
	now     = time.Unix(1700000000, 0)
)

type testsuite struct {
	suite.Suite
	mockRepo   *mockOffer.Repo
	mockEvents *mockOffer.EventRepo
	mockAssets *mockLedger.AssetLedger
	mockTx     *mockQuery.TxRunner
	subject    offer.UseCase
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	timeNow = func() time.Time { return now }
	t.mockRepo = &mockOffer.Repo{}
	t.mockEvents = &mockOffer.EventRepo{}
	t.mockAssets = &mockLedger.AssetLedger{}
	t.mockTx = &mockQuery.TxRunner{}
	t.mockTx.
		On("RunWithTransaction", mockCtx, mock.Anything).
		Return(func(c ctx.Ctx, run func(ctx.Ctx) error) error { return run(c) }).
		Maybe()
	t.subject = New(&OfferUseCaseCfg{
		OfferRepo:   t.mockRepo,
		EventRepo:   t.mockEvents,
		AssetLedger: t.mockAssets,
		TxRunner:    t.mockTx,
		Locks:       keylock.New(),
	})
}

func (t *testsuite) payload() offer.CreateOfferPayload {
	return offer.CreateOfferPayload{
		ChainId:    domain.ChainId(1),
		Seller:     domain.Address("0x5566000000000000000000000000000000005566"),
		Collection: domain.Address("0x1234000000000000000000000000000000001234"),
		TokenId:    domain.TokenId("2580"),
		Quantity:   25,
		Price:      "200",
		Deadline:   now.Unix() + 86400,
	}
}

func (t *testsuite) TestCreate() {
	p := t.payload()
	id := offer.OfferId{ChainId: p.ChainId, TokenId: p.TokenId}

	t.mockRepo.On("FindOne", mockCtx, id).Return(nil, nil)
	t.mockAssets.
		On("BalanceOf", mockCtx, p.ChainId, p.Seller, p.Collection, p.TokenId).
		Return(int64(25), nil)
	t.mockRepo.On("Upsert", mockCtx, mock.Anything).Return(nil)
	t.mockEvents.
		On("Append", mockCtx, &offer.Event{
			Type:       offer.EventTypeCreated,
			ChainId:    p.ChainId,
			TokenId:    p.TokenId,
			Collection: p.Collection,
			Seller:     p.Seller,
			Quantity:   p.Quantity,
			Price:      p.Price,
			Deadline:   p.Deadline,
			CreatedAt:  now,
		}).
		Return(nil)

	o, err := t.subject.Create(mockCtx, p)
	t.NoError(err)
	t.True(o.IsSelling)
	t.Equal(p.Quantity, o.Quantity)
	t.mockRepo.AssertExpectations(t.T())
	t.mockEvents.AssertExpectations(t.T())
}

func (t *testsuite) TestCreateRejectsPastDeadline() {
	p := t.payload()
	p.Deadline = now.Unix()

	_, err := t.subject.Create(mockCtx, p)
	t.ErrorIs(err, domain.ErrInvalidDeadline)
}

func (t *testsuite) TestCreateRejectsActiveOffer() {
	p := t.payload()
	id := offer.OfferId{ChainId: p.ChainId, TokenId: p.TokenId}
	t.mockRepo.On("FindOne", mockCtx, id).Return(&offer.Offer{IsSelling: true}, nil)

	_, err := t.subject.Create(mockCtx, p)
	t.ErrorIs(err, domain.ErrOfferAlreadyActive)
}

func (t *testsuite) TestCreateReplacesClearedOffer() {
	p := t.payload()
	id := offer.OfferId{ChainId: p.ChainId, TokenId: p.TokenId}
	t.mockRepo.On("FindOne", mockCtx, id).Return(&offer.Offer{IsSelling: false}, nil)
	t.mockAssets.
		On("BalanceOf", mockCtx, p.ChainId, p.Seller, p.Collection, p.TokenId).
		Return(int64(100), nil)
	t.mockRepo.On("Upsert", mockCtx, mock.Anything).Return(nil)
	t.mockEvents.On("Append", mockCtx, mock.Anything).Return(nil)

	_, err := t.subject.Create(mockCtx, p)
	t.NoError(err)
}

func (t *testsuite) TestCreateRejectsShortHolding() {
	p := t.payload()
	id := offer.OfferId{ChainId: p.ChainId, TokenId: p.TokenId}
	t.mockRepo.On("FindOne", mockCtx, id).Return(nil, nil)
	t.mockAssets.
		On("BalanceOf", mockCtx, p.ChainId, p.Seller, p.Collection, p.TokenId).
		Return(int64(24), nil)

	_, err := t.subject.Create(mockCtx, p)
	t.ErrorIs(err, domain.ErrInsufficientAssetBalance)
	t.mockRepo.AssertNotCalled(t.T(), "Upsert", mock.Anything, mock.Anything)
}

func (t *testsuite) TestCreateRejectsBadPrice() {
	p := t.payload()
	p.Price = "2.5"

	_, err := t.subject.Create(mockCtx, p)
	t.ErrorIs(err, domain.ErrInvalidNumberFormat)
}

func (t *testsuite) TestCancel() {
	p := t.payload()
	id := offer.OfferId{ChainId: p.ChainId, TokenId: p.TokenId}
	t.mockRepo.On("FindOne", mockCtx, id).Return(&offer.Offer{
		ChainId:   p.ChainId,
		TokenId:   p.TokenId,
		Seller:    p.Seller,
		IsSelling: true,
	}, nil)
	t.mockRepo.On("Patch", mockCtx, id, mock.Anything).Return(nil)
	t.mockEvents.On("Append", mockCtx, mock.Anything).Return(nil)

	err := t.subject.Cancel(mockCtx, id, p.Seller)
	t.NoError(err)
	t.mockRepo.AssertExpectations(t.T())
}

func (t *testsuite) TestCancelRejectsNonSeller() {
	p := t.payload()
	id := offer.OfferId{ChainId: p.ChainId, TokenId: p.TokenId}
	t.mockRepo.On("FindOne", mockCtx, id).Return(&offer.Offer{
		Seller:    p.Seller,
		IsSelling: true,
	}, nil)

	err := t.subject.Cancel(mockCtx, id, domain.Address("0x9999000000000000000000000000000000009999"))
	t.ErrorIs(err, domain.ErrNotOfferOwner)
}

func (t *testsuite) TestCancelWithoutActiveOffer() {
	id := offer.OfferId{ChainId: 1, TokenId: "2580"}
	t.mockRepo.On("FindOne", mockCtx, id).Return(nil, nil)

	err := t.subject.Cancel(mockCtx, id, domain.Address("0x5566000000000000000000000000000000005566"))
	t.ErrorIs(err, domain.ErrNoActiveOffer)
}

func (t *testsuite) TestListEvents() {
	id := offer.OfferId{ChainId: 1, TokenId: "2580"}
	evs := []*offer.Event{
		{Type: offer.EventTypeCreated, ChainId: 1, TokenId: "2580", Quantity: 25, Price: "200"},
		{Type: offer.EventTypeCancelled, ChainId: 1, TokenId: "2580"},
	}
	t.mockEvents.On("FindAll", mockCtx, id).Return(evs, nil)

	res, err := t.subject.ListEvents(mockCtx, id)
	t.NoError(err)
	t.Equal(evs, res)
	t.mockEvents.AssertExpectations(t.T())
}

func (t *testsuite) TestGetAbsentOffer() {
	id := offer.OfferId{ChainId: 1, TokenId: "7"}
	t.mockRepo.On("FindOne", mockCtx, id).Return(nil, nil)

	o, err := t.subject.Get(mockCtx, id)
	t.NoError(err)
	t.False(o.IsSelling)
	t.Equal(id.TokenId, o.TokenId)
}
