package usecase

import (
	"math/big"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/lotmarket/goapi/base/ctx"
	"github.com/lotmarket/goapi/base/keylock"
	"github.com/lotmarket/goapi/domain"
	"github.com/lotmarket/goapi/domain/fee"
	mockFee "github.com/lotmarket/goapi/domain/fee/mocks"
	mockLedger "github.com/lotmarket/goapi/domain/ledger/mocks"
	mockPaytoken "github.com/lotmarket/goapi/domain/mocks"
	"github.com/lotmarket/goapi/domain/offer"
	mockOffer "github.com/lotmarket/goapi/domain/offer/mocks"
	mockPricefeed "github.com/lotmarket/goapi/service/pricefeed/mocks"
	mockQuery "github.com/lotmarket/goapi/service/query/mocks"
)

var (
	mockCtx = ctx.Background()
	now     = time.Unix(1700000000, 0)

	chainId    = domain.ChainId(1)
	tokenId    = domain.TokenId("2580")
	seller     = domain.Address("0x5566000000000000000000000000000000005566")
	buyer      = domain.Address("0x7788000000000000000000000000000000007788")
	collection = domain.Address("0x1234000000000000000000000000000000001234")
	recipient  = domain.Address("0x2222000000000000000000000000000000002222")
	wood       = domain.Address("0xw00d000000000000000000000000000000000000")
	woodFeed   = domain.Address("0xfeed000000000000000000000000000000000000")
)

type testsuite struct {
	suite.Suite
	mockRepo      *mockOffer.Repo
	mockEvents    *mockOffer.EventRepo
	mockFeeUC     *mockFee.UseCase
	mockPaytoken  *mockPaytoken.PayTokenRepo
	mockAssets    *mockLedger.AssetLedger
	mockTokens    *mockLedger.TokenLedger
	mockPricefeed *mockPricefeed.PriceFeed
	mockTx        *mockQuery.TxRunner
	subject       offer.Settlement
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	timeNow = func() time.Time { return now }
	t.mockRepo = &mockOffer.Repo{}
	t.mockEvents = &mockOffer.EventRepo{}
	t.mockFeeUC = &mockFee.UseCase{}
	t.mockPaytoken = &mockPaytoken.PayTokenRepo{}
	t.mockAssets = &mockLedger.AssetLedger{}
	t.mockTokens = &mockLedger.TokenLedger{}
	t.mockPricefeed = &mockPricefeed.PriceFeed{}
	t.mockTx = &mockQuery.TxRunner{}
	t.mockTx.
		On("RunWithTransaction", mockCtx, mock.Anything).
		Return(func(c ctx.Ctx, run func(ctx.Ctx) error) error { return run(c) }).
		Maybe()
	t.subject = New(&SettlementUseCaseCfg{
		OfferRepo:    t.mockRepo,
		EventRepo:    t.mockEvents,
		FeeUC:        t.mockFeeUC,
		PayTokenRepo: t.mockPaytoken,
		AssetLedger:  t.mockAssets,
		TokenLedger:  t.mockTokens,
		PriceFeed:    t.mockPricefeed,
		TxRunner:     t.mockTx,
		Locks:        keylock.New(),
	})
}

func (t *testsuite) offer() *offer.Offer {
	return &offer.Offer{
		ChainId:    chainId,
		Seller:     seller,
		Collection: collection,
		TokenId:    tokenId,
		Quantity:   25,
		Price:      "200",
		Deadline:   now.Unix() + 86400,
		IsSelling:  true,
	}
}

func (t *testsuite) policy() *fee.Policy {
	return &fee.Policy{
		ChainId:     chainId,
		Admin:       domain.Address("0x1111000000000000000000000000000000001111"),
		Recipient:   recipient,
		Denominator: 100,
	}
}

func (t *testsuite) id() offer.OfferId {
	return offer.OfferId{ChainId: chainId, TokenId: tokenId}
}

func (t *testsuite) expectSettlementWrites() {
	t.mockAssets.
		On("Transfer", mockCtx, chainId, seller, buyer, collection, tokenId, int64(25)).
		Return(nil)
	t.mockRepo.On("Patch", mockCtx, t.id(), mock.Anything).Return(nil)
	t.mockEvents.On("Append", mockCtx, mock.Anything).Return(nil)
}

func (t *testsuite) TestAcceptNative() {
	t.mockRepo.On("FindOne", mockCtx, t.id()).Return(t.offer(), nil)
	t.mockFeeUC.On("Get", mockCtx, chainId).Return(t.policy(), nil)
	t.mockTokens.
		On("Transfer", mockCtx, chainId, domain.NativeTokenAddress, buyer, seller, big.NewInt(200)).
		Return(nil)
	t.mockTokens.
		On("Transfer", mockCtx, chainId, domain.NativeTokenAddress, buyer, recipient, big.NewInt(2)).
		Return(nil)
	t.expectSettlementWrites()

	sale, err := t.subject.Accept(mockCtx, offer.AcceptOfferPayload{
		ChainId:       chainId,
		TokenId:       tokenId,
		Buyer:         buyer,
		PayToken:      domain.NativeTokenAddress,
		AttachedValue: "202",
	})
	t.NoError(err)
	t.Equal("200", sale.Amount)
	t.Equal("2", sale.Fee)
	t.mockTokens.AssertExpectations(t.T())
	t.mockAssets.AssertExpectations(t.T())
	t.mockRepo.AssertExpectations(t.T())
}

func (t *testsuite) TestAcceptNativeInsufficientAttachedValue() {
	t.mockRepo.On("FindOne", mockCtx, t.id()).Return(t.offer(), nil)
	t.mockFeeUC.On("Get", mockCtx, chainId).Return(t.policy(), nil)

	// 202 is required, price 200 plus fee 200/100
	_, err := t.subject.Accept(mockCtx, offer.AcceptOfferPayload{
		ChainId:       chainId,
		TokenId:       tokenId,
		Buyer:         buyer,
		PayToken:      domain.NativeTokenAddress,
		AttachedValue: "201",
	})
	t.ErrorIs(err, domain.ErrInsufficientFunds)
	t.mockTokens.AssertNotCalled(t.T(), "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (t *testsuite) TestAcceptWithPayToken() {
	o := t.offer()
	o.Price = "500"
	t.mockRepo.On("FindOne", mockCtx, t.id()).Return(o, nil)
	t.mockFeeUC.On("Get", mockCtx, chainId).Return(t.policy(), nil)
	t.mockPaytoken.
		On("FindOne", mockCtx, chainId, wood).
		Return(&domain.PayToken{
			ChainId:          chainId,
			Address:          wood,
			Decimals:         18,
			PriceFeedAddress: woodFeed,
		}, nil)
	// rate 2e6 turns a 500 reference-unit price into 250 whole tokens
	t.mockPricefeed.
		On("LatestRate", mockCtx, chainId, woodFeed).
		Return(big.NewInt(2_000_000), nil)

	amount, ok := new(big.Int).SetString(decimal.New(250, 18).String(), 10)
	t.True(ok)
	feeAmount, ok := new(big.Int).SetString(decimal.New(25, 17).String(), 10)
	t.True(ok)

	t.mockTokens.On("Transfer", mockCtx, chainId, wood, buyer, seller, amount).Return(nil)
	t.mockTokens.On("Transfer", mockCtx, chainId, wood, buyer, recipient, feeAmount).Return(nil)
	t.expectSettlementWrites()

	sale, err := t.subject.Accept(mockCtx, offer.AcceptOfferPayload{
		ChainId:  chainId,
		TokenId:  tokenId,
		Buyer:    buyer,
		PayToken: wood,
	})
	t.NoError(err)
	t.Equal(amount.String(), sale.Amount)
	t.Equal(feeAmount.String(), sale.Fee)
	t.mockTokens.AssertExpectations(t.T())
}

func (t *testsuite) TestAcceptFloorsConversion() {
	o := t.offer()
	o.Price = "1"
	t.mockRepo.On("FindOne", mockCtx, t.id()).Return(o, nil)
	t.mockFeeUC.On("Get", mockCtx, chainId).Return(t.policy(), nil)
	t.mockPaytoken.
		On("FindOne", mockCtx, chainId, wood).
		Return(&domain.PayToken{ChainId: chainId, Address: wood, PriceFeedAddress: woodFeed}, nil)
	// rate above price * 10^24 floors the converted amount to zero
	rate, ok := new(big.Int).SetString(decimal.New(3, 24).String(), 10)
	t.True(ok)
	t.mockPricefeed.On("LatestRate", mockCtx, chainId, woodFeed).Return(rate, nil)
	t.mockTokens.On("Transfer", mockCtx, chainId, wood, buyer, mock.Anything, big.NewInt(0)).Return(nil)
	t.expectSettlementWrites()

	sale, err := t.subject.Accept(mockCtx, offer.AcceptOfferPayload{
		ChainId:  chainId,
		TokenId:  tokenId,
		Buyer:    buyer,
		PayToken: wood,
	})
	t.NoError(err)
	t.Equal("0", sale.Amount)
	t.Equal("0", sale.Fee)
}

func (t *testsuite) TestAcceptUnsupportedPayToken() {
	t.mockRepo.On("FindOne", mockCtx, t.id()).Return(t.offer(), nil)
	t.mockFeeUC.On("Get", mockCtx, chainId).Return(t.policy(), nil)
	t.mockPaytoken.On("FindOne", mockCtx, chainId, wood).Return(nil, nil)

	_, err := t.subject.Accept(mockCtx, offer.AcceptOfferPayload{
		ChainId:  chainId,
		TokenId:  tokenId,
		Buyer:    buyer,
		PayToken: wood,
	})
	t.ErrorIs(err, domain.ErrUnsupportedPayToken)
}

func (t *testsuite) TestAcceptOracleUnavailable() {
	t.mockRepo.On("FindOne", mockCtx, t.id()).Return(t.offer(), nil)
	t.mockFeeUC.On("Get", mockCtx, chainId).Return(t.policy(), nil)
	t.mockPaytoken.
		On("FindOne", mockCtx, chainId, wood).
		Return(&domain.PayToken{ChainId: chainId, Address: wood, PriceFeedAddress: woodFeed}, nil)
	t.mockPricefeed.On("LatestRate", mockCtx, chainId, woodFeed).Return(nil, domain.ErrOracleUnavailable)

	_, err := t.subject.Accept(mockCtx, offer.AcceptOfferPayload{
		ChainId:  chainId,
		TokenId:  tokenId,
		Buyer:    buyer,
		PayToken: wood,
	})
	t.ErrorIs(err, domain.ErrOracleUnavailable)
	t.mockTokens.AssertNotCalled(t.T(), "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (t *testsuite) TestAcceptWithoutActiveOffer() {
	t.mockRepo.On("FindOne", mockCtx, t.id()).Return(nil, nil)

	_, err := t.subject.Accept(mockCtx, offer.AcceptOfferPayload{
		ChainId:       chainId,
		TokenId:       tokenId,
		Buyer:         buyer,
		PayToken:      domain.NativeTokenAddress,
		AttachedValue: "202",
	})
	t.ErrorIs(err, domain.ErrNoActiveOffer)
}

func (t *testsuite) TestAcceptCancelledOffer() {
	o := t.offer()
	o.IsSelling = false
	t.mockRepo.On("FindOne", mockCtx, t.id()).Return(o, nil)

	_, err := t.subject.Accept(mockCtx, offer.AcceptOfferPayload{
		ChainId:       chainId,
		TokenId:       tokenId,
		Buyer:         buyer,
		PayToken:      domain.NativeTokenAddress,
		AttachedValue: "202",
	})
	t.ErrorIs(err, domain.ErrNoActiveOffer)
}

func (t *testsuite) TestAcceptExpiredOffer() {
	o := t.offer()
	o.Deadline = now.Unix() - 1
	t.mockRepo.On("FindOne", mockCtx, t.id()).Return(o, nil)

	_, err := t.subject.Accept(mockCtx, offer.AcceptOfferPayload{
		ChainId:       chainId,
		TokenId:       tokenId,
		Buyer:         buyer,
		PayToken:      domain.NativeTokenAddress,
		AttachedValue: "202",
	})
	t.ErrorIs(err, domain.ErrOfferExpired)
}

func (t *testsuite) TestAcceptAbortsWhenBuyerCannotPay() {
	t.mockRepo.On("FindOne", mockCtx, t.id()).Return(t.offer(), nil)
	t.mockFeeUC.On("Get", mockCtx, chainId).Return(t.policy(), nil)
	t.mockTokens.
		On("Transfer", mockCtx, chainId, domain.NativeTokenAddress, buyer, seller, big.NewInt(200)).
		Return(domain.ErrInsufficientFunds)

	_, err := t.subject.Accept(mockCtx, offer.AcceptOfferPayload{
		ChainId:       chainId,
		TokenId:       tokenId,
		Buyer:         buyer,
		PayToken:      domain.NativeTokenAddress,
		AttachedValue: "202",
	})
	t.ErrorIs(err, domain.ErrInsufficientFunds)
	t.mockRepo.AssertNotCalled(t.T(), "Patch", mock.Anything, mock.Anything, mock.Anything)
	t.mockEvents.AssertNotCalled(t.T(), "Append", mock.Anything, mock.Anything)
}
