package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/lotmarket/goapi/base/ctx"
	"github.com/lotmarket/goapi/base/ptr"
	"github.com/lotmarket/goapi/domain"
	"github.com/lotmarket/goapi/domain/fee"
	mockFee "github.com/lotmarket/goapi/domain/fee/mocks"
)

var mockCtx = ctx.Background()

type testsuite struct {
	suite.Suite
	mockRepo *mockFee.Repo
	subject  fee.UseCase
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.mockRepo = &mockFee.Repo{}
	t.subject = New(&FeeUseCaseCfg{FeeRepo: t.mockRepo})
}

func (t *testsuite) policy() *fee.Policy {
	return &fee.Policy{
		ChainId:     domain.ChainId(1),
		Admin:       domain.Address("0x1111111111111111111111111111111111111111"),
		Recipient:   domain.Address("0x2222222222222222222222222222222222222222"),
		Denominator: 100,
	}
}

func (t *testsuite) TestGetNotFound() {
	t.mockRepo.On("FindOne", mockCtx, domain.ChainId(1)).Return(nil, nil)

	_, err := t.subject.Get(mockCtx, domain.ChainId(1))
	t.ErrorIs(err, domain.ErrNotFound)
}

func (t *testsuite) TestGetFee() {
	t.mockRepo.On("FindOne", mockCtx, domain.ChainId(1)).Return(t.policy(), nil)

	denominator, err := t.subject.GetFee(mockCtx, domain.ChainId(1))
	t.NoError(err)
	t.Equal(int64(100), denominator)
}

func (t *testsuite) TestSetFee() {
	policy := t.policy()
	t.mockRepo.On("FindOne", mockCtx, domain.ChainId(1)).Return(policy, nil)
	t.mockRepo.
		On("Patch", mockCtx, domain.ChainId(1), fee.PatchablePolicy{Denominator: ptr.Int64(50)}).
		Return(nil)

	err := t.subject.SetFee(mockCtx, domain.ChainId(1), policy.Admin, 50)
	t.NoError(err)
	t.mockRepo.AssertExpectations(t.T())
}

func (t *testsuite) TestSetFeeDeniedForNonAdmin() {
	t.mockRepo.On("FindOne", mockCtx, domain.ChainId(1)).Return(t.policy(), nil)

	err := t.subject.SetFee(mockCtx, domain.ChainId(1), domain.Address("0x3333333333333333333333333333333333333333"), 50)
	t.ErrorIs(err, domain.ErrAccessDenied)
	t.mockRepo.AssertNotCalled(t.T(), "Patch", mock.Anything, mock.Anything, mock.Anything)
}

func (t *testsuite) TestSetFeeRejectsNonPositiveDenominator() {
	policy := t.policy()
	t.mockRepo.On("FindOne", mockCtx, domain.ChainId(1)).Return(policy, nil)

	err := t.subject.SetFee(mockCtx, domain.ChainId(1), policy.Admin, 0)
	t.ErrorIs(err, domain.ErrInvalidFeeDenominator)
}

func (t *testsuite) TestSetRecipient() {
	policy := t.policy()
	recipient := domain.Address("0x4444444444444444444444444444444444444444")
	t.mockRepo.On("FindOne", mockCtx, domain.ChainId(1)).Return(policy, nil)
	t.mockRepo.
		On("Patch", mockCtx, domain.ChainId(1), fee.PatchablePolicy{Recipient: &recipient}).
		Return(nil)

	err := t.subject.SetRecipient(mockCtx, domain.ChainId(1), policy.Admin, recipient)
	t.NoError(err)
	t.mockRepo.AssertExpectations(t.T())
}

func (t *testsuite) TestSetRecipientDeniedForNonAdmin() {
	t.mockRepo.On("FindOne", mockCtx, domain.ChainId(1)).Return(t.policy(), nil)

	err := t.subject.SetRecipient(mockCtx, domain.ChainId(1), domain.Address("0x3333333333333333333333333333333333333333"), domain.Address("0x4444444444444444444444444444444444444444"))
	t.ErrorIs(err, domain.ErrAccessDenied)
}

func (t *testsuite) TestSeedSkipsExistingPolicy() {
	t.mockRepo.On("FindOne", mockCtx, domain.ChainId(1)).Return(t.policy(), nil)

	err := t.subject.Seed(mockCtx, *t.policy())
	t.NoError(err)
	t.mockRepo.AssertNotCalled(t.T(), "Upsert", mock.Anything, mock.Anything)
}

func (t *testsuite) TestSeedStoresNewPolicy() {
	policy := t.policy()
	t.mockRepo.On("FindOne", mockCtx, domain.ChainId(1)).Return(nil, nil)
	t.mockRepo.On("Upsert", mockCtx, policy).Return(nil)

	err := t.subject.Seed(mockCtx, *policy)
	t.NoError(err)
	t.mockRepo.AssertExpectations(t.T())
}
