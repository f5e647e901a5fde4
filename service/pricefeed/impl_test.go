package pricefeed

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/lotmarket/goapi/base/abi"
	"github.com/lotmarket/goapi/base/ctx"
	"github.com/lotmarket/goapi/domain"
	mockChain "github.com/lotmarket/goapi/service/chain/mocks"
)

var (
	mockCtx  = ctx.Background()
	chainId  = domain.ChainId(1)
	feedAddr = domain.Address("0x4444444444444444444444444444444444444444")
)

type testsuite struct {
	suite.Suite
	mockChain *mockChain.Client
	subject   PriceFeed
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.mockChain = &mockChain.Client{}
	t.subject = New(t.mockChain)
}

func (t *testsuite) TestLatestRateIsCached() {
	t.mockChain.
		On("Call", mockCtx, int32(chainId), common.HexToAddress(string(feedAddr)), abi.ChainlinkFeedABI, "latestAnswer").
		Return([]interface{}{big.NewInt(2_000_000)}, nil).
		Once()

	rate, err := t.subject.LatestRate(mockCtx, chainId, feedAddr)
	t.NoError(err)
	t.Equal(big.NewInt(2_000_000), rate)

	// second read is served from the cache
	rate, err = t.subject.LatestRate(mockCtx, chainId, feedAddr)
	t.NoError(err)
	t.Equal(big.NewInt(2_000_000), rate)
	t.mockChain.AssertNumberOfCalls(t.T(), "Call", 1)
}

func (t *testsuite) TestNonPositiveRateIsNotCached() {
	t.mockChain.
		On("Call", mockCtx, int32(chainId), common.HexToAddress(string(feedAddr)), abi.ChainlinkFeedABI, "latestAnswer").
		Return([]interface{}{big.NewInt(0)}, nil).
		Once()
	t.mockChain.
		On("Call", mockCtx, int32(chainId), common.HexToAddress(string(feedAddr)), abi.ChainlinkFeedABI, "latestAnswer").
		Return([]interface{}{big.NewInt(2_000_000)}, nil).
		Once()

	_, err := t.subject.LatestRate(mockCtx, chainId, feedAddr)
	t.ErrorIs(err, domain.ErrOracleUnavailable)

	// the zero reading must not be pinned; the next read hits the feed again
	rate, err := t.subject.LatestRate(mockCtx, chainId, feedAddr)
	t.NoError(err)
	t.Equal(big.NewInt(2_000_000), rate)
	t.mockChain.AssertNumberOfCalls(t.T(), "Call", 2)
}

func (t *testsuite) TestCallFailure() {
	t.mockChain.
		On("Call", mockCtx, int32(chainId), common.HexToAddress(string(feedAddr)), abi.ChainlinkFeedABI, "latestAnswer").
		Return(nil, errors.New("rpc down"))

	_, err := t.subject.LatestRate(mockCtx, chainId, feedAddr)
	t.ErrorIs(err, domain.ErrOracleUnavailable)
}
