package pricefeed

import (
	"errors"
	"math/big"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/lotmarket/goapi/base/abi"
	"github.com/lotmarket/goapi/base/ctx"
	"github.com/lotmarket/goapi/base/log"
	"github.com/lotmarket/goapi/domain"
	"github.com/lotmarket/goapi/domain/keys"
	"github.com/lotmarket/goapi/service/cache"
	"github.com/lotmarket/goapi/service/cache/provider/primitive"
	"github.com/lotmarket/goapi/service/chain"
)

const rateTtl = time.Minute

var errNonPositiveRate = errors.New("non-positive oracle rate")

type impl struct {
	chainClient chain.Client
	cache       cache.Service
}

func New(chainClient chain.Client) PriceFeed {
	return &impl{
		chainClient: chainClient,
		cache: cache.New(cache.ServiceConfig{
			Ttl:   rateTtl,
			Pfx:   keys.PfxPriceFeed,
			Cache: primitive.NewPrimitive(keys.PfxPriceFeed, 32),
		}),
	}
}

func (im *impl) LatestRate(c ctx.Ctx, chainId domain.ChainId, feedAddress domain.Address) (*big.Int, error) {
	var res big.Int

	key := keys.RedisKey(strconv.Itoa(int(chainId)), string(feedAddress), "latest")

	if err := im.cache.GetByFunc(c, key, &res, func() (interface{}, error) {
		rate, err := im.latestAnswer(c, chainId, feedAddress)
		if err != nil {
			c.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"address": feedAddress,
			}).Error("latestAnswer failed")
			return nil, err
		}
		// the feed answers int256; a zero or negative rate would turn the
		// price conversion into a division by zero or a negative charge.
		// validated before caching so a bad reading is never pinned for
		// the ttl after the feed recovers
		if rate.Sign() <= 0 {
			c.WithFields(log.Fields{
				"chainId": chainId,
				"address": feedAddress,
				"rate":    rate.String(),
			}).Error("non-positive oracle rate")
			return nil, errNonPositiveRate
		}
		return rate, nil
	}); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
			"address": feedAddress,
		}).Error("cache.GetByFunc failed")
		return nil, domain.ErrOracleUnavailable
	}

	return &res, nil
}

func (im *impl) latestAnswer(c ctx.Ctx, chainId domain.ChainId, feedAddress domain.Address) (*big.Int, error) {
	feedAddr := common.HexToAddress(string(feedAddress))

	res, err := im.chainClient.Call(c, int32(chainId), feedAddr, abi.ChainlinkFeedABI, "latestAnswer")
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
			"address": feedAddress,
		}).Error("chainClient.Call failed")
		return nil, err
	}

	return res[0].(*big.Int), nil
}
