package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	"github.com/lotmarket/goapi/base/ctx"
	"github.com/lotmarket/goapi/base/database/mongoclient"
	"github.com/lotmarket/goapi/base/keylock"
	"github.com/lotmarket/goapi/base/log"
	bValidator "github.com/lotmarket/goapi/base/validator"
	"github.com/lotmarket/goapi/domain"
	"github.com/lotmarket/goapi/domain/fee"
	mmiddleware "github.com/lotmarket/goapi/middleware"
	"github.com/lotmarket/goapi/service/chain"
	"github.com/lotmarket/goapi/service/pricefeed"
	"github.com/lotmarket/goapi/service/query"
	fee_delivery "github.com/lotmarket/goapi/stores/fee/delivery/http"
	fee_repository "github.com/lotmarket/goapi/stores/fee/repository"
	fee_usecase "github.com/lotmarket/goapi/stores/fee/usecase"
	hc_delivery "github.com/lotmarket/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/lotmarket/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/lotmarket/goapi/stores/healthcheck/usecase"
	ledger_repository "github.com/lotmarket/goapi/stores/ledger/repository"
	offer_delivery "github.com/lotmarket/goapi/stores/offer/delivery/http"
	offer_repository "github.com/lotmarket/goapi/stores/offer/repository"
	offer_usecase "github.com/lotmarket/goapi/stores/offer/usecase"
	paytoken_repository "github.com/lotmarket/goapi/stores/paytoken/repository"
	settlement_delivery "github.com/lotmarket/goapi/stores/settlement/delivery/http"
	settlement_usecase "github.com/lotmarket/goapi/stores/settlement/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middL.WithAccount())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init chain service
	networks := viper.Sub("networks")
	keys := networks.AllSettings()
	rpcs := make(map[int32]string)
	for k := range keys {
		chainId := networks.GetInt32(fmt.Sprintf("%s.chainId", k))
		rpcUrl := networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
		rpcs[chainId] = rpcUrl
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls: rpcs,
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}
	priceFeed := pricefeed.New(chainService)

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient)
	offerRepo := offer_repository.NewOfferRepo(q)
	eventRepo := offer_repository.NewEventRepo(q)
	feeRepo := fee_repository.NewFeeRepo(q)
	paytokenRepo := paytoken_repository.NewPayTokenRepo(q)
	assetLedger := ledger_repository.NewAssetLedger(q)
	tokenLedger := ledger_repository.NewTokenLedger(q)

	locks := keylock.New()

	hc := hc_usecase.New(hcRepo)
	feeUC := fee_usecase.New(&fee_usecase.FeeUseCaseCfg{
		FeeRepo: feeRepo,
	})
	offerUC := offer_usecase.New(&offer_usecase.OfferUseCaseCfg{
		OfferRepo:   offerRepo,
		EventRepo:   eventRepo,
		AssetLedger: assetLedger,
		TxRunner:    q,
		Locks:       locks,
	})
	settlementUC := settlement_usecase.New(&settlement_usecase.SettlementUseCaseCfg{
		OfferRepo:    offerRepo,
		EventRepo:    eventRepo,
		FeeUC:        feeUC,
		PayTokenRepo: paytokenRepo,
		AssetLedger:  assetLedger,
		TokenLedger:  tokenLedger,
		PriceFeed:    priceFeed,
		TxRunner:     q,
		Locks:        locks,
	})

	// seed fee policies; the admin account of a chain is fixed on first boot
	policies := viper.Sub("feePolicies")
	for k := range policies.AllSettings() {
		policy := fee.Policy{
			ChainId:     domain.ChainId(policies.GetInt32(fmt.Sprintf("%s.chainId", k))),
			Admin:       domain.Address(policies.GetString(fmt.Sprintf("%s.admin", k))).ToLower(),
			Recipient:   domain.Address(policies.GetString(fmt.Sprintf("%s.recipient", k))).ToLower(),
			Denominator: policies.GetInt64(fmt.Sprintf("%s.denominator", k)),
		}
		if err := feeUC.Seed(context, policy); err != nil {
			context.WithFields(log.Fields{
				"err":     err,
				"chainId": policy.ChainId,
			}).Panic("failed to seed fee policy")
		}
	}

	// register accepted pay tokens
	payTokens := viper.Sub("payTokens")
	for k := range payTokens.AllSettings() {
		payToken := &domain.PayToken{
			Name:             payTokens.GetString(fmt.Sprintf("%s.name", k)),
			Symbol:           payTokens.GetString(fmt.Sprintf("%s.symbol", k)),
			Decimals:         payTokens.GetInt32(fmt.Sprintf("%s.decimals", k)),
			ChainId:          domain.ChainId(payTokens.GetInt32(fmt.Sprintf("%s.chainId", k))),
			Address:          domain.Address(payTokens.GetString(fmt.Sprintf("%s.address", k))).ToLower(),
			PriceFeedAddress: domain.Address(payTokens.GetString(fmt.Sprintf("%s.priceFeed", k))).ToLower(),
		}
		if err := paytokenRepo.Upsert(context, payToken); err != nil {
			context.WithFields(log.Fields{
				"err":    err,
				"symbol": payToken.Symbol,
			}).Panic("failed to register pay token")
		}
	}

	hc_delivery.New(e, hc)
	offer_delivery.New(e, offerUC)
	settlement_delivery.New(e, settlementUC)
	fee_delivery.New(e, feeUC)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
