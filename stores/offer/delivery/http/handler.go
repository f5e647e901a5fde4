package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	bCtx "github.com/lotmarket/goapi/base/ctx"
	"github.com/lotmarket/goapi/base/delivery"
	"github.com/lotmarket/goapi/domain"
	dOffer "github.com/lotmarket/goapi/domain/offer"
)

type handler struct {
	offer dOffer.UseCase
}

func New(e *echo.Echo, offerUC dOffer.UseCase) {
	h := &handler{offerUC}
	g := e.Group("/offers")
	g.POST("", h.create)
	g.GET("/:chainId/:tokenId", h.get)
	g.GET("/:chainId/:tokenId/events", h.events)
	g.DELETE("/:chainId/:tokenId", h.cancel)
}

func account(c echo.Context) (domain.Address, bool) {
	a, ok := c.Get("account").(domain.Address)
	return a, ok
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	seller, ok := account(c)
	if !ok {
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, "missing account header")
	}

	p := struct {
		ChainId    domain.ChainId `json:"chainId" validate:"required"`
		Collection domain.Address `json:"collection" validate:"required,eth_addr"`
		TokenId    domain.TokenId `json:"tokenId" validate:"required"`
		Quantity   int64          `json:"quantity" validate:"required,gt=0"`
		Price      string         `json:"price" validate:"required"`
		Deadline   int64          `json:"deadline" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	// prices arrive as decimal strings but must name a whole number of
	// reference units
	price, err := decimal.NewFromString(p.Price)
	if err != nil || !price.Equal(price.Truncate(0)) || price.IsNegative() {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidNumberFormat)
	}

	res, err := h.offer.Create(ctx, dOffer.CreateOfferPayload{
		ChainId:    p.ChainId,
		Seller:     seller,
		Collection: p.Collection,
		TokenId:    p.TokenId,
		Quantity:   p.Quantity,
		Price:      price.String(),
		Deadline:   p.Deadline,
	})
	if err != nil {
		return delivery.MakeJsonResp(c, delivery.StatusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	p := struct {
		ChainId domain.ChainId `param:"chainId" validate:"required"`
		TokenId domain.TokenId `param:"tokenId" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	res, err := h.offer.Get(ctx, dOffer.OfferId{ChainId: p.ChainId, TokenId: p.TokenId})
	if err != nil {
		return delivery.MakeJsonResp(c, delivery.StatusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) events(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	p := struct {
		ChainId domain.ChainId `param:"chainId" validate:"required"`
		TokenId domain.TokenId `param:"tokenId" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	res, err := h.offer.ListEvents(ctx, dOffer.OfferId{ChainId: p.ChainId, TokenId: p.TokenId})
	if err != nil {
		return delivery.MakeJsonResp(c, delivery.StatusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) cancel(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	caller, ok := account(c)
	if !ok {
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, "missing account header")
	}

	p := struct {
		ChainId domain.ChainId `param:"chainId" validate:"required"`
		TokenId domain.TokenId `param:"tokenId" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.offer.Cancel(ctx, dOffer.OfferId{ChainId: p.ChainId, TokenId: p.TokenId}, caller); err != nil {
		return delivery.MakeJsonResp(c, delivery.StatusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
