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
	settlement dOffer.Settlement
}

func New(e *echo.Echo, settlement dOffer.Settlement) {
	h := &handler{settlement}
	e.POST("/offers/:chainId/:tokenId/accept", h.accept)
}

func (h *handler) accept(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	buyer, ok := c.Get("account").(domain.Address)
	if !ok {
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, "missing account header")
	}

	p := struct {
		ChainId       domain.ChainId `param:"chainId" validate:"required"`
		TokenId       domain.TokenId `param:"tokenId" validate:"required"`
		PayToken      domain.Address `json:"payToken" validate:"required,eth_addr"`
		AttachedValue string         `json:"attachedValue"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if p.AttachedValue == "" {
		p.AttachedValue = "0"
	} else if v, err := decimal.NewFromString(p.AttachedValue); err != nil || !v.Equal(v.Truncate(0)) || v.IsNegative() {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidNumberFormat)
	} else {
		p.AttachedValue = v.String()
	}

	sale, err := h.settlement.Accept(ctx, dOffer.AcceptOfferPayload{
		ChainId:       p.ChainId,
		TokenId:       p.TokenId,
		Buyer:         buyer,
		PayToken:      p.PayToken,
		AttachedValue: p.AttachedValue,
	})
	if err != nil {
		return delivery.MakeJsonResp(c, delivery.StatusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, sale)
}
