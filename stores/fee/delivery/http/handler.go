package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	bCtx "github.com/lotmarket/goapi/base/ctx"
	"github.com/lotmarket/goapi/base/delivery"
	"github.com/lotmarket/goapi/domain"
	dFee "github.com/lotmarket/goapi/domain/fee"
)

type handler struct {
	fee dFee.UseCase
}

func New(e *echo.Echo, feeUC dFee.UseCase) {
	h := &handler{feeUC}
	g := e.Group("/fee")
	g.GET("", h.getFee)
	g.POST("", h.setFee)
	g.GET("/recipient", h.getRecipient)
	g.POST("/recipient", h.setRecipient)
}

func account(c echo.Context) (domain.Address, bool) {
	a, ok := c.Get("account").(domain.Address)
	return a, ok
}

func (h *handler) getFee(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	p := struct {
		ChainId domain.ChainId `query:"chainId" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	denominator, err := h.fee.GetFee(ctx, p.ChainId)
	if err != nil {
		return delivery.MakeJsonResp(c, delivery.StatusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, map[string]int64{"denominator": denominator})
}

func (h *handler) setFee(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	caller, ok := account(c)
	if !ok {
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, "missing account header")
	}

	p := struct {
		ChainId     domain.ChainId `json:"chainId" validate:"required"`
		Denominator int64          `json:"denominator" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.fee.SetFee(ctx, p.ChainId, caller, p.Denominator); err != nil {
		return delivery.MakeJsonResp(c, delivery.StatusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) getRecipient(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	p := struct {
		ChainId domain.ChainId `query:"chainId" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	recipient, err := h.fee.GetRecipient(ctx, p.ChainId)
	if err != nil {
		return delivery.MakeJsonResp(c, delivery.StatusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, map[string]domain.Address{"recipient": recipient})
}

func (h *handler) setRecipient(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	caller, ok := account(c)
	if !ok {
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, "missing account header")
	}

	p := struct {
		ChainId   domain.ChainId `json:"chainId" validate:"required"`
		Recipient domain.Address `json:"recipient" validate:"required,eth_addr"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.fee.SetRecipient(ctx, p.ChainId, caller, p.Recipient); err != nil {
		return delivery.MakeJsonResp(c, delivery.StatusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
