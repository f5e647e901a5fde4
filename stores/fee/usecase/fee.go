package usecase

import (
	"github.com/lotmarket/goapi/base/ctx"
	"github.com/lotmarket/goapi/base/log"
	"github.com/lotmarket/goapi/base/ptr"
	"github.com/lotmarket/goapi/domain"
	"github.com/lotmarket/goapi/domain/fee"
)

type FeeUseCaseCfg struct {
	FeeRepo fee.Repo
}

type impl struct {
	feeRepo fee.Repo
}

func New(cfg *FeeUseCaseCfg) fee.UseCase {
	return &impl{
		feeRepo: cfg.FeeRepo,
	}
}

func (im *impl) Seed(c ctx.Ctx, policy fee.Policy) error {
	if existing, err := im.feeRepo.FindOne(c, policy.ChainId); err != nil {
		c.WithField("err", err).Error("feeRepo.FindOne failed")
		return err
	} else if existing != nil {
		return nil
	}
	if policy.Denominator <= 0 {
		return domain.ErrInvalidFeeDenominator
	}
	if err := im.feeRepo.Upsert(c, &policy); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"chainId": policy.ChainId,
		}).Error("feeRepo.Upsert failed")
		return err
	}
	return nil
}

func (im *impl) Get(c ctx.Ctx, chainId domain.ChainId) (*fee.Policy, error) {
	policy, err := im.feeRepo.FindOne(c, chainId)
	if err != nil {
		c.WithField("err", err).Error("feeRepo.FindOne failed")
		return nil, err
	}
	if policy == nil {
		return nil, domain.ErrNotFound
	}
	return policy, nil
}

func (im *impl) GetFee(c ctx.Ctx, chainId domain.ChainId) (int64, error) {
	policy, err := im.Get(c, chainId)
	if err != nil {
		return 0, err
	}
	return policy.Denominator, nil
}

func (im *impl) SetFee(c ctx.Ctx, chainId domain.ChainId, caller domain.Address, denominator int64) error {
	policy, err := im.Get(c, chainId)
	if err != nil {
		return err
	}
	if !policy.IsAdmin(caller) {
		return domain.ErrAccessDenied
	}
	if denominator <= 0 {
		return domain.ErrInvalidFeeDenominator
	}
	if err := im.feeRepo.Patch(c, chainId, fee.PatchablePolicy{Denominator: ptr.Int64(denominator)}); err != nil {
		c.WithFields(log.Fields{
			"err":         err,
			"chainId":     chainId,
			"denominator": denominator,
		}).Error("feeRepo.Patch failed")
		return err
	}
	return nil
}

func (im *impl) GetRecipient(c ctx.Ctx, chainId domain.ChainId) (domain.Address, error) {
	policy, err := im.Get(c, chainId)
	if err != nil {
		return domain.EmptyAddress, err
	}
	return policy.Recipient, nil
}

func (im *impl) SetRecipient(c ctx.Ctx, chainId domain.ChainId, caller, recipient domain.Address) error {
	policy, err := im.Get(c, chainId)
	if err != nil {
		return err
	}
	if !policy.IsAdmin(caller) {
		return domain.ErrAccessDenied
	}
	if recipient.IsEmpty() {
		return domain.ErrBadParamInput
	}
	lowered := recipient.ToLower()
	if err := im.feeRepo.Patch(c, chainId, fee.PatchablePolicy{Recipient: &lowered}); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"chainId":   chainId,
			"recipient": recipient,
		}).Error("feeRepo.Patch failed")
		return err
	}
	return nil
}
