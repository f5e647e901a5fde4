package domain

import "errors"

// Reason strings of the settlement taxonomy are part of the external
// contract; integrations match on them verbatim.
var (
	// ErrAccessDenied will throw when a gated admin setter is called by a non-admin account
	ErrAccessDenied = errors.New("Access denied.")
	// ErrInvalidDeadline will throw when an offer deadline is not strictly in the future
	ErrInvalidDeadline = errors.New("deadline should be in the future.")
	// ErrInsufficientAssetBalance will throw when the seller holds less of the asset than offered
	ErrInsufficientAssetBalance = errors.New("There are not enough tokens.")
	// ErrInsufficientFunds will throw when the buyer cannot cover price plus fee
	ErrInsufficientFunds = errors.New("Insufficient fund")

	ErrNoActiveOffer         = errors.New("no active offer")
	ErrOfferAlreadyActive    = errors.New("offer already active")
	ErrOfferExpired          = errors.New("offer expired")
	ErrNotOfferOwner         = errors.New("caller is not the offer owner")
	ErrOracleUnavailable     = errors.New("price oracle unavailable")
	ErrUnsupportedPayToken   = errors.New("unsupported pay token")
	ErrInvalidFeeDenominator = errors.New("fee denominator must be positive")
	ErrLedgerTransferFailed  = errors.New("ledger transfer failed")

	ErrInternalServerError = errors.New("Internal Server Error")
	ErrNotFound            = errors.New("Your requested Item is not found")
	ErrBadParamInput       = errors.New("Given Param is not valid")
	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidChainId      = errors.New("invalid chain id")
	ErrInvalidAddress      = errors.New("Invalid address")
)
