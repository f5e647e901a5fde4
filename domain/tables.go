package domain

type Table string

const (
	TableOffers        Table = "offers"
	TableOfferEvents   Table = "offer_events"
	TableFeePolicies   Table = "fee_policies"
	TablePayTokens     Table = "pay_tokens"
	TableAssetHoldings Table = "asset_holdings"
	TableBalances      Table = "balances"
)
