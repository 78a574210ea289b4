package tarkov

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// SortBy is the ragfair sort column.
type SortBy uint8

const (
	SortByID SortBy = iota
	_
	SortByBarter
	_
	SortByMerchantRating
	SortByPrice
	_
	SortByExpiry
)

// SortDirection is the ragfair sort order.
type SortDirection uint8

const (
	SortAscending SortDirection = iota
	SortDescending
)

// Currency filter values. CurrencyAny disables the filter.
type Currency uint8

const (
	CurrencyAny Currency = iota
	CurrencyRouble
	CurrencyDollar
	CurrencyEuro
)

// Owner filter values. OwnerAny disables the filter.
type Owner uint8

const (
	OwnerAny Owner = iota
	OwnerTraders
	OwnerPlayers
)

// SearchRequest is a flea market query. Page and Limit are required; the
// zero value of every other field disables its filter.
type SearchRequest struct {
	Page              uint64        `json:"page"`
	Limit             uint64        `json:"limit"`
	SortType          SortBy        `json:"sortType"`
	SortDirection     SortDirection `json:"sortDirection"`
	Currency          Currency      `json:"currency"`
	PriceFrom         uint64        `json:"priceFrom"`
	PriceTo           uint64        `json:"priceTo"`
	QuantityFrom      uint64        `json:"quantityFrom"`
	QuantityTo        uint64        `json:"quantityTo"`
	ConditionFrom     uint64        `json:"conditionFrom"`
	ConditionTo       uint64        `json:"conditionTo"`
	OneHourExpiration bool          `json:"oneHourExpiration"`
	RemoveBartering   bool          `json:"removeBartering"`
	OfferOwnerType    Owner         `json:"offerOwnerType"`
	OnlyFunctional    bool          `json:"onlyFunctional"`
	UpdateOfferCount  bool          `json:"updateOfferCount"`
	HandbookID        string        `json:"handbookId"`
	LinkedSearchID    string        `json:"linkedSearchId"`
	NeededSearchID    string        `json:"neededSearchId"`
	Tm                uint64        `json:"tm"`
}

// SearchResult is one page of offers.
type SearchResult struct {
	Categories       map[string]uint64 `json:"categories"`
	Offers           []Offer           `json:"offers"`
	OffersCount      uint64            `json:"offersCount"`
	SelectedCategory string            `json:"selectedCategory"`
}

type Offer struct {
	ID               string        `json:"_id"`
	IntID            uint64        `json:"intId"`
	User             OfferUser     `json:"user"`
	Root             string        `json:"root"`
	Items            []Item        `json:"items"`
	ItemsCost        uint64        `json:"itemsCost"`
	Requirements     []Requirement `json:"requirements"`
	RequirementsCost uint64        `json:"requirementsCost"`
	SummaryCost      uint64        `json:"summaryCost"`
	SellInOnePiece   bool          `json:"sellInOnePiece"`
	StartTime        uint64        `json:"startTime"`
	EndTime          uint64        `json:"endTime"`
	LoyaltyLevel     uint64        `json:"loyaltyLevel"`
}

type OfferUser struct {
	ID              string           `json:"id"`
	Nickname        *string          `json:"nickname"`
	Rating          *decimal.Decimal `json:"rating"`
	IsRatingGrowing *bool            `json:"isRatingGrowing"`
	Avatar          *string          `json:"avatar"`

	// A number for players, a string for traders.
	MemberType Unstable `json:"memberType"`
}

type Requirement struct {
	Template string          `json:"_tpl"`
	Count    decimal.Decimal `json:"count"`
}

// ItemPrice is the current market price range of an item template.
type ItemPrice struct {
	Template string          `json:"templateId"`
	Min      decimal.Decimal `json:"min"`
	Max      decimal.Decimal `json:"max"`
	Avg      decimal.Decimal `json:"avg"`
}

type itemPriceRequest struct {
	TemplateID string `json:"templateId"`
}

var errSearchLimit = errors.New("search limit must be greater than zero")

// SearchMarket queries the flea market.
func (c *Client) SearchMarket(ctx context.Context, req *SearchRequest) (*SearchResult, error) {
	if req == nil || req.Limit == 0 {
		return nil, errSearchLimit
	}
	return Do[SearchResult](ctx, c, Request{
		URL:  c.config.Endpoints.Ragfair + "/client/ragfair/find",
		Body: req,
	})
}

// ItemPrice returns the market price range of an item template.
func (c *Client) ItemPrice(ctx context.Context, templateID string) (*ItemPrice, error) {
	if templateID == "" {
		return nil, errors.New("template id is required")
	}
	return Do[ItemPrice](ctx, c, Request{
		URL:  c.config.Endpoints.Ragfair + "/client/ragfair/itemMarketPrice",
		Body: &itemPriceRequest{TemplateID: templateID},
	})
}
