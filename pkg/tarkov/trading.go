package tarkov

import (
	"context"
	"errors"
	"net/url"
)

// Trader is an NPC trader.
type Trader struct {
	ID                  string          `json:"_id"`
	Working             bool            `json:"working"`
	CustomizationSeller bool            `json:"customization_seller"`
	Name                string          `json:"name"`
	Surname             string          `json:"surname"`
	Nickname            string          `json:"nickname"`
	Location            string          `json:"location"`
	Avatar              string          `json:"avatar"`
	BalanceRub          uint64          `json:"balance_rub"`
	BalanceDol          uint64          `json:"balance_dol"`
	BalanceEur          uint64          `json:"balance_eur"`
	Display             bool            `json:"display"`
	Discount            int64           `json:"discount"`
	DiscountEnd         int64           `json:"discount_end"`
	BuyerUp             bool            `json:"buyer_up"`
	Currency            string          `json:"currency"`
	SupplyNextTime      uint64          `json:"supply_next_time"`
	Repair              TraderRepair    `json:"repair"`
	Insurance           TraderInsurance `json:"insurance"`
	LoyaltyLevels       []TraderLoyalty `json:"loyalty"`
	GridHeight          uint64          `json:"gridHeight"`
	SellCategory        []string        `json:"sell_category"`
}

type TraderRepair struct {
	Availability bool     `json:"availability"`
	Quality      string   `json:"quality"`
	Currency     string   `json:"currency"`
	CurrencyCoef float64  `json:"currency_coefficient"`
	ExcludedIDs  []string `json:"excluded_id_list"`
}

type TraderInsurance struct {
	Availability bool     `json:"availability"`
	MinPayment   float64  `json:"min_payment"`
	MinReturnHr  uint64   `json:"min_return_hour"`
	MaxReturnHr  uint64   `json:"max_return_hour"`
	MaxStorageHr uint64   `json:"max_storage_time"`
	ExcludedIDs  []string `json:"excluded_category"`
}

type TraderLoyalty struct {
	MinLevel           uint64  `json:"minLevel"`
	MinSalesSum        uint64  `json:"minSalesSum"`
	MinStanding        float64 `json:"minStanding"`
	BuyPriceCoef       float64 `json:"buy_price_coef"`
	RepairPriceCoef    float64 `json:"repair_price_coef"`
	InsurancePriceCoef float64 `json:"insurance_price_coef"`
}

// TraderAssort is what a trader offers. BarterScheme maps an offered item id
// to the alternative payments accepted for it.
type TraderAssort struct {
	Items             []Item                           `json:"items"`
	BarterScheme      map[string][][]BarterRequirement `json:"barter_scheme"`
	LoyaltyLevelItems map[string]uint64                `json:"loyal_level_items"`
}

type BarterRequirement struct {
	Template string  `json:"_tpl"`
	Count    float64 `json:"count"`
}

var errTraderID = errors.New("trader id is required")

// Traders lists all traders.
func (c *Client) Traders(ctx context.Context) ([]Trader, error) {
	traders, err := Do[[]Trader](ctx, c, Request{
		URL: c.config.Endpoints.Trading + "/client/trading/api/getTradersList",
	})
	if err != nil {
		return nil, err
	}
	return *traders, nil
}

// Trader returns a single trader.
func (c *Client) Trader(ctx context.Context, traderID string) (*Trader, error) {
	if traderID == "" {
		return nil, errTraderID
	}
	return Do[Trader](ctx, c, Request{
		URL: c.config.Endpoints.Trading + "/client/trading/api/getTrader/" + url.PathEscape(traderID),
	})
}

// TraderAssort returns the items a trader sells.
func (c *Client) TraderAssort(ctx context.Context, traderID string) (*TraderAssort, error) {
	if traderID == "" {
		return nil, errTraderID
	}
	return Do[TraderAssort](ctx, c, Request{
		URL: c.config.Endpoints.Trading + "/client/trading/api/getTraderAssort/" + url.PathEscape(traderID),
	})
}
