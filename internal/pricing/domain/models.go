package domain

import (
	"time"

	pricedomain "github.com/pawhaus/boarding/internal/price/domain"
)

// QuoteRequest asks for the full price of one dog's stay, optionally
// with extra services attached.
type QuoteRequest struct {
	DogID    string    `json:"dog_id"`
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
	AddonIDs []string  `json:"addon_ids"`
}

// NightDetail is the audit row for a single night of a stay. When no
// base price row exists for the night the detail is kept with a zero
// base and MissingBasePrice set, so the gap stays visible in the
// breakdown instead of silently vanishing.
type NightDetail struct {
	Date              time.Time             `json:"date"`
	PriceType         pricedomain.PriceType `json:"price_type"`
	BasePrice         float64               `json:"base_price"`
	SeasonName        string                `json:"season_name,omitempty"`
	SeasonMultiplier  float64               `json:"season_multiplier"`
	SeasonAddition    float64               `json:"season_addition"`
	SpecialDateName   string                `json:"special_date_name,omitempty"`
	SpecialMultiplier float64               `json:"special_multiplier"`
	SpecialAddition   float64               `json:"special_addition"`
	FinalPrice        float64               `json:"final_price"`
	MissingBasePrice  bool                  `json:"missing_base_price,omitempty"`
}

// ServiceLine is one priced addon service in a breakdown.
type ServiceLine struct {
	ServiceName string  `json:"service_name"`
	Price       float64 `json:"price"`
}

// DiscountLine is one applied discount in a breakdown.
type DiscountLine struct {
	DiscountName string  `json:"discount_name"`
	Amount       float64 `json:"amount"`
}

// PriceBreakdown is the complete result of a stay quote.
type PriceBreakdown struct {
	DogSize            pricedomain.DogSize `json:"dog_size"`
	TotalNights        int                 `json:"total_nights"`
	AccommodationPrice float64             `json:"accommodation_price"`
	ServicesPrice      float64             `json:"services_price"`
	DiscountTotal      float64             `json:"discount_total"`
	FinalPrice         float64             `json:"final_price"`
	NightDetails       []NightDetail       `json:"night_details"`
	ServiceLines       []ServiceLine       `json:"service_lines,omitempty"`
	DiscountLines      []DiscountLine      `json:"discount_lines,omitempty"`
	CalculationDate    time.Time           `json:"calculation_date"`
}
