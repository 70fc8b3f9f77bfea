package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	addondomain "github.com/pawhaus/boarding/internal/addon/domain"
	"github.com/pawhaus/boarding/internal/clock"
	discountdomain "github.com/pawhaus/boarding/internal/discount/domain"
	dogdomain "github.com/pawhaus/boarding/internal/dog/domain"
	"github.com/pawhaus/boarding/internal/observability/metrics"
	pricedomain "github.com/pawhaus/boarding/internal/price/domain"
	"github.com/pawhaus/boarding/internal/pricing/domain"
	seasondomain "github.com/pawhaus/boarding/internal/season/domain"
	specialdomain "github.com/pawhaus/boarding/internal/specialdate/domain"
	"github.com/pawhaus/boarding/pkg/repository"
	"github.com/pawhaus/boarding/pkg/tenantctx"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	Clock   clock.Clock
	Metrics *metrics.QuoteMetrics `optional:"true"`
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	clock   clock.Clock
	metrics *metrics.QuoteMetrics

	dogs      repository.Repository[dogdomain.Dog]
	prices    repository.Repository[pricedomain.BoardingPrice]
	seasons   repository.Repository[seasondomain.PricingSeason]
	specials  repository.Repository[specialdomain.SpecialDate]
	addons    repository.Repository[addondomain.AddonService]
	discounts repository.Repository[discountdomain.CustomerDiscount]
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("pricing.service"),
		clock:     p.Clock,
		metrics:   p.Metrics,
		dogs:      repository.ProvideStore[dogdomain.Dog](p.DB),
		prices:    repository.ProvideStore[pricedomain.BoardingPrice](p.DB),
		seasons:   repository.ProvideStore[seasondomain.PricingSeason](p.DB),
		specials:  repository.ProvideStore[specialdomain.SpecialDate](p.DB),
		addons:    repository.ProvideStore[addondomain.AddonService](p.DB),
		discounts: repository.ProvideStore[discountdomain.CustomerDiscount](p.DB),
	}
}

func (s *Service) Quote(ctx context.Context, req domain.QuoteRequest) (domain.PriceBreakdown, error) {
	breakdown, err := s.quote(ctx, req)
	s.record(err, breakdown)
	return breakdown, err
}

func (s *Service) record(err error, breakdown domain.PriceBreakdown) {
	if s.metrics == nil {
		return
	}
	switch {
	case err != nil:
		s.metrics.RecordQuote("error")
	case hasMissingPrice(breakdown.NightDetails):
		s.metrics.RecordQuote("missing_price")
	default:
		s.metrics.RecordQuote("ok")
	}
}

func hasMissingPrice(details []domain.NightDetail) bool {
	for _, d := range details {
		if d.MissingBasePrice {
			return true
		}
	}
	return false
}

func (s *Service) quote(ctx context.Context, req domain.QuoteRequest) (domain.PriceBreakdown, error) {
	orgID, ok := tenantctx.OrgIDFromContext(ctx)
	if !ok || orgID == 0 {
		return domain.PriceBreakdown{}, domain.ErrInvalidOrganization
	}

	dogID, err := snowflake.ParseString(strings.TrimSpace(req.DogID))
	if err != nil {
		return domain.PriceBreakdown{}, domain.ErrInvalidDog
	}
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() || !req.CheckOut.After(req.CheckIn) {
		return domain.PriceBreakdown{}, domain.ErrInvalidDateRange
	}

	dog, err := s.dogs.FindOne(ctx, &dogdomain.Dog{ID: dogID, OrgID: orgID})
	if err != nil {
		return domain.PriceBreakdown{}, err
	}
	if dog == nil {
		return domain.PriceBreakdown{}, domain.ErrDogNotFound
	}

	prices, err := s.loadPrices(ctx, orgID)
	if err != nil {
		return domain.PriceBreakdown{}, err
	}
	seasons, err := s.loadSeasons(ctx, orgID)
	if err != nil {
		return domain.PriceBreakdown{}, err
	}
	specials, err := s.loadSpecials(ctx, orgID)
	if err != nil {
		return domain.PriceBreakdown{}, err
	}

	size := domain.SizeFor(dog.HeightCm)
	nights := domain.Nights(req.CheckIn, req.CheckOut)

	breakdown := domain.PriceBreakdown{
		DogSize:         size,
		TotalNights:     nights,
		CalculationDate: s.clock.Now(),
	}

	date := truncateToDate(req.CheckIn)
	for i := 0; i < nights; i++ {
		detail := domain.ResolveNight(date, size, prices, seasons, specials)
		if detail.MissingBasePrice {
			s.log.Warn("no base price configured for night",
				zap.String("org_id", orgID.String()),
				zap.String("dog_size", string(size)),
				zap.String("price_type", string(detail.PriceType)),
				zap.Time("date", date),
			)
		}
		breakdown.NightDetails = append(breakdown.NightDetails, detail)
		breakdown.AccommodationPrice += detail.FinalPrice
		date = date.AddDate(0, 0, 1)
	}

	if err := s.applyAddons(ctx, orgID, size, req.AddonIDs, &breakdown); err != nil {
		return domain.PriceBreakdown{}, err
	}
	s.applyDiscounts(ctx, orgID, dog.OwnerID, nights, &breakdown)

	final := breakdown.AccommodationPrice + breakdown.ServicesPrice - breakdown.DiscountTotal
	if final < 0 {
		final = 0
	}
	breakdown.FinalPrice = final

	return breakdown, nil
}

func (s *Service) loadPrices(ctx context.Context, orgID snowflake.ID) ([]pricedomain.BoardingPrice, error) {
	rows, err := s.prices.Find(ctx, &pricedomain.BoardingPrice{OrgID: orgID, Active: true})
	if err != nil {
		return nil, err
	}
	out := make([]pricedomain.BoardingPrice, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	return out, nil
}

func (s *Service) loadSeasons(ctx context.Context, orgID snowflake.ID) ([]seasondomain.PricingSeason, error) {
	rows, err := s.seasons.Find(ctx, &seasondomain.PricingSeason{OrgID: orgID, Active: true})
	if err != nil {
		return nil, err
	}
	out := make([]seasondomain.PricingSeason, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	return out, nil
}

func (s *Service) loadSpecials(ctx context.Context, orgID snowflake.ID) ([]specialdomain.SpecialDate, error) {
	rows, err := s.specials.Find(ctx, &specialdomain.SpecialDate{OrgID: orgID, Active: true})
	if err != nil {
		return nil, err
	}
	out := make([]specialdomain.SpecialDate, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	return out, nil
}

func (s *Service) applyAddons(ctx context.Context, orgID snowflake.ID, size pricedomain.DogSize, addonIDs []string, breakdown *domain.PriceBreakdown) error {
	for _, raw := range addonIDs {
		addonID, err := snowflake.ParseString(strings.TrimSpace(raw))
		if err != nil {
			continue
		}
		addon, err := s.addons.FindOne(ctx, &addondomain.AddonService{ID: addonID, OrgID: orgID})
		if err != nil {
			return err
		}
		if addon == nil || !addon.Active {
			continue
		}

		price := addonPriceFor(addon, size)
		breakdown.ServicesPrice += price
		breakdown.ServiceLines = append(breakdown.ServiceLines, domain.ServiceLine{
			ServiceName: addon.ServiceName,
			Price:       price,
		})
	}
	return nil
}

// addonPriceFor prefers a flat price and otherwise picks the tier for
// the dog's size. A tier with no configured price counts as zero.
func addonPriceFor(addon *addondomain.AddonService, size pricedomain.DogSize) float64 {
	if addon.PriceFlat != nil {
		return *addon.PriceFlat
	}
	var tier *float64
	switch size {
	case pricedomain.SizeSmall:
		tier = addon.PriceSmall
	case pricedomain.SizeLarge:
		tier = addon.PriceLarge
	default:
		tier = addon.PriceMedium
	}
	if tier == nil {
		return 0
	}
	return *tier
}

// applyDiscounts never fails the quote: a discount lookup error is
// logged and the stay is priced without discounts.
func (s *Service) applyDiscounts(ctx context.Context, orgID, ownerID snowflake.ID, nights int, breakdown *domain.PriceBreakdown) {
	rows, err := s.discounts.Find(ctx, &discountdomain.CustomerDiscount{OrgID: orgID, OwnerID: ownerID})
	if err != nil {
		s.log.Warn("discount lookup failed, pricing without discounts",
			zap.String("org_id", orgID.String()),
			zap.String("owner_id", ownerID.String()),
			zap.Error(err),
		)
		return
	}

	subtotal := breakdown.AccommodationPrice + breakdown.ServicesPrice
	now := s.clock.Now()
	for _, d := range rows {
		if !d.AppliesTo(now, nights) {
			continue
		}
		var amount float64
		if d.DiscountPercentage != nil {
			amount = subtotal * (*d.DiscountPercentage / 100)
		} else if d.DiscountAmount != nil {
			amount = *d.DiscountAmount
		}
		if amount == 0 {
			continue
		}
		breakdown.DiscountTotal += amount
		breakdown.DiscountLines = append(breakdown.DiscountLines, domain.DiscountLine{
			DiscountName: d.DiscountName,
			Amount:       amount,
		})
	}
}

func truncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
