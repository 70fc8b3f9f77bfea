package domain

import (
	"testing"
	"time"

	pricedomain "github.com/pawhaus/boarding/internal/price/domain"
	seasondomain "github.com/pawhaus/boarding/internal/season/domain"
	specialdomain "github.com/pawhaus/boarding/internal/specialdate/domain"
	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSizeFor(t *testing.T) {
	assert.Equal(t, pricedomain.SizeSmall, SizeFor(f(20)))
	assert.Equal(t, pricedomain.SizeSmall, SizeFor(f(35)))
	assert.Equal(t, pricedomain.SizeMedium, SizeFor(f(35.5)))
	assert.Equal(t, pricedomain.SizeMedium, SizeFor(f(55)))
	assert.Equal(t, pricedomain.SizeLarge, SizeFor(f(55.1)))
	assert.Equal(t, pricedomain.SizeLarge, SizeFor(f(80)))

	// Unknown height defaults to medium.
	assert.Equal(t, pricedomain.SizeMedium, SizeFor(nil))
}

func TestRequiredArea(t *testing.T) {
	assert.Equal(t, 2.0, RequiredArea(f(20), 2.0))
	assert.Equal(t, 2.0, RequiredArea(f(35), 2.0))
	assert.Equal(t, 2.5, RequiredArea(f(36), 2.0))
	assert.Equal(t, 2.5, RequiredArea(f(45), 2.0))
	assert.Equal(t, 3.5, RequiredArea(f(46), 2.0))
	assert.Equal(t, 3.5, RequiredArea(f(55), 2.0))
	assert.Equal(t, 4.5, RequiredArea(f(56), 2.0))
	assert.Equal(t, 4.5, RequiredArea(f(65), 2.0))
	assert.Equal(t, 5.5, RequiredArea(f(66), 2.0))

	// Unknown height uses the configured fallback.
	assert.Equal(t, 2.0, RequiredArea(nil, 2.0))
	assert.Equal(t, 3.0, RequiredArea(nil, 3.0))
}

func TestNights(t *testing.T) {
	checkIn := time.Date(2026, 7, 1, 14, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, Nights(checkIn, checkIn.Add(24*time.Hour)))
	assert.Equal(t, 3, Nights(checkIn, checkIn.Add(72*time.Hour)))

	// Partial days round up.
	assert.Equal(t, 1, Nights(checkIn, checkIn.Add(20*time.Hour)))
	assert.Equal(t, 2, Nights(checkIn, checkIn.Add(25*time.Hour)))

	// Zero or inverted ranges yield zero nights.
	assert.Equal(t, 0, Nights(checkIn, checkIn))
	assert.Equal(t, 0, Nights(checkIn, checkIn.Add(-24*time.Hour)))
}

func TestNightType(t *testing.T) {
	// 2026-07-03 is a Friday, 2026-07-04 a Saturday.
	friday := date(2026, 7, 3)
	saturday := date(2026, 7, 4)
	sunday := date(2026, 7, 5)

	pt, sp := NightType(friday, nil)
	assert.Equal(t, pricedomain.PriceWeekday, pt)
	assert.Nil(t, sp)

	pt, _ = NightType(saturday, nil)
	assert.Equal(t, pricedomain.PriceWeekend, pt)
	pt, _ = NightType(sunday, nil)
	assert.Equal(t, pricedomain.PriceWeekend, pt)
}

func TestNightTypeSpecialDateForcesHoliday(t *testing.T) {
	midsummer := specialdomain.SpecialDate{
		DateName:        "Midsommarafton",
		DateValue:       date(2026, 6, 19),
		PriceMultiplier: 1.5,
		Active:          true,
	}

	// 2026-06-19 is a Friday, still priced as holiday.
	pt, sp := NightType(date(2026, 6, 19), []specialdomain.SpecialDate{midsummer})
	assert.Equal(t, pricedomain.PriceHoliday, pt)
	assert.NotNil(t, sp)
	assert.Equal(t, "Midsommarafton", sp.DateName)

	// Inactive special dates are ignored.
	midsummer.Active = false
	pt, sp = NightType(date(2026, 6, 19), []specialdomain.SpecialDate{midsummer})
	assert.Equal(t, pricedomain.PriceWeekday, pt)
	assert.Nil(t, sp)
}

func TestNightTypeRecurringSpecialDate(t *testing.T) {
	christmas := specialdomain.SpecialDate{
		DateName:        "Juldagen",
		DateValue:       date(2020, 12, 25),
		RecurringYearly: true,
		Active:          true,
	}

	pt, sp := NightType(date(2026, 12, 25), []specialdomain.SpecialDate{christmas})
	assert.Equal(t, pricedomain.PriceHoliday, pt)
	assert.NotNil(t, sp)

	pt, sp = NightType(date(2026, 12, 24), []specialdomain.SpecialDate{christmas})
	assert.Equal(t, pricedomain.PriceWeekday, pt)
	assert.Nil(t, sp)
}

func TestSeasonForTieBreak(t *testing.T) {
	summer := seasondomain.PricingSeason{
		ID:         1,
		SeasonName: "Sommar",
		StartDate:  date(2026, 6, 1),
		EndDate:    date(2026, 8, 31),
		Active:     true,
	}
	july := seasondomain.PricingSeason{
		ID:         2,
		SeasonName: "Juli",
		StartDate:  date(2026, 7, 1),
		EndDate:    date(2026, 7, 31),
		Active:     true,
	}

	// The shorter range wins inside the overlap.
	s := SeasonFor(date(2026, 7, 15), []seasondomain.PricingSeason{summer, july})
	assert.NotNil(t, s)
	assert.Equal(t, "Juli", s.SeasonName)

	// Outside the shorter range the long season still applies.
	s = SeasonFor(date(2026, 8, 15), []seasondomain.PricingSeason{summer, july})
	assert.NotNil(t, s)
	assert.Equal(t, "Sommar", s.SeasonName)

	// Equal-length overlaps fall back to the earlier start.
	augustA := seasondomain.PricingSeason{ID: 3, SeasonName: "A", StartDate: date(2026, 8, 1), EndDate: date(2026, 8, 10), Active: true}
	augustB := seasondomain.PricingSeason{ID: 4, SeasonName: "B", StartDate: date(2026, 8, 5), EndDate: date(2026, 8, 14), Active: true}
	s = SeasonFor(date(2026, 8, 7), []seasondomain.PricingSeason{augustB, augustA})
	assert.NotNil(t, s)
	assert.Equal(t, "A", s.SeasonName)

	// No season in effect.
	assert.Nil(t, SeasonFor(date(2026, 1, 15), []seasondomain.PricingSeason{summer, july}))

	// Inactive seasons never match.
	summer.Active = false
	july.Active = false
	assert.Nil(t, SeasonFor(date(2026, 7, 15), []seasondomain.PricingSeason{summer, july}))
}

func TestResolveNight(t *testing.T) {
	prices := []pricedomain.BoardingPrice{
		{DogSize: pricedomain.SizeMedium, PriceType: pricedomain.PriceWeekday, PricePerNight: 300, Active: true},
		{DogSize: pricedomain.SizeMedium, PriceType: pricedomain.PriceWeekend, PricePerNight: 350, Active: true},
		{DogSize: pricedomain.SizeMedium, PriceType: pricedomain.PriceHoliday, PricePerNight: 450, Active: true},
	}
	seasons := []seasondomain.PricingSeason{
		{
			SeasonName:      "Högsäsong",
			StartDate:       date(2026, 6, 1),
			EndDate:         date(2026, 8, 31),
			PriceMultiplier: 1.2,
			PriceAddition:   25,
			Active:          true,
		},
	}
	specials := []specialdomain.SpecialDate{
		{
			DateName:        "Midsommarafton",
			DateValue:       date(2026, 6, 19),
			PriceMultiplier: 1.5,
			PriceAddition:   50,
			Active:          true,
		},
	}

	// Plain weekday inside the season: 300*1.2 + 25.
	d := ResolveNight(date(2026, 6, 17), pricedomain.SizeMedium, prices, seasons, specials)
	assert.Equal(t, pricedomain.PriceWeekday, d.PriceType)
	assert.InDelta(t, 385.0, d.FinalPrice, 1e-9)
	assert.False(t, d.MissingBasePrice)

	// Special date: holiday base, both adjustments compound.
	// 450*1.2*1.5 + 25 + 50 = 885.
	d = ResolveNight(date(2026, 6, 19), pricedomain.SizeMedium, prices, seasons, specials)
	assert.Equal(t, pricedomain.PriceHoliday, d.PriceType)
	assert.Equal(t, "Midsommarafton", d.SpecialDateName)
	assert.Equal(t, "Högsäsong", d.SeasonName)
	assert.InDelta(t, 885.0, d.FinalPrice, 1e-9)

	// Weekend outside any season: flat 350.
	d = ResolveNight(date(2026, 2, 7), pricedomain.SizeMedium, prices, nil, nil)
	assert.Equal(t, pricedomain.PriceWeekend, d.PriceType)
	assert.InDelta(t, 350.0, d.FinalPrice, 1e-9)
}

func TestResolveNightMissingPriceRow(t *testing.T) {
	// No price rows configured for large dogs.
	prices := []pricedomain.BoardingPrice{
		{DogSize: pricedomain.SizeMedium, PriceType: pricedomain.PriceWeekday, PricePerNight: 300, Active: true},
	}

	d := ResolveNight(date(2026, 6, 17), pricedomain.SizeLarge, prices, nil, nil)
	assert.True(t, d.MissingBasePrice)
	assert.Equal(t, 0.0, d.BasePrice)
	assert.Equal(t, 0.0, d.FinalPrice)

	// Inactive rows do not count.
	prices[0].Active = false
	d = ResolveNight(date(2026, 6, 17), pricedomain.SizeMedium, prices, nil, nil)
	assert.True(t, d.MissingBasePrice)
}
