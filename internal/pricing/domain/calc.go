package domain

import (
	"math"
	"time"

	pricedomain "github.com/pawhaus/boarding/internal/price/domain"
	seasondomain "github.com/pawhaus/boarding/internal/season/domain"
	specialdomain "github.com/pawhaus/boarding/internal/specialdate/domain"
)

// SizeFor classifies a dog by shoulder height. Unknown height is
// treated as a medium dog.
func SizeFor(heightCm *float64) pricedomain.DogSize {
	if heightCm == nil {
		return pricedomain.SizeMedium
	}
	switch {
	case *heightCm <= 35:
		return pricedomain.SizeSmall
	case *heightCm <= 55:
		return pricedomain.SizeMedium
	default:
		return pricedomain.SizeLarge
	}
}

// RequiredArea is the floor area in square meters a single dog needs,
// banded by shoulder height per SJVFS 2019:2. Unknown height falls
// back to the given default.
func RequiredArea(heightCm *float64, fallback float64) float64 {
	if heightCm == nil {
		return fallback
	}
	switch {
	case *heightCm <= 35:
		return 2.0
	case *heightCm <= 45:
		return 2.5
	case *heightCm <= 55:
		return 3.5
	case *heightCm <= 65:
		return 4.5
	default:
		return 5.5
	}
}

// Nights counts the nights between check-in and check-out, rounding
// partial days up. Checking out at any point during a day still counts
// the preceding night.
func Nights(checkIn, checkOut time.Time) int {
	diff := checkOut.Sub(checkIn)
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// NightType resolves which price row a night uses. A matching special
// date always forces holiday pricing; otherwise Saturday and Sunday
// are weekend nights.
func NightType(date time.Time, specials []specialdomain.SpecialDate) (pricedomain.PriceType, *specialdomain.SpecialDate) {
	for i := range specials {
		if specials[i].Active && specials[i].Matches(date) {
			return pricedomain.PriceHoliday, &specials[i]
		}
	}
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return pricedomain.PriceWeekend, nil
	}
	return pricedomain.PriceWeekday, nil
}

// SeasonFor picks the season in effect on a date. When ranges overlap
// the most specific one wins: shortest range first, then earliest
// start, then lowest id.
func SeasonFor(date time.Time, seasons []seasondomain.PricingSeason) *seasondomain.PricingSeason {
	var best *seasondomain.PricingSeason
	for i := range seasons {
		s := &seasons[i]
		if !s.Active || !s.Contains(date) {
			continue
		}
		if best == nil {
			best = s
			continue
		}
		switch {
		case s.Length() < best.Length():
			best = s
		case s.Length() == best.Length() && s.StartDate.Before(best.StartDate):
			best = s
		case s.Length() == best.Length() && s.StartDate.Equal(best.StartDate) && s.ID < best.ID:
			best = s
		}
	}
	return best
}

// ResolveNight prices a single night: the base rate for the night's
// price type, adjusted multiplicatively and then additively by the
// season and special date in effect.
func ResolveNight(date time.Time, size pricedomain.DogSize, prices []pricedomain.BoardingPrice, seasons []seasondomain.PricingSeason, specials []specialdomain.SpecialDate) NightDetail {
	priceType, special := NightType(date, specials)

	detail := NightDetail{
		Date:              date,
		PriceType:         priceType,
		SeasonMultiplier:  1.0,
		SpecialMultiplier: 1.0,
	}

	found := false
	for _, p := range prices {
		if p.Active && p.DogSize == size && p.PriceType == priceType {
			detail.BasePrice = p.PricePerNight
			found = true
			break
		}
	}
	detail.MissingBasePrice = !found

	if s := SeasonFor(date, seasons); s != nil {
		detail.SeasonName = s.SeasonName
		detail.SeasonMultiplier = s.PriceMultiplier
		detail.SeasonAddition = s.PriceAddition
	}
	if special != nil {
		detail.SpecialDateName = special.DateName
		detail.SpecialMultiplier = special.PriceMultiplier
		detail.SpecialAddition = special.PriceAddition
	}

	detail.FinalPrice = detail.BasePrice*detail.SeasonMultiplier*detail.SpecialMultiplier +
		detail.SeasonAddition + detail.SpecialAddition

	return detail
}
