package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// PricingDefaults collects the fallback constants used by the price
// calculator and the capacity checker. They live in one reloadable
// object so operators can audit and tests can override them.
type PricingDefaults struct {
	// AssumedDogHeightCm stands in for an occupant whose height is
	// unknown when summing used room area.
	AssumedDogHeightCm float64 `mapstructure:"assumedDogHeightCm"`
	// FallbackRequiredArea is the area assigned when no height band matches.
	FallbackRequiredArea float64 `mapstructure:"fallbackRequiredArea"`
	// FallbackRoomArea applies to rooms without area_sqm or legacy capacity.
	FallbackRoomArea float64 `mapstructure:"fallbackRoomArea"`
	// UnlimitedMaxDogs is the effective headcount limit for rooms
	// without a max_dogs_override.
	UnlimitedMaxDogs int `mapstructure:"unlimitedMaxDogs"`
}

func DefaultPricingDefaults() PricingDefaults {
	return PricingDefaults{
		AssumedDogHeightCm:   40,
		FallbackRequiredArea: 2.0,
		FallbackRoomArea:     10,
		UnlimitedMaxDogs:     999,
	}
}

type PricingDefaultsHolder struct {
	current atomic.Value // holds PricingDefaults
}

// NewStaticPricingDefaults wraps fixed defaults without file watching. Test helper.
func NewStaticPricingDefaults(defaults PricingDefaults) *PricingDefaultsHolder {
	holder := &PricingDefaultsHolder{}
	holder.current.Store(defaults)
	return holder
}

func NewPricingDefaultsHolder() (*PricingDefaultsHolder, error) {
	v := viper.New()

	v.SetConfigName("pricing")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/boarding")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BOARDING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		defaults := DefaultPricingDefaults()
		v.SetDefault("pricing.assumedDogHeightCm", defaults.AssumedDogHeightCm)
		v.SetDefault("pricing.fallbackRequiredArea", defaults.FallbackRequiredArea)
		v.SetDefault("pricing.fallbackRoomArea", defaults.FallbackRoomArea)
		v.SetDefault("pricing.unlimitedMaxDogs", defaults.UnlimitedMaxDogs)
	}

	var cfg PricingDefaults
	if err := v.UnmarshalKey("pricing", &cfg); err != nil {
		return nil, err
	}
	if err := validatePricingDefaults(cfg); err != nil {
		return nil, err
	}

	holder := &PricingDefaultsHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated PricingDefaults
		if err := v.UnmarshalKey("pricing", &updated); err != nil {
			log.Printf("[pricing-config] reload failed: %v", err)
			return
		}
		if err := validatePricingDefaults(updated); err != nil {
			log.Printf("[pricing-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[pricing-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

func (h *PricingDefaultsHolder) Get() PricingDefaults {
	return h.current.Load().(PricingDefaults)
}

func validatePricingDefaults(cfg PricingDefaults) error {
	if cfg.AssumedDogHeightCm <= 0 {
		return errors.New("pricing.assumedDogHeightCm must be positive")
	}
	if cfg.FallbackRequiredArea <= 0 {
		return errors.New("pricing.fallbackRequiredArea must be positive")
	}
	if cfg.FallbackRoomArea <= 0 {
		return errors.New("pricing.fallbackRoomArea must be positive")
	}
	if cfg.UnlimitedMaxDogs <= 0 {
		return errors.New("pricing.unlimitedMaxDogs must be positive")
	}
	return nil
}
