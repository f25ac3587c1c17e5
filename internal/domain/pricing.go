package domain

import (
	"errors"
	"fmt"
)

const (
	DefaultMaxTickets  = 25
	DefaultAdultPrice  = 25
	DefaultChildPrice  = 15
	DefaultInfantPrice = 0
)

// PricingConfig is loaded once at startup and never modified afterwards.
type PricingConfig struct {
	MaxTickets         int
	Prices             [CategoryCount]int64
	EnforceInfantRatio bool
}

func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		MaxTickets:         DefaultMaxTickets,
		Prices:             [CategoryCount]int64{DefaultAdultPrice, DefaultChildPrice, DefaultInfantPrice},
		EnforceInfantRatio: true,
	}
}

func (c PricingConfig) Price(category Category) int64 {
	return c.Prices[category]
}

func (c PricingConfig) Validate() error {
	if c.MaxTickets <= 0 {
		return fmt.Errorf("max tickets must be greater than zero, got %d", c.MaxTickets)
	}

	// a zero adult price means the pricing table was never configured
	if c.Prices[Adult] <= 0 {
		return errors.New("adult ticket price must be greater than zero")
	}

	for _, category := range Categories() {
		if c.Prices[category] < 0 {
			return fmt.Errorf("%s ticket price must not be negative", category)
		}
	}

	return nil
}
