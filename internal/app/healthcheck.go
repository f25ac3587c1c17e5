package app

import (
	"net/http"

	"github.com/metinatakli/cinema-ticket-service/api"
	"github.com/metinatakli/cinema-ticket-service/internal/domain"
)

func (app *Application) GetHealth(w http.ResponseWriter, r *http.Request) {
	pricing := app.config.Pricing

	prices := make(map[string]int64, domain.CategoryCount)
	for _, category := range domain.Categories() {
		prices[category.String()] = pricing.Price(category)
	}

	resp := api.HealthcheckResponse{
		Status: "UP",
		SystemInfo: api.SystemInfo{
			Version:     version,
			Environment: app.config.Env,
		},
		Pricing: api.PricingInfo{
			MaxTickets:         pricing.MaxTickets,
			Prices:             prices,
			EnforceInfantRatio: pricing.EnforceInfantRatio,
		},
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
