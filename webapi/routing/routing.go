package routing

import (
	"github.com/gofiber/fiber/v2"

	routingsvc "railroute/pkg/service/routing"
	"railroute/webapi/common"
)

// Routes registers HTTP routes for payment-routing simulation.
func Routes(app *fiber.App, routingSvc *routingsvc.Service) {
	app.Get("/rails", ListRails(routingSvc))
	app.Post("/simulate-payment", SimulatePayment(routingSvc))
}

// ListRails returns a Fiber handler listing the rail catalog.
// @Summary List settlement rails
// @Description Get the static catalog of settlement rails and their cost/latency parameters
// @Tags routing
// @Produce json
// @Success 200 {array} RailDTO
// @Router /rails [get]
func ListRails(routingSvc *routingsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		defs := routingSvc.Rails(c.Context())
		dtos := make([]RailDTO, 0, len(defs))
		for _, d := range defs {
			dtos = append(dtos, RailDTO{
				ID:                string(d.Kind),
				DisplayName:       d.DisplayName,
				BaseFeeAED:        d.BaseFeeAED,
				VariableFeePct:    d.VariableFeePct,
				FxSpreadPct:       d.FxSpreadPct,
				SettlementMinutes: d.SettlementMinutes,
				Crypto:            d.Crypto,
				RiskNotes:         d.RiskNotes,
			})
		}
		return c.JSON(dtos)
	}
}

// SimulatePayment returns a Fiber handler that scores every eligible rail
// for the requested transfer and recommends one.
// @Summary Simulate a payment routing decision
// @Description Quote all eligible rails for an amount and recommend the cheapest that meets the urgency deadline
// @Tags routing
// @Accept json
// @Produce json
// @Param request body SimulatePaymentRequest true "Transfer to simulate"
// @Success 200 {object} routing.SimulationResult
// @Failure 400 {object} common.ErrorResponse
// @Router /simulate-payment [post]
func SimulatePayment(routingSvc *routingsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[SimulatePaymentRequest](c)
		if err != nil {
			return nil // Error already written by BindAndValidate
		}

		result, err := routingSvc.Simulate(c.Context(), routingsvc.SimulationInput{
			Amount:              input.Amount,
			SourceCurrency:      input.SourceCurrency,
			DestinationCurrency: input.DestinationCurrency,
			UrgencyHours:        input.UrgencyHours,
			AllowCrypto:         input.AllowCrypto,
			RiskTolerance:       input.RiskTolerance,
			Metadata:            input.Metadata,
		})
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.JSON(result)
	}
}
