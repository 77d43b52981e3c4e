package execution

import (
	"github.com/gofiber/fiber/v2"

	executionsvc "railroute/pkg/service/execution"
	"railroute/webapi/common"
)

// Routes registers HTTP routes for mock payment execution.
func Routes(app *fiber.App, executionSvc *executionsvc.Service) {
	app.Post("/execute-payment", ExecutePayment(executionSvc))
	app.Get("/payment-status/:executionId", PaymentStatus(executionSvc))
}

// ExecutePayment returns a Fiber handler that records a mock execution.
// The execution completes synchronously; no funds are moved.
// @Summary Execute a payment batch (mock)
// @Description Record a mock execution of a payment batch; completes immediately
// @Tags execution
// @Accept json
// @Produce json
// @Param request body ExecutePaymentRequest true "Payments to execute"
// @Success 200 {object} ledger.ExecutionRecord
// @Failure 400 {object} common.ErrorResponse
// @Router /execute-payment [post]
func ExecutePayment(executionSvc *executionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[ExecutePaymentRequest](c)
		if err != nil {
			return nil // Error already written by BindAndValidate
		}

		rec, err := executionSvc.Execute(c.Context(), executionsvc.Input{
			RunID:        input.RunID,
			SimulateOnly: input.SimulateOnly,
			Payments:     input.Payments,
		})
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.JSON(rec)
	}
}

// PaymentStatus returns a Fiber handler reading an execution record from
// the ledger. Records are immutable, so repeated lookups are identical.
// @Summary Get execution status
// @Description Look up a recorded execution by id
// @Tags execution
// @Produce json
// @Param executionId path string true "Execution id"
// @Success 200 {object} ledger.ExecutionRecord
// @Failure 404 {object} common.ErrorResponse
// @Router /payment-status/{executionId} [get]
func PaymentStatus(executionSvc *executionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		executionID := c.Params("executionId")
		rec, err := executionSvc.Status(c.Context(), executionID)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.JSON(rec)
	}
}
