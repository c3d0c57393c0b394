// Package transaction exposes the balance operations over HTTP.
//
// When the transaction service rejects a use or cancel with a domain error,
// the handler records a failed transaction through the dedicated SaveFailed
// operation before surfacing the error, so every rejected attempt leaves an
// audit record.
package transaction

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/harubank/account/pkg/domain"
	transactionsvc "github.com/harubank/account/pkg/service/transaction"
	"github.com/harubank/account/webapi/common"
)

// Routes registers HTTP routes for balance operations.
//
// Routes:
//   - POST /transaction/use             : Spend balance from an account.
//   - POST /transaction/cancel          : Cancel a prior spend in full.
//   - GET  /transaction/:transactionId  : Look up one transaction record.
func Routes(app *fiber.App, transactionSvc *transactionsvc.Service) {
	app.Post("/transaction/use", UseBalance(transactionSvc))
	app.Post("/transaction/cancel", CancelBalance(transactionSvc))
	app.Get("/transaction/:transactionId", QueryTransaction(transactionSvc))
}

// UseBalance returns the handler that spends balance.
// @Summary Use balance
// @Description Debits the amount from the account and records a USE transaction with the post-debit balance snapshot. Rejected attempts are recorded as failure transactions.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body UseBalanceRequest true "Spend details"
// @Success 200 {object} common.Response "Balance used"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 403 {object} common.ProblemDetails "Owner mismatch"
// @Failure 404 {object} common.ProblemDetails "User or account not found"
// @Failure 422 {object} common.ProblemDetails "Amount exceeds balance or account unregistered"
// @Router /transaction/use [post]
func UseBalance(transactionSvc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[UseBalanceRequest](c)
		if input == nil {
			return err
		}
		tx, err := transactionSvc.UseBalance(
			c.Context(), input.UserID, input.AccountNumber, input.Amount)
		if err != nil {
			log.Errorf("Failed to use balance: %v", err)
			saveFailureRecord(err, func() error {
				return transactionSvc.SaveFailedUseTransaction(
					c.Context(), input.AccountNumber, input.Amount)
			})
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK,
			"Balance used", ToUseBalanceResponse(tx))
	}
}

// CancelBalance returns the handler that cancels a prior spend.
// @Summary Cancel balance use
// @Description Credits the amount back to the account and records a CANCEL transaction. The amount must match the original transaction in full and the original must not be older than the cancellation window.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body CancelBalanceRequest true "Cancel details"
// @Success 200 {object} common.Response "Balance use cancelled"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 403 {object} common.ProblemDetails "Transaction belongs to another account"
// @Failure 404 {object} common.ProblemDetails "Transaction or account not found"
// @Failure 422 {object} common.ProblemDetails "Partial cancel or too old"
// @Router /transaction/cancel [post]
func CancelBalance(transactionSvc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CancelBalanceRequest](c)
		if input == nil {
			return err
		}
		tx, err := transactionSvc.CancelBalance(
			c.Context(), input.TransactionID, input.AccountNumber, input.Amount)
		if err != nil {
			log.Errorf("Failed to cancel balance: %v", err)
			saveFailureRecord(err, func() error {
				return transactionSvc.SaveFailedCancelTransaction(
					c.Context(), input.AccountNumber, input.Amount)
			})
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK,
			"Balance use cancelled", ToCancelBalanceResponse(tx))
	}
}

// saveFailureRecord writes the failure-audit transaction for a rejected
// domain operation. Only domain errors are recorded; infrastructure errors
// produce no audit row. A failure while recording is logged and swallowed so
// the original error still reaches the caller.
func saveFailureRecord(cause error, save func() error) {
	var de *domain.Error
	if !errors.As(cause, &de) {
		return
	}
	if err := save(); err != nil {
		log.Errorf("Failed to save failure transaction record: %v", err)
	}
}

// QueryTransaction returns the handler that looks up one transaction record.
// @Summary Query a transaction
// @Description Returns the full projection of a transaction, including type and result, for both successful and failed records.
// @Tags transactions
// @Produce json
// @Param transactionId path string true "Transaction id"
// @Success 200 {object} common.Response "Transaction"
// @Failure 404 {object} common.ProblemDetails "Transaction not found"
// @Router /transaction/{transactionId} [get]
func QueryTransaction(transactionSvc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tx, err := transactionSvc.QueryTransaction(c.Context(), c.Params("transactionId"))
		if err != nil {
			log.Errorf("Failed to query transaction: %v", err)
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK,
			"Transaction", ToQueryTransactionResponse(tx))
	}
}
