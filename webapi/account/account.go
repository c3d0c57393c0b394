// Package account exposes the account lifecycle operations over HTTP.
package account

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/harubank/account/pkg/domain"
	"github.com/harubank/account/pkg/dto"
	accountsvc "github.com/harubank/account/pkg/service/account"
	"github.com/harubank/account/webapi/common"
)

// Routes registers HTTP routes for account-related operations.
//
// Routes:
//   - POST   /account      : Open a new account for a user.
//   - DELETE /account      : Unregister an account.
//   - GET    /account      : List accounts owned by a user (?user_id=).
//   - GET    /account/:id  : Fetch one account by numeric id.
func Routes(app *fiber.App, accountSvc *accountsvc.Service) {
	app.Post("/account", CreateAccount(accountSvc))
	app.Delete("/account", DeleteAccount(accountSvc))
	app.Get("/account", GetAccountsByUserID(accountSvc))
	app.Get("/account/:id", GetAccount(accountSvc))
}

// CreateAccount returns the handler that opens a new account.
// @Summary Open a new account
// @Description Opens an account for the given user with an initial balance. Account numbers are allocated from a global increasing sequence.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body CreateAccountRequest true "Account details"
// @Success 201 {object} common.Response "Account created"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 404 {object} common.ProblemDetails "User not found"
// @Failure 422 {object} common.ProblemDetails "Account limit reached"
// @Router /account [post]
func CreateAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err
		}
		a, err := accountSvc.CreateAccount(c.Context(), input.UserID, input.InitialBalance)
		if err != nil {
			log.Errorf("Failed to create account: %v", err)
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated,
			"Account created", ToCreateAccountResponse(a))
	}
}

// DeleteAccount returns the handler that unregisters an account.
// @Summary Unregister an account
// @Description Soft-deletes an account. The account must belong to the user, be in use, and hold a zero balance.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body DeleteAccountRequest true "Account details"
// @Success 200 {object} common.Response "Account unregistered"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 403 {object} common.ProblemDetails "Owner mismatch"
// @Failure 404 {object} common.ProblemDetails "User or account not found"
// @Failure 422 {object} common.ProblemDetails "Already unregistered or balance not empty"
// @Router /account [delete]
func DeleteAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[DeleteAccountRequest](c)
		if input == nil {
			return err
		}
		a, err := accountSvc.DeleteAccount(c.Context(), input.UserID, input.AccountNumber)
		if err != nil {
			log.Errorf("Failed to delete account: %v", err)
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK,
			"Account unregistered", ToDeleteAccountResponse(a))
	}
}

// GetAccountsByUserID returns the handler listing a user's accounts.
// @Summary List accounts by user
// @Tags accounts
// @Produce json
// @Param user_id query int true "User id"
// @Success 200 {object} common.Response "Accounts"
// @Failure 404 {object} common.ProblemDetails "User not found"
// @Router /account [get]
func GetAccountsByUserID(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				string(domain.CodeInvalidRequest), "user_id must be an integer")
		}
		accounts, err := accountSvc.GetAccountsByUserID(c.Context(), userID)
		if err != nil {
			log.Errorf("Failed to list accounts: %v", err)
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK,
			"Accounts", ToAccountInfos(accounts))
	}
}

// GetAccount returns the handler fetching one account by numeric id.
// @Summary Get an account
// @Tags accounts
// @Produce json
// @Param id path int true "Account id"
// @Success 200 {object} common.Response "Account"
// @Failure 400 {object} common.ProblemDetails "Invalid id"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /account/{id} [get]
func GetAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				string(domain.CodeInvalidRequest), "id must be an integer")
		}
		acct, err := accountSvc.GetAccount(c.Context(), id)
		if err != nil {
			if errors.Is(err, accountsvc.ErrNegativeID) {
				return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
					string(domain.CodeInvalidRequest), err.Error())
			}
			log.Errorf("Failed to get account: %v", err)
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK,
			"Account", ToGetAccountResponse(dto.NewAccountRead(acct)))
	}
}
