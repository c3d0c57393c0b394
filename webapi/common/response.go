// Package common provides shared response shaping and request binding for
// the HTTP boundary.
package common

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/harubank/account/pkg/domain"
)

var validate = validator.New()

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs. Title
// carries the domain error code; Detail carries its description.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

// SuccessResponseJSON writes a success envelope with the given status.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseJSON writes a problem-details response.
func ErrorResponseJSON(c *fiber.Ctx, status int, title, detail string) error {
	return c.Status(status).JSON(ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.OriginalURL(),
	}, "application/problem+json")
}

// DomainErrorJSON renders any error from the services. Domain errors keep
// their code and description; everything else renders as
// INTERNAL_SERVER_ERROR without leaking internals.
func DomainErrorJSON(c *fiber.Ctx, err error) error {
	var de *domain.Error
	if !errors.As(err, &de) {
		de = domain.ErrInternalServerError
	}
	return ErrorResponseJSON(c, ErrorToStatusCode(de.Code), string(de.Code), de.Message)
}

// ErrorToStatusCode maps domain error codes to HTTP status codes.
func ErrorToStatusCode(code domain.ErrorCode) int {
	switch code {
	case domain.CodeUserNotFound,
		domain.CodeAccountNotFound,
		domain.CodeTransactionNotFound:
		return fiber.StatusNotFound
	case domain.CodeUserAccountUnMatch,
		domain.CodeTransactionAccountUnMatch:
		return fiber.StatusForbidden
	case domain.CodeAccountAlreadyUnregistered,
		domain.CodeBalanceNotEmpty,
		domain.CodeMaxAccountPerUser10,
		domain.CodeAmountExceedBalance,
		domain.CodeCancelMustFully,
		domain.CodeTooOldOrderToCancel:
		return fiber.StatusUnprocessableEntity
	case domain.CodeInvalidRequest:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// BindAndValidate parses the request body and validates it with
// go-playground/validator. On failure it writes an INVALID_REQUEST problem
// response and returns a nil input; the returned error is the write result,
// so handlers can return it directly without re-triggering the app error
// handler.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest,
			string(domain.CodeInvalidRequest), err.Error())
	}
	if err := validate.Struct(input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest,
			string(domain.CodeInvalidRequest), err.Error())
	}
	return &input, nil
}
