package account_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/harubank/account/internal/fixtures/mocks"
	domainaccount "github.com/harubank/account/pkg/domain/account"
	domainuser "github.com/harubank/account/pkg/domain/user"
	accountsvc "github.com/harubank/account/pkg/service/account"
	accountweb "github.com/harubank/account/webapi/account"
	"github.com/harubank/account/webapi/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	fiberlog.SetOutput(io.Discard)

	exitVal := m.Run()
	os.Exit(exitVal)
}

func newTestApp() (*fiber.App, *mocks.MockUnitOfWork) {
	uow := mocks.NewMockUnitOfWork()
	app := fiber.New()
	accountweb.Routes(app, accountsvc.NewService(uow, slog.Default()))
	return app, uow
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

type successEnvelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeSuccess(t *testing.T, resp *http.Response, data any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	var envelope successEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, data))
}

func decodeProblem(t *testing.T, resp *http.Response) common.ProblemDetails {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	var problem common.ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&problem))
	return problem
}

func inUseAccount(id, userID int64, number string, balance int64) *domainaccount.Account {
	acct, err := domainaccount.New().
		WithUserID(userID).
		WithNumber(number).
		WithBalance(balance).
		Build()
	if err != nil {
		panic(err)
	}
	acct.ID = id
	return acct
}

func TestCreateAccountEndpoint(t *testing.T) {
	t.Parallel()
	t.Run("created", func(t *testing.T) {
		t.Parallel()
		app, uow := newTestApp()
		uow.Users.On("Get", int64(1)).Return(&domainuser.AccountUser{ID: 1, Name: "pobi"}, nil)
		uow.Accounts.On("CountByUser", int64(1)).Return(int64(0), nil)
		uow.Sequence.On("Next").Return("1000000000", nil)
		uow.Accounts.On("Create", mock.AnythingOfType("*account.Account")).Return(nil)

		resp := doRequest(t, app, fiber.MethodPost, "/account",
			fiber.Map{"user_id": 1, "initial_balance": 1000})
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var data accountweb.CreateAccountResponse
		decodeSuccess(t, resp, &data)
		assert.Equal(t, int64(1), data.UserID)
		assert.Equal(t, "1000000000", data.AccountNumber)
		assert.False(t, data.RegisteredAt.IsZero())
		uow.AssertExpectations(t)
	})

	t.Run("user not found", func(t *testing.T) {
		t.Parallel()
		app, uow := newTestApp()
		uow.Users.On("Get", int64(99)).Return(nil, nil)

		resp := doRequest(t, app, fiber.MethodPost, "/account",
			fiber.Map{"user_id": 99, "initial_balance": 1000})
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "USER_NOT_FOUND", decodeProblem(t, resp).Title)
	})

	t.Run("account limit reached", func(t *testing.T) {
		t.Parallel()
		app, uow := newTestApp()
		uow.Users.On("Get", int64(1)).Return(&domainuser.AccountUser{ID: 1, Name: "pobi"}, nil)
		uow.Accounts.On("CountByUser", int64(1)).Return(int64(10), nil)

		resp := doRequest(t, app, fiber.MethodPost, "/account",
			fiber.Map{"user_id": 1, "initial_balance": 1000})
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "MAX_ACCOUNT_PER_USER_10", decodeProblem(t, resp).Title)
		uow.Accounts.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("missing user_id rejected before the service runs", func(t *testing.T) {
		t.Parallel()
		app, uow := newTestApp()

		resp := doRequest(t, app, fiber.MethodPost, "/account",
			fiber.Map{"initial_balance": 1000})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_REQUEST", decodeProblem(t, resp).Title)
		uow.Users.AssertNotCalled(t, "Get", mock.Anything)
	})
}

func TestDeleteAccountEndpoint(t *testing.T) {
	t.Parallel()
	t.Run("unregistered", func(t *testing.T) {
		t.Parallel()
		app, uow := newTestApp()
		acct := inUseAccount(7, 1, "1000000000", 0)
		uow.Users.On("Get", int64(1)).Return(&domainuser.AccountUser{ID: 1, Name: "pobi"}, nil)
		uow.Accounts.On("GetByNumber", "1000000000").Return(acct, nil)
		uow.Accounts.On("Update", mock.AnythingOfType("*account.Account")).Return(nil)

		resp := doRequest(t, app, fiber.MethodDelete, "/account",
			fiber.Map{"user_id": 1, "account_number": "1000000000"})
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var data accountweb.DeleteAccountResponse
		decodeSuccess(t, resp, &data)
		assert.Equal(t, "1000000000", data.AccountNumber)
		require.NotNil(t, data.UnregisteredAt)
		assert.WithinDuration(t, time.Now(), *data.UnregisteredAt, time.Minute)
	})

	t.Run("owner mismatch", func(t *testing.T) {
		t.Parallel()
		app, uow := newTestApp()
		acct := inUseAccount(7, 2, "1000000000", 0)
		uow.Users.On("Get", int64(1)).Return(&domainuser.AccountUser{ID: 1, Name: "pobi"}, nil)
		uow.Accounts.On("GetByNumber", "1000000000").Return(acct, nil)

		resp := doRequest(t, app, fiber.MethodDelete, "/account",
			fiber.Map{"user_id": 1, "account_number": "1000000000"})
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "USER_ACCOUNT_UN_MATCH", decodeProblem(t, resp).Title)
	})

	t.Run("balance not empty", func(t *testing.T) {
		t.Parallel()
		app, uow := newTestApp()
		acct := inUseAccount(7, 1, "1000000000", 500)
		uow.Users.On("Get", int64(1)).Return(&domainuser.AccountUser{ID: 1, Name: "pobi"}, nil)
		uow.Accounts.On("GetByNumber", "1000000000").Return(acct, nil)

		resp := doRequest(t, app, fiber.MethodDelete, "/account",
			fiber.Map{"user_id": 1, "account_number": "1000000000"})
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "BALANCE_NOT_EMPTY", decodeProblem(t, resp).Title)
	})

	t.Run("short account number rejected", func(t *testing.T) {
		t.Parallel()
		app, _ := newTestApp()

		resp := doRequest(t, app, fiber.MethodDelete, "/account",
			fiber.Map{"user_id": 1, "account_number": "123"})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_REQUEST", decodeProblem(t, resp).Title)
	})
}

func TestGetAccountsByUserIDEndpoint(t *testing.T) {
	t.Parallel()
	t.Run("listed", func(t *testing.T) {
		t.Parallel()
		app, uow := newTestApp()
		uow.Users.On("Get", int64(1)).Return(&domainuser.AccountUser{ID: 1, Name: "pobi"}, nil)
		uow.Accounts.On("ListByUser", int64(1)).Return([]*domainaccount.Account{
			inUseAccount(7, 1, "1000000000", 1000),
			inUseAccount(8, 1, "1000000001", 2000),
		}, nil)

		resp := doRequest(t, app, fiber.MethodGet, "/account?user_id=1", nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var data []accountweb.AccountInfo
		decodeSuccess(t, resp, &data)
		require.Len(t, data, 2)
		assert.Equal(t, "1000000000", data[0].AccountNumber)
		assert.Equal(t, int64(1000), data[0].Balance)
		assert.Equal(t, "1000000001", data[1].AccountNumber)
	})

	t.Run("missing user_id", func(t *testing.T) {
		t.Parallel()
		app, _ := newTestApp()

		resp := doRequest(t, app, fiber.MethodGet, "/account", nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_REQUEST", decodeProblem(t, resp).Title)
	})
}

func TestGetAccountEndpoint(t *testing.T) {
	t.Parallel()
	t.Run("found", func(t *testing.T) {
		t.Parallel()
		app, uow := newTestApp()
		uow.Accounts.On("Get", int64(7)).Return(inUseAccount(7, 1, "1000000000", 1000), nil)

		resp := doRequest(t, app, fiber.MethodGet, "/account/7", nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var data accountweb.GetAccountResponse
		decodeSuccess(t, resp, &data)
		assert.Equal(t, int64(7), data.ID)
		assert.Equal(t, "1000000000", data.AccountNumber)
		assert.Equal(t, "IN_USE", data.Status)
	})

	t.Run("negative id", func(t *testing.T) {
		t.Parallel()
		app, uow := newTestApp()

		resp := doRequest(t, app, fiber.MethodGet, "/account/-1", nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_REQUEST", decodeProblem(t, resp).Title)
		uow.Accounts.AssertNotCalled(t, "Get", mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		app, uow := newTestApp()
		uow.Accounts.On("Get", int64(7)).Return(nil, nil)

		resp := doRequest(t, app, fiber.MethodGet, "/account/7", nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "ACCOUNT_NOT_FOUND", decodeProblem(t, resp).Title)
	})
}
