package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "sitekhata/internal/delivery/context"
	httpvalidator "sitekhata/internal/delivery/http/validator"
	"sitekhata/internal/domain/entity"
	mockUsecase "sitekhata/internal/mocks/usecase"
	"sitekhata/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSiteHandlerTest(t *testing.T) (*SiteHandler, *mockUsecase.MockSiteUsecase, *echo.Echo) {
	uc := mockUsecase.NewMockSiteUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	e.Validator = httpvalidator.New()

	return NewSiteHandler(uc, logger), uc, e
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestSiteHandler_CreateSite_ParsesRupeeBudget(t *testing.T) {
	handler, uc, e := newSiteHandlerTest(t)

	body := `{
		"name": "Sharma Villa",
		"client_name": "Mr. Sharma",
		"start_date": "2025-01-05",
		"expected_end_date": "2025-06-30",
		"estimated_budget": "5,00,000"
	}`
	c, rec := newJSONContext(e, http.MethodPost, "/sites", body)
	c.Set(string(deliverycontext.KeyActor), entity.Actor{UserID: uuid.New(), Role: entity.RoleContractor})

	site := &entity.Site{
		ID:              uuid.New(),
		Name:            "Sharma Villa",
		ClientName:      "Mr. Sharma",
		StartDate:       entity.Day("2025-01-05"),
		ExpectedEndDate: entity.Day("2025-06-30"),
		Status:          entity.SiteStatusOngoing,
		EstimatedBudget: entity.RupeesToMoney(500000),
	}
	uc.On("CreateSite", mock.Anything, mock.Anything, mock.MatchedBy(func(in *usecase.CreateSiteInput) bool {
		return in.EstimatedBudget == entity.RupeesToMoney(500000) && in.StartDate == entity.Day("2025-01-05")
	})).Return(site, nil)

	require.NoError(t, handler.CreateSite(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"estimated_budget_paise":50000000`)
}

func TestSiteHandler_CreateSite_RejectsBadAmount(t *testing.T) {
	handler, _, e := newSiteHandlerTest(t)

	body := `{
		"name": "Sharma Villa",
		"client_name": "Mr. Sharma",
		"start_date": "2025-01-05",
		"expected_end_date": "2025-06-30",
		"estimated_budget": "five lakhs"
	}`
	c, rec := newJSONContext(e, http.MethodPost, "/sites", body)
	c.Set(string(deliverycontext.KeyActor), entity.Actor{UserID: uuid.New(), Role: entity.RoleContractor})

	require.NoError(t, handler.CreateSite(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSiteHandler_CreateSite_RejectsMissingFields(t *testing.T) {
	handler, _, e := newSiteHandlerTest(t)

	c, rec := newJSONContext(e, http.MethodPost, "/sites", `{"name": "Sharma Villa"}`)
	c.Set(string(deliverycontext.KeyActor), entity.Actor{UserID: uuid.New(), Role: entity.RoleContractor})

	require.NoError(t, handler.CreateSite(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSiteHandler_CreateSite_MissingActor(t *testing.T) {
	handler, _, e := newSiteHandlerTest(t)

	c, _ := newJSONContext(e, http.MethodPost, "/sites", `{}`)

	err := handler.CreateSite(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestSiteHandler_ListSites_RejectsUnknownStatus(t *testing.T) {
	handler, _, e := newSiteHandlerTest(t)

	c, rec := newJSONContext(e, http.MethodGet, "/sites?status=PAUSED", "")
	c.Set(string(deliverycontext.KeyActor), entity.Actor{UserID: uuid.New(), Role: entity.RoleContractor})

	require.NoError(t, handler.ListSites(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
