package handler

import (
	"log/slog"
	"net/http"

	"sitekhata/internal/delivery/http/response"
	"sitekhata/internal/domain/entity"
	"sitekhata/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SiteHandler holds dependencies for site handlers.
type SiteHandler struct {
	uc     usecase.SiteUsecase
	logger *slog.Logger
}

// NewSiteHandler is the constructor for SiteHandler, injected by Fx.
func NewSiteHandler(uc usecase.SiteUsecase, logger *slog.Logger) *SiteHandler {
	return &SiteHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateSiteRequest is the request body for opening a site. The budget is
// entered as rupees the way the contractor writes it, e.g. "5,00,000".
type CreateSiteRequest struct {
	Name            string `json:"name" validate:"required"`
	ClientName      string `json:"client_name" validate:"required"`
	StartDate       string `json:"start_date" validate:"required"`
	ExpectedEndDate string `json:"expected_end_date" validate:"required"`
	EstimatedBudget string `json:"estimated_budget" validate:"required"`
}

// CreateSite handles opening a new site.
func (h *SiteHandler) CreateSite(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req CreateSiteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid site input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	startDate, err := entity.ParseDay(req.StartDate)
	if err != nil {
		return invalidParam(c, "start_date")
	}
	endDate, err := entity.ParseDay(req.ExpectedEndDate)
	if err != nil {
		return invalidParam(c, "expected_end_date")
	}
	budget, err := parseRupees(req.EstimatedBudget)
	if err != nil {
		return invalidParam(c, "estimated_budget")
	}

	site, err := h.uc.CreateSite(c.Request().Context(), actor, &usecase.CreateSiteInput{
		Name:            req.Name,
		ClientName:      req.ClientName,
		StartDate:       startDate,
		ExpectedEndDate: endDate,
		EstimatedBudget: budget,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newSiteResponse(site), "Site created successfully")
}

// ListSites lists sites, optionally filtered with ?status=ONGOING|COMPLETED.
func (h *SiteHandler) ListSites(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var statusFilter *entity.SiteStatus
	if raw := c.QueryParam("status"); raw != "" {
		status := entity.SiteStatus(raw)
		if !status.IsValid() {
			return invalidParam(c, "status")
		}
		statusFilter = &status
	}

	sites, err := h.uc.ListSites(c.Request().Context(), actor, statusFilter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSiteListResponse(sites), "Sites retrieved successfully")
}

// GetSite retrieves one site by id.
func (h *SiteHandler) GetSite(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	siteID, ok := parseUUIDParam(c, "id")
	if !ok {
		return invalidParam(c, "site id")
	}

	site, err := h.uc.GetSite(c.Request().Context(), actor, siteID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSiteResponse(site), "Site retrieved successfully")
}

// SetSiteStatusRequest is the request body for a status transition.
type SetSiteStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SetSiteStatus moves a site between ONGOING and COMPLETED.
func (h *SiteHandler) SetSiteStatus(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	siteID, ok := parseUUIDParam(c, "id")
	if !ok {
		return invalidParam(c, "site id")
	}

	var req SetSiteStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	site, err := h.uc.SetSiteStatus(c.Request().Context(), actor, &usecase.SetSiteStatusInput{
		SiteID: siteID,
		Status: entity.SiteStatus(req.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSiteResponse(site), "Site status updated successfully")
}
