package handler

import (
	"log/slog"
	"net/http"
	"time"

	"sitekhata/config"
	"sitekhata/internal/delivery/http/response"
	"sitekhata/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReportHandler holds dependencies for the derived read-only views.
type ReportHandler struct {
	uc     usecase.ReportUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler, injected by Fx.
func NewReportHandler(uc usecase.ReportUsecase, cfg *config.Config, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

// GetSiteFinancials derives one site's cost and budget position.
func (h *ReportHandler) GetSiteFinancials(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	siteID, ok := parseUUIDParam(c, "id")
	if !ok {
		return invalidParam(c, "site id")
	}

	financials, err := h.uc.GetSiteFinancials(c.Request().Context(), actor, siteID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, financials, "Site financials retrieved successfully")
}

// GetPortfolioSummary derives the contractor's global cash view.
func (h *ReportHandler) GetPortfolioSummary(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	summary, err := h.uc.GetPortfolioSummary(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Portfolio summary retrieved successfully")
}

// GetWorkerSummary builds the worker-facing dashboard view.
func (h *ReportHandler) GetWorkerSummary(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	workerID, ok := parseUUIDParam(c, "id")
	if !ok {
		return invalidParam(c, "worker id")
	}

	summary, err := h.uc.GetWorkerSummary(c.Request().Context(), actor, workerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Worker summary retrieved successfully")
}

// ExportLedger streams the whole book as an xlsx download.
func (h *ReportHandler) ExportLedger(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	workbook, err := h.uc.ExportLedger(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	filename := "ledger-" + time.Now().Format("2006-01-02") + ".xlsx"
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)

	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
}

// PaymentQRRequest describes the UPI collect request to render. Payee fields
// default to the configured collect account.
type PaymentQRRequest struct {
	PayeeVPA  string `json:"payee_vpa"`
	PayeeName string `json:"payee_name"`
	Amount    string `json:"amount" validate:"required"`
	Note      string `json:"note"`
}

// GeneratePaymentQR renders a UPI collect QR code as a PNG image.
func (h *ReportHandler) GeneratePaymentQR(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req PaymentQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	amount, err := parseRupees(req.Amount)
	if err != nil {
		return invalidParam(c, "amount")
	}

	payeeVPA := req.PayeeVPA
	payeeName := req.PayeeName
	if upi := h.cfg.UPI; upi != nil {
		if payeeVPA == "" {
			payeeVPA = upi.PayeeVPA
		}
		if payeeName == "" {
			payeeName = upi.PayeeName
		}
	}

	png, err := h.uc.GeneratePaymentQR(c.Request().Context(), actor, &usecase.PaymentQRInput{
		PayeeVPA:  payeeVPA,
		PayeeName: payeeName,
		Amount:    amount,
		Note:      req.Note,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
