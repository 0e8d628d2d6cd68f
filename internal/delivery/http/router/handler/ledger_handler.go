package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"sitekhata/internal/delivery/http/response"
	"sitekhata/internal/domain/entity"
	"sitekhata/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LedgerHandler holds dependencies for the ledger write side and its listings.
type LedgerHandler struct {
	uc     usecase.LedgerUsecase
	logger *slog.Logger
}

// NewLedgerHandler is the constructor for LedgerHandler, injected by Fx.
func NewLedgerHandler(uc usecase.LedgerUsecase, logger *slog.Logger) *LedgerHandler {
	return &LedgerHandler{
		uc:     uc,
		logger: logger,
	}
}

// MarkAttendanceRequest is the request body for marking one worker on one day.
type MarkAttendanceRequest struct {
	WorkerID  string `json:"worker_id" validate:"required,uuid"`
	SiteID    string `json:"site_id" validate:"required,uuid"`
	Day       string `json:"day" validate:"required"`
	IsPresent bool   `json:"is_present"`
}

// MarkAttendance upserts the attendance record keyed on (worker, day).
func (h *LedgerHandler) MarkAttendance(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req MarkAttendanceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid attendance input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	workerID, ok := parseUUID(req.WorkerID)
	if !ok {
		return invalidParam(c, "worker_id")
	}
	siteID, ok := parseUUID(req.SiteID)
	if !ok {
		return invalidParam(c, "site_id")
	}
	day, err := entity.ParseDay(req.Day)
	if err != nil {
		return invalidParam(c, "day")
	}

	record, err := h.uc.MarkAttendance(c.Request().Context(), actor, &usecase.MarkAttendanceInput{
		WorkerID:  workerID,
		SiteID:    siteID,
		Day:       day,
		IsPresent: req.IsPresent,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAttendanceResponse(record), "Attendance marked successfully")
}

// ListSiteAttendance lists the records booked at a site with ?day=YYYY-MM-DD.
func (h *LedgerHandler) ListSiteAttendance(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	siteID, ok := parseUUIDParam(c, "id")
	if !ok {
		return invalidParam(c, "site id")
	}
	day, err := entity.ParseDay(c.QueryParam("day"))
	if err != nil {
		return invalidParam(c, "day")
	}

	records, err := h.uc.ListSiteAttendance(c.Request().Context(), actor, siteID, day)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAttendanceListResponse(records), "Attendance retrieved successfully")
}

// RecordExpenseRequest is the request body for a material purchase.
type RecordExpenseRequest struct {
	Name     string `json:"name" validate:"required"`
	Quantity string `json:"quantity"`
	Cost     string `json:"cost" validate:"required"`
	Day      string `json:"day" validate:"required"`
}

// RecordExpense appends a material expense to a site's ledger.
func (h *LedgerHandler) RecordExpense(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	siteID, ok := parseUUIDParam(c, "id")
	if !ok {
		return invalidParam(c, "site id")
	}

	var req RecordExpenseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid expense input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	cost, err := parseRupees(req.Cost)
	if err != nil {
		return invalidParam(c, "cost")
	}
	day, err := entity.ParseDay(req.Day)
	if err != nil {
		return invalidParam(c, "day")
	}

	expense, err := h.uc.RecordExpense(c.Request().Context(), actor, &usecase.RecordExpenseInput{
		SiteID:   siteID,
		Name:     req.Name,
		Quantity: req.Quantity,
		Cost:     cost,
		Day:      day,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newExpenseResponse(expense), "Expense recorded successfully")
}

// ListSiteExpenses lists a site's expenses, newest day first.
func (h *LedgerHandler) ListSiteExpenses(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	siteID, ok := parseUUIDParam(c, "id")
	if !ok {
		return invalidParam(c, "site id")
	}

	expenses, err := h.uc.ListSiteExpenses(c.Request().Context(), actor, siteID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newExpenseListResponse(expenses), "Expenses retrieved successfully")
}

// RecordPaymentRequest is the shared request body for both payment ledgers.
type RecordPaymentRequest struct {
	Amount string `json:"amount" validate:"required"`
	Mode   string `json:"mode" validate:"required"`
	Note   string `json:"note"`
	Day    string `json:"day" validate:"required"`
}

func (req *RecordPaymentRequest) parse(c echo.Context) (entity.Money, entity.Day, error) {
	amount, err := parseRupees(req.Amount)
	if err != nil {
		return 0, "", invalidParam(c, "amount")
	}
	day, err := entity.ParseDay(req.Day)
	if err != nil {
		return 0, "", invalidParam(c, "day")
	}

	return amount, day, nil
}

// RecordClientPayment appends money received from a client for a site.
func (h *LedgerHandler) RecordClientPayment(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	siteID, ok := parseUUIDParam(c, "id")
	if !ok {
		return invalidParam(c, "site id")
	}

	var req RecordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	amount, day, err := req.parse(c)
	if err != nil {
		return err
	}

	payment, err := h.uc.RecordClientPayment(c.Request().Context(), actor, &usecase.RecordClientPaymentInput{
		SiteID: siteID,
		Amount: amount,
		Mode:   entity.PaymentMode(req.Mode),
		Note:   req.Note,
		Day:    day,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newClientPaymentResponse(payment), "Client payment recorded successfully")
}

// ListSitePayments lists money received for one site, newest day first.
func (h *LedgerHandler) ListSitePayments(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	siteID, ok := parseUUIDParam(c, "id")
	if !ok {
		return invalidParam(c, "site id")
	}

	payments, err := h.uc.ListSitePayments(c.Request().Context(), actor, siteID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, newClientPaymentResponse(p))
	}

	return response.Success(c, http.StatusOK, out, "Site payments retrieved successfully")
}

// RecordWorkerPayment appends a wage payout to a worker.
func (h *LedgerHandler) RecordWorkerPayment(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	workerID, ok := parseUUIDParam(c, "id")
	if !ok {
		return invalidParam(c, "worker id")
	}

	var req RecordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	amount, day, err := req.parse(c)
	if err != nil {
		return err
	}

	payment, err := h.uc.RecordWorkerPayment(c.Request().Context(), actor, &usecase.RecordWorkerPaymentInput{
		WorkerID: workerID,
		Amount:   amount,
		Mode:     entity.PaymentMode(req.Mode),
		Note:     req.Note,
		Day:      day,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newWorkerPaymentResponse(payment), "Worker payment recorded successfully")
}

// ListWorkerPayments lists payouts to one worker, newest day first.
func (h *LedgerHandler) ListWorkerPayments(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	workerID, ok := parseUUIDParam(c, "id")
	if !ok {
		return invalidParam(c, "worker id")
	}

	payments, err := h.uc.ListWorkerPayments(c.Request().Context(), actor, workerID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, newWorkerPaymentResponse(p))
	}

	return response.Success(c, http.StatusOK, out, "Worker payments retrieved successfully")
}

// ListPayments lists the unified feed of both ledgers with ?limit=N.
func (h *LedgerHandler) ListPayments(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return invalidParam(c, "limit")
		}
	}

	records, err := h.uc.ListPayments(c.Request().Context(), actor, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "Payments retrieved successfully")
}
