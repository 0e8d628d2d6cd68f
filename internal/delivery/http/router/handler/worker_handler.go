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

// WorkerHandler holds dependencies for worker roll handlers.
type WorkerHandler struct {
	uc     usecase.WorkerUsecase
	logger *slog.Logger
}

// NewWorkerHandler is the constructor for WorkerHandler, injected by Fx.
func NewWorkerHandler(uc usecase.WorkerUsecase, logger *slog.Logger) *WorkerHandler {
	return &WorkerHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateWorkerRequest is the request body for adding a worker to the roll.
type CreateWorkerRequest struct {
	Name      string `json:"name" validate:"required"`
	Role      string `json:"role" validate:"required"`
	DailyWage string `json:"daily_wage" validate:"required"`
	Mobile    string `json:"mobile" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
}

// CreateWorker adds a worker to the roll.
func (h *WorkerHandler) CreateWorker(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req CreateWorkerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid worker input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	wage, err := parseRupees(req.DailyWage)
	if err != nil {
		return invalidParam(c, "daily_wage")
	}

	worker, err := h.uc.CreateWorker(c.Request().Context(), actor, &usecase.CreateWorkerInput{
		Name:      req.Name,
		Role:      entity.WorkerRole(req.Role),
		DailyWage: wage,
		Mobile:    req.Mobile,
		Email:     req.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newWorkerResponse(worker), "Worker created successfully")
}

// ListWorkers lists the whole roll.
func (h *WorkerHandler) ListWorkers(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	workers, err := h.uc.ListWorkers(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newWorkerListResponse(workers), "Workers retrieved successfully")
}

// GetWorker retrieves one worker by id.
func (h *WorkerHandler) GetWorker(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	workerID, ok := parseUUIDParam(c, "id")
	if !ok {
		return invalidParam(c, "worker id")
	}

	worker, err := h.uc.GetWorker(c.Request().Context(), actor, workerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newWorkerResponse(worker), "Worker retrieved successfully")
}

// UpdateWorkerWageRequest is the request body for a wage revision.
type UpdateWorkerWageRequest struct {
	DailyWage string `json:"daily_wage" validate:"required"`
}

// UpdateWorkerWage sets a worker's new daily rate going forward.
func (h *WorkerHandler) UpdateWorkerWage(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	workerID, ok := parseUUIDParam(c, "id")
	if !ok {
		return invalidParam(c, "worker id")
	}

	var req UpdateWorkerWageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wage input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	wage, err := parseRupees(req.DailyWage)
	if err != nil {
		return invalidParam(c, "daily_wage")
	}

	worker, err := h.uc.UpdateWorkerWage(c.Request().Context(), actor, &usecase.UpdateWorkerWageInput{
		WorkerID:  workerID,
		DailyWage: wage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newWorkerResponse(worker), "Worker wage updated successfully")
}

// GetWorkerBalance derives a worker's settlement position.
func (h *WorkerHandler) GetWorkerBalance(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	workerID, ok := parseUUIDParam(c, "id")
	if !ok {
		return invalidParam(c, "worker id")
	}

	balance, err := h.uc.GetWorkerBalance(c.Request().Context(), actor, workerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, balance, "Worker balance retrieved successfully")
}
