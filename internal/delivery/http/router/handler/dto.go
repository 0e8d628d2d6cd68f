package handler

import (
	"net/http"
	"time"

	"sitekhata/internal/delivery/http/middleware"
	"sitekhata/internal/delivery/http/response"
	"sitekhata/internal/domain/entity"
	"sitekhata/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UserResponse is the account shape returned by auth endpoints. Credentials
// never leave the usecase layer.
type UserResponse struct {
	ID       uuid.UUID  `json:"id"`
	Name     string     `json:"name"`
	Mobile   string     `json:"mobile,omitempty"`
	Email    string     `json:"email"`
	Role     string     `json:"role"`
	WorkerID *uuid.UUID `json:"worker_id,omitempty"`
}

func newUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Mobile:   user.Mobile,
		Email:    user.Email,
		Role:     user.Role.String(),
		WorkerID: user.WorkerID,
	}
}

// LoginResponse is the token pair returned after login or refresh.
type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         *UserResponse `json:"user"`
}

func newLoginResponse(output *usecase.LoginOutput) *LoginResponse {
	return &LoginResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         newUserResponse(output.User),
	}
}

// SiteResponse is the wire shape of a site.
type SiteResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	ClientName      string    `json:"client_name"`
	StartDate       string    `json:"start_date"`
	ExpectedEndDate string    `json:"expected_end_date"`
	Status          string    `json:"status"`
	EstimatedBudget int64     `json:"estimated_budget_paise"`
	CreatedAt       time.Time `json:"created_at"`
}

func newSiteResponse(site *entity.Site) *SiteResponse {
	if site == nil {
		return nil
	}

	return &SiteResponse{
		ID:              site.ID,
		Name:            site.Name,
		ClientName:      site.ClientName,
		StartDate:       site.StartDate.String(),
		ExpectedEndDate: site.ExpectedEndDate.String(),
		Status:          string(site.Status),
		EstimatedBudget: site.EstimatedBudget.Paise(),
		CreatedAt:       site.CreatedAt,
	}
}

func newSiteListResponse(sites []*entity.Site) []*SiteResponse {
	out := make([]*SiteResponse, 0, len(sites))
	for _, s := range sites {
		out = append(out, newSiteResponse(s))
	}

	return out
}

// WorkerResponse is the wire shape of a worker.
type WorkerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	DailyWage int64     `json:"daily_wage_paise"`
	Mobile    string    `json:"mobile"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func newWorkerResponse(worker *entity.Worker) *WorkerResponse {
	if worker == nil {
		return nil
	}

	return &WorkerResponse{
		ID:        worker.ID,
		Name:      worker.Name,
		Role:      string(worker.Role),
		DailyWage: worker.DailyWage.Paise(),
		Mobile:    worker.Mobile,
		Email:     worker.Email,
		CreatedAt: worker.CreatedAt,
	}
}

func newWorkerListResponse(workers []*entity.Worker) []*WorkerResponse {
	out := make([]*WorkerResponse, 0, len(workers))
	for _, w := range workers {
		out = append(out, newWorkerResponse(w))
	}

	return out
}

// AttendanceResponse is the wire shape of an attendance record.
type AttendanceResponse struct {
	ID           uuid.UUID `json:"id"`
	WorkerID     uuid.UUID `json:"worker_id"`
	SiteID       uuid.UUID `json:"site_id"`
	Day          string    `json:"day"`
	IsPresent    bool      `json:"is_present"`
	WageSnapshot int64     `json:"wage_snapshot_paise"`
}

func newAttendanceResponse(record *entity.AttendanceRecord) *AttendanceResponse {
	if record == nil {
		return nil
	}

	return &AttendanceResponse{
		ID:           record.ID,
		WorkerID:     record.WorkerID,
		SiteID:       record.SiteID,
		Day:          record.Day.String(),
		IsPresent:    record.IsPresent,
		WageSnapshot: record.WageSnapshot.Paise(),
	}
}

func newAttendanceListResponse(records []*entity.AttendanceRecord) []*AttendanceResponse {
	out := make([]*AttendanceResponse, 0, len(records))
	for _, r := range records {
		out = append(out, newAttendanceResponse(r))
	}

	return out
}

// ExpenseResponse is the wire shape of a material expense.
type ExpenseResponse struct {
	ID        uuid.UUID `json:"id"`
	SiteID    uuid.UUID `json:"site_id"`
	Name      string    `json:"name"`
	Quantity  string    `json:"quantity,omitempty"`
	CostPaise int64     `json:"cost_paise"`
	Cost      string    `json:"cost"`
	Day       string    `json:"day"`
}

func newExpenseResponse(expense *entity.MaterialExpense) *ExpenseResponse {
	if expense == nil {
		return nil
	}

	return &ExpenseResponse{
		ID:        expense.ID,
		SiteID:    expense.SiteID,
		Name:      expense.Name,
		Quantity:  expense.Quantity,
		CostPaise: expense.Cost.Paise(),
		Cost:      expense.Cost.String(),
		Day:       expense.Day.String(),
	}
}

func newExpenseListResponse(expenses []*entity.MaterialExpense) []*ExpenseResponse {
	out := make([]*ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, newExpenseResponse(e))
	}

	return out
}

// PaymentResponse is the wire shape of a single-ledger payment row.
type PaymentResponse struct {
	ID          uuid.UUID `json:"id"`
	SiteID      uuid.UUID `json:"site_id,omitempty"`
	WorkerID    uuid.UUID `json:"worker_id,omitempty"`
	AmountPaise int64     `json:"amount_paise"`
	Amount      string    `json:"amount"`
	Mode        string    `json:"mode"`
	Note        string    `json:"note,omitempty"`
	Day         string    `json:"day"`
}

func newClientPaymentResponse(payment *entity.ClientPayment) *PaymentResponse {
	if payment == nil {
		return nil
	}

	return &PaymentResponse{
		ID:          payment.ID,
		SiteID:      payment.SiteID,
		AmountPaise: payment.Amount.Paise(),
		Amount:      payment.Amount.String(),
		Mode:        string(payment.Mode),
		Note:        payment.Note,
		Day:         payment.Day.String(),
	}
}

func newWorkerPaymentResponse(payment *entity.WorkerPayment) *PaymentResponse {
	if payment == nil {
		return nil
	}

	return &PaymentResponse{
		ID:          payment.ID,
		WorkerID:    payment.WorkerID,
		AmountPaise: payment.Amount.Paise(),
		Amount:      payment.Amount.String(),
		Mode:        string(payment.Mode),
		Note:        payment.Note,
		Day:         payment.Day.String(),
	}
}

// --- Shared request parsing helpers ---

// actorFrom pulls the authenticated actor or reports the missing-token case.
func actorFrom(c echo.Context) (entity.Actor, error) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return entity.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "Missing actor")
	}

	return actor, nil
}

func parseUUIDParam(c echo.Context, name string) (uuid.UUID, bool) {
	return parseUUID(c.Param(name))
}

func parseUUID(s string) (uuid.UUID, bool) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

// parseRupees parses a user-entered rupee amount like "4,92,600" or "350.50".
func parseRupees(s string) (entity.Money, error) {
	return entity.ParseINR(s)
}

func invalidParam(c echo.Context, name string) error {
	return response.BadRequest(c, "INVALID_INPUT", "Invalid "+name)
}
