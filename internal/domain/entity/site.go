package entity

import (
	"time"

	"github.com/google/uuid"
)

// SiteStatus is the lifecycle state of a construction site.
type SiteStatus string

const (
	// SiteStatusOngoing marks a site still under construction.
	SiteStatusOngoing SiteStatus = "ONGOING"
	// SiteStatusCompleted marks a site whose work has been handed over.
	SiteStatusCompleted SiteStatus = "COMPLETED"
)

// IsValid checks if the SiteStatus is a known value.
func (s SiteStatus) IsValid() bool {
	switch s {
	case SiteStatusOngoing, SiteStatusCompleted:
		return true
	default:
		return false
	}
}

// Site is a single construction project for one client.
type Site struct {
	ID              uuid.UUID
	Name            string
	ClientName      string
	StartDate       Day
	ExpectedEndDate Day
	Status          SiteStatus
	EstimatedBudget Money // Never negative.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SiteFinancials is the derived budget view of one site. Labor cost sums every
// wage snapshot booked at the site, whether or not the wages were settled yet.
type SiteFinancials struct {
	SiteID          uuid.UUID `json:"siteId"`
	MaterialCost    Money     `json:"materialCost"`
	LaborCost       Money     `json:"laborCost"`
	TotalCost       Money     `json:"totalCost"`
	RemainingBudget Money     `json:"remainingBudget"`
	ManDays         int64     `json:"manDays"`
}

// PortfolioSummary is the contractor's global cash view. Income counts realized
// client payments while the outflow side counts full material spend and wage
// payouts; it intentionally mixes cash and accrual figures and is therefore a
// separate report from SiteFinancials.
type PortfolioSummary struct {
	TotalReceived      Money `json:"totalReceived"`
	TotalPaidToWorkers Money `json:"totalPaidToWorkers"`
	TotalMaterialCost  Money `json:"totalMaterialCost"`
	NetProfit          Money `json:"netProfit"`
}
