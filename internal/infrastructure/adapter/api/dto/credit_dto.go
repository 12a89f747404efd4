package dto

import (
	"time"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	"github.com/amirhossein-jamali/medimeet/internal/domain/port/usecase"
)

// AllocationResponse reports the outcome of a monthly allocation
type AllocationResponse struct {
	Granted bool   `json:"granted"`
	Plan    string `json:"plan,omitempty"`
	Amount  int64  `json:"amount"`
	Credits int64  `json:"credits"`
}

// CreditTransactionResponse represents one ledger entry
type CreditTransactionResponse struct {
	ID        string    `json:"id"`
	Amount    int64     `json:"amount"`
	Type      string    `json:"type"`
	PackageID string    `json:"packageId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewAllocationResponse maps an allocation result
func NewAllocationResponse(r *usecase.AllocationResult) AllocationResponse {
	resp := AllocationResponse{
		Granted: r.Granted,
		Plan:    r.Plan.String(),
		Amount:  r.Amount,
	}
	if r.User != nil {
		resp.Credits = r.User.Credits()
	}
	return resp
}

// NewCreditTransactionResponses maps ledger entries, keeping their order
func NewCreditTransactionResponses(entries []*entity.CreditTransaction) []CreditTransactionResponse {
	out := make([]CreditTransactionResponse, 0, len(entries))
	for _, e := range entries {
		item := CreditTransactionResponse{
			ID:        e.ID,
			Amount:    e.Amount,
			Type:      string(e.Type),
			CreatedAt: e.CreatedAt,
		}
		if e.PackageID != nil {
			item.PackageID = *e.PackageID
		}
		out = append(out, item)
	}
	return out
}
