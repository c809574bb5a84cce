package pricing

import "servismotor-bot/internal/catalog"

// Breakdown is the cost estimate shown to the customer.
type Breakdown struct {
	ServiceCost    float64 `json:"service_cost"`
	PartsTotalCost float64 `json:"parts_total_cost"`
	DifficultyCost float64 `json:"difficulty_cost"`
	TotalCost      float64 `json:"total_cost"`
}

// Calculate computes the estimate for a service, the ledger total and a
// difficulty tier. The difficulty surcharge is a share of the service
// (labour) price only; parts are never surcharged.
func Calculate(service catalog.Service, partsTotal float64, difficulty catalog.DifficultyLevel) Breakdown {
	b := Breakdown{
		ServiceCost:    service.Price,
		PartsTotalCost: partsTotal,
		DifficultyCost: service.Price * difficulty.Multiplier,
	}
	b.TotalCost = b.ServiceCost + b.PartsTotalCost + b.DifficultyCost
	return b
}
