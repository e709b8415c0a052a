package response_models

type BudgetEstimate struct {
	Tier         string  `json:"tier"`
	Food         float64 `json:"food"`
	Stay         float64 `json:"stay"`
	Activities   float64 `json:"activities"`
	Total        float64 `json:"total"`
	TotalDisplay string  `json:"total_display"`
	DaysBasis    float64 `json:"days_basis"` // divisor applied to the total entrance fees
}
