package history

import "time"

// Run records one optimizer invocation: the inputs that shaped the sweep and
// the winning split.
type Run struct {
	ID            string    `json:"id"`
	Canton        string    `json:"canton"`
	Commune       string    `json:"commune"`
	Profit        float64   `json:"profit"`
	MinimumSalary float64   `json:"minimumSalary"`
	Step          float64   `json:"step"`
	BestSalary    float64   `json:"bestSalary"`
	BestDividend  float64   `json:"bestDividend"`
	NetToOwner    float64   `json:"netToOwner"`
	CreatedAt     time.Time `json:"createdAt"`
}
