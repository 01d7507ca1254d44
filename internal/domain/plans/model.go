package plans

// DuckDBAllowance describes the server-side query cache bundled with a plan.
type DuckDBAllowance struct {
	Capacity string `json:"capacity"` // e.g. "4GB"
	Saving   string `json:"saving"`   // e.g. "~15%"
}

// Plan is one pricing tier as shown on the pricing page. Prices are whole
// USD per editor per month.
type Plan struct {
	ID             Tier             `json:"id"`
	Name           string           `json:"name"`
	PricePerEditor int              `json:"price_per_editor"`
	Description    string           `json:"description"`
	MinSeats       int              `json:"min_seats"`
	Collaborators  int              `json:"collaborators"`
	FeatureList    []string         `json:"feature_list"`
	DuckDB         *DuckDBAllowance `json:"duck_db,omitempty"`
}
