package requests

// CallRequest is the unit of work the dashboard submits for either call type.
// Defaults mirror the dashboard's first data row and father-first convention.
type CallRequest struct {
	RowIndex int    `json:"row_index"`
	Target   string `json:"target"`
}

func (r *CallRequest) ApplyDefaults() {
	if r.RowIndex == 0 {
		r.RowIndex = 2
	}
	if r.Target == "" {
		r.Target = "father"
	}
}
