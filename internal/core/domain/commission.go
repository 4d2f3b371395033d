package domain

// CommissionStatus is the payment state of a commission.
type CommissionStatus string

const (
	CommissionDue  CommissionStatus = "due"
	CommissionPaid CommissionStatus = "paid"
)

// Commission is a payout owed to a sales agent. Agent and coach names are
// joined in server-side; the console never resolves them itself.
type Commission struct {
	ID               int              `json:"id"`
	SalesAgentID     int              `json:"sales_agent_id"`
	AgentName        string           `json:"agent_name,omitempty"`
	CoachName        string           `json:"coach_name,omitempty"`
	Amount           string           `json:"amount"`
	CommissionStatus CommissionStatus `json:"commission_status"`
}

// NewCommission is the create/update payload for a commission.
type NewCommission struct {
	SalesAgentID     int              `json:"sales_agent_id" validate:"required,gt=0"`
	Amount           string           `json:"amount" validate:"required"`
	CommissionStatus CommissionStatus `json:"commission_status" validate:"required,oneof=due paid"`
}
