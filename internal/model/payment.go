package model

// MaxPaymentAmount is the inclusive upper bound accepted on payment forms.
const MaxPaymentAmount = 10_000_000

// Payment is a single money movement, in or out. Created via a form,
// mutated by marking paid or editing the amount in place.
type Payment struct {
	ID       string  `json:"id"`
	Payee    string  `json:"payee"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Paid     bool    `json:"paid"`
	DueDate  Date    `json:"due_date,omitempty"`
	Note     string  `json:"note,omitempty"`
}

// Contact is a simple address-book record. No relational integrity is
// enforced against tasks or payments.
type Contact struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Notes string `json:"notes,omitempty"`
}
