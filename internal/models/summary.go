package models

// CategoryTotal is one row of a per-category breakdown.
type CategoryTotal struct {
	Category    Category `json:"category"`
	TotalAmount Money    `json:"total_amount"`
	Count       int      `json:"count"`
}

// MonthlyTotal is the summed amount for one calendar month.
type MonthlyTotal struct {
	Year        int   `json:"year"`
	Month       int   `json:"month"`
	TotalAmount Money `json:"total_amount"`
}

// UserSummary aggregates a single user's spending.
type UserSummary struct {
	Username         string          `json:"username,omitempty"`
	TotalExpenses    int             `json:"total_expenses"`
	TotalAmountSpent Money           `json:"total_amount_spent"`
	TopCategories    []CategoryTotal `json:"top_categories"`
}

// GlobalSummary aggregates spending across all users.
type GlobalSummary struct {
	TotalUsers       int             `json:"total_users"`
	TotalExpenses    int             `json:"total_expenses"`
	TotalAmountSpent Money           `json:"total_amount_spent"`
	TopCategories    []CategoryTotal `json:"top_categories"`
}
