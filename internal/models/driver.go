package models

// Driver master data. Status is "active" or "inactive".
type Driver struct {
	Name       string `json:"name"`
	EmployeeID string `json:"employee_id"`
	Phone      string `json:"phone"`
	Status     string `json:"status"`
}
