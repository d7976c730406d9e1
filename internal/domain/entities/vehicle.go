package entities

// Vehicle is owned by exactly one customer and referenced by requests.
type Vehicle struct {
	ID         string `json:"id"`
	CustomerID string `json:"customerId,omitempty"`
	Make       string `json:"make"`
	Model      string `json:"model"`
	Year       int    `json:"year"`
}
