package entities

// Customer is the owner of requests and vehicles.
type Customer struct {
	ID          string `json:"id"`
	DisplayName string `json:"name"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

// Workshop is a repair shop submitting offers. IsVerified and IsActive are orthogonal
// moderation flags.
type Workshop struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"name"`
	Email       string   `json:"email,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Address     string   `json:"address,omitempty"`
	City        string   `json:"city,omitempty"`
	Latitude    float64  `json:"latitude,omitempty"`
	Longitude   float64  `json:"longitude,omitempty"`
	IsVerified  bool     `json:"isVerified"`
	IsActive    bool     `json:"isActive"`
	Rating      *float64 `json:"rating,omitempty"`
}

// WorkshopFlagsPatch is the body of PATCH /api/admin/workshops. Nil flags are left untouched.
type WorkshopFlagsPatch struct {
	ID         string `json:"id"`
	IsVerified *bool  `json:"isVerified,omitempty"`
	IsActive   *bool  `json:"isActive,omitempty"`
}
