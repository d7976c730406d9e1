package request

type VerificationRequest struct {
	IsVerified *bool `json:"is_verified" binding:"required"`
}

type ActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type PayoutPeriodRequest struct {
	Month int `json:"month" binding:"required"`
	Year  int `json:"year" binding:"required"`
}
