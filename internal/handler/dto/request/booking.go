package request

type CreateBookingRequest struct {
	Treatment string `json:"treatment" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Slot      string `json:"slot" binding:"required"`
	Patient   string `json:"patient" binding:"required,email"`
}

type ConfirmPaymentRequest struct {
	TransactionID string `json:"transactionId" binding:"required"`
}
