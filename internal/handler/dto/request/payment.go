package request

type CreatePaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}
