package request

type CreateTreatmentRequest struct {
	Name       string   `json:"name" binding:"required"`
	Slots      []string `json:"slots" binding:"required,min=1"`
	PriceCents int64    `json:"priceCents" binding:"required"`
}
