package response

import (
	"time"

	"doctors-portal/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	Treatment     string    `json:"treatment"`
	Date          string    `json:"date"`
	Slot          string    `json:"slot"`
	Patient       string    `json:"patient"`
	Paid          bool      `json:"paid"`
	TransactionID *string   `json:"transactionId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type AdmissionResponse struct {
	Success bool             `json:"success"`
	Booking *BookingResponse `json:"booking"`
}

func FromBookingRM(rm *readmodel.BookingRM) *BookingResponse {
	resp := &BookingResponse{}
	if err := copier.Copy(resp, rm); err != nil {
		return nil
	}
	return resp
}

func FromBookingRMs(rms []*readmodel.BookingRM) []*BookingResponse {
	responses := make([]*BookingResponse, 0, len(rms))
	for _, rm := range rms {
		responses = append(responses, FromBookingRM(rm))
	}
	return responses
}

func FromAdmission(success bool, rm *readmodel.BookingRM) *AdmissionResponse {
	return &AdmissionResponse{
		Success: success,
		Booking: FromBookingRM(rm),
	}
}
