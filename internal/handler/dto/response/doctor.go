package response

import (
	"time"

	"doctors-portal/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DoctorResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Specialty string    `json:"specialty"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromDoctorRM(rm *readmodel.DoctorRM) *DoctorResponse {
	resp := &DoctorResponse{}
	if err := copier.Copy(resp, rm); err != nil {
		return nil
	}
	return resp
}

func FromDoctorRMs(rms []*readmodel.DoctorRM) []*DoctorResponse {
	responses := make([]*DoctorResponse, 0, len(rms))
	for _, rm := range rms {
		responses = append(responses, FromDoctorRM(rm))
	}
	return responses
}
