package response

import (
	"doctors-portal/internal/domain/treatment"
	"doctors-portal/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type TreatmentResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Slots      []string  `json:"slots"`
	PriceCents int64     `json:"priceCents"`
}

type TreatmentNameResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type AvailabilityResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	RemainingSlots []string `json:"slots"`
	PriceCents     int64    `json:"priceCents"`
}

func FromTreatmentRM(rm *readmodel.TreatmentRM) *TreatmentResponse {
	resp := &TreatmentResponse{}
	if err := copier.Copy(resp, rm); err != nil {
		return nil
	}
	return resp
}

func FromTreatmentNameRMs(rms []*readmodel.TreatmentNameRM) []*TreatmentNameResponse {
	responses := make([]*TreatmentNameResponse, 0, len(rms))
	for _, rm := range rms {
		resp := &TreatmentNameResponse{}
		if err := copier.Copy(resp, rm); err != nil {
			continue
		}
		responses = append(responses, resp)
	}
	return responses
}

func FromAvailabilities(items []treatment.Availability) []*AvailabilityResponse {
	responses := make([]*AvailabilityResponse, 0, len(items))
	for i := range items {
		responses = append(responses, &AvailabilityResponse{
			ID:             items[i].ID,
			Name:           items[i].Name,
			RemainingSlots: items[i].RemainingSlots,
			PriceCents:     items[i].PriceCents,
		})
	}
	return responses
}
