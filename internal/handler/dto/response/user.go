package response

import (
	"time"

	"doctors-portal/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UpsertUserResponse struct {
	Result *UserResponse `json:"result"`
	Token  string        `json:"token"`
}

type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}

func FromUserRM(rm *readmodel.UserRM) *UserResponse {
	resp := &UserResponse{}
	if err := copier.Copy(resp, rm); err != nil {
		return nil
	}
	return resp
}

func FromUserRMs(rms []*readmodel.UserRM) []*UserResponse {
	responses := make([]*UserResponse, 0, len(rms))
	for _, rm := range rms {
		responses = append(responses, FromUserRM(rm))
	}
	return responses
}
