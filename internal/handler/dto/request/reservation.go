package request

import "strings"

const (
	HeaderUserID       = "X-User-Id"
	HeaderFCFSSequence = "X-FCFS-Sequence"
	HeaderAdminToken   = "X-Admin-Token"
)

type ReserveSeatRequest struct {
	UserName string  `json:"user_name" binding:"required,max=100"`
	Phone    *string `json:"phone,omitempty" binding:"omitempty,max=32"`
}

func (r ReserveSeatRequest) GetPhone() *string {
	if r.Phone == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Phone)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
