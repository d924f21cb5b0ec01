//go:build unit || e2e

package httptest

import (
	"strconv"

	reqdto "tickettock/internal/handler/dto/request"
)

// ReservationHeaders builds request headers for the FCFS endpoint; seq <= 0 omits the sequence.
func ReservationHeaders(identity string, seq int64) map[string]string {
	h := map[string]string{}
	if identity != "" {
		h[reqdto.HeaderUserID] = identity
	}
	if seq > 0 {
		h[reqdto.HeaderFCFSSequence] = strconv.FormatInt(seq, 10)
	}
	return h
}

func AdminHeaders(token string) map[string]string {
	return map[string]string{reqdto.HeaderAdminToken: token}
}
