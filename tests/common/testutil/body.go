//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// BodyMutation edits a request body that has been flattened into a JSON map.
type BodyMutation func(body map[string]any)

func Set(key string, value any) BodyMutation {
	return func(body map[string]any) { body[key] = value }
}

func Drop(key string) BodyMutation {
	return func(body map[string]any) { delete(body, key) }
}

// Body round-trips a request DTO through JSON so a test can break individual
// fields the typed struct would not let it express.
func Body(t *testing.T, dto any, muts ...BodyMutation) map[string]any {
	t.Helper()

	raw, err := json.Marshal(dto)
	require.NoError(t, err)

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &body))
	for _, mut := range muts {
		mut(body)
	}
	return body
}
