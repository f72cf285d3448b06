package pagination_test

import (
	"testing"
	"time"

	"github.com/alj030327/arvs-fl-04-sub000/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken_RoundTrip(t *testing.T) {
	createdAt := time.Date(2025, 3, 14, 9, 26, 53, 589793238, time.UTC)
	id := "8f7c5a3e-estate"

	token := pagination.EncodeToken(createdAt, id)

	gotTime, gotID, err := pagination.DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, createdAt.Equal(gotTime))
	assert.Equal(t, id, gotID)
}

func TestDecodeToken_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "not base64", token: "%%%not-base64%%%"},
		{name: "missing separator", token: "bm8tc2VwYXJhdG9y"}, // "no-separator"
		{name: "bad timestamp", token: "bm90LWEtdGltZXxpZA=="}, // "not-a-time|id"
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := pagination.DecodeToken(tt.token)
			assert.Error(t, err)
		})
	}
}
