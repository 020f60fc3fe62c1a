package helpers

import (
	"encoding/base64"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeClaims(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role": "editor"}).SignedString([]byte("k"))
	require.NoError(t, err)

	padded := "x." + base64.URLEncoding.EncodeToString([]byte(`{"role":"viewer"}`)) + ".y"

	tests := []struct {
		name     string
		token    string
		wantRole string
		wantErr  bool
	}{
		{name: "signed token", token: signed, wantRole: "editor"},
		{name: "padded payload", token: padded, wantRole: "viewer"},
		{name: "single segment", token: "abc", wantErr: true},
		{name: "bad base64", token: "a.!!!.c", wantErr: true},
		{name: "array payload", token: "a." + base64.RawURLEncoding.EncodeToString([]byte(`[1]`)) + ".c", wantErr: true},
		{name: "null payload", token: "a." + base64.RawURLEncoding.EncodeToString([]byte(`null`)) + ".c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := DecodeClaims(tt.token)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedToken)
				return
			}
			require.NoError(t, err)
			role, _ := StringClaim(claims, "role")
			assert.Equal(t, tt.wantRole, role)
		})
	}
}
