package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestProfileUpdate_Unmarshal(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantName    Optional[string]
		wantCity    Optional[string]
		wantRating  bool
		wantRawRate string
	}{
		{
			name:     "absent fields are not set",
			body:     `{}`,
			wantName: Optional[string]{},
			wantCity: Optional[string]{},
		},
		{
			name:     "null clears the field",
			body:     `{"name": null}`,
			wantName: Optional[string]{Set: true},
		},
		{
			name:        "values and rating",
			body:        `{"name": "Jane", "city": "Pune", "rating": "4.9"}`,
			wantName:    Optional[string]{Set: true, Value: strPtr("Jane")},
			wantCity:    Optional[string]{Set: true, Value: strPtr("Pune")},
			wantRating:  true,
			wantRawRate: `"4.9"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var upd ProfileUpdate
			require.NoError(t, json.Unmarshal([]byte(tt.body), &upd))
			assert.Equal(t, tt.wantName, upd.Name)
			assert.Equal(t, tt.wantCity, upd.City)
			assert.Equal(t, tt.wantRating, upd.Rating.Set)
			if tt.wantRawRate != "" {
				require.NotNil(t, upd.Rating.Value)
				assert.Equal(t, tt.wantRawRate, string(*upd.Rating.Value))
			}
		})
	}
}

func TestProfileUpdate_RejectsWrongType(t *testing.T) {
	var upd ProfileUpdate
	assert.Error(t, json.Unmarshal([]byte(`{"name": 12}`), &upd))
}

func TestProfileUpdate_Apply(t *testing.T) {
	u := &User{Name: strPtr("Old"), City: strPtr("Delhi"), Subject: strPtr("Maths")}
	var upd ProfileUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"name": "New", "city": null}`), &upd))

	upd.Apply(u)

	assert.Equal(t, "New", *u.Name)
	assert.Nil(t, u.City)
	assert.Equal(t, "Maths", *u.Subject)
}

func TestPasswordResetToken_IsExpired(t *testing.T) {
	issued := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	token := PasswordResetToken{ExpiresAt: issued.Add(ResetTokenTTL)}

	assert.False(t, token.IsExpired(issued))
	assert.False(t, token.IsExpired(issued.Add(ResetTokenTTL)))
	assert.True(t, token.IsExpired(issued.Add(ResetTokenTTL+time.Second)))
}

func TestUser_PublicHidesHash(t *testing.T) {
	u := User{ID: 7, Email: "a@b.c", PasswordHash: "secret-hash", Role: RoleStudent}
	data, err := json.Marshal(u.Public())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret-hash")
	assert.JSONEq(t, `{"id":7,"email":"a@b.c","role":"student","name":null,"subject":null,
		"rating":null,"price":null,"city":null,"image":null}`, string(data))
}

func TestLooseString_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "string", body: `{"v": " teacher-5 "}`, want: "teacher-5"},
		{name: "integer", body: `{"v": 919876543210}`, want: "919876543210"},
		{name: "null", body: `{"v": null}`, want: ""},
		{name: "absent", body: `{}`, want: ""},
		{name: "object", body: `{"v": {}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req struct {
				V LooseString `json:"v"`
			}
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.V.String())
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"whole seconds", time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), "2024-05-01T12:00:00Z"},
		{"microseconds", time.Date(2024, 5, 1, 12, 0, 0, 120000, time.UTC), "2024-05-01T12:00:00.000120Z"},
		{"converted to UTC", time.Date(2024, 5, 1, 15, 0, 0, 0, moscow), "2024-05-01T12:00:00Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTimestamp(tt.in))
		})
	}
}
