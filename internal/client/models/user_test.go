package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Profile_DropsDigest(t *testing.T) {
	u := &User{
		ID:               "id-1",
		Email:            "a@x.com",
		FullName:         "Ada",
		PasswordHash:     "deadbeef",
		LearningStreak:   3,
		ExperiencePoints: 120,
	}

	p := u.Profile()
	assert.Equal(t, Profile{ID: "id-1", Email: "a@x.com", FullName: "Ada"}, p)

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"id-1","email":"a@x.com","fullName":"Ada"}`, string(raw))
	assert.NotContains(t, string(raw), "deadbeef")
}
