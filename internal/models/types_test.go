package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSONRoundTrip(t *testing.T) {
	d, err := ParseDate("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", d.String())

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-15"`, string(raw))

	var parsed Date
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Equal(t, d, parsed)
}

func TestDate_ParseInvalid(t *testing.T) {
	cases := []string{"15-01-2024", "2024/01/15", "2024-13-01", "not a date"}
	for _, c := range cases {
		_, err := ParseDate(c)
		assert.Error(t, err, "input %q", c)
	}
}

func TestDayTime_JSONRoundTrip(t *testing.T) {
	dt, err := ParseDayTime("09:30:00")
	require.NoError(t, err)
	assert.Equal(t, "09:30:00", dt.String())

	raw, err := json.Marshal(dt)
	require.NoError(t, err)
	assert.Equal(t, `"09:30:00"`, string(raw))

	var parsed DayTime
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Equal(t, dt, parsed)
}

func TestDayTime_ParseInvalid(t *testing.T) {
	cases := []string{"9:30", "25:00:00", "09-30-00"}
	for _, c := range cases {
		_, err := ParseDayTime(c)
		assert.Error(t, err, "input %q", c)
	}
}

func TestUser_JSONHidesPasswordHash(t *testing.T) {
	u := User{
		ID:           1,
		Email:        "a@example.com",
		PasswordHash: "secret-hash",
		WorkWeek:     []string{},
	}

	raw, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret-hash")
	assert.Contains(t, string(raw), `"work_week":[]`)
}
