package main

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUser(t *testing.T) {
	id := uuid.New()
	uid, err := parseUser(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, uid)

	_, err = parseUser("nobody")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid user id error: ")
}

func TestParseDay(t *testing.T) {
	now := time.Date(2024, 3, 9, 20, 0, 0, 0, time.UTC)
	type testCase struct {
		Desc    string
		Date    string
		TZ      string
		Want    string
		WantErr string
	}
	testCases := []testCase{
		{Desc: "defaults to today in zone", TZ: "Pacific/Tongatapu", Want: "2024-03-10"},
		{Desc: "explicit date", Date: "2024-02-29", TZ: "UTC", Want: "2024-02-29"},
		{Desc: "bad zone", TZ: "Mars/Olympus", WantErr: "invalid timezone error: "},
		{Desc: "bad date", Date: "29.02.2024", TZ: "UTC", WantErr: "invalid date error: "},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			day, err := parseDay(tc.Date, tc.TZ, now)
			if tc.WantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.WantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Want, day.Format(time.DateOnly))
		})
	}
}
