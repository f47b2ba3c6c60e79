package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "dispatch time", input: "08:00", want: 480},
		{name: "near end of day", input: "23:59", want: 1439},
		{name: "missing colon", input: "0800", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "non-numeric", input: "ab:cd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TimeToMinutes(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMinutesToHHMM_Truncates(t *testing.T) {
	assert.Equal(t, "08:00", MinutesToHHMM(480))
	assert.Equal(t, "08:00", MinutesToHHMM(480.9)) // truncation, not rounding
	assert.Equal(t, "23:59", MinutesToHHMM(1439))
}

func TestWindowOK_EndpointInclusive(t *testing.T) {
	assert.True(t, WindowOK(480, 480, 840))
	assert.True(t, WindowOK(840, 480, 840))
	assert.False(t, WindowOK(841, 480, 840))
	assert.False(t, WindowOK(479, 480, 840))
}
