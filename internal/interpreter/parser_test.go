package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	m, err := Parse("5 5\n1 2 N\nLMLMLMLMM\n3 3 E\nMMRMMRMRRM\n")
	require.NoError(t, err)

	assert.Equal(t, Grid{MaxX: 5, MaxY: 5}, m.Grid)
	assert.Equal(t, sampleDeployments, m.Deployments)
}

func TestParseTolerance(t *testing.T) {
	tests := map[string]string{
		"crlf":          "5 5\r\n1 2 N\r\nLMLMLMLMM\r\n",
		"extra spaces":  "  5   5\n1\t2  N \nLMLMLMLMM",
		"leading zeros": "05 05\n01 02 N\nLMLMLMLMM\n\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			m, err := Parse(in)
			require.NoError(t, err)
			assert.Equal(t, Grid{MaxX: 5, MaxY: 5}, m.Grid)
			require.Len(t, m.Deployments, 1)
			assert.Equal(t, sampleDeployments[0], m.Deployments[0])
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr error
	}{
		{"negative grid width", "-1 0\n1 2 N\nR", ErrInvalidDimensions},
		{"negative grid height", "0 -1\n1 2 N\nR", ErrInvalidDimensions},
		{"zero grid", "0 0\n1 2 N\nR", ErrInvalidDimensions},
		{"zero grid width", "1 0\n1 2 N\nR", ErrInvalidDimensions},
		{"zero grid height", "0 1\n1 2 N\nR", ErrInvalidDimensions},
		{"invalid heading", "1 1\n0 0 X\nM", ErrInvalidHeading},
		{"lowercase heading", "1 1\n0 0 n\nM", ErrInvalidHeading},
		{"missing grid height", "5", ErrMalformedInput},
		{"missing robot data", "5 5", ErrMalformedInput},
		{"missing robot instructions", "5 5\n1 2 N", ErrMalformedInput},
		{"empty robot instructions", "5 5\n1 2 N\n", ErrMalformedInput},
		{"last robot without instructions", "5 5\n1 2 N\nLMLMLMLMM\n0 0", ErrMalformedInput},
		{"last robot placement only", "5 5\n1 2 N\nLM\n0 0 N", ErrMalformedInput},
		{"empty program mid batch", "5 5\n1 2 N\n\n3 3 E\nM", ErrMalformedInput},
		{"grid not numeric", "a b\n1 2 N\nM", ErrMalformedInput},
		{"grid three fields", "5 5 5\n1 2 N\nM", ErrMalformedInput},
		{"coordinate not numeric", "5 5\n1 y N\nM", ErrMalformedInput},
		{"glued heading", "5 5\n1 2N\nM", ErrMalformedInput},
		{"placement four fields", "5 5\n1 2 N E\nM", ErrMalformedInput},
		{"empty", "", ErrMalformedInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse(tt.in)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, m)
		})
	}
}

func TestParseKeepsProgramVerbatim(t *testing.T) {
	m, err := Parse("1 1\n0 0 N\nX")
	require.NoError(t, err)
	require.Len(t, m.Deployments, 1)
	assert.Equal(t, "X", m.Deployments[0].Program)

	_, err = Run(m.Grid, m.Deployments)
	assert.ErrorIs(t, err, ErrInvalidInstruction)
}

func TestParseReportsLine(t *testing.T) {
	_, err := Parse("5 5\n1 2 N\nM\n3 q E\nM")
	require.ErrorIs(t, err, ErrMalformedInput)
	assert.Contains(t, err.Error(), "line 4")
}

func TestParseAndRunScenarios(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{name: "single robot 1", in: "5 5\n1 2 N\nLMLMLMLMM", want: "1 3 N"},
		{name: "single robot 2", in: "5 5\n3 3 E\nMMRMMRMRRM", want: "5 1 E"},
		{name: "two robots", in: "5 5\n1 2 N\nLMLMLMLMM\n3 3 E\nMMRMMRMRRM", want: "1 3 N\n5 1 E"},
		{name: "start outside grid", in: "1 1\n2 2 E\nR", wantErr: ErrInvalidInitialPosition},
		{name: "move outside grid", in: "1 1\n1 1 N\nM", wantErr: ErrOutOfBounds},
		{name: "invalid instruction", in: "1 1\n0 0 N\nX", wantErr: ErrInvalidInstruction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse(tt.in)
			require.NoError(t, err)
			states, err := Run(m.Grid, m.Deployments)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, FormatStates(states))
		})
	}
}
