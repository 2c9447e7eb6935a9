package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusOK, "OK"},
		{ErrBadCommand, "bad command"},
		{ErrNumOverflow, "number overflow"},
		{ErrStackUnderflow, "stack underflow"},
		{ErrStackOverflow, "stack overflow"},
		{ErrAccumulatorOverflow, "input buffer overflow"},
		{ErrBadIndex, "bad index"},
		{ErrUser, "user error"},
		{ErrUser + 5, "user error"},
		{StatusIgnoreEOL, "ignore to end of line"},
		{StatusAcceptPending, "accept pending"},
		{StatusUser, "user status"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.status))
		})
	}
}

func TestStatus_Partition(t *testing.T) {
	assert.False(t, StatusOK.IsError())
	assert.False(t, StatusOK.IsSignal())
	assert.True(t, ErrBadIndex.IsError())
	assert.True(t, StatusIgnoreEOL.IsSignal())
	assert.False(t, StatusIgnoreEOL.IsError())
}

func TestStatus_Err(t *testing.T) {
	assert.NoError(t, StatusOK.Err())
	assert.NoError(t, StatusIgnoreEOL.Err())

	err := ErrStackOverflow.Err()
	assert.EqualError(t, err, "stack overflow (4)")

	var st Status
	assert.True(t, errors.As(err, &st))
	assert.Equal(t, ErrStackOverflow, st)
}

func TestPrintOpt(t *testing.T) {
	opt := PrintHex | PrintNoSep
	assert.Equal(t, PrintHex, opt.Kind())
	assert.False(t, opt.Separated())
	assert.True(t, PrintSigned.Separated())
}
