package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobStatusFromCode(t *testing.T) {
	tests := []struct {
		code  int
		want  JobStatus
		known bool
	}{
		{0, JobStatusAssigned, true},
		{1, JobStatusStarted, true},
		{2, JobStatusCompleted, true},
		{3, JobStatusFailed, true},
		{4, JobStatusArrived, true},
		{6, JobStatusPending, true},
		{7, JobStatusAssigned, true},
		{8, JobStatusCancelled, true},
		{9, JobStatusCancelled, true},
		{10, JobStatusCancelled, true},
		{5, JobStatusUnknown, false},
		{99, JobStatusUnknown, false},
		{-1, JobStatusUnknown, false},
	}

	for _, tt := range tests {
		got, known := JobStatusFromCode(tt.code)
		assert.Equal(t, tt.want, got, "code %d", tt.code)
		assert.Equal(t, tt.known, known, "code %d", tt.code)
	}
}
