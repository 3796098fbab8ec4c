//go:build unit
// +build unit

package braket

import (
	"errors"
	"testing"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/oqtopus-team/oqtopus-braket/core"
	"github.com/stretchr/testify/assert"
)

func TestUnmarshalTaskResult(t *testing.T) {
	blob := heredoc.Doc(`
		{
		  "braketSchemaHeader": {"name": "braket.task_result.gate_model_task_result", "version": "1"},
		  "measurements": [[1, 0, 0], [1, 0, 0]],
		  "measuredQubits": [0, 1, 2],
		  "resultTypes": [
		    {"type": {"type": "statevector"}, "value": [[0.0, 0.0], [0.5, -0.5]]},
		    {"type": {"type": "densitymatrix"}, "value": [[[1.0, 0.0], [0.0, 0.0]], [[0.0, 0.0], [0.0, 0.0]]]},
		    {"type": {"type": "probability"}, "value": [1.0, 0.0]}
		  ],
		  "taskMetadata": {
		    "id": "arn:aws:braket:us-west-1:123456789012:quantum-task/abc",
		    "shots": 2,
		    "deviceId": "arn:aws:braket:::device/quantum-simulator/amazon/sv1",
		    "createdAt": "2024-05-01T10:00:00.000Z",
		    "endedAt": "2024-05-01T10:00:05.000Z"
		  }
		}
	`)
	r, err := UnmarshalTaskResult([]byte(blob))
	assert.Nil(t, err)
	assert.Equal(t, [][]int{{1, 0, 0}, {1, 0, 0}}, r.Measurements)
	assert.Equal(t, []int{0, 1, 2}, r.MeasuredQubits)
	assert.Equal(t, []complex128{0, complex(0.5, -0.5)}, r.StateVector)
	assert.Equal(t, [][]complex128{{1, 0}, {0, 0}}, r.DensityMatrix)
	assert.Equal(t, 2, r.TaskMetadata.Shots)
	assert.Equal(t, 5*time.Second, time.Time(r.TaskMetadata.EndedAt).Sub(time.Time(r.TaskMetadata.CreatedAt)))
}

func TestUnmarshalTaskResultError(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "broken json", in: `{"measurements": [[1, 0]`},
		{name: "broken statevector", in: `{"resultTypes": [{"type": {"type": "statevector"}, "value": "abc"}]}`},
		{name: "broken density matrix", in: `{"resultTypes": [{"type": {"type": "densitymatrix"}, "value": [1, 2]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalTaskResult([]byte(tt.in))
			assert.True(t, errors.Is(err, core.ErrInvalidResult))
		})
	}
}
