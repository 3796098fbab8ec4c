package braket

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/go-openapi/strfmt"
	jsoniter "github.com/json-iterator/go"
	"github.com/oqtopus-team/oqtopus-braket/core"
	"go.uber.org/zap"
)

var jsonIter = jsoniter.ConfigCompatibleWithStandardLibrary

type TaskMetadata struct {
	ID        string          `json:"id"`
	Shots     int             `json:"shots"`
	DeviceID  string          `json:"deviceId"`
	CreatedAt strfmt.DateTime `json:"createdAt,omitempty"`
	EndedAt   strfmt.DateTime `json:"endedAt,omitempty"`
}

// TaskResult is the decoded result of a gate-model task.
// StateVector and DensityMatrix are set only when the matching result type was requested.
type TaskResult struct {
	Measurements   [][]int
	MeasuredQubits []int
	StateVector    []complex128
	DensityMatrix  [][]complex128
	TaskMetadata   TaskMetadata
}

type wireResultType struct {
	Type struct {
		Type string `json:"type"`
	} `json:"type"`
	Value jsoniter.RawMessage `json:"value"`
}

type wireTaskResult struct {
	Measurements   [][]int          `json:"measurements"`
	MeasuredQubits []int            `json:"measuredQubits"`
	ResultTypes    []wireResultType `json:"resultTypes"`
	TaskMetadata   TaskMetadata     `json:"taskMetadata"`
}

// UnmarshalTaskResult decodes a results.json document written by a Braket device.
// Complex numbers are encoded as [re, im] pairs.
func UnmarshalTaskResult(blob []byte) (*TaskResult, error) {
	w := wireTaskResult{}
	if err := jsonIter.Unmarshal(blob, &w); err != nil {
		zap.L().Error(fmt.Sprintf("failed to unmarshal task result/reason:%s", err))
		return nil, errors.Errorf("%w: %s", core.ErrInvalidResult, err)
	}
	r := &TaskResult{
		Measurements:   w.Measurements,
		MeasuredQubits: w.MeasuredQubits,
		TaskMetadata:   w.TaskMetadata,
	}
	for _, rt := range w.ResultTypes {
		switch ResultType(rt.Type.Type) {
		case ResultStateVector:
			pairs := [][2]float64{}
			if err := jsonIter.Unmarshal(rt.Value, &pairs); err != nil {
				return nil, errors.Errorf("%w: statevector: %s", core.ErrInvalidResult, err)
			}
			r.StateVector = toComplex(pairs)
		case ResultDensityMatrix:
			rows := [][][2]float64{}
			if err := jsonIter.Unmarshal(rt.Value, &rows); err != nil {
				return nil, errors.Errorf("%w: density matrix: %s", core.ErrInvalidResult, err)
			}
			r.DensityMatrix = make([][]complex128, len(rows))
			for i, row := range rows {
				r.DensityMatrix[i] = toComplex(row)
			}
		default:
			zap.L().Debug(fmt.Sprintf("ignored result type %s", rt.Type.Type))
		}
	}
	return r, nil
}

func toComplex(pairs [][2]float64) []complex128 {
	out := make([]complex128, len(pairs))
	for i, p := range pairs {
		out[i] = complex(p[0], p[1])
	}
	return out
}
