//go:build unit
// +build unit

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetAsset(t *testing.T) {
	blob, err := GetAsset("bell_pair.json")
	assert.Nil(t, err)
	assert.Contains(t, blob, `"n_qubits": 2`)
	assert.Contains(t, blob, `"gate": "CNOT"`)
}

func TestGetAssetNotFound(t *testing.T) {
	_, err := GetAsset("no_such_asset.json")
	assert.NotNil(t, err)
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "CPhaseShift", want: "cphaseshift"},
		{in: "c_phase-shift", want: "cphaseshift"},
		{in: "CNOT", want: "cnot"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeName(tt.in))
		})
	}
}

func TestIsDirWritable(t *testing.T) {
	assert.Nil(t, IsDirWritable(t.TempDir()))
	assert.NotNil(t, IsDirWritable("/no/such/dir"))
}
