package channel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestID_OrderIndependent(t *testing.T) {
	assert.Equal(t, ID("doctor-1", "patient-9"), ID("patient-9", "doctor-1"))
}

func TestID_StableAcrossCalls(t *testing.T) {
	first := ID("doctor-1", "patient-9")
	second := ID("doctor-1", "patient-9")
	assert.Equal(t, first, second)
	assert.Equal(t, "doctor-1_patient-9", first)
}

func TestID_DistinctPairsDiffer(t *testing.T) {
	assert.NotEqual(t, ID("a", "b"), ID("a", "c"))
}
