package inference

import (
	"testing"
	"thirdopinion-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastrationSensitivityObservationBuilder(t *testing.T) {
	t.Run("Sensitive status end to end", func(t *testing.T) {
		observation, err := NewCastrationSensitivityObservationBuilder(testAIConfig()).
			WithPatient("p1").
			WithDevice("d1").
			WithFocusCondition("Condition/c1").
			WithStatus(CastrationSensitive).
			Build()
		require.NoError(t, err)

		assert.Equal(t, constvars.ObservationCategoryExam, observation.Category[0].Coding[0].Code)
		assert.Equal(t, constvars.SnomedProstateCancer, observation.Code.Coding[0].Code)
		assert.Equal(t, "Castration sensitivity", observation.Code.Text)
		assert.Equal(t, constvars.SnomedCastrationSensitive, observation.ValueCodeableConcept.Coding[0].Code)

		require.Len(t, observation.Focus, 1)
		assert.Equal(t, "Condition/c1", observation.Focus[0].Reference)
		assert.Equal(t, constvars.ResourceCondition, observation.Focus[0].Type)
	})

	t.Run("Resistant status maps to its SNOMED code", func(t *testing.T) {
		observation, err := NewCastrationSensitivityObservationBuilder(testAIConfig()).
			WithPatient("p1").
			WithDevice("d1").
			WithFocusCondition("c1").
			WithStatus(CastrationResistant).
			Build()
		require.NoError(t, err)
		assert.Equal(t, constvars.SnomedCastrationResistant, observation.ValueCodeableConcept.Coding[0].Code)
	})

	t.Run("Bare condition id is prefixed", func(t *testing.T) {
		observation, err := NewCastrationSensitivityObservationBuilder(testAIConfig()).
			WithPatient("p1").
			WithDevice("d1").
			WithFocusCondition("c1").
			WithStatus(CastrationSensitive).
			Build()
		require.NoError(t, err)
		assert.Equal(t, "Condition/c1", observation.Focus[0].Reference)
	})

	t.Run("Focus pointing at a non-Condition resource is rejected at setter time", func(t *testing.T) {
		_, err := NewCastrationSensitivityObservationBuilder(testAIConfig()).
			WithPatient("p1").
			WithDevice("d1").
			WithFocusCondition("Observation/o1").
			WithStatus(CastrationSensitive).
			Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Observation/o1")
		assert.Contains(t, err.Error(), "Condition")
	})

	t.Run("Missing focus fails naming the setter", func(t *testing.T) {
		_, err := NewCastrationSensitivityObservationBuilder(testAIConfig()).
			WithPatient("p1").
			WithDevice("d1").
			WithStatus(CastrationSensitive).
			Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "WithFocusCondition")
	})

	t.Run("Missing status fails naming the setter", func(t *testing.T) {
		_, err := NewCastrationSensitivityObservationBuilder(testAIConfig()).
			WithPatient("p1").
			WithDevice("d1").
			WithFocusCondition("c1").
			Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "WithStatus")
	})

	t.Run("Unknown status value is rejected", func(t *testing.T) {
		_, err := NewCastrationSensitivityObservationBuilder(testAIConfig()).
			WithPatient("p1").
			WithDevice("d1").
			WithFocusCondition("c1").
			WithStatus(CastrationStatus("unknown")).
			Build()
		require.Error(t, err)
	})
}
