package inference

import (
	"testing"
	"thirdopinion-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRadiographicProgressionObservationBuilder(t *testing.T) {
	t.Run("Determination is required", func(t *testing.T) {
		_, err := NewRadiographicProgressionObservationBuilder(testAIConfig(), CriteriaRecist11).
			WithPatient("p1").
			WithDevice("d1").
			Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "WithDetermination")
	})

	t.Run("Determinations map onto their fixed SNOMED codes", func(t *testing.T) {
		expected := map[Determination]string{
			DeterminationCompleteResponse:   constvars.SnomedCompleteResponse,
			DeterminationPartialResponse:    constvars.SnomedPartialResponse,
			DeterminationStableDisease:      constvars.SnomedStableDisease,
			DeterminationProgressiveDisease: constvars.SnomedProgressiveDisease,
			DeterminationBaseline:           constvars.SnomedBaselineAssessment,
			DeterminationInconclusive:       constvars.SnomedInconclusiveFinding,
		}
		for determination, code := range expected {
			observation, err := NewRadiographicProgressionObservationBuilder(testAIConfig(), CriteriaRecist11).
				WithPatient("p1").
				WithDevice("d1").
				WithDetermination(determination).
				Build()
			require.NoError(t, err, "determination %s should build", determination)
			assert.Equal(t, code, observation.ValueCodeableConcept.Coding[0].Code)
			assert.Equal(t, constvars.SystemSNOMED, observation.ValueCodeableConcept.Coding[0].System)
		}
	})

	t.Run("RECIST criteria carry an imaging category and NCI method", func(t *testing.T) {
		observation, err := NewRadiographicProgressionObservationBuilder(testAIConfig(), CriteriaRecist11).
			WithPatient("p1").
			WithDevice("d1").
			WithCriteriaVersion("1.1").
			WithDetermination(DeterminationPartialResponse).
			Build()
		require.NoError(t, err)

		assert.Equal(t, constvars.ObservationCategoryImaging, observation.Category[0].Coding[0].Code)
		require.NotNil(t, observation.Method)
		assert.Equal(t, constvars.SystemNCIThesaurus, observation.Method.Coding[0].System)
		assert.Equal(t, constvars.NciRecist11, observation.Method.Coding[0].Code)
		assert.Equal(t, "1.1", observation.Method.Coding[0].Version)
	})

	t.Run("PCWG3 criteria carry the PCWG3 method", func(t *testing.T) {
		observation, err := NewRadiographicProgressionObservationBuilder(testAIConfig(), CriteriaPcwg3).
			WithPatient("p1").
			WithDevice("d1").
			WithDetermination(DeterminationProgressiveDisease).
			Build()
		require.NoError(t, err)
		require.NotNil(t, observation.Method)
		assert.Equal(t, constvars.NciPcwg3, observation.Method.Coding[0].Code)
	})

	t.Run("Observed criteria use the exam category and no method", func(t *testing.T) {
		observation, err := NewRadiographicProgressionObservationBuilder(testAIConfig(), CriteriaObserved).
			WithPatient("p1").
			WithDevice("d1").
			WithDetermination(DeterminationProgressiveDisease).
			Build()
		require.NoError(t, err)
		assert.Equal(t, constvars.ObservationCategoryExam, observation.Category[0].Coding[0].Code)
		assert.Nil(t, observation.Method)
	})

	t.Run("Unknown criteria type is rejected", func(t *testing.T) {
		_, err := NewRadiographicProgressionObservationBuilder(testAIConfig(), CriteriaType("WHO")).
			WithPatient("p1").
			WithDevice("d1").
			WithDetermination(DeterminationProgressiveDisease).
			Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "WHO")
	})

	t.Run("Lesion findings become components", func(t *testing.T) {
		observation, err := NewRadiographicProgressionObservationBuilder(testAIConfig(), CriteriaRecist11).
			WithPatient("p1").
			WithDevice("d1").
			WithDetermination(DeterminationProgressiveDisease).
			WithNewLesions(true).
			WithTargetLesionResponse("PD").
			WithNonTargetLesionResponse("SD").
			AddLesionDescription("New sclerotic lesion, T4 vertebra.").
			AddLesionDescription("Enlarging pelvic node.").
			AddLesionDescription("").
			Build()
		require.NoError(t, err)

		newLesions := componentByCode(t, observation, constvars.ComponentCodeNewLesions)
		require.NotNil(t, newLesions)
		assert.True(t, *newLesions.ValueBoolean)

		target := componentByCode(t, observation, constvars.ComponentCodeTargetResponse)
		require.NotNil(t, target)
		assert.Equal(t, "PD", target.ValueString)

		nonTarget := componentByCode(t, observation, constvars.ComponentCodeNonTargetResponse)
		require.NotNil(t, nonTarget)
		assert.Equal(t, "SD", nonTarget.ValueString)

		var descriptions []string
		for _, component := range observation.Component {
			if component.Code.Coding[0].Code == constvars.ComponentCodeLesionDescription {
				descriptions = append(descriptions, component.ValueString)
			}
		}
		assert.Equal(t, []string{"New sclerotic lesion, T4 vertebra.", "Enlarging pelvic node."}, descriptions)
	})

	t.Run("BuildCondition derives a radiographic progression condition on PD", func(t *testing.T) {
		builder := NewRadiographicProgressionObservationBuilder(testAIConfig(), CriteriaRecist11).
			WithPatient("p1").
			WithDevice("d1").
			WithDetermination(DeterminationProgressiveDisease)

		observation, err := builder.Build()
		require.NoError(t, err)

		condition, err := builder.BuildCondition(observation)
		require.NoError(t, err)
		assert.Equal(t, "Radiographically progressive prostate cancer", condition.Code.Text)
		assert.Equal(t, "Observation/"+observation.ID, condition.Evidence[0].Detail[0].Reference)
	})

	t.Run("BuildCondition refuses stable disease", func(t *testing.T) {
		builder := NewRadiographicProgressionObservationBuilder(testAIConfig(), CriteriaRecist11).
			WithPatient("p1").
			WithDevice("d1").
			WithDetermination(DeterminationStableDisease)

		observation, err := builder.Build()
		require.NoError(t, err)

		_, err = builder.BuildCondition(observation)
		require.Error(t, err)
	})
}
