package inference

import (
	"testing"
	"thirdopinion-service/internal/pkg/constvars"
	"thirdopinion-service/internal/pkg/fhir_dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func childExtension(t *testing.T, parent fhir_dto.Extension, url string) *fhir_dto.Extension {
	t.Helper()
	for i := range parent.Extension {
		if parent.Extension[i].Url == url {
			return &parent.Extension[i]
		}
	}
	return nil
}

func TestFacts(t *testing.T) {
	t.Run("Supporting fact is serialized into an extension sub-tree", func(t *testing.T) {
		observation, err := NewAdtStatusObservationBuilder(testAIConfig()).
			WithPatient("p1").
			WithDevice("d1").
			WithStatus(true).
			AddSupportingFact(Fact{
				DocumentReference: "doc-1",
				Type:              "medication-order",
				Text:              "Leuprolide depot ordered in March.",
				SourceReferences:  []string{"MedicationRequest/mr-1"},
				TimeReference:     "2024-03-01T00:00:00+00:00",
				Relevance:         "Directly establishes ADT initiation.",
			}).
			Build()
		require.NoError(t, err)

		require.Len(t, observation.Extension, 1)
		fact := observation.Extension[0]
		assert.Equal(t, constvars.ExtensionSupportingFactURL, fact.Url)

		id := childExtension(t, fact, "id")
		require.NotNil(t, id)
		_, err = uuid.Parse(id.ValueString)
		assert.NoError(t, err, "omitted fact id should default to a generated uuid")

		document := childExtension(t, fact, "documentReference")
		require.NotNil(t, document)
		assert.Equal(t, "DocumentReference/doc-1", document.ValueReference.Reference)

		assert.Equal(t, "medication-order", childExtension(t, fact, "type").ValueCode)
		assert.Equal(t, "Leuprolide depot ordered in March.", childExtension(t, fact, "text").ValueString)
		assert.Equal(t, "2024-03-01T00:00:00+00:00", childExtension(t, fact, "timeReference").ValueDateTime)
		assert.Equal(t, "Directly establishes ADT initiation.", childExtension(t, fact, "relevance").ValueString)

		source := childExtension(t, fact, constvars.ExtensionSourceReferenceURL)
		require.NotNil(t, source)
		assert.Equal(t, "MedicationRequest/mr-1", source.ValueReference.Reference)
	})

	t.Run("Conflicting facts use their own extension url", func(t *testing.T) {
		observation, err := NewAdtStatusObservationBuilder(testAIConfig()).
			WithPatient("p1").
			WithDevice("d1").
			WithStatus(true).
			AddConflictingFact(Fact{DocumentReference: "doc-2", Text: "No ADT mentioned in latest visit."}).
			Build()
		require.NoError(t, err)
		require.Len(t, observation.Extension, 1)
		assert.Equal(t, constvars.ExtensionConflictingFactURL, observation.Extension[0].Url)
	})

	t.Run("Empty attributes are omitted from the sub-tree", func(t *testing.T) {
		observation, err := NewAdtStatusObservationBuilder(testAIConfig()).
			WithPatient("p1").
			WithDevice("d1").
			WithStatus(true).
			AddSupportingFact(Fact{DocumentReference: "doc-3"}).
			Build()
		require.NoError(t, err)

		fact := observation.Extension[0]
		assert.Nil(t, childExtension(t, fact, "type"))
		assert.Nil(t, childExtension(t, fact, "text"))
		assert.Nil(t, childExtension(t, fact, "relevance"))
		assert.NotNil(t, childExtension(t, fact, "id"))
		assert.NotNil(t, childExtension(t, fact, "documentReference"))
	})

	t.Run("Fact without a document reference is rejected", func(t *testing.T) {
		_, err := NewAdtStatusObservationBuilder(testAIConfig()).
			WithPatient("p1").
			WithDevice("d1").
			WithStatus(true).
			AddSupportingFact(Fact{Text: "orphan fact"}).
			Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "documentreference")
	})

	t.Run("Explicit fact id must be a uuid", func(t *testing.T) {
		_, err := NewAdtStatusObservationBuilder(testAIConfig()).
			WithPatient("p1").
			WithDevice("d1").
			WithStatus(true).
			AddSupportingFact(Fact{ID: "not-a-uuid", DocumentReference: "doc-4"}).
			Build()
		require.Error(t, err)
	})

	t.Run("Explicit uuid is preserved", func(t *testing.T) {
		factID := uuid.NewString()
		observation, err := NewAdtStatusObservationBuilder(testAIConfig()).
			WithPatient("p1").
			WithDevice("d1").
			WithStatus(true).
			AddSupportingFact(Fact{ID: factID, DocumentReference: "doc-5"}).
			Build()
		require.NoError(t, err)
		assert.Equal(t, factID, childExtension(t, observation.Extension[0], "id").ValueString)
	})
}
