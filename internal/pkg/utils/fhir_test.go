package utils

import (
	"testing"
	"thirdopinion-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/assert"
)

func TestEnsureReferencePrefix(t *testing.T) {
	t.Run("Bare id gets the type prefix", func(t *testing.T) {
		assert.Equal(t, "Patient/123", EnsureReferencePrefix("Patient", "123"))
	})

	t.Run("Prefixing is idempotent", func(t *testing.T) {
		assert.Equal(t, "Patient/123", EnsureReferencePrefix("Patient", "Patient/123"))
	})

	t.Run("Empty id stays empty", func(t *testing.T) {
		assert.Equal(t, "", EnsureReferencePrefix("Patient", ""))
	})
}

func TestHasResourcePrefix(t *testing.T) {
	assert.True(t, HasResourcePrefix("Condition/c1", "Condition"))
	assert.False(t, HasResourcePrefix("Observation/o1", "Condition"))
	assert.False(t, HasResourcePrefix("c1", "Condition"))
}

func TestDedupeReferences(t *testing.T) {
	t.Run("Duplicates are dropped keeping the first display", func(t *testing.T) {
		deduped := DedupeReferences([]fhir_dto.Reference{
			{Reference: "DocumentReference/a", Display: "first"},
			{Reference: "DocumentReference/b", Display: "other"},
			{Reference: "DocumentReference/a", Display: "second"},
		})
		assert.Len(t, deduped, 2)
		assert.Equal(t, "first", deduped[0].Display)
	})

	t.Run("Empty references are dropped", func(t *testing.T) {
		deduped := DedupeReferences([]fhir_dto.Reference{
			{Reference: "", Display: "dangling"},
			{Reference: "DocumentReference/a"},
		})
		assert.Len(t, deduped, 1)
		assert.Equal(t, "DocumentReference/a", deduped[0].Reference)
	})

	t.Run("Nil input yields an empty slice", func(t *testing.T) {
		assert.Empty(t, DedupeReferences(nil))
	})
}
