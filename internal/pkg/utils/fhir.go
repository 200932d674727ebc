package utils

import (
	"strings"
	"thirdopinion-service/internal/pkg/fhir_dto"
)

// EnsureReferencePrefix normalizes a bare resource id into a typed literal
// reference, e.g. "123" becomes "Patient/123". Already-prefixed references
// pass through unchanged.
func EnsureReferencePrefix(resourceType, id string) string {
	if id == "" {
		return ""
	}
	if strings.HasPrefix(id, resourceType+"/") {
		return id
	}
	return resourceType + "/" + id
}

func HasResourcePrefix(reference, resourceType string) bool {
	return strings.HasPrefix(reference, resourceType+"/")
}

// DedupeReferences drops entries whose literal reference string was already
// seen, keeping the display text of the first occurrence.
func DedupeReferences(references []fhir_dto.Reference) []fhir_dto.Reference {
	seen := make(map[string]bool, len(references))
	deduped := make([]fhir_dto.Reference, 0, len(references))
	for _, reference := range references {
		if reference.Reference == "" || seen[reference.Reference] {
			continue
		}
		seen[reference.Reference] = true
		deduped = append(deduped, reference)
	}
	return deduped
}
