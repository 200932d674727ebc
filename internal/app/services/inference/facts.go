package inference

import (
	"thirdopinion-service/internal/pkg/constvars"
	"thirdopinion-service/internal/pkg/exceptions"
	"thirdopinion-service/internal/pkg/fhir_dto"
	"thirdopinion-service/internal/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var factValidator = validator.New()

// Fact is a structured supporting or conflicting statement extracted from a
// source document. Only the document reference is mandatory; everything else
// is attached when present.
type Fact struct {
	ID                string   `validate:"omitempty,uuid"`
	DocumentReference string   `validate:"required"`
	Type              string   `validate:"omitempty,max=64"`
	Text              string   `validate:"omitempty,max=4096"`
	SourceReferences  []string `validate:"omitempty,dive,required"`
	TimeReference     string   `validate:"omitempty"`
	Relevance         string   `validate:"omitempty,max=1024"`
}

func prepareFact(fact Fact) (Fact, error) {
	if err := factValidator.Struct(fact); err != nil {
		return Fact{}, exceptions.ErrInvalidFactInput(err)
	}
	if fact.ID == "" {
		fact.ID = uuid.NewString()
	}
	fact.DocumentReference = utils.EnsureReferencePrefix(constvars.ResourceDocumentReference, fact.DocumentReference)
	return fact, nil
}

// factExtension serializes the fact into an extension sub-tree with one
// child extension per non-empty attribute.
func factExtension(url string, fact Fact) fhir_dto.Extension {
	extension := fhir_dto.Extension{Url: url}

	extension.Extension = append(extension.Extension, fhir_dto.Extension{
		Url:         "id",
		ValueString: fact.ID,
	})
	extension.Extension = append(extension.Extension, fhir_dto.Extension{
		Url:            "documentReference",
		ValueReference: &fhir_dto.Reference{Reference: fact.DocumentReference},
	})
	if fact.Type != "" {
		extension.Extension = append(extension.Extension, fhir_dto.Extension{
			Url:       "type",
			ValueCode: fact.Type,
		})
	}
	if fact.Text != "" {
		extension.Extension = append(extension.Extension, fhir_dto.Extension{
			Url:         "text",
			ValueString: fact.Text,
		})
	}
	for _, source := range fact.SourceReferences {
		if source == "" {
			continue
		}
		extension.Extension = append(extension.Extension, fhir_dto.Extension{
			Url:            constvars.ExtensionSourceReferenceURL,
			ValueReference: &fhir_dto.Reference{Reference: source},
		})
	}
	if fact.TimeReference != "" {
		extension.Extension = append(extension.Extension, fhir_dto.Extension{
			Url:           "timeReference",
			ValueDateTime: fact.TimeReference,
		})
	}
	if fact.Relevance != "" {
		extension.Extension = append(extension.Extension, fhir_dto.Extension{
			Url:         "relevance",
			ValueString: fact.Relevance,
		})
	}

	return extension
}
