package utils

import (
	"thirdopinion-service/internal/pkg/constvars"
	"time"
)

func FormatFHIRDateTime(t time.Time) string {
	return t.Format(constvars.FhirDateTimeLayout)
}

func FormatFHIRDate(t time.Time) string {
	return t.Format(constvars.FhirDateLayout)
}

func ParseFHIRDate(value string) (time.Time, error) {
	return time.Parse(constvars.FhirDateLayout, value)
}
