package main

import (
	"context"
	"fmt"
	"log"
	"thirdopinion-service/internal/app/config"
	"thirdopinion-service/internal/app/drivers/logger"
	"thirdopinion-service/internal/app/services/inference"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	enricher := logger.NewAWSContextEnricher(ctx)
	zapLogger = zapLogger.With(enricher.Fields()...)
	zapLogger.Info("starting inference examples")

	logrusLogger := logger.NewLogrusLogger(internalConfig)
	logrusLogger.AddHook(enricher)
	logrusLogger.Debug("execution context probed")

	aiConfig := &internalConfig.AIInference

	adtObservation, err := inference.NewAdtStatusObservationBuilder(aiConfig).
		WithPatient("example-patient").
		WithDevice("Device/psa-inference-engine").
		WithStatus(true).
		WithTreatmentStartDate(time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)).
		WithConfidence(0.94).
		AddEvidence("MedicationRequest/leuprolide-order", "Leuprolide depot order").
		AddNote("ADT initiation confirmed from medication history.").
		Build()
	if err != nil {
		log.Fatalf("building ADT status observation: %v", err)
	}
	printResource(zapLogger, "ADT status", adtObservation)

	psaBuilder := inference.NewPsaProgressionObservationBuilder(aiConfig).
		WithPatient("example-patient").
		WithDevice("Device/psa-inference-engine").
		WithCriteria("PCWG3", "2016").
		WithCurrentPSA(3.0).
		WithNadirPSA(2.0).
		WithDetermination(inference.DeterminationProgressiveDisease).
		WithConfidence(0.88).
		AddSupportingFact(inference.Fact{
			DocumentReference: "lab-report-2024-06",
			Type:              "lab-result",
			Text:              "PSA rose from nadir 2.0 ng/mL to 3.0 ng/mL.",
		})
	psaObservation, err := psaBuilder.Build()
	if err != nil {
		log.Fatalf("building PSA progression observation: %v", err)
	}
	printResource(zapLogger, "PSA progression", psaObservation)

	psaCondition, err := psaBuilder.BuildCondition(psaObservation)
	if err != nil {
		log.Fatalf("deriving PSA progression condition: %v", err)
	}
	printResource(zapLogger, "PSA progression condition", psaCondition)

	radiographicObservation, err := inference.NewRadiographicProgressionObservationBuilder(aiConfig, inference.CriteriaRecist11).
		WithPatient("example-patient").
		WithDevice("Device/imaging-inference-engine").
		WithCriteriaVersion("1.1").
		WithDetermination(inference.DeterminationStableDisease).
		WithTargetLesionResponse("SD").
		AddLesionDescription("Stable sclerotic lesion, left iliac wing.").
		WithConfidence(0.81).
		AddEvidence("ImagingStudy/ct-2024-06", "CT chest/abdomen/pelvis").
		Build()
	if err != nil {
		log.Fatalf("building radiographic progression observation: %v", err)
	}
	printResource(zapLogger, "radiographic progression", radiographicObservation)

	castrationObservation, err := inference.NewCastrationSensitivityObservationBuilder(aiConfig).
		WithPatient("example-patient").
		WithDevice("Device/chart-review-engine").
		WithFocusCondition("prostate-cancer-condition").
		WithStatus(inference.CastrationSensitive).
		WithConfidence(0.9).
		Build()
	if err != nil {
		log.Fatalf("building castration sensitivity observation: %v", err)
	}
	printResource(zapLogger, "castration sensitivity", castrationObservation)
}

func printResource(zapLogger *zap.Logger, name string, resource interface{}) {
	resourceJSON, err := json.MarshalIndent(resource, "", "  ")
	if err != nil {
		log.Fatalf("marshaling %s resource: %v", name, err)
	}
	zapLogger.Info("assembled resource", zap.String("resource", name))
	fmt.Println(string(resourceJSON))
}
