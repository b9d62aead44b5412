package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/docbot/web/internal/model"
	"go.uber.org/zap"
)

const (
	msgMissingSymptoms = "Please describe your symptoms"
	msgInvalidAge      = "Please enter a valid age"
	msgInvalidGender   = "Please select a valid gender"
)

// SymptomAnalyzer is the gateway operation the analyzer page needs.
type SymptomAnalyzer interface {
	AnalyzeSymptoms(ctx context.Context, req model.SymptomRequest) (*model.SymptomResult, error)
}

type SymptomService struct {
	analyzer SymptomAnalyzer
	log      *zap.Logger
}

func NewSymptomService(analyzer SymptomAnalyzer, log *zap.Logger) *SymptomService {
	if log == nil {
		log = zap.NewNop()
	}
	return &SymptomService{analyzer: analyzer, log: log.Named("symptoms")}
}

// BuildRequest turns the raw form into a wire request. Blank optional fields
// stay unset so they are omitted from the JSON body.
func (s *SymptomService) BuildRequest(form model.SymptomForm) (model.SymptomRequest, error) {
	symptoms := strings.TrimSpace(form.Symptoms)
	if symptoms == "" {
		return model.SymptomRequest{}, inputError(msgMissingSymptoms)
	}

	req := model.SymptomRequest{
		Symptoms:       symptoms,
		MedicalHistory: strings.TrimSpace(form.MedicalHistory),
	}

	if ageText := strings.TrimSpace(form.Age); ageText != "" {
		age, err := strconv.Atoi(ageText)
		if err != nil || age <= 0 {
			return model.SymptomRequest{}, inputError(msgInvalidAge)
		}
		req.Age = &age
	}

	switch gender := strings.ToLower(strings.TrimSpace(form.Gender)); gender {
	case "":
	case model.GenderMale, model.GenderFemale, model.GenderOther:
		req.Gender = gender
	default:
		return model.SymptomRequest{}, inputError(msgInvalidGender)
	}

	return req, nil
}

// Analyze validates the form and issues exactly one gateway call when it is
// valid; invalid input returns an *InputError without calling the backend.
func (s *SymptomService) Analyze(ctx context.Context, form model.SymptomForm) (*model.SymptomResult, error) {
	req, err := s.BuildRequest(form)
	if err != nil {
		return nil, err
	}
	return s.AnalyzeRequest(ctx, req)
}

// ValidateRequest applies the form rules to a request that arrived as JSON.
func (s *SymptomService) ValidateRequest(req model.SymptomRequest) (model.SymptomRequest, error) {
	form := model.SymptomForm{
		Symptoms:       req.Symptoms,
		Gender:         req.Gender,
		MedicalHistory: req.MedicalHistory,
	}
	if req.Age != nil {
		form.Age = strconv.Itoa(*req.Age)
	}
	return s.BuildRequest(form)
}

// AnalyzeRequest forwards an already-built request.
func (s *SymptomService) AnalyzeRequest(ctx context.Context, req model.SymptomRequest) (*model.SymptomResult, error) {
	result, err := s.analyzer.AnalyzeSymptoms(ctx, req)
	if err != nil {
		s.log.Warn("symptom analysis failed", zap.Error(err))
		return nil, err
	}
	s.log.Info("symptom analysis completed",
		zap.String("urgency", result.UrgencyLevel),
		zap.Int("conditions", len(result.PossibleConditions)),
	)
	return result, nil
}
