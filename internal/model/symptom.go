package model

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

const (
	UrgencyEmergency = "emergency"
	UrgencyHigh      = "high"
	UrgencyModerate  = "moderate"
	UrgencyLow       = "low"
)

// SymptomRequest is the body of POST /analyze-symptoms. Blank optionals are
// omitted from the JSON rather than sent as null or "".
type SymptomRequest struct {
	Symptoms       string `json:"symptoms" binding:"required"`
	Age            *int   `json:"age,omitempty" binding:"omitempty,gt=0"`
	Gender         string `json:"gender,omitempty" binding:"omitempty,oneof=male female other"`
	MedicalHistory string `json:"medical_history,omitempty"`
}

type SymptomResult struct {
	UrgencyLevel             string                    `json:"urgency_level"`
	AnalysisSummary          string                    `json:"analysis_summary"`
	PossibleConditions       []PossibleCondition       `json:"possible_conditions"`
	TreatmentRecommendations []TreatmentRecommendation `json:"treatment_recommendations"`
	FollowUpQuestions        []string                  `json:"follow_up_questions"`
	MedicalEvidence          string                    `json:"medical_evidence,omitempty"`
	Disclaimer               string                    `json:"disclaimer"`
}

type PossibleCondition struct {
	Name           string   `json:"name"`
	Probability    string   `json:"probability"`
	Description    string   `json:"description"`
	CommonSymptoms []string `json:"common_symptoms"`
	ReferenceMatch string   `json:"reference_match,omitempty"`
}

type TreatmentRecommendation struct {
	Type        string `json:"type"`
	Urgency     string `json:"urgency"`
	Description string `json:"description"`
	Source      string `json:"source,omitempty"`
}

// SymptomForm is the raw analyzer form as typed by the user.
type SymptomForm struct {
	Symptoms       string `form:"symptoms"`
	Age            string `form:"age"`
	Gender         string `form:"gender"`
	MedicalHistory string `form:"medical_history"`
}
