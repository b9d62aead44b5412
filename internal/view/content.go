package view

import (
	"github.com/docbot/web/internal/model"
	"github.com/docbot/web/internal/service"
	"github.com/docbot/web/internal/session"
)

type Feature struct {
	Title       string
	Description string
	Link        string
}

type Stat struct {
	Number string
	Label  string
}

// HomeData / AboutData are static; neither page talks to the backend.
type HomeData struct {
	Features []Feature
	Stats    []Stat
}

type AboutData struct {
	Features []Feature
	Stats    []Stat
}

var Home = HomeData{
	Features: []Feature{
		{Title: "Symptom Analysis", Description: "Describe how you feel and get an AI-assisted overview of possible causes and next steps.", Link: "/symptoms"},
		{Title: "AI Chat Assistant", Description: "Ask health questions in plain language and get answers grounded in medical references.", Link: "/chat"},
		{Title: "Medical Information", Description: "Look up conditions, their symptoms and common treatments.", Link: "/medical-info"},
	},
	Stats: []Stat{
		{Number: "10K+", Label: "Users Helped"},
		{Number: "24/7", Label: "Available"},
		{Number: "100%", Label: "Secure"},
		{Number: "4.9", Label: "Rating"},
	},
}

var About = AboutData{
	Features: []Feature{
		{Title: "AI-Powered Analysis", Description: "Language models and a medical knowledge base work together to interpret symptoms."},
		{Title: "Privacy & Security", Description: "Nothing you type is stored. Page state lives only in memory and expires with your session."},
		{Title: "24/7 Availability", Description: "Medical information and assistance whenever you need it."},
		{Title: "Expert-Backed", Description: "Answers draw on curated medical literature."},
	},
	Stats: []Stat{
		{Number: "10,000+", Label: "Users Served"},
		{Number: "50,000+", Label: "Symptoms Analyzed"},
		{Number: "4.9/5", Label: "User Rating"},
		{Number: "99.9%", Label: "Uptime"},
	},
}

type SymptomsData struct {
	Form   model.SymptomForm
	Result *model.SymptomResult
}

func NewSymptomsData(s session.SymptomState) SymptomsData {
	return SymptomsData{Form: s.Form, Result: s.Result}
}

type ChatData struct {
	ConversationID string
	Messages       []model.ChatMessage
	QuickQuestions []string
	Draft          string
}

func NewChatData(conv *service.Conversation, draft string) ChatData {
	return ChatData{
		ConversationID: conv.ID,
		Messages:       conv.Transcript.Messages(),
		QuickQuestions: service.QuickQuestions,
		Draft:          draft,
	}
}

type MedicalData struct {
	Term     string
	Info     *model.ConditionInfo
	History  []string
	Presets  []model.PresetCondition
	Searched bool
}

func NewMedicalData(s session.MedicalState) MedicalData {
	return MedicalData{
		Term:     s.Term,
		Info:     s.Info,
		History:  s.History.Terms(),
		Presets:  service.PresetConditions,
		Searched: s.Info != nil,
	}
}
