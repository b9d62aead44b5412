package view

import (
	"bytes"
	"io/fs"
	"testing"

	"github.com/docbot/web/internal/model"
	"github.com/docbot/web/internal/service"
	"github.com/docbot/web/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavMarksActive(t *testing.T) {
	items := Nav("/chat")
	require.Len(t, items, 5)

	var active []string
	for _, item := range items {
		if item.Active {
			active = append(active, item.Path)
		}
	}
	assert.Equal(t, []string{"/chat"}, active)
	assert.False(t, Nav("/chat")[0].Active)
	assert.False(t, navItems[2].Active, "package items are not mutated")
}

func render(t *testing.T, name string, page Page) string {
	t.Helper()
	tmpl, err := Load()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, name, page))
	return buf.String()
}

func TestRenderStaticPages(t *testing.T) {
	out := render(t, "home.html", NewPage("/", "Home", nil, Home))
	assert.Contains(t, out, "10K+")
	assert.Contains(t, out, `data-scroll-threshold="50"`)
	assert.Contains(t, out, `class="nav-link active">Home`)

	out = render(t, "about.html", NewPage("/about", "About", nil, About))
	assert.Contains(t, out, "99.9%")
	assert.Contains(t, out, "Expert-Backed")
}

func TestRenderNotices(t *testing.T) {
	out := render(t, "home.html", NewPage("/", "Home", []model.Notice{model.ErrorNotice("Unable to connect to server")}, Home))
	assert.Contains(t, out, `class="toast toast-error"`)
	assert.Contains(t, out, "Unable to connect to server")
	assert.Contains(t, out, `data-duration="4000"`)
}

func TestRenderSymptomResult(t *testing.T) {
	data := NewSymptomsData(session.SymptomState{
		Form: model.SymptomForm{Symptoms: "headache", Gender: "female"},
		Result: &model.SymptomResult{
			UrgencyLevel:    "high",
			AnalysisSummary: "**Likely** tension headache",
			PossibleConditions: []model.PossibleCondition{
				{Name: "Migraine", Probability: "Moderate"},
			},
			Disclaimer: "Not medical advice",
		},
	})
	out := render(t, "symptoms.html", NewPage("/symptoms", "Symptom Analyzer", nil, data))

	assert.Contains(t, out, "#f97316")
	assert.Contains(t, out, "HIGH URGENCY")
	assert.Contains(t, out, `<strong class="md-strong">Likely</strong>`)
	assert.Contains(t, out, `value="female" selected`)
	assert.Contains(t, out, "Not medical advice")
}

func TestRenderChatEscapesUserContent(t *testing.T) {
	svc := service.NewChatService(nil, nil)
	conv := svc.NewConversation()
	_, err := svc.Begin(conv, "<script>alert(1)</script>")
	require.NoError(t, err)

	out := render(t, "chat.html", NewPage("/chat", "AI Chat", nil, NewChatData(conv, "")))
	assert.Contains(t, out, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.Contains(t, out, `class="md-h1"`)
	assert.Contains(t, out, "What are signs of dehydration?")
	assert.Contains(t, out, "/chat/ws")
}

func TestRenderChatFallbackKeepsMessageField(t *testing.T) {
	conv := service.NewChatService(nil, nil).NewConversation()
	out := render(t, "chat.html", NewPage("/chat", "AI Chat", nil, NewChatData(conv, "")))

	// 폼으로 보낼 때 입력칸을 disabled로 만들면 message가 빠진다
	assert.Contains(t, out, "input.readOnly = true;")
	assert.NotContains(t, out, "if (!ready) { setBusy(true)")
}

func TestRenderMedical(t *testing.T) {
	history := service.NewSearchHistory(service.SearchHistoryLimit)
	history.Record("Asthma")
	data := NewMedicalData(session.MedicalState{
		Term:    "Asthma",
		Info:    &model.ConditionInfo{Condition: "Asthma", Information: "## Overview\n\n- wheezing"},
		History: history,
	})
	out := render(t, "medical.html", NewPage("/medical-info", "Medical Info", nil, data))

	assert.Contains(t, out, `class="history-item">Asthma`)
	assert.Contains(t, out, "Gastroesophageal Reflux Disease (GERD)")
	assert.Contains(t, out, `<h2 class="md-h2">Overview</h2>`)
	assert.NotContains(t, out, "/chat/ws")
}

func TestStaticAssets(t *testing.T) {
	css, err := fs.ReadFile(Static(), "app.css")
	require.NoError(t, err)
	assert.Contains(t, string(css), ".navbar.scrolled")
}
