package handler

import (
	"github.com/docbot/web/internal/model"
	"github.com/docbot/web/internal/service"
	"github.com/docbot/web/internal/session"
	"github.com/docbot/web/internal/view"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const msgAnalysisDone = "Analysis completed successfully!"

type SymptomHandler struct {
	svc *service.SymptomService
	log *zap.Logger
}

func NewSymptomHandler(svc *service.SymptomService, log *zap.Logger) *SymptomHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &SymptomHandler{svc: svc, log: log}
}

// Page is a fresh load: the form and any previous result are cleared.
func (h *SymptomHandler) Page(c *gin.Context) {
	v := GetVisitor(c)
	v.ResetPage(session.PageSymptoms)
	h.render(c, v, v.Symptoms())
}

func (h *SymptomHandler) Analyze(c *gin.Context) {
	v := GetVisitor(c)

	var form model.SymptomForm
	_ = c.ShouldBind(&form)

	state := v.Symptoms()
	state.Form = form

	if !v.TryBegin(session.PageSymptoms) {
		v.Notify(model.ErrorNotice(service.ErrBusy.Error()))
		h.render(c, v, state)
		return
	}

	ctx := c.Request.Context()
	gen := v.Generation(session.PageSymptoms)
	result, err := h.svc.Analyze(ctx, form)
	v.End(session.PageSymptoms)

	// 화면을 떠났으면 결과를 버린다
	if ctx.Err() != nil || !v.Current(session.PageSymptoms, gen) {
		h.log.Info("discarding symptom analysis for an unmounted page", zap.String("visitor", v.ID))
		return
	}

	if err != nil {
		v.Notify(model.ErrorNotice(noticeMessage(err)))
	} else {
		state.Result = result
		v.Notify(model.SuccessNotice(msgAnalysisDone))
	}
	v.SetSymptoms(state)
	h.render(c, v, state)
}

func (h *SymptomHandler) render(c *gin.Context, v *session.Visitor, state session.SymptomState) {
	renderPage(c, v, session.PageSymptoms, "symptoms.html", "Symptom Analyzer", view.NewSymptomsData(state))
}
