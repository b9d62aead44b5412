package handler

import (
	"strings"

	"github.com/docbot/web/internal/model"
	"github.com/docbot/web/internal/service"
	"github.com/docbot/web/internal/session"
	"github.com/docbot/web/internal/view"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const msgMedicalDone = "Medical information retrieved successfully!"

type MedicalInfoHandler struct {
	svc *service.MedicalInfoService
	log *zap.Logger
}

func NewMedicalInfoHandler(svc *service.MedicalInfoService, log *zap.Logger) *MedicalInfoHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &MedicalInfoHandler{svc: svc, log: log}
}

// Page is a fresh load: search term, result and history start empty.
func (h *MedicalInfoHandler) Page(c *gin.Context) {
	v := GetVisitor(c)
	v.ResetPage(session.PageMedical)
	h.render(c, v, v.Medical())
}

// Search handles the manual box, preset buttons and history buttons alike.
func (h *MedicalInfoHandler) Search(c *gin.Context) {
	v := GetVisitor(c)

	var form model.MedicalSearchForm
	_ = c.ShouldBind(&form)

	if !v.TryBegin(session.PageMedical) {
		v.Notify(model.ErrorNotice(service.ErrBusy.Error()))
		h.render(c, v, v.Medical())
		return
	}

	ctx := c.Request.Context()
	gen := v.Generation(session.PageMedical)
	state := v.Medical()
	info, err := h.svc.Lookup(ctx, form.Condition)
	v.End(session.PageMedical)

	if ctx.Err() != nil || !v.Current(session.PageMedical, gen) {
		h.log.Info("discarding condition lookup for an unmounted page", zap.String("visitor", v.ID))
		return
	}

	if err != nil {
		v.Notify(model.ErrorNotice(noticeMessage(err)))
		state.Term = form.Condition
		h.render(c, v, state)
		return
	}

	state.History.Record(form.Condition)
	v.SetMedicalResult(strings.TrimSpace(form.Condition), info)
	v.Notify(model.SuccessNotice(msgMedicalDone))
	h.render(c, v, v.Medical())
}

func (h *MedicalInfoHandler) render(c *gin.Context, v *session.Visitor, state session.MedicalState) {
	renderPage(c, v, session.PageMedical, "medical.html", "Medical Info", view.NewMedicalData(state))
}
