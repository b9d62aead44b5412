package session

import (
	"sync"

	"github.com/docbot/web/internal/model"
	"github.com/docbot/web/internal/service"
)

// Page identifies one view whose state is private to it.
type Page string

const (
	PageSymptoms Page = "symptoms"
	PageChat     Page = "chat"
	PageMedical  Page = "medical-info"
)

// SymptomState is the analyzer page's view state.
type SymptomState struct {
	Form   model.SymptomForm
	Result *model.SymptomResult
}

// MedicalState is the medical info page's view state.
type MedicalState struct {
	Term    string
	Info    *model.ConditionInfo
	History *service.SearchHistory
}

// Visitor holds one browser's in-memory view state. Nothing here is
// persisted; it disappears when the session expires.
type Visitor struct {
	ID string

	mu       sync.Mutex
	notices  []model.Notice
	inFlight map[Page]bool
	gen      map[Page]int
	symptoms SymptomState
	chat     *service.Conversation
	medical  MedicalState
}

func newVisitor(id string) *Visitor {
	return &Visitor{
		ID:       id,
		inFlight: make(map[Page]bool),
		gen:      make(map[Page]int),
		medical:  MedicalState{History: service.NewSearchHistory(service.SearchHistoryLimit)},
	}
}

// TryBegin marks page as loading. It returns false when a call for the
// same page is already outstanding.
func (v *Visitor) TryBegin(page Page) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.inFlight[page] {
		return false
	}
	v.inFlight[page] = true
	return true
}

func (v *Visitor) End(page Page) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.inFlight, page)
}

func (v *Visitor) Loading(page Page) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.inFlight[page]
}

// Generation identifies the current load of page. It changes on every
// ResetPage, so a result computed for an older load can be recognised.
func (v *Visitor) Generation(page Page) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.gen[page]
}

// Current reports whether gen is still the live load of page.
func (v *Visitor) Current(page Page, gen int) bool {
	return v.Generation(page) == gen
}

// Notify queues a toast for the next render.
func (v *Visitor) Notify(n model.Notice) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.notices = append(v.notices, n)
}

// TakeNotices drains the toast queue.
func (v *Visitor) TakeNotices() []model.Notice {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := v.notices
	v.notices = nil
	return out
}

func (v *Visitor) Symptoms() SymptomState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.symptoms
}

func (v *Visitor) SetSymptoms(s SymptomState) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.symptoms = s
}

// Conversation returns the current chat, creating one with newConv if the
// page was never loaded.
func (v *Visitor) Conversation(newConv func() *service.Conversation) *service.Conversation {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.chat == nil {
		v.chat = newConv()
	}
	return v.chat
}

// ResetConversation replaces the chat, as a fresh page load does.
func (v *Visitor) ResetConversation(conv *service.Conversation) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.chat = conv
}

func (v *Visitor) Medical() MedicalState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.medical
}

// SetMedicalResult stores the latest lookup; the history is kept.
func (v *Visitor) SetMedicalResult(term string, info *model.ConditionInfo) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.medical.Term = term
	v.medical.Info = info
}

// ResetPage clears a page's state the way a fresh load would.
func (v *Visitor) ResetPage(page Page) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.gen[page]++
	switch page {
	case PageSymptoms:
		v.symptoms = SymptomState{}
	case PageChat:
		v.chat = nil
	case PageMedical:
		v.medical = MedicalState{History: service.NewSearchHistory(service.SearchHistoryLimit)}
	}
}
