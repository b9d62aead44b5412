package service

import (
	"context"
	"strings"
	"sync"

	"github.com/docbot/web/internal/markdown"
	"github.com/docbot/web/internal/model"
	"go.uber.org/zap"
)

const (
	msgEmptyCondition = "Please enter a medical condition to search"

	// SearchHistoryLimit caps the recent-searches list.
	SearchHistoryLimit = 5
)

// PresetConditions are offered as one-click searches.
var PresetConditions = []model.PresetCondition{
	{Name: "Common Cold", Category: "Respiratory"},
	{Name: "Flu (Influenza)", Category: "Respiratory"},
	{Name: "Hypertension", Category: "Cardiovascular"},
	{Name: "Diabetes Type 2", Category: "Endocrine"},
	{Name: "Migraine", Category: "Neurological"},
	{Name: "Asthma", Category: "Respiratory"},
	{Name: "Depression", Category: "Mental Health"},
	{Name: "Anxiety", Category: "Mental Health"},
	{Name: "Arthritis", Category: "Musculoskeletal"},
	{Name: "Allergies", Category: "Immune System"},
	{Name: "Gastroesophageal Reflux Disease (GERD)", Category: "Digestive"},
	{Name: "Insomnia", Category: "Sleep Disorders"},
}

// ConditionFetcher is the gateway operation the medical info page needs.
type ConditionFetcher interface {
	FetchConditionInfo(ctx context.Context, conditionName string) (*model.ConditionInfo, error)
}

// SearchHistory keeps the most recent distinct search terms, newest first.
// It is a UI convenience, not a cache.
type SearchHistory struct {
	mu    sync.Mutex
	terms []string
	limit int
}

func NewSearchHistory(limit int) *SearchHistory {
	if limit <= 0 {
		limit = SearchHistoryLimit
	}
	return &SearchHistory{limit: limit}
}

// Record moves term to the front, dropping an older copy and anything past
// the limit.
func (h *SearchHistory) Record(term string) {
	term = strings.TrimSpace(term)
	if term == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	next := make([]string, 0, h.limit)
	next = append(next, term)
	for _, t := range h.terms {
		if len(next) == h.limit {
			break
		}
		if t != term {
			next = append(next, t)
		}
	}
	h.terms = next
}

func (h *SearchHistory) Terms() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.terms))
	copy(out, h.terms)
	return out
}

type MedicalInfoService struct {
	fetcher ConditionFetcher
	log     *zap.Logger
}

func NewMedicalInfoService(fetcher ConditionFetcher, log *zap.Logger) *MedicalInfoService {
	if log == nil {
		log = zap.NewNop()
	}
	return &MedicalInfoService{fetcher: fetcher, log: log.Named("medical_info")}
}

// Lookup fetches a condition and normalizes its markdown. Every call goes to
// the backend.
func (s *MedicalInfoService) Lookup(ctx context.Context, term string) (*model.ConditionInfo, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, inputError(msgEmptyCondition)
	}

	info, err := s.fetcher.FetchConditionInfo(ctx, term)
	if err != nil {
		s.log.Warn("condition lookup failed", zap.String("condition", term), zap.Error(err))
		return nil, err
	}

	out := *info
	out.Information = markdown.Normalize(info.Information)
	return &out, nil
}

// Search is Lookup plus recording the term in history on success.
func (s *MedicalInfoService) Search(ctx context.Context, history *SearchHistory, term string) (*model.ConditionInfo, error) {
	info, err := s.Lookup(ctx, term)
	if err != nil {
		return nil, err
	}
	history.Record(term)
	return info, nil
}
