package session

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/docbot/web/internal/model"
	"github.com/docbot/web/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCreateGet(t *testing.T) {
	s := NewStore(time.Minute)
	v := s.Create()

	got, ok := s.Get(v.ID)
	require.True(t, ok)
	assert.Same(t, v, got)
	assert.Equal(t, 1, s.Count())

	_, ok = s.Get("missing")
	assert.False(t, ok)
	_, ok = s.Get("")
	assert.False(t, ok)

	s.Delete(v.ID)
	_, ok = s.Get(v.ID)
	assert.False(t, ok)
}

func TestStoreExpires(t *testing.T) {
	s := NewStore(20 * time.Millisecond)
	v := s.Create()
	time.Sleep(40 * time.Millisecond)

	_, ok := s.Get(v.ID)
	assert.False(t, ok)
}

func TestVisitorInFlightGuard(t *testing.T) {
	v := newVisitor("v1")

	var wins int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if v.TryBegin(PageChat) {
				atomic.AddInt32(&wins, 1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, wins)
	assert.True(t, v.Loading(PageChat))
	assert.True(t, v.TryBegin(PageMedical), "pages are independent")

	v.End(PageChat)
	assert.False(t, v.Loading(PageChat))
	assert.True(t, v.TryBegin(PageChat))
}

func TestVisitorNoticesDrain(t *testing.T) {
	v := newVisitor("v1")
	v.Notify(model.ErrorNotice("a"))
	v.Notify(model.SuccessNotice("b"))

	assert.Equal(t, []model.Notice{
		{Kind: model.NoticeError, Message: "a"},
		{Kind: model.NoticeSuccess, Message: "b"},
	}, v.TakeNotices())
	assert.Empty(t, v.TakeNotices())
}

func TestVisitorResetPage(t *testing.T) {
	v := newVisitor("v1")
	chat := service.NewChatService(nil, nil)

	first := v.Conversation(chat.NewConversation)
	assert.Same(t, first, v.Conversation(chat.NewConversation))

	v.Medical().History.Record("Flu")
	v.SetMedicalResult("Flu", &model.ConditionInfo{Condition: "Flu"})
	v.SetSymptoms(SymptomState{Form: model.SymptomForm{Symptoms: "x"}})

	v.ResetPage(PageChat)
	v.ResetPage(PageMedical)
	v.ResetPage(PageSymptoms)

	assert.NotSame(t, first, v.Conversation(chat.NewConversation))
	assert.Empty(t, v.Medical().History.Terms())
	assert.Nil(t, v.Medical().Info)
	assert.Empty(t, v.Symptoms().Form.Symptoms)
}

func TestVisitorGenerationChangesOnReset(t *testing.T) {
	v := newVisitor("v1")
	gen := v.Generation(PageMedical)
	assert.True(t, v.Current(PageMedical, gen))

	v.ResetPage(PageMedical)
	assert.False(t, v.Current(PageMedical, gen))
	assert.True(t, v.Current(PageSymptoms, v.Generation(PageSymptoms)))
}

func TestTokenRoundTrip(t *testing.T) {
	signer, err := NewTokenSigner("secret", time.Hour)
	require.NoError(t, err)

	token, err := signer.Issue("visitor-1")
	require.NoError(t, err)

	id, err := signer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "visitor-1", id)
	assert.Equal(t, 3600, signer.MaxAge())
}

func TestTokenRejectsForeignAndExpired(t *testing.T) {
	signer, err := NewTokenSigner("secret", time.Hour)
	require.NoError(t, err)
	other, err := NewTokenSigner("", time.Hour)
	require.NoError(t, err)

	token, err := other.Issue("visitor-1")
	require.NoError(t, err)
	_, err = signer.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := NewTokenSigner("secret", -time.Minute)
	require.NoError(t, err)
	token, err = expired.Issue("visitor-1")
	require.NoError(t, err)
	_, err = signer.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = signer.Parse("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
