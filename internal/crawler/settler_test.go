package crawler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkedin-people-search/internal/browser"
)

// flakyScroll fails every ScrollToBottom and counts the attempts
type flakyScroll struct {
	*browser.Static
	attempts int
}

func (f *flakyScroll) ScrollToBottom(context.Context) error {
	f.attempts++
	return errors.New("page crashed")
}

func newStaticPage(t *testing.T) *browser.Static {
	t.Helper()
	session, err := browser.NewStatic(`<div class="results"><p>x</p></div>`)
	require.NoError(t, err)
	return session
}

func TestSettleScrollsFixedNumberOfTimes(t *testing.T) {
	session := newStaticPage(t)
	log, _ := logtest.NewNullLogger()

	s := NewSettler(testConfig(), log)
	require.NoError(t, s.Settle(context.Background(), session))
	assert.Equal(t, 4, session.Scrolls())
}

func TestSettleIgnoresScrollFailures(t *testing.T) {
	session := &flakyScroll{Static: newStaticPage(t)}
	log, hook := logtest.NewNullLogger()

	s := NewSettler(testConfig(), log)
	require.NoError(t, s.Settle(context.Background(), session))
	assert.Equal(t, 4, session.attempts)
	assert.Len(t, hook.AllEntries(), 4)
}

func TestSettleCancelled(t *testing.T) {
	config := testConfig()
	config.ScrollPause = time.Hour
	log, _ := logtest.NewNullLogger()

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(10*time.Millisecond, cancel)

	err := NewSettler(config, log).Settle(ctx, newStaticPage(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRevealScrollsEachPercent(t *testing.T) {
	session := newStaticPage(t)
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	s := NewSettler(testConfig(), log)

	require.NoError(t, s.Reveal(context.Background(), session, ".results"))
	assert.Equal(t, 3, session.Scrolls())

	require.NoError(t, s.Reveal(context.Background(), session, ".missing"))
	assert.Equal(t, 3, session.Scrolls())
	assert.Len(t, hook.AllEntries(), 3)
}
