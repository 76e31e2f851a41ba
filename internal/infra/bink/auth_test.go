package bink

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gym_schedule_bot/internal/domain/browser/browsertest"
	"gym_schedule_bot/internal/domain/schedule"
)

func TestLogin_MissingCredentials(t *testing.T) {
	f := browsertest.New()
	c := NewClient(f, Options{BaseURL: "https://gym.test", SettleInterval: -1, Log: testLogger()})

	err := c.Login(context.Background())
	assert.ErrorIs(t, err, schedule.ErrCredentialsMissing)
	assert.Empty(t, f.Navigated, "no site contact without credentials")
}

func TestLogin_ViaHeaderLink(t *testing.T) {
	f := browsertest.New()
	f.SetNodes("a",
		button("[data-gymbot-id='a1']", "Rooster"),
		button("[data-gymbot-id='a2']", "Inloggen"),
	)
	f.SetNodes(selSubmit, submitInput("[data-gymbot-id='s1']", "Log in"))
	c := newTestClient(f)

	err := c.Login(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"https://gym.test"}, f.Navigated)
	assert.Contains(t, f.Clicked, "[data-gymbot-id='a2']")
	assert.Equal(t, "athlete@example.com", f.Filled[selLoginUser])
	assert.Equal(t, "secret", f.Filled[selLoginPass])
	assert.Contains(t, f.Clicked, "[data-gymbot-id='s1']")
}

func TestLogin_FallsBackToLoginPage(t *testing.T) {
	f := browsertest.New()
	f.SetNodes(selSubmit, submitInput("[data-gymbot-id='s1']", "Log in"))
	c := newTestClient(f)

	err := c.Login(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"https://gym.test", "https://gym.test/login"}, f.Navigated)
}

func TestLogin_NoSubmitControl(t *testing.T) {
	f := browsertest.New()
	c := newTestClient(f)

	err := c.Login(context.Background())
	assert.ErrorIs(t, err, schedule.ErrAuthFailed)
}
