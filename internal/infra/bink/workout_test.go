package bink

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gym_schedule_bot/internal/domain/browser"
	"gym_schedule_bot/internal/domain/browser/browsertest"
)

const wodEntrySel = "li[data-remodal-target*='tuesday-WOD']"

func TestExtractWorkout_RestDay(t *testing.T) {
	f := browsertest.New()
	c := newTestClient(f)

	text, err := c.ExtractWorkout(context.Background(), tuesday)
	require.NoError(t, err)
	assert.Equal(t, NoWorkout, text)
}

func TestExtractWorkout_FromWodList(t *testing.T) {
	f := browsertest.New()
	f.SetNodes(wodEntrySel,
		entryNode("[data-gymbot-id='e1']", "modal-tuesday-WOD-18:30", "open", "18:30\nWOD"))
	f.SetVisible(selModal, true)
	f.SetNodes(selWodList,
		browser.Node{Sel: "w1", Text: "5 rounds for time"},
		browser.Node{Sel: "w2", Text: "20 wall balls"},
		browser.Node{Sel: "w3", Text: "Deel deze workout met je vrienden"},
	)
	c := newTestClient(f)

	text, err := c.ExtractWorkout(context.Background(), tuesday)
	require.NoError(t, err)
	assert.Equal(t, "5 rounds for time\n20 wall balls", text)
	assert.Contains(t, f.Clicked, selModalClose, "popup must be dismissed after reading")
}

func TestExtractWorkout_BodyFallback(t *testing.T) {
	f := browsertest.New()
	f.SetNodes(wodEntrySel,
		entryNode("[data-gymbot-id='e1']", "modal-tuesday-WOD-18:30", "open", "18:30\nWOD"))
	f.SetVisible(selModal, true)
	f.SetText(selModalBody, "  3 rounds:  \n\n  10 burpees  \nDeel deze workout\nsocial buttons")
	c := newTestClient(f)

	text, err := c.ExtractWorkout(context.Background(), tuesday)
	require.NoError(t, err)
	assert.Equal(t, "3 rounds:\n10 burpees", text)
}

func TestExtractWorkout_EmptyPopupIsRestDay(t *testing.T) {
	f := browsertest.New()
	f.SetNodes(wodEntrySel,
		entryNode("[data-gymbot-id='e1']", "modal-tuesday-WOD-18:30", "open", "18:30\nWOD"))
	f.SetVisible(selModal, true)
	f.SetText(selModalBody, "Deel deze workout")
	c := newTestClient(f)

	text, err := c.ExtractWorkout(context.Background(), tuesday)
	require.NoError(t, err)
	assert.Equal(t, NoWorkout, text)
}

func TestNormalizeWorkout(t *testing.T) {
	assert.Equal(t, "a\nb", normalizeWorkout(" a \n\n b \nDeel deze workout\nrest"))
	assert.Equal(t, "", normalizeWorkout("  \n \n"))
}
