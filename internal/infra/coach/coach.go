// Package coach generates advisory text for the day's workout through the
// OpenAI API. Every failure degrades to a static fallback; advisory text
// is garnish and must never abort an automation run.
package coach

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"

	"gym_schedule_bot/internal/domain/report"
)

// FallbackAdvice is used whenever no advisory can be generated. Same
// three-line focus/strategy/tip structure as the generated text.
const FallbackAdvice = "Focus: move with intent and keep your technique honest.\n" +
	"Strategy: break the work early, before you're forced to.\n" +
	"Tip: breathe on purpose; recovery starts between the reps."

// FallbackRecap closes out a session when no generated recap is available.
const FallbackRecap = "Solid work today. Prioritize recovery: eat, hydrate, sleep."

const systemPrompt = "You are an experienced, no-nonsense CrossFit coach."

type Coach struct {
	client *openai.Client // nil when no API key is configured
	model  string
	log    *logrus.Entry
}

func New(apiKey, model string, log *logrus.Entry) *Coach {
	c := &Coach{model: model, log: log.WithField("component", "coach")}
	if apiKey != "" {
		c.client = openai.NewClient(apiKey)
	}
	return c
}

// DailyAdvice returns a short advisory for the published workout in a
// fixed three-line structure (focus / strategy / tip).
func (c *Coach) DailyAdvice(ctx context.Context, workout string) string {
	prompt := fmt.Sprintf(
		"Today's workout:\n---\n%s\n---\n"+
			"Write exactly three short lines for the athlete:\n"+
			"Focus: <what the workout trains>\n"+
			"Strategy: <how to pace or break it up>\n"+
			"Tip: <one concrete technique or recovery pointer>",
		workout)
	return c.complete(ctx, prompt, FallbackAdvice)
}

// Recap evaluates a completed session against the workout and the
// measured performance numbers.
func (c *Coach) Recap(ctx context.Context, workout string, m report.Metrics) string {
	prompt := fmt.Sprintf(
		"The athlete just finished this workout:\n---\n%s\n---\n"+
			"Measured stats: duration %d min, %d kcal, avg HR %d bpm, max HR %d bpm.\n"+
			"Write a short motivating recap (max 4 sentences): did the intensity fit "+
			"the workout, and one specific recovery tip based on the movements or the "+
			"heart-rate peak.",
		workout, m.DurationMinutes, m.Calories, m.AvgHeartRate, m.MaxHeartRate)
	return c.complete(ctx, prompt, FallbackRecap)
}

func (c *Coach) complete(ctx context.Context, prompt, fallback string) string {
	if c.client == nil {
		c.log.Debug("no API key configured, using fallback text")
		return fallback
	}
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		c.log.WithError(err).Warn("completion failed, using fallback text")
		return fallback
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return fallback
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content)
}
