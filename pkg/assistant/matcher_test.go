package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repliesFor(t *testing.T, topic string) []string {
	t.Helper()
	for _, rule := range topicRules {
		if rule.topic == topic {
			return rule.replies
		}
	}
	t.Fatalf("no topic rule named %q", topic)
	return nil
}

func TestReply_WateringMembership(t *testing.T) {
	m := NewMatcher(nil)
	watering := repliesFor(t, "watering")

	inputs := []string{
		"How often should I water my plants?",
		"IRRIGATION schedule for summer",
		"is drip irrigation worth it",
	}
	for _, input := range inputs {
		for i := 0; i < 100; i++ {
			assert.Contains(t, watering, m.Reply(input), "input %q", input)
		}
	}
}

func TestReply_WateringWinsOverPests(t *testing.T) {
	m := NewMatcher(nil)
	watering := repliesFor(t, "watering")

	// Both groups match; watering is checked first.
	reply := m.Reply("pest in my watering can")
	assert.Contains(t, watering, reply)
	assert.Equal(t, "watering", m.Topic("pest in my watering can"))
}

func TestReply_TomatoIsFixedSentence(t *testing.T) {
	m := NewMatcher(nil)
	tomato := repliesFor(t, "tomato")
	require.Len(t, tomato, 1)

	for i := 0; i < 20; i++ {
		assert.Equal(t, tomato[0], m.Reply("my tomato looks droopy"))
	}
}

func TestReply_BasilScenario(t *testing.T) {
	m := NewMatcher(nil)
	herbs := repliesFor(t, "herbs")
	require.Len(t, herbs, 1)

	assert.Equal(t, herbs[0], m.Reply("My basil leaves are yellow, any tips?"))
	assert.Equal(t, "herbs", m.Topic("My basil leaves are yellow, any tips?"))
}

func TestReply_FallbackMembership(t *testing.T) {
	m := NewMatcher(nil)
	require.Len(t, fallbackReplies, 4)

	for i := 0; i < 100; i++ {
		assert.Contains(t, fallbackReplies, m.Reply("lorem dolor amet"))
	}
	assert.Equal(t, "", m.Topic("lorem dolor amet"))
}

func TestReply_CaseFolding(t *testing.T) {
	m := NewMatcher(nil)
	assert.Equal(t, "pests", m.Topic("WHAT IS THIS BUG ON MY LEAVES"))
}

func TestReply_StubbedSelection(t *testing.T) {
	m := NewMatcher(func(n int) int { return 1 })
	watering := repliesFor(t, "watering")

	assert.Equal(t, watering[1], m.Reply("too much water?"))
}

func TestReply_EmptyInputIsTotal(t *testing.T) {
	m := NewMatcher(nil)
	assert.Contains(t, fallbackReplies, m.Reply(""))
}
