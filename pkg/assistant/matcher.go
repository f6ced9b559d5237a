package assistant

import (
	"math/rand"
	"strings"
	"time"
)

// topicRule pairs a keyword group with its canned replies. Rules are checked
// in order and the first group with any keyword present in the lower-cased
// input wins.
type topicRule struct {
	topic    string
	keywords []string
	replies  []string
}

var topicRules = []topicRule{
	{
		topic:    "watering",
		keywords: []string{"water", "irrigation"},
		replies: []string{
			"Most garden plants need about 2.5 cm of water per week. Water deeply and less often so roots grow downward.",
			"Water early in the morning so leaves dry before evening. Wet foliage overnight invites fungal problems.",
			"Check the top 3 cm of soil with your finger. If it feels dry, it is time to water; if it is still moist, wait a day.",
		},
	},
	{
		topic:    "fertilizer",
		keywords: []string{"fertilizer", "nutrient", "feed"},
		replies: []string{
			"A balanced 10-10-10 fertilizer works for most vegetables. Apply every 4-6 weeks during the growing season.",
			"Yellowing lower leaves often mean nitrogen deficiency. Compost or a nitrogen-rich feed usually fixes it within two weeks.",
			"Do not over-fertilize. Excess salts burn roots; always water well after feeding.",
		},
	},
	{
		topic:    "pests",
		keywords: []string{"pest", "bug", "insect"},
		replies: []string{
			"For soft-bodied pests like aphids, spray neem oil or insecticidal soap in the evening, repeating every 5-7 days.",
			"Inspect the undersides of leaves. Many pests hide there and hand-picking early keeps infestations small.",
			"Companion planting marigolds and basil around your beds deters many common garden insects.",
		},
	},
	{
		topic:    "diseases",
		keywords: []string{"disease", "fungus", "sick"},
		replies: []string{
			"Remove affected leaves immediately and never compost them. Good airflow between plants slows most fungal diseases.",
			"Avoid overhead watering when you see spots or mildew; splashing water spreads spores between plants.",
			"A weekly copper or sulfur spray can stop early-stage fungal infections before they spread.",
		},
	},
	{
		topic:    "planting",
		keywords: []string{"plant", "grow", "seed"},
		replies: []string{
			"Check your local frost dates before sowing. Most warm-season crops go out two weeks after the last frost.",
			"Sow seeds at a depth of about twice their diameter, and keep the soil evenly moist until they germinate.",
			"Give each plant the spacing on its label. Crowded plants compete for light and invite disease.",
		},
	},
	{
		topic:    "harvest",
		keywords: []string{"harvest", "pick", "when to"},
		replies: []string{
			"Harvest in the cool of the morning for the best flavor and shelf life.",
			"Pick little and often. Many crops, like beans and courgettes, produce more the more you harvest.",
			"Most fruit is ready when it separates from the stem with a gentle twist rather than a hard pull.",
		},
	},
	{
		topic:    "soil",
		keywords: []string{"soil", "ground", "dirt"},
		replies: []string{
			"Work 5-8 cm of compost into your beds each season. Healthy soil is the single best disease prevention.",
			"Most vegetables prefer a soil pH between 6.0 and 7.0. A cheap test kit will tell you where you stand.",
			"Avoid walking on wet beds. Compacted soil drains poorly and starves roots of air.",
		},
	},
	{
		topic:    "pruning",
		keywords: []string{"prune", "trim", "cut"},
		replies: []string{
			"Always cut just above an outward-facing bud with clean, sharp secateurs.",
			"Prune spring-flowering shrubs right after they bloom, and summer bloomers in late winter.",
			"Never remove more than a third of a plant in one session; heavy pruning stresses it.",
		},
	},
	{
		topic:    "greeting",
		keywords: []string{"hello", "hi", "help"},
		replies: []string{
			"Hello! Ask me about watering, fertilizer, pests, diseases, planting, harvesting, soil or pruning.",
			"Hi there! I can help with day-to-day garden care. What are you growing?",
			"Happy to help. Tell me what is happening with your plants and I will suggest something.",
		},
	},
	{
		topic:    "thanks",
		keywords: []string{"thank"},
		replies: []string{
			"You're welcome! Happy gardening.",
			"Any time. Come back whenever your plants act up.",
			"Glad I could help. Green thumbs up!",
		},
	},
	{
		topic:    "tomato",
		keywords: []string{"tomato"},
		replies: []string{
			"Tomatoes love full sun, consistent watering and a stake or cage for support. Pinch out side shoots on cordon varieties and feed weekly once fruit sets.",
		},
	},
	{
		topic:    "herbs",
		keywords: []string{"basil", "herb"},
		replies: []string{
			"Herbs like basil do best in well-drained soil with morning sun. Pick leaves from the top regularly to keep the plant bushy, and avoid letting it flower.",
		},
	},
	{
		topic:    "roses",
		keywords: []string{"rose"},
		replies: []string{
			"Roses want at least six hours of sun, deep weekly watering at the base, and a mulch of compost in spring. Deadhead spent blooms to keep them flowering.",
		},
	},
}

var fallbackReplies = []string{
	"I'm not sure about that one. Could you tell me which plant you mean, or ask about watering, pests or soil?",
	"Interesting question! Try asking me about watering, fertilizer, pests, diseases, planting, harvesting, soil or pruning.",
	"I don't have a good answer for that yet. A photo scan in the app might help if a plant looks unwell.",
	"Hmm, that is outside my patch. Ask me something about everyday garden care and I will do my best.",
}

type (
	// Matcher maps free-text input to a canned assistant reply. Selection
	// within a bucket is uniform per call through the injected intn, so
	// tests can pin it with a stub.
	Matcher interface {
		Reply(text string) string
		Topic(text string) string
	}

	matcher struct {
		intn func(n int) int
	}
)

func NewMatcher(intn func(n int) int) Matcher {
	if intn == nil {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		intn = rng.Intn
	}
	return &matcher{intn: intn}
}

func (m *matcher) Reply(text string) string {
	normalized := strings.ToLower(text)
	for _, rule := range topicRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(normalized, keyword) {
				return rule.replies[m.intn(len(rule.replies))]
			}
		}
	}
	return fallbackReplies[m.intn(len(fallbackReplies))]
}

func (m *matcher) Topic(text string) string {
	normalized := strings.ToLower(text)
	for _, rule := range topicRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(normalized, keyword) {
				return rule.topic
			}
		}
	}
	return ""
}
