// Package guide offers reflection prompts for writers who do not know
// where to start.
package guide

import "time"

// Topic is one standing reflection prompt.
type Topic struct {
	Title       string
	Description string
}

// Topics returns the standing list of prompts, in the order they are
// offered.
func Topics() []Topic {
	return []Topic{
		{
			Title:       "Unfinished sentence",
			Description: "Start with \"today I keep thinking about...\" and let the sentence run as far as it wants.",
		},
		{
			Title:       "Small win",
			Description: "Name one thing that went better than expected and what you did to make it happen.",
		},
		{
			Title:       "The snag",
			Description: "Describe the moment the day caught on something. What did it pull loose?",
		},
		{
			Title:       "Letter you won't send",
			Description: "Write three honest lines to someone, with no intention of ever sending them.",
		},
		{
			Title:       "Body check",
			Description: "Where are you holding the day? Shoulders, jaw, stomach. Write from that spot.",
		},
		{
			Title:       "Tomorrow's first hour",
			Description: "Sketch how you want the first hour of tomorrow to feel, not what it must produce.",
		},
	}
}

// ForDay picks one topic deterministically for the given day, so the
// suggestion stays stable across restarts within the same day.
func ForDay(t time.Time) Topic {
	topics := Topics()
	return topics[t.YearDay()%len(topics)]
}
