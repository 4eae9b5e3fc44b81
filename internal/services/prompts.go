package services

import (
	"fmt"
	"strings"
)

// ReportKind selects the prompt and heading of a generated report
type ReportKind string

const (
	ReportSummary      ReportKind = "summary"
	ReportThemes       ReportKind = "themes"
	ReportReviewStar   ReportKind = "review-star"
	ReportReviewBullet ReportKind = "review-bullet"
	ReportReviewProse  ReportKind = "review-prose"
)

// ReviewFormats lists the accepted review formats, in help order
var ReviewFormats = []string{"star", "bullet", "prose"}

var reportPrompts = map[ReportKind]string{
	ReportSummary: `You are helping an engineer reflect on their work. Given these wins and merged pull requests, write a concise 3–5 sentence summary of their key accomplishments. Focus on impact, scope, and what they shipped or improved. Be specific and concrete. Do not open with a preamble sentence — lead directly with the substance.`,

	ReportThemes: `You are helping an engineer reflect on their work. Identify 4–6 recurring themes or focus areas from these accomplishments. For each theme, provide a short title and list 2–3 supporting examples from the data. Format as a clear, scannable list.`,

	ReportReviewStar: `You are helping an engineer articulate their work impact. Write 3–5 examples in STAR format (Situation, Task, Action, Result) highlighting their most impactful work. Focus on measurable outcomes, scale, and collaboration signals visible in the data. This can be used for performance reviews, career conversations, or personal reflection.`,

	ReportReviewBullet: `You are helping an engineer articulate their work impact. Summarise their accomplishments as bullet points, organised by theme or impact area. Each bullet should be specific and achievement-oriented, highlighting impact, scale, or collaboration. Write 8–12 bullets. This can be used for performance reviews, career conversations, or personal reflection.`,

	ReportReviewProse: `You are helping an engineer articulate their work impact. Write a 3–5 paragraph narrative summarising their overall trajectory, key achievements, impact, and collaboration. Write in third person. This can be used for performance reviews, career conversations, or personal reflection.`,
}

var reportTitles = map[ReportKind]string{
	ReportSummary:      "Accomplishment Summary",
	ReportThemes:       "Themes & Focus Areas",
	ReportReviewStar:   "Performance Review — STAR Format",
	ReportReviewBullet: "Performance Review — Bullet Points",
	ReportReviewProse:  "Performance Review — Prose Narrative",
}

// ParseReviewFormat maps a --format value onto its review kind
func ParseReviewFormat(format string) (ReportKind, error) {
	for _, f := range ReviewFormats {
		if f == format {
			return ReportKind("review-" + f), nil
		}
	}
	return "", fmt.Errorf("Invalid format %q. Use: %s", format, strings.Join(ReviewFormats, " | "))
}

// Prompt returns the system prompt for the kind
func (k ReportKind) Prompt() string {
	return reportPrompts[k]
}

// Title returns the heading printed above the report
func (k ReportKind) Title() string {
	return reportTitles[k]
}

// Progress returns the spinner message shown while generating
func (k ReportKind) Progress() string {
	switch k {
	case ReportSummary:
		return "Generating summary…"
	case ReportThemes:
		return "Identifying themes…"
	default:
		return "Generating review…"
	}
}

// Valid reports whether the kind has a prompt
func (k ReportKind) Valid() bool {
	_, ok := reportPrompts[k]
	return ok
}
