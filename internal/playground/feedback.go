package playground

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileylov/canvasplay/internal/config"
	"github.com/rileylov/canvasplay/internal/gesture"
)

// FeedbackType is the sentiment picked in the feedback widget.
type FeedbackType string

const (
	Positive FeedbackType = "positive"
	Negative FeedbackType = "negative"
)

// FeedbackSubmittedMsg is sent when the user submits feedback. Comment is
// empty when none was given.
type FeedbackSubmittedMsg struct {
	Type    FeedbackType
	Comment string
}

// FeedbackDismissedMsg is sent when the user cancels the comment form.
type FeedbackDismissedMsg struct{}

// Feedback collects a thumbs up or down and an optional comment.
type Feedback struct {
	textarea     textarea.Model
	labels       config.Labels
	allowComment bool

	selected    FeedbackType
	showComment bool
}

// NewFeedback creates the widget from its config section.
func NewFeedback(cfg config.Feedback) *Feedback {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 1000
	ta.SetHeight(4)
	f := &Feedback{
		textarea:     ta,
		allowComment: cfg.AllowComment,
	}
	f.SetLabels(cfg.Labels)
	return f
}

// SetLabels replaces the captions.
func (f *Feedback) SetLabels(l config.Labels) {
	f.labels = l
	f.textarea.Placeholder = l.CommentPlaceholder
}

// SetAllowComment toggles the comment step.
func (f *Feedback) SetAllowComment(allow bool) {
	f.allowComment = allow
}

// Select records the sentiment. Without the comment step it submits
// immediately.
func (f *Feedback) Select(t FeedbackType) tea.Cmd {
	f.selected = t
	if !f.allowComment {
		f.selected = ""
		return func() tea.Msg { return FeedbackSubmittedMsg{Type: t} }
	}
	f.showComment = true
	return f.textarea.Focus()
}

// Submit sends the selection with the trimmed comment and resets the form.
// Nothing happens before a sentiment was picked.
func (f *Feedback) Submit() tea.Cmd {
	if f.selected == "" {
		return nil
	}
	msg := FeedbackSubmittedMsg{
		Type:    f.selected,
		Comment: strings.TrimSpace(f.textarea.Value()),
	}
	f.reset()
	return func() tea.Msg { return msg }
}

// Cancel resets the form and reports the dismissal.
func (f *Feedback) Cancel() tea.Cmd {
	f.reset()
	return func() tea.Msg { return FeedbackDismissedMsg{} }
}

func (f *Feedback) reset() {
	f.selected = ""
	f.showComment = false
	f.textarea.Reset()
	f.textarea.Blur()
}

func (f *Feedback) label(t FeedbackType) string {
	if t == Positive {
		return f.labels.Positive
	}
	return f.labels.Negative
}

func (f *Feedback) focused() bool {
	return f.showComment
}

func (f *Feedback) updateKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return f.Cancel()
	case "ctrl+s", "ctrl+enter":
		return f.Submit()
	}
	var cmd tea.Cmd
	f.textarea, cmd = f.textarea.Update(msg)
	return cmd
}

func (f *Feedback) body(width, height int) ([]string, []control) {
	if !f.showComment {
		lines := []string{titleStyle.Render("How was your experience?"), ""}
		row, ctls := buttonRow(len(lines), 2,
			button{id: string(Positive), label: f.labels.Positive, style: primaryButtonStyle},
			button{id: string(Negative), label: f.labels.Negative, style: secondaryButtonStyle},
		)
		return fit(append(lines, row), width, height), ctls
	}

	lines := []string{dimStyle.Render("You selected: ") + bodyStyle.Render(f.label(f.selected))}
	f.textarea.SetWidth(width)
	lines = append(lines, strings.Split(f.textarea.View(), "\n")...)
	lines = append(lines, "")
	row, ctls := buttonRow(len(lines), 2,
		button{id: "cancel", label: f.labels.Cancel, style: secondaryButtonStyle},
		button{id: "submit", label: f.labels.Submit, style: primaryButtonStyle},
	)
	lines = append(lines, row)
	for r := 1; r <= f.textarea.Height(); r++ {
		ctls = append(ctls, control{id: "comment", kind: gesture.KindTextarea, row: r, width: width})
	}
	return fit(lines, width, height), ctls
}

func (f *Feedback) cells() (int, int) {
	return 44, 11
}

func (f *Feedback) click(id string) tea.Cmd {
	switch id {
	case string(Positive):
		return f.Select(Positive)
	case string(Negative):
		return f.Select(Negative)
	case "submit":
		return f.Submit()
	case "cancel":
		return f.Cancel()
	case "comment":
		return f.textarea.Focus()
	}
	return nil
}
