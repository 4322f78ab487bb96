package playground

import (
	"errors"
	"image"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileylov/canvasplay/internal/config"
	"github.com/rileylov/canvasplay/internal/gesture"
	"github.com/rileylov/canvasplay/internal/media"
)

func newTestFeedback(allowComment bool) *Feedback {
	cfg := config.Default().Feedback
	cfg.AllowComment = allowComment
	return NewFeedback(cfg)
}

func TestFeedback_SubmitWithoutSelection(t *testing.T) {
	f := newTestFeedback(true)
	if cmd := f.Submit(); cmd != nil {
		t.Errorf("Expected no submission before a sentiment is picked")
	}
}

func TestFeedback_SubmitTrimsComment(t *testing.T) {
	f := newTestFeedback(true)
	f.Select(Negative)
	if !f.focused() {
		t.Fatalf("Expected the comment form to open")
	}
	f.textarea.SetValue("  too slow \n")

	msgs := collect(f.Submit())
	if len(msgs) != 1 {
		t.Fatalf("Expected one message, got %d", len(msgs))
	}
	got := msgs[0].(FeedbackSubmittedMsg)
	if got.Type != Negative || got.Comment != "too slow" {
		t.Errorf("Expected negative with trimmed comment, got %+v", got)
	}
	if f.focused() || f.selected != "" || f.textarea.Value() != "" {
		t.Errorf("Expected the form to reset after submit")
	}
}

func TestFeedback_BlankCommentIsNone(t *testing.T) {
	f := newTestFeedback(true)
	f.Select(Positive)
	f.textarea.SetValue("   ")

	got := collect(f.Submit())[0].(FeedbackSubmittedMsg)
	if got.Comment != "" {
		t.Errorf("Expected no comment, got %q", got.Comment)
	}
}

func TestFeedback_Cancel(t *testing.T) {
	f := newTestFeedback(true)
	f.Select(Positive)
	f.textarea.SetValue("draft")

	msgs := collect(f.updateKey(tea.KeyMsg{Type: tea.KeyEsc}))
	if len(msgs) != 1 {
		t.Fatalf("Expected one message, got %d", len(msgs))
	}
	if _, ok := msgs[0].(FeedbackDismissedMsg); !ok {
		t.Errorf("Expected FeedbackDismissedMsg, got %#v", msgs[0])
	}
	if f.focused() || f.textarea.Value() != "" {
		t.Errorf("Expected the form to reset after cancel")
	}
	if cmd := f.Submit(); cmd != nil {
		t.Errorf("Expected nothing to submit after cancel")
	}
}

func TestFeedback_Body(t *testing.T) {
	f := newTestFeedback(true)
	lines, ctls := f.body(42, 9)
	if len(lines) != 9 {
		t.Errorf("Expected body padded to 9 lines, got %d", len(lines))
	}
	if len(ctls) != 2 || ctls[0].id != "positive" || ctls[1].id != "negative" {
		t.Fatalf("Expected positive and negative buttons, got %+v", ctls)
	}
	if !strings.Contains(lines[ctls[0].row], "Good") {
		t.Errorf("Expected button row to show the labels, got %q", lines[ctls[0].row])
	}

	f.Select(Positive)
	_, ctls = f.body(42, 9)
	ids := map[string]gesture.Kind{}
	for _, c := range ctls {
		ids[c.id] = c.kind
	}
	if ids["submit"] != gesture.KindButton || ids["cancel"] != gesture.KindButton {
		t.Errorf("Expected submit and cancel buttons, got %v", ids)
	}
	if ids["comment"] != gesture.KindTextarea {
		t.Errorf("Expected the comment area to be a textarea control, got %v", ids)
	}
}

func TestFeedback_Labels(t *testing.T) {
	f := newTestFeedback(false)
	f.SetLabels(config.Labels{Positive: "Yes", Negative: "No", Submit: "Send", Cancel: "Back"})
	lines, ctls := f.body(42, 9)
	row := lines[ctls[0].row]
	if !strings.Contains(row, "Yes") || !strings.Contains(row, "No") {
		t.Errorf("Expected custom labels, got %q", row)
	}
}

func TestMediaCard_Apply(t *testing.T) {
	card := &mediaCard{
		asset:  media.Asset{ID: "a", Name: "a.png"},
		resize: gesture.NewResize(gesture.NewBus(), gesture.Dimensions{Width: 400, Height: 300}),
	}
	if got := card.describe(); got != "image, loading…" {
		t.Errorf("Expected loading description, got %q", got)
	}

	card.apply(media.LoadedMsg{ID: "a", Width: 300, Height: 600, Preview: image.NewRGBA(image.Rect(0, 0, 4, 4))})
	if d := card.resize.Dimensions(); d != (gesture.Dimensions{Width: 400, Height: 800}) {
		t.Errorf("Expected 400x800 for a 1:2 image, got %v", d)
	}
	if got := card.describe(); got != "image 300×600" {
		t.Errorf("Expected natural size in the description, got %q", got)
	}
	lines, _ := card.body(48, 20)
	if len(lines) != 20 {
		t.Errorf("Expected 20 body lines, got %d", len(lines))
	}
	if !strings.Contains(lines[len(lines)-1], "ratio 0.50") {
		t.Errorf("Expected footer to show the ratio, got %q", lines[len(lines)-1])
	}
}

func TestMediaCard_ApplyError(t *testing.T) {
	card := &mediaCard{
		asset:  media.Asset{ID: "a", Name: "a.png"},
		resize: gesture.NewResize(gesture.NewBus(), gesture.Dimensions{Width: 400, Height: 300}),
	}
	card.apply(media.LoadedMsg{ID: "a", Err: errors.New("boom")})
	if _, ok := card.resize.AspectRatio(); ok {
		t.Errorf("Expected no ratio after a failed load")
	}
	if got := card.describe(); got != "image (unreadable)" {
		t.Errorf("Expected unreadable description, got %q", got)
	}
	lines, _ := card.body(48, 10)
	if !strings.Contains(lines[len(lines)-1], "free-form") {
		t.Errorf("Expected free-form footer, got %q", lines[len(lines)-1])
	}
}

func TestMediaCard_Video(t *testing.T) {
	card := &mediaCard{
		asset:  media.Asset{ID: "v", Name: "clip.mp4", Kind: media.Video},
		resize: gesture.NewResize(gesture.NewBus(), gesture.Dimensions{Width: 400, Height: 300}),
	}
	if got := card.describe(); got != "▶ video" {
		t.Errorf("Expected video description, got %q", got)
	}
	if card.click("nothing") != nil {
		t.Errorf("Expected unknown control to do nothing")
	}
}
