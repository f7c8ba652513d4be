package dialog

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/alexcabrera/surface/styles"
)

func testForm() *huh.Form {
	var ok bool
	return huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title("Sure?").Value(&ok),
	))
}

func TestOverlayEscapeDismisses(t *testing.T) {
	o := NewOverlay(testForm(), styles.DefaultTheme())

	model, cmd := o.Update(tea.KeyMsg{Type: tea.KeyEsc})
	got, ok := model.(*Overlay)
	if !ok {
		t.Fatalf("update returned %T", model)
	}
	if !got.Dismissed() {
		t.Fatal("escape should dismiss")
	}
	if cmd == nil {
		t.Fatal("dismissal should quit the program")
	}
}

func TestOverlayViewCentersWhenSized(t *testing.T) {
	o := NewOverlay(testForm(), nil)
	o.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	view := o.View()
	if view == "" {
		t.Fatal("sized overlay should render")
	}
	if len(strings.Split(view, "\n")) < 3 {
		t.Fatal("placed view should span multiple lines")
	}
}

func TestOverlayViewEmptyAfterDone(t *testing.T) {
	o := NewOverlay(testForm(), nil)
	o.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if o.View() != "" {
		t.Fatal("finished overlay should render nothing")
	}
}
