package tui

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/packlist/internal/ui"
)

const logo = "🌴 Far Away 🎒"

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(logoStyle.Render(logo))
	b.WriteString("\n\n")

	if m.engine.Len() == 0 {
		b.WriteString(mutedStyle.Render("no items yet, press a to add one"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.list.View())
		b.WriteString("\n")
	}
	b.WriteString(accentStyle.Render("⇅ " + m.engine.SortMode().Label()))

	switch m.mode {
	case modeAdd:
		title := titleStyle.Render("What do you need for your trip?")
		if m.formErr != "" {
			title += "  " + errorStyle.Render(m.formErr)
		}
		qty := fmt.Sprintf("qty %s %2d %s", mutedStyle.Render("↓"), m.qty, mutedStyle.Render("↑"))
		b.WriteString("\n")
		b.WriteString(barString(title, qty+"  "+m.ti.View()))
	case modeConfirmClear:
		b.WriteString("\n")
		b.WriteString(barString(errorStyle.Render(clearPrompt), helpStyle.Render("y: delete all   any other key: cancel")))
	}

	b.WriteString("\n\n")
	b.WriteString(m.footer())
	return panelString(b.String())
}

func (m Model) footer() string {
	s := m.engine.Summary()
	msg := ui.SummaryMessage(s)
	switch {
	case s.Empty:
		return mutedStyle.Render(msg)
	case s.Complete():
		return successStyle.Render(msg)
	}
	counts := fmt.Sprintf("%s %d  %s %d",
		successStyle.Render("✔"), s.Packed,
		pendingStyle.Render("•"), s.Total-s.Packed,
	)
	return pendingStyle.Render(msg) + "\n" + counts + "  " + mutedStyle.Render(ui.ProgressBar(s.Packed, s.Total, s.Percent, 28))
}
