package tui

import (
	"strings"

	"github.com/alexisbeaulieu97/fieldkit/internal/ui"
	"github.com/alexisbeaulieu97/fieldkit/internal/ui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	ctx := m.themes.Context()
	if m.width > 0 {
		ctx = ctx.WithConstraints(components.WithMaxWidth(m.width))
	}

	sections := make([]ui.Renderable, 0, len(m.fields)*3+3)
	if strings.TrimSpace(m.title) != "" {
		sections = append(sections, components.NewText(m.title).WithStyle(titleStyle).WithAppliers(components.Typography(components.TypographyVariantTitle)))
	}

	for i, field := range m.fields {
		label := labelStyle
		if i == m.focus && field.Focused() {
			label = focusedLabelStyle
		}
		sections = append(sections, components.NewText(m.names[i]).WithStyle(label), field)

		// Invalid fields drop their bottom margin to make room for this line.
		if field.Props().Invalid {
			message := "invalid value"
			if err := field.Err(); err != nil {
				message = err.Error()
			}
			sections = append(sections, components.ErrorText(message).WithStyle(errorLineStyle))
		}
	}

	if m.submitted {
		sections = append(sections, components.NewText("Submitted ✓").WithStyle(submittedStyle).WithAppliers(components.Foreground(components.PaletteSuccess)))
	}
	if !m.nonInteractive {
		sections = append(sections, components.NewText(m.help.View(m.keys)))
	}

	return components.VStack(sections...).ViewWithContext(ctx)
}
