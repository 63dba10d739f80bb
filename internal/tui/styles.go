package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

type Styles struct {
	flavor catppuccin.Flavor
}

func NewStyles(themeName string) *Styles {
	return &Styles{flavor: flavorFromName(themeName)}
}

func flavorFromName(name string) catppuccin.Flavor {
	switch name {
	case "latte":
		return catppuccin.Latte
	case "frappe":
		return catppuccin.Frappe
	case "macchiato":
		return catppuccin.Macchiato
	case "mocha":
		return catppuccin.Mocha
	default:
		return catppuccin.Mocha
	}
}

func (s *Styles) TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(s.flavor.Mauve().Hex)).
		MarginBottom(1)
}

func (s *Styles) SubtitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.flavor.Subtext0().Hex))
}

func (s *Styles) HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.flavor.Overlay0().Hex)).
		MarginTop(1)
}

func (s *Styles) BoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(s.flavor.Surface1().Hex)).
		Padding(1, 2)
}

func (s *Styles) InfoStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.flavor.Text().Hex))
}

func (s *Styles) AccentStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.flavor.Teal().Hex))
}

func (s *Styles) ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.flavor.Red().Hex)).
		Bold(true)
}

func (s *Styles) SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.flavor.Green().Hex))
}

// BadgeStyle colors a source label by its slot in the registry. The first
// three slots mirror the classic repo/fork/clone accents; further sources
// cycle through the remaining colors.
func (s *Styles) BadgeStyle(slot int) lipgloss.Style {
	colors := []string{
		s.flavor.Blue().Hex,
		s.flavor.Green().Hex,
		s.flavor.Peach().Hex,
		s.flavor.Mauve().Hex,
		s.flavor.Teal().Hex,
		s.flavor.Yellow().Hex,
	}
	hex := s.flavor.Surface2().Hex
	if slot >= 0 {
		hex = colors[slot%len(colors)]
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hex)).
		Bold(true)
}
