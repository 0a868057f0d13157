package logger

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Palette used for level labels and result lines.
const (
	Red    = "#FF6188" // Errors
	Orange = "#FC9867" // Warnings
	Green  = "#A9DC76" // Success
	Cyan   = "#78DCE8" // Info
	Dim    = "#727072" // Debug, secondary text
)

// Result line styles.
var (
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Green))
	FailureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Red))
	DimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Dim))
)

// levelStyles returns charm/log styles with full-width, colored level labels.
func levelStyles() *log.Styles {
	s := log.DefaultStyles()
	s.Levels[log.DebugLevel] = lipgloss.NewStyle().SetString("DEBUG").Foreground(lipgloss.Color(Dim))
	s.Levels[log.InfoLevel] = lipgloss.NewStyle().SetString("INFO").Foreground(lipgloss.Color(Cyan))
	s.Levels[log.WarnLevel] = lipgloss.NewStyle().SetString("WARN").Foreground(lipgloss.Color(Orange))
	s.Levels[log.ErrorLevel] = lipgloss.NewStyle().SetString("ERROR").Bold(true).Foreground(lipgloss.Color(Red))
	s.Levels[log.FatalLevel] = lipgloss.NewStyle().SetString("FATAL").Bold(true).Foreground(lipgloss.Color(Red))
	return s
}
