package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mfigat/prompt/internal/config"
)

var (
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	errorStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helperStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	heroAccentColor        = lipgloss.Color("#ff8c00")
	heroEmberColor         = lipgloss.Color("#2b1400")
	heroTextColor          = lipgloss.Color("#fff4d0")
	heroSecondaryTextColor = lipgloss.Color("#ffb347")

	heroTitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(heroAccentColor)
	heroBoxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(heroAccentColor).Foreground(heroTextColor).Background(heroEmberColor).Padding(1, 2)
	taglineStyle       = lipgloss.NewStyle().Foreground(heroSecondaryTextColor).Italic(true)
	statusBarStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6")).Padding(0, 1)
	keyStyle           = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffd166")).Padding(0, 1)
	keyDescStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4"))
	legendBoxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(1, 2)
	currentLineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6"))
	fieldCursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffd166"))
	fieldLabelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4"))
	fieldValueStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8ecae6"))
	deviceOnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#a3be8c")).Bold(true)
	deviceOffStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Strikethrough(true)
	devicePanelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(0, 1)
	logoFaceStyle      = lipgloss.NewStyle().Bold(true).Foreground(heroTextColor).Background(heroEmberColor)
	logoShadowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#110600"))
	logoContainerStyle = lipgloss.NewStyle().Padding(0, 1)
	logoArtLines       = []string{
		"████████╗  ███████╗  ██╗       ███████╗  ██████╗   ██████╗    ██████╗   ███╗   ███╗  ██████╗   ████████╗",
		"╚══██╔══╝  ██╔════╝  ██║       ██╔════╝  ██╔══██╗  ██╔══██╗  ██╔═══██╗  ████╗ ████║  ██╔══██╗  ╚══██╔══╝",
		"   ██║     █████╗    ██║       █████╗    ██████╔╝  ██████╔╝  ██║   ██║  ██╔████╔██║  ██████╔╝     ██║   ",
		"   ██║     ██╔══╝    ██║       ██╔══╝    ██╔═══╝   ██╔══██╗  ██║   ██║  ██║╚██╔╝██║  ██╔═══╝      ██║   ",
		"   ██║     ███████╗  ███████╗  ███████╗  ██║       ██║  ██║  ╚██████╔╝  ██║ ╚═╝ ██║  ██║          ██║   ",
		"   ╚═╝     ╚══════╝  ╚══════╝  ╚══════╝  ╚═╝       ╚═╝  ╚═╝   ╚═════╝   ╚═╝     ╚═╝  ╚═╝          ╚═╝   ",
	}
)

// promptStyles is the rendering recipe derived from the committed
// configuration. Only what a terminal can express survives the mapping;
// shadows, glows, and entrance animations have no ANSI equivalent.
type promptStyles struct {
	text          lipgloss.Style
	highlight     lipgloss.Style
	transform     string
	letterSpacing int
	lineHeight    float64
	align         lipgloss.Position
	columns       int
	columnGap     int
	width         int
	highlightOn   bool
}

func configStyles(cfg config.Configuration) promptStyles {
	text := lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Colors.Primary))
	if cfg.Typography.FontWeight >= 600 {
		text = text.Bold(true)
	}
	highlight := currentLineStyle
	if cfg.Colors.GradientEnabled && len(cfg.Colors.GradientStops) > 0 {
		// The closest a terminal gets to a gradient: accent the highlight
		// line with the last stop.
		highlight = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0f0f0f")).
			Background(lipgloss.Color(cfg.Colors.GradientStops[len(cfg.Colors.GradientStops)-1]))
	}

	spacing := 0
	if cfg.Typography.LetterSpacing >= 4 {
		spacing = 2
	} else if cfg.Typography.LetterSpacing >= 1 {
		spacing = 1
	}

	columns := cfg.Layout.ColumnCount
	if columns < 1 {
		columns = 1
	}
	gap := cfg.Layout.ColumnGap
	if gap < 1 {
		gap = 2
	}

	return promptStyles{
		text:          text,
		highlight:     highlight,
		transform:     cfg.Typography.TextTransform,
		letterSpacing: spacing,
		lineHeight:    cfg.Typography.LineHeight,
		align:         alignPosition(cfg.Layout.TextAlign),
		columns:       columns,
		columnGap:     gap,
		width:         cfg.Layout.TextAreaWidth,
		highlightOn:   cfg.Animations.WordHighlight,
	}
}

func alignPosition(align string) lipgloss.Position {
	switch align {
	case "center":
		return lipgloss.Center
	case "right":
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

func applyTransform(text, transform string) string {
	switch transform {
	case "uppercase":
		return strings.ToUpper(text)
	case "lowercase":
		return strings.ToLower(text)
	case "capitalize":
		return capitalizeWords(text)
	default:
		return text
	}
}

func capitalizeWords(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	atWordStart := true
	for _, r := range text {
		if r == ' ' || r == '\n' || r == '\t' {
			atWordStart = true
			b.WriteRune(r)
			continue
		}
		if atWordStart {
			b.WriteString(strings.ToUpper(string(r)))
			atWordStart = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func spaceRunes(text string, spacing int) string {
	if spacing <= 0 {
		return text
	}
	gap := strings.Repeat(" ", spacing)
	var b strings.Builder
	runes := []rune(text)
	for i, r := range runes {
		b.WriteRune(r)
		if i < len(runes)-1 && r != '\n' {
			b.WriteString(gap)
		}
	}
	return b.String()
}

// mirrorLine reverses the runes of a plain-text line for beam-splitter
// glass. It must run before any ANSI styling is applied.
func mirrorLine(line string) string {
	runes := []rune(line)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
