package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mfigat/prompt/internal/config"
	"github.com/mfigat/prompt/internal/scroll"
)

func (m *model) View() string {
	switch m.stage {
	case stageEditor:
		return m.viewEditor()
	case stageLoading:
		return m.viewLoading()
	case stageStyling:
		return m.viewStyling()
	case stagePrompter:
		return m.viewPrompter()
	default:
		return ""
	}
}

func (m *model) viewEditor() string {
	parts := []string{m.heroView(), sectionHeaderStyle.Render("Script Editor"), m.editor.View()}
	if m.urlEntry {
		parts = append(parts,
			sectionHeaderStyle.Render("Fetch Remote Script"),
			m.urlInput.View(),
			helperStyle.Render("Enter fetches, Esc cancels."))
	}
	if m.guideVisible {
		parts = append(parts, m.rehearsalView())
	}
	parts = append(parts, m.messageLines()...)
	parts = append(parts, helperStyle.Render("Tab: styling • Ctrl+O: fetch URL • Ctrl+E: export • Ctrl+G: rehearsal guide • Ctrl+B/Ctrl+P: copy/paste • Esc: quit"))
	return joinNonEmpty(parts)
}

func (m *model) viewLoading() string {
	parts := []string{
		m.heroView(),
		fmt.Sprintf("%s %s", m.spinner.View(), m.infoMessage),
		helperStyle.Render("Esc returns to the editor."),
	}
	return joinNonEmpty(parts)
}

func (m *model) viewStyling() string {
	parts := []string{m.heroView(), sectionHeaderStyle.Render("Styling"), m.stylingPanel()}
	if m.devices.Enabled {
		parts = append(parts, m.devicePreviewPanel())
	}
	parts = append(parts, m.historyLine())
	parts = append(parts, m.messageLines()...)
	if m.helpVisible {
		parts = append(parts, m.stylingLegend())
	}
	parts = append(parts, helperStyle.Render("Tab: prompter • Esc: editor • d: device preview • ?: keys"))
	return joinNonEmpty(parts)
}

func (m *model) viewPrompter() string {
	m.syncViewport()
	parts := []string{m.progress.ViewAs(m.controller.Progress()), m.viewport.View()}
	if m.panelVisible() {
		parts = append(parts, m.sessionMeterView())
		parts = append(parts, m.messageLines()...)
	}
	if m.helpVisible {
		parts = append(parts, m.prompterLegend())
	}
	return joinNonEmpty(parts)
}

func (m *model) stylingPanel() string {
	cfg := config.Default()
	if m.config.Styling != nil {
		cfg = m.config.Styling.Current()
	}
	rows := []struct {
		field styleField
		label string
		value string
	}{
		{fieldFontSize, "Font size", fmt.Sprintf("%d", cfg.Typography.FontSize)},
		{fieldFontWeight, "Font weight", fmt.Sprintf("%d", cfg.Typography.FontWeight)},
		{fieldLetterSpacing, "Letter spacing", fmt.Sprintf("%.1f", cfg.Typography.LetterSpacing)},
		{fieldLineHeight, "Line height", fmt.Sprintf("%.1f", cfg.Typography.LineHeight)},
		{fieldTextTransform, "Text transform", cfg.Typography.TextTransform},
		{fieldPrimaryColor, "Primary color", cfg.Colors.Primary},
		{fieldGradient, "Gradient", onOff(cfg.Colors.GradientEnabled)},
		{fieldTextAlign, "Text align", cfg.Layout.TextAlign},
		{fieldColumnCount, "Columns", fmt.Sprintf("%d", cfg.Layout.ColumnCount)},
		{fieldTextAreaWidth, "Text area width", fmt.Sprintf("%d%%", cfg.Layout.TextAreaWidth)},
		{fieldWordHighlight, "Line highlight", onOff(cfg.Animations.WordHighlight)},
		{fieldAutoScrollSpeed, "Auto-scroll speed", fmt.Sprintf("%.0f", cfg.Animations.AutoScrollSpeed)},
	}

	var b strings.Builder
	for i, row := range rows {
		label := fieldLabelStyle.Render(fmt.Sprintf("%-18s", row.label))
		value := fieldValueStyle.Render(row.value)
		line := fmt.Sprintf("  %s %s", label, value)
		if row.field == m.fieldCursor {
			line = fieldCursorStyle.Render("▸ "+row.label) + " " + value
		}
		b.WriteString(line)
		if i < len(rows)-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}

func (m *model) devicePreviewPanel() string {
	var badges []string
	for _, device := range m.devices.DeviceOrder {
		if m.deviceEnabled(device) {
			badges = append(badges, deviceOnStyle.Render(device))
		} else {
			badges = append(badges, deviceOffStyle.Render(device))
		}
	}
	header := sectionHeaderStyle.Render(fmt.Sprintf("Device Preview (%s grid)", m.devices.GridConfig))
	hint := helperStyle.Render("1-5 toggles a device, o rotates order, G cycles grid.")
	return devicePanelStyle.Render(joinNonEmpty([]string{header, strings.Join(badges, "  "), hint}))
}

func (m *model) deviceEnabled(device string) bool {
	for _, enabled := range m.devices.EnabledDeviceTypes {
		if enabled == device {
			return true
		}
	}
	return false
}

func (m *model) historyLine() string {
	if m.config.Styling == nil {
		return ""
	}
	current, total := m.config.Styling.HistoryPosition()
	badges := []string{fmt.Sprintf("%d/%d changes", current, total)}
	if m.config.Styling.CanUndo() {
		badges = append(badges, "u: undo")
	}
	if m.config.Styling.CanRedo() {
		badges = append(badges, "Ctrl+R: redo")
	}
	return statusBarStyle.Render(strings.Join(badges, "  •  "))
}

func (m *model) sessionMeterView() string {
	stats := []string{
		fmt.Sprintf("State %s", m.controller.State()),
		fmt.Sprintf("Speed %.1f", m.controller.Speed()),
		fmt.Sprintf("%d WPM", scroll.WPM(m.controller.Speed())),
		fmt.Sprintf("Depth %d%%", int(m.controller.Progress()*100)),
	}
	if anchors := m.rendered.slideAnchors; len(anchors) > 0 {
		slide := slideIndexAt(anchors, int(m.surface.Offset()))
		stats = append(stats, fmt.Sprintf("Slide %d/%d", slide+1, len(anchors)))
	}
	if m.mirrored() {
		stats = append(stats, "Mirrored")
	}
	for _, snapshot := range m.jobs.Recent() {
		if snapshot.Status == jobStatusRunning {
			stats = append(stats, fmt.Sprintf("%s…", snapshot.Kind))
		}
	}
	return statusBarStyle.Render(strings.Join(stats, "  •  "))
}

func (m *model) messageLines() []string {
	var lines []string
	if m.errorMessage != "" {
		lines = append(lines, errorStyle.Render(m.errorMessage))
	}
	if m.infoMessage != "" {
		lines = append(lines, helperStyle.Render(m.infoMessage))
	}
	return lines
}

func (m *model) rehearsalView() string {
	if len(m.rehearsal) == 0 {
		return helperStyle.Render("No rehearsal plan yet; load or write a script first.")
	}
	parts := []string{sectionHeaderStyle.Render("Rehearsal Plan")}
	for _, step := range m.rehearsal {
		parts = append(parts, fieldValueStyle.Render(step.Title))
		parts = append(parts, helperStyle.Render("  "+step.Description))
	}
	return strings.Join(parts, "\n")
}

type keyHint struct {
	Key         string
	Description string
}

func (m *model) prompterLegend() string {
	return renderLegend("Prompter Keys", []keyHint{
		{"Space", "Start/stop"},
		{"+/-", "Speed"},
		{"[/]", "Jump slides"},
		{"g/G", "Top or bottom"},
		{"m", "Mirror"},
		{"p", "Panel"},
		{"Tab", "Styling"},
		{"Esc", "Editor"},
		{"q", "Quit"},
	})
}

func (m *model) stylingLegend() string {
	return renderLegend("Styling Keys", []keyHint{
		{"↑/↓", "Select field"},
		{"←/→", "Adjust"},
		{"u", "Undo"},
		{"Ctrl+R", "Redo"},
		{"x", "Clear history"},
		{"R", "Reset defaults"},
		{"d", "Device preview"},
		{"1-5", "Toggle device"},
		{"G", "Grid size"},
	})
}

func renderLegend(title string, hints []keyHint) string {
	rows := []string{sectionHeaderStyle.Render(title)}
	const columns = 3
	for i := 0; i < len(hints); i += columns {
		end := i + columns
		if end > len(hints) {
			end = len(hints)
		}
		var cells []string
		for _, hint := range hints[i:end] {
			key := keyStyle.Render(hint.Key)
			desc := keyDescStyle.Render(" " + hint.Description)
			cells = append(cells, lipgloss.JoinHorizontal(lipgloss.Top, key, desc))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return legendBoxStyle.Render(strings.Join(rows, "\n"))
}

func (m *model) heroView() string {
	logo := renderLogo()
	if m.script.WordCount() == 0 {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			logo,
			taglineStyle.Render(heroTagline),
		)
	}

	title := heroTitleStyle.Render(m.script.Title)
	meta := []string{
		helperStyle.Render(fmt.Sprintf("%d words, %d slides", m.script.WordCount(), len(m.script.Slides()))),
	}
	if est := scroll.EstimatedDuration(m.script.WordCount(), m.controller.Speed()); est > 0 {
		meta = append(meta, helperStyle.Render(fmt.Sprintf("~%s at %d WPM", est.Round(time.Second), scroll.WPM(m.controller.Speed()))))
	}
	content := strings.Join(append([]string{title}, meta...), "\n")
	summary := heroBoxStyle.Render(content)
	panel := lipgloss.JoinHorizontal(lipgloss.Top, logo, lipgloss.NewStyle().PaddingLeft(2).Render(summary))
	return lipgloss.JoinVertical(lipgloss.Left, panel, taglineStyle.Render(heroTagline))
}

func (m *model) panelVisible() bool {
	if m.config.UI == nil {
		return true
	}
	return m.config.UI.State().PanelVisible
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func renderLogo() string {
	if len(logoArtLines) == 0 {
		return ""
	}
	width := 0
	lineRunes := make([][]rune, len(logoArtLines))
	for i, line := range logoArtLines {
		runes := []rune(line)
		lineRunes[i] = runes
		if len(runes) > width {
			width = len(runes)
		}
	}
	width += 1
	height := len(logoArtLines) + 1

	type cell struct {
		r     rune
		style lipgloss.Style
	}

	grid := make([][]cell, height)
	for i := range grid {
		grid[i] = make([]cell, width)
	}

	for y, runes := range lineRunes {
		for x, r := range runes {
			if r == ' ' {
				continue
			}
			if y+1 < height && x+1 < width {
				grid[y+1][x+1] = cell{r: r, style: logoShadowStyle}
			}
		}
	}

	for y, runes := range lineRunes {
		for x, r := range runes {
			if r == ' ' {
				continue
			}
			grid[y][x] = cell{r: r, style: logoFaceStyle}
		}
	}

	lines := make([]string, height)
	for y, row := range grid {
		var b strings.Builder
		for _, c := range row {
			if c.r == 0 {
				b.WriteRune(' ')
				continue
			}
			b.WriteString(c.style.Render(string(c.r)))
		}
		lines[y] = b.String()
	}
	return logoContainerStyle.Render(strings.Join(lines, "\n"))
}
