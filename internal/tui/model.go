package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mfigat/prompt/internal/config"
	"github.com/mfigat/prompt/internal/guide"
	"github.com/mfigat/prompt/internal/prefs"
	"github.com/mfigat/prompt/internal/script"
	"github.com/mfigat/prompt/internal/scroll"
	"github.com/mfigat/prompt/internal/settings"
	"github.com/mfigat/prompt/internal/storage"
)

// Config wires runtime options into the TUI program. The stores are owned by
// the caller and shared with nothing else; the model is their only writer
// for the lifetime of the program.
type Config struct {
	Settings settings.Settings
	Sink     storage.Sink
	Styling  *config.Store
	Content  *prefs.ContentStore
	UI       *prefs.UIStore
	Playback *prefs.PlaybackStore

	// ScriptPath and ScriptURL preload a script at startup; path wins when
	// both are set.
	ScriptPath string
	ScriptURL  string
}

// New returns a tea.Model ready to be mounted into a Program.
func New(cfg Config) tea.Model {
	editor := textarea.New()
	editor.Placeholder = "Write your script here. Separate slides with a line containing only ---"
	editor.CharLimit = 0
	editor.SetWidth(76)
	editor.SetHeight(14)
	editor.Focus()

	urlInput := textinput.New()
	urlInput.Placeholder = urlPlaceholder
	urlInput.CharLimit = 200
	urlInput.Width = 70

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = true

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 60

	m := &model{
		config:   cfg,
		stage:    stageEditor,
		editor:   editor,
		urlInput: urlInput,
		spinner:  spin,
		viewport: vp,
		progress: bar,
		layout:   newPageLayout(),
		jobs:     newJobBus(),
		devices:  prefs.LoadDevicePrefs(cfg.Sink),
	}
	m.surface = newViewportSurface(&m.viewport)
	m.controller = scroll.NewController()
	m.controller.Attach(m.surface)
	if cfg.Playback != nil {
		m.controller.SetSpeed(cfg.Playback.State().Speed)
	}
	m.controller.OnComplete(func() {
		m.infoMessage = "End of script. Press space to run again, g for the top."
		if m.config.Playback != nil {
			m.config.Playback.SetPlaying(false)
		}
	})

	if cfg.Content != nil {
		if text := cfg.Content.State().Text; text != "" {
			m.script = script.New("Untitled", text)
			m.editor.SetValue(text)
		}
	}
	if m.script.Body == "" {
		m.script = script.New("Untitled", "")
	}
	m.infoMessage = "Tab cycles editor, styling, and prompter views."
	m.markContentDirty()
	return m
}

type model struct {
	config Config
	stage  stage

	editor   textarea.Model
	urlInput textinput.Model
	spinner  spinner.Model
	viewport viewport.Model
	progress progress.Model

	surface    *viewportSurface
	controller *scroll.Controller

	script    script.Script
	rehearsal []guide.Step
	rendered  renderedScript
	styles    promptStyles

	layout  pageLayout
	jobs    *jobBus
	devices prefs.DevicePrefs

	urlEntry     bool
	fieldCursor  styleField
	contentDirty bool
	animating    bool
	lastFrame    time.Time

	infoMessage  string
	errorMessage string
	helpVisible  bool
	guideVisible bool
}

func (m *model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink}
	switch {
	case m.config.ScriptPath != "":
		m.stage = stageLoading
		m.infoMessage = fmt.Sprintf("Loading %s…", m.config.ScriptPath)
		cmds = append(cmds, m.jobs.Start(jobKindLoad, loadScriptJob(m.config.ScriptPath, m.controller.Speed())), m.spinner.Tick)
	case m.config.ScriptURL != "":
		m.stage = stageLoading
		m.infoMessage = fmt.Sprintf("Fetching %s…", m.config.ScriptURL)
		cmds = append(cmds, m.jobs.Start(jobKindFetch, fetchScriptJob(m.config.ScriptURL, m.controller.Speed())), m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.viewport.Width = m.layout.viewportWidth
		m.viewport.Height = m.layout.viewportHeight
		m.editor.SetWidth(m.layout.viewportWidth)
		m.editor.SetHeight(m.layout.viewportHeight)
		m.urlInput.Width = m.layout.viewportWidth - 10
		m.progress.Width = m.layout.viewportWidth
		m.markContentDirty()
		return m, nil
	case spinner.TickMsg:
		if m.stage == stageLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case frameMsg:
		return m.handleFrame(time.Time(msg))
	case jobSignalMsg:
		return m, m.spinner.Tick
	case jobResultEnvelope:
		if msg.Payload == nil {
			return m, nil
		}
		return m.Update(msg.Payload)
	case scriptResultMsg:
		return m.handleScriptResult(msg)
	case exportResultMsg:
		if msg.err != nil {
			m.errorMessage = msg.err.Error()
			return m, nil
		}
		m.errorMessage = ""
		m.infoMessage = fmt.Sprintf("Exported to %s.", msg.path)
		return m, nil
	case tea.MouseMsg:
		if m.stage == stagePrompter {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			m.surface.AdoptViewportOffset()
			m.controller.Observe()
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.controller.State() != scroll.StateScrolling || m.stage != stagePrompter {
		m.animating = false
		return m, nil
	}
	dt := now.Sub(m.lastFrame)
	if dt < 0 {
		dt = 0
	}
	// A long stall (suspend, debugger) must not teleport the script.
	if dt > 250*time.Millisecond {
		dt = 250 * time.Millisecond
	}
	m.lastFrame = now
	m.controller.Tick(dt)
	m.syncViewport()
	return m, frameTick(m.frameInterval())
}

func (m *model) handleScriptResult(msg scriptResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.stage = stageEditor
		m.errorMessage = msg.err.Error()
		m.infoMessage = "Check the path or URL and try again."
		return m, nil
	}
	m.script = msg.script
	m.rehearsal = msg.guide
	m.editor.SetValue(m.script.Body)
	if m.config.Content != nil {
		m.config.Content.SetText(m.script.Body)
	}
	m.controller.Stop()
	m.surface.SetOffset(0)
	m.stage = stagePrompter
	m.errorMessage = ""
	m.infoMessage = fmt.Sprintf("Loaded %s (%d words). Press space to roll.", m.script.Title, m.script.WordCount())
	m.markContentDirty()
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.stage {
	case stageEditor:
		return m.handleEditorKey(msg)
	case stageStyling:
		return m.handleStylingKey(msg)
	case stagePrompter:
		return m.handlePrompterKey(msg)
	case stageLoading:
		if msg.Type == tea.KeyEsc {
			m.stage = stageEditor
			m.infoMessage = "Load canceled in the UI; the download may still finish."
		}
		return m, nil
	}
	return m, nil
}

func (m *model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.urlEntry {
		switch msg.Type {
		case tea.KeyEsc:
			m.urlEntry = false
			m.urlInput.SetValue("")
			m.urlInput.Blur()
			m.editor.Focus()
			return m, nil
		case tea.KeyEnter:
			url := strings.TrimSpace(m.urlInput.Value())
			if url == "" {
				return m, nil
			}
			m.urlEntry = false
			m.urlInput.SetValue("")
			m.urlInput.Blur()
			m.stage = stageLoading
			m.infoMessage = fmt.Sprintf("Fetching %s…", url)
			return m, tea.Batch(m.jobs.Start(jobKindFetch, fetchScriptJob(url, m.controller.Speed())), m.spinner.Tick)
		}
		var cmd tea.Cmd
		m.urlInput, cmd = m.urlInput.Update(msg)
		return m, cmd
	}

	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyTab:
		m.commitEditorText()
		m.switchStage(stageStyling)
		return m, nil
	case tea.KeyCtrlO:
		m.urlEntry = true
		m.urlInput.Focus()
		m.editor.Blur()
		return m, textinput.Blink
	case tea.KeyCtrlE:
		m.commitEditorText()
		dir := m.config.Settings.DataDir
		if dir == "" {
			dir = "."
		}
		m.infoMessage = "Exporting script…"
		return m, m.jobs.Start(jobKindExport, exportScriptJob(dir, m.script))
	case tea.KeyCtrlG:
		m.guideVisible = !m.guideVisible
		if m.guideVisible && len(m.rehearsal) == 0 {
			m.commitEditorText()
			m.rehearsal = rehearsalSteps(m.script, m.controller.Speed())
		}
		return m, nil
	case tea.KeyCtrlB:
		if err := clipboard.WriteAll(m.editor.Value()); err != nil {
			m.errorMessage = fmt.Sprintf("clipboard: %v", err)
		} else {
			m.infoMessage = "Script copied to clipboard."
		}
		return m, nil
	case tea.KeyCtrlP:
		pasted, err := clipboard.ReadAll()
		if err != nil {
			m.errorMessage = fmt.Sprintf("clipboard: %v", err)
			return m, nil
		}
		m.editor.InsertString(pasted)
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *model) handleStylingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	store := m.config.Styling
	switch msg.Type {
	case tea.KeyEsc:
		m.switchStage(stageEditor)
		return m, nil
	case tea.KeyTab:
		m.switchStage(stagePrompter)
		return m, nil
	case tea.KeyUp:
		if m.fieldCursor > 0 {
			m.fieldCursor--
		}
		return m, nil
	case tea.KeyDown:
		if m.fieldCursor < fieldCount-1 {
			m.fieldCursor++
		}
		return m, nil
	case tea.KeyLeft:
		m.adjustField(-1)
		return m, nil
	case tea.KeyRight:
		m.adjustField(1)
		return m, nil
	case tea.KeyCtrlR:
		if store != nil && store.CanRedo() {
			store.Redo()
			m.infoMessage = "Redid styling change."
			m.markContentDirty()
		}
		return m, nil
	}

	switch msg.String() {
	case "u":
		if store != nil && store.CanUndo() {
			store.Undo()
			m.infoMessage = "Undid styling change."
			m.markContentDirty()
		}
		return m, nil
	case "x":
		if store != nil {
			store.ClearHistory()
			m.infoMessage = "Styling history cleared."
		}
		return m, nil
	case "R":
		if store != nil {
			store.Reset(config.Default())
			m.infoMessage = "Styling reset to defaults."
			m.markContentDirty()
		}
		return m, nil
	case "d":
		m.devices.Enabled = !m.devices.Enabled
		prefs.SaveDevicePrefs(m.config.Sink, m.devices)
		return m, nil
	case "G":
		m.devices.GridConfig = nextInCycle(gridConfigs, m.devices.GridConfig)
		prefs.SaveDevicePrefs(m.config.Sink, m.devices)
		return m, nil
	case "o":
		if len(m.devices.DeviceOrder) > 1 {
			m.devices.DeviceOrder = append(m.devices.DeviceOrder[1:], m.devices.DeviceOrder[0])
			prefs.SaveDevicePrefs(m.config.Sink, m.devices)
		}
		return m, nil
	case "1", "2", "3", "4", "5":
		idx := int(msg.String()[0] - '1')
		if idx < len(prefs.DeviceRegistry) {
			m.toggleDevice(prefs.DeviceRegistry[idx])
			prefs.SaveDevicePrefs(m.config.Sink, m.devices)
		}
		return m, nil
	case "?":
		m.helpVisible = !m.helpVisible
		return m, nil
	}
	return m, nil
}

func (m *model) handlePrompterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.controller.Stop()
		m.switchStage(stageEditor)
		return m, nil
	case tea.KeyTab:
		m.controller.Stop()
		m.switchStage(stageStyling)
		return m, nil
	case tea.KeySpace:
		return m.toggleScroll()
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.surface.AdoptViewportOffset()
		m.controller.Observe()
		m.syncViewport()
		return m, cmd
	}

	switch msg.String() {
	case " ":
		return m.toggleScroll()
	case "+", "=":
		m.setSpeed(m.controller.Speed() + scroll.SpeedStep)
		return m, nil
	case "-", "_":
		m.setSpeed(m.controller.Speed() - scroll.SpeedStep)
		return m, nil
	case "m":
		if m.config.UI != nil {
			m.config.UI.SetMirrored(!m.config.UI.State().Mirrored)
		}
		m.markContentDirty()
		m.syncViewport()
		return m, nil
	case "p":
		if m.config.UI != nil {
			m.config.UI.SetPanelVisible(!m.config.UI.State().PanelVisible)
		}
		return m, nil
	case "[":
		m.jumpSlide(-1)
		return m, nil
	case "]":
		m.jumpSlide(1)
		return m, nil
	case "g":
		m.surface.SetOffset(0)
		m.controller.Observe()
		m.syncViewport()
		return m, nil
	case "G":
		m.surface.SetOffset(m.surface.ContentHeight())
		m.controller.Observe()
		m.syncViewport()
		return m, nil
	case "?":
		m.helpVisible = !m.helpVisible
		return m, nil
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) toggleScroll() (tea.Model, tea.Cmd) {
	m.controller.Toggle()
	playing := m.controller.State() == scroll.StateScrolling
	if m.config.Playback != nil {
		m.config.Playback.SetPlaying(playing)
	}
	if playing && !m.animating {
		m.animating = true
		m.lastFrame = time.Now()
		return m, frameTick(m.frameInterval())
	}
	return m, nil
}

func (m *model) setSpeed(v float64) {
	m.controller.SetSpeed(v)
	if m.config.Playback != nil {
		m.config.Playback.SetSpeed(m.controller.Speed())
	}
	m.infoMessage = fmt.Sprintf("Speed %.1f (%d WPM).", m.controller.Speed(), scroll.WPM(m.controller.Speed()))
}

func (m *model) jumpSlide(direction int) {
	if len(m.rendered.slideAnchors) == 0 {
		return
	}
	current := slideIndexAt(m.rendered.slideAnchors, int(m.surface.Offset()))
	target := current + direction
	if target < 0 {
		target = 0
	}
	if target >= len(m.rendered.slideAnchors) {
		target = len(m.rendered.slideAnchors) - 1
	}
	m.surface.SetOffset(float64(m.rendered.slideAnchors[target]))
	m.controller.Observe()
	m.syncViewport()
	m.infoMessage = fmt.Sprintf("Slide %d of %d.", target+1, len(m.rendered.slideAnchors))
}

func (m *model) toggleDevice(device string) {
	for i, enabled := range m.devices.EnabledDeviceTypes {
		if enabled == device {
			m.devices.EnabledDeviceTypes = append(m.devices.EnabledDeviceTypes[:i], m.devices.EnabledDeviceTypes[i+1:]...)
			return
		}
	}
	m.devices.EnabledDeviceTypes = append(m.devices.EnabledDeviceTypes, device)
}

func (m *model) adjustField(direction int) {
	store := m.config.Styling
	if store == nil {
		return
	}
	cfg := store.Current()
	switch m.fieldCursor {
	case fieldFontSize:
		size := clampInt(cfg.Typography.FontSize+direction*2, 12, 120)
		store.SetTypography(config.TypographyPatch{FontSize: &size})
	case fieldFontWeight:
		weight := clampInt(cfg.Typography.FontWeight+direction*100, 100, 900)
		store.SetTypography(config.TypographyPatch{FontWeight: &weight})
	case fieldLetterSpacing:
		spacing := clampFloat(cfg.Typography.LetterSpacing+float64(direction)*0.5, 0, 8)
		store.SetTypography(config.TypographyPatch{LetterSpacing: &spacing})
	case fieldLineHeight:
		height := clampFloat(cfg.Typography.LineHeight+float64(direction)*0.2, 1, 3)
		store.SetTypography(config.TypographyPatch{LineHeight: &height})
	case fieldTextTransform:
		transform := cycleBy(textTransforms, cfg.Typography.TextTransform, direction)
		store.SetTypography(config.TypographyPatch{TextTransform: &transform})
	case fieldPrimaryColor:
		color := cycleBy(primaryPalette, cfg.Colors.Primary, direction)
		store.SetColors(config.ColorsPatch{Primary: &color})
	case fieldGradient:
		enabled := !cfg.Colors.GradientEnabled
		store.SetColors(config.ColorsPatch{GradientEnabled: &enabled})
	case fieldTextAlign:
		align := cycleBy(textAligns, cfg.Layout.TextAlign, direction)
		store.SetLayout(config.LayoutPatch{TextAlign: &align})
	case fieldColumnCount:
		count := clampInt(cfg.Layout.ColumnCount+direction, 1, 3)
		store.SetLayout(config.LayoutPatch{ColumnCount: &count})
	case fieldTextAreaWidth:
		width := clampInt(cfg.Layout.TextAreaWidth+direction*5, 30, 100)
		store.SetLayout(config.LayoutPatch{TextAreaWidth: &width})
	case fieldWordHighlight:
		highlight := !cfg.Animations.WordHighlight
		store.SetAnimations(config.AnimationsPatch{WordHighlight: &highlight})
	case fieldAutoScrollSpeed:
		speed := clampFloat(cfg.Animations.AutoScrollSpeed+float64(direction)*5, 0, 100)
		store.SetAnimations(config.AnimationsPatch{AutoScrollSpeed: &speed})
	}
	m.markContentDirty()
}

func (m *model) commitEditorText() {
	text := m.editor.Value()
	m.script.SetBody(text)
	if m.config.Content != nil {
		m.config.Content.SetText(text)
	}
	m.markContentDirty()
}

func (m *model) switchStage(next stage) {
	m.stage = next
	m.errorMessage = ""
	switch next {
	case stageEditor:
		m.editor.Focus()
		m.setUIMode("edit")
	case stageStyling:
		m.editor.Blur()
		m.setUIMode("style")
		m.infoMessage = "←/→ adjusts, u undoes, Ctrl+R redoes, x clears history."
	case stagePrompter:
		m.editor.Blur()
		m.setUIMode("prompt")
		m.syncViewport()
		m.infoMessage = "Space starts the roll; +/- trims speed."
	}
}

func (m *model) setUIMode(mode string) {
	if m.config.UI != nil {
		m.config.UI.SetMode(mode)
	}
}

func (m *model) markContentDirty() {
	m.contentDirty = true
}

func (m *model) refreshContentIfDirty() {
	if !m.contentDirty {
		return
	}
	m.contentDirty = false
	cfg := config.Default()
	if m.config.Styling != nil {
		cfg = m.config.Styling.Current()
	}
	m.styles = configStyles(cfg)
	m.rendered = renderScript(m.script.Slides(), m.styles, m.layout.viewportWidth, m.mirrored())
	m.surface.SetContentLines(len(m.rendered.lines))
}

// syncViewport pushes the rendered content and the surface offset into the
// viewport, re-styling so the highlight tracks the read line.
func (m *model) syncViewport() {
	m.refreshContentIfDirty()
	focus := int(m.surface.Offset()) + m.viewport.Height/2
	if focus >= len(m.rendered.lines) {
		focus = len(m.rendered.lines) - 1
	}
	m.viewport.SetContent(styleLines(m.rendered.lines, m.styles, focus))
	m.viewport.SetYOffset(int(m.surface.Offset()))
}

func (m *model) mirrored() bool {
	if m.config.UI == nil {
		return false
	}
	return m.config.UI.State().Mirrored
}

func (m *model) frameInterval() time.Duration {
	rate := m.config.Settings.FrameRate
	if rate <= 0 {
		rate = 30
	}
	return time.Second / time.Duration(rate)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func nextInCycle(options []string, current string) string {
	return cycleBy(options, current, 1)
}

func cycleBy(options []string, current string, direction int) string {
	if len(options) == 0 {
		return current
	}
	idx := 0
	for i, option := range options {
		if option == current {
			idx = i
			break
		}
	}
	idx = (idx + direction + len(options)) % len(options)
	return options[idx]
}
