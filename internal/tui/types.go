package tui

type stage int

const (
	stageEditor stage = iota
	stageLoading
	stageStyling
	stagePrompter
)

const heroTagline = "Write, style, and deliver scripts with Teleprompt."

const (
	minViewportWidth          = 40
	viewportHorizontalPadding = 4
)

// styleField identifies one adjustable row in the styling panel.
type styleField int

const (
	fieldFontSize styleField = iota
	fieldFontWeight
	fieldLetterSpacing
	fieldLineHeight
	fieldTextTransform
	fieldPrimaryColor
	fieldGradient
	fieldTextAlign
	fieldColumnCount
	fieldTextAreaWidth
	fieldWordHighlight
	fieldAutoScrollSpeed
	fieldCount
)

var textTransforms = []string{"none", "uppercase", "lowercase", "capitalize"}

var textAligns = []string{"left", "center", "right"}

var primaryPalette = []string{"#ffffff", "#ffd166", "#8ecae6", "#a3be8c", "#f4a261"}

var gridConfigs = []string{"1x", "2x", "3x"}

const urlPlaceholder = "https://example.com/scripts/keynote.txt"
