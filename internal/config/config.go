package config

import "reflect"

// Configuration is the full set of presentation settings driving how a
// script is rendered in the preview and prompter views. Each sub-section is
// independently patchable; patching one field never disturbs its siblings.
type Configuration struct {
	Typography Typography `json:"typography"`
	Colors     Colors     `json:"colors"`
	Effects    Effects    `json:"effects"`
	Layout     Layout     `json:"layout"`
	Animations Animations `json:"animations"`
}

type Typography struct {
	FontFamily    string  `json:"fontFamily"`
	FontWeight    int     `json:"fontWeight"`
	FontSize      int     `json:"fontSize"`
	LetterSpacing float64 `json:"letterSpacing"`
	LineHeight    float64 `json:"lineHeight"`
	TextTransform string  `json:"textTransform"`
}

type Colors struct {
	Primary         string   `json:"primary"`
	GradientEnabled bool     `json:"gradientEnabled"`
	GradientType    string   `json:"gradientType"`
	GradientStops   []string `json:"gradientStops"`
	GradientAngle   int      `json:"gradientAngle"`
	OutlineColor    string   `json:"outlineColor"`
	GlowColor       string   `json:"glowColor"`
}

type Effects struct {
	Shadow   ShadowEffect   `json:"shadow"`
	Outline  OutlineEffect  `json:"outline"`
	Glow     GlowEffect     `json:"glow"`
	Backdrop BackdropEffect `json:"backdrop"`
}

type ShadowEffect struct {
	Enabled bool `json:"enabled"`
	OffsetX int  `json:"offsetX"`
	OffsetY int  `json:"offsetY"`
	Blur    int  `json:"blur"`
}

type OutlineEffect struct {
	Enabled bool `json:"enabled"`
	Width   int  `json:"width"`
}

type GlowEffect struct {
	Enabled   bool `json:"enabled"`
	Radius    int  `json:"radius"`
	Intensity int  `json:"intensity"`
}

type BackdropEffect struct {
	Enabled bool `json:"enabled"`
	Blur    int  `json:"blur"`
}

type Layout struct {
	MarginX       int    `json:"marginX"`
	MarginY       int    `json:"marginY"`
	Padding       int    `json:"padding"`
	TextAlign     string `json:"textAlign"`
	ColumnCount   int    `json:"columnCount"`
	ColumnGap     int    `json:"columnGap"`
	TextAreaWidth int    `json:"textAreaWidth"`
	TextPosition  string `json:"textPosition"`
}

type Animations struct {
	SmoothScrollDamping float64 `json:"smoothScrollDamping"`
	EntranceType        string  `json:"entranceType"`
	EntranceDuration    float64 `json:"entranceDuration"`
	WordHighlight       bool    `json:"wordHighlight"`
	WordHighlightSpeed  float64 `json:"wordHighlightSpeed"`
	AutoScrollSpeed     float64 `json:"autoScrollSpeed"`
	AutoScrollAccel     bool    `json:"autoScrollAccel"`
}

// Default returns the configuration used before the user has styled anything.
func Default() Configuration {
	return Configuration{
		Typography: Typography{
			FontFamily:    "sans",
			FontWeight:    400,
			FontSize:      40,
			LetterSpacing: 0,
			LineHeight:    1.4,
			TextTransform: "none",
		},
		Colors: Colors{
			Primary:       "#ffffff",
			GradientType:  "linear",
			GradientStops: []string{"#ffffff", "#8ecae6"},
			GradientAngle: 90,
			OutlineColor:  "#000000",
			GlowColor:     "#ffd166",
		},
		Effects: Effects{
			Shadow:  ShadowEffect{OffsetX: 2, OffsetY: 2, Blur: 4},
			Outline: OutlineEffect{Width: 1},
			Glow:    GlowEffect{Radius: 8, Intensity: 50},
		},
		Layout: Layout{
			MarginX:       4,
			MarginY:       1,
			Padding:       1,
			TextAlign:     "left",
			ColumnCount:   1,
			ColumnGap:     4,
			TextAreaWidth: 80,
			TextPosition:  "center",
		},
		Animations: Animations{
			SmoothScrollDamping: 0.8,
			EntranceType:        "fade",
			EntranceDuration:    300,
			WordHighlightSpeed:  1,
			AutoScrollSpeed:     50,
		},
	}
}

// Clone returns a deep copy; snapshots stored in history must never alias
// the live configuration.
func (c Configuration) Clone() Configuration {
	out := c
	out.Colors.GradientStops = append([]string(nil), c.Colors.GradientStops...)
	return out
}

// Equal reports deep equality, used to suppress duplicate history entries.
func (c Configuration) Equal(other Configuration) bool {
	return reflect.DeepEqual(c, other)
}

// TypographyPatch updates a subset of Typography. Nil fields keep the
// current value.
type TypographyPatch struct {
	FontFamily    *string
	FontWeight    *int
	FontSize      *int
	LetterSpacing *float64
	LineHeight    *float64
	TextTransform *string
}

func (p TypographyPatch) apply(t Typography) Typography {
	if p.FontFamily != nil {
		t.FontFamily = *p.FontFamily
	}
	if p.FontWeight != nil {
		t.FontWeight = *p.FontWeight
	}
	if p.FontSize != nil {
		t.FontSize = *p.FontSize
	}
	if p.LetterSpacing != nil {
		t.LetterSpacing = *p.LetterSpacing
	}
	if p.LineHeight != nil {
		t.LineHeight = *p.LineHeight
	}
	if p.TextTransform != nil {
		t.TextTransform = *p.TextTransform
	}
	return t
}

// ColorsPatch updates a subset of Colors. A nil GradientStops keeps the
// current stops.
type ColorsPatch struct {
	Primary         *string
	GradientEnabled *bool
	GradientType    *string
	GradientStops   []string
	GradientAngle   *int
	OutlineColor    *string
	GlowColor       *string
}

func (p ColorsPatch) apply(c Colors) Colors {
	if p.Primary != nil {
		c.Primary = *p.Primary
	}
	if p.GradientEnabled != nil {
		c.GradientEnabled = *p.GradientEnabled
	}
	if p.GradientType != nil {
		c.GradientType = *p.GradientType
	}
	if p.GradientStops != nil {
		c.GradientStops = append([]string(nil), p.GradientStops...)
	}
	if p.GradientAngle != nil {
		c.GradientAngle = *p.GradientAngle
	}
	if p.OutlineColor != nil {
		c.OutlineColor = *p.OutlineColor
	}
	if p.GlowColor != nil {
		c.GlowColor = *p.GlowColor
	}
	return c
}

// EffectsPatch replaces whole effect blocks; each block is small enough that
// per-field patching buys nothing.
type EffectsPatch struct {
	Shadow   *ShadowEffect
	Outline  *OutlineEffect
	Glow     *GlowEffect
	Backdrop *BackdropEffect
}

func (p EffectsPatch) apply(e Effects) Effects {
	if p.Shadow != nil {
		e.Shadow = *p.Shadow
	}
	if p.Outline != nil {
		e.Outline = *p.Outline
	}
	if p.Glow != nil {
		e.Glow = *p.Glow
	}
	if p.Backdrop != nil {
		e.Backdrop = *p.Backdrop
	}
	return e
}

type LayoutPatch struct {
	MarginX       *int
	MarginY       *int
	Padding       *int
	TextAlign     *string
	ColumnCount   *int
	ColumnGap     *int
	TextAreaWidth *int
	TextPosition  *string
}

func (p LayoutPatch) apply(l Layout) Layout {
	if p.MarginX != nil {
		l.MarginX = *p.MarginX
	}
	if p.MarginY != nil {
		l.MarginY = *p.MarginY
	}
	if p.Padding != nil {
		l.Padding = *p.Padding
	}
	if p.TextAlign != nil {
		l.TextAlign = *p.TextAlign
	}
	if p.ColumnCount != nil {
		l.ColumnCount = *p.ColumnCount
	}
	if p.ColumnGap != nil {
		l.ColumnGap = *p.ColumnGap
	}
	if p.TextAreaWidth != nil {
		l.TextAreaWidth = *p.TextAreaWidth
	}
	if p.TextPosition != nil {
		l.TextPosition = *p.TextPosition
	}
	return l
}

type AnimationsPatch struct {
	SmoothScrollDamping *float64
	EntranceType        *string
	EntranceDuration    *float64
	WordHighlight       *bool
	WordHighlightSpeed  *float64
	AutoScrollSpeed     *float64
	AutoScrollAccel     *bool
}

func (p AnimationsPatch) apply(a Animations) Animations {
	if p.SmoothScrollDamping != nil {
		a.SmoothScrollDamping = *p.SmoothScrollDamping
	}
	if p.EntranceType != nil {
		a.EntranceType = *p.EntranceType
	}
	if p.EntranceDuration != nil {
		a.EntranceDuration = *p.EntranceDuration
	}
	if p.WordHighlight != nil {
		a.WordHighlight = *p.WordHighlight
	}
	if p.WordHighlightSpeed != nil {
		a.WordHighlightSpeed = *p.WordHighlightSpeed
	}
	if p.AutoScrollSpeed != nil {
		a.AutoScrollSpeed = *p.AutoScrollSpeed
	}
	if p.AutoScrollAccel != nil {
		a.AutoScrollAccel = *p.AutoScrollAccel
	}
	return a
}
