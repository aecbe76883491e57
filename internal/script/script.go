// Package script models the text a presenter reads: a titled body split into
// slides on "---" separator lines, importable from plain text or PDF files.
package script

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"
)

var extraneousWhitespace = regexp.MustCompile(`[ \t]{2,}`)

// Script is one authored piece of prompter content.
type Script struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// New creates a script with a fresh identity.
func New(title, body string) Script {
	now := time.Now()
	return Script{
		ID:        uuid.New(),
		Title:     title,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetBody replaces the body and bumps UpdatedAt.
func (s *Script) SetBody(body string) {
	if s.Body == body {
		return
	}
	s.Body = body
	s.UpdatedAt = time.Now()
}

// Slides splits the body on lines containing only "---". Empty segments are
// dropped so consecutive separators do not produce blank slides.
func (s Script) Slides() []string {
	var slides []string
	var current []string
	flush := func() {
		segment := strings.TrimSpace(strings.Join(current, "\n"))
		if segment != "" {
			slides = append(slides, segment)
		}
		current = current[:0]
	}
	for _, line := range strings.Split(s.Body, "\n") {
		if strings.TrimSpace(line) == "---" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return slides
}

// WordCount counts whitespace-separated words in the body.
func (s Script) WordCount() int {
	return len(strings.Fields(s.Body))
}

// LoadFile imports a script from disk. PDF files are extracted to plain
// text; anything else is read verbatim. The title comes from the filename.
func LoadFile(path string) (Script, error) {
	var body string
	var err error
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		body, err = extractPDFText(path)
	} else {
		body, err = readTextFile(path)
	}
	if err != nil {
		return Script{}, err
	}
	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return New(title, body), nil
}

func readTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read script: %w", err)
	}
	return normalizeWhitespace(string(data)), nil
}

func extractPDFText(path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	defer file.Close()

	content, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract pdf text: %w", err)
	}

	var builder strings.Builder
	if _, err := io.Copy(&builder, content); err != nil {
		return "", err
	}
	return normalizeWhitespace(builder.String()), nil
}

func normalizeWhitespace(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = extraneousWhitespace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
