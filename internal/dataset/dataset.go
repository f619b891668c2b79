// Package dataset extracts the hidden JSON datasets Threads embeds in
// server-rendered pages.
package dataset

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/orgball2608/threads-parser-telegram-bot/pkg/logger"
)

// payloadSelector matches the script blocks Meta uses to ship
// server-rendered application state.
const payloadSelector = `script[type="application/json"][data-sjs]`

// scheduledServerJSMarker appears in every payload block that carries
// render-scheduling state. Blocks without it are static resources.
const scheduledServerJSMarker = `"ScheduledServerJS"`

type Scanner struct {
	markerKey string
	logger    logger.Logger

	// parse is swapped out in tests to count parser invocations.
	parse func(raw string) (any, error)
}

func NewScanner(markerKey string, log logger.Logger) *Scanner {
	return &Scanner{
		markerKey: markerKey,
		logger:    log.WithComponent("DatasetScanner"),
		parse:     parseJSON,
	}
}

func parseJSON(raw string) (any, error) {
	var blob any
	if err := json.Unmarshal([]byte(raw), &blob); err != nil {
		return nil, err
	}
	return blob, nil
}

// Scan returns the parsed JSON datasets embedded in documentHTML, in
// document order. Blocks are parsed only when they contain both the
// scheduling marker and the marker key literal; blocks that fail to
// parse are skipped, never fatal.
func (s *Scanner) Scan(documentHTML string) ([]any, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(documentHTML))
	if err != nil {
		return nil, fmt.Errorf("could not parse document: %w", err)
	}

	var blobs []any
	doc.Find(payloadSelector).Each(func(i int, sel *goquery.Selection) {
		raw := sel.Text()
		if !strings.Contains(raw, scheduledServerJSMarker) {
			return
		}
		if !strings.Contains(raw, s.markerKey) {
			return
		}

		blob, err := s.parse(raw)
		if err != nil {
			s.logger.Warn("Skipping dataset that is not valid JSON", "index", i, "error", err)
			return
		}
		blobs = append(blobs, blob)
	})

	return blobs, nil
}
