package dataset

import (
	"fmt"
	"testing"

	"github.com/orgball2608/threads-parser-telegram-bot/pkg/logger"
	"github.com/stretchr/testify/require"
)

func scriptBlock(content string) string {
	return fmt.Sprintf(`<script type="application/json" data-sjs>%s</script>`, content)
}

func TestScanExtractsMatchingBlocksInDocumentOrder(t *testing.T) {
	html := `<html><body>` +
		scriptBlock(`{"ScheduledServerJS": true, "thread_items": [], "order": 1}`) +
		scriptBlock(`{"ScheduledServerJS": true, "thread_items": [], "order": 2}`) +
		`</body></html>`

	s := NewScanner("thread_items", logger.NewNop())
	blobs, err := s.Scan(html)
	require.NoError(t, err)
	require.Len(t, blobs, 2)

	first := blobs[0].(map[string]any)
	second := blobs[1].(map[string]any)
	require.Equal(t, float64(1), first["order"])
	require.Equal(t, float64(2), second["order"])
}

func TestScanIgnoresNonPayloadScripts(t *testing.T) {
	html := `<html><body>` +
		`<script type="text/javascript">var x = {"ScheduledServerJS": 1, "thread_items": []};</script>` +
		`<script type="application/json">{"ScheduledServerJS": 1, "thread_items": []}</script>` +
		scriptBlock(`{"ScheduledServerJS": true, "thread_items": []}`) +
		`</body></html>`

	s := NewScanner("thread_items", logger.NewNop())
	blobs, err := s.Scan(html)
	require.NoError(t, err)
	require.Len(t, blobs, 1)
}

func TestScanPreFilterSkipsParsing(t *testing.T) {
	html := `<html><body>` +
		scriptBlock(`{"ScheduledServerJS": true, "unrelated": []}`) +
		scriptBlock(`{"thread_items": []}`) +
		scriptBlock(`{"ScheduledServerJS": true, "thread_items": []}`) +
		`</body></html>`

	s := NewScanner("thread_items", logger.NewNop())

	parseCalls := 0
	s.parse = func(raw string) (any, error) {
		parseCalls++
		return parseJSON(raw)
	}

	blobs, err := s.Scan(html)
	require.NoError(t, err)
	require.Len(t, blobs, 1)
	// Blocks missing either marker never reach the parser.
	require.Equal(t, 1, parseCalls)
}

func TestScanSkipsInvalidJSON(t *testing.T) {
	html := `<html><body>` +
		scriptBlock(`{"ScheduledServerJS": true, "thread_items": [,,,`) +
		scriptBlock(`{"ScheduledServerJS": true, "thread_items": []}`) +
		`</body></html>`

	s := NewScanner("thread_items", logger.NewNop())
	blobs, err := s.Scan(html)
	require.NoError(t, err)
	require.Len(t, blobs, 1)
}

func TestScanEmptyDocument(t *testing.T) {
	s := NewScanner("thread_items", logger.NewNop())
	blobs, err := s.Scan(`<html><body></body></html>`)
	require.NoError(t, err)
	require.Empty(t, blobs)
}
