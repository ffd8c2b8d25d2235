package publish

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sorteos-rd/sorteos-cli/internal/model"
)

func samplePayload(lastUpdated string) model.Payload {
	return model.Payload{
		Source:      "https://loteriasdominicanas.com",
		LastUpdated: lastUpdated,
		Draws: []model.Draw{
			model.NewDraw("Lotería Nacional", "Gana Más", nil, "2025-09-07", []string{"4", "12", "33"}),
		},
	}
}

func TestPublish_WritesAllArtifacts(t *testing.T) {
	out := t.TempDir()
	p := New(out)

	wrote, err := p.Publish(samplePayload("2025-09-07T20:00:00Z"), "2025-09-07")
	require.NoError(t, err)
	assert.True(t, wrote)

	for _, rel := range []string{"data.json", "feed/2025-09-07.json", "feed/latest.json"} {
		b, err := os.ReadFile(filepath.Join(out, rel))
		require.NoError(t, err, rel)

		var got model.Payload
		require.NoError(t, json.Unmarshal(b, &got), rel)
		assert.Equal(t, "https://loteriasdominicanas.com", got.Source, rel)
		require.Len(t, got.Draws, 1, rel)
		assert.Equal(t, "loteria-nacional", got.Draws[0].ProviderID, rel)
	}
}

func TestPublish_NonASCIILiteral(t *testing.T) {
	out := t.TempDir()
	p := New(out)

	_, err := p.Publish(samplePayload("2025-09-07T20:00:00Z"), "2025-09-07")
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(out, "data.json"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "Lotería Nacional")
	// No \u escape sequence: the rune is written literally.
	assert.NotContains(t, string(b), `\u00ed`)
}

func TestPublish_IdempotentSecondRun(t *testing.T) {
	out := t.TempDir()
	p := New(out)

	wrote, err := p.Publish(samplePayload("2025-09-07T20:00:00Z"), "2025-09-07")
	require.NoError(t, err)
	require.True(t, wrote)

	info1, err := os.Stat(filepath.Join(out, "data.json"))
	require.NoError(t, err)

	// Same draws, new timestamp: still no change.
	wrote, err = p.Publish(samplePayload("2025-09-07T21:00:00Z"), "2025-09-07")
	require.NoError(t, err)
	assert.False(t, wrote)

	info2, err := os.Stat(filepath.Join(out, "data.json"))
	require.NoError(t, err)
	assert.Equal(t, info1.ModTime(), info2.ModTime())
}

func TestPublish_ChangedDrawsRewrite(t *testing.T) {
	out := t.TempDir()
	p := New(out)

	_, err := p.Publish(samplePayload("2025-09-07T20:00:00Z"), "2025-09-07")
	require.NoError(t, err)

	next := samplePayload("2025-09-08T20:00:00Z")
	next.Draws[0].Numbers = []string{"01", "02", "03"}
	wrote, err := p.Publish(next, "2025-09-08")
	require.NoError(t, err)
	assert.True(t, wrote)

	_, err = os.Stat(filepath.Join(out, "feed", "2025-09-08.json"))
	require.NoError(t, err)
}

func TestPublish_CorruptPreviousForcesWrite(t *testing.T) {
	out := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(out, "data.json"), []byte("{not json"), 0o644))

	p := New(out)
	wrote, err := p.Publish(samplePayload("2025-09-07T20:00:00Z"), "2025-09-07")
	require.NoError(t, err)
	assert.True(t, wrote)
}

func TestFingerprint_IgnoresLastUpdated(t *testing.T) {
	a := samplePayload("2025-09-07T20:00:00Z")
	b := samplePayload("2025-09-07T23:59:59Z")
	assert.Equal(t, Fingerprint(a), Fingerprint(b))

	b.Draws[0].Date = "2025-09-08"
	assert.NotEqual(t, Fingerprint(a), Fingerprint(b))
}

func TestWriteDebugHTML(t *testing.T) {
	out := t.TempDir()
	p := New(out)

	require.NoError(t, p.WriteDebugHTML("leidsa", "<html>dump</html>"))
	b, err := os.ReadFile(filepath.Join(out, "debug", "leidsa.html"))
	require.NoError(t, err)
	assert.Equal(t, "<html>dump</html>", string(b))
}
