// Package publish owns the run artifacts: the current snapshot
// (data.json), the per-day history copies under feed/, and the latest
// alias. Writes are temp-file-and-rename so no artifact is ever observed
// half-written; change detection makes reruns idempotent.
package publish

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sorteos-rd/sorteos-cli/internal/model"
)

const (
	snapshotFile = "data.json"
	feedDir      = "feed"
	latestFile   = "latest.json"
	debugDir     = "debug"
)

// Publisher writes run artifacts under a single output root.
type Publisher struct {
	outDir string
}

// New creates a Publisher rooted at outDir.
func New(outDir string) *Publisher {
	return &Publisher{outDir: outDir}
}

// fingerprintable is the hashed view of a payload. last_updated is
// excluded on purpose: it changes every run and would defeat change
// detection.
type fingerprintable struct {
	Source string       `json:"source"`
	Draws  []model.Draw `json:"draws"`
}

// Fingerprint returns a content hash of the payload's draws and source.
// encoding/json emits struct fields in declaration order, so the
// serialization is deterministic.
func Fingerprint(p model.Payload) string {
	b, err := json.Marshal(fingerprintable{Source: p.Source, Draws: p.Draws})
	if err != nil {
		// Payload is plain strings and slices; this cannot happen.
		return ""
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// Publish compares payload against the previous snapshot and, when the
// content differs, writes data.json, feed/<runDate>.json and
// feed/latest.json. It reports whether anything was written. A corrupt or
// missing previous snapshot counts as an empty baseline and forces a
// write.
func (p *Publisher) Publish(payload model.Payload, runDate string) (bool, error) {
	prev := p.readPrevious()
	if Fingerprint(prev) == Fingerprint(payload) {
		return false, nil
	}

	if err := writeJSON(filepath.Join(p.outDir, snapshotFile), payload); err != nil {
		return false, err
	}
	if err := writeJSON(filepath.Join(p.outDir, feedDir, runDate+".json"), payload); err != nil {
		return false, err
	}
	if err := writeJSON(filepath.Join(p.outDir, feedDir, latestFile), payload); err != nil {
		return false, err
	}
	return true, nil
}

// readPrevious loads the prior snapshot. Any read or parse failure is
// treated as "no previous snapshot".
func (p *Publisher) readPrevious() model.Payload {
	var prev model.Payload
	b, err := os.ReadFile(filepath.Join(p.outDir, snapshotFile))
	if err != nil {
		return model.Payload{}
	}
	if err := json.Unmarshal(b, &prev); err != nil {
		zap.L().Warn("previous snapshot unreadable, using empty baseline", zap.Error(err))
		return model.Payload{}
	}
	return prev
}

// WriteDebugHTML dumps raw markup under debug/<key>.html for diagnosing
// zero-result runs. Not part of the stable artifact contract.
func (p *Publisher) WriteDebugHTML(key, html string) error {
	dir := filepath.Join(p.outDir, debugDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return eris.Wrap(err, "publish: create debug dir")
	}
	path := filepath.Join(dir, key+".html")
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return eris.Wrapf(err, "publish: write %s", path)
	}
	return nil
}

// writeJSON pretty-prints v to path atomically. Non-ASCII characters are
// kept literal so the artifacts stay human-diffable.
func writeJSON(path string, v any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return eris.Wrapf(err, "publish: create %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*.json")
	if err != nil {
		return eris.Wrap(err, "publish: create temp file")
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	enc := json.NewEncoder(tmp)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		_ = tmp.Close()
		return eris.Wrapf(err, "publish: encode %s", path)
	}
	if err := tmp.Close(); err != nil {
		return eris.Wrapf(err, "publish: close temp for %s", path)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return eris.Wrapf(err, "publish: replace %s", path)
	}
	return nil
}
