package site

import (
	_ "embed"
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sorteos-rd/sorteos-cli/internal/scrape"
)

//go:embed sites.yaml
var defaultTable []byte

// Table is the externally-supplied provider configuration: one shared
// selector set plus per-site title vocabularies.
type Table struct {
	BaseURL   string           `yaml:"base_url"`
	Selectors scrape.Selectors `yaml:"selectors"`
	Sites     []Spec           `yaml:"sites"`
}

// Spec is one provider page entry in the table.
type Spec struct {
	Key      string          `yaml:"key"`
	Path     string          `yaml:"path"`
	Provider string          `yaml:"provider"`
	Titles   scrape.TitleMap `yaml:"titles"`
}

// LoadTable reads a site table from path, or the embedded default table
// when path is empty.
func LoadTable(path string) (*Table, error) {
	raw := defaultTable
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, eris.Wrapf(err, "site: read table %s", path)
		}
		raw = b
	}

	var t Table
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, eris.Wrap(err, "site: parse table")
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *Table) validate() error {
	if t.BaseURL == "" {
		return eris.New("site: table missing base_url")
	}
	if len(t.Selectors.Cards) == 0 {
		return eris.New("site: table missing card selectors")
	}
	if len(t.Sites) == 0 {
		return eris.New("site: table has no sites")
	}
	for _, s := range t.Sites {
		switch {
		case s.Key == "":
			return eris.New("site: table entry missing key")
		case s.Path == "":
			return eris.Errorf("site %s: missing path", s.Key)
		case s.Provider == "":
			return eris.Errorf("site %s: missing provider", s.Key)
		case len(s.Titles) == 0:
			return eris.Errorf("site %s: empty title map", s.Key)
		}
	}
	return nil
}

// BuildRegistry constructs the registry of page adapters from the table.
func BuildRegistry(t *Table) (*Registry, error) {
	reg := NewRegistry()
	for _, spec := range t.Sites {
		s := &pageSite{
			key:       spec.Key,
			url:       t.BaseURL + spec.Path,
			provider:  spec.Provider,
			titles:    spec.Titles,
			selectors: t.Selectors,
		}
		if err := reg.Register(s); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
