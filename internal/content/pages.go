// AngelaMos | 2026
// pages.go

package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed pages/*.yaml
var embedded embed.FS

type Section struct {
	Heading string `yaml:"heading" json:"heading"`
	Body    string `yaml:"body"    json:"body"`
}

type Page struct {
	Slug     string    `yaml:"slug"     json:"slug"`
	Title    string    `yaml:"title"    json:"title"`
	Order    int       `yaml:"order"    json:"-"`
	Summary  string    `yaml:"summary"  json:"summary,omitempty"`
	Sections []Section `yaml:"sections" json:"sections"`
}

type Summary struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

// Library is an immutable set of pages, safe for concurrent reads.
type Library struct {
	pages   []Page
	bySlug  map[string]*Page
	summary []Summary
}

// Load reads the pages compiled into the binary.
func Load() (*Library, error) {
	return LoadFS(embedded, "pages")
}

func LoadFS(fsys fs.FS, dir string) (*Library, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read pages dir: %w", err)
	}

	lib := &Library{bySlug: make(map[string]*Page)}

	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".yaml" {
			continue
		}

		page, err := parsePage(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		if want := strings.TrimSuffix(entry.Name(), ".yaml"); page.Slug != want {
			return nil, fmt.Errorf("page %s: slug %q does not match file name", entry.Name(), page.Slug)
		}

		lib.pages = append(lib.pages, page)
	}

	if len(lib.pages) == 0 {
		return nil, errors.New("no content pages found")
	}

	sort.SliceStable(lib.pages, func(i, j int) bool {
		if lib.pages[i].Order != lib.pages[j].Order {
			return lib.pages[i].Order < lib.pages[j].Order
		}
		return lib.pages[i].Slug < lib.pages[j].Slug
	})

	lib.summary = make([]Summary, 0, len(lib.pages))
	for i := range lib.pages {
		p := &lib.pages[i]
		lib.bySlug[p.Slug] = p
		lib.summary = append(lib.summary, Summary{Slug: p.Slug, Title: p.Title})
	}

	return lib, nil
}

func parsePage(fsys fs.FS, name string) (Page, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Page{}, fmt.Errorf("read %s: %w", name, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var page Page
	if err := dec.Decode(&page); err != nil {
		return Page{}, fmt.Errorf("parse %s: %w", name, err)
	}

	if page.Slug == "" || page.Title == "" {
		return Page{}, fmt.Errorf("page %s: slug and title are required", name)
	}
	if page.Sections == nil {
		page.Sections = []Section{}
	}

	return page, nil
}

func (l *Library) List() []Summary {
	return l.summary
}

func (l *Library) Get(slug string) (*Page, bool) {
	p, ok := l.bySlug[slug]
	return p, ok
}
