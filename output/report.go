package output

import (
	"github.com/nj-eka/LetterStatsGo/regs"
)

const DefaultTotalLabel = "ИТОГО"

const (
	TitleFull     = "Полная статистика"
	TitleFiltered = "Статистика после фильтрации"
)

type Block struct {
	Name  string
	Stats regs.Stats
}

type Section struct {
	Title  string
	Blocks []Block
}

type Report struct {
	Sections []Section
}

// document is the serializable form of a Report with entries already sorted.
type document struct {
	Sections []documentSection `json:"sections" yaml:"sections"`
}

type documentSection struct {
	Title  string          `json:"title" yaml:"title"`
	Blocks []documentBlock `json:"blocks" yaml:"blocks"`
}

type documentBlock struct {
	Name    string          `json:"name" yaml:"name"`
	Entries []documentEntry `json:"entries" yaml:"entries"`
	Total   int             `json:"total" yaml:"total"`
}

type documentEntry struct {
	Token string `json:"token" yaml:"token"`
	Count int    `json:"count" yaml:"count"`
}

func newDocument(report Report) document {
	doc := document{Sections: make([]documentSection, 0, len(report.Sections))}
	for _, section := range report.Sections {
		ds := documentSection{Title: section.Title, Blocks: make([]documentBlock, 0, len(section.Blocks))}
		for _, block := range section.Blocks {
			pairs := block.Stats.Sorted()
			db := documentBlock{Name: block.Name, Entries: make([]documentEntry, 0, len(pairs)), Total: regs.Total(pairs)}
			for _, cp := range pairs {
				db.Entries = append(db.Entries, documentEntry{Token: cp.Key, Count: cp.Count})
			}
			ds.Blocks = append(ds.Blocks, db)
		}
		doc.Sections = append(doc.Sections, ds)
	}
	return doc
}
