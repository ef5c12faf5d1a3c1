package output

import (
	"bufio"
	"fmt"
	"github.com/nj-eka/LetterStatsGo/regs"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v2"
	"io"
	"strings"
)

type Printer interface {
	Print(w io.Writer, report Report) error
}

var Formats = []string{"text", "json", "yaml"}

func NewPrinter(format, totalLabel string) (Printer, error) {
	if totalLabel == "" {
		totalLabel = DefaultTotalLabel
	}
	switch strings.ToLower(format) {
	case "text", "":
		return &textPrinter{totalLabel: totalLabel}, nil
	case "json":
		return &jsonPrinter{}, nil
	case "yaml":
		return &yamlPrinter{}, nil
	}
	return nil, fmt.Errorf("unknown output format: %q (supported: %s)", format, strings.Join(Formats, ", "))
}

// PrintStatistic writes "{token} : {count}" lines in ordinal token order and
// the total line. stats is not modified.
func PrintStatistic(w io.Writer, stats regs.Stats, totalLabel string) error {
	pairs := stats.Sorted()
	for _, cp := range pairs {
		if _, err := fmt.Fprintf(w, "%s : %d\n", cp.Key, cp.Count); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s : %d\n", totalLabel, regs.Total(pairs))
	return err
}

type textPrinter struct {
	totalLabel string
}

func (p *textPrinter) Print(w io.Writer, report Report) error {
	bufOut := bufio.NewWriter(w)
	for i, section := range report.Sections {
		if i > 0 {
			if _, err := bufOut.WriteString("\n"); err != nil {
				return err
			}
		}
		if section.Title != "" {
			if _, err := fmt.Fprintf(bufOut, "%s:\n", section.Title); err != nil {
				return err
			}
		}
		for _, block := range section.Blocks {
			if err := PrintStatistic(bufOut, block.Stats, p.totalLabel); err != nil {
				return err
			}
		}
	}
	return bufOut.Flush()
}

type jsonPrinter struct{}

func (p *jsonPrinter) Print(w io.Writer, report Report) error {
	doc := newDocument(report)
	sections := make([]interface{}, 0, len(doc.Sections))
	for _, section := range doc.Sections {
		blocks := make([]interface{}, 0, len(section.Blocks))
		for _, block := range section.Blocks {
			entries := make([]interface{}, 0, len(block.Entries))
			for _, entry := range block.Entries {
				entries = append(entries, map[string]interface{}{"token": entry.Token, "count": entry.Count})
			}
			blocks = append(blocks, map[string]interface{}{"name": block.Name, "entries": entries, "total": block.Total})
		}
		sections = append(sections, map[string]interface{}{"title": section.Title, "blocks": blocks})
	}
	st, err := structpb.NewStruct(map[string]interface{}{"sections": sections})
	if err != nil {
		return fmt.Errorf("building report failed: %w", err)
	}
	data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshaling report failed: %w", err)
	}
	if _, err = w.Write(append(data, '\n')); err != nil {
		return err
	}
	return nil
}

type yamlPrinter struct{}

func (p *yamlPrinter) Print(w io.Writer, report Report) error {
	data, err := yaml.Marshal(newDocument(report))
	if err != nil {
		return fmt.Errorf("marshaling report failed: %w", err)
	}
	_, err = w.Write(data)
	return err
}
