package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"
	"unicode"

	"enumtab/internal/catalog"
)

// GeneratedFile is one generated Go source file.
type GeneratedFile struct {
	Filename string
	Content  []byte
}

// entryData is the template view of one enum entry.
type entryData struct {
	Ident string
	Value uint64
	Name  string
}

// enumData is the template view of one enum definition.
type enumData struct {
	Package     string
	EnumName    string
	TypeName    string
	EntriesVar  string
	TableVar    string
	Entries     []entryData
	SearchExpr  string
	MatchExpr   string
	UnknownExpr string
}

// GenerateAll generates one file per enum in the catalog.
// The catalog should have passed validation first; generation reports only
// the errors validation cannot catch (names that form no Go identifier).
func GenerateAll(cf *catalog.CatalogFile, pkg string) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, 0, len(cf.Enums))

	for _, def := range cf.Enums {
		file, err := Generate(def, pkg)
		if err != nil {
			return nil, fmt.Errorf("enum %s: %w", def.Name, err)
		}

		files = append(files, file)
	}

	return files, nil
}

// Generate generates the source file for a single enum definition.
func Generate(def catalog.EnumDef, pkg string) (GeneratedFile, error) {
	data, err := buildEnumData(def, pkg)
	if err != nil {
		return GeneratedFile{}, err
	}

	var buf bytes.Buffer
	if err := enumTemplate.Execute(&buf, data); err != nil {
		return GeneratedFile{}, fmt.Errorf("executing template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return GeneratedFile{}, fmt.Errorf("formatting generated source: %w", err)
	}

	return GeneratedFile{
		Filename: fileName(def.Name),
		Content:  src,
	}, nil
}

// buildEnumData assembles the template view for one definition.
func buildEnumData(def catalog.EnumDef, pkg string) (*enumData, error) {
	typeName, err := exportIdent(def.Name)
	if err != nil {
		return nil, fmt.Errorf("enum name %q: %w", def.Name, err)
	}

	entries := make([]entryData, 0, len(def.Entries))
	seen := map[string]string{}

	for _, e := range def.Entries {
		ident, err := exportIdent(e.Name)
		if err != nil {
			return nil, fmt.Errorf("entry name %q: %w", e.Name, err)
		}

		// Names that differ only in case or separators are legal in the
		// catalog but collide as Go constants.
		if prev, ok := seen[ident]; ok {
			return nil, fmt.Errorf("entry names %q and %q map to the same identifier %s", prev, e.Name, ident)
		}

		seen[ident] = e.Name

		entries = append(entries, entryData{
			Ident: typeName + ident,
			Value: e.Value,
			Name:  e.Name,
		})
	}

	data := &enumData{
		Package:     pkg,
		EnumName:    def.Name,
		TypeName:    typeName,
		EntriesVar:  unexport(typeName) + "Entries",
		TableVar:    typeName + "Table",
		Entries:     entries,
		SearchExpr:  "enum.LinearSearch[uint64]{}",
		MatchExpr:   "enum.CaseSensitiveSearch[uint64]{}",
		UnknownExpr: "enum.ReturnSentinel[uint64]{}",
	}

	if catalog.SearchKindOf(def.Search) == catalog.SearchSorted {
		data.SearchExpr = "enum.SortedSearch[uint64]{}"
	}

	if catalog.MatchKindOf(def.Match) == catalog.MatchFold {
		data.MatchExpr = "enum.CaseInsensitiveSearch[uint64]{}"
	}

	if catalog.UnknownKindOf(def.Unknown) == catalog.UnknownFallback && def.Fallback != nil {
		data.UnknownExpr = fmt.Sprintf(
			"enum.Fallback[uint64]{Entry: enum.Entry[uint64]{Value: %d, Name: %q}}",
			def.Fallback.Value, def.Fallback.Name)
	}

	return data, nil
}

// exportIdent derives an exported Go identifier from a catalog name:
// non-alphanumeric runes split words, each word is title-cased.
func exportIdent(name string) (string, error) {
	var b strings.Builder
	upperNext := true

	for _, r := range name {
		switch {
		case unicode.IsLetter(r):
			if upperNext {
				r = unicode.ToUpper(r)
				upperNext = false
			}

			b.WriteRune(r)
		case unicode.IsDigit(r):
			if b.Len() == 0 {
				return "", fmt.Errorf("cannot form an identifier from a leading digit")
			}

			b.WriteRune(r)
			upperNext = true
		default:
			upperNext = true
		}
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("cannot form an identifier")
	}

	return b.String(), nil
}

func unexport(ident string) string {
	return strings.ToLower(ident[:1]) + ident[1:]
}

// fileName derives the generated file name: lower-cased enum name with
// word separators collapsed to underscores.
func fileName(name string) string {
	var b strings.Builder

	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else if b.Len() > 0 && !strings.HasSuffix(b.String(), "_") {
			b.WriteRune('_')
		}
	}

	return strings.TrimSuffix(b.String(), "_") + "_enum.go"
}

var enumTemplate = template.Must(template.New("enum").Parse(`// Code generated by enumtab gen. DO NOT EDIT.

package {{.Package}}

import "enumtab/enum"

// {{.TypeName}} values.
const (
{{- range .Entries}}
	{{.Ident}} uint64 = {{.Value}}
{{- end}}
)

// {{.EntriesVar}} backs {{.TableVar}}; treat it as read-only.
var {{.EntriesVar}} = []enum.Entry[uint64]{
{{- range .Entries}}
	{Value: {{.Ident}}, Name: {{printf "%q" .Name}}},
{{- end}}
}

// {{.TableVar}} resolves {{.EnumName}} values and names.
var {{.TableVar}} = enum.New({{.EntriesVar}},
	{{.SearchExpr}},
	{{.MatchExpr}},
	{{.UnknownExpr}},
)
`))
