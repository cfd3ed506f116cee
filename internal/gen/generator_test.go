package gen

import (
	"go/format"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enumtab/internal/catalog"
)

func colorDef() catalog.EnumDef {
	return catalog.EnumDef{
		Name:    "color",
		Search:  "linear",
		Match:   "exact",
		Unknown: "sentinel",
		Entries: []catalog.EntryDef{
			{Value: 1, Name: "Red"},
			{Value: 2, Name: "Green"},
			{Value: 3, Name: "Blue"},
		},
	}
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	file, err := Generate(colorDef(), "colors")
	require.NoError(t, err)

	assert.Equal(t, "color_enum.go", file.Filename)

	src := string(file.Content)

	spew.Dump(file)

	assert.Contains(t, src, "// Code generated by enumtab gen. DO NOT EDIT.")
	assert.Contains(t, src, "package colors")
	assert.Contains(t, src, `import "enumtab/enum"`)
	// gofmt aligns the shorter names to ColorGreen, hence the single check
	// for the longest identifier and looser checks for the rest.
	assert.Contains(t, src, "ColorGreen uint64 = 2")
	assert.Regexp(t, `ColorRed\s+uint64 = 1`, src)
	assert.Regexp(t, `ColorBlue\s+uint64 = 3`, src)
	assert.Contains(t, src, "var colorEntries = []enum.Entry[uint64]{")
	assert.Contains(t, src, `{Value: ColorGreen, Name: "Green"},`)
	assert.Contains(t, src, "var ColorTable = enum.New(colorEntries,")
	assert.Contains(t, src, "enum.LinearSearch[uint64]{}")
	assert.Contains(t, src, "enum.CaseSensitiveSearch[uint64]{}")
	assert.Contains(t, src, "enum.ReturnSentinel[uint64]{}")

	// Output must already be gofmt-clean.
	formatted, err := format.Source(file.Content)
	require.NoError(t, err)
	assert.Equal(t, file.Content, formatted)
}

func TestGenerateStrategyExpressions(t *testing.T) {
	t.Parallel()

	def := colorDef()
	def.Search = "sorted"
	def.Match = "fold"
	def.Unknown = "fallback"
	def.Fallback = &catalog.EntryDef{Value: 0, Name: "Unknown"}

	file, err := Generate(def, "colors")
	require.NoError(t, err)

	src := string(file.Content)
	assert.Contains(t, src, "enum.SortedSearch[uint64]{}")
	assert.Contains(t, src, "enum.CaseInsensitiveSearch[uint64]{}")
	assert.Contains(t, src, `enum.Fallback[uint64]{Entry: enum.Entry[uint64]{Value: 0, Name: "Unknown"}}`)
}

func TestGenerateIdentifiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		enumName string
		expected string
		wantErr  bool
	}{
		{"simple", "color", "Color", false},
		{"snake case", "http_status", "HttpStatus", false},
		{"kebab case", "log-level", "LogLevel", false},
		{"spaces", "log level", "LogLevel", false},
		{"digits inside", "mode2", "Mode2", false},
		{"leading digit", "2fast", "", true},
		{"only separators", "--", "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := exportIdent(tt.enumName)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGenerateBadEntryName(t *testing.T) {
	t.Parallel()

	def := colorDef()
	def.Entries = append(def.Entries, catalog.EntryDef{Value: 4, Name: "???"})

	_, err := Generate(def, "colors")
	assert.Error(t, err)
}

func TestGenerateIdentifierCollision(t *testing.T) {
	t.Parallel()

	// Legal under exact matching, but both names become ColorRed.
	def := colorDef()
	def.Entries = append(def.Entries, catalog.EntryDef{Value: 4, Name: "red"})

	_, err := Generate(def, "colors")
	assert.ErrorContains(t, err, "same identifier")
}

func TestGenerateAll(t *testing.T) {
	t.Parallel()

	cf := &catalog.CatalogFile{
		Version: "1",
		Enums:   []catalog.EnumDef{colorDef()},
	}

	files, err := GenerateAll(cf, "colors")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "color_enum.go", files[0].Filename)
}

func TestFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		expected string
	}{
		{"color", "color_enum.go"},
		{"http-status", "http_status_enum.go"},
		{"Log Level", "log_level_enum.go"},
	}

	for _, tt := range tests {
		if got := fileName(tt.in); got != tt.expected {
			t.Errorf("fileName(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}

func TestWriteFiles(t *testing.T) {
	t.Parallel()

	file, err := Generate(colorDef(), "colors")
	require.NoError(t, err)

	dir := t.TempDir() + "/generated"
	require.NoError(t, WriteFiles([]GeneratedFile{file}, dir))

	assert.FileExists(t, dir+"/color_enum.go")
}
