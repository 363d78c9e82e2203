package extract_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/numex/pkg/extract"
	"github.com/leapstack-labs/numex/pkg/grammar"
)

const templateYAML = `head:
  - "@!.title ~"
body:
  - "~ #..g"
tail:
  - "@!.total #..d"
`

func TestTemplateLoad(t *testing.T) {
	tmpl, err := extract.Load(strings.NewReader(templateYAML))
	require.NoError(t, err)

	assert.Equal(t, []string{"@!.title ~"}, tmpl.Head)
	assert.Equal(t, []string{"~ #..g"}, tmpl.Body)
	assert.Equal(t, []string{"@!.total #..d"}, tmpl.Tail)
}

func TestTemplateLoadUnknownField(t *testing.T) {
	_, err := extract.Load(strings.NewReader("body:\n  - \"~\"\nfooter:\n  - \"~\"\n"))
	assert.Error(t, err)
}

func TestTemplateLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "energies.yaml")
	require.NoError(t, os.WriteFile(path, []byte(templateYAML), 0o644))

	tmpl, err := extract.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"~ #..g"}, tmpl.Body)

	_, err = extract.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestTemplateCompileRequiresBody(t *testing.T) {
	tmpl := &extract.Template{Head: []string{"@!.BEGIN"}}
	_, err := tmpl.Compile()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "body")
}

func TestTemplateCompileBadLine(t *testing.T) {
	tmpl := &extract.Template{Body: []string{"#nope"}}
	_, err := tmpl.Compile()
	require.Error(t, err)
	var te *grammar.TokenError
	assert.ErrorAs(t, err, &te)
}

func TestTemplateExtractBlocks(t *testing.T) {
	tmpl, err := extract.Load(strings.NewReader(templateYAML))
	require.NoError(t, err)
	compiled, err := tmpl.Compile()
	require.NoError(t, err)

	require.Len(t, compiled.HeadGroups(), 1)
	require.Len(t, compiled.BodyGroups(), 2)
	require.Len(t, compiled.TailGroups(), 1)

	text := strings.Join([]string{
		"title Run One",
		"alpha 1.5",
		"beta 2e-3",
		"total 3.14",
		"title Run Two",
		"gamma 4",
		"total 0.5",
	}, "\n")

	blocks, err := compiled.Extract(text)
	require.NoError(t, err)
	require.Len(t, blocks, 2)

	one := blocks[0]
	require.Len(t, one.Head, 1)
	assert.Equal(t, "Run One", one.Head[0].Text)

	require.Len(t, one.Body, 2)
	assert.Equal(t, "alpha", one.Body[0][0].Text)
	assert.Equal(t, "1.5", one.Body[0][1].Text)
	assert.Equal(t, "beta", one.Body[1][0].Text)
	assert.Equal(t, "2e-3", one.Body[1][1].Text)

	require.Len(t, one.Tail, 1)
	f, err := one.Tail[0].Float()
	require.NoError(t, err)
	assert.InDelta(t, 3.14, f, 1e-12)

	two := blocks[1]
	require.Len(t, two.Body, 1)
	assert.Equal(t, "gamma", two.Body[0][0].Text)

	got, err := two.Body[0][1].Typed()
	require.NoError(t, err)
	assert.Equal(t, 4.0, got)
}

func TestTemplateExtractNoMatch(t *testing.T) {
	tmpl := &extract.Template{Body: []string{"@!.val #..i"}}
	compiled, err := tmpl.Compile()
	require.NoError(t, err)

	blocks, err := compiled.Extract("entirely unrelated text")
	require.NoError(t, err)
	assert.Empty(t, blocks)
}

func TestTemplateOptionalBodyLine(t *testing.T) {
	tmpl := &extract.Template{Body: []string{
		"@!.val #..i",
		"? @!.extra #..i",
	}}
	compiled, err := tmpl.Compile()
	require.NoError(t, err)
	require.Len(t, compiled.BodyGroups(), 2)

	blocks, err := compiled.Extract("val 1\nextra 2\nval 3")
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	rows := blocks[0].Body
	require.Len(t, rows, 2)

	assert.Equal(t, "1", rows[0][0].Text)
	require.True(t, rows[0][1].Matched)
	assert.Equal(t, "2", rows[0][1].Text)

	assert.Equal(t, "3", rows[1][0].Text)
	assert.False(t, rows[1][1].Matched)
	got, err := rows[1][1].Typed()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTemplateLeadingOptionalHeadLine(t *testing.T) {
	tmpl := &extract.Template{
		Head: []string{
			"? @!.comment ~",
			"@!.BEGIN",
		},
		Body: []string{"@!.val #..i"},
	}
	compiled, err := tmpl.Compile()
	require.NoError(t, err)

	blocks, err := compiled.Extract("comment calibration run\nBEGIN\nval 1")
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	require.Len(t, blocks[0].Head, 1)
	require.True(t, blocks[0].Head[0].Matched)
	assert.Equal(t, "calibration run", blocks[0].Head[0].Text)

	blocks, err = compiled.Extract("BEGIN\nval 1")
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	require.Len(t, blocks[0].Head, 1)
	assert.False(t, blocks[0].Head[0].Matched)
}

func TestTemplatePattern(t *testing.T) {
	tmpl, err := extract.Load(strings.NewReader(templateYAML))
	require.NoError(t, err)
	compiled, err := tmpl.Compile()
	require.NoError(t, err)

	pat := compiled.Pattern()
	assert.Contains(t, pat, "(?<head>")
	assert.Contains(t, pat, "(?<body>")
	assert.Contains(t, pat, "(?<tail>")
	// Section bodies embed the capture-free line patterns only.
	assert.False(t, strings.Contains(pat, "(?<cap"))
}
