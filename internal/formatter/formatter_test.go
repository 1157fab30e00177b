package formatter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/cmdpal/pkg/palette"
)

func commands() []palette.Command {
	return []palette.Command{
		{Name: "Save", Category: "File", Description: "Write the buffer", Icon: "S", Action: palette.Literal("echo save")},
		{Name: "Quit", Category: "File", Action: palette.Literal("echo a|b")},
		{Name: "Reload", Action: palette.Invocable(func() error { return nil })},
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YAML", ListFormats)
	require.NoError(t, err)
	assert.Equal(t, OutputYAML, f)

	f, err = ParseFormat("yml", DataFormats)
	require.NoError(t, err)
	assert.Equal(t, OutputYAML, f)

	f, err = ParseFormat("md", ListFormats)
	require.NoError(t, err)
	assert.Equal(t, OutputMarkdown, f)

	_, err = ParseFormat("html", DataFormats)
	require.Error(t, err)
	_, err = ParseFormat("csv", ListFormats)
	require.Error(t, err)
}

func TestRecords(t *testing.T) {
	recs := Records(commands())
	require.Len(t, recs, 3)
	assert.Equal(t, Record{Name: "Save", Category: "File", Description: "Write the buffer", Icon: "S", Kind: "literal", Action: "echo save"}, recs[0])
	assert.Equal(t, "callback", recs[2].Kind)
	assert.Equal(t, "<callback>", recs[2].Action)
}

func TestWriteCommandsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCommands(&buf, OutputJSON, commands(), Options{}))
	var got []Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, Records(commands()), got)
	assert.Contains(t, buf.String(), `"echo a|b"`)
}

func TestWriteCommandsYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCommands(&buf, OutputYAML, commands(), Options{}))
	var got []Record
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, Records(commands()), got)
}

func TestWriteCommandsTOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCommands(&buf, OutputTOML, commands(), Options{}))
	assert.Contains(t, buf.String(), "[[commands]]")
	var got struct {
		Commands []Record `toml:"commands"`
	}
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, Records(commands()), got.Commands)
}

func TestWriteCommandsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCommands(&buf, OutputTable, commands(), Options{NoColor: true, Width: 200}))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "CATEGORY  NAME    DESCRIPTION       ACTION", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "──"))
	assert.Equal(t, "File      S Save  Write the buffer  echo save", lines[2])
	assert.Equal(t, "File      Quit                      echo a|b", lines[3])
	assert.Equal(t, "          Reload                    <callback>", lines[4])
}

func TestRenderTableShrinksToWidth(t *testing.T) {
	rows := [][]string{{"a", strings.Repeat("x", 40)}}
	out := RenderTable([]string{"K", "V"}, rows, 20, true)
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 20, line)
	}
	assert.Contains(t, out, "...")
}

func TestRenderTableColor(t *testing.T) {
	out := RenderTable([]string{"K"}, [][]string{{"v"}}, 80, false)
	assert.Contains(t, out, "\x1b[")
}

func TestRenderMarkdown(t *testing.T) {
	md := RenderMarkdown(commands())
	lines := strings.Split(strings.TrimRight(md, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "| Category | Name | Description | Action |", lines[0])
	assert.Equal(t, "| File | S Save | Write the buffer | `echo save` |", lines[2])
	assert.Equal(t, "| File | Quit |  | echo a\\|b |", lines[3])
	assert.Equal(t, "|  | Reload |  | \\<callback\\> |", lines[4])
}

func TestRenderHTML(t *testing.T) {
	out := RenderHTML(commands())
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<th>Category</th>")
	assert.Contains(t, out, "<td>Write the buffer</td>")
	assert.Contains(t, out, "<code>echo save</code>")
	assert.Contains(t, out, "<td>echo a|b</td>")
	assert.Contains(t, out, "&lt;callback&gt;")
	assert.NotContains(t, out, "&amp;")
	assert.NotContains(t, out, `\|`)
}

func TestEncodeRejectsListFormats(t *testing.T) {
	require.Error(t, Encode(&bytes.Buffer{}, OutputHTML, map[string]string{}))
	require.Error(t, WriteCommands(&bytes.Buffer{}, Format("csv"), nil, Options{}))
}

func TestFormatYAMLLiteralBlocks(t *testing.T) {
	out, err := FormatYAML(map[string]string{"d": "a\nb"}, YAMLFormatOptions{LiteralBlockStrings: true})
	require.NoError(t, err)
	assert.Equal(t, "d: |-\n  a\n  b\n", out)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", truncate("hello", 5))
	assert.Equal(t, "he...", truncate("hello world", 5))
	assert.Equal(t, "he", truncate("hello", 2))
	assert.Equal(t, "hello", truncate("hello", 0))
}
