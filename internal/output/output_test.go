package output

import (
	"bytes"
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type rows struct {
	Items []item `json:"items" yaml:"items"`
}

type item struct {
	Name  string `json:"name" yaml:"name"`
	Width int    `json:"width" yaml:"width"`
}

func (r rows) Headers() []string { return []string{"NAME", "WIDTH"} }

func (r rows) Rows() [][]string {
	out := make([][]string, 0, len(r.Items))
	for _, it := range r.Items {
		out = append(out, []string{it.Name, strconv.Itoa(it.Width)})
	}
	return out
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatTable, "JSON": FormatJSON, "yml": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestPrintFormats(t *testing.T) {
	data := rows{Items: []item{{Name: "questmap.tex", Width: 256}}}

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Print(&buf, FormatTable, data))
		assert.Contains(t, buf.String(), "NAME")
		assert.Contains(t, buf.String(), "questmap.tex")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Print(&buf, FormatJSON, data))

		var got rows
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, data, got)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Print(&buf, FormatYAML, data))

		var got rows
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, data, got)
	})
}
