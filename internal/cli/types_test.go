package cli

import (
	"bytes"
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	iso "github.com/reoring/iso20022"
)

func TestTypesText(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewTypesCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	g := goldie.New(t)
	g.Assert(t, "types", buf.Bytes())
}

func TestTypesJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewTypesCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	var resp struct {
		Status string     `json:"status"`
		Data   []TypeInfo `json:"data"`
	}
	require.NoError(t, gojson.Unmarshal(buf.Bytes(), &resp))
	require.Len(t, resp.Data, 11)
	last := resp.Data[10]
	assert.Equal(t, "pacs.008.001.08", last.ID)
	assert.Equal(t, "urn:iso:std:iso:20022:tech:xsd:pacs.008.001.08", last.Namespace)
	assert.True(t, last.Rules)
	assert.False(t, resp.Data[0].Rules)
}

func TestDescribe(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewDescribeCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"pacs.008.001.08"})
	require.NoError(t, cmd.Execute())

	var schema map[string]any
	require.NoError(t, gojson.Unmarshal(buf.Bytes(), &schema))
	defs, ok := schema["$defs"].(map[string]any)
	require.True(t, ok, "schema has $defs")
	assert.Contains(t, defs, "Max35Text")
	assert.Contains(t, buf.String(), "FIToFICstmrCdtTrf")
}

func TestDescribeEveryType(t *testing.T) {
	for _, mt := range iso.Types() {
		for _, format := range []string{"text", "json"} {
			t.Run(mt.ID+"/"+format, func(t *testing.T) {
				buf := &bytes.Buffer{}
				cmd := NewDescribeCommand(&RootOptions{Format: format})
				cmd.SetOut(buf)
				cmd.SetArgs([]string{mt.ID})
				require.NoError(t, cmd.Execute())

				var out map[string]any
				require.NoError(t, gojson.Unmarshal(buf.Bytes(), &out))
				assert.Contains(t, buf.String(), mt.Root)
			})
		}
	}
}

func TestDescribeUnknownType(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewDescribeCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"camt.053.001.08"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, gojson.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeUnknownType, resp.Error.Code)
}
