package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	iso "github.com/reoring/iso20022"
	"github.com/reoring/iso20022/sample"
)

func sampleOptions() *RootOptions {
	opts := &RootOptions{Format: "text", sampleOpts: deterministic()}
	opts.Config.Sample = sample.Defaults()
	return opts
}

func TestSampleToStdout(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewSampleCommand(sampleOptions())
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--to", "json"})
	require.NoError(t, cmd.Execute())

	doc, err := iso.ParseBytes(context.Background(), buf.Bytes(), iso.ParseOpt{Rules: true})
	require.NoError(t, err)
	assert.Equal(t, "pacs.008.001.08", doc.ID())
	assert.Contains(t, buf.String(), `"MsgId": "00000000000040008000000000000001"`)
}

func TestSampleFilesValidate(t *testing.T) {
	inTempDir(t)

	opts := sampleOptions()
	opts.Format = "json"
	buf := &bytes.Buffer{}
	cmd := NewSampleCommand(opts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--count", "2", "--fednow", "--out", "out"})
	require.NoError(t, cmd.Execute())

	var resp struct {
		Status string       `json:"status"`
		Data   SampleResult `json:"data"`
	}
	require.NoError(t, gojson.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, []string{filepath.Join("out", "sample-001.xml"), filepath.Join("out", "sample-002.xml")}, resp.Data.Files)

	buf.Reset()
	v := NewValidateCommand(&RootOptions{Format: "text"})
	v.SetOut(buf)
	v.SetArgs([]string{"--rules", "out"})
	require.NoError(t, v.Execute(), buf.String())
	assert.Contains(t, buf.String(), "2 file(s), 0 invalid")
}

func TestSampleFromFile(t *testing.T) {
	inTempDir(t)
	writeTo(t, "parties.yaml", []byte("debtor:\n  name: ACME Corp\namount: \"12.50\"\ntransactions: 2\n"))

	buf := &bytes.Buffer{}
	cmd := NewSampleCommand(sampleOptions())
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--from", "parties.yaml", "--to", "yaml"})
	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "ACME Corp")
	assert.Contains(t, out, "NbOfTxs: \"2\"")
}

func TestSampleBadArgs(t *testing.T) {
	cases := map[string][]string{
		"count without out": {"--count", "3"},
		"bad format":        {"--to", "csv"},
		"zero count":        {"--count", "0"},
		"missing file":      {"--from", filepath.Join(os.TempDir(), "no-such-sample.yaml")},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			cmd := NewSampleCommand(sampleOptions())
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetArgs(args)
			err := cmd.Execute()
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
		})
	}
}
