package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	iso "github.com/reoring/iso20022"
	_ "github.com/reoring/iso20022/catalog"
	"github.com/reoring/iso20022/common"
	"github.com/reoring/iso20022/fednow"
	"github.com/reoring/iso20022/pacs/pacs00800108"
	"github.com/reoring/iso20022/sample"
)

// deterministic makes sample output reproducible.
func deterministic() []sample.Option {
	n := 0
	ids := func() uuid.UUID {
		n++
		return uuid.MustParse(fmt.Sprintf("00000000-0000-4000-8000-%012d", n))
	}
	clock := func() time.Time { return time.Date(2024, 5, 1, 13, 30, 0, 0, time.UTC) }
	return []sample.Option{sample.WithClock(clock), sample.WithIDs(ids)}
}

func newGenerator(t *testing.T, cfg sample.Config) *sample.Generator {
	t.Helper()
	g, err := sample.New(cfg, deterministic()...)
	require.NoError(t, err)
	return g
}

func writeTo(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func encodeDoc(t *testing.T, doc *iso.Document, f iso.Format) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, iso.Encode(&buf, doc, f))
	return buf.Bytes()
}

func encodeFedNow(t *testing.T, m *fednow.Message, f iso.Format) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, fednow.Encode(&buf, m, f))
	return buf.Bytes()
}

// writeMessages lays out under dir:
//
//	msgs/a.xml   valid pacs.008 document
//	msgs/b.json  pacs.008 with a 36 character MsgId
//	msgs/c.xml   valid FedNow customer credit transfer
//	msgs/notes.txt  ignored when walking
func writeMessages(t *testing.T, dir string) {
	t.Helper()
	g := newGenerator(t, sample.Config{})

	doc, err := g.Document()
	require.NoError(t, err)
	writeTo(t, filepath.Join(dir, "msgs", "a.xml"), encodeDoc(t, doc, iso.FormatXML))

	m, err := g.CreditTransfer()
	require.NoError(t, err)
	m.GrpHdr.MsgId = common.Max35Text("X" + strings.Repeat("0", 35))
	bad, err := iso.NewDocument(pacs00800108.ID, m)
	require.NoError(t, err)
	writeTo(t, filepath.Join(dir, "msgs", "b.json"), encodeDoc(t, bad, iso.FormatJSON))

	fm, err := g.FedNow()
	require.NoError(t, err)
	writeTo(t, filepath.Join(dir, "msgs", "c.xml"), encodeFedNow(t, fm, iso.FormatXML))

	writeTo(t, filepath.Join(dir, "msgs", "notes.txt"), []byte("not a message"))
}

// inTempDir switches to a fresh directory and returns the absolute path of
// this package's testdata directory.
func inTempDir(t *testing.T) string {
	t.Helper()
	fixtures, err := filepath.Abs("testdata")
	require.NoError(t, err)
	t.Chdir(t.TempDir())
	return fixtures
}
