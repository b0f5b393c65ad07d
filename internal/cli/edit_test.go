package cli

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/iw2rmb/codeplus/codeblock"
	"github.com/iw2rmb/codeplus/editor"
	"github.com/iw2rmb/codeplus/internal/config"
)

func TestLoadRecord_Missing(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.DefaultLanguage = "Go"

	raw, data, err := loadRecord(filepath.Join(t.TempDir(), "new.json"), cfg)
	require.NoError(t, err)
	assert.Nil(t, raw)
	assert.Equal(t, codeblock.Data{Language: "Go"}, data)
}

func TestLoadRecord_Existing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "block.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"code":"x","language":"Rust","lineNumber":3}`), 0o600))

	_, data, err := loadRecord(path, config.Default())
	require.NoError(t, err)
	assert.Equal(t, codeblock.Data{Code: "x", Language: "Rust", LineNumber: 3}, data)
}

func TestLoadRecord_Malformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "block.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"code":`), 0o600))

	_, _, err := loadRecord(path, config.Default())
	require.ErrorIs(t, err, codeblock.ErrInvalidRecord)
}

func TestRecordSink_KeepsUnknownFields(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "block.json")
	sink := recordSink{path: path, existing: []byte(`{"id":"b1","code":"old"}`)}

	require.NoError(t, sink.save(codeblock.Data{Code: "new", Language: "Go", LineNumber: 12}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	doc := gjson.ParseBytes(raw)
	assert.Equal(t, "b1", doc.Get("id").String())
	assert.Equal(t, "new", doc.Get("code").String())
	assert.Equal(t, "Go", doc.Get("language").String())
	assert.Equal(t, int64(12), doc.Get("lineNumber").Int())
}

func TestRecordSink_NoPath(t *testing.T) {
	t.Parallel()

	sink := recordSink{}
	assert.NoError(t, sink.save(codeblock.Data{Code: "x"}))
}

func newTestApp(t *testing.T, path string) editApp {
	t.Helper()
	app := newEditApp(editor.Config{
		Data:  codeblock.Data{Language: "Python"},
		Style: editor.DefaultStyle(),
	}, recordSink{path: path})
	m, _ := app.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	return m.(editApp)
}

func TestEditApp_SaveWritesRecord(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "block.json")
	app := newTestApp(t, path)

	var m tea.Model = app
	for _, r := range "x = 1" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)

	got := m.(editApp)
	require.NoError(t, got.err)
	assert.Equal(t, "saved "+path, got.notice)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	doc := gjson.ParseBytes(raw)
	assert.Equal(t, "x = 1", doc.Get("code").String())
	assert.Equal(t, "Python", doc.Get("language").String())
}

func TestEditApp_QuitSavesAndQuits(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "block.json")
	app := newTestApp(t, path)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestEditApp_SaveErrorIsReported(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing-dir", "block.json")
	app := newTestApp(t, path)

	m, _ := app.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	got := m.(editApp)
	require.Error(t, got.err)
	assert.Contains(t, got.View(), "write ")
}

func TestEditApp_HelpToggle(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, "")
	short := app.footerHeight()

	m, _ := app.Update(tea.KeyMsg{Type: tea.KeyF1})
	got := m.(editApp)
	assert.True(t, got.help.ShowAll)
	assert.Greater(t, got.footerHeight(), short)
}
