package codeblock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iw2rmb/codeplus/codeblock"
	"github.com/iw2rmb/codeplus/highlight"
)

func TestTool_Descriptor(t *testing.T) {
	t.Parallel()

	info := codeblock.Tool()
	assert.True(t, info.IsReadOnlySupported)
	assert.True(t, info.EnableLineBreaks)
	assert.Equal(t, []string{"pre"}, info.PasteConfig.Tags)
	assert.Equal(t, map[string]bool{"code": true}, info.Sanitize)
	assert.Equal(t, "Code", info.Toolbox.Title)
	assert.Contains(t, info.Toolbox.Icon, "<svg")
}

func TestClassesFor(t *testing.T) {
	t.Parallel()

	c := codeblock.ClassesFor(codeblock.Styles{Block: "cdx-block", Input: "cdx-input"})
	assert.Equal(t, []string{"cdx-block", codeblock.ClassWrapper}, c.Wrapper)
	assert.Equal(t, []string{codeblock.ClassInside, "cdx-input"}, c.Inside)

	c = codeblock.ClassesFor(codeblock.Styles{})
	assert.Equal(t, []string{codeblock.ClassWrapper}, c.Wrapper)
}

func TestFilterLanguages(t *testing.T) {
	t.Parallel()

	langs := highlight.DefaultLanguages()
	assert.Equal(t, langs, codeblock.FilterLanguages(langs, ""))
	assert.Equal(t, langs, codeblock.FilterLanguages(langs, "  "))
	assert.Equal(t, []string{"JavaScript", "Java"}, codeblock.FilterLanguages(langs, "JAVA"))
	assert.Equal(t, []string{"C++"}, codeblock.FilterLanguages(langs, "c+"))
	assert.Empty(t, codeblock.FilterLanguages(langs, "cobol"))
}
