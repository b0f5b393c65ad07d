// Package langdetect guesses the language of a code snippet, for suggesting a
// menu entry after a paste. Results are Chroma lexer ids or
// highlight.PlainText.
package langdetect

import (
	"regexp"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/iw2rmb/codeplus/highlight"
)

// Ids returned by Detect.
const (
	LangGo         = "go"
	LangPython     = "python"
	LangJavaScript = "javascript"
	LangCSS        = "css"
	LangC          = "c"
	LangCPP        = "c++"
	LangRust       = "rust"
	LangJava       = "java"
	LangDiff       = "diff"
	LangJSON       = "json"
	LangYAML       = "yaml"
	LangHTML       = "html"
	LangBash       = "bash"
)

// classifierCandidates restricts go-enry's classifier to languages Chroma
// highlights and users commonly paste.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "CSS", "JSON",
	"YAML", "HTML", "Diff",
}

type detector struct {
	lang  string
	match func(s, trimmed string) bool
}

// detectors run in order; the first match wins.
var detectors = []detector{
	{LangDiff, isDiff},
	{LangGo, func(_, t string) bool { return strings.HasPrefix(t, "package ") }},
	{LangPython, isPython},
	{LangHTML, isHTML},
	{LangJSON, isJSON},
	{LangJava, isJava},
	{LangCPP, isCPP},
	{LangC, isC},
	{LangRust, isRust},
	{LangCSS, isCSS},
	{LangJavaScript, isJavaScript},
	{LangYAML, isYAML},
}

// Detect returns the detected language id for content, or
// highlight.PlainText when nothing is confident.
func Detect(content string) string {
	if strings.TrimSpace(content) == "" {
		return highlight.PlainText
	}
	data := []byte(content)

	if lang, safe := enry.GetLanguageByShebang(data); safe {
		return normalize(lang)
	}

	trimmed := strings.TrimSpace(content)
	for _, d := range detectors {
		if d.match(content, trimmed) {
			return d.lang
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(data, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}
	return highlight.PlainText
}

// Suggest maps the detected language onto a label of menu, comparing
// canonical lexer ids. It returns "" when the guess is plain text or not offered.
func Suggest(content string, menu []string) string {
	lang := Detect(content)
	if lang == highlight.PlainText {
		return ""
	}
	for _, label := range menu {
		if highlight.Canonical(label) == lang {
			return label
		}
	}
	return ""
}

var (
	pyDef     = regexp.MustCompile(`(?m)^\s*(def|class)\s+\w+.*:\s*$`)
	pyImport  = regexp.MustCompile(`(?m)^(from\s+[\w.]+\s+)?import\s+[\w.]+(\s+as\s+\w+)?\s*$`)
	javaClass = regexp.MustCompile(`\b(public|private|protected)\s+(static\s+)?(final\s+)?(class|interface|void|int|String)\b`)
	cInclude  = regexp.MustCompile(`(?m)^#include\s*[<"]`)
	cssRule   = regexp.MustCompile(`(?s)^[\w.#:\-\[\]=*>~+\s,"']+\{[^{}]*:[^{}]*;?\s*\}`)
	yamlKey   = regexp.MustCompile(`^[\w.\-]+:(\s|$)`)
)

func isDiff(s, _ string) bool {
	if strings.HasPrefix(s, "diff --git ") || strings.HasPrefix(s, "--- a/") {
		return true
	}
	return strings.Contains(s, "\n@@ ") && strings.Contains(s, "\n+++ ")
}

func isPython(s, _ string) bool {
	if strings.Contains(s, "__name__") || strings.Contains(s, "__main__") {
		return true
	}
	return pyDef.MatchString(s) || (pyImport.MatchString(s) && !strings.Contains(s, "import ("))
}

func isHTML(_, t string) bool {
	lower := strings.ToLower(t)
	for _, marker := range []string{"<!doctype html", "<html", "<head>", "<body>"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func isJSON(_, t string) bool {
	return (strings.HasPrefix(t, "{") || strings.HasPrefix(t, "[")) &&
		strings.Contains(t, `"`) && strings.Contains(t, ":") &&
		!strings.Contains(t, ";")
}

func isJava(s, _ string) bool {
	return javaClass.MatchString(s) || strings.Contains(s, "System.out.println")
}

func isCPP(s, _ string) bool {
	return strings.Contains(s, "std::") || strings.Contains(s, "#include <iostream>") ||
		strings.Contains(s, "template <") || strings.Contains(s, "template<")
}

func isC(s, _ string) bool {
	return cInclude.MatchString(s) || (strings.Contains(s, "printf(") && strings.Contains(s, "int main("))
}

func isRust(s, _ string) bool {
	return strings.Contains(s, "fn main()") ||
		strings.Contains(s, "println!") ||
		strings.Contains(s, "let mut ") ||
		strings.Contains(s, "impl ")
}

func isCSS(_, t string) bool {
	return cssRule.MatchString(t)
}

func isJavaScript(s, _ string) bool {
	for _, marker := range []string{"=>", "const ", "let ", "console.log", "function "} {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}

func isYAML(s, _ string) bool {
	keys := 0
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "- "):
			keys++
		case yamlKey.MatchString(line) && !strings.ContainsAny(line, "({"):
			keys++
		}
	}
	return keys >= 2
}

// normalize converts go-enry language names to Chroma lexer ids.
func normalize(lang string) string {
	switch lang {
	case "Shell":
		return LangBash
	case "Diff":
		return LangDiff
	default:
		return strings.ToLower(lang)
	}
}
