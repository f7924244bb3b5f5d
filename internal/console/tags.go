// Package console renders {{_Tag_}} markup to ANSI escape sequences.
//
// Two tag forms are recognised:
//
//   - {{_Name_}}  semantic tag, looked up in the semantic style table
//   - {{|code|}}  direct style code in fg:bg:flags form, e.g. {{|red::b|}};
//     {{|-|}} resets
//
// When stdout is not a terminal all tags are stripped instead.
package console

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// semanticRegex matches {{_content_}} format for semantic tags
	semanticRegex = regexp.MustCompile(`\{\{_([A-Za-z0-9_]+)_\}\}`)

	// directRegex matches {{|content|}} format for direct style codes
	directRegex = regexp.MustCompile(`\{\{\|([A-Za-z0-9_:\-#]+)\|\}\}`)

	// ansiRegex matches CSI escape sequences
	ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)
)

func normalizeTag(name string) string {
	return strings.ToLower(strings.Trim(name, "_"))
}

// ToANSI converts semantic and direct tags to ANSI escape sequences when
// stdout is a terminal, and strips them otherwise.
func ToANSI(text string) string {
	return Render(text, isTTYGlobal)
}

// Render converts tags to ANSI escape sequences, or strips them when color is false.
func Render(text string, color bool) string {
	if !color {
		return Strip(text)
	}

	text = semanticRegex.ReplaceAllStringFunc(text, func(match string) string {
		style, ok := semanticStyles[normalizeTag(match[3:len(match)-3])]
		if !ok {
			// Unknown semantic tag - strip it
			return ""
		}
		return styleToANSI(style)
	})

	return directRegex.ReplaceAllStringFunc(text, func(match string) string {
		return styleToANSI(match[3 : len(match)-3])
	})
}

// styleToANSI parses fg:bg:flags format and returns ANSI codes
func styleToANSI(style string) string {
	if style == "-" {
		return CodeReset
	}

	parts := strings.Split(style, ":")
	var codes strings.Builder

	if fg := parts[0]; fg != "" && fg != "-" {
		codes.WriteString(colorSequence(fg, false))
	}
	if len(parts) > 1 && parts[1] != "" && parts[1] != "-" {
		codes.WriteString(colorSequence(parts[1], true))
	}
	if len(parts) > 2 {
		for _, flag := range parts[2] {
			switch flag {
			case 'b':
				codes.WriteString(CodeBold)
			case 'd':
				codes.WriteString(CodeDim)
			case 'u':
				codes.WriteString(CodeUnderline)
			}
		}
	}
	return codes.String()
}

func colorSequence(name string, background bool) string {
	name = strings.ToLower(name)
	if idx, ok := ansiColors[name]; ok {
		name = idx
	}
	c := preferredProfile.Color(name)
	if c == nil {
		return ""
	}
	seq := c.Sequence(background)
	if seq == "" {
		return ""
	}
	return "\x1b[" + seq + "m"
}

// Strip removes all semantic and direct tags from text, as well as ANSI escape sequences
func Strip(text string) string {
	text = semanticRegex.ReplaceAllString(text, "")
	text = directRegex.ReplaceAllString(text, "")
	return ansiRegex.ReplaceAllString(text, "")
}

// Println prints a line with ANSI color codes parsed
func Println(a ...any) {
	fmt.Println(ToANSI(fmt.Sprint(a...)))
}
