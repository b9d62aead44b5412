// Package markdown prepares backend-authored markdown for display.
//
// 백엔드가 줄바꿈 없이 붙여 보내는 목록/헤더도 올바르게 렌더링되도록
// Normalize로 정리한 뒤 Render로 HTML을 만듭니다.
package markdown

import (
	"regexp"
	"strings"
)

var (
	lineEndings      = strings.NewReplacer("\r\n", "\n", "\r", "\n")
	excessBlankLines = regexp.MustCompile(`\n\s*\n\s*\n`)
	numberedItem     = regexp.MustCompile(`^\d+\.\s`)
	bulletItem       = regexp.MustCompile(`^[*+-]\s`)
	headingLine      = regexp.MustCompile(`^#{1,6}\s`)
)

// Normalize collapses runs of blank lines, trims the text, and makes sure
// numbered items, bullet items and headings start after a blank line.
// Fenced code blocks are left untouched by the last step.
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	s = lineEndings.Replace(s)
	s = excessBlankLines.ReplaceAllString(s, "\n\n")
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines)+8)
	inFence := false
	for i, line := range lines {
		if isFence(line) {
			inFence = !inFence
		} else if !inFence && i > 0 && needsBlankBefore(line) && strings.TrimSpace(out[len(out)-1]) != "" {
			out = append(out, "")
		}
		out = append(out, line)
	}

	return strings.TrimSpace(strings.Join(out, "\n"))
}

func needsBlankBefore(line string) bool {
	return numberedItem.MatchString(line) || bulletItem.MatchString(line) || headingLine.MatchString(line)
}

func isFence(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")
}
