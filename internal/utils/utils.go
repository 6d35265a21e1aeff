// Package utils содержит функции форматирования, общие для shell и TUI
package utils

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// FormatDuration форматирует time.Duration в MM:SS, а при длительности от часа в HH:MM:SS
func FormatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	if hours == 0 {
		return fmt.Sprintf("%02d:%02d", minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// FormatTags форматирует теги как "[#cat #animal]"
func FormatTags(tags []string) string {
	return "[" + strings.Join(tags, " ") + "]"
}

// TruncateString обрезает строку до maxLen символов, добавляя "..." если строка длиннее
func TruncateString(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
