package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// messager matches errors that can report their own message without the chain,
// such as *zerr.Error.
type messager interface {
	Message() string
}

type metadataCarrier interface {
	Metadata() map[string]any
}

type errorEntry struct {
	message  string
	metadata map[string]any
}

// collectErrorEntries walks the chain of err. A foreign error ends the walk
// since its Error() already includes its causes.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, errorEntry{message: current.Error()})
			break
		}
		entry := errorEntry{message: m.Message()}
		if mc, ok := current.(metadataCarrier); ok {
			entry.metadata = mc.Metadata()
		}
		entries = append(entries, entry)
		current = errors.Unwrap(current)
	}
	return entries
}

func formatErrorEntries(entries []errorEntry) string {
	var lines []string
	for i, e := range entries {
		msgLines := strings.Split(e.message, "\n")
		switch i {
		case 0:
			lines = append(lines, "Error: "+msgLines[0])
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			for _, k := range sortedKeys(e.metadata) {
				lines = append(lines, fmt.Sprintf("       %s: %v", k, e.metadata[k]))
			}
		default:
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			lines = append(lines, "    → "+msgLines[0])
			for _, line := range msgLines[1:] {
				lines = append(lines, "      "+line)
			}
			for _, k := range sortedKeys(e.metadata) {
				lines = append(lines, fmt.Sprintf("      %s: %v", k, e.metadata[k]))
			}
		}
	}
	return strings.Join(lines, "\n")
}

func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}
