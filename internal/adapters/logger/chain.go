package logger

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// messager matches zerr.Error, which can report its own message without the chain.
type messager interface {
	Message() string
}

// metadataer matches zerr.Error's attached key/value pairs.
type metadataer interface {
	Metadata() map[string]any
}

// multiUnwrapper matches errors built with errors.Join.
type multiUnwrapper interface {
	Unwrap() []error
}

// ErrorEntry is one level of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries flattens err into one entry per level, outermost first.
// Joined errors contribute their branches in order. A plain error ends its branch.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	seen := make(map[string]struct{})

	var walk func(error)
	walk = func(current error) {
		for current != nil {
			if joined, ok := current.(multiUnwrapper); ok {
				for _, branch := range joined.Unwrap() {
					walk(branch)
				}
				return
			}

			m, ok := current.(messager)
			if !ok {
				add(&entries, seen, ErrorEntry{Message: current.Error()})
				return
			}

			entry := ErrorEntry{Message: m.Message()}
			if md, ok := current.(metadataer); ok {
				entry.Metadata = md.Metadata()
			}
			add(&entries, seen, entry)
			current = errors.Unwrap(current)
		}
	}
	walk(err)

	return entries
}

// add appends entry unless an entry with the same message and no metadata is already present.
// Sentinels joined next to errors that wrap them would otherwise print twice.
func add(entries *[]ErrorEntry, seen map[string]struct{}, entry ErrorEntry) {
	if len(entry.Metadata) == 0 {
		if _, dup := seen[entry.Message]; dup {
			return
		}
	}
	seen[entry.Message] = struct{}{}
	*entries = append(*entries, entry)
}

// formatErrorEntries renders entries as
//
//	Error: <message>
//	       key: value
//
//	  Caused by:
//	    → <cause>
//	      key: value
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		head, indent := "    → ", "      "
		if i == 0 {
			head, indent = "Error: ", "       "
		} else if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}

		lines = append(lines, head+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}

		keys := make([]string, 0, len(entry.Metadata))
		for k := range entry.Metadata {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, k, entry.Metadata[k]))
		}
	}

	return strings.Join(lines, "\n")
}
