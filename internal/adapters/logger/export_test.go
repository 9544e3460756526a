// export_test.go exports private functions for white-box testing.
package logger

var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)

// EntryParts returns the message and metadata of each collected entry.
func EntryParts(err error) ([]string, []map[string]any) {
	entries := collectErrorEntries(err)
	messages := make([]string, len(entries))
	metadata := make([]map[string]any, len(entries))
	for i, e := range entries {
		messages[i] = e.message
		metadata[i] = e.metadata
	}
	return messages, metadata
}
