package ui

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// FormatResult turns the JSON result of a tool into markdown. Results that do
// not decode to an object are shown as a code block.
func FormatResult(toolName, result string) string {
	var fields map[string]any
	if err := json.Unmarshal([]byte(result), &fields); err != nil {
		return fence("", result)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n", toolName)

	if dir, ok := fields["current_dir"].(string); ok {
		fmt.Fprintf(&sb, "`%s`\n\n", dir)
	}
	if pairs, ok := fields["path_type"].([]any); ok {
		writePathTypes(&sb, pairs)
	}

	switch results := fields["results"].(type) {
	case []any:
		for _, r := range results {
			fmt.Fprintf(&sb, "- `%v`\n", r)
		}
		if len(results) > 0 {
			sb.WriteString("\n")
		}
	case map[string]any:
		writeFileResults(&sb, results)
	}

	if msg, ok := fields["response_message"].(string); ok {
		if success, ok := fields["success"].(bool); ok && !success {
			fmt.Fprintf(&sb, "**Failed:** %s\n\n", msg)
		} else {
			fmt.Fprintf(&sb, "%s\n\n", msg)
		}
	}
	if elapsed, ok := fields["time_elapsed"].(float64); ok {
		fmt.Fprintf(&sb, "_Took %.3fs_\n", elapsed)
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func writePathTypes(sb *strings.Builder, pairs []any) {
	sb.WriteString("| Path | Type |\n| --- | --- |\n")
	for _, p := range pairs {
		pair, ok := p.([]any)
		if !ok || len(pair) != 2 {
			continue
		}
		fmt.Fprintf(sb, "| `%v` | %v |\n", pair[0], pair[1])
	}
	sb.WriteString("\n")
}

// writeFileResults renders per-file results: text content, a list of match
// blocks, or a placeholder string.
func writeFileResults(sb *strings.Builder, results map[string]any) {
	paths := make([]string, 0, len(results))
	for p := range results {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		fmt.Fprintf(sb, "### %s\n\n", p)
		switch v := results[p].(type) {
		case string:
			if strings.HasPrefix(v, "[") && strings.HasSuffix(v, "]") && !strings.Contains(v, "\n") {
				fmt.Fprintf(sb, "_%s_\n\n", v)
			} else {
				sb.WriteString(fence("", v))
				sb.WriteString("\n")
			}
		case []any:
			for _, block := range v {
				sb.WriteString(fence("", fmt.Sprint(block)))
				sb.WriteString("\n")
			}
		}
	}
}

// fence wraps text in a code fence long enough not to clash with its content.
func fence(lang, text string) string {
	marker := "```"
	for strings.Contains(text, marker) {
		marker += "`"
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return marker + lang + "\n" + text + marker + "\n"
}
