package main

import (
	"fmt"
	"strconv"
	"strings"
)

func parseIntArg(name, value string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	return v, nil
}

// resolveID принимает полный id или его однозначный префикс.
func resolveID(kind, prefix string, ids []string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", fmt.Errorf("%s id is empty", kind)
	}
	var match string
	for _, id := range ids {
		if id == prefix {
			return id, nil
		}
		if strings.HasPrefix(id, prefix) {
			if match != "" {
				return "", fmt.Errorf("%s id prefix %q is ambiguous", kind, prefix)
			}
			match = id
		}
	}
	if match == "" {
		// неизвестный id передаётся как есть: трекер вернёт applied=false
		return prefix, nil
	}
	return match, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func bar(pct int) string {
	const width = 20
	filled := pct * width / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}
