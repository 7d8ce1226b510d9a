package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

func printJSON(v any) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(encoded))
	return nil
}

// parseMetadata turns repeated --meta key=value flags into a string map.
func parseMetadata(pairs []string) (map[string]string, error) {
	metadata := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid metadata pair %q, expected key=value", pair)
		}
		metadata[key] = value
	}
	return metadata, nil
}

func stringFlagIfChanged(changed bool, value string) *string {
	if !changed {
		return nil
	}
	return &value
}
