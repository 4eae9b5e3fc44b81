package config

import (
	"reflect"
	"strings"
)

// GetConfigExample uses reflection to generate an example config
// This automatically stays in sync when new fields are added to Config
func GetConfigExample() map[string]any {
	var c Config
	t := reflect.TypeOf(c)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		// Extract the JSON field name (before comma)
		jsonName := strings.Split(jsonTag, ",")[0]

		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	switch t.Kind() {
	case reflect.String:
		switch Field(fieldName) {
		case FieldDataDir:
			return "~/.wins"
		case FieldGitHubToken:
			return "ghp_xxxxxxxxxxxxxxxxxxxx"
		case FieldGitHubUsername:
			return "octocat"
		case FieldOpenRouterAPIKey:
			return "sk-or-v1-xxxxxxxxxxxxxxxx"
		default:
			return "example"
		}
	case reflect.Slice:
		if t.Name() == "StringArray" || t.Elem().Kind() == reflect.String {
			if Field(fieldName) == FieldRepos {
				return []string{"acme/app", "acme/lib"}
			}
			return []string{"example1", "example2"}
		}
	}

	return nil
}
