package util

import (
	"os"
	"strings"
)

func GetEnvironmentVariables() map[string]string {
	environmentVariables := map[string]string{}

	for _, variable := range os.Environ() {
		pair := strings.SplitN(variable, "=", 2)
		if len(pair) != 2 {
			continue
		}

		environmentVariables[pair[0]] = pair[1]
	}

	return environmentVariables
}

// GetEnvironmentVariable returns the variable or fallback when unset or empty
func GetEnvironmentVariable(name string, fallback string) string {
	if value := GetEnvironmentVariables()[name]; value != "" {
		return value
	}

	return fallback
}
