package main

import (
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Fails if the dumped default config holds a key which is not documented in
// the example config.
func main() {
	exampleConfigFile, err := os.ReadFile("config/example_config.yaml")
	if err != nil {
		log.Fatal(err)
	}

	newConfigFile, err := os.ReadFile("config/dumped_config.yaml")
	if err != nil {
		log.Fatal(err)
	}

	exampleConfig := make(map[string]interface{})
	if err := yaml.Unmarshal(exampleConfigFile, &exampleConfig); err != nil {
		log.Fatal(err)
	}

	newConfig := make(map[string]interface{})
	if err := yaml.Unmarshal(newConfigFile, &newConfig); err != nil {
		log.Fatal(err)
	}

	compare(convertToLowercase(exampleConfig), convertToLowercase(newConfig), "")
}

func compare(exampleConfig, newConfig map[string]interface{}, prefix string) {
	for newKey, newValue := range newConfig {
		exampleValue, ok := exampleConfig[newKey]
		if !ok {
			log.Fatalf("key: %s%s does not exist in /config/example_config.yaml", prefix, newKey)
		}

		newNested, isMap := newValue.(map[string]interface{})
		if !isMap {
			continue
		}

		exampleNested, _ := exampleValue.(map[string]interface{})
		compare(exampleNested, newNested, prefix+newKey+".")
	}
}

func convertToLowercase(configMap map[string]interface{}) map[string]interface{} {
	lowercase := make(map[string]interface{}, len(configMap))
	for k, v := range configMap {
		if nested, ok := v.(map[string]interface{}); ok {
			v = convertToLowercase(nested)
		}
		lowercase[strings.ToLower(k)] = v
	}
	return lowercase
}
