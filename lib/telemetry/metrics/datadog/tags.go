package datadog

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/artie-labs/tablemeta/lib/maputil"
)

// getTags - YAML decodes `tags` into a []any, so it is unpacked again with the same library.
func getTags(tags any) []string {
	if tags == nil {
		return []string{}
	}

	yamlBytes, err := yaml.Marshal(tags)
	if err != nil {
		return []string{}
	}

	var retTagStrings []string
	if err = yaml.Unmarshal(yamlBytes, &retTagStrings); err != nil {
		return []string{}
	}

	return retTagStrings
}

// toDatadogTags is sorted by key so the same tags always produce the same series.
func toDatadogTags(tags map[string]string) []string {
	var retTags []string
	for _, key := range maputil.SortedKeys(tags) {
		retTags = append(retTags, fmt.Sprintf("%s:%s", key, tags[key]))
	}

	return retTags
}
