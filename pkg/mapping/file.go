package mapping

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ParseMappings reads a list of field mappings from YAML or JSON.
func ParseMappings(data []byte) (mappings []FieldMapping, err error) {
	err = yaml.Unmarshal(data, &mappings)
	if err != nil {
		err = errors.Wrap(err, "failed to parse field mappings")
		return mappings, err
	}

	if mappings == nil {
		mappings = make([]FieldMapping, 0)
	}

	return mappings, err
}
