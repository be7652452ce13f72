package quality

import (
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
)

// JSONSchema describes a tier as one of its names.
func (Tier) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "string",
		Enum: lo.Map(append(Names(), Unknown.String()), func(n string, _ int) any {
			return n
		}),
	}
}
