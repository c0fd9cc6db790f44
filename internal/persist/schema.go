package persist

import "github.com/invopop/jsonschema"

// Schema returns the JSON schema of the save format.
func Schema() *jsonschema.Schema {
	r := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}
	s := r.Reflect(&State{})
	s.Title = "rampage save"
	s.Description = "A saved rampage world; component and singleton values are defined by the game version that wrote them."
	return s
}
