// Package schema checks dataset records against a declared set of typed fields.
//
// A Schema maps field names to types. Built-in types cover the JSON value kinds
// (string, number, bool) and slices of them; custom validators can be plugged in.
//
//	s := schema.Schema{
//	    "state":   schema.String(),
//	    "capital": schema.String(),
//	}
//
//	if err := schema.ValidateRecords("states", s, records); err != nil {
//	    for _, e := range schema.ValidationErrors(err) {
//	        // *domain.MissingFieldError or *schema.ValidationError
//	    }
//	}
//
// Schemas can also be parsed from type strings, which is how atlas.yaml extends
// the built-in States and Artworks schemas:
//
//	s, err := schema.ParseTypeMap(map[string]string{"population": "number", "tags": "[string]"})
package schema
