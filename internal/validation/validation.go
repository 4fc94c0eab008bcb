// Package validation contains the schema validator.
//
// Record types declare their constraints with struct tags: `mapstructure`
// names the input key and `validate` holds go-playground/validator rules.
// Decode turns a raw key/value mapping into such a record and reports
// every violated field at once. The package also extracts raw mappings
// from the request sources an endpoint declares (path, query, JSON body,
// form, header, cookie).
package validation
