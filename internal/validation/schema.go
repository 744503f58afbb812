// Package validation checks policy and intervention records against their
// JSON Schemas. Validation is advisory: loading stays lenient, and the check
// command surfaces schema violations to catalog curators.
package validation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/wefe-nexus/nexsim/schemas"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// defaultPrinter is used to format schema validation error messages.
var defaultPrinter = message.NewPrinter(language.English)

// policySchema is the compiled JSON Schema for policy records.
var policySchema *jsonschema.Schema

// interventionSchema is the compiled JSON Schema for intervention records.
var interventionSchema *jsonschema.Schema

func init() {
	policySchema = mustCompileSchema(schemas.PolicySchemaJSON, "policy.schema.json")
	interventionSchema = mustCompileSchema(schemas.InterventionSchemaJSON, "intervention.schema.json")
}

func mustCompileSchema(raw string, name string) *jsonschema.Schema {
	var schemaDoc any
	if err := json.Unmarshal([]byte(raw), &schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to parse embedded %s: %v", name, err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to add %s resource: %v", name, err))
	}

	sch, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("failed to compile %s: %v", name, err))
	}
	return sch
}

// ValidatePolicyBytes validates one policy record's raw JSON.
func ValidatePolicyBytes(data []byte) []string {
	return validateJSONBytes(policySchema, data)
}

// ValidateInterventionBytes validates one intervention record's raw JSON.
func ValidateInterventionBytes(data []byte) []string {
	return validateJSONBytes(interventionSchema, data)
}

// ValidatePolicyFile validates a policy catalog file: a JSON array of policy
// records. Returned errors are prefixed with the record index.
func ValidatePolicyFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading policy catalog: %w", err)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return []string{fmt.Sprintf("JSON parse error: %v", err)}, nil
	}

	var errs []string
	for i, rec := range records {
		for _, e := range ValidatePolicyBytes(rec) {
			errs = append(errs, fmt.Sprintf("policy[%d]%s", i, e))
		}
	}
	return errs, nil
}

// ValidateCatalogDir validates every *.json intervention record under dir.
// The result maps file names to their violations; files without violations
// are absent. A missing directory returns an empty map.
func ValidateCatalogDir(dir string) (map[string][]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string][]string{}, nil
		}
		return nil, fmt.Errorf("reading catalog directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	result := map[string][]string{}
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			result[name] = []string{fmt.Sprintf("read error: %v", err)}
			continue
		}
		if errs := ValidateInterventionBytes(data); len(errs) > 0 {
			result[name] = errs
		}
	}
	return result, nil
}

func validateJSONBytes(schema *jsonschema.Schema, data []byte) []string {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return []string{fmt.Sprintf("JSON parse error: %v", err)}
	}
	return validateAgainstSchema(schema, doc)
}

func validateAgainstSchema(schema *jsonschema.Schema, instance any) []string {
	err := schema.Validate(instance)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{fmt.Sprintf("schema: %v", err)}
	}
	var errs []string
	collectSchemaErrors(ve, &errs)
	return errs
}

func collectSchemaErrors(ve *jsonschema.ValidationError, errs *[]string) {
	if len(ve.Causes) == 0 {
		loc := "/"
		if len(ve.InstanceLocation) > 0 {
			loc = "/" + strings.Join(ve.InstanceLocation, "/")
		}
		*errs = append(*errs, fmt.Sprintf("%s: %s", loc, ve.ErrorKind.LocalizedString(defaultPrinter)))
		return
	}
	for _, c := range ve.Causes {
		collectSchemaErrors(c, errs)
	}
}
