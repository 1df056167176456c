package hcl_adapter

import (
	"fmt"
	"strconv"

	"github.com/dsalwasser/kmpexp/internal/config"
	"github.com/dsalwasser/kmpexp/internal/schema"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// translateDocument converts the decoded schema structs into the canonical
// model. Suite and variant bodies are decoded here, one block at a time, so
// that every error can name the block it came from.
func translateDocument(doc *schema.Document) (*config.Config, error) {
	cfg := &config.Config{
		TimeCmd: doc.TimeCmd,
		Env:     doc.Env,
	}

	name := doc.System
	if name == "" {
		name = string(config.SystemGeneric)
	}
	system, err := config.ParseSystem(name)
	if err != nil {
		return nil, err
	}
	cfg.System = system

	name = doc.CallWrapper
	if name == "" {
		name = string(config.WrapperNone)
	}
	wrapper, err := config.ParseCallWrapper(name)
	if err != nil {
		return nil, err
	}
	cfg.CallWrapper = wrapper

	seen := make(map[string]struct{}, len(doc.Suites))
	for _, sb := range doc.Suites {
		if _, dup := seen[sb.Name]; dup {
			return nil, config.Errorf(suiteKey(sb.Name), "declared more than once")
		}
		seen[sb.Name] = struct{}{}

		suite, err := translateSuite(sb)
		if err != nil {
			return nil, err
		}
		cfg.Suites = append(cfg.Suites, suite)
	}

	return cfg, nil
}

func translateSuite(sb *schema.SuiteBlock) (*config.Suite, error) {
	key := suiteKey(sb.Name)

	var body schema.Suite
	if diags := gohcl.DecodeBody(sb.Body, nil, &body); diags.HasErrors() {
		return nil, config.Errorf(key, "%s", diags.Error())
	}

	if body.Timeout < 0 {
		return nil, config.Errorf(key+": timeout", "must not be negative, got %d", body.Timeout)
	}
	for _, attr := range []struct {
		name   string
		values []int
	}{
		{"processes", body.Processes},
		{"threads", body.Threads},
		{"ks", body.Ks},
	} {
		for _, v := range attr.values {
			if v < 1 {
				return nil, config.Errorf(key+": "+attr.name, "values must be at least 1, got %d", v)
			}
		}
	}

	suite := &config.Suite{
		Name:      sb.Name,
		Graphs:    body.Graphs,
		Timeout:   body.Timeout,
		Processes: body.Processes,
		Threads:   body.Threads,
		Ks:        body.Ks,
		Epsilons:  body.Epsilons,
		Seeds:     body.Seeds,
	}

	seen := make(map[string]struct{}, len(body.Variants))
	for _, vb := range body.Variants {
		if _, dup := seen[vb.Name]; dup {
			return nil, config.Errorf(variantKey(sb.Name, vb.Name), "declared more than once")
		}
		seen[vb.Name] = struct{}{}

		variant, err := translateVariant(sb.Name, vb)
		if err != nil {
			return nil, err
		}
		suite.Variants = append(suite.Variants, variant)
	}

	return suite, nil
}

func translateVariant(suite string, vb *schema.VariantBlock) (*config.Variant, error) {
	key := variantKey(suite, vb.Name)

	var body schema.Variant
	if diags := gohcl.DecodeBody(vb.Body, nil, &body); diags.HasErrors() {
		return nil, config.Errorf(key, "%s", diags.Error())
	}

	variant := &config.Variant{
		Name:         vb.Name,
		GitURL:       body.GitURL,
		Branch:       body.Branch,
		Target:       body.Target,
		CompileFlags: body.CompileFlags,
		Args:         body.Args,
	}
	if variant.Branch == "" {
		variant.Branch = config.DefaultBranch
	}
	if variant.Target == "" {
		variant.Target = config.DefaultTarget
	}

	perK, err := decodePerKArgs(key, body.PerKArgs)
	if err != nil {
		return nil, err
	}
	variant.PerKArgs = perK

	return variant, nil
}

// decodePerKArgs evaluates the per-k-args expression. The attribute holds an
// object keyed by the number of blocks, which gohcl cannot decode into a
// map[int][]string by itself.
func decodePerKArgs(key string, expr hcl.Expression) (map[int][]string, error) {
	if expr == nil {
		return nil, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, config.Errorf(key+": per-k-args", "%s", diags.Error())
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.Type().IsObjectType() && !val.Type().IsMapType() {
		return nil, config.Errorf(key+": per-k-args", "must be an object keyed by the number of blocks, got %s", val.Type().FriendlyName())
	}

	perK := make(map[int][]string, val.LengthInt())
	for it := val.ElementIterator(); it.Next(); {
		kv, ev := it.Element()

		k, err := strconv.Atoi(kv.AsString())
		if err != nil {
			return nil, config.Errorf(key+": per-k-args", "key %q is not a number of blocks", kv.AsString())
		}

		list, err := convert.Convert(ev, cty.List(cty.String))
		if err != nil {
			return nil, config.Errorf(key+": per-k-args", "value for k=%d: %s", k, err)
		}
		if list.IsNull() {
			perK[k] = nil
			continue
		}

		var args []string
		for lit := list.ElementIterator(); lit.Next(); {
			_, el := lit.Element()
			args = append(args, el.AsString())
		}
		perK[k] = args
	}

	return perK, nil
}

func suiteKey(name string) string {
	return fmt.Sprintf("suite %q", name)
}

func variantKey(suite, variant string) string {
	return fmt.Sprintf("suite %q variant %q", suite, variant)
}
