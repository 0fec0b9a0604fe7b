// Package config loads the declarative rules file that drives the scaling
// engine. A Rule is reloaded only on process restart; the loaded Ruleset is
// immutable and safely shared without locking.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/practo/k8s-uptime-scaler/internal/errs"
)

// Kind is one of the five workload kinds a Rule can target.
type Kind string

const (
	KindDeployment  Kind = "Deployment"
	KindStatefulSet Kind = "StatefulSet"
	KindNamespace   Kind = "Namespace"
	KindCronJob     Kind = "CronJob"
	KindHPA         Kind = "HPA"
)

var kindAliases = map[string]Kind{
	"deployment":               KindDeployment,
	"deployments":              KindDeployment,
	"statefulset":              KindStatefulSet,
	"statefulsets":             KindStatefulSet,
	"namespace":                KindNamespace,
	"namespaces":               KindNamespace,
	"cronjob":                  KindCronJob,
	"cronjobs":                 KindCronJob,
	"hpa":                      KindHPA,
	"hpas":                     KindHPA,
	"horizontalpodautoscaler":  KindHPA,
	"horizontalpodautoscalers": KindHPA,
}

// ParseKind resolves a kind string, case- and singular/plural-insensitively.
func ParseKind(s string) (Kind, error) {
	k, ok := kindAliases[strings.ToLower(s)]
	if !ok {
		return "", errs.New(errs.UserInput, fmt.Errorf("unsupported kind %q", s))
	}
	return k, nil
}

// Rule is one declarative record: a window, an expression, the kinds it
// applies to, and an optional replica target.
type Rule struct {
	ID           string   `yaml:"id"`
	Uptime       string   `yaml:"uptime"`
	JMESPath     string   `yaml:"jmespath"`
	Resource     []string `yaml:"resource"`
	Replicas     *int32   `yaml:"replicas,omitempty"`
	SlackChannel string   `yaml:"slack_channel,omitempty"`
}

// Ruleset is an ordered sequence of rules; identifiers need not be unique.
type Ruleset struct {
	Rules []Rule `yaml:"rules"`
}

// document is the top-level YAML shape.
type document struct {
	Rules []Rule `yaml:"rules"`
}

// Load reads and parses the rules file at path. A read or parse failure is
// an IO error and is fatal to the process.
func Load(path string) (*Ruleset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.New(errs.IO, fmt.Errorf("read rules file %q: %w", path, err))
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errs.New(errs.IO, fmt.Errorf("parse rules file %q: %w", path, err))
	}

	return &Ruleset{Rules: doc.Rules}, nil
}

// Kinds resolves every configured resource string on the rule to a Kind.
// An unsupported kind string is a UserInput error naming that single kind;
// callers should skip only that kind and continue with the rest.
func (r Rule) Kinds() ([]Kind, error) {
	kinds := make([]Kind, 0, len(r.Resource))
	for _, s := range r.Resource {
		k, err := ParseKind(s)
		if err != nil {
			return kinds, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
