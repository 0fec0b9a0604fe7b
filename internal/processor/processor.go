// Package processor implements the tick loop (C6): load the ruleset once,
// then at a fixed interval run every rule through the window evaluator,
// the matcher/adapter/engine pipeline, the notifier, and the counters.
package processor

import (
	"context"
	"time"

	"github.com/practo/klog/v2"
	"golang.org/x/sync/errgroup"
	"k8s.io/client-go/kubernetes"

	"github.com/practo/k8s-uptime-scaler/internal/config"
	"github.com/practo/k8s-uptime-scaler/internal/engine"
	"github.com/practo/k8s-uptime-scaler/internal/resource"
	"github.com/practo/k8s-uptime-scaler/internal/window"
)

// Notifier is the subset of internal/notify's Slack client the processor
// needs; an interface here keeps this package free of a slack-go import.
type Notifier interface {
	Notify(ruleID, channel string, isUp bool, results []engine.Result)
}

// Processor owns one tick of ruleset evaluation against a live cluster.
type Processor struct {
	Clientset kubernetes.Interface
	Registry  resource.Registry
	Ruleset   *config.Ruleset
	Metrics   engine.Metrics
	Notifier  Notifier
	Now       func() time.Time // overridable for tests; defaults to time.Now
}

// New builds a Processor with Now defaulted to time.Now.
func New(clientset kubernetes.Interface, registry resource.Registry, ruleset *config.Ruleset, metrics engine.Metrics, notifier Notifier) *Processor {
	return &Processor{
		Clientset: clientset,
		Registry:  registry,
		Ruleset:   ruleset,
		Metrics:   metrics,
		Notifier:  notifier,
		Now:       time.Now,
	}
}

// Run ticks forever on interval until ctx is cancelled. Ticks never
// overlap: a slow tick delays the next one.
func (p *Processor) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	p.Tick(ctx)
	for {
		select {
		case <-ctx.Done():
			klog.V(1).Info("processor: shutting down")
			return
		case <-ticker.C:
			p.Tick(ctx)
		}
	}
}

// Tick runs every rule once, in order. A single rule's failure is logged
// and does not abort the rest of the ruleset.
func (p *Processor) Tick(ctx context.Context) {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	at := now()

	for _, rule := range p.Ruleset.Rules {
		results, isUp, err := p.processRule(ctx, rule, at)
		if err != nil {
			klog.Errorf("rule %s: %v", rule.ID, err)
			continue
		}
		if len(results) == 0 {
			continue
		}

		klog.V(1).Infof("rule %s: acted on %d object(s)", rule.ID, len(results))
		if p.Notifier != nil {
			p.Notifier.Notify(rule.ID, rule.SlackChannel, isUp, results)
		}
	}
}

func (p *Processor) processRule(ctx context.Context, rule config.Rule, at time.Time) ([]engine.Result, bool, error) {
	isUp, err := window.Evaluate(rule.Uptime, at)
	if err != nil {
		return nil, false, err
	}

	kinds, err := rule.Kinds()
	if err != nil {
		return nil, false, err
	}

	// List every non-Namespace kind concurrently; patches below still
	// apply strictly in the rule's kind order, one kind at a time.
	listed := make([][]resource.Object, len(kinds))
	group, gctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		if kind == config.KindNamespace {
			continue
		}
		i, kind := i, kind
		group.Go(func() error {
			objs, err := engine.ListKind(gctx, p.Clientset, p.Registry, kind, "")
			if err != nil {
				klog.Errorf("rule %s: listing kind %s failed: %v", rule.ID, kind, err)
				return nil
			}
			listed[i] = objs
			return nil
		})
	}
	_ = group.Wait()

	var results []engine.Result
	for i, kind := range kinds {
		if kind == config.KindNamespace {
			fanOut, err := engine.ProcessNamespaceFanOut(ctx, p.Clientset, p.Registry, rule.ID, rule.JMESPath, isUp, rule.Replicas, p.Metrics)
			if err != nil {
				klog.Errorf("rule %s: namespace fan-out failed: %v", rule.ID, err)
				continue
			}
			results = append(results, fanOut...)
			continue
		}

		kindResults, err := engine.DecideAndApply(ctx, p.Clientset, p.Registry, kind, rule.ID, rule.JMESPath, isUp, rule.Replicas, true, p.Metrics, listed[i])
		if err != nil {
			klog.Errorf("rule %s: kind %s failed: %v", rule.ID, kind, err)
			continue
		}
		results = append(results, kindResults...)
	}

	return results, isUp, nil
}
