package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/practo/klog/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/practo/k8s-uptime-scaler/internal/config"
	"github.com/practo/k8s-uptime-scaler/internal/metrics"
	"github.com/practo/k8s-uptime-scaler/internal/notify"
	"github.com/practo/k8s-uptime-scaler/internal/processor"
	"github.com/practo/k8s-uptime-scaler/internal/resource"
)

const (
	flagInterval    = "interval"
	flagRules       = "rules"
	flagDebug       = "debug"
	flagCommType    = "comm-type"
	flagCommDetails = "comm-details"
	flagKubeconfig  = "kubeconfig"
	flagMetricsAddr = "metrics-addr"
)

func newRunCommand(v *viper.Viper) *cobra.Command {
	run := &cobra.Command{
		Use:   "run",
		Short: "Run the scaling tick loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runE(v)
		},
	}

	run.Flags().Int(flagInterval, 60, "tick period, in seconds")
	run.Flags().String(flagRules, "/config/rules.yaml", "path to the rules file")
	run.Flags().Count(flagDebug, "increase log verbosity (repeatable)")
	run.Flags().String(flagCommType, "", "notifier type (slack), empty disables notifications")
	run.Flags().String(flagCommDetails, "", "notifier-specific detail (e.g. slack workspace)")
	run.Flags().String(flagKubeconfig, "", "path to a kubeconfig; empty uses in-cluster config")
	run.Flags().String(flagMetricsAddr, ":9090", "address the /metrics endpoint listens on")

	for _, name := range []string{flagInterval, flagRules, flagDebug, flagCommType, flagCommDetails, flagKubeconfig, flagMetricsAddr} {
		bindFlag(v, run, name)
	}

	return run
}

func runE(v *viper.Viper) error {
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	if debug := v.GetInt(flagDebug); debug > 0 {
		_ = fs.Set("v", strconv.Itoa(debug))
	}

	ruleset, err := config.Load(v.GetString(flagRules))
	if err != nil {
		return fmt.Errorf("startup: %w", err)
	}

	clientset, err := buildClientset(v.GetString(flagKubeconfig))
	if err != nil {
		return fmt.Errorf("startup: building kube client: %w", err)
	}

	counters := metrics.NewCounters()

	var notifier processor.Notifier
	if v.GetString(flagCommType) == "slack" {
		if slack := notify.NewSlack(); slack != nil {
			notifier = slack
		} else {
			klog.Warningf("comm-type=slack requested but %s (or SLACK_API_TOKEN) is unset; notifications disabled", flagCommDetails)
		}
	}

	p := processor.New(clientset, resource.NewRegistry(), ruleset, counters, notifier)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		if err := metrics.Serve(ctx, v.GetString(flagMetricsAddr)); err != nil {
			klog.Errorf("metrics server: %v", err)
		}
	}()

	p.Run(ctx, time.Duration(v.GetInt(flagInterval))*time.Second)
	return nil
}

func buildClientset(kubeconfig string) (kubernetes.Interface, error) {
	var cfg *rest.Config
	var err error
	if kubeconfig != "" {
		cfg, err = clientcmd.BuildConfigFromFlags("", kubeconfig)
	} else {
		cfg, err = rest.InClusterConfig()
		if err != nil {
			if home, herr := os.UserHomeDir(); herr == nil {
				cfg, err = clientcmd.BuildConfigFromFlags("", home+"/.kube/config")
			}
		}
	}
	if err != nil {
		return nil, err
	}
	return kubernetes.NewForConfig(cfg)
}
