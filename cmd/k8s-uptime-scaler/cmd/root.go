// Package cmd builds the CLI surface: a single
// "run" command with flags for the tick interval, rules file, log
// verbosity, and notifier selection, wired through viper so every flag is
// also settable by environment variable.
package cmd

import (
	"strings"

	"github.com/practo/klog/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand builds the top-level command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "k8s-uptime-scaler",
		Short: "Scales Kubernetes workloads down off-hours and back up on-hours",
	}

	v := viper.New()
	v.SetEnvPrefix("k8s_uptime_scaler")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	root.AddCommand(newRunCommand(v))
	return root
}

func bindFlag(v *viper.Viper, cmd *cobra.Command, name string) {
	if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
		klog.Fatalf("bind flag %s: %v", name, err)
	}
}
