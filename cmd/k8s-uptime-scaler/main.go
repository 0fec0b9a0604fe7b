package main

import (
	"os"

	"github.com/practo/klog/v2"

	"github.com/practo/k8s-uptime-scaler/cmd/k8s-uptime-scaler/cmd"
)

func main() {
	if err := cmd.NewRootCommand().Execute(); err != nil {
		klog.Errorf("%v", err)
		os.Exit(1)
	}
}
