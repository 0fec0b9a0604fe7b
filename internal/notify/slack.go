package notify

import (
	"fmt"
	"os"
	"strings"

	"github.com/practo/klog/v2"
	"github.com/slack-go/slack"

	"github.com/practo/k8s-uptime-scaler/internal/engine"
)

// tokenEnvVar is the environment variable the process reads the Slack bot
// token from; set via a mounted Secret rather than a flag.
const tokenEnvVar = "SLACK_API_TOKEN"

// Slack uploads a rule's CSV result summary to its configured channel.
// A missing token or channel is not fatal: the run's scaling results are
// already applied, so a notification failure is logged and swallowed
// rather than rethrown: notification is best-effort.
type Slack struct {
	client *slack.Client
}

// NewSlack builds a client from SLACK_API_TOKEN. Returns nil if the token
// is unset, in which case Notify becomes a no-op.
func NewSlack() *Slack {
	token := os.Getenv(tokenEnvVar)
	if token == "" {
		return nil
	}
	return &Slack{client: slack.New(token)}
}

// Notify uploads results as a CSV file to channel, with a comment naming
// the rule and the direction of the run. A nil receiver or empty channel
// is a no-op.
func (s *Slack) Notify(ruleID, channel string, isUp bool, results []engine.Result) {
	if s == nil || channel == "" || len(results) == 0 {
		return
	}

	direction := "Down"
	if isUp {
		direction = "Up"
	}
	comment := fmt.Sprintf("Scaling %s event completed for rule id %s", direction, ruleID)

	csvBytes, err := BuildCSV(results)
	if err != nil {
		klog.Errorf("rule %s: building csv for slack notification failed: %v", ruleID, err)
		return
	}

	_, err = s.client.UploadFileV2(slack.UploadFileV2Parameters{
		Filename:       strings.ToLower(ruleID) + "-results.csv",
		FileSize:       len(csvBytes),
		Content:        string(csvBytes),
		Channel:        channel,
		InitialComment: comment,
		Title:          fmt.Sprintf("%s scaling results", ruleID),
	})
	if err != nil {
		klog.Errorf("rule %s: slack upload to channel %s failed: %v", ruleID, channel, err)
		return
	}
	klog.V(2).Infof("rule %s: posted %d result(s) to slack channel %s", ruleID, len(results), channel)
}
