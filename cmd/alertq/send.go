package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/alertq/internal/adapter/desktop"
	"github.com/jmylchreest/alertq/internal/host"
	"github.com/jmylchreest/alertq/internal/model"
	"github.com/jmylchreest/alertq/internal/queue"
)

var sendOpts struct {
	title    string
	subtitle string
	image    string
	buttons  []string
	file     string
}

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Present alerts as desktop notifications",
	Long: `Send one or more alerts through the desktop notification service.

Alerts are queued and shown one at a time; closing the visible
notification advances to the next. A single alert is built from flags,
or a batch is read from a YAML file:

  alertq send --title "Update available" --button Install --button Later
  alertq send -f alerts.yaml

The YAML file holds a list of alerts:

  - title: Update available
    subtitle: Version 2.4 is ready
    image: software-update
    buttons:
      - label: Install
      - label: Later
  - title: Backup finished`,
	RunE: runSend,
}

func init() {
	rootCmd.AddCommand(sendCmd)

	sendCmd.Flags().StringVarP(&sendOpts.title, "title", "t", "", "Alert title")
	sendCmd.Flags().StringVarP(&sendOpts.subtitle, "subtitle", "s", "", "Alert subtitle")
	sendCmd.Flags().StringVarP(&sendOpts.image, "image", "i", "", "Icon name or image path")
	sendCmd.Flags().StringArrayVarP(&sendOpts.buttons, "button", "b", nil,
		"Button label (repeatable)")
	sendCmd.Flags().StringVarP(&sendOpts.file, "file", "f", "",
		"YAML file with a list of alerts")
}

func runSend(cmd *cobra.Command, args []string) error {
	alerts, err := collectAlerts()
	if err != nil {
		return err
	}
	if len(alerts) == 0 {
		return fmt.Errorf("nothing to send: provide --title or --file")
	}

	surface, err := desktop.New("alertq", logger)
	if err != nil {
		return err
	}
	defer func() { _ = surface.Close() }()

	if !surface.Alive() {
		return fmt.Errorf("desktop notifications unavailable")
	}

	registry := host.NewRegistry(logger)

	opts := []queue.Option{}
	if cfg.Display.CountMode == "all" {
		opts = append(opts, queue.WithCountMode(queue.CountAll))
	}
	if cfg.Display.StackDuplicates {
		opts = append(opts, queue.WithStacking())
	}
	q := registry.Bind("desktop", surface, opts...)
	defer registry.Release("desktop")

	// The queue is single-goroutine; daemon signals are funneled into
	// the main loop instead of touching the queue directly.
	closed := make(chan struct{}, 16)
	surface.SetCloseHandler(func() {
		closed <- struct{}{}
	})

	for _, content := range alerts {
		q.Enqueue(content)
	}
	logger.Debug("alerts enqueued", "count", len(alerts), "backlog", q.PendingCount())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	for q.Len() > 0 {
		select {
		case <-closed:
			q.DismissActive()
		case <-ctx.Done():
			return nil
		}
	}
	return nil
}

// collectAlerts builds the alert batch from the file or from flags.
func collectAlerts() ([]model.AlertContent, error) {
	if sendOpts.file != "" {
		return readAlertFile(sendOpts.file)
	}

	if sendOpts.title == "" {
		return nil, nil
	}

	content := model.AlertContent{
		Title:    sendOpts.title,
		Subtitle: sendOpts.subtitle,
		Image:    sendOpts.image,
	}
	for _, label := range sendOpts.buttons {
		content.Buttons = append(content.Buttons, model.ButtonSpec{Label: label})
	}
	if err := content.Validate(); err != nil {
		return nil, err
	}
	return []model.AlertContent{content}, nil
}

// readAlertFile parses a YAML list of alerts.
func readAlertFile(path string) ([]model.AlertContent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read alert file: %w", err)
	}

	var alerts []model.AlertContent
	if err := yaml.Unmarshal(data, &alerts); err != nil {
		return nil, fmt.Errorf("failed to parse alert file: %w", err)
	}

	for i := range alerts {
		alerts[i].Axis = model.ParseAxis(alerts[i].AxisName)
		if err := alerts[i].Validate(); err != nil {
			return nil, fmt.Errorf("alert %d: %w", i, err)
		}
	}
	return alerts, nil
}
