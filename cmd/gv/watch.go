package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/alfredjeanlab/ganttview/internal/events"
	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <view-name>",
	Short: "Watch a view and reprint its chart when records change",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		interval, _ := cmd.Flags().GetDuration("interval")
		once, _ := cmd.Flags().GetBool("once")

		// Setup signal handling.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		// Initial fetch.
		if err := fetchAndPrint(ctx, name); err != nil {
			return err
		}
		if once {
			return nil
		}

		// Choose event-driven or polling mode.
		natsURL := os.Getenv("GANTT_NATS_URL")
		if natsURL != "" {
			return watchNATS(ctx, natsURL, name)
		}
		return watchPoll(ctx, interval, name)
	},
}

// watchNATS subscribes to NATS events and re-fetches on changes with debounce.
func watchNATS(ctx context.Context, natsURL, name string) error {
	// reconnectCh receives a signal when the NATS client reconnects after
	// a disconnect, so we can immediately re-fetch for missed events.
	reconnectCh := make(chan struct{}, 1)

	sub, err := events.NewNATSSubscriber(natsURL,
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Printf("nats: disconnected: %v", err)
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			log.Printf("nats: reconnected")
			select {
			case reconnectCh <- struct{}{}:
			default:
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("connecting to NATS: %w", err)
	}
	defer sub.Close()

	ch, cancel, err := sub.Subscribe("gantt.>")
	if err != nil {
		return fmt.Errorf("subscribing to events: %w", err)
	}
	defer cancel()

	debounce := time.NewTimer(0)
	debounce.Stop()
	// Drain the timer channel in case it fired between NewTimer and Stop.
	select {
	case <-debounce.C:
	default:
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case payload, ok := <-ch:
			if !ok {
				return nil
			}
			if !eventMentionsView(payload, name) {
				continue
			}
			debounce.Reset(200 * time.Millisecond)
		case <-reconnectCh:
			debounce.Reset(0) // immediate re-fetch
		case <-debounce.C:
			if err := fetchAndPrint(ctx, name); err != nil {
				return err
			}
		}
	}
}

// watchPoll re-fetches at the given interval.
func watchPoll(ctx context.Context, interval time.Duration, name string) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(interval):
		}
		if err := fetchAndPrint(ctx, name); err != nil {
			return err
		}
	}
}

// eventMentionsView reports whether an event payload concerns the watched view.
// Events without a recognizable view name are treated as relevant.
func eventMentionsView(payload []byte, name string) bool {
	var evt struct {
		ViewName string `json:"view_name"`
		View     *struct {
			Name string `json:"name"`
		} `json:"view"`
	}
	if err := json.Unmarshal(payload, &evt); err != nil {
		return true
	}
	if evt.ViewName != "" {
		return evt.ViewName == name
	}
	if evt.View != nil && evt.View.Name != "" {
		return evt.View.Name == name
	}
	return true
}

// fetchAndPrint generates the view's chart and prints it.
func fetchAndPrint(ctx context.Context, name string) error {
	resp, err := ganttClient.GetGantt(ctx, name, nil)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("--- %s @ %s ---\n", name, time.Now().Format("15:04:05"))
	if jsonOutput {
		printJSON(resp)
		return nil
	}
	printResult(resp.Result, resp.Stats)
	return nil
}

func init() {
	watchCmd.Flags().Duration("interval", 5*time.Second, "polling interval")
	watchCmd.Flags().Bool("once", false, "exit after first fetch")
}
