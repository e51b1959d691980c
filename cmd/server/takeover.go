package main

import (
	"bufio"
	"context"
	"fmt"
	"github.com/QuangTung97/booth-ads/config"
	"github.com/QuangTung97/booth-ads/pkg/backendclient"
	"github.com/QuangTung97/booth-ads/service/adpolicy"
	"github.com/QuangTung97/booth-ads/service/takeover"
	"github.com/spf13/cobra"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"
)

func takeoverCommand() *cobra.Command {
	var addr string
	var venueID string

	cmd := &cobra.Command{
		Use:   "takeover",
		Short: "show the fullscreen takeover of a venue in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := config.Load()
			if addr != "" {
				conf.Backend.BaseURL = addr
			}
			return runTakeover(cmd.Context(), conf, venueID, os.Stdin, os.Stdout)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "base url of the booth ads http api, default backend.base_url")
	cmd.Flags().StringVar(&venueID, "venue", "", "venue id")
	_ = cmd.MarkFlagRequired("venue")
	return cmd
}

func runTakeover(ctx context.Context, conf config.Config, venueID string, in io.Reader, out io.Writer) error {
	loc, err := conf.Location()
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	ads, err := backendclient.New(conf.Backend).ListVenueAds(ctx, venueID)
	if err != nil {
		_, _ = fmt.Fprintln(out, "no ads available:", err)
		return nil
	}

	result := adpolicy.Evaluate(time.Now().In(loc), ads)
	for _, ex := range result.Excluded {
		_, _ = fmt.Fprintf(out, "excluded %s: %v\n", ex.AdID, ex.Err)
	}
	if banner := result.ActiveBanner(); banner != nil {
		_, _ = fmt.Fprintf(out, "banner: %s (%s)\n", banner.CampaignName, banner.MediaURL)
	}

	fullscreen := result.ActiveFullscreen()
	if fullscreen == nil {
		_, _ = fmt.Fprintln(out, "no fullscreen ad")
		return nil
	}

	var mut sync.Mutex
	printf := func(format string, a ...interface{}) {
		mut.Lock()
		defer mut.Unlock()
		_, _ = fmt.Fprintf(out, format, a...)
	}

	closed := make(chan struct{})
	var closeOnce sync.Once

	ctrl := takeover.New(
		takeover.WithStateObserver(func(s takeover.State) {
			printf("%s\n", s)
		}),
		takeover.WithClosedCallback(func() {
			closeOnce.Do(func() { close(closed) })
		}),
		takeover.WithOpener(takeover.OpenerFunc(func(url string) {
			printf("open: %s\n", url)
		})),
	)
	defer ctrl.Close()

	printf("fullscreen: %s (%s)\n", fullscreen.CampaignName, fullscreen.MediaURL)
	printf("press Enter to dismiss, o then Enter to open the link\n")
	ctrl.Show(fullscreen)

	inputDone := make(chan struct{})
	go func() {
		defer close(inputDone)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			switch strings.TrimSpace(scanner.Text()) {
			case "":
				if !ctrl.Dismiss() {
					printf("wait for the countdown\n")
				}
			case "o":
				if _, ok := ctrl.Click(); !ok {
					printf("no click-through url\n")
				}
			}
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	defer signal.Stop(stop)

	select {
	case <-closed:
	case <-inputDone:
	case <-stop:
	case <-ctx.Done():
	}
	return nil
}
