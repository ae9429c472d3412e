// Command dashboard is a terminal monitoring console against a running API:
// it logs in, resolves the current user, and renders the live telemetry table
// on every refresh.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/gridsentry/genset-monitoring/internal/dashboard"
	"github.com/gridsentry/genset-monitoring/pkg/client"
	"github.com/gridsentry/genset-monitoring/pkg/logger"
)

func main() {
	var (
		apiURL   = flag.String("api", "http://localhost:8080", "base URL of the monitoring API")
		email    = flag.String("email", "", "login email")
		password = flag.String("password", "", "login password")
		station  = flag.String("station", "", "station code filter (empty = all)")
	)
	flag.Parse()

	log := logger.Init(logger.Options{Level: "info", Pretty: true})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api, err := client.New(*apiURL, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid api url")
	}

	if _, err := api.Login(ctx, *email, *password); err != nil {
		log.Fatal().Err(err).Msg("login failed")
	}

	user := api.ResolveCurrentUser(ctx)
	if user == nil {
		log.Fatal().Msg("session did not resolve to a user")
	}
	log.Info().Str("name", user.Name).Msg("logged in")

	notify := dashboard.NoticeFunc(func(n dashboard.Notice) {
		switch n.Level {
		case dashboard.LevelError:
			log.Error().Str("title", n.Title).Msg(n.Message)
		default:
			log.Info().Str("title", n.Title).Msg(n.Message)
		}
	})

	bell := dashboard.NewNotificationBell(api, notify)
	bell.SetUser(user)
	bell.Load(ctx)

	monitor := dashboard.NewTelemetryMonitor(api, notify)
	go monitor.Run(ctx)
	if *station != "" {
		monitor.SetStationFilter(ctx, *station)
	}

	render := time.NewTicker(5 * time.Second)
	defer render.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-render.C:
			printTable(monitor, bell.UnreadCount())
		}
	}
}

func printTable(monitor *dashboard.TelemetryMonitor, unread int) {
	rows, page, pages := monitor.Page()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STATION\tVOLTAGE (V)\tCURRENT (A)\tPOWER (kW)\tTIME\tSTATUS")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%.1f\t%.1f\t%.1f\t%s\t%s\n",
			r.StationCode, r.Voltage, r.Current, r.Power,
			r.CreatedAt.Format("2006-01-02 15:04"), r.Status)
	}
	_ = w.Flush()
	fmt.Printf("page %d/%d · %d unread notifications\n\n", page, pages, unread)
}
