package commands

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/battlesnakeio/snake/api"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	apiListen  = ":3005"
	promEnable = true
	promListen = ":9000"
)

func init() {
	serveCmd.Flags().StringVarP(&apiListen, "listen", "l", apiListen, "address to serve the browser game on")
	serveCmd.Flags().BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	serveCmd.Flags().StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")
}

var serveCmd = &cobra.Command{
	Use:    "serve",
	Short:  "serves the game to a browser",
	PreRun: func(c *cobra.Command, args []string) { prometheus() },
	RunE: func(c *cobra.Command, args []string) error {
		s := api.New(apiListen, cfg)
		log.WithFields(log.Fields{
			"listen": apiListen,
			"grid":   cfg.GridWidth(),
			"tick":   cfg.TickInterval,
		}).Info("open the game in a browser at http://localhost" + apiListen)

		go shutdownOnSignal(s)
		return s.WaitForExit()
	},
}

// shutdownOnSignal stops s on SIGINT or SIGTERM, giving open requests a few
// seconds to finish.
func shutdownOnSignal(s *api.Server) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigs
	log.WithField("signal", sig).Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		log.WithError(err).Warn("unable to shut down cleanly")
	}
}

func prometheus() {
	if !promEnable {
		log.Info("prometheus exporter not enabled")
		return
	}

	log.WithField("addr", promListen).Info("starting prometheus exporter")
	go func() {
		r := http.NewServeMux()
		r.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(promListen, r); err != nil {
			log.WithError(err).Warn("prometheus failed to listen")
		}
	}()
}
