package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"microswift-telemetry/sbd"
	"microswift-telemetry/swift"
)

var (
	buoyIDs          = kingpin.Flag("buoy", "3-digit microSWIFT ID(s) to follow").Required().Strings()
	interval         = kingpin.Flag("interval", "Poll interval").Default("15m").Duration()
	lookback         = kingpin.Flag("lookback", "How far back each poll queries").Default("24h").Duration()
	sinkType         = kingpin.Flag("sink", "Where to append decoded records").Default("sqlite").Enum("sqlite", "csv")
	baseURL          = kingpin.Flag("server", "SWIFT server base URL").Default(swift.DefaultServer).String()
	webListenAddress = kingpin.Flag("web.listen-address", "Address on which to expose metrics.").Default(":9796").String()
	metricsEndpoint  = kingpin.Flag("web.telemetry-path", "Path under which to expose metrics.").Default("/metrics").String()

	logger log.Logger
)

// Metrics
var (
	messagesRead = promauto.NewCounter(prometheus.CounterOpts{
		Name: "swift_messages_read",
		Help: "The total number of SBD messages pulled from the SWIFT server",
	})
	recordsWritten = promauto.NewCounter(prometheus.CounterOpts{
		Name: "swift_records_written",
		Help: "The total number of decoded records appended to the sink",
	})
	decodeErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "swift_decode_errors",
		Help: "The total number of well-formed messages that failed to decode",
	})
	opaqueMessages = promauto.NewCounter(prometheus.CounterOpts{
		Name: "swift_opaque_messages",
		Help: "The total number of messages carrying a verbatim diagnostic payload instead of sensor data",
	})
	pullErrorCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swift_pull_errors_total",
			Help: `Total SWIFT server query errors`,
		},
		[]string{"buoy"},
	)
)

func main() {
	kingpin.Version("dev")
	kingpin.HelpFlag.Short('h')
	kingpin.CommandLine.UsageWriter(os.Stdout)
	kingpin.Parse()

	logger = log.NewLogfmtLogger(os.Stderr)

	var sink Writer
	switch *sinkType {
	case "sqlite":
		sink = &DbWriter{}
	case "csv":
		sink = &FileWriter{}
	}

	ch := make(chan sbd.Record, 32)
	go sinkWriter(sink, ch)
	go metricServer()

	client := &swift.Client{BaseURL: *baseURL}
	poll(client, ch)
}

func metricServer() {
	http.Handle(*metricsEndpoint, promhttp.Handler())
	err := http.ListenAndServe(*webListenAddress, nil)
	if err != nil {
		panic(err)
	}
}

// poll pulls the lookback window on every tick and forwards records from
// files not seen before. A failed pull is logged and counted; the next tick
// tries again, there is no retry in between.
func poll(client *swift.Client, ch chan<- sbd.Record) {
	seen := make(map[string]struct{})

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for ; ; <-ticker.C {
		end := time.Now().UTC()
		start := end.Add(-*lookback)

		for _, id := range *buoyIDs {
			ctx, cancel := context.WithTimeout(context.Background(), *interval)
			files, err := client.PullMessages(ctx, []string{id}, start, end)
			cancel()
			if err != nil {
				level.Error(logger).Log("buoy", id, "err", err)
				pullErrorCounter.With(prometheus.Labels{"buoy": id}).Inc()
				continue
			}

			fresh := make(map[string][]byte)
			for name, content := range files {
				if _, ok := seen[name]; ok {
					continue
				}
				seen[name] = struct{}{}
				fresh[name] = content
			}
			if len(fresh) == 0 {
				continue
			}
			messagesRead.Add(float64(len(fresh)))

			batch := sbd.Collect(logger, fresh)
			failed, opaque := splitErrors(fresh, batch.Errors)
			decodeErrors.Add(float64(failed))
			opaqueMessages.Add(float64(opaque))
			for _, rec := range batch.Records {
				ch <- rec
			}
		}
	}
}

// splitErrors separates a batch's error rows into well-formed messages
// that failed to decode and opaque payloads the modem sent in place of
// sensor data. Clean rows carry no diagnostic and count as neither.
func splitErrors(files map[string][]byte, errs []sbd.ErrorRecord) (failed, opaque int) {
	for _, e := range errs {
		if len(e.Diagnostic) == 0 {
			continue
		}
		msg := sbd.NewRawMessage(e.Filename, files[e.Filename])
		if msg.Classify().Decodable {
			failed++
		} else {
			opaque++
		}
	}
	return failed, opaque
}

func sinkWriter(sink Writer, ch <-chan sbd.Record) {
	var nextRotate time.Time

	defer sink.Close()
	for rec := range ch {
		if nextRotate.IsZero() || rec.Datetime.After(nextRotate) {
			nextRotate = rec.Datetime.Truncate(24 * time.Hour).Add(24 * time.Hour)
			if err := sink.Rotate(rec.Datetime); err != nil {
				// Almost certainly unrecoverable.
				panic(err)
			}
		}

		if err := sink.Write(rec); err != nil {
			panic(err)
		}

		recordsWritten.Inc()
	}
}
