package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"microswift-telemetry/sbd"
	"microswift-telemetry/swift"
)

var (
	buoyIDs   = kingpin.Flag("buoy", "3-digit microSWIFT ID(s), e.g. 043").Required().Strings()
	startDate = kingpin.Flag("start", "Query start date (UTC), YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS").Required().String()
	endDate   = kingpin.Flag("end", "Query end date (UTC). Defaults to now.").String()
	format    = kingpin.Flag("format", "Product to download").Default("zip").Enum("zip", "json", "kml")
	outDir    = kingpin.Flag("dir", "Directory to save products in").Default(".").String()
	summary   = kingpin.Flag("summary", "Decode the messages and log batch counts instead of saving").Bool()
	baseURL   = kingpin.Flag("server", "SWIFT server base URL").Default(swift.DefaultServer).String()
	timeout   = kingpin.Flag("timeout", "Per-query timeout").Default("2m").Duration()
)

const fileStampLayout = "2006-01-02T15Z"

func main() {
	kingpin.Version("dev")
	kingpin.HelpFlag.Short('h')
	kingpin.CommandLine.UsageWriter(os.Stdout)
	kingpin.Parse()

	logger := log.NewLogfmtLogger(os.Stderr)

	start, err := parseDate(*startDate)
	if err != nil {
		level.Error(logger).Log("flag", "start", "err", err)
		os.Exit(2)
	}
	end := time.Now().UTC()
	if *endDate != "" {
		if end, err = parseDate(*endDate); err != nil {
			level.Error(logger).Log("flag", "end", "err", err)
			os.Exit(2)
		}
	}

	client := &swift.Client{BaseURL: *baseURL}
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if *summary {
		summarize(ctx, logger, client, start, end)
		return
	}

	for _, id := range *buoyIDs {
		product, err := client.Pull(ctx, id, start, end, swift.Format(*format))
		if err != nil {
			level.Error(logger).Log("buoy", id, "err", err)
			os.Exit(1)
		}

		name := "microSWIFT" + id + "_" +
			start.Format(fileStampLayout) + "_to_" + end.Format(fileStampLayout) +
			"." + *format
		path := filepath.Join(*outDir, name)
		if err := os.WriteFile(path, product, 0o644); err != nil {
			level.Error(logger).Log("path", path, "err", err)
			os.Exit(1)
		}
		level.Info(logger).Log("buoy", id, "saved", path, "bytes", len(product))
	}
}

func summarize(ctx context.Context, logger log.Logger, client *swift.Client, start, end time.Time) {
	files, err := client.PullMessages(ctx, *buoyIDs, start, end)
	if err != nil {
		level.Error(logger).Log("err", err)
		os.Exit(1)
	}

	batch := sbd.Collect(logger, files)
	failed := 0
	for _, e := range batch.ErrorTable() {
		if len(e.Diagnostic) == 0 {
			continue
		}
		failed++
		level.Debug(logger).Log("file", e.Filename, "diagnostic", string(e.Diagnostic))
	}
	level.Info(logger).Log(
		"messages", len(files),
		"records", len(batch.Records),
		"failed", failed,
	)
	if len(batch.Records) > 0 {
		first := batch.Records[0].Datetime
		last := batch.Records[len(batch.Records)-1].Datetime
		level.Info(logger).Log("first", first.Format(time.RFC3339), "last", last.Format(time.RFC3339))
	}
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	return t.UTC(), err
}
