package main

import (
	"encoding/csv"
	"flag"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/luismcruz/pricegen"
	"github.com/luismcruz/pricegen/internal/config"
	"github.com/luismcruz/pricegen/internal/logging"
	"github.com/luismcruz/pricegen/series"
)

func main() {

	configPath := flag.String("config", "", "YAML config file")
	steps := flag.Int("steps", 0, "number of steps (overrides config)")
	seed := flag.Int64("seed", 0, "random seed (overrides config, 0 keeps it)")
	out := flag.String("out", "", "CSV output file (stdout when empty)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.Fatal(err)
	}

	if *steps > 0 {
		cfg.Steps = *steps
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	if err := cfg.Validate(); err != nil {
		logrus.Fatal(err)
	}

	// keep the CSV clean when it goes to stdout
	var console io.Writer = os.Stdout
	if *out == "" {
		console = os.Stderr
	}

	logger, err := logging.New(logging.Config{
		Level:      cfg.Log.Level,
		OutputFile: cfg.Log.File,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
		Console:    console,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			logger.Fatal(errors.Wrap(err, "create output"))
		}
		defer f.Close()
		w = f
	}

	if err := run(cfg, logger, w); err != nil {
		logger.Fatal(err)
	}
}

func run(cfg config.Config, logger *logrus.Logger, w io.Writer) error {

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	entry := logger.WithField("instrument", cfg.Instrument)

	process := pricegen.NewPriceProcess(cfg.InitialPrice, cfg.Volatility,
		pricegen.Seed(seed),
		pricegen.MeanReversionSpeed(cfg.MeanReversionSpeed),
		pricegen.WithLogger(entry),
	)

	gen := series.NewGenerator(cfg.Instrument, time.Now().UTC(), process,
		series.TimePace(cfg.Pace),
		series.Seed(seed+1),
	)

	entry.Infof("generating %d steps from %.4f (volatility %.4f, seed %d)",
		cfg.Steps, cfg.InitialPrice, cfg.Volatility, seed)

	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"time", "instrument", "price", "volume"}); err != nil {
		return errors.Wrap(err, "write header")
	}

	for i := 0; i < cfg.Steps; i++ {

		p := gen.Next()

		record := []string{
			p.Time.Format(time.RFC3339Nano),
			p.Instrument,
			strconv.FormatFloat(p.Price, 'f', -1, 64),
			strconv.FormatFloat(p.Volume, 'f', 2, 64),
		}

		if err := writer.Write(record); err != nil {
			return errors.Wrapf(err, "write step %d", i)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrap(err, "flush csv")
	}

	entry.Infof("done, last price %.4f", process.CurrentPrice())

	return nil
}
