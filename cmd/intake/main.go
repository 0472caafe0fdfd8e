// Command intake runs the transaction intake pipeline from the command line:
// it reads a transaction record as JSON, validates it, and submits it to the
// configured backend with retry, caching the outcome locally. Companion flags
// inspect or clear the cached last submission.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"tcintake/internal/analytics"
	"tcintake/internal/auth"
	"tcintake/internal/blob"
	"tcintake/internal/docmail"
	"tcintake/internal/form"
	"tcintake/internal/infra/persistence"
	"tcintake/internal/platform/config"
	"tcintake/internal/submission"
	"tcintake/internal/validation"
	"tcintake/pkg/domain"
)

var exitFunc = os.Exit

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "intake:", err)
		exitFunc(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("intake", flag.ContinueOnError)
	recordPath := fs.String("record", "", "path to a transaction record JSON file (default stdin)")
	showLast := fs.Bool("last", false, "print the cached last submission and exit")
	clearLast := fs.Bool("clear", false, "clear the cached last submission and exit")
	emailTo := fs.String("email", "", "email the submitted document to this address")
	pdfPath := fs.String("pdf", "", "path to a rendered PDF to send with -email")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.AuthRequired {
		gate := &auth.EnvGate{}
		if !gate.Authenticated(ctx) {
			return fmt.Errorf("not authenticated; set INTAKE_AUTHENTICATED=true or disable the gate")
		}
	}

	store, err := persistence.Open(ctx, persistence.Config{
		Driver: persistence.Driver(cfg.StoreDriver),
		Path:   cfg.StorePath,
		DSN:    cfg.StoreDSN,
	})
	if err != nil {
		return fmt.Errorf("open submission cache: %w", err)
	}
	defer func() { _ = store.Close() }()

	archive, err := blob.Open(ctx, blob.OpenConfig{
		Driver: blob.Driver(cfg.BlobDriver),
		Root:   cfg.BlobRoot,
		S3: blob.S3Config{
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			PathStyle:       cfg.S3PathStyle,
		},
	})
	if err != nil {
		return fmt.Errorf("open document archive: %w", err)
	}

	recorder, err := analytics.NewPrometheusRecorder(nil)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}
	if cfg.MetricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				logger.Warn("metrics listener stopped", zap.Error(err))
			}
		}()
	}

	var engineOpts []validation.Option
	if cfg.CommissionCapPercent > 0 {
		engineOpts = append(engineOpts, validation.WithCommissionCap(cfg.CommissionCapPercent))
	}
	engine := validation.NewEngine(engineOpts...)

	pipe := submission.New(cfg.SubmitEndpoint, store,
		submission.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		submission.WithValidator(engine),
		submission.WithArchive(archive),
		submission.WithAnalytics(recorder),
		submission.WithLogger(logger),
		submission.WithRetry(submission.RetryConfig{
			MaxAttempts:   cfg.RetryMaxAttempts,
			Delay:         cfg.RetryDelay,
			BackoffFactor: cfg.RetryBackoffFactor,
		}),
	)

	switch {
	case *showLast:
		rec, ok := pipe.LastSubmission(ctx)
		if !ok {
			fmt.Fprintln(stdout, "no cached submission")
			return nil
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	case *clearLast:
		pipe.ClearLastSubmission(ctx)
		fmt.Fprintln(stdout, "cleared")
		return nil
	}

	record, err := readRecord(*recordPath, stdin)
	if err != nil {
		return err
	}
	reportSections(stdout, engine, record)

	result := pipe.Submit(ctx, record, func(p submission.Progress) {
		fmt.Fprintf(stdout, "[%3.0f%%] %-10s %s\n", p.Percent, p.Stage, p.Message)
	})
	if !result.Success {
		return fmt.Errorf("submission failed: %s", strings.Join(result.Errors, "; "))
	}
	fmt.Fprintf(stdout, "submitted %s at %s\n", result.TransactionID, result.SubmissionDate)

	if *emailTo != "" {
		if err := emailDocument(ctx, cfg, logger, *emailTo, *pdfPath, result.TransactionID); err != nil {
			logger.Warn("document email failed", zap.Error(err))
		}
	}
	return nil
}

// emailDocument delivers the rendered PDF through the configured email-pdf
// endpoint. Delivery failures never affect the submission outcome.
func emailDocument(ctx context.Context, cfg config.Config, log *zap.Logger, to, pdfPath, txID string) error {
	var sender docmail.Sender = docmail.Noop{}
	if cfg.EmailEndpoint != "" {
		sender = docmail.NewClient(cfg.EmailEndpoint, log)
	}
	pdf, err := os.ReadFile(pdfPath)
	if err != nil {
		return fmt.Errorf("read pdf: %w", err)
	}
	return sender.Send(ctx, docmail.Request{
		PDFBase64:    docmail.EncodePDF(pdf),
		EmailAddress: to,
		Subject:      fmt.Sprintf("Transaction %s submitted", txID),
		Message:      "Your transaction intake form has been received.",
	})
}

// reportSections prints a per-section readiness summary before the pipeline
// runs, so a failed submission points at the sections still missing data.
func reportSections(stdout io.Writer, engine *validation.Engine, record domain.TransactionRecord) {
	nav := form.NewNavigator(engine)
	var completed []domain.Section
	for s := domain.SectionRole; s.Valid(); s++ {
		if res := engine.ValidateSection(s, record); res.IsValid {
			completed = append(completed, s)
		} else {
			fmt.Fprintf(stdout, "section %-16s %d issue(s)\n", s.String(), len(res.Errors))
		}
	}
	progress := nav.SectionProgress(record, completed)
	fmt.Fprintf(stdout, "sections complete: %d/%d (%.0f%%)\n",
		progress.CompletedCount, progress.TotalSections, progress.Percentage)
}

// readRecord decodes a transaction record over the defaults, so partial input
// files inherit the conventional enum values.
func readRecord(path string, stdin io.Reader) (domain.TransactionRecord, error) {
	var src io.Reader = stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return domain.TransactionRecord{}, fmt.Errorf("open record: %w", err)
		}
		defer func() { _ = f.Close() }()
		src = f
	}
	record := domain.DefaultRecord()
	dec := json.NewDecoder(src)
	if err := dec.Decode(&record); err != nil {
		return domain.TransactionRecord{}, fmt.Errorf("decode record: %w", err)
	}
	if len(record.Clients) == 0 {
		record.Clients = []domain.ClientInfo{domain.BlankClient(record.Role)}
	}
	return record, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
