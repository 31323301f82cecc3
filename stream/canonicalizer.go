package stream

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/cdchapman/rdf"
	"github.com/cdchapman/rdf/config"
	"github.com/cdchapman/rdf/errors"
	"github.com/cdchapman/rdf/metric"
	"github.com/cdchapman/rdf/vocabulary"
)

const componentName = "canonicalizer"

// Canonicalizer consumes literal records from JetStream and republishes
// them in canonical form.
type Canonicalizer struct {
	name    string
	cfg     config.Config
	conn    *nats.Conn
	js      jetstream.JetStream
	logger  *slog.Logger
	metrics *metric.Metrics

	// Lifecycle management
	consumeCtx  jetstream.ConsumeContext
	running     bool
	startTime   time.Time
	mu          sync.RWMutex
	lifecycleMu sync.Mutex

	// Atomic counters for health reporting
	recordsProcessed int64
	errorCount       int64
}

// New creates a canonicalizer on an established NATS connection.
func New(conn *nats.Conn, cfg config.Config, logger *slog.Logger, metrics *metric.Metrics) (*Canonicalizer, error) {
	if conn == nil {
		return nil, errors.WrapFatal(errors.ErrNoConnection, "Canonicalizer", "New", "check NATS connection")
	}
	if logger == nil {
		logger = slog.Default()
	}

	js, err := jetstream.New(conn)
	if err != nil {
		return nil, errors.WrapFatal(err, "Canonicalizer", "New", "initialize JetStream")
	}

	return &Canonicalizer{
		name:    componentName,
		cfg:     cfg,
		conn:    conn,
		js:      js,
		logger:  logger,
		metrics: metrics,
	}, nil
}

// Start ensures the stream and durable consumer exist and begins consuming.
func (c *Canonicalizer) Start(ctx context.Context) error {
	c.lifecycleMu.Lock()
	defer c.lifecycleMu.Unlock()

	if c.running {
		return errors.WrapFatal(errors.ErrAlreadyStarted, "Canonicalizer", "Start", "check running state")
	}

	_, err := c.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     c.cfg.NATS.Stream,
		Subjects: []string{c.cfg.NATS.Subject, c.cfg.NATS.OutputSubject},
	})
	if err != nil {
		return errors.WrapTransient(err, "Canonicalizer", "Start", "create stream")
	}

	consumer, err := c.js.CreateOrUpdateConsumer(ctx, c.cfg.NATS.Stream, jetstream.ConsumerConfig{
		Durable:       c.cfg.NATS.Durable,
		FilterSubject: c.cfg.NATS.Subject,
		AckPolicy:     jetstream.AckExplicitPolicy,
	})
	if err != nil {
		return errors.WrapTransient(err, "Canonicalizer", "Start", "create consumer")
	}

	consumeCtx, err := consumer.Consume(c.handleMessage)
	if err != nil {
		return errors.WrapTransient(err, "Canonicalizer", "Start", "start consuming")
	}

	c.mu.Lock()
	c.consumeCtx = consumeCtx
	c.running = true
	c.startTime = time.Now()
	c.mu.Unlock()

	if c.metrics != nil {
		c.metrics.NATSConnected.Set(1)
	}

	c.logger.Info("Canonicalizer started",
		"component", c.name,
		"stream", c.cfg.NATS.Stream,
		"subject", c.cfg.NATS.Subject,
		"output_subject", c.cfg.NATS.OutputSubject,
		"strict_validation", c.cfg.StrictValidation)

	return nil
}

// Stop stops consuming and waits up to timeout for in-flight handlers to
// drain.
func (c *Canonicalizer) Stop(timeout time.Duration) error {
	c.lifecycleMu.Lock()
	defer c.lifecycleMu.Unlock()

	if !c.running {
		return nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.consumeCtx.Drain()
		<-c.consumeCtx.Closed()
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		// Drain did not finish in time; force the consumer down and wait
		// for the drain goroutine to observe the close.
		c.consumeCtx.Stop()
		<-done
	}

	c.mu.Lock()
	c.running = false
	c.mu.Unlock()

	if c.metrics != nil {
		c.metrics.NATSConnected.Set(0)
	}

	c.logger.Info("Canonicalizer stopped", "component", c.name)
	return nil
}

// Running reports whether the component is consuming.
func (c *Canonicalizer) Running() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.running
}

// handleMessage decodes, processes and republishes one record.
func (c *Canonicalizer) handleMessage(msg jetstream.Msg) {
	start := time.Now()
	atomic.AddInt64(&c.recordsProcessed, 1)
	if c.metrics != nil {
		c.metrics.RecordsReceived.WithLabelValues(c.name).Inc()
	}

	var rec Record
	if err := json.Unmarshal(msg.Data(), &rec); err != nil {
		atomic.AddInt64(&c.errorCount, 1)
		c.recordError("decode")
		c.logger.Debug("Failed to decode literal record",
			"component", c.name,
			"error", err)
		_ = msg.Ack()
		return
	}

	out, err := c.process(rec)
	if err != nil {
		// Data-quality failure: count, ack, drop. Redelivery cannot fix a
		// malformed literal.
		atomic.AddInt64(&c.errorCount, 1)
		c.recordValidationFailure(rec)
		c.logger.Debug("Literal record rejected",
			"component", c.name,
			"record_id", rec.ID,
			"datatype", rec.Datatype,
			"error", err)
		_ = msg.Ack()
		return
	}

	data, err := json.Marshal(out)
	if err != nil {
		atomic.AddInt64(&c.errorCount, 1)
		c.recordError("encode")
		_ = msg.Ack()
		return
	}

	if _, err := c.js.Publish(context.Background(), c.cfg.NATS.OutputSubject, data); err != nil {
		atomic.AddInt64(&c.errorCount, 1)
		c.recordError("publish")
		c.logger.Error("Failed to publish canonical record",
			"component", c.name,
			"record_id", out.ID,
			"output_subject", c.cfg.NATS.OutputSubject,
			"error", err)
		_ = msg.Nak()
		return
	}

	if c.metrics != nil {
		c.metrics.RecordsPublished.WithLabelValues(c.name, c.cfg.NATS.OutputSubject).Inc()
		c.metrics.ProcessingDuration.WithLabelValues(c.name, "canonicalize").
			Observe(time.Since(start).Seconds())
	}
	_ = msg.Ack()
}

// process validates and canonicalizes a single record. With strict
// validation the record's literal must satisfy its datatype grammar;
// otherwise invalid literals pass through with only the generic rewriting
// applied.
func (c *Canonicalizer) process(rec Record) (Record, error) {
	lit, err := rec.Literal(c.cfg.StrictValidation)
	if err != nil {
		return Record{}, err
	}

	lit.Canonicalize()

	if c.metrics != nil {
		c.metrics.Canonicalizations.WithLabelValues(c.name, datatypeLabel(rec)).Inc()
	}

	id := rec.ID
	if id == "" {
		id = uuid.NewString()
	}

	return recordFromLiteral(id, lit), nil
}

func (c *Canonicalizer) recordError(kind string) {
	if c.metrics != nil {
		c.metrics.ErrorsTotal.WithLabelValues(c.name, kind).Inc()
	}
}

func (c *Canonicalizer) recordValidationFailure(rec Record) {
	if c.metrics != nil {
		c.metrics.ValidationFailures.WithLabelValues(c.name, datatypeLabel(rec)).Inc()
	}
}

// datatypeLabel keeps metric label cardinality bounded: known datatypes
// report their local name, everything else collapses to "other".
func datatypeLabel(rec Record) string {
	if rec.Datatype == "" {
		if rec.Language != "" {
			return "langString"
		}
		return "plain"
	}
	iri := rdf.IRI(rec.Datatype)
	if vocabulary.InXSD(iri) || iri == vocabulary.RDFXMLLiteral {
		return vocabulary.LocalName(iri)
	}
	return "other"
}
