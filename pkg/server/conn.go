package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/gridview-dev/gridview/pkg/grid"
	"github.com/gridview-dev/gridview/pkg/protocol"
)

// conn handles one WebSocket connection. It carries no request state: every
// message is decoded, answered, and forgotten before the next read.
type conn struct {
	ws      *websocket.Conn
	engine  *grid.Engine
	config  *Config
	metrics *Metrics
	tracer  trace.Tracer
	logger  *slog.Logger
}

// run is the connection loop: blocking read, dispatch, reply, repeat. It
// returns on an explicit close frame or a receive error; nothing else ends
// the connection.
func (c *conn) run() {
	defer c.ws.Close()

	for {
		if c.config.ReadTimeout > 0 {
			c.ws.SetReadDeadline(time.Now().Add(c.config.ReadTimeout))
		}

		msgType, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				c.logger.Error("read error", "error", err)
			} else {
				c.logger.Debug("connection closed", "error", err)
			}
			return
		}

		// Binary frames are ignored; ping/pong never reach ReadMessage.
		if msgType != websocket.TextMessage {
			continue
		}

		c.handleMessage(data)
	}
}

// handleMessage decodes and dispatches one inbound text frame. Every failure
// is answered on the wire and contained here.
func (c *conn) handleMessage(data []byte) {
	msg, err := protocol.DecodeMessage(data)
	if err != nil {
		c.metrics.messagesTotal.WithLabelValues(messageLabel(err), "error").Inc()
		c.logger.Debug("rejected message", "error", err)
		c.send(protocol.ErrorReply(err))
		return
	}

	switch m := msg.(type) {
	case *protocol.MetadataRequest:
		c.handleMetadata()
	case *protocol.SliceRequest:
		c.handleSlice(m)
	}
}

// handleMetadata answers with the grid bounds. The response is constant and
// the operation cannot fail.
func (c *conn) handleMetadata() {
	_, span := c.tracer.Start(context.Background(), "grid.metadata_request",
		trace.WithSpanKind(trace.SpanKindServer))
	defer span.End()

	bounds := c.engine.Bounds()
	payload, err := protocol.EncodeMessage(protocol.MetadataResponse{
		Type:    protocol.TypeMetadataResponse,
		MaxRows: bounds.MaxRows,
		MaxCols: bounds.MaxCols,
	})
	if err != nil {
		// Marshaling three scalars cannot fail; treat it as a bug.
		c.logger.Error("metadata encode failed", "error", err)
		span.SetStatus(codes.Error, err.Error())
		return
	}

	c.metrics.messagesTotal.WithLabelValues(protocol.TypeMetadataRequest, "ok").Inc()
	span.SetStatus(codes.Ok, "")
	c.send(payload)
}

// handleSlice computes the slice for the requested viewport and answers with
// it, or with a bad-request error when validation rejects the viewport.
func (c *conn) handleSlice(req *protocol.SliceRequest) {
	_, span := c.tracer.Start(context.Background(), "grid.slice_request",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.Int64("grid.scroll_top", int64(req.ScrollTop)),
			attribute.Int64("grid.scroll_left", int64(req.ScrollLeft)),
		))
	defer span.End()

	start := time.Now()
	slice, err := c.engine.ComputeSlice(grid.Viewport{
		ScreenWidth:        req.ScreenWidth,
		ScreenHeight:       req.ScreenHeight,
		HorizontalBuffer:   req.HorizontalBuffer,
		VerticalBuffer:     req.VerticalBuffer,
		DefaultColumnWidth: req.DefaultColumnWidth,
		DefaultRowHeight:   req.DefaultRowHeight,
		ScrollLeft:         req.ScrollLeft,
		ScrollTop:          req.ScrollTop,
	})
	if err != nil {
		c.metrics.messagesTotal.WithLabelValues(protocol.TypeSliceRequest, "error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.send(protocol.ErrorReply(asBadRequest(err)))
		return
	}
	c.metrics.sliceDuration.Observe(time.Since(start).Seconds())
	c.metrics.sliceCells.Observe(float64(slice.RowCount) * float64(slice.ColCount))

	payload, err := protocol.EncodeMessage(protocol.SliceResponse{
		Type:       protocol.TypeSliceResponse,
		StartRow:   slice.StartRow,
		RowCount:   slice.RowCount,
		StartCol:   slice.StartCol,
		ColCount:   slice.ColCount,
		ColLetters: slice.ColLetters,
		CellsByRow: slice.CellsByRow,
	})
	if err != nil {
		c.logger.Error("slice encode failed", "error", err)
		span.SetStatus(codes.Error, err.Error())
		return
	}

	c.metrics.messagesTotal.WithLabelValues(protocol.TypeSliceRequest, "ok").Inc()
	span.SetAttributes(
		attribute.Int64("grid.start_row", int64(slice.StartRow)),
		attribute.Int("grid.row_count", int(slice.RowCount)),
		attribute.Int("grid.col_count", int(slice.ColCount)),
	)
	span.SetStatus(codes.Ok, "")
	c.send(payload)
}

// send writes one text frame.
//
// Write policy: a failed send never terminates the loop. The peer may already
// be gone; the failure is counted and logged, and the next read detects the
// dead connection.
func (c *conn) send(payload []byte) {
	c.ws.SetWriteDeadline(time.Now().Add(c.config.WriteTimeout))
	if err := c.ws.WriteMessage(websocket.TextMessage, payload); err != nil {
		c.metrics.writeErrors.Inc()
		c.logger.Debug("write failed", "error", &ConnError{
			Remote: c.ws.RemoteAddr().String(),
			Op:     "send",
			Err:    err,
		})
	}
}

// asBadRequest maps an engine validation error onto the wire error type so
// the reply carries the offending field.
func asBadRequest(err error) error {
	var verr *grid.ValidationError
	if errors.As(err, &verr) {
		return &protocol.BadRequestError{Field: verr.Field, Reason: verr.Reason}
	}
	return &protocol.BadRequestError{Reason: err.Error()}
}

// messageLabel buckets a decode failure for the messages_total metric,
// keeping label cardinality fixed.
func messageLabel(err error) string {
	switch {
	case errors.Is(err, protocol.ErrInvalidJSON):
		return "invalid_json"
	case errors.Is(err, protocol.ErrUnknownType):
		return "unknown_type"
	default:
		return "bad_request"
	}
}
