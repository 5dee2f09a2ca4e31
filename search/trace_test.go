package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/pathscope/core"
	"github.com/katalvlaran/pathscope/search"
)

func attrMap(kvs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value, len(kvs))
	for _, kv := range kvs {
		m[kv.Key] = kv.Value
	}
	return m
}

// TestTracing_OneSpanPerSearch records lifecycle attributes and outcome status.
func TestTracing_OneSpanPerSearch(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	g := chain(t)
	r := newRunner(t, search.WithTracerProvider(tp))

	sess, err := r.Begin(context.Background(), g, "a", "b")
	require.NoError(t, err)
	require.NoError(t, sess.Checkpoint())
	require.NoError(t, sess.Mark("a", core.StatusVisited))
	p, err := sess.Backtrack(map[string]string{"b": "a"}, g.Weight)
	_, err = sess.Finish(p, err)
	require.NoError(t, err)

	sess, err = r.Begin(context.Background(), g, "a", "d")
	require.NoError(t, err)
	_, _ = sess.Finish(nil, search.ErrNoPath)

	sess, err = r.Begin(context.Background(), g, "a", "d")
	require.NoError(t, err)
	r.Stop()
	_, err = sess.Finish(nil, sess.Pause())
	assert.ErrorIs(t, err, search.ErrCancelled)

	spans := sr.Ended()
	require.Len(t, spans, 3)

	ok := spans[0]
	assert.Equal(t, "test.FindPath", ok.Name())
	assert.Equal(t, codes.Ok, ok.Status().Code)
	attrs := attrMap(ok.Attributes())
	assert.Equal(t, "a", attrs["search.start"].AsString())
	assert.Equal(t, "b", attrs["search.end"].AsString())
	assert.Equal(t, int64(1), attrs["search.hops"].AsInt64())
	assert.Equal(t, 1.0, attrs["search.distance"].AsFloat64())
	assert.Equal(t, int64(1), attrs["search.visited"].AsInt64())

	noPath := spans[1]
	assert.Equal(t, codes.Unset, noPath.Status().Code)
	require.Len(t, noPath.Events(), 1)
	assert.Equal(t, "no path", noPath.Events()[0].Name)

	cancelled := spans[2]
	assert.Equal(t, codes.Error, cancelled.Status().Code)
	assert.Contains(t, cancelled.Status().Description, "cancelled")
}

// TestTracing_MissingVertexNoSpan rejects before a span starts.
func TestTracing_MissingVertexNoSpan(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	r := newRunner(t, search.WithTracerProvider(tp))

	_, err := r.Begin(context.Background(), chain(t), "a", "zz")
	assert.ErrorIs(t, err, search.ErrVertexNotFound)
	assert.Empty(t, sr.Started())
}

// TestClose_AbortsUnfinishedSession ends the span with an error status and
// frees the runner; after Finish it does nothing.
func TestClose_AbortsUnfinishedSession(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	g := chain(t)
	r := newRunner(t, search.WithTracerProvider(tp))

	sess, err := r.Begin(context.Background(), g, "a", "d")
	require.NoError(t, err)
	sess.Close()
	assert.False(t, r.Running())
	require.Len(t, sr.Ended(), 1)
	assert.Equal(t, codes.Error, sr.Ended()[0].Status().Code)
	assert.Equal(t, "search aborted", sr.Ended()[0].Status().Description)

	sess, err = r.Begin(context.Background(), g, "a", "b")
	require.NoError(t, err)
	_, err = sess.Finish(&search.Path[string]{Vertices: []string{"a", "b"}, Distance: 1}, nil)
	require.NoError(t, err)
	sess.Close()
	require.Len(t, sr.Ended(), 2)
	assert.Equal(t, codes.Ok, sr.Ended()[1].Status().Code)
}
