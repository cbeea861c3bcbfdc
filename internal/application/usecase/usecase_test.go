package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/xiebiao/bookcatalog/internal/application/auth"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

func TestParseID(t *testing.T) {
	id, err := ParseID("8F14E45F-CEEA-4E6A-A9C8-2F4B1C1D0E7A")
	require.NoError(t, err)
	assert.Equal(t, "8f14e45f-ceea-4e6a-a9c8-2f4b1c1d0e7a", id)

	for _, bad := range []string{"", "123", "not-a-uuid", "8f14e45f-ceea-4e6a-a9c8"} {
		_, err := ParseID(bad)
		assert.ErrorIs(t, err, apperrors.ErrInvalidID, bad)
	}
}

func TestRequireIdentity(t *testing.T) {
	assert.ErrorIs(t, RequireIdentity(nil), apperrors.ErrUnauthorized)
	assert.NoError(t, RequireIdentity(&auth.Identity{UserID: "u"}))
}

func TestBeginRecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	_, done := Begin(context.Background(), "book", OpCreate)
	done(nil)
	_, done = Begin(context.Background(), "category", OpDelete)
	done(errors.New("boom"))

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "book.create", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Equal(t, "category.delete", spans[1].Name())
	assert.Equal(t, codes.Error, spans[1].Status().Code)
}
