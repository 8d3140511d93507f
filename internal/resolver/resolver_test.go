package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medcheck/ai-symptom-checker-backend/internal/knowledge"
)

// stubClassifier records what it was asked and returns a fixed ranking.
type stubClassifier struct {
	ranked    []string
	err       error
	calls     int
	gotText   string
	gotLabels []string
}

func (s *stubClassifier) Classify(_ context.Context, text string, labels []string) ([]string, error) {
	s.calls++
	s.gotText = text
	s.gotLabels = labels
	if s.err != nil {
		return nil, s.err
	}
	return s.ranked, nil
}

func TestResolve_KeywordMatch(t *testing.T) {
	base := knowledge.NewBase()

	t.Run("matches case-insensitively", func(t *testing.T) {
		r := New(base, nil)
		rec, err := r.Resolve(context.Background(), "I woke up with a HEADACHE")
		require.NoError(t, err)
		assert.Equal(t, "Tension Headache or Migraine", rec.Diagnosis)
		assert.Equal(t, 0.95, rec.Confidence)
	})

	t.Run("does not touch the classifier", func(t *testing.T) {
		stub := &stubClassifier{ranked: []string{"Fever"}}
		r := New(base, stub)
		rec, err := r.Resolve(context.Background(), "a mild headache")
		require.NoError(t, err)
		assert.Equal(t, "Tension Headache or Migraine", rec.Diagnosis)
		assert.Zero(t, stub.calls)
	})

	t.Run("table order wins over text order", func(t *testing.T) {
		// "fever" comes first in the text, but Headache precedes Fever in
		// the table, so Headache wins.
		r := New(base, nil)
		rec, err := r.Resolve(context.Background(), "fever and a headache since yesterday")
		require.NoError(t, err)
		assert.Equal(t, "Tension Headache or Migraine", rec.Diagnosis)
	})

	t.Run("sentinel name is matchable text too", func(t *testing.T) {
		r := New(base, nil)
		rec, err := r.Resolve(context.Background(), "just general symptoms, nothing specific")
		require.NoError(t, err)
		assert.Equal(t, "Unclear", rec.Diagnosis)
	})
}

func TestResolve_NoClassifier(t *testing.T) {
	base := knowledge.NewBase()
	r := New(base, nil)

	assert.False(t, r.ClassifierReady())

	rec, err := r.Resolve(context.Background(), "xyz unrelated text")
	require.NoError(t, err)
	assert.Equal(t, base.Sentinel(), rec)
	assert.Equal(t, "Unclear", rec.Diagnosis)
	assert.Equal(t, 0.50, rec.Confidence)
}

func TestResolve_ClassifierFallback(t *testing.T) {
	base := knowledge.NewBase()

	t.Run("top-ranked label resolves to its record", func(t *testing.T) {
		stub := &stubClassifier{ranked: []string{"Nausea", "Fever", "Headache"}}
		r := New(base, stub)

		rec, err := r.Resolve(context.Background(), "My Stomach Keeps Turning")
		require.NoError(t, err)
		assert.Equal(t, "Food Poisoning or Digestive Upset", rec.Diagnosis)

		assert.Equal(t, 1, stub.calls)
		assert.Equal(t, "my stomach keeps turning", stub.gotText, "classifier sees the normalized input")
		assert.Equal(t, base.Names(), stub.gotLabels, "candidate labels are the table names in order")
	})

	t.Run("unknown top label falls back to the sentinel", func(t *testing.T) {
		stub := &stubClassifier{ranked: []string{"Chest Pain"}}
		r := New(base, stub)

		rec, err := r.Resolve(context.Background(), "strange pressure")
		require.NoError(t, err)
		assert.Equal(t, base.Sentinel(), rec)
	})

	t.Run("empty ranking falls back to the sentinel", func(t *testing.T) {
		stub := &stubClassifier{ranked: nil}
		r := New(base, stub)

		rec, err := r.Resolve(context.Background(), "strange pressure")
		require.NoError(t, err)
		assert.Equal(t, base.Sentinel(), rec)
	})

	t.Run("call failure propagates", func(t *testing.T) {
		boom := errors.New("inference API unreachable")
		stub := &stubClassifier{err: boom}
		r := New(base, stub)

		_, err := r.Resolve(context.Background(), "strange pressure")
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
	})
}

func TestResolve_Idempotent(t *testing.T) {
	base := knowledge.NewBase()

	t.Run("with classifier", func(t *testing.T) {
		stub := &stubClassifier{ranked: []string{"Cough"}}
		r := New(base, stub)

		first, err := r.Resolve(context.Background(), "barking like a seal")
		require.NoError(t, err)
		second, err := r.Resolve(context.Background(), "barking like a seal")
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 2, stub.calls)
	})

	t.Run("without classifier", func(t *testing.T) {
		r := New(base, nil)

		first, err := r.Resolve(context.Background(), "xyz")
		require.NoError(t, err)
		second, err := r.Resolve(context.Background(), "xyz")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
