package monitoring

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/fyyur/internal/repository"
)

func TestObserveWrite(t *testing.T) {
	ok := DirectoryWrites.WithLabelValues("venue", "create", OutcomeOK)
	missing := DirectoryWrites.WithLabelValues("venue", "update", OutcomeNotFound)
	failed := DirectoryWrites.WithLabelValues("show", "create", OutcomeError)
	beforeOK, beforeMissing, beforeFailed := testutil.ToFloat64(ok), testutil.ToFloat64(missing), testutil.ToFloat64(failed)

	ObserveWrite("venue", "create", nil)
	ObserveWrite("venue", "update", repository.ErrVenueNotFound)
	ObserveWrite("show", "create", errors.New("constraint failed"))

	assert.Equal(t, beforeOK+1, testutil.ToFloat64(ok))
	assert.Equal(t, beforeMissing+1, testutil.ToFloat64(missing))
	assert.Equal(t, beforeFailed+1, testutil.ToFloat64(failed))
}
