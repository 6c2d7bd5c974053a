package buffer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"augur/internal/entropy/buffer/mocks"
	"augur/internal/entropy/metrics"
	"augur/internal/entropy/models"
	"augur/pkg/platform/sentinel"
)

type BufferSuite struct {
	suite.Suite
	ctx      context.Context
	ctrl     *gomock.Controller
	source   *mocks.MockBulkSource
	fallback *mocks.MockDrawer
}

func TestBufferSuite(t *testing.T) {
	suite.Run(t, new(BufferSuite))
}

func (s *BufferSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.source = mocks.NewMockBulkSource(s.ctrl)
	s.fallback = mocks.NewMockDrawer(s.ctrl)
	s.source.EXPECT().Name().Return(models.ProvenanceQuantum).AnyTimes()
}

// chunks renders values as consecutive 8-digit hex chunks.
func chunks(values ...uint32) string {
	var b strings.Builder
	for _, v := range values {
		fmt.Fprintf(&b, "%08x", v)
	}
	return b.String()
}

func (s *BufferSuite) newBuffer(limit, batch int) *Buffer {
	b, err := New(limit, s.source, s.fallback, WithBatch(batch))
	s.Require().NoError(err)
	return b
}

func (s *BufferSuite) TestNext_FIFO() {
	s.source.EXPECT().Fetch(gomock.Any(), 3*8).Return(chunks(1, 2, 3), nil).Times(1)
	s.fallback.EXPECT().Draw(gomock.Any(), gomock.Any()).Times(0)
	b := s.newBuffer(100, 3)

	s.Equal(models.DrawResult{Index: 1, Provenance: models.ProvenanceQuantum}, b.Next(s.ctx))
	s.Equal(2, b.Len())
	s.Equal(models.DrawResult{Index: 2, Provenance: models.ProvenanceQuantum}, b.Next(s.ctx))
	s.Equal(models.DrawResult{Index: 3, Provenance: models.ProvenanceQuantum}, b.Next(s.ctx))
	s.Equal(0, b.Len())
}

func (s *BufferSuite) TestNext_RefillsOnlyWhenEmpty() {
	gomock.InOrder(
		s.source.EXPECT().Fetch(gomock.Any(), 2*8).Return(chunks(10, 11), nil),
		s.source.EXPECT().Fetch(gomock.Any(), 2*8).Return(chunks(12, 13), nil),
	)
	b := s.newBuffer(100, 2)

	got := []int{b.Next(s.ctx).Index, b.Next(s.ctx).Index, b.Next(s.ctx).Index}

	s.Equal([]int{10, 11, 12}, got)
	s.Equal(1, b.Len())
}

func (s *BufferSuite) TestNext_ReducesModuloLimit() {
	s.source.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(chunks(7, 0xffffffff), nil)
	b := s.newBuffer(5, 2)

	s.Equal(7%5, b.Next(s.ctx).Index)
	s.Equal(int(uint64(0xffffffff)%5), b.Next(s.ctx).Index)
}

func (s *BufferSuite) TestNext_RefillFailureFallsBack() {
	s.source.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return("", errors.New("connection refused")).Times(2)
	s.fallback.EXPECT().Draw(gomock.Any(), 42).Return(models.DrawResult{Index: 17, Provenance: models.ProvenancePseudo}).Times(2)
	b := s.newBuffer(42, 4)

	first := b.Next(s.ctx)
	second := b.Next(s.ctx)

	s.Equal(models.DrawResult{Index: 17, Provenance: models.ProvenanceFallback}, first)
	s.Equal(models.ProvenanceFallback, second.Provenance)
	s.Equal(0, b.Len())
}

func (s *BufferSuite) TestNext_MalformedPayloadFallsBack() {
	s.source.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return("zzzzzzzz00000001", nil)
	s.fallback.EXPECT().Draw(gomock.Any(), 10).Return(models.DrawResult{Index: 3, Provenance: models.ProvenanceAtmospheric})
	b := s.newBuffer(10, 2)

	res := b.Next(s.ctx)

	s.Equal(models.DrawResult{Index: 3, Provenance: models.ProvenanceFallback}, res)
	s.Equal(0, b.Len(), "a bad batch must not be partially enqueued")
}

func (s *BufferSuite) TestNext_DegenerateLimit() {
	s.source.EXPECT().Fetch(gomock.Any(), gomock.Any()).Times(0)
	s.fallback.EXPECT().Draw(gomock.Any(), gomock.Any()).Times(0)
	b := s.newBuffer(1, 4)

	s.Equal(models.Deterministic(), b.Next(s.ctx))
}

func (s *BufferSuite) TestNext_SingleFlightRefill() {
	const callers = 20
	values := make([]uint32, 32)
	for i := range values {
		values[i] = uint32(i)
	}
	s.source.EXPECT().Fetch(gomock.Any(), 32*8).DoAndReturn(func(ctx context.Context, digits int) (string, error) {
		time.Sleep(50 * time.Millisecond)
		return chunks(values...), nil
	}).Times(1)
	s.fallback.EXPECT().Draw(gomock.Any(), gomock.Any()).Times(0)
	b := s.newBuffer(1000, 32)

	var wg sync.WaitGroup
	results := make(chan models.DrawResult, callers)
	start := make(chan struct{})
	for n := 0; n < callers; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			results <- b.Next(s.ctx)
		}()
	}
	close(start)
	wg.Wait()
	close(results)

	seen := make(map[int]bool, callers)
	for res := range results {
		s.Equal(models.ProvenanceQuantum, res.Provenance)
		s.False(seen[res.Index], "entry %d served twice", res.Index)
		seen[res.Index] = true
	}
	s.Len(seen, callers)
	s.Equal(32-callers, b.Len())
}

func (s *BufferSuite) TestNext_RecordsMetrics() {
	s.source.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(chunks(1, 2), nil)
	m := metrics.New(prometheus.NewRegistry())
	b, err := New(10, s.source, s.fallback, WithBatch(2), WithMetrics(m))
	s.Require().NoError(err)

	b.Next(s.ctx)

	s.Equal(1.0, testutil.ToFloat64(m.BufferRefills.WithLabelValues("success")))
	s.Equal(1.0, testutil.ToFloat64(m.BufferDepth))
}

func (s *BufferSuite) TestDrawDirect_LabelsOnlyFailedRefills() {
	m := metrics.New(prometheus.NewRegistry())
	b, err := New(10, s.source, s.fallback, WithBatch(2), WithMetrics(m))
	s.Require().NoError(err)
	s.fallback.EXPECT().Draw(gomock.Any(), 10).
		Return(models.DrawResult{Index: 6, Provenance: models.ProvenancePhysical}).Times(2)

	s.Run("drained by other callers keeps the tier provenance", func() {
		res := b.drawDirect(s.ctx, false)
		s.Equal(models.DrawResult{Index: 6, Provenance: models.ProvenancePhysical}, res)
		s.Equal(0.0, testutil.ToFloat64(m.BufferFallback))
	})

	s.Run("failed refill is tagged fallback", func() {
		res := b.drawDirect(s.ctx, true)
		s.Equal(models.DrawResult{Index: 6, Provenance: models.ProvenanceFallback}, res)
		s.Equal(1.0, testutil.ToFloat64(m.BufferFallback))
	})
}

func TestNew_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockBulkSource(ctrl)
	fallback := mocks.NewMockDrawer(ctrl)

	_, err := New(10, source, fallback, WithBatch(0))
	require.ErrorIs(t, err, sentinel.ErrInvalidConfig)

	_, err = New(10, source, fallback, WithChunkDigits(16))
	require.ErrorIs(t, err, sentinel.ErrInvalidConfig)

	_, err = New(10, nil, fallback)
	require.ErrorIs(t, err, sentinel.ErrInvalidConfig)

	b, err := New(10, source, fallback)
	require.NoError(t, err)
	require.Equal(t, 10, b.Limit())
}

func TestDecode(t *testing.T) {
	t.Run("keeps order and provenance", func(t *testing.T) {
		res, err := Decode("0a0b0c", 3, 2, 100, models.ProvenanceQuantum)
		require.NoError(t, err)
		require.Equal(t, []models.DrawResult{
			{Index: 10, Provenance: models.ProvenanceQuantum},
			{Index: 11, Provenance: models.ProvenanceQuantum},
			{Index: 12, Provenance: models.ProvenanceQuantum},
		}, res)
	})

	t.Run("ignores trailing digits", func(t *testing.T) {
		res, err := Decode("0a0b0cff", 3, 2, 100, models.ProvenanceQuantum)
		require.NoError(t, err)
		require.Len(t, res, 3)
	})

	t.Run("short payload is bad data", func(t *testing.T) {
		_, err := Decode("0a0b", 3, 2, 100, models.ProvenanceQuantum)
		require.ErrorIs(t, err, sentinel.ErrBadData)
	})

	t.Run("signed chunk is bad data", func(t *testing.T) {
		_, err := Decode("+a0b0c", 3, 2, 100, models.ProvenanceQuantum)
		require.ErrorIs(t, err, sentinel.ErrBadData)
	})
}
