package objectsources

import (
	"bufio"
	"context"
	"io"
	"time"

	"elb-log-reports/internal/models"
	"elb-log-reports/internal/shared/metrics"

	"github.com/klauspost/compress/gzip"
)

// ObjectSource supplies the decompressed log objects of one day partition.
//
//go:generate mockgen -source=object_source.go -destination=./mocks/object_source_mock.go -package=mocks
type ObjectSource interface {
	// DayObjects lists the object keys stored under the partition of day, in listing order.
	DayObjects(ctx context.Context, day time.Time) ([]string, error)
	// ReadObject returns the full decompressed text of one object.
	ReadObject(ctx context.Context, key string) ([]byte, error)
}

type objectSource struct {
	store  ObjectStore
	layout models.PartitionLayout
}

func NewObjectSource(store ObjectStore, layout models.PartitionLayout) ObjectSource {
	return &objectSource{store: store, layout: layout}
}

func (s *objectSource) DayObjects(ctx context.Context, day time.Time) ([]string, error) {
	// Trailing slash so 2017/10/1 never matches 2017/10/10.
	prefix := s.layout.DayKey(day) + "/"
	keys, err := s.store.List(ctx, prefix)
	if err != nil {
		return nil, errSourceListFailed(prefix, err)
	}
	return keys, nil
}

func (s *objectSource) ReadObject(ctx context.Context, key string) ([]byte, error) {
	body, err := s.store.Get(ctx, key)
	if err != nil {
		svcErr := errSourceReadFailed(key, err)
		metricObjectsFetchedTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}
	defer body.Close()

	data, err := decompress(body)
	if err != nil {
		svcErr := errSourceDecodeFailed(key, err)
		metricObjectsFetchedTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	metricObjectsFetchedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricBytesDecompressedTotal.WithLabelValues().Add(float64(len(data)))
	return data, nil
}

var gzipMagic = []byte{0x1f, 0x8b}

// decompress gunzips r when it starts with the gzip magic number and reads it as-is otherwise,
// so plain-text fixtures and exports work alongside the load balancer's .log.gz objects.
func decompress(r io.Reader) ([]byte, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(len(gzipMagic))
	if err != nil && err != io.EOF {
		return nil, err
	}
	if len(magic) < len(gzipMagic) || magic[0] != gzipMagic[0] || magic[1] != gzipMagic[1] {
		return io.ReadAll(br)
	}

	zr, err := gzip.NewReader(br)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}
