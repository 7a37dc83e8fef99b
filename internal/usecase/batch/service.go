package batch

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/coordex/internal/domain"
	dombatch "github.com/kailas-cloud/coordex/internal/domain/batch"
	domloc "github.com/kailas-cloud/coordex/internal/domain/location"
	"github.com/kailas-cloud/coordex/internal/logger"
)

// MaxBatchSize is the maximum number of items per batch request.
const MaxBatchSize = 100

// Service handles batch location operations with per-item error reporting.
type Service struct {
	writer       BulkUpserter
	reader       BulkReader
	del          LocationDeleter
	cats         CategoryResolver
	maxBatchSize int
}

// New creates a batch service.
func New(writer BulkUpserter, reader BulkReader, del LocationDeleter, cats CategoryResolver) *Service {
	return &Service{
		writer: writer, reader: reader,
		del: del, cats: cats,
		maxBatchSize: MaxBatchSize,
	}
}

// WithMaxBatchSize configures the maximum batch size.
func (s *Service) WithMaxBatchSize(size int) *Service {
	if size > 0 {
		s.maxBatchSize = size
	}
	return s
}

// MaxSize returns the configured batch limit.
func (s *Service) MaxSize() int { return s.maxBatchSize }

// Upsert validates every item, then stores the valid ones in a single
// pipeline. Results are positional: results[i] belongs to items[i].
func (s *Service) Upsert(ctx context.Context, items []domloc.Location) []dombatch.Result {
	results := make([]dombatch.Result, len(items))

	if len(items) > s.maxBatchSize {
		for i, item := range items {
			results[i] = dombatch.Failed(item.ID(), s.tooLarge())
		}
		return results
	}

	valid := make([]domloc.Location, 0, len(items))
	validIdx := make([]int, 0, len(items))
	seen := make(map[string]struct{}, len(items))

	for i, item := range items {
		if _, dup := seen[item.ID()]; dup {
			results[i] = dombatch.Failed(item.ID(),
				fmt.Errorf("duplicate id %q in batch: %w", item.ID(), domain.ErrInvalidLocation))
			continue
		}
		seen[item.ID()] = struct{}{}

		if item.Category() != "" {
			if _, err := s.cats.Lookup(item.Category()); err != nil {
				results[i] = dombatch.Failed(item.ID(), fmt.Errorf("location category: %w", err))
				continue
			}
		}
		valid = append(valid, item)
		validIdx = append(validIdx, i)
	}

	if len(valid) == 0 {
		return results
	}

	if err := s.keepCreatedAt(ctx, valid); err != nil {
		return failAll(results, items, validIdx, err)
	}
	if err := s.writer.UpsertMany(ctx, valid); err != nil {
		return failAll(results, items, validIdx, fmt.Errorf("batch upsert: %w", err))
	}

	for _, i := range validIdx {
		results[i] = dombatch.OK(items[i].ID())
	}
	return results
}

// Delete removes locations by id, one result per id.
func (s *Service) Delete(ctx context.Context, ids []string) []dombatch.Result {
	results := make([]dombatch.Result, len(ids))

	if len(ids) > s.maxBatchSize {
		for i, id := range ids {
			results[i] = dombatch.Failed(id, s.tooLarge())
		}
		return results
	}

	for i, id := range ids {
		if err := domloc.ValidateID(id); err != nil {
			results[i] = dombatch.Failed(id, err)
			continue
		}
		if err := s.del.Delete(ctx, id); err != nil {
			results[i] = dombatch.Failed(id, fmt.Errorf("delete: %w", err))
			continue
		}
		results[i] = dombatch.OK(id)
	}

	succeeded, failed := dombatch.Count(results)
	logger.FromContext(ctx).Debug("batch delete finished",
		zap.Int("succeeded", succeeded), zap.Int("failed", failed))
	return results
}

// keepCreatedAt carries the stored creation time over to replaced items.
func (s *Service) keepCreatedAt(ctx context.Context, locs []domloc.Location) error {
	ids := make([]string, len(locs))
	for i, l := range locs {
		ids[i] = l.ID()
	}
	existing, err := s.reader.GetMany(ctx, ids)
	if err != nil {
		return fmt.Errorf("read existing: %w", err)
	}
	for i, l := range locs {
		if prev, ok := existing[l.ID()]; ok {
			locs[i] = l.WithCreatedAt(prev.CreatedAt())
		}
	}
	return nil
}

func (s *Service) tooLarge() error {
	return fmt.Errorf("batch size exceeds %d: %w", s.maxBatchSize, domain.ErrInvalidQuery)
}

func failAll(results []dombatch.Result, items []domloc.Location, idx []int, err error) []dombatch.Result {
	for _, i := range idx {
		results[i] = dombatch.Failed(items[i].ID(), err)
	}
	return results
}
