package client

import (
	"context"
	"fmt"

	"github.com/skyfield-labs/mission-client/entity"
)

// BatchState is the lifecycle of one upload batch:
// BatchIdle -> BatchUploading -> BatchCompleted | BatchFailed.
// The zero value is BatchIdle, the state of a batch nothing has been asked
// of yet; UploadBatch itself starts reporting at BatchUploading. There is no
// cancelled state; a started batch runs to completion or to its first
// failure.
type BatchState int

const (
	BatchIdle BatchState = iota
	BatchUploading
	BatchCompleted
	BatchFailed
)

func (s BatchState) String() string {
	switch s {
	case BatchIdle:
		return "idle"
	case BatchUploading:
		return "uploading"
	case BatchCompleted:
		return "completed"
	case BatchFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// BatchProgress is a snapshot of a batch. FailedIndex is -1 unless State is
// BatchFailed; files before it succeeded, the file at it failed, files after
// it were never attempted.
type BatchProgress struct {
	State       BatchState
	Completed   int
	Total       int
	FailedIndex int
	Err         error
}

// Fraction is Completed/Total; an empty batch is already complete.
func (p BatchProgress) Fraction() float64 {
	if p.Total == 0 {
		return 1
	}
	return float64(p.Completed) / float64(p.Total)
}

func newBatchProgress(total int) BatchProgress {
	state := BatchUploading
	if total == 0 {
		state = BatchCompleted
	}
	return BatchProgress{State: state, Total: total, FailedIndex: -1}
}

// step is the pure reducer advancing a batch by one file outcome. Progress
// is derived from the returned state, never from external mutation, so the
// reported fraction is monotonically non-decreasing.
func (p BatchProgress) step(err error) BatchProgress {
	next := p
	if err != nil {
		next.State = BatchFailed
		next.FailedIndex = p.Completed
		next.Err = err
		return next
	}
	next.Completed++
	if next.Completed == next.Total {
		next.State = BatchCompleted
	}
	return next
}

// ProgressFunc observes batch snapshots. It is called once with the initial
// state and once after every file outcome, on the calling goroutine.
type ProgressFunc func(BatchProgress)

// BatchError reports the first failure of an upload batch. Files uploaded
// before Index stay persisted server-side; nothing is rolled back.
type BatchError struct {
	Index int
	File  string
	Err   error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("upload batch failed at file %d (%s): %v", e.Index, e.File, e.Err)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

// UploadBatch uploads files for a mission strictly in input order, one at a
// time. Sequential on purpose: progress stays monotonic and a failing file
// never contends with the others for bandwidth. On the first failure the
// remaining files are not attempted and the assets uploaded so far are
// returned alongside a *BatchError.
func (ac *AssetClient) UploadBatch(ctx context.Context, organization, project, mission string, files []UploadFile, onProgress ProgressFunc) ([]*entity.Asset, error) {
	progress := newBatchProgress(len(files))
	emit(onProgress, progress)

	assets := make([]*entity.Asset, 0, len(files))
	for i, file := range files {
		asset, err := ac.Upload(ctx, organization, project, mission, file)
		progress = progress.step(err)
		emit(onProgress, progress)
		if err != nil {
			return assets, &BatchError{Index: i, File: file.Name, Err: err}
		}
		assets = append(assets, asset)
	}
	return assets, nil
}

func emit(onProgress ProgressFunc, p BatchProgress) {
	if onProgress != nil {
		onProgress(p)
	}
}
