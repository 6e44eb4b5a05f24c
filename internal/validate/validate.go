// Package validate checks event form input before it is handed to the
// persistence layer. Validation results are values, never panics; the
// caller decides whether to block a save.
package validate

import (
	"errors"

	"iljeong/internal/model"
)

// User-facing messages. The UI shows these verbatim.
const (
	MsgStartBeforeEnd = "시작 시간은 종료 시간보다 빨라야 합니다."
	MsgEndAfterStart  = "종료 시간은 시작 시간보다 늦어야 합니다."
)

var (
	ErrMissingFields = errors.New("필수 정보를 모두 입력해주세요.")
	ErrBadTimeRange  = errors.New("시간 설정을 확인해주세요.")
)

// TimeResult carries per-field error messages for the start/end time
// inputs. An empty string means the field is fine.
type TimeResult struct {
	StartTimeError string
	EndTimeError   string
}

func (r TimeResult) OK() bool {
	return r.StartTimeError == "" && r.EndTimeError == ""
}

// TimeOrder checks that a start time strictly precedes an end time, both
// given as HH:MM strings. Incomplete input (either side empty) is not yet
// an error state and passes. Equal times are rejected; zero-duration
// events are not allowed.
func TimeOrder(start, end string) TimeResult {
	if start == "" || end == "" {
		return TimeResult{}
	}
	if start >= end {
		return TimeResult{
			StartTimeError: MsgStartBeforeEnd,
			EndTimeError:   MsgEndAfterStart,
		}
	}
	return TimeResult{}
}

// Form runs the save-blocking checks on a filled-in event: all required
// fields present, and the time range internally ordered. Overlap against
// other events is deliberately not checked here; that is a warning, not an
// error.
func Form(e model.Event) error {
	if e.Title == "" || e.Date == "" || e.StartTime == "" || e.EndTime == "" {
		return ErrMissingFields
	}
	if !TimeOrder(e.StartTime, e.EndTime).OK() {
		return ErrBadTimeRange
	}
	return nil
}
