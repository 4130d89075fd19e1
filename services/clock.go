package services

import (
	"time"

	"github.com/alphabatem/common/context"
)

// Clock abstracts the date source so streak transitions are deterministic in
// tests. The streak machine only ever looks at the calendar day.
type Clock interface {
	Now() time.Time
}

type ClockService struct {
	context.DefaultService
}

const CLOCK_SVC = "clock_svc"

func (svc ClockService) Id() string {
	return CLOCK_SVC
}

func (svc *ClockService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *ClockService) Start() error {
	return nil
}

func (svc *ClockService) Now() time.Time {
	return time.Now()
}
