package main

import (
	"context"

	"github.com/GeoNet/kit/metrics"
	"github.com/GeoNet/upload-metadata/internal/recorder"
	"github.com/aws/aws-lambda-go/events"
)

// handler counts each invocation with the kit message counters.
type handler struct {
	rec *recorder.Recorder
}

func (h handler) handle(ctx context.Context, e events.S3Event) (recorder.Response, error) {
	metrics.MsgRx()

	res, err := h.rec.Handle(ctx, e)
	if err != nil {
		metrics.MsgErr()
		return res, err
	}

	metrics.MsgProc()

	return res, nil
}
