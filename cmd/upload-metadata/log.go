package main

import (
	"log"
	"os"

	"github.com/GeoNet/kit/metrics"
)

var Prefix string

func init() {
	// the Lambda runtime timestamps each log line.
	log.SetFlags(0)
	logger := log.New(os.Stderr, "", 0)

	if Prefix != "" {
		log.SetPrefix(Prefix + " ")
		logger.SetPrefix(Prefix + " ")
	}

	metrics.DataDogMsg(os.Getenv("DDOG_API_KEY"), metrics.HostName(), metrics.AppName(), logger)
}
