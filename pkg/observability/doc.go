// Package observability provides structured JSON logging and Prometheus
// metrics for the CMS backend.
//
// Create logger:
//
//	logger := observability.NewLogger(observability.InfoLevel, nil)
//	logger.WithField("collection", name).Info("document created")
//
// Initialize metrics:
//
//	metrics := observability.NewMetrics(nil)
//	metrics.ObserveRequest("POST", "/collection", 201, elapsed)
package observability
