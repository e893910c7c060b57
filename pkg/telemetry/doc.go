// Package telemetry turns router navigation events into Prometheus
// metrics and OpenTelemetry spans.
//
//	reg := prometheus.NewRegistry()
//	r := router.New(strategy, routes, router.WithObserver(telemetry.Multi(
//	    telemetry.Metrics(telemetry.WithRegistry(reg)),
//	    telemetry.Tracer(),
//	)))
//
// Metrics collected:
//   - vroute_navigations_total: Counter of navigations by source and match
//   - vroute_navigation_duration_seconds: Histogram of the time from the
//     navigation start until the state settled, by source
package telemetry
