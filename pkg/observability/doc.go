/*
Package observability provides tools for monitoring the visualizer.

It turns lifecycle hooks into Prometheus metrics and lets several hook sets
(metrics, debug logging, custom auditing) be attached to one Visualizer.
*/
package observability
