/*
Package observability exposes Prometheus metrics for log ingestion.

The tree builder reports every record it applies, every bad line, every
structural violation and the latest build progress. Collectors are created
per Metrics value so tests can use a private registry.
*/
package observability
