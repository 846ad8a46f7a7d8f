// Package server exposes report generation over HTTP.
//
// # Routes
//
//	GET  /healthz                 build information
//	POST /v1/reports/{kind}       bundle JSON in, LaTeX out (kind: solution, fk)
//	POST /v1/graphs/{format}      bundle JSON in, solution graph out (format: dot, svg, png)
//
// Report options are query parameters: columns, align and fracify take
// booleans (default true), title sets a document title. Graphs accept
// detailed=true.
//
// Every response carries an X-Request-ID header. A valid UUID sent by the
// client is kept, otherwise a new one is generated. Errors are JSON:
//
//	{"error": "invalid report kind: \"ik\" ...", "code": "INVALID_REPORT_KIND", "request_id": "..."}
//
// Responses served from the cache carry X-Cache: HIT.
package server
