// Package web hosts the process signals dashboard over HTTP.
//
// Uploaded spreadsheets live in memory, one dataset per browser session,
// and every view is recomputed from the dataset and the request parameters.
// Nothing is persisted; idle sessions expire after a configurable TTL.
package web
