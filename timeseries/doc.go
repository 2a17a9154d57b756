// Package timeseries provides the date-indexed series type used throughout
// the pipeline, along with weekly resampling, forward filling, differencing,
// and chronological splitting.
//
// Timestamps within a Series are strictly increasing. Missing weekly buckets
// are represented as NaN until they are forward filled or dropped.
package timeseries
