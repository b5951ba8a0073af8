// Package service provides the business logic tying the remap engine to
// its callers: profile resolution, crossbar construction from request
// mappings, and warning aggregation across the mapper and generator.
package service
