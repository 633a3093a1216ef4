// Package pgstore implements the validate.DataStore contract over a
// PostgreSQL connection pool (pgx).
//
// Usage:
//
//	cfg, err := pgstore.LoadConfig()
//	pool, err := pgstore.Connect(ctx, cfg)
//	store := pgstore.New(pool)
//
//	v, err := validate.New(schema, validate.WithDataStore(store))
//
// Query powers the engine's batched constraint checking; Exists and
// CompositeUnique serve the non-batched point-lookup fallbacks. Table and
// column names are re-checked against [A-Za-z0-9_]+ at this boundary even
// though the engine validates them first, so the store stays safe when
// used directly.
//
// Connect retries with backoff; Migrate applies goose migrations for
// integration-test schema setup; Healthcheck adapts the pool ping to
// health endpoint probes.
package pgstore
