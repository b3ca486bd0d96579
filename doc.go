// Package hashdemo provides a product catalog backed by a fixed-capacity
// double-hashing table with a full collision audit trail.
//
// The Store type is the session facade: it owns one table, serializes
// access to it, logs every operation, and (optionally) persists a snapshot
// through a blob store after each successful mutation.
//
//	store, err := hashdemo.New(11)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := store.Insert(ctx, model.Product{Code: "A1", Name: "Widget", Price: 9.99, Quantity: 3})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Position, res.ProbeSequence)
//
// The underlying table, its probe arithmetic, and the collision log live in
// the hashtable package; on-disk snapshot handling lives in persistence.
package hashdemo
